package department

import (
	departmentDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/department"
)

// Department is one directory entry.
type Department struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	HeadID      *int64  `json:"headId,omitempty"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	MemberCount int     `json:"memberCount"`
}

func FromDataModel(d *departmentDatamodel.Department) *Department {
	return &Department{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		HeadID:      d.HeadID,
		Icon:        d.Icon,
		Color:       d.Color,
		MemberCount: d.MemberCount,
	}
}

func ToDataModel(d *Department) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		HeadID:      d.HeadID,
		Icon:        d.Icon,
		Color:       d.Color,
		MemberCount: d.MemberCount,
	}
}

func FromDataModelSlice(rows []*departmentDatamodel.Department) []*Department {
	result := make([]*Department, len(rows))
	for i, d := range rows {
		result[i] = FromDataModel(d)
	}
	return result
}
