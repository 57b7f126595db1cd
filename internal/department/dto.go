package department

import "github.com/radityaputra/intranet-portal/internal"

// CreateDepartmentDTO is the admin payload for adding a directory entry.
type CreateDepartmentDTO struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	HeadID      *int64  `json:"head_id,omitempty"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
}

func (d CreateDepartmentDTO) Validate() error {
	var missing []string
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Icon == "" {
		missing = append(missing, "icon")
	}
	if d.Color == "" {
		missing = append(missing, "color")
	}
	if len(missing) > 0 {
		return internal.NewMissingFieldsError(missing...)
	}
	return nil
}
