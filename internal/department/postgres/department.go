package postgres

import (
	"gorm.io/gorm"

	departmentDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/department"
	"github.com/radityaputra/intranet-portal/internal/department"
)

// DepartmentRepository implements department.Repository using GORM
type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.Repository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) GetAll() ([]*department.Department, error) {
	var rows []*departmentDatamodel.Department
	err := r.db.Order("name ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return department.FromDataModelSlice(rows), nil
}

func (r *DepartmentRepository) GetByName(name string) (*department.Department, error) {
	var d departmentDatamodel.Department
	err := r.db.Where("name = ?", name).First(&d).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return department.FromDataModel(&d), nil
}

func (r *DepartmentRepository) Create(dept *department.Department) error {
	row := department.ToDataModel(dept)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	dept.ID = row.ID
	return nil
}
