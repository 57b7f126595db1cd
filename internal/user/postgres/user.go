package postgres

import (
	"time"

	"gorm.io/gorm"

	userDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/user"
	"github.com/radityaputra/intranet-portal/internal/user"
)

// UserRepository implements the user.Repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(id int64) (*user.User, error) {
	var u userDatamodel.User
	err := r.db.Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return user.FromDataModel(&u), nil
}

func (r *UserRepository) GetAll(limit, offset int) ([]*user.User, error) {
	var rows []*userDatamodel.User
	err := r.db.Order("department ASC, last_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(rows), nil
}

func (r *UserRepository) GetByDepartment(department string) ([]*user.User, error) {
	var rows []*userDatamodel.User
	err := r.db.Where("department = ?", department).
		Order("last_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return user.FromDataModelSlice(rows), nil
}

func (r *UserRepository) UpdateProfile(id int64, dto user.UpdateProfileDTO) (*user.User, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if dto.FirstName != nil {
		updates["first_name"] = *dto.FirstName
	}
	if dto.LastName != nil {
		updates["last_name"] = *dto.LastName
	}
	if dto.Department != nil {
		updates["department"] = *dto.Department
	}
	if dto.ProfileImageURL != nil {
		updates["profile_image_url"] = *dto.ProfileImageURL
	}

	res := r.db.Model(&userDatamodel.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	return r.GetByID(id)
}
