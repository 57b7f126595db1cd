package user

import (
	"time"

	"github.com/radityaputra/intranet-portal/internal/auth"
	userDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/user"
)

// User is the directory-facing shape. It has no password hash field at
// all, so no read path can leak one.
type User struct {
	ID              int64      `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Department      string     `json:"department"`
	UserLevel       auth.Level `json:"userLevel"`
	Status          string     `json:"status"`
	ProfileImageURL *string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:              u.ID,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Department:      u.Department,
		UserLevel:       auth.Level(u.UserLevel),
		Status:          u.Status,
		ProfileImageURL: u.ProfileImageURL,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

func FromDataModelSlice(rows []*userDatamodel.User) []*User {
	result := make([]*User, len(rows))
	for i, u := range rows {
		result[i] = FromDataModel(u)
	}
	return result
}
