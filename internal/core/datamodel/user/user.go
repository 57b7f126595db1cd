package user

import "time"

// User is the persistence model for the users table.
type User struct {
	ID              int64      `gorm:"primaryKey"`
	Email           string     `gorm:"uniqueIndex;not null"`
	PasswordHash    string     `gorm:"column:password_hash;not null"`
	FirstName       string     `gorm:"column:first_name;not null"`
	LastName        string     `gorm:"column:last_name;not null"`
	Department      string     `gorm:"not null"`
	UserLevel       int        `gorm:"column:user_level;not null;default:6"`
	Status          string     `gorm:"default:active"`
	ProfileImageURL *string    `gorm:"column:profile_image_url"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       *time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}
