package session

import "time"

// Session maps a cookie token to a snapshot of the authenticated user.
// The projection is denormalized into columns so a request never has to
// join back to users; staleness for the cookie lifetime is accepted.
type Session struct {
	Token      string    `gorm:"primaryKey"`
	UserID     int64     `gorm:"column:user_id;not null;index"`
	FirstName  string    `gorm:"column:first_name"`
	LastName   string    `gorm:"column:last_name"`
	Email      string    `gorm:"not null"`
	Department string    `gorm:""`
	UserLevel  int       `gorm:"column:user_level;not null"`
	ExpiresAt  time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Session) TableName() string {
	return "sessions"
}
