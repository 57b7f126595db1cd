package notification

import "time"

// Notification is the persistence model for the notifications table.
type Notification struct {
	ID                     int64      `gorm:"primaryKey"`
	UserID                 int64      `gorm:"column:user_id;not null;index"`
	Title                  string     `gorm:"not null"`
	Message                string     `gorm:"not null"`
	Type                   string     `gorm:"not null"`
	Priority               string     `gorm:"not null;default:normal"`
	IsRead                 bool       `gorm:"column:is_read;default:false"`
	RequiresAcknowledgment bool       `gorm:"column:requires_acknowledgment;default:false"`
	AcknowledgedAt         *time.Time `gorm:"column:acknowledged_at"`
	CreatedAt              time.Time  `gorm:"column:created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
