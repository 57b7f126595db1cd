package event

import "time"

// Event is the persistence model for the events table.
type Event struct {
	ID           int64      `gorm:"primaryKey"`
	Title        string     `gorm:"not null"`
	Description  string     `gorm:"not null"`
	StartTime    time.Time  `gorm:"column:start_time;not null"`
	EndTime      *time.Time `gorm:"column:end_time"`
	Location     string     `gorm:"not null"`
	OrganizerID  int64      `gorm:"column:organizer_id"`
	MaxAttendees *int       `gorm:"column:max_attendees"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
}

func (Event) TableName() string {
	return "events"
}

// Attendee is one RSVP row; in replace mode at most one row exists per
// (event, user), in history mode rows accumulate.
type Attendee struct {
	ID        int64     `gorm:"primaryKey"`
	EventID   int64     `gorm:"column:event_id;not null;index"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Status    string    `gorm:"not null;default:attending"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Attendee) TableName() string {
	return "event_attendees"
}
