package event

import (
	"time"

	"github.com/radityaputra/intranet-portal/internal"
)

// CreateEventDTO is the admin payload for scheduling an event.
type CreateEventDTO struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StartTime    *time.Time `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	Location     string     `json:"location"`
	MaxAttendees *int       `json:"max_attendees,omitempty"`
}

func (d CreateEventDTO) Validate() error {
	var missing []string
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Description == "" {
		missing = append(missing, "description")
	}
	if d.StartTime == nil {
		missing = append(missing, "start_time")
	}
	if d.Location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return internal.NewMissingFieldsError(missing...)
	}
	return nil
}

// RSVPDTO carries the attendance answer for one event.
type RSVPDTO struct {
	Status string `json:"status"`
}

func (d RSVPDTO) Validate() error {
	if d.Status == "" {
		return internal.NewMissingFieldsError("status")
	}
	if !ValidRSVPStatus(d.Status) {
		return internal.NewValidationError("status must be attending, maybe or declined", internal.ErrCodeInvalidRSVP)
	}
	return nil
}
