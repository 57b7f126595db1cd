package event

import (
	"time"

	eventDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/event"
)

const (
	RSVPAttending = "attending"
	RSVPMaybe     = "maybe"
	RSVPDeclined  = "declined"
)

func ValidRSVPStatus(status string) bool {
	switch status {
	case RSVPAttending, RSVPMaybe, RSVPDeclined:
		return true
	}
	return false
}

// Event is one calendar entry.
type Event struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      *time.Time `json:"endTime,omitempty"`
	Location     string     `json:"location"`
	OrganizerID  int64      `json:"organizerId"`
	MaxAttendees *int       `json:"maxAttendees,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Attendee is one RSVP record.
type Attendee struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventId"`
	UserID    int64     `json:"userId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromDataModel(e *eventDatamodel.Event) *Event {
	return &Event{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Location:     e.Location,
		OrganizerID:  e.OrganizerID,
		MaxAttendees: e.MaxAttendees,
		CreatedAt:    e.CreatedAt,
	}
}

func ToDataModel(e *Event) *eventDatamodel.Event {
	return &eventDatamodel.Event{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Location:     e.Location,
		OrganizerID:  e.OrganizerID,
		MaxAttendees: e.MaxAttendees,
		CreatedAt:    e.CreatedAt,
	}
}

func FromDataModelSlice(rows []*eventDatamodel.Event) []*Event {
	result := make([]*Event, len(rows))
	for i, e := range rows {
		result[i] = FromDataModel(e)
	}
	return result
}

func AttendeeFromDataModel(a *eventDatamodel.Attendee) *Attendee {
	return &Attendee{
		ID:        a.ID,
		EventID:   a.EventID,
		UserID:    a.UserID,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}

func AttendeesFromDataModel(rows []*eventDatamodel.Attendee) []*Attendee {
	result := make([]*Attendee, len(rows))
	for i, a := range rows {
		result[i] = AttendeeFromDataModel(a)
	}
	return result
}
