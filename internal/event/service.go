package event

import (
	"log/slog"
	"time"

	"github.com/radityaputra/intranet-portal/internal"
)

// Repository defines the data access methods for events
type Repository interface {
	GetAll(limit, offset int) ([]*Event, error)
	GetUpcoming(after time.Time, limit int) ([]*Event, error)
	GetByID(id int64) (*Event, error)
	Create(event *Event) error
	Delete(id int64) (bool, error)
	ReplaceRSVP(eventID, userID int64, status string) (*Attendee, error)
	AppendRSVP(eventID, userID int64, status string) (*Attendee, error)
	GetAttendees(eventID int64) ([]*Attendee, error)
}

type Service struct {
	repo     Repository
	rsvpMode string
	logger   *slog.Logger
}

func NewService(repo Repository, rsvpMode string, logger *slog.Logger) *Service {
	if rsvpMode == "" {
		rsvpMode = internal.RSVPModeReplace
	}
	return &Service{repo: repo, rsvpMode: rsvpMode, logger: logger}
}

func (s *Service) List(limit, offset int) ([]*Event, error) {
	events, err := s.repo.GetAll(limit, offset)
	if err != nil {
		s.logger.Error("failed to list events", "error", err)
		return nil, internal.NewInternalError("failed to fetch events", err)
	}
	return events, nil
}

func (s *Service) Upcoming(limit int) ([]*Event, error) {
	events, err := s.repo.GetUpcoming(time.Now(), limit)
	if err != nil {
		s.logger.Error("failed to list upcoming events", "error", err)
		return nil, internal.NewInternalError("failed to fetch upcoming events", err)
	}
	return events, nil
}

func (s *Service) GetByID(id int64) (*Event, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch event", err)
	}
	if event == nil {
		return nil, internal.ErrEventNotFound
	}
	return event, nil
}

func (s *Service) Create(organizerID int64, dto CreateEventDTO) (*Event, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	event := &Event{
		Title:        dto.Title,
		Description:  dto.Description,
		StartTime:    *dto.StartTime,
		EndTime:      dto.EndTime,
		Location:     dto.Location,
		OrganizerID:  organizerID,
		MaxAttendees: dto.MaxAttendees,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(event); err != nil {
		s.logger.Error("failed to create event", "error", err, "organizer_id", organizerID)
		return nil, internal.NewInternalError("failed to create event", err)
	}

	s.logger.Info("event created", "event_id", event.ID, "organizer_id", organizerID)
	return event, nil
}

func (s *Service) Delete(id int64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete event", "error", err, "event_id", id)
		return internal.NewInternalError("failed to delete event", err)
	}
	if !deleted {
		return internal.ErrEventNotFound
	}

	s.logger.Info("event deleted", "event_id", id)
	return nil
}

// RSVP records an attendance answer. Replace mode keeps one row per
// (event, user); history mode accumulates every answer.
func (s *Service) RSVP(eventID, userID int64, dto RSVPDTO) (*Attendee, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(eventID)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch event", err)
	}
	if event == nil {
		return nil, internal.ErrEventNotFound
	}

	var attendee *Attendee
	if s.rsvpMode == internal.RSVPModeHistory {
		attendee, err = s.repo.AppendRSVP(eventID, userID, dto.Status)
	} else {
		attendee, err = s.repo.ReplaceRSVP(eventID, userID, dto.Status)
	}
	if err != nil {
		s.logger.Error("failed to record rsvp", "error", err, "event_id", eventID, "user_id", userID)
		return nil, internal.NewInternalError("failed to RSVP to event", err)
	}

	s.logger.Info("rsvp recorded", "event_id", eventID, "user_id", userID, "status", dto.Status, "mode", s.rsvpMode)
	return attendee, nil
}

func (s *Service) Attendees(eventID int64) ([]*Attendee, error) {
	attendees, err := s.repo.GetAttendees(eventID)
	if err != nil {
		s.logger.Error("failed to list attendees", "error", err, "event_id", eventID)
		return nil, internal.NewInternalError("failed to fetch event attendees", err)
	}
	return attendees, nil
}
