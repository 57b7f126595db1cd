package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/radityaputra/intranet-portal/internal"
	"github.com/radityaputra/intranet-portal/internal/auth"
	coreEvents "github.com/radityaputra/intranet-portal/internal/core/events"
	"github.com/radityaputra/intranet-portal/internal/department"
	"github.com/radityaputra/intranet-portal/internal/user"
)

// Repository defines the data access methods for notifications
type Repository interface {
	GetForUser(userID int64) ([]*Notification, error)
	GetUnreadForUser(userID int64) ([]*Notification, error)
	GetCriticalForUser(userID int64) ([]*Notification, error)
	Create(n *Notification) error
	MarkRead(id, userID int64) (bool, error)
	Acknowledge(id, userID int64, at time.Time) (*Notification, error)
}

// DepartmentLister enumerates departments for the broadcast fanout.
type DepartmentLister interface {
	GetAll() ([]*department.Department, error)
}

// UserLister resolves the members of one department.
type UserLister interface {
	ByDepartment(name string) ([]*user.User, error)
}

type Service struct {
	repo        Repository
	departments DepartmentLister
	users       UserLister
	bus         *coreEvents.EventBus
	logger      *slog.Logger
}

func NewService(repo Repository, departments DepartmentLister, users UserLister, bus *coreEvents.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		departments: departments,
		users:       users,
		bus:         bus,
		logger:      logger,
	}
}

func (s *Service) ListForUser(userID int64) ([]*Notification, error) {
	rows, err := s.repo.GetForUser(userID)
	if err != nil {
		s.logger.Error("failed to list notifications", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to fetch notifications", err)
	}
	return rows, nil
}

func (s *Service) UnreadForUser(userID int64) ([]*Notification, error) {
	rows, err := s.repo.GetUnreadForUser(userID)
	if err != nil {
		s.logger.Error("failed to list unread notifications", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to fetch unread notifications", err)
	}
	return rows, nil
}

// CriticalForUser returns unread critical notifications that still need
// acknowledgment. Users below the management band never see the
// critical feed, they get an empty list.
func (s *Service) CriticalForUser(userID int64, level auth.Level) ([]*Notification, error) {
	if !level.AtLeast(auth.AdminAccessLevel) {
		return []*Notification{}, nil
	}

	rows, err := s.repo.GetCriticalForUser(userID)
	if err != nil {
		s.logger.Error("failed to list critical notifications", "error", err, "user_id", userID)
		return nil, internal.NewInternalError("failed to fetch critical notifications", err)
	}
	return rows, nil
}

// MarkRead flips is_read on one of the caller's notifications. A row
// owned by someone else is reported as not found, not forbidden.
func (s *Service) MarkRead(id, userID int64) error {
	updated, err := s.repo.MarkRead(id, userID)
	if err != nil {
		s.logger.Error("failed to mark notification read", "error", err, "notification_id", id)
		return internal.NewInternalError("failed to mark notification as read", err)
	}
	if !updated {
		return internal.ErrNotificationNotFound
	}
	return nil
}

// Acknowledge marks the notification read and stamps acknowledged_at.
// Repeat calls succeed and keep the first timestamp.
func (s *Service) Acknowledge(id, userID int64) (*Notification, error) {
	n, err := s.repo.Acknowledge(id, userID, time.Now())
	if err != nil {
		s.logger.Error("failed to acknowledge notification", "error", err, "notification_id", id)
		return nil, internal.NewInternalError("failed to acknowledge notification", err)
	}
	if n == nil {
		return nil, internal.ErrNotificationNotFound
	}
	return n, nil
}

// BroadcastCriticalAlert fans a critical alert out to every user whose
// level is at least the target level. The inserts run concurrently and
// are not wrapped in a transaction: a failure mid-fanout leaves the
// already written notifications in place and reports a generic error.
func (s *Service) BroadcastCriticalAlert(ctx context.Context, issuedByID int64, dto BroadcastAlertDTO) (*BroadcastResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	targetLevel := auth.Level(*dto.TargetLevel)
	if !targetLevel.Valid() {
		return nil, internal.NewValidationError("target_level must be between 1 and 6", internal.ErrCodeInvalidLevel)
	}

	departments, err := s.departments.GetAll()
	if err != nil {
		s.logger.Error("broadcast failed listing departments", "error", err)
		return nil, internal.NewBroadcastError(err)
	}

	var recipients []*user.User
	for _, dept := range departments {
		members, err := s.users.ByDepartment(dept.Name)
		if err != nil {
			s.logger.Error("broadcast failed listing department users", "error", err, "department", dept.Name)
			return nil, internal.NewBroadcastError(err)
		}
		for _, member := range members {
			if member.UserLevel.AtLeast(targetLevel) {
				recipients = append(recipients, member)
			}
		}
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, recipient := range recipients {
		wg.Add(1)
		go func(u *user.User) {
			defer wg.Done()
			n := &Notification{
				UserID:                 u.ID,
				Title:                  dto.Title,
				Message:                dto.Message,
				Type:                   TypeCritical,
				Priority:               PriorityCritical,
				RequiresAcknowledgment: true,
				CreatedAt:              time.Now(),
			}
			if err := s.repo.Create(n); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}(recipient)
	}
	wg.Wait()

	if firstErr != nil {
		s.logger.Error("broadcast failed inserting notifications",
			"error", firstErr,
			"target_level", int(targetLevel),
			"recipients", len(recipients))
		return nil, internal.NewBroadcastError(firstErr)
	}

	s.logger.Info("critical alert broadcast",
		"title", dto.Title,
		"target_level", int(targetLevel),
		"notified", len(recipients),
		"issued_by", issuedByID)

	if s.bus != nil {
		event := coreEvents.NewAlertBroadcastEvent(dto.Title, int(targetLevel), issuedByID, len(recipients))
		if err := s.bus.Publish(ctx, event); err != nil {
			s.logger.Warn("failed to publish broadcast event", "error", err)
		}
	}

	return &BroadcastResult{
		Message:       "Critical alert sent successfully",
		NotifiedCount: len(recipients),
	}, nil
}
