package user

import (
	"log/slog"

	"github.com/radityaputra/intranet-portal/internal"
)

// Repository defines the data access methods for users
type Repository interface {
	GetByID(id int64) (*User, error)
	GetAll(limit, offset int) ([]*User, error)
	GetByDepartment(department string) ([]*User, error)
	UpdateProfile(id int64, dto UpdateProfileDTO) (*User, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetByID(id int64) (*User, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, internal.ErrUserNotFound
	}
	return u, nil
}

// Directory lists every user, paginated.
func (s *Service) Directory(limit, offset int) ([]*User, error) {
	users, err := s.repo.GetAll(limit, offset)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to fetch users", err)
	}
	return users, nil
}

func (s *Service) ByDepartment(department string) ([]*User, error) {
	users, err := s.repo.GetByDepartment(department)
	if err != nil {
		s.logger.Error("failed to list department users", "error", err, "department", department)
		return nil, internal.NewInternalError("failed to fetch department users", err)
	}
	return users, nil
}

// UpdateProfile applies a self-service profile update. Ownership is
// checked here, not only at the handler, so no other call path can
// write someone else's profile.
func (s *Service) UpdateProfile(id, callerID int64, dto UpdateProfileDTO) (*User, error) {
	if id != callerID {
		s.logger.Warn("profile update denied", "target_id", id, "caller_id", callerID)
		return nil, internal.ErrNotProfileOwner
	}

	u, err := s.repo.UpdateProfile(id, dto)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, internal.ErrUserNotFound
	}

	s.logger.Info("profile updated", "user_id", id)
	return u, nil
}
