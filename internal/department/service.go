package department

import (
	"log/slog"

	"github.com/radityaputra/intranet-portal/internal"
)

// Repository defines the data access methods for departments
type Repository interface {
	GetAll() ([]*Department, error)
	GetByName(name string) (*Department, error)
	Create(dept *Department) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) GetAll() ([]*Department, error) {
	departments, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list departments", "error", err)
		return nil, internal.NewInternalError("failed to fetch departments", err)
	}
	return departments, nil
}

func (s *Service) Create(dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check department name", err)
	}
	if existing != nil {
		return nil, internal.NewConflictError("Department already exists", internal.ErrCodeValidationFailed)
	}

	dept := &Department{
		Name:        dto.Name,
		Description: dto.Description,
		HeadID:      dto.HeadID,
		Icon:        dto.Icon,
		Color:       dto.Color,
	}

	if err := s.repo.Create(dept); err != nil {
		s.logger.Error("failed to create department", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("failed to create department", err)
	}

	s.logger.Info("department created", "department_id", dept.ID, "name", dept.Name)
	return dept, nil
}
