package news

import (
	"log/slog"
	"time"

	"github.com/radityaputra/intranet-portal/internal"
)

// Repository defines the data access methods for news
type Repository interface {
	GetAll(limit, offset int) ([]*Article, error)
	GetByID(id int64) (*Article, error)
	Create(article *Article) error
	Delete(id int64) (bool, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(limit, offset int) ([]*Article, error) {
	articles, err := s.repo.GetAll(limit, offset)
	if err != nil {
		s.logger.Error("failed to list news", "error", err)
		return nil, internal.NewInternalError("failed to fetch news", err)
	}
	return articles, nil
}

func (s *Service) GetByID(id int64) (*Article, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch news item", err)
	}
	if article == nil {
		return nil, internal.ErrNewsNotFound
	}
	return article, nil
}

// Create publishes a new article authored by the admin caller.
func (s *Service) Create(authorID int64, dto CreateNewsDTO) (*Article, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	article := &Article{
		Title:       dto.Title,
		Content:     dto.Content,
		Summary:     dto.Summary,
		Category:    dto.Category,
		AuthorID:    authorID,
		ImageURL:    dto.ImageURL,
		IsPublished: true,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(article); err != nil {
		s.logger.Error("failed to create news", "error", err, "author_id", authorID)
		return nil, internal.NewInternalError("failed to create news article", err)
	}

	s.logger.Info("news article created", "news_id", article.ID, "author_id", authorID, "category", article.Category)
	return article, nil
}

// Delete removes the article row entirely rather than unpublishing it.
func (s *Service) Delete(id int64) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		s.logger.Error("failed to delete news", "error", err, "news_id", id)
		return internal.NewInternalError("failed to delete news article", err)
	}
	if !deleted {
		return internal.ErrNewsNotFound
	}

	s.logger.Info("news article deleted", "news_id", id)
	return nil
}
