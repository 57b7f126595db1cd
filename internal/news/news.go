package news

import (
	"time"

	newsDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/news"
)

// Article is one news item on the dashboard.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Summary     string    `json:"summary"`
	Category    string    `json:"category"`
	AuthorID    int64     `json:"authorId"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromDataModel(n *newsDatamodel.News) *Article {
	return &Article{
		ID:          n.ID,
		Title:       n.Title,
		Content:     n.Content,
		Summary:     n.Summary,
		Category:    n.Category,
		AuthorID:    n.AuthorID,
		ImageURL:    n.ImageURL,
		IsPublished: n.IsPublished,
		CreatedAt:   n.CreatedAt,
	}
}

func ToDataModel(a *Article) *newsDatamodel.News {
	return &newsDatamodel.News{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Summary:     a.Summary,
		Category:    a.Category,
		AuthorID:    a.AuthorID,
		ImageURL:    a.ImageURL,
		IsPublished: a.IsPublished,
		CreatedAt:   a.CreatedAt,
	}
}

func FromDataModelSlice(rows []*newsDatamodel.News) []*Article {
	result := make([]*Article, len(rows))
	for i, n := range rows {
		result[i] = FromDataModel(n)
	}
	return result
}
