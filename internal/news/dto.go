package news

import "github.com/radityaputra/intranet-portal/internal"

// CreateNewsDTO is the admin payload for publishing an article.
type CreateNewsDTO struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Summary  string  `json:"summary"`
	Category string  `json:"category"`
	ImageURL *string `json:"image_url,omitempty"`
}

func (d CreateNewsDTO) Validate() error {
	var missing []string
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Content == "" {
		missing = append(missing, "content")
	}
	if d.Summary == "" {
		missing = append(missing, "summary")
	}
	if d.Category == "" {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return internal.NewMissingFieldsError(missing...)
	}
	return nil
}
