package news

import "time"

// News is the persistence model for the news table.
type News struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Content     string    `gorm:"not null"`
	Summary     string    `gorm:"not null"`
	Category    string    `gorm:"not null"`
	AuthorID    int64     `gorm:"column:author_id"`
	ImageURL    *string   `gorm:"column:image_url"`
	IsPublished bool      `gorm:"column:is_published;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (News) TableName() string {
	return "news"
}
