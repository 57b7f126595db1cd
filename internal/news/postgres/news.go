package postgres

import (
	"gorm.io/gorm"

	newsDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/news"
	"github.com/radityaputra/intranet-portal/internal/news"
)

// NewsRepository implements news.Repository using GORM
type NewsRepository struct {
	db *gorm.DB
}

func NewNewsRepository(db *gorm.DB) news.Repository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) GetAll(limit, offset int) ([]*news.Article, error) {
	var rows []*newsDatamodel.News
	err := r.db.Where("is_published = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return news.FromDataModelSlice(rows), nil
}

func (r *NewsRepository) GetByID(id int64) (*news.Article, error) {
	var n newsDatamodel.News
	err := r.db.Where("id = ? AND is_published = ?", id, true).First(&n).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return news.FromDataModel(&n), nil
}

func (r *NewsRepository) Create(article *news.Article) error {
	row := news.ToDataModel(article)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	article.ID = row.ID
	article.CreatedAt = row.CreatedAt
	return nil
}

func (r *NewsRepository) Delete(id int64) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&newsDatamodel.News{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
