package postgres

import (
	"time"

	"gorm.io/gorm"

	notificationDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/notification"
	"github.com/radityaputra/intranet-portal/internal/notification"
)

// NotificationRepository implements notification.Repository using GORM
type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) notification.Repository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) GetForUser(userID int64) ([]*notification.Notification, error) {
	var rows []*notificationDatamodel.Notification
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return notification.FromDataModelSlice(rows), nil
}

func (r *NotificationRepository) GetUnreadForUser(userID int64) ([]*notification.Notification, error) {
	var rows []*notificationDatamodel.Notification
	err := r.db.Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return notification.FromDataModelSlice(rows), nil
}

func (r *NotificationRepository) GetCriticalForUser(userID int64) ([]*notification.Notification, error) {
	var rows []*notificationDatamodel.Notification
	err := r.db.Where(
		"user_id = ? AND priority = ? AND is_read = ? AND requires_acknowledgment = ?",
		userID, notification.PriorityCritical, false, true).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return notification.FromDataModelSlice(rows), nil
}

func (r *NotificationRepository) Create(n *notification.Notification) error {
	row := notification.ToDataModel(n)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	n.ID = row.ID
	n.CreatedAt = row.CreatedAt
	return nil
}

func (r *NotificationRepository) MarkRead(id, userID int64) (bool, error) {
	res := r.db.Model(&notificationDatamodel.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Acknowledge stamps acknowledged_at only when it is still null, so a
// repeat call keeps the original timestamp.
func (r *NotificationRepository) Acknowledge(id, userID int64, at time.Time) (*notification.Notification, error) {
	var row notificationDatamodel.Notification
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&row).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{"is_read": true}
		if row.AcknowledgedAt == nil {
			updates["acknowledged_at"] = at
			row.AcknowledgedAt = &at
		}
		row.IsRead = true
		return tx.Model(&notificationDatamodel.Notification{}).
			Where("id = ?", id).
			Updates(updates).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return notification.FromDataModel(&row), nil
}
