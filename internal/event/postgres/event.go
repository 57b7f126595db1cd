package postgres

import (
	"time"

	"gorm.io/gorm"

	eventDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/event"
	"github.com/radityaputra/intranet-portal/internal/event"
)

// EventRepository implements event.Repository using GORM
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) event.Repository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetAll(limit, offset int) ([]*event.Event, error) {
	var rows []*eventDatamodel.Event
	err := r.db.Order("start_time ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return event.FromDataModelSlice(rows), nil
}

func (r *EventRepository) GetUpcoming(after time.Time, limit int) ([]*event.Event, error) {
	var rows []*eventDatamodel.Event
	err := r.db.Where("start_time > ?", after).
		Order("start_time ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return event.FromDataModelSlice(rows), nil
}

func (r *EventRepository) GetByID(id int64) (*event.Event, error) {
	var e eventDatamodel.Event
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return event.FromDataModel(&e), nil
}

func (r *EventRepository) Create(ev *event.Event) error {
	row := event.ToDataModel(ev)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	ev.ID = row.ID
	ev.CreatedAt = row.CreatedAt
	return nil
}

func (r *EventRepository) Delete(id int64) (bool, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&eventDatamodel.Attendee{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&eventDatamodel.Event{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceRSVP keeps a single row per (event, user): any previous answer
// is removed before the new one is inserted.
func (r *EventRepository) ReplaceRSVP(eventID, userID int64, status string) (*event.Attendee, error) {
	row := &eventDatamodel.Attendee{
		EventID: eventID,
		UserID:  userID,
		Status:  status,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ? AND user_id = ?", eventID, userID).
			Delete(&eventDatamodel.Attendee{}).Error; err != nil {
			return err
		}
		return tx.Create(row).Error
	})
	if err != nil {
		return nil, err
	}
	return event.AttendeeFromDataModel(row), nil
}

func (r *EventRepository) AppendRSVP(eventID, userID int64, status string) (*event.Attendee, error) {
	row := &eventDatamodel.Attendee{
		EventID: eventID,
		UserID:  userID,
		Status:  status,
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return event.AttendeeFromDataModel(row), nil
}

func (r *EventRepository) GetAttendees(eventID int64) ([]*event.Attendee, error) {
	var rows []*eventDatamodel.Attendee
	err := r.db.Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return event.AttendeesFromDataModel(rows), nil
}
