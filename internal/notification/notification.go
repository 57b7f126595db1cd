package notification

import (
	"time"

	notificationDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/notification"
)

const (
	TypeInfo     = "info"
	TypeWarning  = "warning"
	TypeError    = "error"
	TypeSuccess  = "success"
	TypeCritical = "critical"

	PriorityLow      = "low"
	PriorityNormal   = "normal"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// Notification is one inbox entry for a user.
type Notification struct {
	ID                     int64      `json:"id"`
	UserID                 int64      `json:"userId"`
	Title                  string     `json:"title"`
	Message                string     `json:"message"`
	Type                   string     `json:"type"`
	Priority               string     `json:"priority"`
	IsRead                 bool       `json:"isRead"`
	RequiresAcknowledgment bool       `json:"requiresAcknowledgment"`
	AcknowledgedAt         *time.Time `json:"acknowledgedAt,omitempty"`
	CreatedAt              time.Time  `json:"createdAt"`
}

func FromDataModel(n *notificationDatamodel.Notification) *Notification {
	return &Notification{
		ID:                     n.ID,
		UserID:                 n.UserID,
		Title:                  n.Title,
		Message:                n.Message,
		Type:                   n.Type,
		Priority:               n.Priority,
		IsRead:                 n.IsRead,
		RequiresAcknowledgment: n.RequiresAcknowledgment,
		AcknowledgedAt:         n.AcknowledgedAt,
		CreatedAt:              n.CreatedAt,
	}
}

func ToDataModel(n *Notification) *notificationDatamodel.Notification {
	return &notificationDatamodel.Notification{
		ID:                     n.ID,
		UserID:                 n.UserID,
		Title:                  n.Title,
		Message:                n.Message,
		Type:                   n.Type,
		Priority:               n.Priority,
		IsRead:                 n.IsRead,
		RequiresAcknowledgment: n.RequiresAcknowledgment,
		AcknowledgedAt:         n.AcknowledgedAt,
		CreatedAt:              n.CreatedAt,
	}
}

func FromDataModelSlice(rows []*notificationDatamodel.Notification) []*Notification {
	result := make([]*Notification, len(rows))
	for i, n := range rows {
		result[i] = FromDataModel(n)
	}
	return result
}
