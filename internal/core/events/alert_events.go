package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeAlertBroadcast = "alert.broadcast"
	EventTypeSessionPurged  = "session.purged"
)

// AlertBroadcastEvent records one completed critical-alert fanout.
type AlertBroadcastEvent struct {
	BaseEvent
	Title       string `json:"title"`
	TargetLevel int    `json:"target_level"`
	IssuedByID  int64  `json:"issued_by_id"`
	Notified    int    `json:"notified"`
}

func NewAlertBroadcastEvent(title string, targetLevel int, issuedByID int64, notified int) *AlertBroadcastEvent {
	return &AlertBroadcastEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeAlertBroadcast,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"title":        title,
				"target_level": targetLevel,
				"issued_by_id": issuedByID,
				"notified":     notified,
			},
		},
		Title:       title,
		TargetLevel: targetLevel,
		IssuedByID:  issuedByID,
		Notified:    notified,
	}
}

// SessionPurgedEvent records one expired-session sweep.
type SessionPurgedEvent struct {
	BaseEvent
	Purged int64 `json:"purged"`
}

func NewSessionPurgedEvent(purged int64) *SessionPurgedEvent {
	return &SessionPurgedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeSessionPurged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"purged": purged,
			},
		},
		Purged: purged,
	}
}
