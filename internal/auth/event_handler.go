package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/radityaputra/intranet-portal/internal/core/events"
)

// EventHandler writes the audit trail for session housekeeping.
type EventHandler struct {
	logger *slog.Logger
}

func NewEventHandler(logger *slog.Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

func (h *EventHandler) HandleSessionPurged(ctx context.Context, event events.Event) error {
	purgeEvent, ok := event.(*events.SessionPurgedEvent)
	if !ok {
		h.logger.Error("invalid event type for session purge handler", "event_type", event.EventType())
		return fmt.Errorf("expected SessionPurgedEvent, got %T", event)
	}

	h.logger.Info("expired session sweep completed",
		"purged", purgeEvent.Purged,
		"event_id", purgeEvent.EventID())

	return nil
}

func (h *EventHandler) RegisterEventHandlers(eventBus *events.EventBus) {
	eventBus.Subscribe(events.EventTypeSessionPurged, h.HandleSessionPurged)

	h.logger.Info("auth event handlers registered",
		"handlers", []string{events.EventTypeSessionPurged})
}
