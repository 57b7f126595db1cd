package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/radityaputra/intranet-portal/internal/core/events"
)

// EventHandler writes the audit trail for completed alert fanouts.
type EventHandler struct {
	logger *slog.Logger
}

func NewEventHandler(logger *slog.Logger) *EventHandler {
	return &EventHandler{logger: logger}
}

func (h *EventHandler) HandleAlertBroadcast(ctx context.Context, event events.Event) error {
	alertEvent, ok := event.(*events.AlertBroadcastEvent)
	if !ok {
		h.logger.Error("invalid event type for alert broadcast handler", "event_type", event.EventType())
		return fmt.Errorf("expected AlertBroadcastEvent, got %T", event)
	}

	h.logger.Info("critical alert broadcast completed",
		"title", alertEvent.Title,
		"target_level", alertEvent.TargetLevel,
		"issued_by_id", alertEvent.IssuedByID,
		"notified", alertEvent.Notified,
		"event_id", alertEvent.EventID())

	return nil
}

func (h *EventHandler) RegisterEventHandlers(eventBus *events.EventBus) {
	eventBus.Subscribe(events.EventTypeAlertBroadcast, h.HandleAlertBroadcast)

	h.logger.Info("notification event handlers registered",
		"handlers", []string{events.EventTypeAlertBroadcast})
}
