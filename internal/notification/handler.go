package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/radityaputra/intranet-portal/internal"
	"github.com/radityaputra/intranet-portal/internal/auth"
	"github.com/radityaputra/intranet-portal/internal/transport"
	"github.com/radityaputra/intranet-portal/pkg/logger"
)

type ServiceAPI interface {
	ListForUser(userID int64) ([]*Notification, error)
	UnreadForUser(userID int64) ([]*Notification, error)
	CriticalForUser(userID int64, level auth.Level) ([]*Notification, error)
	MarkRead(id, userID int64) error
	Acknowledge(id, userID int64) (*Notification, error)
	BroadcastCriticalAlert(ctx context.Context, issuedByID int64, dto BroadcastAlertDTO) (*BroadcastResult, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// ListNotifications handles GET /notifications
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	rows, err := h.Service.ListForUser(su.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

// UnreadNotifications handles GET /notifications/unread
func (h *Handler) UnreadNotifications(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	rows, err := h.Service.UnreadForUser(su.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

// CriticalNotifications handles GET /notifications/critical
func (h *Handler) CriticalNotifications(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	rows, err := h.Service.CriticalForUser(su.ID, su.UserLevel)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

// MarkRead handles PUT /notifications/{id}/read
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.Service.MarkRead(id, su.ID); err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// Acknowledge handles POST /notifications/{id}/acknowledge
func (h *Handler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	n, err := h.Service.Acknowledge(id, su.ID)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, n)
}

// BroadcastAlert handles POST /admin/alerts/critical
func (h *Handler) BroadcastAlert(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	var dto BroadcastAlertDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.BroadcastCriticalAlert(r.Context(), su.ID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, result)
}
