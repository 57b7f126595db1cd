package news

import (
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
	List(limit, offset int) ([]*Article, error)
	GetByID(id int64) (*Article, error)
	Create(authorID int64, dto CreateNewsDTO) (*Article, error)
	Delete(id int64) error
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

// ListNews handles GET /news
func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	limit, offset := transport.Pagination(r, 50)

	articles, err := h.Service.List(limit, offset)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, articles)
}

// GetNews handles GET /news/{id}
func (h *Handler) GetNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid news id")
		return
	}

	article, err := h.Service.GetByID(id)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, article)
}

// CreateNews handles POST /admin/news
func (h *Handler) CreateNews(w http.ResponseWriter, r *http.Request) {
	su, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	var dto CreateNewsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	article, err := h.Service.Create(su.ID, dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, article)
}

// DeleteNews handles DELETE /admin/news/{id}
func (h *Handler) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid news id")
		return
	}

	if err := h.Service.Delete(id); err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "News article deleted successfully"})
}
