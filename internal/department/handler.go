package department

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/radityaputra/intranet-portal/internal/transport"
	"github.com/radityaputra/intranet-portal/internal/user"
	"github.com/radityaputra/intranet-portal/pkg/logger"
)

type ServiceAPI interface {
	GetAll() ([]*Department, error)
	Create(dto CreateDepartmentDTO) (*Department, error)
}

// UserLister is what the directory endpoint needs from the user module.
type UserLister interface {
	ByDepartment(department string) ([]*user.User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Users   UserLister
}

func NewHandler(svc ServiceAPI, users UserLister) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		Users:       users,
	}
}

// ListDepartments handles GET /departments
func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.GetAll()
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, departments)
}

// ListDepartmentUsers handles GET /departments/{name}/users
func (h *Handler) ListDepartmentUsers(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	users, err := h.Users.ByDepartment(name)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, users)
}

// CreateDepartment handles POST /admin/departments
func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var dto CreateDepartmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	dept, err := h.Service.Create(dto)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, dept)
}
