package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/radityaputra/intranet-portal/internal"
	"github.com/radityaputra/intranet-portal/internal/transport"
	"github.com/radityaputra/intranet-portal/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service       ServiceAPI
	CookieName    string
	SecureCookies bool
}

func NewHandler(svc ServiceAPI, cookieName string, secureCookies bool) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	if cookieName == "" {
		cookieName = "intranet_session"
	}
	return &Handler{
		BaseHandler:   transport.NewBaseHandler(lg),
		Service:       svc,
		CookieName:    cookieName,
		SecureCookies: secureCookies,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, account, err := h.Service.Login(dto)
	if err != nil {
		h.Logger.Warn("login failed", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	h.WriteJSON(w, http.StatusOK, NewAuthResponse(account))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, account, err := h.Service.Register(dto)
	if err != nil {
		h.Logger.Warn("registration failed", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.setSessionCookie(w, session)
	h.WriteJSON(w, http.StatusCreated, NewAuthResponse(account))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(r)
	if token == "" {
		h.WriteAppError(w, internal.ErrUnauthenticated)
		return
	}

	if err := h.Service.Logout(token); err != nil {
		h.Logger.Error("logout failed", "error", err)
		h.WriteAppError(w, err)
		return
	}

	h.clearSessionCookie(w)
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// CurrentUser serves both GET /api/user and GET /api/auth/user.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	token := h.sessionToken(r)
	su, err := h.Service.SessionFromToken(token)
	if err != nil {
		h.WriteAppError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, su)
}

func (h *Handler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
