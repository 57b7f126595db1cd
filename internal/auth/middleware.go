package auth

import (
	"log/slog"
	"net/http"
)

// Guard gates protected routes: presence of a session for authenticated
// surfaces, privilege level for the admin surface.
type Guard struct {
	service ServiceAPI
	cookie  string
	logger  *slog.Logger
}

func NewGuard(service ServiceAPI, cookieName string, logger *slog.Logger) *Guard {
	if cookieName == "" {
		cookieName = "intranet_session"
	}
	return &Guard{service: service, cookie: cookieName, logger: logger}
}

// RequireSession resolves the session cookie and puts the projection in
// the request context; without a valid session the request stops at 401.
func (g *Guard) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		su, ok := g.resolve(r)
		if !ok {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), su)))
	})
}

// RequireLevelAtMost rejects sessions whose level is numerically above
// max (smaller numbers are more privileged). It resolves the session
// itself so it can stand alone on a route group.
func (g *Guard) RequireLevelAtMost(max Level) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			su, ok := SessionFromContext(r.Context())
			if !ok {
				su, ok = g.resolve(r)
				if !ok {
					writeUnauthorized(w)
					return
				}
				r = r.WithContext(ContextWithSession(r.Context(), su))
			}

			if !su.UserLevel.AtLeast(max) {
				g.logger.Warn("access denied: insufficient level",
					"user_id", su.ID,
					"user_level", int(su.UserLevel),
					"required_at_most", int(max))
				writeForbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin gates the admin surface: DeptHead (level 3) and above.
func (g *Guard) RequireAdmin() func(http.Handler) http.Handler {
	return g.RequireLevelAtMost(AdminAccessLevel)
}

func (g *Guard) resolve(r *http.Request) (*SessionUser, bool) {
	cookie, err := r.Cookie(g.cookie)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	su, err := g.service.SessionFromToken(cookie.Value)
	if err != nil {
		return nil, false
	}
	return su, true
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"code":401,"message":"Authentication required"}`))
}

func writeForbidden(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(`{"code":403,"message":"Insufficient permissions"}`))
}
