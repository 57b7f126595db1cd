package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/radityaputra/intranet-portal/internal/auth"
	"github.com/radityaputra/intranet-portal/internal/chat"
	"github.com/radityaputra/intranet-portal/internal/department"
	"github.com/radityaputra/intranet-portal/internal/event"
	"github.com/radityaputra/intranet-portal/internal/news"
	"github.com/radityaputra/intranet-portal/internal/notification"
	"github.com/radityaputra/intranet-portal/internal/transport/middleware"
	"github.com/radityaputra/intranet-portal/internal/transport/swagger"
	"github.com/radityaputra/intranet-portal/internal/user"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth         *auth.Handler
	Guard        *auth.Guard
	User         *user.Handler
	Department   *department.Handler
	News         *news.Handler
	Event        *event.Handler
	Chat         *chat.Handler
	Notification *notification.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Post("/login", h.Auth.Login)
		r.Post("/register", h.Auth.Register)
		r.Post("/logout", h.Auth.Logout)

		// Public content
		r.Get("/news", h.News.ListNews)
		r.Get("/news/{id}", h.News.GetNews)
		r.Get("/events", h.Event.ListEvents)
		r.Get("/events/upcoming", h.Event.UpcomingEvents)
		r.Get("/events/{id}", h.Event.GetEvent)
		r.Get("/events/{id}/attendees", h.Event.ListAttendees)
		r.Get("/departments", h.Department.ListDepartments)
		r.Get("/departments/{name}/users", h.Department.ListDepartmentUsers)

		// Routes that require a valid session
		r.Group(func(sr chi.Router) {
			sr.Use(h.Guard.RequireSession)

			sr.Get("/user", h.Auth.CurrentUser)
			sr.Get("/auth/user", h.Auth.CurrentUser)

			sr.Get("/users", h.User.ListUsers)
			sr.Get("/users/{id}", h.User.GetUser)
			sr.Put("/users/{id}", h.User.UpdateUser)

			sr.Get("/notifications", h.Notification.ListNotifications)
			sr.Get("/notifications/unread", h.Notification.UnreadNotifications)
			sr.Get("/notifications/critical", h.Notification.CriticalNotifications)
			sr.Put("/notifications/{id}/read", h.Notification.MarkRead)
			sr.Post("/notifications/{id}/acknowledge", h.Notification.Acknowledge)

			sr.Post("/events/{id}/rsvp", h.Event.RSVP)

			sr.Route("/chat/rooms", func(cr chi.Router) {
				cr.Get("/", h.Chat.ListRooms)
				cr.Post("/", h.Chat.CreateRoom)
				cr.Get("/{id}", h.Chat.GetRoom)
				cr.Get("/{id}/messages", h.Chat.ListMessages)
				cr.Post("/{id}/messages", h.Chat.SendMessage)
			})
		})

		// Admin surface, level 3 or better
		r.Group(func(ar chi.Router) {
			ar.Use(h.Guard.RequireAdmin())

			ar.Post("/admin/news", h.News.CreateNews)
			ar.Delete("/admin/news/{id}", h.News.DeleteNews)
			ar.Post("/admin/events", h.Event.CreateEvent)
			ar.Delete("/admin/events/{id}", h.Event.DeleteEvent)
			ar.Post("/admin/departments", h.Department.CreateDepartment)
			ar.Post("/admin/alerts/critical", h.Notification.BroadcastAlert)
		})
	})
}
