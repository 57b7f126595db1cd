package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/radityaputra/intranet-portal/internal"
	"github.com/radityaputra/intranet-portal/internal/auth"
	authPostgres "github.com/radityaputra/intranet-portal/internal/auth/postgres"
	"github.com/radityaputra/intranet-portal/internal/chat"
	chatPostgres "github.com/radityaputra/intranet-portal/internal/chat/postgres"
	coreEvents "github.com/radityaputra/intranet-portal/internal/core/events"
	"github.com/radityaputra/intranet-portal/internal/department"
	departmentPostgres "github.com/radityaputra/intranet-portal/internal/department/postgres"
	"github.com/radityaputra/intranet-portal/internal/event"
	eventPostgres "github.com/radityaputra/intranet-portal/internal/event/postgres"
	"github.com/radityaputra/intranet-portal/internal/news"
	newsPostgres "github.com/radityaputra/intranet-portal/internal/news/postgres"
	"github.com/radityaputra/intranet-portal/internal/notification"
	notificationPostgres "github.com/radityaputra/intranet-portal/internal/notification/postgres"
	"github.com/radityaputra/intranet-portal/internal/transport/rest"
	"github.com/radityaputra/intranet-portal/internal/transport/swagger"
	"github.com/radityaputra/intranet-portal/internal/user"
	userPostgres "github.com/radityaputra/intranet-portal/internal/user/postgres"
	"github.com/radityaputra/intranet-portal/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
	Bus    *coreEvents.EventBus
	Cron   *cron.Cron
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := swagger.ValidateSpec(context.Background(), "./api/openapi.yml"); err != nil {
		deps.Logger.Warn("openapi spec validation failed", "error", err)
	}

	authService := setupRoutes(deps)
	startSessionPurge(deps, authService)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		deps.Cron.Stop()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) *auth.Service {
	cfg := deps.Config

	authService := auth.NewService(
		authPostgres.NewUserRepository(deps.GormDB),
		authPostgres.NewSessionRepository(deps.GormDB),
		cfg.Security.SessionLifetime,
		cfg.Security.BCryptCost,
		deps.Logger,
	)
	guard := auth.NewGuard(authService, cfg.Security.SessionCookieName, deps.Logger)

	userService := user.NewService(userPostgres.NewUserRepository(deps.GormDB), deps.Logger)
	departmentService := department.NewService(departmentPostgres.NewDepartmentRepository(deps.GormDB), deps.Logger)
	newsService := news.NewService(newsPostgres.NewNewsRepository(deps.GormDB), deps.Logger)
	eventService := event.NewService(eventPostgres.NewEventRepository(deps.GormDB), cfg.Events.RSVPMode, deps.Logger)
	chatService := chat.NewService(chatPostgres.NewChatRepository(deps.GormDB), deps.Logger)
	notificationService := notification.NewService(
		notificationPostgres.NewNotificationRepository(deps.GormDB),
		departmentService,
		userService,
		deps.Bus,
		deps.Logger,
	)

	notificationEventHandler := notification.NewEventHandler(deps.Logger)
	notificationEventHandler.RegisterEventHandlers(deps.Bus)
	authEventHandler := auth.NewEventHandler(deps.Logger)
	authEventHandler.RegisterEventHandlers(deps.Bus)

	handlers := rest.Handlers{
		Auth:         auth.NewHandler(authService, cfg.Security.SessionCookieName, cfg.Security.SecureCookies),
		Guard:        guard,
		User:         user.NewHandler(userService),
		Department:   department.NewHandler(departmentService, userService),
		News:         news.NewHandler(newsService),
		Event:        event.NewHandler(eventService),
		Chat:         chat.NewHandler(chatService),
		Notification: notification.NewHandler(notificationService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, deps.Logger)
	return authService
}

// startSessionPurge sweeps expired session rows every hour.
func startSessionPurge(deps *Dependencies, authService *auth.Service) {
	_, err := deps.Cron.AddFunc("@hourly", func() {
		purged, err := authService.PurgeExpiredSessions()
		if err != nil {
			deps.Logger.Error("session purge failed", "error", err)
			return
		}
		if purged > 0 {
			deps.Logger.Info("purged expired sessions", "count", purged)
			_ = deps.Bus.Publish(context.Background(), coreEvents.NewSessionPurgedEvent(purged))
		}
	})
	if err != nil {
		deps.Logger.Error("failed to schedule session purge", "error", err)
		return
	}
	deps.Cron.Start()
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"), config.Observability.Logging.File)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm connection: %w", err)
	}

	log := logger.LoggerWrapper()

	return &Dependencies{
		Config: config,
		Logger: log,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
		Bus:    coreEvents.NewEventBus(log),
		Cron:   cron.New(),
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
