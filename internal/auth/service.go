package auth

import (
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/radityaputra/intranet-portal/internal"
)

// Service is the credential store and session manager in one place:
// it validates logins, registers accounts and owns the session lifecycle.
type Service struct {
	users           UserStore
	sessions        SessionStore
	sessionLifetime time.Duration
	bcryptCost      int
	logger          *slog.Logger
}

func NewService(users UserStore, sessions SessionStore, sessionLifetime time.Duration, bcryptCost int, logger *slog.Logger) *Service {
	if sessionLifetime <= 0 {
		sessionLifetime = 24 * time.Hour
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:           users,
		sessions:        sessions,
		sessionLifetime: sessionLifetime,
		bcryptCost:      bcryptCost,
		logger:          logger,
	}
}

// Login validates credentials and starts a session. A missing account and
// a wrong password produce the same error so callers cannot probe which
// emails exist.
func (s *Service) Login(dto LoginDTO) (*Session, *Account, error) {
	if err := dto.Validate(); err != nil {
		return nil, nil, err
	}

	account, err := s.users.GetByEmail(dto.Email)
	if err != nil {
		return nil, nil, internal.NewInternalError("failed to look up account", err)
	}
	if account == nil {
		return nil, nil, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, nil, internal.ErrInvalidCredentials
	}

	session, err := s.startSession(account)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user logged in", "user_id", account.ID, "level", account.UserLevel.String())
	return session, account, nil
}

// Register creates an account at the unassigned level and starts a
// session for it, mirroring the login flow.
func (s *Service) Register(dto RegisterDTO) (*Session, *Account, error) {
	if err := dto.Validate(); err != nil {
		return nil, nil, err
	}

	existing, err := s.users.GetByEmail(dto.Email)
	if err != nil {
		return nil, nil, internal.NewInternalError("failed to check existing user", err)
	}
	if existing != nil {
		return nil, nil, internal.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, nil, internal.NewInternalError("failed to hash password", err)
	}

	account := &Account{
		Email:        dto.Email,
		PasswordHash: string(hash),
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Department:   dto.Department,
		UserLevel:    LevelUnassigned,
		Status:       "active",
	}

	if err := s.users.Create(account); err != nil {
		return nil, nil, internal.NewInternalError("failed to create user", err)
	}

	session, err := s.startSession(account)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user registered", "user_id", account.ID, "department", account.Department)
	return session, account, nil
}

// Logout destroys the session. A store failure here is surfaced as a
// server error: the cookie may outlive the record otherwise.
func (s *Service) Logout(token string) error {
	if token == "" {
		return internal.ErrUnauthenticated
	}
	if err := s.sessions.Delete(token); err != nil {
		return internal.NewInternalError("could not destroy session", err)
	}
	return nil
}

// SessionFromToken resolves a cookie token to the stored projection and
// slides the expiry window forward on each use.
func (s *Service) SessionFromToken(token string) (*SessionUser, error) {
	if token == "" {
		return nil, internal.ErrUnauthenticated
	}

	session, err := s.sessions.Get(token)
	if err != nil || session == nil {
		return nil, internal.ErrUnauthenticated
	}

	now := time.Now()
	if session.Expired(now) {
		// best effort; the purge job sweeps anything missed here
		_ = s.sessions.Delete(token)
		return nil, internal.ErrSessionExpired
	}

	if err := s.sessions.Touch(token, now.Add(s.sessionLifetime)); err != nil {
		s.logger.Warn("failed to slide session expiry", "error", err)
	}

	user := session.User
	return &user, nil
}

// PurgeExpiredSessions removes rows whose expiry has passed.
func (s *Service) PurgeExpiredSessions() (int64, error) {
	return s.sessions.DeleteExpired(time.Now())
}

// SessionLifetime exposes the configured lifetime so the handler can set
// the cookie Max-Age consistently with the store.
func (s *Service) SessionLifetime() time.Duration {
	return s.sessionLifetime
}

func (s *Service) startSession(account *Account) (*Session, error) {
	token, err := GenerateSessionToken()
	if err != nil {
		return nil, internal.NewInternalError("failed to generate session token", err)
	}

	session := &Session{
		Token:     token,
		User:      account.Projection(),
		ExpiresAt: time.Now().Add(s.sessionLifetime),
		CreatedAt: time.Now(),
	}

	if err := s.sessions.Create(session); err != nil {
		return nil, internal.NewInternalError("failed to persist session", err)
	}
	return session, nil
}
