package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Account is the credential-store record for a user. The hash never
// leaves this package: every outward shape is built from the projection.
type Account struct {
	ID              int64
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	Department      string
	UserLevel       Level
	Status          string
	ProfileImageURL *string
	CreatedAt       time.Time
}

// SessionUser is the reduced projection cached in the session store and
// attached to every authenticated request.
type SessionUser struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	UserLevel  Level  `json:"userLevel"`
}

// Session binds a cookie token to a SessionUser until ExpiresAt.
type Session struct {
	Token     string
	User      SessionUser
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// UserStore is what the auth service needs from user persistence.
type UserStore interface {
	GetByEmail(email string) (*Account, error)
	Create(account *Account) error
}

// SessionStore persists sessions keyed by token.
type SessionStore interface {
	Create(session *Session) error
	Get(token string) (*Session, error)
	Touch(token string, expiresAt time.Time) error
	Delete(token string) error
	DeleteExpired(now time.Time) (int64, error)
}

// ServiceAPI is the surface handlers and middleware depend on.
type ServiceAPI interface {
	Login(dto LoginDTO) (*Session, *Account, error)
	Register(dto RegisterDTO) (*Session, *Account, error)
	Logout(token string) error
	SessionFromToken(token string) (*SessionUser, error)
	PurgeExpiredSessions() (int64, error)
}

// GenerateSessionToken returns a cryptographically secure random token.
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

type ctxKey string

const contextSessionKey ctxKey = "session_user"

// SessionFromContext returns the projection stored by the session
// middleware, if any.
func SessionFromContext(ctx context.Context) (*SessionUser, bool) {
	if ctx == nil {
		return nil, false
	}
	su, ok := ctx.Value(contextSessionKey).(*SessionUser)
	return su, ok
}

func ContextWithSession(ctx context.Context, su *SessionUser) context.Context {
	return context.WithValue(ctx, contextSessionKey, su)
}

// Projection builds the session snapshot from an account.
func (a *Account) Projection() SessionUser {
	return SessionUser{
		ID:         a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Email:      a.Email,
		Department: a.Department,
		UserLevel:  a.UserLevel,
	}
}
