package auth

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/radityaputra/intranet-portal/internal"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserStore for testing
type mockUserStore struct {
	accounts      map[string]*Account
	nextID        int64
	returnError   bool
	errorToReturn error
}

func newMockUserStore() *mockUserStore {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	return &mockUserStore{
		nextID: 100,
		accounts: map[string]*Account{
			"staff@example.org": {
				ID: 1, Email: "staff@example.org", PasswordHash: string(hash),
				FirstName: "Dewi", LastName: "Pratama",
				Department: "Finance", UserLevel: LevelStaff, Status: "active",
			},
			"admin@example.org": {
				ID: 2, Email: "admin@example.org", PasswordHash: string(hash),
				FirstName: "Ava", LastName: "Siregar",
				Department: "Administration", UserLevel: LevelAdmin, Status: "active",
			},
		},
	}
}

func (m *mockUserStore) GetByEmail(email string) (*Account, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	return m.accounts[email], nil
}

func (m *mockUserStore) Create(account *Account) error {
	if m.returnError {
		return m.errorToReturn
	}
	m.nextID++
	account.ID = m.nextID
	m.accounts[account.Email] = account
	return nil
}

// Mock SessionStore for testing
type mockSessionStore struct {
	sessions      map[string]*Session
	returnError   bool
	errorToReturn error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: map[string]*Session{}}
}

func (m *mockSessionStore) Create(session *Session) error {
	if m.returnError {
		return m.errorToReturn
	}
	copied := *session
	m.sessions[session.Token] = &copied
	return nil
}

func (m *mockSessionStore) Get(token string) (*Session, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	return m.sessions[token], nil
}

func (m *mockSessionStore) Touch(token string, expiresAt time.Time) error {
	if m.returnError {
		return m.errorToReturn
	}
	if s, ok := m.sessions[token]; ok {
		s.ExpiresAt = expiresAt
	}
	return nil
}

func (m *mockSessionStore) Delete(token string) error {
	if m.returnError {
		return m.errorToReturn
	}
	delete(m.sessions, token)
	return nil
}

func (m *mockSessionStore) DeleteExpired(now time.Time) (int64, error) {
	if m.returnError {
		return 0, m.errorToReturn
	}
	var count int64
	for token, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, token)
			count++
		}
	}
	return count, nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		users    *mockUserStore
		sessions *mockSessionStore
	)

	ginkgo.BeforeEach(func() {
		users = newMockUserStore()
		sessions = newMockSessionStore()
		service = NewService(users, sessions, 24*time.Hour, bcrypt.MinCost, slog.Default())
	})

	ginkgo.Describe("Login", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should start a session carrying the user projection", func() {
				session, account, err := service.Login(LoginDTO{
					Email:    "staff@example.org",
					Password: "correct_password",
				})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(session.Token).To(gomega.HaveLen(64))
				gomega.Expect(session.User.ID).To(gomega.Equal(int64(1)))
				gomega.Expect(session.User.UserLevel).To(gomega.Equal(LevelStaff))
				gomega.Expect(account.Email).To(gomega.Equal("staff@example.org"))
				gomega.Expect(sessions.sessions).To(gomega.HaveKey(session.Token))
			})

			ginkgo.It("should snapshot the level at login time", func() {
				session, _, err := service.Login(LoginDTO{
					Email:    "admin@example.org",
					Password: "correct_password",
				})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				// a later level change does not affect the stored session
				users.accounts["admin@example.org"].UserLevel = LevelVolunteer

				su, err := service.SessionFromToken(session.Token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(su.UserLevel).To(gomega.Equal(LevelAdmin))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should return the same error for an unknown email", func() {
				_, _, err := service.Login(LoginDTO{
					Email:    "nobody@example.org",
					Password: "correct_password",
				})
				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
			})

			ginkgo.It("should return the same error for a wrong password", func() {
				_, _, err := service.Login(LoginDTO{
					Email:    "staff@example.org",
					Password: "wrong_password",
				})
				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
			})
		})

		ginkgo.Context("when the user store fails", func() {
			ginkgo.It("should surface a server error instead of invalid credentials", func() {
				users.returnError = true
				users.errorToReturn = errors.New("connection refused")

				_, _, err := service.Login(LoginDTO{
					Email:    "staff@example.org",
					Password: "correct_password",
				})

				gomega.Expect(err).ToNot(gomega.Equal(internal.ErrInvalidCredentials))
				appErr, ok := internal.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.StatusCode).To(gomega.Equal(500))
			})
		})

		ginkgo.Context("when input validation fails", func() {
			ginkgo.It("should list the missing fields", func() {
				_, _, err := service.Login(LoginDTO{})

				appErr, ok := internal.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeMissingFields))
				gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))

				details, ok := appErr.Details.(internal.ValidationErrors)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(details.Errors).To(gomega.HaveLen(2))
			})
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should create an unassigned account and start a session", func() {
			session, account, err := service.Register(RegisterDTO{
				FirstName:  "Citra",
				LastName:   "Wijaya",
				Email:      "citra@example.org",
				Password:   "secret",
				Department: "Outreach",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(account.UserLevel).To(gomega.Equal(LevelUnassigned))
			gomega.Expect(account.Status).To(gomega.Equal("active"))
			gomega.Expect(account.PasswordHash).ToNot(gomega.Equal("secret"))
			gomega.Expect(session.User.Email).To(gomega.Equal("citra@example.org"))
		})

		ginkgo.It("should reject a duplicate email with a conflict", func() {
			_, _, err := service.Register(RegisterDTO{
				FirstName:  "Another",
				LastName:   "Staff",
				Email:      "staff@example.org",
				Password:   "secret",
				Department: "Finance",
			})
			gomega.Expect(err).To(gomega.Equal(internal.ErrEmailTaken))
		})

		ginkgo.It("should require every field", func() {
			_, _, err := service.Register(RegisterDTO{Email: "x@example.org"})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeMissingFields))
		})
	})

	ginkgo.Describe("SessionFromToken", func() {
		ginkgo.It("should reject an empty token", func() {
			_, err := service.SessionFromToken("")
			gomega.Expect(err).To(gomega.Equal(internal.ErrUnauthenticated))
		})

		ginkgo.It("should reject an unknown token", func() {
			_, err := service.SessionFromToken("deadbeef")
			gomega.Expect(err).To(gomega.Equal(internal.ErrUnauthenticated))
		})

		ginkgo.It("should reject and delete an expired session", func() {
			session, _, err := service.Login(LoginDTO{
				Email:    "staff@example.org",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			sessions.sessions[session.Token].ExpiresAt = time.Now().Add(-time.Minute)

			_, err = service.SessionFromToken(session.Token)
			gomega.Expect(err).To(gomega.Equal(internal.ErrSessionExpired))
			gomega.Expect(sessions.sessions).ToNot(gomega.HaveKey(session.Token))
		})

		ginkgo.It("should slide the expiry forward on use", func() {
			session, _, err := service.Login(LoginDTO{
				Email:    "staff@example.org",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			sessions.sessions[session.Token].ExpiresAt = time.Now().Add(time.Minute)

			_, err = service.SessionFromToken(session.Token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(sessions.sessions[session.Token].ExpiresAt).
				To(gomega.BeTemporally(">", time.Now().Add(23*time.Hour)))
		})
	})

	ginkgo.Describe("Logout", func() {
		ginkgo.It("should destroy the session row", func() {
			session, _, err := service.Login(LoginDTO{
				Email:    "staff@example.org",
				Password: "correct_password",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.Logout(session.Token)).To(gomega.Succeed())
			gomega.Expect(sessions.sessions).ToNot(gomega.HaveKey(session.Token))
		})

		ginkgo.It("should surface a store failure as a server error", func() {
			sessions.returnError = true
			sessions.errorToReturn = errors.New("store down")

			err := service.Logout("some-token")
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(500))
		})
	})

	ginkgo.Describe("PurgeExpiredSessions", func() {
		ginkgo.It("should remove only expired rows", func() {
			live, _, err := service.Login(LoginDTO{Email: "staff@example.org", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			stale, _, err := service.Login(LoginDTO{Email: "admin@example.org", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			sessions.sessions[stale.Token].ExpiresAt = time.Now().Add(-time.Hour)

			purged, err := service.PurgeExpiredSessions()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(purged).To(gomega.Equal(int64(1)))
			gomega.Expect(sessions.sessions).To(gomega.HaveKey(live.Token))
		})
	})
})
