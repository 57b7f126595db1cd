package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/radityaputra/intranet-portal/internal"
)

// stubSessionService resolves a token to a fixed projection.
type stubSessionService struct {
	tokens map[string]*SessionUser
}

func (s *stubSessionService) Login(dto LoginDTO) (*Session, *Account, error) {
	return nil, nil, internal.ErrInvalidCredentials
}

func (s *stubSessionService) Register(dto RegisterDTO) (*Session, *Account, error) {
	return nil, nil, internal.ErrInvalidCredentials
}

func (s *stubSessionService) Logout(token string) error { return nil }

func (s *stubSessionService) SessionFromToken(token string) (*SessionUser, error) {
	if su, ok := s.tokens[token]; ok {
		return su, nil
	}
	return nil, internal.ErrUnauthenticated
}

func (s *stubSessionService) PurgeExpiredSessions() (int64, error) { return 0, nil }

var _ = ginkgo.Describe("Guard", func() {
	var (
		guard   *Guard
		service *stubSessionService
		next    http.Handler
	)

	newRequest := func(token string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: "intranet_session", Value: token})
		}
		return req
	}

	ginkgo.BeforeEach(func() {
		service = &stubSessionService{tokens: map[string]*SessionUser{
			"tok-admin":     {ID: 1, Email: "admin@example.org", UserLevel: LevelAdmin},
			"tok-head":      {ID: 3, Email: "head@example.org", UserLevel: LevelDeptHead},
			"tok-staff":     {ID: 4, Email: "staff@example.org", UserLevel: LevelStaff},
			"tok-volunteer": {ID: 5, Email: "volunteer@example.org", UserLevel: LevelVolunteer},
		}}
		guard = NewGuard(service, "intranet_session", slog.Default())
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	ginkgo.Describe("RequireSession", func() {
		ginkgo.It("should put the projection in the request context", func() {
			var seen *SessionUser
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = SessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			guard.RequireSession(inner).ServeHTTP(rec, newRequest("tok-staff"))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(seen).ToNot(gomega.BeNil())
			gomega.Expect(seen.ID).To(gomega.Equal(int64(4)))
		})

		ginkgo.It("should reject a request without a cookie", func() {
			rec := httptest.NewRecorder()
			guard.RequireSession(next).ServeHTTP(rec, newRequest(""))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})

		ginkgo.It("should reject an unknown token", func() {
			rec := httptest.NewRecorder()
			guard.RequireSession(next).ServeHTTP(rec, newRequest("tok-bogus"))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("RequireAdmin", func() {
		ginkgo.It("should accept level 1", func() {
			rec := httptest.NewRecorder()
			guard.RequireAdmin()(next).ServeHTTP(rec, newRequest("tok-admin"))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should accept level 3, the boundary", func() {
			rec := httptest.NewRecorder()
			guard.RequireAdmin()(next).ServeHTTP(rec, newRequest("tok-head"))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})

		ginkgo.It("should reject level 4 with a 403", func() {
			rec := httptest.NewRecorder()
			guard.RequireAdmin()(next).ServeHTTP(rec, newRequest("tok-staff"))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})

		ginkgo.It("should reject a missing session with a 401, not a 403", func() {
			rec := httptest.NewRecorder()
			guard.RequireAdmin()(next).ServeHTTP(rec, newRequest(""))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusUnauthorized))
		})
	})

	ginkgo.Describe("RequireLevelAtMost", func() {
		ginkgo.It("should gate on the given boundary", func() {
			rec := httptest.NewRecorder()
			guard.RequireLevelAtMost(LevelVolunteer)(next).ServeHTTP(rec, newRequest("tok-volunteer"))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			rec = httptest.NewRecorder()
			guard.RequireLevelAtMost(LevelAdmin)(next).ServeHTTP(rec, newRequest("tok-head"))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusForbidden))
		})
	})
})
