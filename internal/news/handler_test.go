package news_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/radityaputra/intranet-portal/internal"
	"github.com/radityaputra/intranet-portal/internal/auth"
	newsDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/news"
	"github.com/radityaputra/intranet-portal/internal/news"
	newsPostgres "github.com/radityaputra/intranet-portal/internal/news/postgres"
)

func TestNewsHandler(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "News Module Suite")
}

// fixedSessions maps cookie tokens to projections for the guard.
type fixedSessions struct {
	tokens map[string]*auth.SessionUser
}

func (s *fixedSessions) Login(dto auth.LoginDTO) (*auth.Session, *auth.Account, error) {
	return nil, nil, internal.ErrInvalidCredentials
}

func (s *fixedSessions) Register(dto auth.RegisterDTO) (*auth.Session, *auth.Account, error) {
	return nil, nil, internal.ErrInvalidCredentials
}

func (s *fixedSessions) Logout(token string) error { return nil }

func (s *fixedSessions) SessionFromToken(token string) (*auth.SessionUser, error) {
	if su, ok := s.tokens[token]; ok {
		return su, nil
	}
	return nil, internal.ErrUnauthenticated
}

func (s *fixedSessions) PurgeExpiredSessions() (int64, error) { return 0, nil }

var _ = Describe("News endpoints", func() {
	var (
		router *chi.Mux
	)

	withSession := func(req *http.Request, token string) *http.Request {
		req.AddCookie(&http.Cookie{Name: "intranet_session", Value: token})
		return req
	}

	BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&newsDatamodel.News{})).To(Succeed())

		service := news.NewService(newsPostgres.NewNewsRepository(db), slog.Default())
		handler := news.NewHandler(service)

		sessions := &fixedSessions{tokens: map[string]*auth.SessionUser{
			"tok-admin": {ID: 2, Email: "admin@example.org", UserLevel: auth.LevelAdmin},
			"tok-staff": {ID: 4, Email: "staff@example.org", UserLevel: auth.LevelStaff},
		}}
		guard := auth.NewGuard(sessions, "intranet_session", slog.Default())

		router = chi.NewRouter()
		router.Get("/api/news", handler.ListNews)
		router.Get("/api/news/{id}", handler.GetNews)
		router.Group(func(ar chi.Router) {
			ar.Use(guard.RequireAdmin())
			ar.Post("/api/admin/news", handler.CreateNews)
			ar.Delete("/api/admin/news/{id}", handler.DeleteNews)
		})
	})

	createArticle := func() news.Article {
		body, _ := json.Marshal(news.CreateNewsDTO{
			Title:    "Town hall recap",
			Content:  "Everything discussed at the town hall.",
			Summary:  "Town hall notes",
			Category: "announcement",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/news", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, withSession(req, "tok-admin"))
		Expect(rec.Code).To(Equal(http.StatusCreated))

		var created news.Article
		Expect(json.Unmarshal(rec.Body.Bytes(), &created)).To(Succeed())
		return created
	}

	It("should round-trip an admin POST to a public GET", func() {
		created := createArticle()
		Expect(created.ID).To(BeNumerically(">", 0))
		Expect(created.AuthorID).To(Equal(int64(2)))
		Expect(created.IsPublished).To(BeTrue())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/news", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))

		var listed []news.Article
		Expect(json.Unmarshal(rec.Body.Bytes(), &listed)).To(Succeed())
		Expect(listed).To(HaveLen(1))
		Expect(listed[0].Title).To(Equal("Town hall recap"))
	})

	It("should reject a staff-level POST with a 403", func() {
		body, _ := json.Marshal(news.CreateNewsDTO{
			Title: "t", Content: "c", Summary: "s", Category: "x",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/news", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, withSession(req, "tok-staff"))
		Expect(rec.Code).To(Equal(http.StatusForbidden))
	})

	It("should reject an unauthenticated POST with a 401", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/news", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
	})

	It("should list the missing fields on an incomplete POST", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/news",
			bytes.NewReader([]byte(`{"title":"only a title"}`)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, withSession(req, "tok-admin"))
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(rec.Body.String()).To(ContainSubstring("content"))
		Expect(rec.Body.String()).To(ContainSubstring("summary"))
		Expect(rec.Body.String()).To(ContainSubstring("category"))
	})

	It("should delete an article and 404 it afterwards", func() {
		created := createArticle()
		path := fmt.Sprintf("/api/admin/news/%d", created.ID)

		req := httptest.NewRequest(http.MethodDelete, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, withSession(req, "tok-admin"))
		Expect(rec.Code).To(Equal(http.StatusOK))

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/news/%d", created.ID), nil))
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})

	It("should 404 a delete of a missing article", func() {
		req := httptest.NewRequest(http.MethodDelete, "/api/admin/news/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, withSession(req, "tok-admin"))
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})
})
