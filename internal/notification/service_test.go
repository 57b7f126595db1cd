package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/radityaputra/intranet-portal/internal"
	"github.com/radityaputra/intranet-portal/internal/auth"
	coreEvents "github.com/radityaputra/intranet-portal/internal/core/events"
	"github.com/radityaputra/intranet-portal/internal/department"
	"github.com/radityaputra/intranet-portal/internal/user"
)

func TestNotification(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Notification Module Suite")
}

// Mock Repository; Create is safe for concurrent use because the
// broadcaster inserts from multiple goroutines.
type mockRepository struct {
	mu            sync.Mutex
	rows          []*Notification
	nextID        int64
	failCreate    bool
	errorToReturn error
}

func (m *mockRepository) GetForUser(userID int64) ([]*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Notification
	for _, n := range m.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockRepository) GetUnreadForUser(userID int64) ([]*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Notification
	for _, n := range m.rows {
		if n.UserID == userID && !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockRepository) GetCriticalForUser(userID int64) ([]*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Notification
	for _, n := range m.rows {
		if n.UserID == userID && n.Priority == PriorityCritical && !n.IsRead && n.RequiresAcknowledgment {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockRepository) Create(n *Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return m.errorToReturn
	}
	m.nextID++
	n.ID = m.nextID
	m.rows = append(m.rows, n)
	return nil
}

func (m *mockRepository) MarkRead(id, userID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.rows {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepository) Acknowledge(id, userID int64, at time.Time) (*Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.rows {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
			if n.AcknowledgedAt == nil {
				n.AcknowledgedAt = &at
			}
			return n, nil
		}
	}
	return nil, nil
}

type stubDepartments struct {
	departments []*department.Department
	err         error
}

func (s *stubDepartments) GetAll() ([]*department.Department, error) {
	return s.departments, s.err
}

type stubUsers struct {
	byDepartment map[string][]*user.User
	err          error
}

func (s *stubUsers) ByDepartment(name string) ([]*user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byDepartment[name], nil
}

var _ = ginkgo.Describe("NotificationService", func() {
	var (
		service     *Service
		repo        *mockRepository
		departments *stubDepartments
		users       *stubUsers
		bus         *coreEvents.EventBus
	)

	ginkgo.BeforeEach(func() {
		repo = &mockRepository{}
		departments = &stubDepartments{departments: []*department.Department{
			{ID: 1, Name: "Administration"},
			{ID: 2, Name: "Operations"},
		}}
		users = &stubUsers{byDepartment: map[string][]*user.User{
			"Administration": {
				{ID: 1, Email: "admin@example.org", UserLevel: auth.LevelAdmin},
				{ID: 2, Email: "manager@example.org", UserLevel: auth.LevelDeptManager},
			},
			"Operations": {
				{ID: 3, Email: "head@example.org", UserLevel: auth.LevelDeptHead},
				{ID: 4, Email: "staff@example.org", UserLevel: auth.LevelStaff},
				{ID: 5, Email: "volunteer@example.org", UserLevel: auth.LevelVolunteer},
			},
		}}
		bus = coreEvents.NewEventBus(slog.Default())
		service = NewService(repo, departments, users, bus, slog.Default())
	})

	ginkgo.Describe("BroadcastCriticalAlert", func() {
		dto := func(target int) BroadcastAlertDTO {
			return BroadcastAlertDTO{
				Title:       "Building closure",
				Message:     "The office closes at noon today.",
				TargetLevel: &target,
			}
		}

		ginkgo.It("should notify exactly the users at or above the target level", func() {
			result, err := service.BroadcastCriticalAlert(context.Background(), 1, dto(3))

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(result.NotifiedCount).To(gomega.Equal(3))
			gomega.Expect(repo.rows).To(gomega.HaveLen(3))

			notified := map[int64]bool{}
			for _, n := range repo.rows {
				notified[n.UserID] = true
				gomega.Expect(n.Type).To(gomega.Equal(TypeCritical))
				gomega.Expect(n.Priority).To(gomega.Equal(PriorityCritical))
				gomega.Expect(n.RequiresAcknowledgment).To(gomega.BeTrue())
				gomega.Expect(n.Title).To(gomega.Equal("Building closure"))
			}
			gomega.Expect(notified).To(gomega.HaveKey(int64(1)))
			gomega.Expect(notified).To(gomega.HaveKey(int64(2)))
			gomega.Expect(notified).To(gomega.HaveKey(int64(3)))
		})

		ginkgo.It("should reach everyone when the target is the unassigned level", func() {
			result, err := service.BroadcastCriticalAlert(context.Background(), 1, dto(6))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(result.NotifiedCount).To(gomega.Equal(5))
		})

		ginkgo.It("should require title, message and target_level", func() {
			_, err := service.BroadcastCriticalAlert(context.Background(), 1, BroadcastAlertDTO{})

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeMissingFields))

			details := appErr.Details.(internal.ValidationErrors)
			gomega.Expect(details.Errors).To(gomega.HaveLen(3))
		})

		ginkgo.It("should reject a target level outside the enumeration", func() {
			_, err := service.BroadcastCriticalAlert(context.Background(), 1, dto(9))

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidLevel))
		})

		ginkgo.It("should collapse an insert failure into one generic error", func() {
			repo.failCreate = true
			repo.errorToReturn = errors.New("connection reset")

			_, err := service.BroadcastCriticalAlert(context.Background(), 1, dto(3))

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeBroadcastFailed))
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(500))
			gomega.Expect(appErr.Message).ToNot(gomega.ContainSubstring("connection reset"))
		})

		ginkgo.It("should fail when departments cannot be listed", func() {
			departments.err = errors.New("db down")

			_, err := service.BroadcastCriticalAlert(context.Background(), 1, dto(3))

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeBroadcastFailed))
		})

		ginkgo.It("should publish an audit event on the bus", func() {
			received := make(chan coreEvents.Event, 1)
			bus.Subscribe(coreEvents.EventTypeAlertBroadcast, func(ctx context.Context, e coreEvents.Event) error {
				received <- e
				return nil
			})

			_, err := service.BroadcastCriticalAlert(context.Background(), 7, dto(3))
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Eventually(received).Should(gomega.Receive())
		})
	})

	ginkgo.Describe("CriticalForUser", func() {
		ginkgo.BeforeEach(func() {
			repo.Create(&Notification{
				UserID: 3, Title: "alert", Message: "m",
				Type: TypeCritical, Priority: PriorityCritical,
				RequiresAcknowledgment: true,
			})
		})

		ginkgo.It("should return the feed for a level within the management band", func() {
			rows, err := service.CriticalForUser(3, auth.LevelDeptHead)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rows).To(gomega.HaveLen(1))
		})

		ginkgo.It("should return an empty list for level 4 and below", func() {
			rows, err := service.CriticalForUser(3, auth.LevelStaff)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(rows).To(gomega.BeEmpty())
		})
	})

	ginkgo.Describe("MarkRead", func() {
		ginkgo.It("should report someone else's notification as not found", func() {
			repo.Create(&Notification{UserID: 1, Title: "t", Message: "m", Type: TypeInfo})

			err := service.MarkRead(1, 99)
			gomega.Expect(err).To(gomega.Equal(internal.ErrNotificationNotFound))
		})
	})

	ginkgo.Describe("Acknowledge", func() {
		ginkgo.It("should keep the first timestamp on repeat calls", func() {
			repo.Create(&Notification{
				UserID: 1, Title: "t", Message: "m",
				Type: TypeCritical, Priority: PriorityCritical,
				RequiresAcknowledgment: true,
			})

			first, err := service.Acknowledge(1, 1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(first.AcknowledgedAt).ToNot(gomega.BeNil())

			second, err := service.Acknowledge(1, 1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(second.AcknowledgedAt).To(gomega.Equal(first.AcknowledgedAt))
			gomega.Expect(second.IsRead).To(gomega.BeTrue())
		})

		ginkgo.It("should 404 an unknown notification", func() {
			_, err := service.Acknowledge(42, 1)
			gomega.Expect(err).To(gomega.Equal(internal.ErrNotificationNotFound))
		})
	})
})
