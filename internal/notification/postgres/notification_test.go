package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	notificationDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/notification"
	"github.com/radityaputra/intranet-portal/internal/notification"
	notificationPostgres "github.com/radityaputra/intranet-portal/internal/notification/postgres"
)

func TestNotificationPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Notification Postgres Suite")
}

var _ = Describe("Notification Repository", func() {
	var (
		db   *gorm.DB
		repo notification.Repository
	)

	create := func(userID int64, priority string, requiresAck bool) *notification.Notification {
		n := &notification.Notification{
			UserID:                 userID,
			Title:                  "title",
			Message:                "message",
			Type:                   notification.TypeInfo,
			Priority:               priority,
			RequiresAcknowledgment: requiresAck,
			CreatedAt:              time.Now(),
		}
		if priority == notification.PriorityCritical {
			n.Type = notification.TypeCritical
		}
		Expect(repo.Create(n)).To(Succeed())
		return n
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&notificationDatamodel.Notification{})).To(Succeed())

		repo = notificationPostgres.NewNotificationRepository(db)
	})

	Describe("GetUnreadForUser", func() {
		It("should exclude read rows", func() {
			n := create(1, notification.PriorityNormal, false)
			create(1, notification.PriorityNormal, false)

			updated, err := repo.MarkRead(n.ID, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated).To(BeTrue())

			unread, err := repo.GetUnreadForUser(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(unread).To(HaveLen(1))
		})
	})

	Describe("GetCriticalForUser", func() {
		It("should return only unread critical rows that need acknowledgment", func() {
			create(1, notification.PriorityCritical, true)
			create(1, notification.PriorityCritical, false)
			create(1, notification.PriorityNormal, false)
			create(2, notification.PriorityCritical, true)

			critical, err := repo.GetCriticalForUser(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(critical).To(HaveLen(1))
			Expect(critical[0].RequiresAcknowledgment).To(BeTrue())
		})
	})

	Describe("MarkRead", func() {
		It("should not touch rows owned by another user", func() {
			n := create(1, notification.PriorityNormal, false)

			updated, err := repo.MarkRead(n.ID, 99)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated).To(BeFalse())

			unread, err := repo.GetUnreadForUser(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(unread).To(HaveLen(1))
		})
	})

	Describe("Acknowledge", func() {
		It("should stamp acknowledged_at once and keep it on repeats", func() {
			n := create(1, notification.PriorityCritical, true)

			firstAt := time.Now().Add(-time.Minute)
			first, err := repo.Acknowledge(n.ID, 1, firstAt)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.IsRead).To(BeTrue())
			Expect(first.AcknowledgedAt).NotTo(BeNil())

			second, err := repo.Acknowledge(n.ID, 1, time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(second.AcknowledgedAt.Unix()).To(Equal(first.AcknowledgedAt.Unix()))
		})

		It("should return nil for a row owned by another user", func() {
			n := create(1, notification.PriorityCritical, true)

			got, err := repo.Acknowledge(n.ID, 99, time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNil())
		})
	})
})
