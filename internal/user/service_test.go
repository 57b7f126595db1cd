package user_test

import (
	"encoding/json"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/radityaputra/intranet-portal/internal"
	"github.com/radityaputra/intranet-portal/internal/auth"
	userDatamodel "github.com/radityaputra/intranet-portal/internal/core/datamodel/user"
	"github.com/radityaputra/intranet-portal/internal/user"
	userPostgres "github.com/radityaputra/intranet-portal/internal/user/postgres"
)

func TestUser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Module Suite")
}

var _ = Describe("UserService", func() {
	var (
		db      *gorm.DB
		service *user.Service
	)

	seedUser := func(id int64, email, department string, level auth.Level) {
		row := &userDatamodel.User{
			ID:           id,
			Email:        email,
			PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
			FirstName:    "First",
			LastName:     "Last",
			Department:   department,
			UserLevel:    int(level),
			Status:       "active",
		}
		Expect(db.Create(row).Error).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&userDatamodel.User{})).To(Succeed())

		service = user.NewService(userPostgres.NewUserRepository(db), slog.Default())

		seedUser(1, "admin@example.org", "Administration", auth.LevelAdmin)
		seedUser(4, "staff@example.org", "Finance", auth.LevelStaff)
	})

	Describe("Directory", func() {
		It("should list every user without any password material", func() {
			users, err := service.Directory(50, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))

			serialized, err := json.Marshal(users)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(serialized)).NotTo(ContainSubstring("password"))
			Expect(string(serialized)).NotTo(ContainSubstring("notarealhash"))
		})
	})

	Describe("GetByID", func() {
		It("should 404 an unknown id", func() {
			_, err := service.GetByID(99)
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})

	Describe("ByDepartment", func() {
		It("should return only that department's members", func() {
			users, err := service.ByDepartment("Finance")
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Email).To(Equal("staff@example.org"))
		})
	})

	Describe("UpdateProfile", func() {
		newName := "Renamed"

		It("should apply a self-update", func() {
			updated, err := service.UpdateProfile(4, 4, user.UpdateProfileDTO{FirstName: &newName})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.FirstName).To(Equal("Renamed"))
		})

		It("should forbid writing someone else's profile", func() {
			_, err := service.UpdateProfile(4, 1, user.UpdateProfileDTO{FirstName: &newName})
			Expect(err).To(Equal(internal.ErrNotProfileOwner))

			unchanged, err := service.GetByID(4)
			Expect(err).NotTo(HaveOccurred())
			Expect(unchanged.FirstName).To(Equal("First"))
		})

		It("should 404 a self-update of a deleted account", func() {
			Expect(db.Delete(&userDatamodel.User{}, 4).Error).To(Succeed())

			_, err := service.UpdateProfile(4, 4, user.UpdateProfileDTO{FirstName: &newName})
			Expect(err).To(Equal(internal.ErrUserNotFound))
		})
	})
})
