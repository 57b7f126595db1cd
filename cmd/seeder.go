package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := gorm.Open(gormPostgres.Open(cfg.Database.Source), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open db: %v", err)
		}

		if clearData {
			for _, table := range []string{
				"chat_messages", "chat_room_members", "chat_rooms",
				"event_attendees", "events", "notifications", "news",
				"sessions", "users", "departments",
			} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		departments := []struct {
			Name  string
			Desc  string
			Icon  string
			Color string
		}{
			{"Administration", "Leadership and administrative staff", "shield", "#6366f1"},
			{"Operations", "Day to day program operations", "settings", "#0ea5e9"},
			{"Outreach", "Community outreach and partnerships", "users", "#22c55e"},
			{"Finance", "Accounting and financial planning", "dollar-sign", "#f59e0b"},
			{"Volunteers", "Volunteer coordination", "heart", "#ef4444"},
		}

		for _, d := range departments {
			var exists int
			row := db.Raw("SELECT 1 FROM departments WHERE name = ?", d.Name).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO departments (name, description, icon, color, member_count) VALUES (?, ?, ?, ?, 0)",
				d.Name, d.Desc, d.Icon, d.Color).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", d.Name, err)
			}
			fmt.Printf("Seeded department: %s\n", d.Name)
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		users := []struct {
			Email      string
			First      string
			Last       string
			Department string
			Level      int
		}{
			{"admin@example.org", "Ava", "Siregar", "Administration", 1},
			{"manager@example.org", "Bima", "Hartono", "Operations", 2},
			{"head@example.org", "Citra", "Wijaya", "Outreach", 3},
			{"staff@example.org", "Dewi", "Pratama", "Finance", 4},
			{"volunteer@example.org", "Eko", "Santoso", "Volunteers", 5},
		}

		for _, u := range users {
			var exists int
			row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
			if err := row.Scan(&exists); err == nil {
				continue
			}
			if err := db.Exec(
				"INSERT INTO users (email, password_hash, first_name, last_name, department, user_level, status, created_at) VALUES (?, ?, ?, ?, ?, ?, 'active', now())",
				u.Email, string(hash), u.First, u.Last, u.Department, u.Level).Error; err != nil {
				log.Fatalf("failed to insert user %s: %v", u.Email, err)
			}
			fmt.Printf("Seeded user: %s (level %d)\n", u.Email, u.Level)
		}

		var adminID int64
		if err := db.Raw("SELECT id FROM users WHERE email = ?", "admin@example.org").Row().Scan(&adminID); err != nil {
			log.Fatalf("failed to lookup admin user id: %v", err)
		}

		var newsCount int64
		if err := db.Raw("SELECT COUNT(*) FROM news").Row().Scan(&newsCount); err == nil && newsCount == 0 {
			articles := []struct {
				Title    string
				Content  string
				Summary  string
				Category string
			}{
				{"Welcome to the new intranet", "Our new internal portal is live. Log in with your staff account to browse the directory, events and announcements.", "The new internal portal is live.", "announcement"},
				{"Quarterly all-hands scheduled", "The quarterly all-hands meeting takes place in the main hall. Agenda and dial-in details to follow.", "Quarterly all-hands in the main hall.", "meeting"},
			}
			for _, a := range articles {
				if err := db.Exec(
					"INSERT INTO news (title, content, summary, category, author_id, is_published, created_at) VALUES (?, ?, ?, ?, ?, true, now())",
					a.Title, a.Content, a.Summary, a.Category, adminID).Error; err != nil {
					log.Fatalf("failed to insert news %s: %v", a.Title, err)
				}
				fmt.Printf("Seeded news: %s\n", a.Title)
			}
		}

		var eventCount int64
		if err := db.Raw("SELECT COUNT(*) FROM events").Row().Scan(&eventCount); err == nil && eventCount == 0 {
			if err := db.Exec(
				"INSERT INTO events (title, description, start_time, location, organizer_id, created_at) VALUES (?, ?, now() + interval '7 days', ?, ?, now())",
				"Volunteer onboarding day", "Introduction session for new volunteers.", "Community Center, Room 2", adminID).Error; err != nil {
				log.Fatalf("failed to insert event: %v", err)
			}
			fmt.Println("Seeded event: Volunteer onboarding day")
		}

		var roomCount int64
		if err := db.Raw("SELECT COUNT(*) FROM chat_rooms").Row().Scan(&roomCount); err == nil && roomCount == 0 {
			if err := db.Exec(
				"INSERT INTO chat_rooms (name, description, type, is_private, created_by_id, created_at) VALUES (?, ?, 'group', false, ?, now())",
				"General", "Organization-wide chat", adminID).Error; err != nil {
				log.Fatalf("failed to insert chat room: %v", err)
			}
			var roomID int64
			if err := db.Raw("SELECT id FROM chat_rooms WHERE name = ?", "General").Row().Scan(&roomID); err != nil {
				log.Fatalf("failed to lookup chat room id: %v", err)
			}
			if err := db.Exec(
				"INSERT INTO chat_room_members (room_id, user_id, role, joined_at) VALUES (?, ?, 'admin', now())",
				roomID, adminID).Error; err != nil {
				log.Fatalf("failed to insert chat room member: %v", err)
			}
			fmt.Println("Seeded chat room: General")
		}

		if err := db.Exec(
			"UPDATE departments SET member_count = (SELECT COUNT(*) FROM users WHERE users.department = departments.name)").Error; err != nil {
			log.Fatalf("failed to refresh department member counts: %v", err)
		}

		fmt.Println("Sample data seeded successfully")
	},
}
