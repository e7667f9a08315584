package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
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

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"deliverables", "expenses", "timesheets", "resources", "users", "partners"} {
				if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		cost := cfg.Security.BCryptCost
		if cost < bcrypt.MinCost {
			cost = bcrypt.DefaultCost
		}

		password := "password"
		hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			log.Fatalf("failed to hash seed password: %v", err)
		}

		partnerIDs := seedPartners(db)
		seedResources(db, partnerIDs)
		seedUsers(db, string(hash), partnerIDs)
	},
}

func seedPartners(db *gorm.DB) map[string]int64 {
	partners := []struct {
		Name         string
		ContactEmail string
	}{
		{"Acme Consulting", "billing@acme.example"},
		{"Northwind Services", "accounts@northwind.example"},
	}

	ids := make(map[string]int64)
	for _, p := range partners {
		var id int64
		row := db.Raw("SELECT id FROM partners WHERE name = ?", p.Name).Row()
		if err := row.Scan(&id); err == nil {
			ids[p.Name] = id
			continue
		}
		if err := db.Exec("INSERT INTO partners (name, contact_email, is_active, created_at, updated_at) VALUES (?, ?, true, now(), now())", p.Name, p.ContactEmail).Error; err != nil {
			log.Fatalf("failed to insert partner %s: %v", p.Name, err)
		}
		row = db.Raw("SELECT id FROM partners WHERE name = ?", p.Name).Row()
		if err := row.Scan(&id); err != nil {
			log.Fatalf("failed to read back partner %s: %v", p.Name, err)
		}
		ids[p.Name] = id
		fmt.Println("Seeded partner:", p.Name)
	}
	return ids
}

func seedResources(db *gorm.DB, partnerIDs map[string]int64) {
	resources := []struct {
		Name     string
		Partner  string
		SellRate float64
	}{
		{"Alice Moreno", "Acme Consulting", 500},
		{"Bob Ferreira", "Acme Consulting", 400},
		{"Carol Lindqvist", "Northwind Services", 600},
	}

	for _, r := range resources {
		var exists int
		row := db.Raw("SELECT 1 FROM resources WHERE name = ?", r.Name).Row()
		if err := row.Scan(&exists); err == nil {
			continue
		}
		if err := db.Exec("INSERT INTO resources (name, partner_id, sell_rate, is_active, created_at, updated_at) VALUES (?, ?, ?, true, now(), now())", r.Name, partnerIDs[r.Partner], r.SellRate).Error; err != nil {
			log.Fatalf("failed to insert resource %s: %v", r.Name, err)
		}
		fmt.Println("Seeded resource:", r.Name)
	}
}

func seedUsers(db *gorm.DB, passwordHash string, partnerIDs map[string]int64) {
	acmeID := partnerIDs["Acme Consulting"]

	users := []struct {
		Email       string
		Name        string
		PartnerID   *int64
		Permissions string
	}{
		{"admin@example.com", "Admin", nil, "admin"},
		{"pm@example.com", "Project Manager", nil, "generate_invoices,validate_timesheets,manage_partners,sign_supplier"},
		{"acme@example.com", "Acme Contact", &acmeID, "sign_partner"},
	}

	for _, u := range users {
		var exists int
		row := db.Raw("SELECT 1 FROM users WHERE email = ?", u.Email).Row()
		if err := row.Scan(&exists); err == nil {
			fmt.Println("user already exists:", u.Email)
			continue
		}
		if err := db.Exec("INSERT INTO users (email, name, password_hash, partner_id, permissions, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, ?, true, now(), now())", u.Email, u.Name, passwordHash, u.PartnerID, u.Permissions).Error; err != nil {
			log.Fatalf("failed to insert user %s: %v", u.Email, err)
		}
		fmt.Println("Seeded user:", u.Email)
	}
}
