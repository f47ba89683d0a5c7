package database

import (
	"errors"
	"fmt"
	"log"
	"log/slog"

	"gym-backend/config"
	"gym-backend/internal/domain/admins"
	"gym-backend/internal/domain/attendance"
	"gym-backend/internal/domain/billing"
	"gym-backend/internal/domain/media"
	"gym-backend/internal/domain/members"
	"gym-backend/internal/domain/plans"
	"gym-backend/internal/domain/posts"
	"gym-backend/internal/domain/site"
	"gym-backend/internal/lib/sl"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Models lists every table the application owns, in migration order.
func Models() []any {
	return []any{
		// people
		&admins.Admin{},
		&members.Member{},

		// ledgers
		&billing.Payment{},
		&attendance.Attendance{},

		// content
		&plans.Plan{},
		&site.SiteContent{},
		&posts.Post{},
		&media.Image{},
	}
}

// Open connects to driver ("postgres" or "mysql") and migrates the schema.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "postgres", "postgresql":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}

func InitDB() {
	if config.DB_URL == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := Open(config.DB_DRIVER, config.DB_URL)
	if err != nil {
		log.Fatal("❌ Failed to open database: ", err)
	}
	DB = db

	seedAdmin()

	fmt.Println("✅ Connected and migrated successfully")
}

func seedAdmin() {
	if config.SEED_ADMIN_USERNAME == "" || config.SEED_ADMIN_PASSWORD == "" {
		return
	}
	a, err := admins.Seed(DB, config.SEED_ADMIN_USERNAME, config.SEED_ADMIN_PASSWORD, config.SEED_ADMIN_EMAIL)
	switch {
	case errors.Is(err, admins.ErrSeedSkipped):
		return
	case err != nil:
		slog.Error("failed to seed admin", sl.Err(err))
	default:
		slog.Info("seeded first admin", slog.String("username", a.Username))
	}
}
