package db

import (
	"log"
	"os"

	"campuslink/internal/models"
	"campuslink/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=campuslink port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection established")

	if err := Setup(DB); err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}
}

// Setup runs the schema migration, the tracked migration chain, and seeds
// the default admin account. Shared between Init and test setup.
func Setup(g *gorm.DB) error {
	if err := g.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
		&models.AcademicFeature{},
		&models.PostView{},
		&models.Report{},
	); err != nil {
		return err
	}

	if err := RunMigrations(g); err != nil {
		return err
	}

	seedAdmin(g)
	return nil
}

// seedAdmin creates the default admin account when no admin exists yet.
func seedAdmin(g *gorm.DB) {
	var count int64
	g.Model(&models.User{}).Where("is_admin = ?", true).Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := models.User{
		Username:     "admin",
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := g.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Println("Default admin account created")
}
