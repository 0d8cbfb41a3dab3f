package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"campuslink/internal/db"
	"campuslink/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// setupTestDB points the package-level connection at a fresh in-memory
// database. Each test gets its own named shared-cache instance so parallel
// connections in the pool see the same data.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := g.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Vote{},
		&models.AcademicFeature{},
		&models.PostView{},
		&models.Report{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = g
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "x"}
	if err := db.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return user
}

func createTestPost(t *testing.T, author *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		UserID:   author.ID,
		Title:    title,
		Content:  "content",
		Category: models.CategoryGeneral,
	}
	if err := db.DB.Create(post).Error; err != nil {
		t.Fatalf("failed to create post %q: %v", title, err)
	}
	return post
}
