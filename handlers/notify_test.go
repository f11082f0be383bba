package handlers

import (
	"path/filepath"
	"testing"

	"blogsite/database"
	"blogsite/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openLogDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := models.MigrateLogs(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestNotifyFavoriteLogsToGivenDB(t *testing.T) {
	t.Setenv("SMTP_HOST", "")

	requestDB := openLogDB(t, "request.db")
	otherDB := openLogDB(t, "other.db")

	// The failure must land in the handle passed in, not whatever the
	// global points at by the time the send finishes.
	database.DB = otherDB
	author := models.User{Username: "owner", Email: "owner@example.com"}
	notifyFavorite(requestDB, author, "Loved Post", "loved-post", "fan")

	var count int64
	requestDB.Model(&models.SystemLog{}).Where("level = ?", "ERROR").Count(&count)
	if count != 1 {
		t.Errorf("error logs in request db = %d, want 1", count)
	}
	otherDB.Model(&models.SystemLog{}).Count(&count)
	if count != 0 {
		t.Errorf("logs in unrelated db = %d, want 0", count)
	}
}
