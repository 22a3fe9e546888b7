package Models

import (
	"os"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB migrates an in-memory SQLite database and points the
// package-level DB at it. A shared-cache named database keeps the
// schema visible across pooled connections.
func openTestDB(t *testing.T, name string) {
	t.Helper()
	os.Setenv("API_SECRET", "test-secret")
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	ConnectTestDataBase(db)
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}
