package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Akshat-Vision/Sarvam/internal/models"
)

// NewSQLiteDB opens (creating if necessary) the file-backed store at path.
func NewSQLiteDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

// RunMigrations creates the users and conversations tables. Rows are never
// written by the request flow yet; the schema only has to exist at startup.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Conversation{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
