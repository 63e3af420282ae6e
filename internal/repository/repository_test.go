package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Akshat-Vision/Sarvam/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Conversation{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	user := &models.User{Username: "alice"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user ID to be assigned on create")
	}

	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to get user by ID: %v", err)
	}
	if byID.Username != "alice" {
		t.Errorf("expected username 'alice', got %q", byID.Username)
	}

	byName, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("failed to get user by username: %v", err)
	}
	if byName.ID != user.ID {
		t.Errorf("expected user ID %d, got %d", user.ID, byName.ID)
	}
}

func TestUserRepo_UsernameUnique(t *testing.T) {
	repo := NewUserRepo(newTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &models.User{Username: "bob"}); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if err := repo.Create(ctx, &models.User{Username: "bob"}); err == nil {
		t.Fatal("expected duplicate username to be rejected by the store")
	}
}

func TestConversationRepo_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepo(db)
	convs := NewConversationRepo(db)
	ctx := context.Background()

	user := &models.User{Username: "carol"}
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	conv := &models.Conversation{UserID: user.ID, Message: "Hello there"}
	if err := convs.Create(ctx, conv); err != nil {
		t.Fatalf("failed to create conversation: %v", err)
	}
	if conv.Timestamp.IsZero() {
		t.Error("expected conversation timestamp to be stamped on create")
	}
	if conv.Timestamp.Location() != time.UTC {
		t.Errorf("expected UTC timestamp, got %s", conv.Timestamp.Location())
	}

	listed, err := convs.ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to list conversations: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(listed))
	}
	if listed[0].Message != "Hello there" {
		t.Errorf("expected message 'Hello there', got %q", listed[0].Message)
	}

	other, err := convs.ListByUser(ctx, user.ID+1)
	if err != nil {
		t.Fatalf("failed to list conversations for other user: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no conversations for other user, got %d", len(other))
	}
}
