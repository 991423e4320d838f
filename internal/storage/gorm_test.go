package storage

import (
	"context"
	"testing"
	"time"

	"task-query-service/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGormSource(t *testing.T) (*GormSource, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	// In production the collaborator owns the schema; tests create it.
	if err := db.AutoMigrate(&models.Task{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return NewGormSourceFromDB(db), db
}

func TestGormSourceTasksScopedToUser(t *testing.T) {
	source, db := setupGormSource(t)

	now := time.Now()
	db.Create(&models.Task{ID: "a", UserID: "u1", Title: "mine", Status: models.StatusTodo, CreatedAt: now, UpdatedAt: now})
	db.Create(&models.Task{ID: "b", UserID: "u2", Title: "theirs", Status: models.StatusTodo, CreatedAt: now, UpdatedAt: now})

	tasks, err := source.Tasks(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "a" {
		t.Errorf("Expected only task a, got %+v", tasks)
	}
}

func TestGormSourceStatusPushdown(t *testing.T) {
	source, db := setupGormSource(t)

	now := time.Now()
	db.Create(&models.Task{ID: "a", UserID: "u1", Title: "open", Status: models.StatusTodo, CreatedAt: now, UpdatedAt: now})
	db.Create(&models.Task{ID: "b", UserID: "u1", Title: "closed", Status: models.StatusDone, CreatedAt: now, UpdatedAt: now})

	tasks, err := source.Tasks(context.Background(), "u1", models.StatusDone)
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != "b" {
		t.Errorf("Expected only task b, got %+v", tasks)
	}
}

func TestGormSourceReturnsDeletedRows(t *testing.T) {
	// Soft-deleted rows are returned raw; dropping them is the query
	// service's job, uniformly across backends.
	source, db := setupGormSource(t)

	now := time.Now()
	db.Create(&models.Task{ID: "a", UserID: "u1", Title: "gone", Status: models.StatusTodo, IsDeleted: true, CreatedAt: now, UpdatedAt: now})

	tasks, err := source.Tasks(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].IsDeleted {
		t.Errorf("Expected the soft-deleted row to come back raw, got %+v", tasks)
	}
}

func TestGormSourceConnectedLifecycle(t *testing.T) {
	source, _ := setupGormSource(t)

	if !source.Connected() {
		t.Error("Expected an open database to report connected")
	}
	if err := source.Connect(context.Background()); err != nil {
		t.Errorf("Connect on an open database should succeed: %v", err)
	}
}

func TestGormSourceNotConnected(t *testing.T) {
	source := NewGormSource(nil)

	if source.Connected() {
		t.Error("Expected a fresh source to be disconnected")
	}
	if _, err := source.Tasks(context.Background(), "u1", ""); err != ErrNotConnected {
		t.Errorf("Expected ErrNotConnected, got %v", err)
	}
}
