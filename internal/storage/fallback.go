package storage

import (
	"time"

	"task-query-service/internal/models"
)

// The built-in dataset served whenever no live backend is reachable. Shapes
// and dates mirror what the mobile client was developed against, so the app
// stays usable when the store is down.
func FallbackTasks() []models.Task {
	return []models.Task{
		{
			ID:        "task-001",
			Title:     "Finish project documentation",
			Detail:    strptr("Write the full development handbook"),
			Status:    models.StatusTodo,
			TaskDate:  strptr("2026-02-16"),
			Assignee:  strptr("Alice"),
			ShiftType: strptr("day shift"),
			CreatedAt: mustStamp("2026-02-15 09:00:00"),
			UpdatedAt: mustStamp("2026-02-15 09:00:00"),
		},
		{
			ID:        "task-002",
			Title:     "Code review",
			Detail:    strptr("Review the latest submitted changes"),
			Status:    models.StatusDone,
			TaskDate:  strptr("2026-02-15"),
			Assignee:  strptr("Bob"),
			ShiftType: strptr("night shift"),
			CreatedAt: mustStamp("2026-02-14 14:00:00"),
			UpdatedAt: mustStamp("2026-02-15 10:00:00"),
		},
		{
			ID:        "task-003",
			Title:     "Test the new feature",
			Detail:    strptr("Exercise the freshly developed module"),
			Status:    models.StatusTodo,
			TaskDate:  strptr("2026-02-16"),
			Assignee:  strptr("Carol"),
			ShiftType: strptr("day shift"),
			CreatedAt: mustStamp("2026-02-15 11:00:00"),
			UpdatedAt: mustStamp("2026-02-15 11:00:00"),
		},
	}
}

func strptr(s string) *string {
	return &s
}

func mustStamp(s string) time.Time {
	t, err := time.Parse(models.TimestampLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}
