package storage

import (
	"context"
	"errors"

	"task-query-service/internal/models"
)

// ErrNotConnected is returned by a source's read path when it is used before
// Connect has succeeded.
var ErrNotConnected = errors.New("storage: source not connected")

// TaskSource is the only contract this service holds against the external
// task store: connect, report connectivity, and read a user's tasks. A source
// may push the status filter down to the backend; callers must not rely on
// it and the query service re-checks nothing beyond what it filters itself.
type TaskSource interface {
	Connect(ctx context.Context) error
	Connected() bool
	Tasks(ctx context.Context, userID, status string) ([]models.Task, error)
}
