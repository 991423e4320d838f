package storage

import (
	"context"
	"fmt"

	"task-query-service/internal/models"

	"gorm.io/gorm"
)

// GormSource reads tasks from a relational backend through GORM. The service
// never writes: the tasks table is owned and migrated by the collaborator
// that produces the tasks.
type GormSource struct {
	dialector gorm.Dialector
	db        *gorm.DB
}

func NewGormSource(dialector gorm.Dialector) *GormSource {
	return &GormSource{dialector: dialector}
}

// NewGormSourceFromDB wraps an already-open connection. Test hook for
// in-memory sqlite databases.
func NewGormSourceFromDB(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) Connect(ctx context.Context) error {
	if s.db == nil {
		db, err := gorm.Open(s.dialector, &gorm.Config{})
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		s.db = db
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (s *GormSource) Connected() bool {
	if s.db == nil {
		return false
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}

func (s *GormSource) Tasks(ctx context.Context, userID, status string) ([]models.Task, error) {
	if s.db == nil {
		return nil, ErrNotConnected
	}

	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return tasks, nil
}
