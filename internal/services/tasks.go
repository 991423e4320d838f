package services

import (
	"context"
	"fmt"
	"sort"

	"task-query-service/internal/models"
	"task-query-service/internal/storage"
)

// Source reports which path served a task list. Advisory only: it feeds the
// envelope message so clients and operators can tell fallback data apart.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// ListFilter carries the optional query filters. Empty string means the
// filter is not applied. Dates are canonical YYYY-MM-DD strings, which makes
// plain string comparison equivalent to date comparison.
type ListFilter struct {
	Status    string
	StartDate string
	EndDate   string
}

type TaskQueryService interface {
	ListTasks(ctx context.Context, userID string, filter ListFilter) ([]models.Task, Source, error)
}

type TaskQueryServiceImpl struct {
	resolver *storage.Resolver
}

func NewTaskQueryService(resolver *storage.Resolver) *TaskQueryServiceImpl {
	return &TaskQueryServiceImpl{resolver: resolver}
}

// ListTasks retrieves a user's active tasks from the live backend when one is
// reachable, otherwise from the built-in fallback set. The two failure modes
// are deliberately asymmetric: failing to *connect* degrades to fallback
// data, while a failed *read* on a connected backend is returned to the
// caller untouched.
func (s *TaskQueryServiceImpl) ListTasks(ctx context.Context, userID string, filter ListFilter) ([]models.Task, Source, error) {
	tasks, source, err := s.fetch(ctx, userID, filter.Status)
	if err != nil {
		return nil, source, err
	}

	tasks = filterByDateRange(tasks, filter.StartDate, filter.EndDate)

	// Most recently updated first; stable so equal timestamps keep their
	// retrieval order.
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].UpdatedAt.After(tasks[j].UpdatedAt)
	})

	return tasks, source, nil
}

func (s *TaskQueryServiceImpl) fetch(ctx context.Context, userID, status string) ([]models.Task, Source, error) {
	src, ok := s.resolver.Resolve(ctx)
	if !ok {
		return fallbackTasks(status), SourceFallback, nil
	}

	all, err := src.Tasks(ctx, userID, status)
	if err != nil {
		return nil, SourceLive, fmt.Errorf("fetch tasks for %s: %w", userID, err)
	}

	active := make([]models.Task, 0, len(all))
	for _, t := range all {
		if t.IsDeleted {
			continue
		}
		active = append(active, t)
	}
	return active, SourceLive, nil
}

func fallbackTasks(status string) []models.Task {
	all := storage.FallbackTasks()
	if status == "" {
		return all
	}
	filtered := make([]models.Task, 0, len(all))
	for _, t := range all {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// filterByDateRange keeps tasks whose task_date lies in [start, end], both
// ends inclusive. With no bounds set the list passes through untouched;
// once either bound is set, undated tasks are dropped.
func filterByDateRange(tasks []models.Task, start, end string) []models.Task {
	if start == "" && end == "" {
		return tasks
	}
	filtered := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.TaskDate == nil || *t.TaskDate == "" {
			continue
		}
		if start != "" && *t.TaskDate < start {
			continue
		}
		if end != "" && *t.TaskDate > end {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
