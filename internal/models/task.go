package models

import (
	"time"
)

const (
	StatusTodo = "todo"
	StatusDone = "done"
)

// DateLayout is the canonical calendar-date form used by task_date and the
// date query parameters. Dates in this form compare correctly as strings.
const DateLayout = "2006-01-02"

// TimestampLayout is the wire form of created_at/updated_at.
const TimestampLayout = "2006-01-02 15:04:05"

// Task is a to-do item owned by a user. The service only ever reads tasks;
// creation and mutation belong to the storage collaborator. Optional fields
// are pointers so that "absent" and "empty string" stay distinct.
type Task struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"not null"`
	Detail    *string   `json:"detail"`
	Status    string    `json:"status" gorm:"not null;default:'todo'"`
	TaskDate  *string   `json:"task_date"`
	Assignee  *string   `json:"assignee"`
	ShiftType *string   `json:"shift_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	IsDeleted bool      `json:"is_deleted" gorm:"default:false"`
}

// TaskView is the API-facing shape of a task. Timestamps are rendered as
// "YYYY-MM-DD HH:MM:SS"; user_id and is_deleted never leave the service.
type TaskView struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Detail    *string `json:"detail"`
	Status    string  `json:"status"`
	TaskDate  *string `json:"task_date"`
	Assignee  *string `json:"assignee"`
	ShiftType *string `json:"shift_type"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func (t Task) View() TaskView {
	return TaskView{
		ID:        t.ID,
		Title:     t.Title,
		Detail:    t.Detail,
		Status:    t.Status,
		TaskDate:  t.TaskDate,
		Assignee:  t.Assignee,
		ShiftType: t.ShiftType,
		CreatedAt: t.CreatedAt.Format(TimestampLayout),
		UpdatedAt: t.UpdatedAt.Format(TimestampLayout),
	}
}

// TaskListResponse is the uniform envelope for every list endpoint.
// Total is always len(Data); there is no pagination.
type TaskListResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    []TaskView `json:"data"`
	Total   int        `json:"total"`
}

func NewTaskListResponse(message string, tasks []Task) TaskListResponse {
	views := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, t.View())
	}
	return TaskListResponse{
		Success: true,
		Message: message,
		Data:    views,
		Total:   len(views),
	}
}
