package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"task-query-service/internal/handlers"
	"task-query-service/internal/models"
	"task-query-service/internal/services"

	"github.com/gin-gonic/gin"
)

type MockTaskQueryService struct {
	tasks      []models.Task
	source     services.Source
	err        error
	lastUserID string
	lastFilter services.ListFilter
}

func (m *MockTaskQueryService) ListTasks(ctx context.Context, userID string, filter services.ListFilter) ([]models.Task, services.Source, error) {
	m.lastUserID = userID
	m.lastFilter = filter
	if m.err != nil {
		return nil, services.SourceLive, m.err
	}
	return m.tasks, m.source, nil
}

func setupTaskRouter(mock *MockTaskQueryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewTaskHandler(mock)
	router := gin.New()
	router.GET("/api/tasks/:user_id", handler.GetTasks)
	router.GET("/api/tasks/:user_id/today", handler.GetTodayTasks)
	router.GET("/api/tasks/:user_id/todo", handler.GetTodoTasks)
	router.GET("/api/tasks/:user_id/done", handler.GetDoneTasks)
	router.GET("/api/tasks/:user_id/date/:task_date", handler.GetTasksByDate)
	return router
}

func sampleTasks() []models.Task {
	date := "2026-02-16"
	return []models.Task{
		{ID: "t1", Title: "one", Status: "todo", TaskDate: &date, UpdatedAt: time.Now()},
		{ID: "t2", Title: "two", Status: "done", TaskDate: &date, UpdatedAt: time.Now()},
	}
}

func TestGetTasksEnvelope(t *testing.T) {
	mock := &MockTaskQueryService{tasks: sampleTasks(), source: services.SourceLive}
	router := setupTaskRouter(mock)

	req, _ := http.NewRequest("GET", "/api/tasks/user-001?status=todo&start_date=2026-02-01&end_date=2026-02-28", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp models.TaskListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if !resp.Success {
		t.Error("Expected success to be true")
	}
	if resp.Message != "tasks retrieved" {
		t.Errorf("Expected live message, got %q", resp.Message)
	}
	if resp.Total != len(resp.Data) {
		t.Errorf("Expected total %d to equal len(data) %d", resp.Total, len(resp.Data))
	}
	if mock.lastUserID != "user-001" {
		t.Errorf("Expected user-001, got %q", mock.lastUserID)
	}
	want := services.ListFilter{Status: "todo", StartDate: "2026-02-01", EndDate: "2026-02-28"}
	if mock.lastFilter != want {
		t.Errorf("Expected filter %+v, got %+v", want, mock.lastFilter)
	}
}

func TestGetTasksFallbackMessage(t *testing.T) {
	mock := &MockTaskQueryService{tasks: sampleTasks(), source: services.SourceFallback}
	router := setupTaskRouter(mock)

	req, _ := http.NewRequest("GET", "/api/tasks/user-001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp models.TaskListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Message != "tasks retrieved (fallback data)" {
		t.Errorf("Expected fallback message, got %q", resp.Message)
	}
}

func TestGetTasksQueryFailureReturns500(t *testing.T) {
	mock := &MockTaskQueryService{err: errors.New("backend exploded")}
	router := setupTaskRouter(mock)

	req, _ := http.NewRequest("GET", "/api/tasks/user-001", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if body["detail"] == "" {
		t.Error("Expected a detail message in the error body")
	}
}

func TestGetTasksRejectsMalformedDate(t *testing.T) {
	mock := &MockTaskQueryService{tasks: sampleTasks(), source: services.SourceLive}
	router := setupTaskRouter(mock)

	req, _ := http.NewRequest("GET", "/api/tasks/user-001?start_date=16-02-2026", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}

	var resp models.TaskListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Success {
		t.Error("Expected success to be false")
	}
	if mock.lastUserID != "" {
		t.Error("Service should not be called for malformed dates")
	}
}

func TestGetTodayTasksPinsDateRange(t *testing.T) {
	mock := &MockTaskQueryService{source: services.SourceLive}
	router := setupTaskRouter(mock)

	req, _ := http.NewRequest("GET", "/api/tasks/user-001/today", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	today := time.Now().Format(models.DateLayout)
	if mock.lastFilter.StartDate != today || mock.lastFilter.EndDate != today {
		t.Errorf("Expected start and end %q, got %+v", today, mock.lastFilter)
	}
	if mock.lastFilter.Status != "" {
		t.Errorf("Today endpoint must not filter by status, got %q", mock.lastFilter.Status)
	}
}

func TestGetTodoAndDoneTasksPinStatus(t *testing.T) {
	mock := &MockTaskQueryService{source: services.SourceLive}
	router := setupTaskRouter(mock)

	req, _ := http.NewRequest("GET", "/api/tasks/user-001/todo", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if mock.lastFilter.Status != "todo" {
		t.Errorf("Expected status todo, got %q", mock.lastFilter.Status)
	}

	req, _ = http.NewRequest("GET", "/api/tasks/user-001/done", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if mock.lastFilter.Status != "done" {
		t.Errorf("Expected status done, got %q", mock.lastFilter.Status)
	}
}

func TestGetTasksByDate(t *testing.T) {
	mock := &MockTaskQueryService{source: services.SourceLive}
	router := setupTaskRouter(mock)

	req, _ := http.NewRequest("GET", "/api/tasks/user-001/date/2026-02-15", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if mock.lastFilter.StartDate != "2026-02-15" || mock.lastFilter.EndDate != "2026-02-15" {
		t.Errorf("Expected pinned date range, got %+v", mock.lastFilter)
	}
}

func TestGetTasksByDateRejectsMalformedDate(t *testing.T) {
	mock := &MockTaskQueryService{source: services.SourceLive}
	router := setupTaskRouter(mock)

	req, _ := http.NewRequest("GET", "/api/tasks/user-001/date/not-a-date", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
