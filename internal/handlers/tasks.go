package handlers

import (
	"net/http"
	"time"

	"task-query-service/internal/models"
	"task-query-service/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	msgRetrieved         = "tasks retrieved"
	msgRetrievedFallback = "tasks retrieved (fallback data)"
)

type TaskHandler struct {
	taskService services.TaskQueryService
}

func NewTaskHandler(taskService services.TaskQueryService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// GetTasks handles GET /api/tasks/:user_id with optional status, start_date
// and end_date query parameters.
func (h *TaskHandler) GetTasks(c *gin.Context) {
	filter := services.ListFilter{
		Status:    c.Query("status"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	if !h.validDateParam(c, "start_date", filter.StartDate) ||
		!h.validDateParam(c, "end_date", filter.EndDate) {
		return
	}
	h.respondList(c, filter)
}

// GetTodayTasks is GetTasks pinned to the current local calendar date.
func (h *TaskHandler) GetTodayTasks(c *gin.Context) {
	today := time.Now().Format(models.DateLayout)
	h.respondList(c, services.ListFilter{StartDate: today, EndDate: today})
}

func (h *TaskHandler) GetTodoTasks(c *gin.Context) {
	h.respondList(c, services.ListFilter{Status: models.StatusTodo})
}

func (h *TaskHandler) GetDoneTasks(c *gin.Context) {
	h.respondList(c, services.ListFilter{Status: models.StatusDone})
}

// GetTasksByDate handles GET /api/tasks/:user_id/date/:task_date.
func (h *TaskHandler) GetTasksByDate(c *gin.Context) {
	taskDate := c.Param("task_date")
	if !h.validDateParam(c, "task_date", taskDate) {
		return
	}
	h.respondList(c, services.ListFilter{StartDate: taskDate, EndDate: taskDate})
}

func (h *TaskHandler) respondList(c *gin.Context, filter services.ListFilter) {
	userID := c.Param("user_id")

	tasks, source, err := h.taskService.ListTasks(c.Request.Context(), userID, filter)
	if err != nil {
		// A read failure on a reachable backend is the caller's problem,
		// not a reason to serve stale fallback data.
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "failed to fetch tasks: " + err.Error(),
		})
		return
	}

	message := msgRetrieved
	if source == services.SourceFallback {
		message = msgRetrievedFallback
	}
	c.JSON(http.StatusOK, models.NewTaskListResponse(message, tasks))
}

// validDateParam rejects non-YYYY-MM-DD values before they reach the string
// comparison, where a malformed date would silently filter wrong.
func (h *TaskHandler) validDateParam(c *gin.Context, name, value string) bool {
	if value == "" {
		return true
	}
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		c.JSON(http.StatusBadRequest, models.TaskListResponse{
			Success: false,
			Message: name + " must be a YYYY-MM-DD date",
			Data:    []models.TaskView{},
			Total:   0,
		})
		return false
	}
	return true
}
