package handlers

import (
	"net/http"
	"time"

	"task-query-service/internal/models"
	"task-query-service/internal/storage"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

// SystemHandler serves the metadata endpoints: service root, server time and
// the health probe. It holds the resolver so the root and health responses
// can report whether the service is running against a live backend.
type SystemHandler struct {
	resolver *storage.Resolver
}

func NewSystemHandler(resolver *storage.Resolver) *SystemHandler {
	return &SystemHandler{resolver: resolver}
}

func (h *SystemHandler) Root(c *gin.Context) {
	mode := "mock"
	if h.resolver.Available(c.Request.Context()) {
		mode = "database"
	}

	c.JSON(http.StatusOK, gin.H{
		"service": "task query service",
		"version": serviceVersion,
		"status":  "running",
		"mode":    mode,
		"endpoints": gin.H{
			"service info":   "/",
			"login":          "/login",
			"server time":    "/get-time",
			"task list":      "/api/tasks/{user_id}",
			"today's tasks":  "/api/tasks/{user_id}/today",
			"pending tasks":  "/api/tasks/{user_id}/todo",
			"finished tasks": "/api/tasks/{user_id}/done",
			"tasks by date":  "/api/tasks/{user_id}/date/{task_date}",
			"health":         "/health",
			"metrics":        "/metrics",
		},
	})
}

func (h *SystemHandler) GetTime(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"timestamp": now.Format(time.RFC3339),
		"datetime":  now.Format(models.TimestampLayout),
	})
}

// Health reports liveness plus which storage mode would serve the next
// request. Mock mode is still a healthy service.
func (h *SystemHandler) Health(c *gin.Context) {
	database := "mock_mode"
	if h.resolver.Available(c.Request.Context()) {
		database = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  database,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
