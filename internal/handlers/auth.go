package handlers

import (
	"net/http"

	"task-query-service/internal/models"
	"task-query-service/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /login. Unknown user and wrong password produce the
// same 401 body on purpose.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "username and password are required",
		})
		return
	}

	resp, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"detail": services.ErrInvalidCredentials.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
