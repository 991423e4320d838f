package models

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

// Credential is one row of the static login table. Passwords are stored and
// compared in plain text: the login endpoint is a stub for the mobile client,
// not an authentication mechanism.
type Credential struct {
	Password string
	UserID   string
}
