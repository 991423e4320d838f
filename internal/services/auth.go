package services

import (
	"errors"
	"fmt"
	"time"

	"task-query-service/internal/models"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
// One error for both keeps the responses indistinguishable and avoids user
// enumeration.
var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenTimeLayout = "20060102150405"

type AuthService interface {
	Login(username, password string) (models.LoginResponse, error)
}

// AuthServiceImpl validates logins against a static in-process credential
// table. Passwords are compared exactly, case-sensitive, unhashed: this is a
// stub for the mobile client, not a real authentication store, and the
// tokens it mints are never verified anywhere.
type AuthServiceImpl struct {
	credentials map[string]models.Credential
	now         func() time.Time
}

func NewAuthService(credentials map[string]models.Credential) *AuthServiceImpl {
	if credentials == nil {
		credentials = DefaultCredentials()
	}
	return &AuthServiceImpl{credentials: credentials, now: time.Now}
}

func DefaultCredentials() map[string]models.Credential {
	return map[string]models.Credential{
		"admin": {Password: "123456", UserID: "user-001"},
		"test":  {Password: "test123", UserID: "user-002"},
	}
}

func (s *AuthServiceImpl) Login(username, password string) (models.LoginResponse, error) {
	cred, ok := s.credentials[username]
	if !ok || cred.Password != password {
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	// Opaque token, unique only across distinct seconds. That is all the
	// stub promises.
	token := fmt.Sprintf("token-%s-%s", username, s.now().Format(tokenTimeLayout))

	return models.LoginResponse{
		Message: "login successful",
		Token:   token,
		UserID:  cred.UserID,
	}, nil
}
