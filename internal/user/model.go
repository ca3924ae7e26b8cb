package user

import (
	"net/http"
	"time"

	"github.com/roomly/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user_not_found", "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email_in_use", "email already used")
	ErrInvalidEmail       = apperror.New(http.StatusBadRequest, "invalid_email", "invalid email address")
	ErrWeakPassword       = apperror.New(http.StatusBadRequest, "weak_password", "password must be at least 6 characters")
	ErrNameTooShort       = apperror.New(http.StatusBadRequest, "invalid_name", "first and last name must be at least 2 characters")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid_credentials", "invalid email or password")
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. Role is assigned at registration
// and is not editable through any exposed flow.
type User struct {
	ID           string // UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
