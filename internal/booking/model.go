package booking

import (
	"net/http"
	"time"

	"github.com/roomly/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking_not_found", "booking not found")
	ErrInvalidDateTime  = apperror.New(http.StatusBadRequest, "invalid_datetime", "invalid date or time format")
	ErrEndNotAfterStart = apperror.New(http.StatusBadRequest, "end_before_start", "end time must be after start time")
	ErrStartTimePast    = apperror.New(http.StatusBadRequest, "start_in_past", "cannot book meetings in the past")
	ErrTitleRequired    = apperror.New(http.StatusBadRequest, "title_required", "title is required")
	ErrInvalidFilter    = apperror.New(http.StatusBadRequest, "invalid_filter", "invalid filter or sort option")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission_denied", "permission denied")
	ErrAlreadyCanceled  = apperror.New(http.StatusConflict, "already_canceled", "booking is already canceled")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCanceled  Status = "canceled"
)

// RoleAdmin is the role that bypasses ownership checks for mutation.
const RoleAdmin = "admin"

// Booking is a scheduled meeting slot owned by a user. StartAt holds the
// meeting date combined with the start time; StartTime/EndTime keep the
// wall-clock HH:MM strings as entered.
type Booking struct {
	ID                  string
	Title               string
	Description         string
	StartAt             time.Time
	EndAt               time.Time
	StartTime           string
	EndTime             string
	Participants        []string
	CreatedBy           string
	Status              Status
	CreatedAt           time.Time
	UpdatedAt           time.Time
	LastEditedByAdmin   *string // admin who last edited someone else's booking
	LastModifiedByAdmin *string // admin who last canceled someone else's booking
}

// Actor is the identity performing an operation.
type Actor struct {
	ID    string
	Email string
	Role  string
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
