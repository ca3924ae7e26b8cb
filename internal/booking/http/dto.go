package http

import (
	"time"

	"github.com/roomly/booking-backend/internal/booking"
)

// CreateBookingBody is the payload for POST /v1/bookings. Date is
// 2006-01-02, times are HH:MM, participants is a comma-separated email
// list matching the booking form.
type CreateBookingBody struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Participants string `json:"participants"`
}

// UpdateBookingBody is the payload for PUT /v1/bookings/:id. Edits replace
// the editable fields; status and ownership are preserved server-side.
type UpdateBookingBody struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Participants string `json:"participants"`
}

type BookingResponse struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description,omitempty"`
	Date                string    `json:"date"`
	StartTime           string    `json:"start_time"`
	EndTime             string    `json:"end_time"`
	StartAt             time.Time `json:"start_at"`
	EndAt               time.Time `json:"end_at"`
	Participants        []string  `json:"participants"`
	CreatedBy           string    `json:"created_by"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	LastEditedByAdmin   *string   `json:"last_edited_by_admin,omitempty"`
	LastModifiedByAdmin *string   `json:"last_modified_by_admin,omitempty"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	participants := b.Participants
	if participants == nil {
		participants = []string{}
	}

	return BookingResponse{
		ID:                  b.ID,
		Title:               b.Title,
		Description:         b.Description,
		Date:                b.StartAt.Format("2006-01-02"),
		StartTime:           b.StartTime,
		EndTime:             b.EndTime,
		StartAt:             b.StartAt,
		EndAt:               b.EndAt,
		Participants:        participants,
		CreatedBy:           b.CreatedBy,
		Status:              string(b.Status),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
		LastEditedByAdmin:   b.LastEditedByAdmin,
		LastModifiedByAdmin: b.LastModifiedByAdmin,
	}
}

// CalendarEvent is the shape consumed by the calendar view: the resolved
// absolute start/end instants of a scheduled booking.
type CalendarEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func NewCalendarEvent(b *booking.Booking) CalendarEvent {
	return CalendarEvent{
		ID:    b.ID,
		Title: b.Title,
		Start: b.StartAt,
		End:   b.EndAt,
	}
}
