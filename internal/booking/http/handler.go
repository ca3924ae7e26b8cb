package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomly/booking-backend/internal/auth"
	"github.com/roomly/booking-backend/internal/booking"
	"github.com/roomly/booking-backend/internal/pkg/request"
	"github.com/roomly/booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func actorFrom(c *gin.Context) booking.Actor {
	return booking.Actor{
		ID:    auth.GetUserID(c),
		Email: auth.GetUserEmail(c),
		Role:  auth.GetUserRole(c),
	}
}

func listOptionsFrom(c *gin.Context) booking.ListOptions {
	return booking.ListOptions{
		Status:   c.DefaultQuery("status", booking.StatusAll),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		SortBy:   c.DefaultQuery("sort_by", booking.SortDateAsc),
	}
}

// List serves the "my bookings" view: results are always restricted to the
// authenticated owner regardless of query parameters.
func (h *Handler) List(c *gin.Context) {
	actor := actorFrom(c)

	opts := listOptionsFrom(c)
	opts.OwnerID = actor.ID

	bookings, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewListResponse(items))
}

// ListAll serves the admin dashboard: unrestricted unless a user_id filter
// is supplied. Defaults to newest meetings first, matching the dashboard.
func (h *Handler) ListAll(c *gin.Context) {
	opts := booking.ListOptions{
		OwnerID:  c.Query("user_id"),
		Status:   c.DefaultQuery("status", booking.StatusAll),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		SortBy:   c.DefaultQuery("sort_by", booking.SortDateDesc),
	}

	bookings, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewListResponse(items))
}

// Calendar returns the actor's scheduled bookings as calendar events,
// optionally bounded to a date window.
func (h *Handler) Calendar(c *gin.Context) {
	actor := actorFrom(c)

	bookings, err := h.service.Calendar(c.Request.Context(), actor, c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return
	}

	events := make([]CalendarEvent, len(bookings))
	for i, b := range bookings {
		events[i] = NewCalendarEvent(b)
	}

	c.JSON(http.StatusOK, response.NewListResponse(events))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actor := actorFrom(c)
	if actor.ID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), actor, booking.CreateRequest{
		Title:        body.Title,
		Description:  body.Description,
		Date:         body.Date,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		Participants: body.Participants,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), actorFrom(c), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.Update(c.Request.Context(), actorFrom(c), req.ID, booking.UpdateRequest{
		Title:        body.Title,
		Description:  body.Description,
		Date:         body.Date,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
		Participants: body.Participants,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Cancel marks the booking canceled. Records are never hard-deleted.
func (h *Handler) Cancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), actorFrom(c), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
