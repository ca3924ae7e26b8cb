package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomly/booking-backend/internal/pkg/apperror"
)

// ErrorResponse defines the JSON structure for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error sends a JSON error response.
// An AppError determines the status code and user-facing message; anything
// else is a backend failure and maps to 500. Raw backend errors are
// attached to the gin context so the request logger records them, but they
// are never written to the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			_ = c.Error(appErr.Err)
		}
		c.JSON(appErr.Status, ErrorResponse{Error: appErr.Message, Code: appErr.Code})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
