package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string   `json:"error_code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Invalid(c *gin.Context, code string, details []string) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    code,
		Message: "Request validation failed.",
		Details: details,
	})
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// StatusFor maps a failure kind to its HTTP status.
func StatusFor(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindBusiness:
		return http.StatusUnprocessableEntity
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes the response for any use case error. Store failures
// never leak their message.
func FromError(c *gin.Context, err error) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		Invalid(c, "validation_failed", ve.Details)
		return
	}

	var be BusinessError
	if !errors.As(err, &be) {
		_ = c.Error(err)
		Internal(c, "internal_error", "An unexpected error occurred.")
		return
	}
	Write(c, StatusFor(err), be.Code, messageFor(be.Code))
}

var messages = map[string]string{
	"past_date":              "Reservation date is in the past.",
	"invalid_duration":       "Duration must be 30 or 60 minutes.",
	"invalid_alignment":      "Reservation time must start on the hour or half hour.",
	"canteen_not_found":      "Canteen not found.",
	"student_not_found":      "Student not found.",
	"reservation_not_found":  "Reservation not found.",
	"outside_working_hours":  "Requested time is outside the canteen working hours.",
	"student_double_booked":  "Student already has an overlapping reservation.",
	"capacity_exceeded":      "No seats left for the requested time.",
	"admission_contended":    "The slot is being booked concurrently, retry with fresh availability.",
	"not_owner":              "Reservation belongs to another student.",
	"duplicate_canteen_name": "A canteen with the same name already exists.",
	"duplicate_email":        "Email already in use.",
	"invalid_id":             "Invalid identifier.",
	"invalid_slot_duration":  "Slot duration must be positive.",
	"invalid_date":           "Date must be in YYYY-MM-DD format.",
	"invalid_time":           "Time must be in HH:mm format.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
