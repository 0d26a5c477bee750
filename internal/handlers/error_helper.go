package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

// writeDomainError maps the validation outcomes of the core onto HTTP. None
// of these are fatal; the caller fixes the input and retries.
func writeDomainError(c *gin.Context, err error) {
	if missing, ok := httperr.IsGuard(err); ok {
		httperr.Unprocessable(c, "cannot_advance", "Missing required field: "+missing+".")
		return
	}

	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch be.Code {
	case "booking_not_found", "session_not_found",
		"appointment_not_found", "practitioner_not_found":
		httperr.NotFound(c, be.Code, "Resource not found.")
	case "invalid_state":
		httperr.Conflict(c, be.Code, "Operation not allowed in the current state.")
	default:
		httperr.BadRequest(c, be.Code, "Invalid input.")
	}
}
