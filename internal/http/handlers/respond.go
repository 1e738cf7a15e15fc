package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/geocoder89/eventbook/internal/domain/booking"
	"github.com/geocoder89/eventbook/internal/domain/event"
	"github.com/geocoder89/eventbook/internal/validation"
	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Details   interface{} `json:"details,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	v, ok := ctx.Get("request_id")

	if ok {
		s, ok := v.(string)
		if ok && s != "" {
			return s
		}
	}

	// fallback header
	return ctx.GetHeader("X-Request-Id")
}

func RespondError(ctx *gin.Context, status int, code, message string, details interface{}) {
	ctx.JSON(status, gin.H{
		"error": APIError{
			Code:      code,
			Message:   message,
			RequestID: requestIDFrom(ctx),
			Details:   details,
		},
	})
}

func RespondBadRequest(ctx *gin.Context, message string, details interface{}) {
	RespondError(ctx, http.StatusBadRequest, "invalid_request", message, details)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, "not_found", message, nil)
}

func RespondInternal(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusInternalServerError, "internal_error", message, nil)
}

func RespondConflict(ctx *gin.Context, code, message string) {
	RespondError(ctx, http.StatusConflict, code, message, nil)
}

// RespondWriteError maps the error of a create or update to the response envelope.
// fallback is the message used when the error is not one the domain knows about.
func RespondWriteError(ctx *gin.Context, err error, fallback string) {
	var verr *validation.Error

	switch {
	case errors.Is(err, event.ErrInvalidDate):
		RespondError(ctx, http.StatusBadRequest, "invalid_date", "Date could not be parsed", nil)
	case errors.Is(err, event.ErrInvalidTime):
		RespondError(ctx, http.StatusBadRequest, "invalid_time", "Time could not be parsed", nil)
	case errors.As(err, &verr):
		RespondBadRequest(ctx, "Validation failed", gin.H{"fields": verr.Fields})
	case errors.Is(err, event.ErrSlugTaken):
		RespondConflict(ctx, "slug_taken", "An event with this title already exists")
	case errors.Is(err, event.ErrNotFound):
		RespondNotFound(ctx, "Event not found")
	case errors.Is(err, booking.ErrNotFound):
		RespondNotFound(ctx, "Booking not found")
	case errors.Is(err, booking.ErrEventNotFound):
		RespondError(ctx, http.StatusUnprocessableEntity, "event_not_found", "Referenced event does not exist", nil)
	case errors.Is(err, booking.ErrInvalidEventID):
		RespondError(ctx, http.StatusBadRequest, "invalid_event_id", "eventId is not a valid identifier", nil)
	case errors.Is(err, booking.ErrEventLookup):
		slog.Default().WarnContext(ctx.Request.Context(), "event lookup failed", "err", err)
		RespondError(ctx, http.StatusServiceUnavailable, "event_lookup_failed", "Could not verify the referenced event", nil)
	default:
		slog.Default().ErrorContext(ctx.Request.Context(), "write failed", "err", err)
		RespondInternal(ctx, fallback)
	}
}
