package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/geocoder89/eventbook/internal/domain/booking"
	"github.com/geocoder89/eventbook/internal/utils"
	"github.com/gin-gonic/gin"
)

type BookingService interface {
	Create(ctx context.Context, req booking.CreateBookingRequest) (booking.Booking, error)
	Get(ctx context.Context, id string) (booking.Booking, error)
	Update(ctx context.Context, id string, req booking.UpdateBookingRequest) (booking.Booking, error)
	Delete(ctx context.Context, id string) error
}

type BookingsHandler struct {
	svc BookingService
}

func NewBookingsHandler(svc BookingService) *BookingsHandler {
	return &BookingsHandler{svc: svc}
}

func (h *BookingsHandler) CreateBooking(ctx *gin.Context) {
	var req booking.CreateBookingRequest

	if !BindJSON(ctx, &req) {
		return
	}

	b, err := h.svc.Create(ctx.Request.Context(), req)
	if err != nil {
		RespondWriteError(ctx, err, "Could not create booking")
		return
	}

	ctx.JSON(http.StatusCreated, b)
}

func (h *BookingsHandler) GetBooking(ctx *gin.Context) {
	id, ok := utils.CanonicalUUID(ctx.Param("id"))
	if !ok {
		RespondBadRequest(ctx, "Invalid booking id", nil)
		return
	}

	b, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			RespondNotFound(ctx, "Booking not found")
			return
		}
		RespondInternal(ctx, "Could not fetch booking")
		return
	}

	ctx.JSON(http.StatusOK, b)
}

func (h *BookingsHandler) UpdateBooking(ctx *gin.Context) {
	id, ok := utils.CanonicalUUID(ctx.Param("id"))
	if !ok {
		RespondBadRequest(ctx, "Invalid booking id", nil)
		return
	}

	var req booking.UpdateBookingRequest

	if !BindJSON(ctx, &req) {
		return
	}

	b, err := h.svc.Update(ctx.Request.Context(), id, req)
	if err != nil {
		RespondWriteError(ctx, err, "Could not update booking")
		return
	}

	ctx.JSON(http.StatusOK, b)
}

func (h *BookingsHandler) DeleteBooking(ctx *gin.Context) {
	id, ok := utils.CanonicalUUID(ctx.Param("id"))
	if !ok {
		RespondBadRequest(ctx, "Invalid booking id", nil)
		return
	}

	err := h.svc.Delete(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			RespondNotFound(ctx, "Booking not found")
			return
		}
		RespondInternal(ctx, "Could not delete booking")
		return
	}

	ctx.Status(http.StatusNoContent)
}
