package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/eventbook/internal/domain/booking"
	"github.com/geocoder89/eventbook/internal/http/handlers"
	"github.com/gin-gonic/gin"
)

type fakeBookingService struct {
	createFn func(ctx context.Context, req booking.CreateBookingRequest) (booking.Booking, error)
	getFn    func(ctx context.Context, id string) (booking.Booking, error)
	updateFn func(ctx context.Context, id string, req booking.UpdateBookingRequest) (booking.Booking, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeBookingService) Create(ctx context.Context, req booking.CreateBookingRequest) (booking.Booking, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return booking.Booking{ID: newUUID(), EventID: req.EventID, Email: req.Email}, nil
}

func (f *fakeBookingService) Get(ctx context.Context, id string) (booking.Booking, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return booking.Booking{ID: id}, nil
}

func (f *fakeBookingService) Update(ctx context.Context, id string, req booking.UpdateBookingRequest) (booking.Booking, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
	}
	return booking.Booking{ID: id}, nil
}

func (f *fakeBookingService) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func failingCreate(err error) func(*fakeBookingService) {
	return func(f *fakeBookingService) {
		f.createFn = func(ctx context.Context, req booking.CreateBookingRequest) (booking.Booking, error) {
			return booking.Booking{}, err
		}
	}
}

func TestCreateBookingHandler(t *testing.T) {
	body := `{"eventId":"` + newUUID() + `","email":"sam@example.com"}`

	tests := []struct {
		name          string
		body          string
		svcSetup      func(*fakeBookingService)
		wantStatus    int
		wantErrorCode string
	}{
		{
			name:       "success",
			body:       body,
			wantStatus: http.StatusCreated,
		},
		{
			name:          "empty_body",
			body:          ``,
			wantStatus:    http.StatusBadRequest,
			wantErrorCode: "invalid_request",
		},
		{
			name:          "event_not_found",
			body:          body,
			svcSetup:      failingCreate(booking.ErrEventNotFound),
			wantStatus:    http.StatusUnprocessableEntity,
			wantErrorCode: "event_not_found",
		},
		{
			name:          "invalid_event_id",
			body:          `{"eventId":"abc","email":"sam@example.com"}`,
			svcSetup:      failingCreate(booking.ErrInvalidEventID),
			wantStatus:    http.StatusBadRequest,
			wantErrorCode: "invalid_event_id",
		},
		{
			name:          "lookup_failed",
			body:          body,
			svcSetup:      failingCreate(fmt.Errorf("%w: %w", booking.ErrEventLookup, context.DeadlineExceeded)),
			wantStatus:    http.StatusServiceUnavailable,
			wantErrorCode: "event_lookup_failed",
		},
		{
			name:          "unexpected",
			body:          body,
			svcSetup:      failingCreate(errors.New("boom")),
			wantStatus:    http.StatusInternalServerError,
			wantErrorCode: "internal_error",
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeBookingService{}

			if tt.svcSetup != nil {
				tt.svcSetup(svc)
			}

			h := handlers.NewBookingsHandler(svc)
			r := setupRouter(http.MethodPost, "/bookings", h.CreateBooking)

			req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}

			if tt.wantErrorCode != "" {
				if got := decodeError(t, w).Error.Code; got != tt.wantErrorCode {
					t.Fatalf("got error code %q, want %q", got, tt.wantErrorCode)
				}
			}
		})
	}
}

func TestBookingHandlers_NotFoundAndBadID(t *testing.T) {
	svc := &fakeBookingService{
		getFn: func(ctx context.Context, id string) (booking.Booking, error) {
			return booking.Booking{}, booking.ErrNotFound
		},
		updateFn: func(ctx context.Context, id string, req booking.UpdateBookingRequest) (booking.Booking, error) {
			return booking.Booking{}, booking.ErrNotFound
		},
		deleteFn: func(ctx context.Context, id string) error {
			return booking.ErrNotFound
		},
	}

	h := handlers.NewBookingsHandler(svc)

	r := gin.New()
	r.GET("/bookings/:id", h.GetBooking)
	r.PUT("/bookings/:id", h.UpdateBooking)
	r.DELETE("/bookings/:id", h.DeleteBooking)

	id := newUUID()

	tests := []struct {
		method     string
		url        string
		wantStatus int
	}{
		{http.MethodGet, "/bookings/" + id, http.StatusNotFound},
		{http.MethodPut, "/bookings/" + id, http.StatusNotFound},
		{http.MethodDelete, "/bookings/" + id, http.StatusNotFound},
		{http.MethodGet, "/bookings/nope", http.StatusBadRequest},
		{http.MethodPut, "/bookings/nope", http.StatusBadRequest},
		{http.MethodDelete, "/bookings/nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, bytes.NewBufferString(`{"email":"sam@example.com"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
