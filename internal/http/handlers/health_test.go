package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/eventbook/internal/http/handlers"
)

func TestReadyz(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	down := func(ctx context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		checks     map[string]handlers.CheckFunc
		wantStatus int
	}{
		{name: "no_checks", checks: nil, wantStatus: http.StatusOK},
		{name: "all_up", checks: map[string]handlers.CheckFunc{"db": ok, "redis": ok}, wantStatus: http.StatusOK},
		{name: "redis_down", checks: map[string]handlers.CheckFunc{"db": ok, "redis": down}, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			h := handlers.NewHealthHandler(tt.checks)
			r := setupRouter(http.MethodGet, "/readyz", h.Readyz)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
