package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geocoder89/eventbook/internal/domain/event"
	"github.com/geocoder89/eventbook/internal/http/handlers"
	"github.com/geocoder89/eventbook/internal/validation"
	"github.com/gin-gonic/gin"
)

type bindErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details struct {
			JSON   string                  `json:"json"`
			Field  string                  `json:"field"`
			Fields []validation.FieldError `json:"fields"`
		} `json:"details"`
	} `json:"error"`
}

func bindRouter() *gin.Engine {
	r := gin.New()
	r.POST("/events", func(ctx *gin.Context) {
		var req event.CreateEventRequest
		if !handlers.BindJSON(ctx, &req) {
			return
		}
		ctx.Status(http.StatusCreated)
	})

	return r
}

func postBind(t *testing.T, body string) bindErrorResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	bindRouter().ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}

	var resp bindErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal error response: %v body=%s", err, w.Body.String())
	}

	if resp.Error.Code != "invalid_request" {
		t.Fatalf("unexpected code: %s", resp.Error.Code)
	}

	return resp
}

func TestBindJSON_PartialPayloadIsNotABindError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(`{"title":"go"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	bindRouter().ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want %d, body=%s", w.Code, http.StatusCreated, w.Body.String())
	}
}

func TestBindJSON_SyntaxError(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "truncated", body: `{"title":`},
		{name: "unterminated_object", body: `{"title":"go"`},
		{name: "bad_token", body: `{"title": go}`},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			resp := postBind(t, tt.body)

			if resp.Error.Details.JSON != "invalid_json_syntax" {
				t.Fatalf("got json detail %q, want invalid_json_syntax", resp.Error.Details.JSON)
			}
		})
	}
}

func TestBindJSON_TypeErrorUsesJSONFieldName(t *testing.T) {
	resp := postBind(t, `{"tags":"go"}`)

	if resp.Error.Details.JSON != "invalid_json_type" {
		t.Fatalf("got json detail %q, want invalid_json_type", resp.Error.Details.JSON)
	}

	if resp.Error.Details.Field != "tags" {
		t.Fatalf("got field %q, want tags", resp.Error.Details.Field)
	}

	if len(resp.Error.Details.Fields) != 1 || resp.Error.Details.Fields[0].Rule != "type" {
		t.Fatalf("unexpected fields: %+v", resp.Error.Details.Fields)
	}
}

func TestBindJSON_EmptyBody(t *testing.T) {
	resp := postBind(t, ``)

	if resp.Error.Details.JSON != "empty_body" {
		t.Fatalf("got json detail %q, want empty_body", resp.Error.Details.JSON)
	}
}
