package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/geocoder89/eventbook/internal/cache"
	"github.com/geocoder89/eventbook/internal/domain/event"
	"github.com/geocoder89/eventbook/internal/utils"
	"github.com/gin-gonic/gin"
)

type EventService interface {
	Create(ctx context.Context, req event.CreateEventRequest) (event.Event, error)
	Get(ctx context.Context, id string) (event.Event, error)
	GetBySlug(ctx context.Context, slug string) (event.Event, error)
	Update(ctx context.Context, id string, req event.UpdateEventRequest) (event.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventsHandler struct {
	svc   EventService
	cache cache.Store
}

func NewEventsHandler(svc EventService) *EventsHandler {
	return &EventsHandler{svc: svc}
}

// NewEventsHandlerWithCache enables read-through caching of single event reads.
func NewEventsHandlerWithCache(svc EventService, c cache.Store) *EventsHandler {
	return &EventsHandler{svc: svc, cache: c}
}

func (h *EventsHandler) CreateEvent(ctx *gin.Context) {
	var req event.CreateEventRequest

	if !BindJSON(ctx, &req) {
		return
	}

	e, err := h.svc.Create(ctx.Request.Context(), req)
	if err != nil {
		RespondWriteError(ctx, err, "Could not create event")
		return
	}

	ctx.JSON(http.StatusCreated, e)
}

func (h *EventsHandler) GetEventByID(ctx *gin.Context) {
	id, ok := utils.CanonicalUUID(ctx.Param("id"))
	if !ok {
		RespondBadRequest(ctx, "Invalid event id", nil)
		return
	}

	h.respondCached(ctx, utils.EventByIDCacheKey(id), func(c context.Context) (event.Event, error) {
		return h.svc.Get(c, id)
	})
}

func (h *EventsHandler) GetEventBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	h.respondCached(ctx, utils.EventBySlugCacheKey(slug), func(c context.Context) (event.Event, error) {
		return h.svc.GetBySlug(c, slug)
	})
}

func (h *EventsHandler) UpdateEvent(ctx *gin.Context) {
	id, ok := utils.CanonicalUUID(ctx.Param("id"))
	if !ok {
		RespondBadRequest(ctx, "Invalid event id", nil)
		return
	}

	var req event.UpdateEventRequest

	if !BindJSON(ctx, &req) {
		return
	}

	rctx := ctx.Request.Context()

	prior, err := h.svc.Get(rctx, id)
	if err != nil {
		RespondWriteError(ctx, err, "Could not update event")
		return
	}

	e, err := h.svc.Update(rctx, id, req)
	if err != nil {
		RespondWriteError(ctx, err, "Could not update event")
		return
	}

	h.invalidate(rctx, id, prior.Slug, e.Slug)

	ctx.JSON(http.StatusOK, e)
}

func (h *EventsHandler) DeleteEvent(ctx *gin.Context) {
	id, ok := utils.CanonicalUUID(ctx.Param("id"))
	if !ok {
		RespondBadRequest(ctx, "Invalid event id", nil)
		return
	}

	rctx := ctx.Request.Context()

	prior, err := h.svc.Get(rctx, id)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			RespondNotFound(ctx, "Event not found")
			return
		}
		RespondInternal(ctx, "Could not delete event")
		return
	}

	err = h.svc.Delete(rctx, id)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			RespondNotFound(ctx, "Event not found")
			return
		}
		RespondInternal(ctx, "Could not delete event")
		return
	}

	h.invalidate(rctx, id, prior.Slug)

	ctx.Status(http.StatusNoContent)
}

func (h *EventsHandler) respondCached(ctx *gin.Context, key string, load func(context.Context) (event.Event, error)) {
	rctx := ctx.Request.Context()

	if h.cache != nil {
		if body, ok := h.cache.Get(rctx, key); ok {
			ctx.Header("X-Cache", "HIT")
			RespondJSONBytesWithETag(ctx, http.StatusOK, body)
			return
		}
	}

	e, err := load(rctx)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			RespondNotFound(ctx, "Event not found")
			return
		}
		slog.Default().ErrorContext(rctx, "event read failed", "err", err)
		RespondInternal(ctx, "Could not fetch event")
		return
	}

	body, err := json.Marshal(e)
	if err != nil {
		RespondInternal(ctx, "Could not encode event")
		return
	}

	if h.cache != nil {
		h.cache.Set(rctx, key, body)
		ctx.Header("X-Cache", "MISS")
	}

	RespondJSONBytesWithETag(ctx, http.StatusOK, body)
}

func (h *EventsHandler) invalidate(ctx context.Context, id string, slugs ...string) {
	if h.cache == nil {
		return
	}

	keys := []string{utils.EventByIDCacheKey(id)}
	for _, s := range slugs {
		if s != "" {
			keys = append(keys, utils.EventBySlugCacheKey(s))
		}
	}

	h.cache.Delete(ctx, keys...)
}
