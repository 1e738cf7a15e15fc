package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/geocoder89/eventbook/internal/domain/event"
	"github.com/google/uuid"
)

func TestEventsRepo_UniqueSlug(t *testing.T) {
	ctx := context.Background()
	r := NewEventsRepo()

	first := event.Event{ID: uuid.NewString(), Slug: "go-meetup"}
	if _, err := r.Create(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}

	_, err := r.Create(ctx, event.Event{ID: uuid.NewString(), Slug: "go-meetup"})
	if !errors.Is(err, event.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken, got %v", err)
	}

	second := event.Event{ID: uuid.NewString(), Slug: "rust-meetup"}
	if _, err := r.Create(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	// renaming into an existing slug is rejected too
	second.Slug = "go-meetup"
	if _, err := r.Update(ctx, second); !errors.Is(err, event.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken on update, got %v", err)
	}

	// keeping your own slug is fine
	first.Title = "retitled"
	if _, err := r.Update(ctx, first); err != nil {
		t.Fatalf("update with own slug: %v", err)
	}
}

func TestEventsRepo_SlugFreedOnRenameAndDelete(t *testing.T) {
	ctx := context.Background()
	r := NewEventsRepo()

	e := event.Event{ID: uuid.NewString(), Slug: "old-slug"}
	if _, err := r.Create(ctx, e); err != nil {
		t.Fatalf("create: %v", err)
	}

	e.Slug = "new-slug"
	if _, err := r.Update(ctx, e); err != nil {
		t.Fatalf("update: %v", err)
	}

	if _, err := r.GetBySlug(ctx, "old-slug"); !errors.Is(err, event.ErrNotFound) {
		t.Fatalf("old slug should be released, got %v", err)
	}

	if err := r.Delete(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := r.LookupEventID(ctx, e.ID); !errors.Is(err, event.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	if _, err := r.Create(ctx, event.Event{ID: uuid.NewString(), Slug: "new-slug"}); err != nil {
		t.Fatalf("slug should be reusable after delete: %v", err)
	}
}
