package event

import (
	"errors"
	"strings"
	"testing"

	"github.com/geocoder89/eventbook/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() Event {
	return NewFromCreateRequest(CreateEventRequest{
		Title:       "  My Cool Event!!  ",
		Description: "A full day of talks",
		Overview:    "Talks and workshops",
		Image:       "https://cdn.example.com/cover.png",
		Venue:       "Main Hall",
		Location:    "Toronto",
		Date:        "March 5, 2025",
		Time:        "1:05 PM",
		Mode:        ModeHybrid,
		Audience:    "Developers",
		Agenda:      []string{"Opening", "Keynote"},
		Organizer:   "Go Toronto",
		Tags:        []string{"go", "cloud"},
	})
}

func fieldRules(t *testing.T, err error) map[string]string {
	t.Helper()

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)

	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Rule
	}
	return out
}

func TestPrepare_NewRecord(t *testing.T) {
	got, err := Prepare(validCandidate(), nil)
	require.NoError(t, err)

	assert.Equal(t, "My Cool Event!!", got.Title)
	assert.Equal(t, "my-cool-event", got.Slug)
	assert.Equal(t, "2025-03-05", got.Date)
	assert.Equal(t, "13:05", got.Time)
}

func TestPrepare_RequiredFields(t *testing.T) {
	got, err := Prepare(Event{Title: "   "}, nil)
	require.Error(t, err)
	assert.Equal(t, Event{}, got)
	assert.True(t, errors.Is(err, validation.ErrInvalid))

	rules := fieldRules(t, err)
	for _, field := range []string{
		"title", "description", "overview", "image", "venue", "location",
		"date", "time", "mode", "audience", "agenda", "organizer", "tags",
	} {
		assert.Equal(t, "required", rules[field], field)
	}
}

func TestPrepare_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Event)
		field  string
		rule   string
	}{
		{"title_too_long", func(e *Event) { e.Title = strings.Repeat("a", 101) }, "title", "max"},
		{"description_too_long", func(e *Event) { e.Description = strings.Repeat("a", 1001) }, "description", "max"},
		{"overview_too_long", func(e *Event) { e.Overview = strings.Repeat("a", 501) }, "overview", "max"},
		{"unknown_mode", func(e *Event) { e.Mode = "in-person" }, "mode", "oneof"},
		{"empty_agenda", func(e *Event) { e.Agenda = []string{} }, "agenda", "min"},
		{"empty_tags", func(e *Event) { e.Tags = []string{} }, "tags", "min"},
		{"symbol_only_title", func(e *Event) { e.Title = "???" }, "title", "slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validCandidate()
			tt.mutate(&e)

			_, err := Prepare(e, nil)
			require.Error(t, err)
			assert.Equal(t, tt.rule, fieldRules(t, err)[tt.field])
		})
	}
}

func TestPrepare_LengthLimitsAreInclusive(t *testing.T) {
	e := validCandidate()
	e.Title = strings.Repeat("a", 100)
	e.Description = strings.Repeat("b", 1000)
	e.Overview = strings.Repeat("c", 500)

	_, err := Prepare(e, nil)
	require.NoError(t, err)
}

func TestPrepare_UnparseableDateAndTime(t *testing.T) {
	e := validCandidate()
	e.Date = "someday"
	_, err := Prepare(e, nil)
	assert.True(t, errors.Is(err, ErrInvalidDate))

	e = validCandidate()
	e.Time = "teatime"
	_, err = Prepare(e, nil)
	assert.True(t, errors.Is(err, ErrInvalidTime))
}

func TestPrepare_ResaveKeepsDerivedFields(t *testing.T) {
	stored, err := Prepare(validCandidate(), nil)
	require.NoError(t, err)

	again, err := Prepare(stored, &stored)
	require.NoError(t, err)

	assert.Equal(t, stored.Slug, again.Slug)
	assert.Equal(t, stored.Date, again.Date)
	assert.Equal(t, stored.Time, again.Time)
}

func TestPrepare_DescriptionOnlyUpdate(t *testing.T) {
	stored, err := Prepare(validCandidate(), nil)
	require.NoError(t, err)

	// a hand edited slug must survive when the title is untouched
	stored.Slug = "custom-slug"

	desc := "Rewritten description"
	candidate := UpdateEventRequest{Description: &desc}.ApplyTo(stored)

	got, err := Prepare(candidate, &stored)
	require.NoError(t, err)

	assert.Equal(t, desc, got.Description)
	assert.Equal(t, "custom-slug", got.Slug)
	assert.Equal(t, stored.Date, got.Date)
	assert.Equal(t, stored.Time, got.Time)
}

func TestPrepare_ChangedFieldsAreRenormalized(t *testing.T) {
	stored, err := Prepare(validCandidate(), nil)
	require.NoError(t, err)

	title := "Renamed Event"
	date := "2025-04-01T09:00:00Z"
	tm := "9:15 am"
	candidate := UpdateEventRequest{Title: &title, Date: &date, Time: &tm}.ApplyTo(stored)

	got, err := Prepare(candidate, &stored)
	require.NoError(t, err)

	assert.Equal(t, "renamed-event", got.Slug)
	assert.Equal(t, "2025-04-01", got.Date)
	assert.Equal(t, "09:15", got.Time)
}

func TestApplyTo_DoesNotAliasSlices(t *testing.T) {
	stored := validCandidate()
	agenda := []string{"Only item"}

	updated := UpdateEventRequest{Agenda: &agenda}.ApplyTo(stored)
	agenda[0] = "mutated"

	assert.Equal(t, []string{"Only item"}, updated.Agenda)
	assert.Equal(t, []string{"Opening", "Keynote"}, stored.Agenda)
}
