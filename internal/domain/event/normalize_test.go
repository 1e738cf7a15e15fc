package event

import (
	"errors"
	"regexp"
	"testing"

	"github.com/geocoder89/eventbook/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Cool Event!!", "my-cool-event"},
		{"My Cool Event", "my-cool-event"},
		{"  Go   Meetup  ", "go-meetup"},
		{"--Already-hyphenated--", "already-hyphenated"},
		{"React & Next.js: 2025 Edition", "react-next-js-2025-edition"},
		{"snake_case_title", "snake_case_title"},
		{"Café Conf", "caf-conf"},
		{"???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlug_Deterministic(t *testing.T) {
	title := "Kubernetes Day / Lagos"
	assert.Equal(t, GenerateSlug(title), GenerateSlug(title))
	assert.Equal(t, GenerateSlug(title), GenerateSlug(GenerateSlug(title)))
}

var canonicalDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-03-05", "2025-03-05"},
		{" 2025-03-05 ", "2025-03-05"},
		{"2025-03-05T10:30:00Z", "2025-03-05"},
		{"2025-03-05T23:30:00-05:00", "2025-03-06"},
		{"2025-03-05T10:30:00", "2025-03-05"},
		{"2025-3-5", "2025-03-05"},
		{"2025-1-15", "2025-01-15"},
		{"2025/03/05", "2025-03-05"},
		{"03/05/2025", "2025-03-05"},
		{"3/5/2025", "2025-03-05"},
		{"March 5, 2025", "2025-03-05"},
		{"Mar 5, 2025", "2025-03-05"},
		{"5 March 2025", "2025-03-05"},
		{"Wednesday, March 5, 2025", "2025-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, canonicalDate, got)
		})
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "not a date", "2025-13-01", "2025-02-30", "32/01/2025"} {
		t.Run(in, func(t *testing.T) {
			_, err := NormalizeDate(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDate))
			assert.True(t, errors.Is(err, validation.ErrInvalid))
		})
	}
}

var canonicalTime = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"13:05", "13:05"},
		{"9:30", "09:30"},
		{"09:30:45", "09:30"},
		{"09:30:45.250", "09:30"},
		{"1:05 PM", "13:05"},
		{"1:05PM", "13:05"},
		{"1:05 pm", "13:05"},
		{"12:00 AM", "00:00"},
		{"12:15 PM", "12:15"},
		{"7 PM", "19:00"},
		{"10:00Z", "10:00"},
		{"10:00+02:00", "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeTime(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, canonicalTime, got)
		})
	}
}

func TestNormalizeTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "noon", "25:00", "13:05 PM", "10:61"} {
		t.Run(in, func(t *testing.T) {
			_, err := NormalizeTime(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTime))
		})
	}
}
