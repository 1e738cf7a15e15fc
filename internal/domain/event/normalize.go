package event

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// bare times are parsed as occurring on this day
	referenceDate = "1970-01-01"
)

var slugSeparators = regexp.MustCompile(`[\s\W-]+`)

// GenerateSlug lowercases and trims title, collapses every run of whitespace or
// non-word characters into one hyphen and strips hyphens from both ends.
func GenerateSlug(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = slugSeparators.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-1-2",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday, January 2, 2006",
	"Mon Jan 2 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// NormalizeDate parses s as a calendar date and returns its YYYY-MM-DD form.
// Inputs carrying an offset are converted to UTC first; inputs without one are read as UTC.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC().Format(DateLayout), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"15:04Z07:00",
	"15:04:05Z07:00",
	"3:04PM",
	"3:04 PM",
	"3:04:05PM",
	"3:04:05 PM",
	"3PM",
	"3 PM",
}

// NormalizeTime parses s as a time of day on the reference date and returns
// the zero padded 24-hour HH:MM form, so "1:05 PM" becomes "13:05".
func NormalizeTime(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	for _, layout := range timeLayouts {
		t, err := time.Parse(DateLayout+"T"+layout, referenceDate+"T"+s)
		if err == nil {
			return t.UTC().Format(TimeLayout), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
}
