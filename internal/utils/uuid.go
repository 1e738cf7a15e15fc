package utils

import "github.com/google/uuid"

// CanonicalUUID reports whether s is a 36 character hyphenated UUID, in either
// case, and returns it in the lowercase form ids are stored in.
func CanonicalUUID(s string) (string, bool) {
	if len(s) != 36 {
		return "", false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
