package utils

import "strings"

const eventCachePrefix = "events:v1:"

func EventByIDCacheKey(id string) string {
	return eventCachePrefix + "id=" + id
}

func EventBySlugCacheKey(slug string) string {
	return eventCachePrefix + "slug=" + strings.ToLower(strings.TrimSpace(slug))
}
