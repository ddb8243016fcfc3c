package file

import "strings"

// MakeKey joins an optional prefix and a filename into an object key.
// An empty prefix yields the filename alone.
func MakeKey(prefix, filename string) string {
	if prefix == "" {
		return filename
	}
	return strings.TrimSuffix(prefix, "/") + "/" + filename
}

// KeySegment returns the idx-th non-empty path segment of key, or "".
// Content and episode ids are carried as the first two key segments.
func KeySegment(key string, idx int) string {
	segments := make([]string, 0, 4)
	for _, s := range strings.Split(key, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if idx < 0 || idx >= len(segments) {
		return ""
	}
	return segments[idx]
}
