package planner

import "strings"

// ParseDragKey extracts the post id from a "<prefix>-<id>" drag key. Only the
// first hyphen separates, ids are UUIDs and carry their own hyphens.
func ParseDragKey(key string) (string, error) {
	prefix, id, ok := strings.Cut(key, "-")
	if !ok || prefix == "" || id == "" {
		return "", ErrInvalidDragKey
	}
	return id, nil
}

// DragKey builds the key ParseDragKey reads.
func DragKey(prefix, id string) string {
	return prefix + "-" + id
}
