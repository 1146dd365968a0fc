// Package ids generates deterministic identifiers for schedule items and
// recurrence occurrences.
package ids

import (
	"crypto/sha256"
	"encoding/base32"
	"strings"
	"time"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

// Generate creates a deterministic, lowercase base32 ID derived from input.
func Generate(input string, length int) string {
	hash := sha256.Sum256([]byte(input))
	encoded := base32.StdEncoding.EncodeToString(hash[:])
	if length <= 0 {
		return ""
	}
	if length > len(encoded) {
		length = len(encoded)
	}
	return strings.ToLower(encoded[:length])
}

// Occurrence derives a stable ID for one dated occurrence of a recurring
// item. Expanding the same pattern twice yields the same IDs.
func Occurrence(anchorID string, day time.Time) string {
	return Generate(anchorID+"@"+day.Format("2006-01-02"), DefaultLength)
}

// New creates an ID for a freshly created item from its title and creation
// time.
func New(title string, createdAt time.Time) string {
	return Generate(title+createdAt.Format(time.RFC3339Nano), DefaultLength)
}
