// Package history records the cities that produced a successful lookup.
//
// Entries are unique by exact string and kept in insertion order. No case
// folding or trimming happens here; callers normalize input before recording.
package history

import "context"

// Store persists the search history
type Store interface {
	// Add records city unless an identical entry already exists
	Add(ctx context.Context, city string) error
	// List returns all entries, oldest first
	List(ctx context.Context) ([]string, error)
}
