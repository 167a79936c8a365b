// Package entity holds the catalog records and the rules that keep each of
// them valid on its own. Cross-entity rules live in the library service.
package entity

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"
)

var (
	// ErrNotAvailable is returned when borrowing a book whose status is not available.
	ErrNotAvailable = errors.New("book is not available")
	// ErrNotBorrowed is returned when returning a book that is not on loan.
	ErrNotBorrowed = errors.New("book is not borrowed")
	// ErrStatusLocked is returned when a patch tries to move a book into or
	// out of the borrowed status.
	ErrStatusLocked = errors.New("borrowed status can only change through borrow or return")
)

// Record is implemented by every entity stored in the catalog document.
type Record interface {
	Key() string
	Label() string
	Created() time.Time
}

// Sorted returns the values of m ordered by creation time, then id.
func Sorted[T Record](m map[string]T) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int {
		if c := a.Created().Compare(b.Created()); c != 0 {
			return c
		}
		return cmp.Compare(a.Key(), b.Key())
	})
	return out
}

// optionalText trims s and maps blank input to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func appendUnique(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	return append(ids, id)
}

func without(ids []string, id string) ([]string, bool) {
	i := slices.Index(ids, id)
	if i < 0 {
		return ids, false
	}
	return slices.Delete(slices.Clone(ids), i, i+1), true
}
