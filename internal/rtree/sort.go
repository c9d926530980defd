package rtree

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// SortMode selects the ordering of scan items.
type SortMode string

const (
	// BySize orders by size descending, ties broken by path ascending.
	BySize SortMode = "size"
	// ByName orders by path ascending, ties broken by size descending.
	ByName SortMode = "name"
)

// ErrInvalidSortMode is returned for unknown sort modes.
var ErrInvalidSortMode = errors.New("invalid sort mode")

// SortModes lists the accepted sort modes.
func SortModes() []SortMode {
	return []SortMode{BySize, ByName}
}

// ParseSortMode converts s (case-insensitive) to a SortMode.
func ParseSortMode(s string) (SortMode, error) {
	mode := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(SortModes(), mode) {
		return "", fmt.Errorf("%w %q: must be one of %v", ErrInvalidSortMode, s, SortModes())
	}

	return mode, nil
}

// String implements fmt.Stringer.
func (m SortMode) String() string {
	return string(m)
}

// compare returns the ordering of a and b under the mode.
func (m SortMode) compare(a, b ScanItem) int {
	bySize := cmp.Compare(b.Size, a.Size)
	byPath := strings.Compare(a.Path, b.Path)

	if m == ByName {
		return cmp.Or(byPath, bySize)
	}

	return cmp.Or(bySize, byPath)
}

// Sort orders items in place. Unknown modes fall back to BySize.
func Sort(items []ScanItem, mode SortMode) {
	slices.SortStableFunc(items, mode.compare)
}

// Truncate returns the first n items. A negative n, or one not smaller than
// len(items), returns items unchanged.
func Truncate(items []ScanItem, n int) []ScanItem {
	if n < 0 || n >= len(items) {
		return items
	}

	return items[:n]
}
