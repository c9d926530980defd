package rtree_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/idelchi/rtree/internal/rtree"
)

func item(path string, size uint64) rtree.ScanItem {
	return rtree.ScanItem{Path: path, Size: size}
}

func TestSort(t *testing.T) {
	testCases := []struct {
		name  string
		mode  rtree.SortMode
		items []rtree.ScanItem
		want  []rtree.ScanItem
	}{
		{
			name:  "GivenSizeTie_WhenSortedBySize_ThenPathAscending",
			mode:  rtree.BySize,
			items: []rtree.ScanItem{item("c", 50), item("b", 100), item("a", 100)},
			want:  []rtree.ScanItem{item("a", 100), item("b", 100), item("c", 50)},
		},
		{
			name:  "GivenNameAscendingItems_WhenSortedByName_ThenUnchanged",
			mode:  rtree.ByName,
			items: []rtree.ScanItem{item("a", 100), item("b", 100), item("c", 50)},
			want:  []rtree.ScanItem{item("a", 100), item("b", 100), item("c", 50)},
		},
		{
			name:  "GivenDistinctSizes_WhenSortedBySize_ThenLargestFirst",
			mode:  rtree.BySize,
			items: []rtree.ScanItem{item("small", 1), item("large", 1000), item("medium", 500)},
			want:  []rtree.ScanItem{item("large", 1000), item("medium", 500), item("small", 1)},
		},
		{
			name:  "GivenUnsortedNames_WhenSortedByName_ThenLexicographic",
			mode:  rtree.ByName,
			items: []rtree.ScanItem{item("zebra", 1), item("Apple", 2), item("apple", 3), item("mango", 4)},
			want:  []rtree.ScanItem{item("Apple", 2), item("apple", 3), item("mango", 4), item("zebra", 1)},
		},
		{
			name:  "GivenPathTie_WhenSortedByName_ThenSizeDescending",
			mode:  rtree.ByName,
			items: []rtree.ScanItem{item("a", 1), item("a", 5)},
			want:  []rtree.ScanItem{item("a", 5), item("a", 1)},
		},
		{
			name:  "GivenEmpty_WhenSorted_ThenEmpty",
			mode:  rtree.BySize,
			items: []rtree.ScanItem{},
			want:  []rtree.ScanItem{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rtree.Sort(tc.items, tc.mode)

			if !slices.Equal(tc.items, tc.want) {
				t.Errorf("Sort(%s) = %v, want %v", tc.mode, tc.items, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	items := []rtree.ScanItem{item("a", 3), item("b", 2), item("c", 1)}

	testCases := []struct {
		name string
		n    int
		want []rtree.ScanItem
	}{
		{name: "GivenSmallerLimit_WhenTruncated_ThenPrefixKept", n: 2, want: items[:2]},
		{name: "GivenZeroLimit_WhenTruncated_ThenEmpty", n: 0, want: []rtree.ScanItem{}},
		{name: "GivenEqualLimit_WhenTruncated_ThenUnchanged", n: 3, want: items},
		{name: "GivenLargerLimit_WhenTruncated_ThenUnchanged", n: 10, want: items},
		{name: "GivenNegativeLimit_WhenTruncated_ThenUnchanged", n: -1, want: items},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rtree.Truncate(items, tc.n); !slices.Equal(got, tc.want) {
				t.Errorf("Truncate(%d) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

func TestParseSortMode(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    rtree.SortMode
		wantErr bool
	}{
		{name: "GivenSize_WhenParsed_ThenBySize", input: "size", want: rtree.BySize},
		{name: "GivenUpperCaseName_WhenParsed_ThenByName", input: "NAME", want: rtree.ByName},
		{name: "GivenUnknown_WhenParsed_ThenError", input: "mtime", wantErr: true},
		{name: "GivenEmpty_WhenParsed_ThenError", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rtree.ParseSortMode(tc.input)
			if tc.wantErr {
				if !errors.Is(err, rtree.ErrInvalidSortMode) {
					t.Errorf("ParseSortMode(%q) error = %v, want ErrInvalidSortMode", tc.input, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("ParseSortMode(%q) unexpected error: %v", tc.input, err)
			}

			if got != tc.want {
				t.Errorf("ParseSortMode(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
