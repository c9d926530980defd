package rtree

import (
	"math"
	"time"
)

// ScanItem is a single row of the report.
type ScanItem struct {
	// Path is the path of the entry, joined from the scan target.
	Path string `json:"path"`
	// Size is the size in bytes. For directories, the sum of all readable files below it.
	Size uint64 `json:"size"`
	// IsDir reports whether the entry is a directory.
	IsDir bool `json:"is_dir"`
}

// Result holds the outcome of a Run.
type Result struct {
	// Target is the cleaned path that was scanned.
	Target string `json:"target"`
	// Sort is the order applied to Items.
	Sort SortMode `json:"sort"`
	// Items contains the sorted, possibly truncated, scan items.
	Items []ScanItem `json:"items"`
	// Total is the sum of all item sizes before truncation.
	Total uint64 `json:"total_bytes"`
	// Files is the number of files visited.
	Files int64 `json:"files"`
	// Warnings is the number of non-fatal warnings emitted.
	Warnings int64 `json:"warnings"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the file or directory to analyze.
	Path string
	// Sort is the ordering of the result.
	Sort SortMode
	// Limit caps the number of items returned (negative = unlimited).
	Limit int
	// Workers bounds the number of children scanned concurrently (0 = number of CPUs).
	Workers int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
	// Integration indicates whether to output integration script.
	Integration bool
}

// addSaturating returns a+b, clamped to math.MaxUint64.
func addSaturating(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}

	return a + b
}
