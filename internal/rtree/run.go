package rtree

import (
	"context"
	"io"
	"path/filepath"
	"time"
)

// Run scans opt.Path and returns the sorted, truncated result.
//
// Warnings for unreadable entries below the target are written to warnings
// (nil discards them); debug tracing goes to the same writer when opt.Debug
// is set. Progress updates are sent to progressHook, if provided, until the
// scan finishes. The scan itself is not cancelled through ctx.
func Run(ctx context.Context, opt Options, progressHook func(int64), warnings io.Writer) (*Result, error) {
	if warnings == nil {
		warnings = io.Discard
	}

	// Debug lines and warnings are written from every worker.
	warnings = &syncWriter{w: warnings}

	log := logger{enabled: opt.Debug, w: warnings}

	if opt.Path == "" {
		opt.Path = "."
	}

	opt.Path = filepath.Clean(opt.Path)

	if opt.Sort == "" {
		opt.Sort = BySize
	}

	mode, err := ParseSortMode(string(opt.Sort))
	if err != nil {
		return nil, err
	}

	log.printf("[debug]: target: %s\n", opt.Path)
	log.printf("[debug]: sort: %s, limit: %d, workers: %d\n", mode, opt.Limit, opt.Workers)

	counter := &AtomicCounter{}
	reporter := NewWarningWriter(warnings)

	stop := startProgressReporter(ctx, counter, progressHook, opt.ProgressInterval)
	defer stop()

	scanner := &Scanner{
		Counter:  counter,
		Reporter: reporter,
		Workers:  opt.Workers,
		log:      log,
	}

	start := time.Now()

	items, err := scanner.Scan(opt.Path)
	if err != nil {
		return nil, &ScanError{Path: opt.Path, Err: err}
	}

	var total uint64
	for _, item := range items {
		total = addSaturating(total, item.Size)
	}

	Sort(items, mode)

	return &Result{
		Target:   opt.Path,
		Sort:     mode,
		Items:    Truncate(items, opt.Limit),
		Total:    total,
		Files:    counter.Load(),
		Warnings: reporter.Count(),
		Elapsed:  time.Since(start),
	}, nil
}
