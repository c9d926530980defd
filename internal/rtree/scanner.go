package rtree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charlievieth/fastwalk"
	"golang.org/x/sync/errgroup"
)

// readDirBatchSize caps how many entries of the target are read at once.
const readDirBatchSize = 1024

// logger provides conditional debug output.
type logger struct {
	enabled bool
	w       io.Writer
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled && l.w != nil {
		fmt.Fprintf(l.w, format, args...)
	}
}

// Scanner computes the disk usage of a target's immediate children.
// The zero value is usable: progress and warnings are discarded and the
// worker count defaults to the number of CPUs.
type Scanner struct {
	// Counter is incremented once per file visited.
	Counter Counter
	// Reporter receives non-fatal warnings.
	Reporter Reporter
	// Workers bounds the number of children scanned concurrently.
	Workers int

	log logger
}

// Scan returns one ScanItem per immediate child of target, or a single item
// for target itself when it is not a directory.
//
// Only a failure to stat or open target is returned as an error. Failures
// below target drop the affected entry (or its contribution to a directory
// total) and are passed to the Reporter unless they are permission errors.
// The returned items are in no particular order.
func (s *Scanner) Scan(target string) ([]ScanItem, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		s.inc()

		return []ScanItem{{Path: target, Size: fileSize(info)}}, nil
	}

	paths, err := s.list(target)
	if err != nil {
		return nil, err
	}

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Each worker owns one slot, so no locking is needed.
	slots := make([]*ScanItem, len(paths))

	var group errgroup.Group

	group.SetLimit(workers)

	for i, path := range paths {
		group.Go(func() error {
			item, err := s.classify(path)
			if err != nil {
				s.warn("failed to scan", path, err)

				return nil
			}

			s.log.printf("[debug]: scanned %s: %d bytes (dir=%t)\n", path, item.Size, item.IsDir)
			slots[i] = &item

			return nil
		})
	}

	_ = group.Wait() // Workers never return errors

	items := make([]ScanItem, 0, len(slots))

	for _, item := range slots {
		if item != nil {
			items = append(items, *item)
		}
	}

	return items, nil
}

// list returns the paths of the immediate entries of dir.
// Failing to open dir is fatal; a failure part-way through listing keeps
// the entries read so far.
func (s *Scanner) list(dir string) ([]string, error) {
	f, err := os.Open(dir) // #nosec G304 -- Scanning user-supplied paths is intended
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string

	for {
		entries, err := f.ReadDir(readDirBatchSize)
		for _, entry := range entries {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.warn("could not read an entry in", dir, err)
			}

			return paths, nil
		}
	}
}

// classify lstats path and sizes it. Directories are walked; every other
// entry, symlinks included, is reported with its own size.
func (s *Scanner) classify(path string) (ScanItem, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return ScanItem{}, err
	}

	if !info.IsDir() {
		s.inc()

		return ScanItem{Path: path, Size: fileSize(info)}, nil
	}

	return ScanItem{Path: path, Size: s.walkSize(path), IsDir: true}, nil
}

// walkSize sums the sizes of the regular files below root without following
// symlinks. It never fails: unreadable parts of the tree contribute nothing.
func (s *Scanner) walkSize(root string) uint64 {
	var total uint64

	// A single fastwalk worker keeps each subtree sequential; parallelism
	// comes from the pool in Scan.
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}

	//nolint:varnamelen // d is standard for DirEntry
	err := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.warn("traversal issue under", path, err)

			return nil // Keep walking the rest of the tree
		}

		if d == nil || !d.Type().IsRegular() {
			return nil
		}

		s.inc()

		info, err := d.Info()
		if err != nil {
			s.warn("metadata read failed for", path, err)

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		total = addSaturating(total, fileSize(info))

		return nil
	})
	if err != nil {
		s.warn("traversal issue under", root, err)
	}

	return total
}

// warn forwards err to the Reporter unless it is a permission error.
func (s *Scanner) warn(msg, path string, err error) {
	if IsPermission(err) {
		s.log.printf("[debug]: permission denied: %s\n", path)

		return
	}

	if s.Reporter != nil {
		s.Reporter.Warn(msg, path, err)
	}
}

func (s *Scanner) inc() {
	if s.Counter != nil {
		s.Counter.Inc()
	}
}

// fileSize returns the size of info, treating negative sizes as zero.
func fileSize(info fs.FileInfo) uint64 {
	if info.Size() < 0 {
		return 0
	}

	return uint64(info.Size())
}
