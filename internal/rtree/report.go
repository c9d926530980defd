package rtree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"
	"syscall"
)

// Reporter receives non-fatal warnings raised below the scan target.
type Reporter interface {
	Warn(msg, path string, err error)
}

// WarningWriter is a Reporter that writes one line per warning to its writer.
// It is safe for concurrent use.
type WarningWriter struct {
	mu    sync.Mutex
	w     io.Writer
	count atomic.Int64
}

// NewWarningWriter creates a WarningWriter writing to w.
func NewWarningWriter(w io.Writer) *WarningWriter {
	return &WarningWriter{w: w}
}

// Warn writes "Warning: <msg> '<path>': <err>".
func (r *WarningWriter) Warn(msg, path string, err error) {
	r.count.Add(1)

	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.w, "Warning: %s '%s': %s\n", msg, path, FormatError(err))
}

// Count returns the number of warnings written so far.
func (r *WarningWriter) Count() int64 {
	return r.count.Load()
}

// ScanError is returned when the scan target itself cannot be accessed.
type ScanError struct {
	Path string
	Err  error
}

// Error returns "Failed to scan '<path>': <cause>". The path is not repeated
// when Err is an *fs.PathError.
func (e *ScanError) Error() string {
	cause := e.Err

	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}

	return fmt.Sprintf("Failed to scan '%s': %v", e.Path, cause)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// syncWriter serializes writes to w.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.w.Write(p)
}

// IsPermission reports whether err is a permission-denied failure.
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}

// FormatError renders err, appending the OS error code when one is available.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return fmt.Sprintf("%v (os error %d)", err, uintptr(errno))
	}

	return err.Error()
}
