package rtree

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"
	"testing"
)

func TestScannerWarn(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantWarn bool
	}{
		{
			name:     "GivenPermissionError_WhenWarned_ThenSuppressed",
			err:      &fs.PathError{Op: "open", Path: "locked", Err: fs.ErrPermission},
			wantWarn: false,
		},
		{
			name:     "GivenWrappedPermissionError_WhenWarned_ThenSuppressed",
			err:      fmt.Errorf("reading: %w", fs.ErrPermission),
			wantWarn: false,
		},
		{
			name:     "GivenVanishedEntry_WhenWarned_ThenReported",
			err:      &fs.PathError{Op: "lstat", Path: "gone", Err: fs.ErrNotExist},
			wantWarn: true,
		},
		{
			name:     "GivenOtherError_WhenWarned_ThenReported",
			err:      errors.New("input/output error"),
			wantWarn: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			reporter := NewWarningWriter(&buf)
			s := &Scanner{Reporter: reporter}

			s.warn("failed to scan", "some/path", tc.err)

			if got := reporter.Count() == 1; got != tc.wantWarn {
				t.Errorf("warned = %t, want %t (output %q)", got, tc.wantWarn, buf.String())
			}

			if tc.wantWarn && !strings.Contains(buf.String(), "'some/path'") {
				t.Errorf("warning %q does not name the failing path", buf.String())
			}
		})
	}

	t.Run("GivenNilReporter_WhenWarned_ThenNoPanic", func(t *testing.T) {
		var s Scanner
		s.warn("failed to scan", "x", errors.New("boom"))
	})
}

func TestAddSaturating(t *testing.T) {
	testCases := []struct {
		name string
		a, b uint64
		want uint64
	}{
		{name: "GivenSmallValues_WhenAdded_ThenSum", a: 1, b: 2, want: 3},
		{name: "GivenExactMax_WhenAdded_ThenMax", a: math.MaxUint64 - 1, b: 1, want: math.MaxUint64},
		{name: "GivenOverflow_WhenAdded_ThenClamped", a: math.MaxUint64 - 1, b: 10, want: math.MaxUint64},
		{name: "GivenMaxPlusMax_WhenAdded_ThenClamped", a: math.MaxUint64, b: math.MaxUint64, want: math.MaxUint64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := addSaturating(tc.a, tc.b); got != tc.want {
				t.Errorf("addSaturating(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestLoggerPrintf(t *testing.T) {
	var buf bytes.Buffer

	logger{enabled: false, w: &buf}.printf("[debug]: %s\n", "hidden")
	logger{enabled: true, w: &buf}.printf("[debug]: %s\n", "shown")

	if got := buf.String(); got != "[debug]: shown\n" {
		t.Errorf("output = %q, want only enabled line", got)
	}
}
