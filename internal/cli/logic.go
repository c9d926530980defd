package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/rtree/internal/rtree"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func logic(options rtree.Options, stdout, stderr io.Writer) error {
	enableProgress := options.Output != "json" &&
		!options.Debug &&
		isTerminal(stderr)

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progressHook = func(files int64) {
			fmt.Fprintf(stderr, "\r\033[2KScanning… %s files\r", humanize.Comma(files))
		}
	}

	result, err := rtree.Run(ctx, options, progressHook, stderr)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch options.Output {
	case "json":
		return PrintJSON(result, stdout)
	case "table":
		return PrintTable(result, stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
