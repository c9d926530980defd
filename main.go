// Command rtree reports the disk usage of a file or of each immediate child of a directory.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/rtree/internal/cli"
	"github.com/idelchi/rtree/internal/rtree"
)

// version is set via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, rtree.FormatError(err))
		os.Exit(1)
	}
}
