package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/rtree/internal/integration"
	"github.com/idelchi/rtree/internal/rtree"
)

// EnvPrefix is the prefix for environment variables overriding flag defaults.
const EnvPrefix = "RTREE"

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command(os.Stdout, os.Stderr).Execute()
}

// Command builds the root command writing the report to stdout and
// diagnostics to stderr.
func (c CLI) Command(stdout, stderr io.Writer) *cobra.Command {
	var options rtree.Options

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "rtree [flags] [path]",
		Short: "Fast disk usage analyzer for files and directories",
		Long: heredoc.Doc(`
			rtree reports the disk usage of a file or of each immediate child of a directory.

			Subdirectories are summed recursively. Symbolic links are never followed.
			Entries that cannot be read because of missing permissions are skipped silently;
			other read failures are reported as warnings on stderr.

			Flag defaults can be set with RTREE_SORT, RTREE_LIMIT, RTREE_OUTPUT and RTREE_WORKERS.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				fmt.Fprintln(stdout, c.version)

				return nil
			}

			if options.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				fmt.Fprintln(stdout, rendered)

				return nil
			}

			config := viper.New()
			config.SetEnvPrefix(EnvPrefix)
			config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			config.AutomaticEnv()

			if err := config.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			sort, err := rtree.ParseSortMode(config.GetString("sort"))
			if err != nil {
				return err
			}

			options.Sort = sort
			options.Limit = config.GetInt("limit")
			options.Workers = config.GetInt("workers")
			options.Output = strings.ToLower(config.GetString("output"))

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if options.Workers < 0 {
				return fmt.Errorf("workers cannot be negative: %d", options.Workers)
			}

			options.Path = "."
			if len(args) > 0 {
				options.Path = args[0]
			}

			return logic(options, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.String("sort", string(rtree.BySize), fmt.Sprintf("Sort by %v", rtree.SortModes()))
	flags.IntP("limit", "n", -1, "Limit output to the top N items (-1 = unlimited)")
	flags.StringP("output", "o", "table", "Output format: json or table")
	flags.IntP("workers", "j", 0, "Number of children scanned in parallel (0 = number of CPUs)")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	flags.BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}
