// Package cmd implements the linesplit command line using cobra.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aaronlippold/linesplit/internal/splitter"
)

// Version is set at build time.
var Version = "dev"

// Config holds CLI configuration.
type Config struct {
	Lines   string
	Offset  string
	DryRun  bool
	Verbose bool
	NoColor bool
}

// Global config instance used by the root command
var cfg = &Config{}

// NewRootCmd creates a fresh command tree.
// This factory function allows creating fresh command trees for testing.
func NewRootCmd() *cobra.Command {
	*cfg = Config{}

	rootCmd := &cobra.Command{
		Use:   "linesplit <input_file> <output_dir> [flags]",
		Short: "Split a text file into files of a fixed number of lines",
		Long: `linesplit splits a line-oriented text file (logs, CSVs, ...) into numbered
files of at most --lines lines each, starting at line --offset.

Output files are named <input-name>_<000001><input-ext>. The output directory
is deleted and recreated before splitting.`,
		Example: `  linesplit access.log ./parts
  linesplit data.csv ./parts -l 1000 -o 2`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: runSplit,
	}

	defLines := fmt.Sprint(splitter.DefaultLinesPerFile)
	defOffset := fmt.Sprint(splitter.DefaultOffset)
	rootCmd.Flags().StringVarP(&cfg.Lines, "lines", "l", defLines, "Set number of lines per output file")
	rootCmd.Flags().StringVarP(&cfg.Offset, "offset", "o", defOffset, "Set number of the first line to keep")
	rootCmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "Print the planned output files without writing anything")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "V", false, "Verbose output")
	rootCmd.Flags().BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	BindOutputFlags(rootCmd)

	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return ExecuteWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteWithArgs runs the CLI with custom args and writers (for testing).
func ExecuteWithArgs(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(normalizeArgs(cmd, args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return err
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

