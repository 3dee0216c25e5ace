package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/drewstinnett/gout/v2"
	"github.com/drewstinnett/gout/v2/formats"
	goutjson "github.com/drewstinnett/gout/v2/formats/json"
	"github.com/drewstinnett/gout/v2/formats/plain"
	"github.com/drewstinnett/gout/v2/formats/yaml"
	"github.com/spf13/cobra"
)

// outputConfig holds output formatting configuration.
type outputConfig struct {
	Format string
}

var outCfg = &outputConfig{}

// BindOutputFlags adds the --format flag to a command.
// LINESPLIT_FORMAT provides the default.
func BindOutputFlags(cmd *cobra.Command) {
	outCfg.Format = ""
	cmd.Flags().StringVar(&outCfg.Format, "format", getEnvOrDefault("LINESPLIT_FORMAT", "plain"),
		"Summary format: plain, json, yaml, jsonl")
}

// PrintOutput prints data in the configured structured format.
func PrintOutput(w io.Writer, data interface{}) error {
	g := gout.New(gout.WithWriter(w))

	var formatter formats.Formatter
	switch outCfg.Format {
	case "json":
		formatter = &goutjson.Formatter{}
	case "yaml":
		formatter = &yaml.Formatter{}
	default:
		formatter = &plain.Formatter{}
	}

	g.SetFormatter(formatter)
	return g.Print(data)
}

// printJSONL writes each item as one JSON line.
func printJSONL[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

// IsStructuredOutput returns true if the output format is structured (JSON, YAML, etc.)
func IsStructuredOutput() bool {
	switch outCfg.Format {
	case "json", "yaml", "jsonl":
		return true
	default:
		return false
	}
}

// GetFormat returns the current output format.
func GetFormat() string {
	return outCfg.Format
}

func validateFormat() error {
	switch outCfg.Format {
	case "plain", "json", "yaml", "jsonl":
		return nil
	default:
		return fmt.Errorf("%w: --format %q (want plain, json, yaml or jsonl)", ErrInvalidFlag, outCfg.Format)
	}
}
