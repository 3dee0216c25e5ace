package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aaronlippold/linesplit/internal/analyzer"
	"github.com/aaronlippold/linesplit/internal/splitter"
)

// PlanResult holds the --dry-run plan for structured output.
type PlanResult struct {
	Input        string        `json:"input" yaml:"input"`
	OutputDir    string        `json:"output_dir" yaml:"output_dir"`
	LinesPerFile int           `json:"lines_per_file" yaml:"lines_per_file"`
	Offset       int           `json:"offset" yaml:"offset"`
	TotalLines   int           `json:"total_lines" yaml:"total_lines"`
	Files        []PlannedFile `json:"files" yaml:"files"`
}

// PlannedFile describes an output file a real run would write.
type PlannedFile struct {
	Index     int    `json:"index" yaml:"index"`
	Name      string `json:"name" yaml:"name"`
	FirstLine int    `json:"first_line" yaml:"first_line"`
	LastLine  int    `json:"last_line" yaml:"last_line"`
	Lines     int    `json:"lines" yaml:"lines"`
}

func runSplit(cmd *cobra.Command, args []string) error {
	ui := NewUI(cmd.OutOrStdout(), cmd.ErrOrStderr(), IsStructuredOutput())

	if err := validateFormat(); err != nil {
		return err
	}
	if len(args) < 2 {
		return usageFailure(cmd, ui, ErrUsage)
	}

	input, outDir := args[0], args[1]
	if err := splitter.CheckInput(input); err != nil {
		return usageFailure(cmd, ui, err)
	}

	conf := splitter.Config{
		InputFile:    input,
		OutputDir:    outDir,
		LinesPerFile: splitter.ParseCount(cfg.Lines, splitter.DefaultLinesPerFile),
		Offset:       splitter.ParseCount(cfg.Offset, splitter.DefaultOffset),
	}

	if cfg.DryRun {
		return runPlan(cmd, ui, conf)
	}

	logger := newLogger(cmd.ErrOrStderr())
	defer func() { _ = logger.Sync() }()

	verbose := cfg.Verbose && !IsStructuredOutput()
	obs := newProgress(ui, cmd.OutOrStdout(), verbose)

	s, err := splitter.New(conf, splitter.WithLogger(logger), splitter.WithObserver(obs))
	if err != nil {
		return err
	}

	if !IsStructuredOutput() {
		ui.Header("Executing with:")
		cmd.Printf(" - Lines per file:  %d\n", conf.LinesPerFile)
		cmd.Printf(" - Start line:      %d\n", conf.Offset)
		cmd.Println()
	}

	if err := s.PrepareOutputDir(); err != nil {
		if !splitter.IsPrepWarning(err) {
			ui.Error(err.Error())
			return reported(err)
		}
		ui.Warning(err.Error())
	}

	if !verbose {
		ui.StartSpinner(fmt.Sprintf("Splitting %s...", filepath.Base(input)))
	}
	res, err := s.SplitFile()
	obs.done()
	if err != nil {
		ui.StopSpinnerMsg(false, err.Error())
		return reported(err)
	}

	switch GetFormat() {
	case "jsonl":
		return printJSONL(cmd.OutOrStdout(), res.Files)
	case "json", "yaml":
		return PrintOutput(cmd.OutOrStdout(), res)
	}

	ui.StopSpinner()
	cmd.Printf("   Files written: %d\n", len(res.Files))
	cmd.Printf("   Lines written: %d (skipped %d)\n", res.LinesWritten, res.LinesSkipped)
	cmd.Println()
	ui.Success("Operation completed!")
	return nil
}

func runPlan(cmd *cobra.Command, ui *UI, conf splitter.Config) error {
	info, err := analyzer.Inspect(conf.InputFile)
	if err != nil {
		err = fmt.Errorf("inspecting input: %w", err)
		ui.Error(err.Error())
		return reported(err)
	}

	result := PlanResult{
		Input:        conf.InputFile,
		OutputDir:    conf.OutputDir,
		LinesPerFile: conf.LinesPerFile,
		Offset:       conf.Offset,
		TotalLines:   info.Lines,
		Files:        []PlannedFile{},
	}
	for _, c := range analyzer.Plan(info.Lines, conf.LinesPerFile, conf.Offset) {
		result.Files = append(result.Files, PlannedFile{
			Index:     c.Index,
			Name:      splitter.OutputName(conf.InputFile, c.Index),
			FirstLine: c.FirstLine,
			LastLine:  c.LastLine,
			Lines:     c.Lines,
		})
	}

	switch GetFormat() {
	case "jsonl":
		return printJSONL(cmd.OutOrStdout(), result.Files)
	case "json", "yaml":
		return PrintOutput(cmd.OutOrStdout(), result)
	}

	ui.Header(fmt.Sprintf("📄 Plan for %s (%d lines)", info.Base, info.Lines))
	for _, f := range result.Files {
		cmd.Printf("   %s  lines %d-%d (%d)\n", f.Name, f.FirstLine, f.LastLine, f.Lines)
	}
	cmd.Println()
	ui.Info(fmt.Sprintf("Dry run: %d files would be written to %s", len(result.Files), conf.OutputDir))
	return nil
}

// usageFailure reports err followed by the help text on stderr.
func usageFailure(cmd *cobra.Command, ui *UI, err error) error {
	ui.Error(err.Error())
	fmt.Fprintf(cmd.ErrOrStderr(), "\n%s", cmd.UsageString())
	return reported(err)
}
