// Package splitter partitions a line-oriented file into numbered chunk files.
package splitter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultLinesPerFile is the chunk size used when none (or an invalid one) is given.
	DefaultLinesPerFile = 400
	// DefaultOffset starts output at the first input line.
	DefaultOffset = 1
)

var (
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInputNotFound means the input path does not name a readable regular file.
	ErrInputNotFound = errors.New("input file not found")
)

// Config describes a single split run.
type Config struct {
	InputFile    string
	OutputDir    string
	LinesPerFile int
	Offset       int // 1-based number of the first line to keep
}

// Validate checks the invariants a run depends on.
func (c Config) Validate() error {
	switch {
	case c.InputFile == "":
		return fmt.Errorf("%w: input file is required", ErrInvalidConfig)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output directory is required", ErrInvalidConfig)
	case c.LinesPerFile < 1:
		return fmt.Errorf("%w: lines per file must be >= 1, got %d", ErrInvalidConfig, c.LinesPerFile)
	case c.Offset < 1:
		return fmt.Errorf("%w: offset must be >= 1, got %d", ErrInvalidConfig, c.Offset)
	}
	return nil
}

// ParseCount converts a command-line token into a positive count.
// Empty, non-numeric and non-positive values yield def.
func ParseCount(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// CheckInput reports ErrInputNotFound unless path is an existing regular file.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return fmt.Errorf("checking input: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInputNotFound, path)
	}
	return nil
}

// OutputFile describes one chunk written by Split.
type OutputFile struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	Lines int    `json:"lines" yaml:"lines"`
}

// Result summarises a completed run.
type Result struct {
	Input        string       `json:"input" yaml:"input"`
	OutputDir    string       `json:"output_dir" yaml:"output_dir"`
	LinesPerFile int          `json:"lines_per_file" yaml:"lines_per_file"`
	Offset       int          `json:"offset" yaml:"offset"`
	LinesRead    int          `json:"lines_read" yaml:"lines_read"`
	LinesSkipped int          `json:"lines_skipped" yaml:"lines_skipped"`
	LinesWritten int          `json:"lines_written" yaml:"lines_written"`
	Files        []OutputFile `json:"files" yaml:"files"`
}

// CreateFunc opens an output file for appending.
type CreateFunc func(path string) (io.WriteCloser, error)

func appendFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithObserver registers a progress observer.
func WithObserver(o Observer) Option {
	return func(s *Splitter) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Splitter) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCreate replaces the function used to open output files.
func WithCreate(fn CreateFunc) Option {
	return func(s *Splitter) {
		if fn != nil {
			s.create = fn
		}
	}
}

// Splitter writes successive chunks of its input into OutputDir.
// A Splitter is not safe for concurrent use.
type Splitter struct {
	cfg      Config
	observer Observer
	log      *zap.Logger
	create   CreateFunc
}

// New validates cfg and returns a Splitter for it.
func New(cfg Config, opts ...Option) (*Splitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Splitter{
		cfg:      cfg,
		observer: NopObserver{},
		log:      zap.NewNop(),
		create:   appendFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SplitFile opens the configured input file and splits it.
func (s *Splitter) SplitFile() (*Result, error) {
	if err := CheckInput(s.cfg.InputFile); err != nil {
		return nil, err
	}
	f, err := os.Open(s.cfg.InputFile)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return s.Split(f)
}

// chunk is the output file currently being filled.
type chunk struct {
	index int
	path  string
	lines int
	wc    io.WriteCloser
	w     *bufio.Writer
}

func (c *chunk) close() error {
	if err := c.w.Flush(); err != nil {
		c.wc.Close()
		return err
	}
	return c.wc.Close()
}

// Split reads r line by line, drops the lines before Offset and writes the
// rest into output files of at most LinesPerFile lines each. Files are only
// created once a line is written to them. On error the files written so far
// are left on disk.
func (s *Splitter) Split(r io.Reader) (*Result, error) {
	res := &Result{
		Input:        s.cfg.InputFile,
		OutputDir:    s.cfg.OutputDir,
		LinesPerFile: s.cfg.LinesPerFile,
		Offset:       s.cfg.Offset,
		Files:        []OutputFile{},
	}

	br := bufio.NewReader(r)
	skip := s.cfg.Offset - 1
	index := 1
	var cur *chunk

	for {
		line, err := ReadLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			s.abort(cur)
			return nil, fmt.Errorf("reading input: %w", err)
		}
		res.LinesRead++

		if res.LinesSkipped < skip {
			res.LinesSkipped++
			continue
		}

		if cur != nil && cur.lines == s.cfg.LinesPerFile {
			if err := s.finish(cur, res); err != nil {
				return nil, err
			}
			cur = nil
			index++
		}
		if cur == nil {
			cur, err = s.open(index)
			if err != nil {
				return nil, err
			}
		}

		if _, err := cur.w.WriteString(line); err != nil {
			s.abort(cur)
			return nil, fmt.Errorf("writing %s: %w", cur.path, err)
		}
		if err := cur.w.WriteByte('\n'); err != nil {
			s.abort(cur)
			return nil, fmt.Errorf("writing %s: %w", cur.path, err)
		}
		cur.lines++
		res.LinesWritten++
		s.observer.LineWritten(cur.index, cur.lines)
	}

	if cur != nil {
		if err := s.finish(cur, res); err != nil {
			return nil, err
		}
	}

	s.log.Debug("split completed",
		zap.String("input", s.cfg.InputFile),
		zap.Int("files", len(res.Files)),
		zap.Int("lines_read", res.LinesRead),
		zap.Int("lines_skipped", res.LinesSkipped),
		zap.Int("lines_written", res.LinesWritten),
	)
	return res, nil
}

func (s *Splitter) open(index int) (*chunk, error) {
	path := filepath.Join(s.cfg.OutputDir, OutputName(s.cfg.InputFile, index))
	wc, err := s.create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	s.log.Debug("output file started", zap.Int("index", index), zap.String("path", path))
	s.observer.FileStarted(index, path)
	return &chunk{index: index, path: path, wc: wc, w: bufio.NewWriter(wc)}, nil
}

func (s *Splitter) finish(c *chunk, res *Result) error {
	if err := c.close(); err != nil {
		return fmt.Errorf("closing %s: %w", c.path, err)
	}
	res.Files = append(res.Files, OutputFile{
		Index: c.index,
		Name:  filepath.Base(c.path),
		Path:  c.path,
		Lines: c.lines,
	})
	s.observer.FileFinished(c.index, c.path, c.lines)
	return nil
}

func (s *Splitter) abort(c *chunk) {
	if c == nil {
		return
	}
	if err := c.close(); err != nil {
		s.log.Warn("closing partial output file", zap.String("path", c.path), zap.Error(err))
	}
}

// ReadLine returns the next line from br without its terminator. A trailing
// "\r" is dropped as well, and a final line lacking "\n" is still returned.
// It returns io.EOF once the input is exhausted.
func ReadLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimSuffix(line[:len(line)-1], "\r"), nil
}
