package splitter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// removeAll is swapped out in tests.
var removeAll = os.RemoveAll

// OutputName returns the file name of chunk index for input, e.g.
// "access_000003.log" for "/var/log/access.log".
func OutputName(input string, index int) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%06d%s", strings.TrimSuffix(base, ext), index, ext)
}

// PrepWarning reports that an existing output directory could not be
// removed. The directory is reused as-is and may still hold stale files.
type PrepWarning struct {
	Dir string
	Err error
}

func (w *PrepWarning) Error() string {
	return fmt.Sprintf("could not reset output directory %s: %v", w.Dir, w.Err)
}

func (w *PrepWarning) Unwrap() error { return w.Err }

// IsPrepWarning reports whether err is a non-fatal *PrepWarning.
func IsPrepWarning(err error) bool {
	var w *PrepWarning
	return errors.As(err, &w)
}

// PrepareOutputDir empties the configured output directory by deleting and
// recreating it. When the deletion fails a *PrepWarning is returned and the
// run may continue; any other error is fatal.
func (s *Splitter) PrepareOutputDir() error {
	dir := s.cfg.OutputDir

	var warning error
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		if err := removeAll(dir); err != nil {
			warning = &PrepWarning{Dir: dir, Err: err}
			s.log.Warn("reusing existing output directory", zap.String("dir", dir), zap.Error(err))
		} else {
			s.log.Debug("removed existing output directory", zap.String("dir", dir))
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return warning
}
