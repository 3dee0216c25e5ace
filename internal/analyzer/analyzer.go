// Package analyzer inspects input files and predicts how they will be split.
package analyzer

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/aaronlippold/linesplit/internal/splitter"
)

// FileInfo contains basic information about an input file.
type FileInfo struct {
	Path  string `json:"path" yaml:"path"`
	Base  string `json:"base" yaml:"base"`
	Ext   string `json:"ext" yaml:"ext"`
	Size  int64  `json:"size" yaml:"size"`
	Lines int    `json:"lines" yaml:"lines"`
}

// Chunk is one planned output file. Line numbers are 1-based input lines.
type Chunk struct {
	Index     int `json:"index" yaml:"index"`
	FirstLine int `json:"first_line" yaml:"first_line"`
	LastLine  int `json:"last_line" yaml:"last_line"`
	Lines     int `json:"lines" yaml:"lines"`
}

// CountLines counts lines the same way the splitter reads them: a final
// line without a newline counts, an empty input has zero lines.
func CountLines(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	for {
		_, err := splitter.ReadLine(br)
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

// Inspect opens path and returns information about it.
func Inspect(path string) (*FileInfo, error) {
	if err := splitter.CheckInput(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	lines, err := CountLines(f)
	if err != nil {
		return nil, err
	}

	base := filepath.Base(path)
	return &FileInfo{
		Path:  path,
		Base:  base,
		Ext:   filepath.Ext(base),
		Size:  st.Size(),
		Lines: lines,
	}, nil
}

// Plan returns the chunks a split of totalLines lines would produce.
// Invalid counts fall back to the splitter defaults.
func Plan(totalLines, linesPerFile, offset int) []Chunk {
	if linesPerFile < 1 {
		linesPerFile = splitter.DefaultLinesPerFile
	}
	if offset < 1 {
		offset = splitter.DefaultOffset
	}

	var chunks []Chunk
	for first := offset; first <= totalLines; first += linesPerFile {
		n := min(linesPerFile, totalLines-first+1)
		chunks = append(chunks, Chunk{
			Index:     len(chunks) + 1,
			FirstLine: first,
			LastLine:  first + n - 1,
			Lines:     n,
		})
		// first+linesPerFile would pass totalLines, possibly by overflowing.
		if linesPerFile > totalLines-first {
			break
		}
	}
	return chunks
}

// FileCount is the number of output files Plan would return.
func FileCount(totalLines, linesPerFile, offset int) int {
	if linesPerFile < 1 {
		linesPerFile = splitter.DefaultLinesPerFile
	}
	if offset < 1 {
		offset = splitter.DefaultOffset
	}
	remaining := totalLines - (offset - 1)
	if remaining <= 0 {
		return 0
	}
	return (remaining-1)/linesPerFile + 1
}
