package analyzer_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aaronlippold/linesplit/internal/analyzer"
)

func TestCountLines(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{"empty file", "", 0},
		{"single line no newline", "alpha", 1},
		{"single line", "alpha\n", 1},
		{"two lines", "alpha\nbeta\n", 2},
		{"unterminated last line", "alpha\nbeta", 2},
		{"blank lines", "\n\n\n", 3},
		{"crlf", "alpha\r\nbeta\r\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := analyzer.CountLines(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("CountLines() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("CountLines() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		linesPerFile int
		offset       int
		want         []analyzer.Chunk
	}{
		{
			name:  "scenario A",
			total: 10, linesPerFile: 4, offset: 1,
			want: []analyzer.Chunk{
				{Index: 1, FirstLine: 1, LastLine: 4, Lines: 4},
				{Index: 2, FirstLine: 5, LastLine: 8, Lines: 4},
				{Index: 3, FirstLine: 9, LastLine: 10, Lines: 2},
			},
		},
		{
			name:  "scenario B",
			total: 10, linesPerFile: 4, offset: 5,
			want: []analyzer.Chunk{
				{Index: 1, FirstLine: 5, LastLine: 8, Lines: 4},
				{Index: 2, FirstLine: 9, LastLine: 10, Lines: 2},
			},
		},
		{
			name:  "empty input",
			total: 0, linesPerFile: 4, offset: 1,
			want: nil,
		},
		{
			name:  "offset past end",
			total: 3, linesPerFile: 4, offset: 4,
			want: nil,
		},
		{
			name:  "offset on last line",
			total: 3, linesPerFile: 4, offset: 3,
			want: []analyzer.Chunk{{Index: 1, FirstLine: 3, LastLine: 3, Lines: 1}},
		},
		{
			name:  "exact multiple",
			total: 8, linesPerFile: 4, offset: 1,
			want: []analyzer.Chunk{
				{Index: 1, FirstLine: 1, LastLine: 4, Lines: 4},
				{Index: 2, FirstLine: 5, LastLine: 8, Lines: 4},
			},
		},
		{
			name:  "chunk size near max int",
			total: 10, linesPerFile: math.MaxInt, offset: 2,
			want: []analyzer.Chunk{{Index: 1, FirstLine: 2, LastLine: 10, Lines: 9}},
		},
		{
			name:  "chunk size one past remaining",
			total: 10, linesPerFile: 10, offset: 2,
			want: []analyzer.Chunk{{Index: 1, FirstLine: 2, LastLine: 10, Lines: 9}},
		},
		{
			name:  "invalid chunk size uses default",
			total: 401, linesPerFile: 0, offset: 1,
			want: []analyzer.Chunk{
				{Index: 1, FirstLine: 1, LastLine: 400, Lines: 400},
				{Index: 2, FirstLine: 401, LastLine: 401, Lines: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Plan(tt.total, tt.linesPerFile, tt.offset)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
			}
			if n := analyzer.FileCount(tt.total, tt.linesPerFile, tt.offset); n != len(tt.want) {
				t.Errorf("FileCount() = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "access.log")
	content := "one\ntwo\nthree\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	info, err := analyzer.Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	want := &analyzer.FileInfo{
		Path:  path,
		Base:  "access.log",
		Ext:   ".log",
		Size:  int64(len(content)),
		Lines: 3,
	}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Errorf("Inspect() mismatch (-want +got):\n%s", diff)
	}
}

func TestInspect_NotFound(t *testing.T) {
	_, err := analyzer.Inspect(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("Inspect() expected error for missing file")
	}
}
