package cmd

import (
	"reflect"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "positional paths keep case",
			args: []string{"/Data/Input.LOG", "/Data/Out"},
			want: []string{"/Data/Input.LOG", "/Data/Out"},
		},
		{
			name: "uppercase shorthand",
			args: []string{"in.txt", "out", "-L", "10", "-O", "3"},
			want: []string{"in.txt", "out", "-l", "10", "-o", "3"},
		},
		{
			name: "uppercase long flags",
			args: []string{"--LINES", "10", "--Offset=3", "--DRY-RUN"},
			want: []string{"--lines", "10", "--offset=3", "--dry-run"},
		},
		{
			name: "flag values keep case",
			args: []string{"--FORMAT", "JSON", "-l", "ABC"},
			want: []string{"--format", "JSON", "-l", "ABC"},
		},
		{
			name: "value that looks like a flag",
			args: []string{"-l", "-H", "in.txt"},
			want: []string{"-l", "-H", "in.txt"},
		},
		{
			name: "trailing value flag dropped",
			args: []string{"in.txt", "out", "-o", "2", "-L"},
			want: []string{"in.txt", "out", "-o", "2"},
		},
		{
			name: "verbose shorthand stays uppercase",
			args: []string{"-V", "-H"},
			want: []string{"-V", "-h"},
		},
		{
			name: "unknown flags dropped",
			args: []string{"-X", "in.txt", "--Whatever=1", "out", "-5", "-"},
			want: []string{"in.txt", "out", "-"},
		},
		{
			name: "terminator passes the rest through",
			args: []string{"-L", "2", "--", "-L"},
			want: []string{"-l", "2", "--", "-L"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeArgs(NewRootCmd(), tt.args)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
