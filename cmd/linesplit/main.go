// linesplit: CLI tool to split large text files into fixed-size line chunks.
package main

import (
	"os"

	"github.com/aaronlippold/linesplit/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
