package main

import (
	"fmt"
	"io"
	"os"

	"github.com/blockedby/chartpage/internal/chart"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run checks each path as a chart style file and returns the exit code.
func run(paths []string, out io.Writer) int {
	if len(paths) == 0 {
		fmt.Fprintln(out, "No files to check.")
		return 0
	}

	failed := false
	for _, path := range paths {
		if _, err := chart.LoadStyle(path); err != nil {
			fmt.Fprintf(out, "❌ %s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Fprintf(out, "✅ %s is valid\n", path)
	}

	if failed {
		return 1
	}
	return 0
}
