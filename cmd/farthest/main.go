// Command farthest runs complete-linkage threshold clustering over a
// distance matrix stored as CSV and writes the resulting 1-based labels,
// one per line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
