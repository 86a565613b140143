// Command cliquecover approximates a minimum clique partition of a graph.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/cliquecover/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
