// Command mferesolve runs the module host's registry resolution from a terminal: it fetches the
// published registry, applies branch overrides given as flags and prints the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
