// Command cagegen enumerates candidate molecular cages around a
// substrate read from an XYZ file, per the CLI surface in spec.md §6.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cagegen: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, errInputMissing):
		return exitInputMissing
	case errors.Is(err, errParse):
		return exitParseError
	default:
		return exitExternalTool
	}
}
