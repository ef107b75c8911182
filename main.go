package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/tally/cmd"
	"github.com/thenoetrevino/tally/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var coded *cli.CodedError
		// Coded errors were already reported by the command's formatter
		if !errors.As(err, &coded) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
