/*
File : hinton/cmd/hinton/main.go
*/

// The hinton command is the entry point of the Hinton interpreter.
// With no arguments it starts the interactive REPL; `hinton run`
// executes a source file; `hinton help` prints the command summary.
package main

import (
	"os"

	"github.com/hinton-lang/hinton/cmd/hinton/cmd"
)

func main() {
	// `--h` is accepted as a spelling of the help command.
	if len(os.Args) > 1 && os.Args[1] == "--h" {
		os.Args[1] = "help"
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitUsage)
	}
}
