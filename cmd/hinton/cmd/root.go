/*
File : hinton/cmd/hinton/cmd/root.go
*/
package cmd

import (
	"os"

	"github.com/hinton-lang/hinton/repl"
	"github.com/spf13/cobra"
)

// Version of the interpreter (overridable by build flags).
var Version = "0.1.0-dev"

// Process exit codes, following the sysexits convention.
const (
	// ExitOK is a clean run.
	ExitOK = 0
	// ExitUsage reports command-line misuse.
	ExitUsage = 64
	// ExitDataErr reports syntax or resolution errors; execution never
	// started.
	ExitDataErr = 65
	// ExitSoftware reports a runtime error.
	ExitSoftware = 70
)

// BANNER is the ASCII logo displayed when the REPL starts.
var BANNER = `   __  _______  __________  _  __
  / / / /  _/ |/ /_  __/ / / |/ /
 / /_/ // //    / / / / /_/ /    /
/_/ /_/___/_/|_/ /_/  \____/_/|_/`

// LINE is a separator used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "ht> "

var rootCmd = &cobra.Command{
	Use:   "hinton",
	Short: "Hinton language interpreter",
	Long: `hinton is a tree-walking interpreter for the Hinton scripting
language: dynamically typed, lexically scoped, with first-class
functions and closures.

Run without arguments to enter the interactive REPL, or use the run
command to execute a source file.`,
	Version: Version,
	Args:    cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		repler := repl.NewRepl(BANNER, Version, LINE, PROMPT)
		repler.Start(os.Stdout)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
