/*
File : hinton/cmd/hinton/cmd/run.go
*/
package cmd

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hinton-lang/hinton/eval"
	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/resolver"
	"github.com/hinton-lang/hinton/std"
	"github.com/spf13/cobra"
)

var redColor = color.New(color.FgRed)

var runCmd = &cobra.Command{
	Use:   "run [permission-flags...] <path> [program-args...]",
	Short: "Run a Hinton source file",
	Long: `Execute a Hinton program from a source file.

Permission flags grant host capabilities to the program:
  --allow-input     allow the input built-in to read stdin
  --allow-network   reserved
  --allow-write     reserved
  --allow-read      reserved

Flags the interpreter does not recognise are not consumed; they are
passed to the program, together with everything after the path, as the
global 'args' array.

Examples:
  hinton run script.ht
  hinton run --allow-input quiz.ht
  hinton run script.ht first second`,
	// Permission flags are scanned by hand so unknown flags fall
	// through as program arguments instead of failing the parse.
	DisableFlagParsing: true,
	RunE:               runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runScript drives the full pipeline for a source file: scan the
// permission flags, read the file, parse, resolve, evaluate. Exit
// codes: 0 on success, 64 on CLI misuse, 65 when syntax or resolution
// errors prevented execution, 70 when a runtime error aborted it.
func runScript(cmd *cobra.Command, args []string) error {

	// --help counts only among the leading flags; after the path it is
	// an ordinary program argument.
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			break
		}
		if arg == "--help" {
			return cmd.Help()
		}
	}

	perms, path, programArgs := splitRunArgs(args)

	if path == "" {
		redColor.Fprintln(os.Stderr, "Error: no source file given")
		cmd.Usage()
		os.Exit(ExitUsage)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: could not read file '%s': %v\n", path, err)
		os.Exit(ExitUsage)
	}

	// Line endings are normalised so positions and string literals see
	// plain '\n'.
	source := strings.ReplaceAll(string(content), "\r\n", "\n")

	par := parser.NewParser(source)
	program := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", msg)
		}
		os.Exit(ExitDataErr)
	}

	res := resolver.NewResolver()
	locals := res.Resolve(program)
	if res.HasErrors() {
		for _, msg := range res.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", msg)
		}
		os.Exit(ExitDataErr)
	}

	evaluator := eval.NewEvaluator()
	evaluator.AddLocals(locals)
	evaluator.SetPermissions(perms)
	evaluator.DefineProgramArgs(programArgs)

	if err := evaluator.Interpret(program); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(ExitSoftware)
	}
	return nil
}

// splitRunArgs scans the run command's raw arguments. Leading
// permission flags are consumed; the first argument that is not a
// recognised flag becomes the source path; everything else, including
// flags the interpreter does not recognise, is passed through as
// program arguments.
func splitRunArgs(args []string) (std.Permissions, string, []string) {
	perms := std.Permissions{}
	path := ""
	programArgs := make([]string, 0)

	for _, arg := range args {
		if path == "" && strings.HasPrefix(arg, "--") {
			switch arg {
			case "--allow-input":
				perms.AllowInput = true
			case "--allow-network":
				perms.AllowNetwork = true
			case "--allow-write":
				perms.AllowWrite = true
			case "--allow-read":
				perms.AllowRead = true
			default:
				// Unknown flag: not consumed, handed to the program.
				programArgs = append(programArgs, arg)
			}
			continue
		}
		if path == "" {
			path = arg
			continue
		}
		programArgs = append(programArgs, arg)
	}
	return perms, path, programArgs
}
