/*
File : hinton/repl/repl.go

Package repl implements the interactive Read-Eval-Print Loop of the
Hinton interpreter. The REPL lets users:
- enter Hinton code line by line
- see the value of expression statements immediately
- navigate command history with the arrow keys
- receive colored feedback for results and errors

The global environment, and the resolver annotations accumulated so
far, persist across lines, so functions and variables defined earlier
stay usable. Errors (syntax, resolution or runtime) abort only the
current line, never the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/hinton-lang/hinton/eval"
	"github.com/hinton-lang/hinton/objects"
	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/resolver"
)

// Color definitions for REPL output:
// - blueColor: decorative separators
// - yellowColor: expression results
// - redColor: error messages
// - greenColor: the banner
// - cyanColor: informational messages
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the configuration of an interactive session.
type Repl struct {
	Banner  string // ASCII banner displayed at startup
	Version string // interpreter version string
	Line    string // separator line for visual formatting
	Prompt  string // command prompt (e.g. "ht> ")
}

// NewRepl creates a REPL with the given banner, version, separator and
// prompt.
func NewRepl(banner string, version string, line string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Hinton "+r.Version)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line, parse, resolve, evaluate,
// print. The loop ends on '.exit' or end of input (Ctrl+D).
func (r *Repl) Start(writer io.Writer) {

	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	// One evaluator for the whole session: globals persist.
	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt.
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeLine(writer, line, evaluator)
	}
}

// executeLine runs one input line through the full pipeline. Any error
// aborts only this line; the session and its globals survive.
func (r *Repl) executeLine(writer io.Writer, line string, evaluator *eval.Evaluator) {

	par := parser.NewParser(line)
	program := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	res := resolver.NewResolver()
	locals := res.Resolve(program)
	if res.HasErrors() {
		for _, msg := range res.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}
	evaluator.AddLocals(locals)

	// Execute statement by statement so the value of a trailing
	// expression can be echoed.
	for _, stmt := range program {
		if exprStmt, ok := stmt.(*parser.ExpressionStmt); ok {
			value, err := r.evaluateExpression(evaluator, exprStmt)
			if err != nil {
				redColor.Fprintf(writer, "%s\n", err.Error())
				return
			}
			if _, isNull := value.(*objects.Null); value != nil && !isNull {
				yellowColor.Fprintf(writer, "%s\n", value.ToString())
			}
			continue
		}
		if err := evaluator.Interpret([]parser.Stmt{stmt}); err != nil {
			redColor.Fprintf(writer, "%s\n", err.Error())
			return
		}
	}
}

// evaluateExpression evaluates a single expression statement, catching
// runtime errors so the caller can report them without ending the
// session.
func (r *Repl) evaluateExpression(evaluator *eval.Evaluator, stmt *parser.ExpressionStmt) (value objects.Object, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if runtimeErr, ok := recovered.(*eval.RuntimeError); ok {
				err = runtimeErr
				value = nil
				return
			}
			panic(recovered)
		}
	}()
	return evaluator.Evaluate(stmt.Expression), nil
}
