/*
File : hinton/eval/evaluator.go
*/

// Package eval implements the tree-walking evaluator of the Hinton
// interpreter. It consumes the parser's AST and the resolver's distance
// table, and executes statements against the lexically chained
// environment.
//
// Control flow uses no host exceptions visible to the language: break,
// continue and return travel as signal values through the statement
// return channel, and each is absorbed at exactly one boundary (loops
// for break/continue, invocations for return). Runtime errors carry
// their originating token and unwind to the Interpret driver.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/hinton-lang/hinton/function"
	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/scope"
	"github.com/hinton-lang/hinton/std"
)

// Evaluator holds the execution state: the global and current scopes,
// the resolver's annotations, the I/O streams built-ins use, and the
// granted permissions.
type Evaluator struct {
	Globals *scope.Scope // the global frame, target of unresolved names
	scp     *scope.Scope // the innermost frame during execution

	// Locals is the resolver's distance table, keyed by expression node
	// identity. Names absent from it fall back to global lookup.
	Locals map[parser.Expr]int

	Writer      io.Writer       // output stream for print and prompts
	Reader      *bufio.Reader   // input stream for the input built-in
	Permissions std.Permissions // capabilities granted on the CLI
}

// NewEvaluator creates an evaluator with a fresh global scope and the
// full built-in registry installed with built-in protection.
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	ev := &Evaluator{
		Globals: globals,
		scp:     globals,
		Locals:  make(map[parser.Expr]int),
		Writer:  os.Stdout,
		Reader:  bufio.NewReader(os.Stdin),
	}
	for _, builtin := range std.Builtins {
		globals.DefineBuiltIn(builtin.Name, builtin)
	}
	return ev
}

// SetWriter redirects the output of print and prompt writes, which is
// how tests and the REPL capture program output.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects the input built-in's source.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// SetPermissions installs the permission set scanned from the command
// line.
func (e *Evaluator) SetPermissions(perms std.Permissions) {
	e.Permissions = perms
}

// AddLocals merges a resolver distance table into the evaluator. The
// REPL calls this once per line, accumulating annotations for every
// fragment it has executed.
func (e *Evaluator) AddLocals(locals map[parser.Expr]int) {
	for expr, distance := range locals {
		e.Locals[expr] = distance
	}
}

// DefineProgramArgs binds the program arguments from the CLI as the
// global `args` array of strings, with built-in protection.
func (e *Evaluator) DefineProgramArgs(args []string) {
	elements := make([]objects.Object, 0, len(args))
	for _, arg := range args {
		elements = append(elements, &objects.String{Value: arg})
	}
	e.Globals.DefineBuiltIn("args", &objects.Array{Elements: elements})
}

// Interpret executes a program. A runtime error raised anywhere in the
// tree unwinds here and is returned; any other panic is the host's
// problem and is re-raised.
func (e *Evaluator) Interpret(statements []parser.Stmt) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if runtimeErr, ok := recovered.(*RuntimeError); ok {
				err = runtimeErr
				return
			}
			panic(recovered)
		}
	}()

	for _, stmt := range statements {
		e.Execute(stmt)
	}
	return nil
}

// Output implements std.Runtime.
func (e *Evaluator) Output() io.Writer {
	return e.Writer
}

// InputReader implements std.Runtime.
func (e *Evaluator) InputReader() *bufio.Reader {
	return e.Reader
}

// Perms implements std.Runtime.
func (e *Evaluator) Perms() std.Permissions {
	return e.Permissions
}

// CallFunction implements std.Runtime: it lets higher-order built-ins
// like forEach apply a user callable to positional arguments. Runtime
// errors in the callee unwind through the built-in as usual.
func (e *Evaluator) CallFunction(fn objects.Object, tok lexer.Token, args []objects.Object) objects.Object {
	switch callee := fn.(type) {
	case *function.Function:
		return e.invoke(callee.Params, callee.Body, callee.Closure, callee.MinArity(), tok, args, nil)
	case *function.Lambda:
		return e.invoke(callee.Params, callee.Body, callee.Closure, callee.MinArity(), tok, args, nil)
	case *std.Builtin:
		return e.applyBuiltin(callee, tok, args)
	default:
		e.raise(tok, "value of type '%s' is not callable", std.TypeName(fn))
		return nil
	}
}
