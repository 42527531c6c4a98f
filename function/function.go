/*
File : hinton/function/function.go
*/

// Package function defines the user-callable closure values of the
// Hinton runtime. It sits between the parser (whose nodes it references
// for parameter lists and bodies) and the objects package (whose
// interface it implements), which keeps those two packages free of a
// dependency cycle.
package function

import (
	"fmt"
	"strings"

	"github.com/hinton-lang/hinton/objects"
	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/scope"
)

// Function represents a named user-defined function. It captures the
// environment frame current at its declaration site; invocations chain
// their locals onto that frame, which is what makes closures observe
// later mutations of the captured bindings.
type Function struct {
	Name    string
	Params  []*parser.ParameterStmt
	Body    []parser.Stmt
	Closure *scope.Scope
}

// GetType returns the function type tag.
func (f *Function) GetType() objects.Type { return objects.FunctionType }

// ToString returns "func(name)".
func (f *Function) ToString() string { return fmt.Sprintf("func(%s)", f.Name) }

// ToObject returns a detailed rendering including the parameter names,
// e.g. "<Function[add(a, b)]>".
func (f *Function) ToObject() string {
	return fmt.Sprintf("<Function[%s(%s)]>", f.Name, paramNames(f.Params))
}

// MinArity returns the number of required parameters.
func (f *Function) MinArity() int { return minArity(f.Params) }

// MaxArity returns the total number of parameters.
func (f *Function) MaxArity() int { return len(f.Params) }

// Lambda represents an anonymous function value. Identical to Function
// in behavior, distinct in type tag and display form.
type Lambda struct {
	Params  []*parser.ParameterStmt
	Body    []parser.Stmt
	Closure *scope.Scope
}

// GetType returns the lambda type tag.
func (l *Lambda) GetType() objects.Type { return objects.LambdaType }

// ToString returns "fn(params)".
func (l *Lambda) ToString() string { return fmt.Sprintf("fn(%s)", paramNames(l.Params)) }

// ToObject returns a detailed rendering, e.g. "<Lambda(a, b)>".
func (l *Lambda) ToObject() string { return fmt.Sprintf("<Lambda(%s)>", paramNames(l.Params)) }

// MinArity returns the number of required parameters.
func (l *Lambda) MinArity() int { return minArity(l.Params) }

// MaxArity returns the total number of parameters.
func (l *Lambda) MaxArity() int { return len(l.Params) }

// minArity counts the leading required parameters. The parser enforces
// that optional parameters follow required ones, so counting the
// non-optional entries is sufficient.
func minArity(params []*parser.ParameterStmt) int {
	count := 0
	for _, p := range params {
		if !p.IsOptional {
			count++
		}
	}
	return count
}

// paramNames joins the parameter names for display. Parameters declared
// as `name?` keep their question mark; parameters with a default value
// show the bare name.
func paramNames(params []*parser.ParameterStmt) string {
	names := make([]string, 0, len(params))
	for _, p := range params {
		name := p.Name.Literal
		if p.IsOptional && p.Default == nil {
			name += "?"
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}
