/*
File : hinton/resolver/resolver.go
*/

// Package resolver implements the static scope analysis pass of the
// Hinton interpreter.
//
// The resolver walks the AST once, pre-order, maintaining a stack of
// lexical scopes. For every identifier use it finds, it records how many
// scope frames the evaluator must ascend from the use site to reach the
// frame holding the binding. The evaluator then reads locals with a
// direct `GetAt(distance, name)` hop instead of a dynamic chain walk,
// which is what makes closures cheap and shadowing exact.
//
// Names with no hit in any tracked scope get no annotation at all: the
// evaluator falls back to the global environment for them at runtime.
//
// The pass also enforces the static rules that do not need values:
// reading a local inside its own initializer, redeclaring a name in the
// same scope, `return` outside a function or lambda, and
// `break`/`continue` outside a loop are all resolution errors.
package resolver

import (
	"fmt"

	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/parser"
)

// functionKind tracks what kind of callable body the walk is currently
// inside, for validating `return`.
type functionKind int

const (
	noFunction functionKind = iota
	inFunction
	inLambda
)

// Resolver carries the scope stack and the accumulated annotations.
type Resolver struct {
	// scopes is the stack of lexical scopes, innermost last. Each scope
	// maps a name to whether it is fully defined yet (false between
	// declaration and the end of its initializer). The global scope is
	// not tracked; global reads resolve dynamically at runtime.
	scopes []map[string]bool

	// locals maps each resolved identifier-bearing expression node to
	// its scope distance. Keyed by node identity, so two occurrences of
	// the same name resolve independently.
	locals map[parser.Expr]int

	// Errors collects resolution diagnostics.
	Errors []string

	currentFunction functionKind
	insideLoop      bool
}

// NewResolver creates a resolver with an empty scope stack.
func NewResolver() *Resolver {
	return &Resolver{
		scopes: make([]map[string]bool, 0),
		locals: make(map[parser.Expr]int),
		Errors: make([]string, 0),
	}
}

// Resolve walks the program and returns the distance table. The table
// depends only on the AST shape and is immutable afterwards; callers
// must check HasErrors before executing.
func (r *Resolver) Resolve(statements []parser.Stmt) map[parser.Expr]int {
	r.resolveStatements(statements)
	return r.locals
}

// HasErrors reports whether any resolution error was recorded.
func (r *Resolver) HasErrors() bool {
	return len(r.Errors) > 0
}

// GetErrors returns all diagnostics collected during resolution.
func (r *Resolver) GetErrors() []string {
	return r.Errors
}

// errorAt records a diagnostic anchored at the given token.
func (r *Resolver) errorAt(tok lexer.Token, msg string) {
	r.Errors = append(r.Errors,
		fmt.Sprintf("[%d:%d] RESOLVE ERROR: at '%s': %s", tok.Line, tok.Column, tok.Literal, msg))
}

func (r *Resolver) resolveStatements(statements []parser.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt parser.Stmt) {
	switch s := stmt.(type) {
	case *parser.BlockStmt:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *parser.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *parser.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *parser.ConstStmt:
		r.declare(s.Name)
		r.resolveExpr(s.Initializer)
		r.define(s.Name)

	case *parser.FunctionStmt:
		// Declared and defined before the body resolves, so the
		// function can call itself recursively.
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s.Params, s.Body, inFunction)

	case *parser.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *parser.WhileStmt:
		r.resolveExpr(s.Condition)
		enclosing := r.insideLoop
		r.insideLoop = true
		r.resolveStmt(s.Body)
		if s.Step != nil {
			r.resolveStmt(s.Step)
		}
		r.insideLoop = enclosing

	case *parser.BreakStmt:
		if !r.insideLoop {
			r.errorAt(s.Keyword, "'break' outside of a loop")
		}

	case *parser.ContinueStmt:
		if !r.insideLoop {
			r.errorAt(s.Keyword, "'continue' outside of a loop")
		}

	case *parser.ReturnStmt:
		if r.currentFunction == noFunction {
			r.errorAt(s.Keyword, "'return' outside of a function")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}

	case *parser.EnumStmt:
		r.declare(s.Name)
		r.define(s.Name)
	}
}

func (r *Resolver) resolveExpr(expr parser.Expr) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		// Nothing to resolve.

	case *parser.VariableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Literal]; declared && !defined {
				r.errorAt(e.Name, "cannot read local variable in its own initializer")
			}
		}
		r.resolveLocal(e, e.Name.Literal)

	case *parser.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Literal)

	case *parser.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *parser.UnaryExpr:
		r.resolveExpr(e.Right)

	case *parser.DeIncrementExpr:
		r.resolveExpr(e.Operand)

	case *parser.GroupingExpr:
		r.resolveExpr(e.Expression)

	case *parser.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg.Value)
		}

	case *parser.MemberAccessExpr:
		r.resolveExpr(e.Object)

	case *parser.MemberSetterExpr:
		r.resolveExpr(e.Object)
		r.resolveExpr(e.Value)

	case *parser.IndexingExpr:
		r.resolveExpr(e.Container)
		r.resolveExpr(e.Index)

	case *parser.ArrayItemSetterExpr:
		r.resolveExpr(e.Target)
		r.resolveExpr(e.Value)

	case *parser.ArrayLiteralExpr:
		for _, element := range e.Elements {
			r.resolveExpr(element)
		}

	case *parser.DictLiteralExpr:
		for _, pair := range e.Pairs {
			r.resolveExpr(pair.Value)
		}

	case *parser.LambdaExpr:
		r.resolveFunction(e.Params, e.Body, inLambda)
	}
}

// resolveFunction resolves a function or lambda body in a fresh scope,
// with the loop flag cleared (a `break` inside a function body never
// targets a loop outside it) and the function kind updated.
func (r *Resolver) resolveFunction(params []*parser.ParameterStmt, body []parser.Stmt, kind functionKind) {
	enclosingFunction := r.currentFunction
	enclosingLoop := r.insideLoop
	r.currentFunction = kind
	r.insideLoop = false

	r.beginScope()
	for _, param := range params {
		r.declare(param.Name)
		r.define(param.Name)
		if param.Default != nil {
			// Defaults evaluate in the invocation frame, so they
			// resolve inside the function scope.
			r.resolveExpr(param.Default)
		}
	}
	r.resolveStatements(body)
	r.endScope()

	r.currentFunction = enclosingFunction
	r.insideLoop = enclosingLoop
}

// resolveLocal scans the scope stack from innermost to outermost; on a
// hit it records the distance for this specific expression node. No hit
// means the name is (hopefully) global and is left to runtime lookup.
func (r *Resolver) resolveLocal(expr parser.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

// beginScope pushes a fresh lexical scope.
func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

// endScope pops the innermost scope.
func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare marks a name as existing-but-not-yet-defined in the innermost
// scope, and reports redeclaration in the same scope.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Literal]; exists {
		r.errorAt(name, fmt.Sprintf("'%s' is already declared in this scope", name.Literal))
	}
	scope[name.Literal] = false
}

// define marks a declared name as fully initialized.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Literal] = true
}
