/*
File : hinton/eval/eval_calls.go
*/
package eval

import (
	"github.com/hinton-lang/hinton/function"
	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/scope"
	"github.com/hinton-lang/hinton/std"
)

// namedArg pairs a named argument's identifier token with its already-
// evaluated value.
type namedArg struct {
	tok   lexer.Token
	value objects.Object
}

// evalCall evaluates the callee, then every argument in source order
// (regardless of positional/named form), and dispatches on the callable
// kind.
func (e *Evaluator) evalCall(ex *parser.CallExpr) objects.Object {
	callee := e.Evaluate(ex.Callee)

	positional := make([]objects.Object, 0, len(ex.Arguments))
	named := make([]namedArg, 0)
	for _, arg := range ex.Arguments {
		value := e.Evaluate(arg.Value)
		if arg.Name != nil {
			named = append(named, namedArg{tok: *arg.Name, value: value})
		} else {
			positional = append(positional, value)
		}
	}

	switch fn := callee.(type) {
	case *function.Function:
		return e.invoke(fn.Params, fn.Body, fn.Closure, fn.MinArity(), ex.Paren, positional, named)
	case *function.Lambda:
		return e.invoke(fn.Params, fn.Body, fn.Closure, fn.MinArity(), ex.Paren, positional, named)
	case *std.Builtin:
		if len(named) > 0 {
			e.raise(named[0].tok, "built-in '%s' takes positional arguments only", fn.Name)
		}
		return e.applyBuiltin(fn, ex.Paren, positional)
	default:
		e.raise(ex.Paren, "value of type '%s' is not callable", std.TypeName(callee))
		return nil
	}
}

// invoke runs a user function or lambda:
//
//  1. verify the supplied count against [minArity, len(params)]
//  2. open a fresh frame on the callee's closure
//  3. pre-bind every parameter to its default, evaluated in that frame
//     (null for bare `name?` parameters and for required parameters)
//  4. overwrite with the supplied arguments, positional by index and
//     named by parameter name; an unknown name, or a parameter supplied
//     both ways, is a runtime error
//  5. execute the body, absorbing the Return signal at this boundary
func (e *Evaluator) invoke(params []*parser.ParameterStmt, body []parser.Stmt, closure *scope.Scope,
	minArity int, tok lexer.Token, positional []objects.Object, named []namedArg) objects.Object {

	count := len(positional) + len(named)
	maxArity := len(params)
	if count < minArity || count > maxArity {
		if minArity == maxArity {
			e.raise(tok, "expected %d argument(s), got %d", minArity, count)
		}
		e.raise(tok, "expected between %d and %d arguments, got %d", minArity, maxArity, count)
	}

	frame := scope.NewScope(closure)
	previous := e.scp
	e.scp = frame
	defer func() { e.scp = previous }()

	// Pre-bind defaults in the invocation frame, so earlier parameters
	// are visible to later default expressions.
	for _, param := range params {
		value := objects.Object(objects.NULL)
		if param.Default != nil {
			value = e.Evaluate(param.Default)
		}
		if err := frame.Define(param.Name.Literal, value, scope.VariableDecl); err != nil {
			e.raise(param.Name, "%s", err.Error())
		}
	}

	boundByPosition := make(map[string]bool, len(positional))
	for i, value := range positional {
		name := params[i].Name.Literal
		if err := frame.Assign(name, value); err != nil {
			e.raise(params[i].Name, "%s", err.Error())
		}
		boundByPosition[name] = true
	}

	for _, arg := range named {
		if !hasParam(params, arg.tok.Literal) {
			e.raise(arg.tok, "unknown parameter '%s'", arg.tok.Literal)
		}
		if boundByPosition[arg.tok.Literal] {
			e.raise(arg.tok, "parameter '%s' supplied both positionally and by name", arg.tok.Literal)
		}
		if err := frame.Assign(arg.tok.Literal, arg.value); err != nil {
			e.raise(arg.tok, "%s", err.Error())
		}
	}

	for _, stmt := range body {
		result := e.Execute(stmt)
		if ret, ok := result.(*objects.ReturnValue); ok {
			return ret.Value
		}
	}
	return objects.NULL
}

// applyBuiltin checks the declared arity and runs the host callback,
// converting its error (if any) into a runtime error at the call site.
func (e *Evaluator) applyBuiltin(builtin *std.Builtin, tok lexer.Token, args []objects.Object) objects.Object {
	if len(args) < builtin.MinArity || len(args) > builtin.MaxArity {
		if builtin.MinArity == builtin.MaxArity {
			e.raise(tok, "'%s' expects %d argument(s), got %d", builtin.Name, builtin.MinArity, len(args))
		}
		e.raise(tok, "'%s' expects between %d and %d arguments, got %d",
			builtin.Name, builtin.MinArity, builtin.MaxArity, len(args))
	}

	result, err := builtin.Callback(e, tok, args)
	if err != nil {
		e.raise(tok, "%s", err.Error())
	}
	return result
}

// hasParam reports whether a parameter list declares the given name.
func hasParam(params []*parser.ParameterStmt, name string) bool {
	for _, param := range params {
		if param.Name.Literal == name {
			return true
		}
	}
	return false
}
