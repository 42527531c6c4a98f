/*
File : hinton/eval/eval_expressions.go
*/
package eval

import (
	"github.com/hinton-lang/hinton/function"
	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/std"
)

// Evaluate computes the value of an expression. Sub-expressions
// evaluate strictly left before right; runtime errors unwind to the
// Interpret driver.
func (e *Evaluator) Evaluate(expr parser.Expr) objects.Object {
	switch ex := expr.(type) {
	case *parser.LiteralExpr:
		return ex.Value

	case *parser.GroupingExpr:
		return e.Evaluate(ex.Expression)

	case *parser.VariableExpr:
		return e.lookUpVariable(ex.Name, ex)

	case *parser.AssignExpr:
		value := e.Evaluate(ex.Value)
		e.assignVariable(ex.Name, ex, value)
		return value

	case *parser.BinaryExpr:
		return e.evalBinary(ex)

	case *parser.LogicalExpr:
		return e.evalLogical(ex)

	case *parser.UnaryExpr:
		return e.evalUnary(ex)

	case *parser.DeIncrementExpr:
		return e.evalDeIncrement(ex)

	case *parser.CallExpr:
		return e.evalCall(ex)

	case *parser.MemberAccessExpr:
		return e.evalMemberAccess(ex)

	case *parser.MemberSetterExpr:
		return e.evalMemberSetter(ex)

	case *parser.IndexingExpr:
		return e.evalIndexing(ex)

	case *parser.ArrayItemSetterExpr:
		return e.evalArrayItemSetter(ex)

	case *parser.ArrayLiteralExpr:
		elements := make([]objects.Object, 0, len(ex.Elements))
		for _, element := range ex.Elements {
			elements = append(elements, e.Evaluate(element))
		}
		return &objects.Array{Elements: elements}

	case *parser.DictLiteralExpr:
		return e.evalDictLiteral(ex)

	case *parser.LambdaExpr:
		return &function.Lambda{Params: ex.Params, Body: ex.Body, Closure: e.scp}

	default:
		e.raise(expr.Pos(), "cannot evaluate expression")
		return nil
	}
}

// lookUpVariable reads a name: through the resolver's distance when one
// was recorded for this node, from the global frame otherwise.
func (e *Evaluator) lookUpVariable(name lexer.Token, expr parser.Expr) objects.Object {
	if distance, ok := e.Locals[expr]; ok {
		value, err := e.scp.GetAt(distance, name.Literal)
		if err != nil {
			e.raise(name, "%s", err.Error())
		}
		return value
	}
	value, err := e.Globals.Get(name.Literal)
	if err != nil {
		e.raise(name, "%s", err.Error())
	}
	return value
}

// assignVariable mirrors lookUpVariable for writes, honoring the
// const/function/built-in protection of the environment.
func (e *Evaluator) assignVariable(name lexer.Token, expr parser.Expr, value objects.Object) {
	if distance, ok := e.Locals[expr]; ok {
		if err := e.scp.AssignAt(distance, name.Literal, value); err != nil {
			e.raise(name, "%s", err.Error())
		}
		return
	}
	if err := e.Globals.Assign(name.Literal, value); err != nil {
		e.raise(name, "%s", err.Error())
	}
}

// evalLogical implements the short-circuit operators: the left operand
// decides whether the right is evaluated at all, and the yielded value
// is one of the operands, untouched.
func (e *Evaluator) evalLogical(ex *parser.LogicalExpr) objects.Object {
	left := e.Evaluate(ex.Left)

	if ex.Operator.Type == lexer.LOGIC_OR {
		if objects.Truthy(left) {
			return left
		}
	} else if !objects.Truthy(left) {
		return left
	}
	return e.Evaluate(ex.Right)
}

// evalUnary implements prefix `!` and `-`. Negation accepts integers,
// floats and booleans (true negates to -1); logical not always yields a
// Bool.
func (e *Evaluator) evalUnary(ex *parser.UnaryExpr) objects.Object {
	operand := e.Evaluate(ex.Right)

	switch ex.Operator.Type {
	case lexer.LOGIC_NOT:
		return &objects.Boolean{Value: !objects.Truthy(operand)}
	case lexer.MINUS_OP:
		switch v := operand.(type) {
		case *objects.Integer:
			return &objects.Integer{Value: -v.Value}
		case *objects.Float:
			return &objects.Float{Value: -v.Value}
		case *objects.Boolean:
			if v.Value {
				return &objects.Integer{Value: -1}
			}
			return &objects.Integer{Value: 0}
		}
		e.raise(ex.Operator, "cannot negate value of type '%s'", std.TypeName(operand))
	}
	e.raise(ex.Operator, "unknown unary operator '%s'", ex.Operator.Literal)
	return nil
}

// evalDictLiteral builds a dictionary, evaluating values in source
// order. Duplicate keys and keys shadowing a built-in dictionary
// accessor are runtime errors.
func (e *Evaluator) evalDictLiteral(ex *parser.DictLiteralExpr) objects.Object {
	dict := objects.NewDict()
	for _, pair := range ex.Pairs {
		key := pair.Key.Literal
		if pair.Key.Type == lexer.STRING_LIT {
			key = pair.Key.Value.(string)
		}
		if std.IsReservedDictKey(key) {
			e.raise(pair.Key, "'%s' is a reserved dictionary member", key)
		}
		if _, exists := dict.Get(key); exists {
			e.raise(pair.Key, "duplicate dictionary key '%s'", key)
		}
		dict.Put(key, e.Evaluate(pair.Value))
	}
	return dict
}
