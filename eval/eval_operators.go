/*
File : hinton/eval/eval_operators.go
*/
package eval

import (
	"math"
	"strings"

	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/std"
)

// evalBinary evaluates both operands (left first, always) and applies
// the operator:
//   - `+` concatenates when either side is a String
//   - `*` repeats a String by an Integer count
//   - the arithmetic operators follow the numeric tower: any Float
//     operand makes the result Float, `/` is always Float, `%` is
//     always Integer
//   - `==`/`!=` use value equality, `< <= > >=` numeric comparison
//   - `..` builds an integer range array, exclusive of its right end
func (e *Evaluator) evalBinary(ex *parser.BinaryExpr) objects.Object {
	left := e.Evaluate(ex.Left)
	right := e.Evaluate(ex.Right)
	op := ex.Operator

	switch op.Type {
	case lexer.EQ_OP:
		return &objects.Boolean{Value: objects.Equals(left, right)}
	case lexer.NE_OP:
		return &objects.Boolean{Value: !objects.Equals(left, right)}

	case lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP:
		return e.compare(op, left, right)

	case lexer.RANGE_OP:
		return e.buildRange(op, left, right)

	case lexer.PLUS_OP:
		// String on either side turns + into concatenation with the
		// other side stringified.
		if ls, ok := left.(*objects.String); ok {
			return &objects.String{Value: ls.Value + right.ToString()}
		}
		if rs, ok := right.(*objects.String); ok {
			return &objects.String{Value: left.ToString() + rs.Value}
		}
		return e.arith(op, left, right)

	case lexer.STAR_OP:
		if repeated, ok := e.stringRepeat(op, left, right); ok {
			return repeated
		}
		return e.arith(op, left, right)

	case lexer.MINUS_OP, lexer.SLASH_OP, lexer.PERCENT_OP, lexer.EXPO_OP:
		return e.arith(op, left, right)
	}

	e.raise(op, "unknown operator '%s'", op.Literal)
	return nil
}

// arith applies an arithmetic operator to two numeric operands. If
// either side is a Float the result is Float; division always yields
// Float; `%` always yields Integer, even on Float operands. Division or
// modulo by zero is a runtime error.
func (e *Evaluator) arith(op lexer.Token, left, right objects.Object) objects.Object {
	li, lIsInt := left.(*objects.Integer)
	ri, rIsInt := right.(*objects.Integer)

	if lIsInt && rIsInt {
		switch op.Type {
		case lexer.PLUS_OP:
			return &objects.Integer{Value: li.Value + ri.Value}
		case lexer.MINUS_OP:
			return &objects.Integer{Value: li.Value - ri.Value}
		case lexer.STAR_OP:
			return &objects.Integer{Value: li.Value * ri.Value}
		case lexer.SLASH_OP:
			if ri.Value == 0 {
				e.raise(op, "division by zero")
			}
			return &objects.Float{Value: float64(li.Value) / float64(ri.Value)}
		case lexer.PERCENT_OP:
			if ri.Value == 0 {
				e.raise(op, "division by zero")
			}
			return &objects.Integer{Value: li.Value % ri.Value}
		case lexer.EXPO_OP:
			return &objects.Integer{Value: int64(math.Pow(float64(li.Value), float64(ri.Value)))}
		}
	}

	lf, lOK := numericOperand(left)
	rf, rOK := numericOperand(right)
	if !lOK || !rOK {
		e.raise(op, "unsupported operand types for '%s': '%s' and '%s'",
			op.Literal, std.TypeName(left), std.TypeName(right))
	}

	switch op.Type {
	case lexer.PLUS_OP:
		return &objects.Float{Value: lf + rf}
	case lexer.MINUS_OP:
		return &objects.Float{Value: lf - rf}
	case lexer.STAR_OP:
		return &objects.Float{Value: lf * rf}
	case lexer.SLASH_OP:
		if rf == 0 {
			e.raise(op, "division by zero")
		}
		return &objects.Float{Value: lf / rf}
	case lexer.PERCENT_OP:
		// The modulo result is coerced to Integer regardless of the
		// operand types.
		if rf == 0 {
			e.raise(op, "division by zero")
		}
		return &objects.Integer{Value: int64(math.Mod(lf, rf))}
	case lexer.EXPO_OP:
		return &objects.Float{Value: math.Pow(lf, rf)}
	}

	e.raise(op, "unknown operator '%s'", op.Literal)
	return nil
}

// numericOperand admits Integer and Float operands to arithmetic.
// Booleans are deliberately excluded here: `true + 1` is a type error,
// while comparisons and equality do coerce them.
func numericOperand(obj objects.Object) (float64, bool) {
	switch v := obj.(type) {
	case *objects.Integer:
		return float64(v.Value), true
	case *objects.Float:
		return v.Value, true
	}
	return 0, false
}

// compare applies `< <= > >=`. Operands must be numeric or Bool (which
// coerces to 0/1); anything else is a runtime error.
func (e *Evaluator) compare(op lexer.Token, left, right objects.Object) objects.Object {
	lf, lOK := objects.NumericValue(left)
	rf, rOK := objects.NumericValue(right)
	if !lOK || !rOK {
		e.raise(op, "cannot compare values of types '%s' and '%s'",
			std.TypeName(left), std.TypeName(right))
	}

	var result bool
	switch op.Type {
	case lexer.LT_OP:
		result = lf < rf
	case lexer.LE_OP:
		result = lf <= rf
	case lexer.GT_OP:
		result = lf > rf
	case lexer.GE_OP:
		result = lf >= rf
	}
	return &objects.Boolean{Value: result}
}

// stringRepeat handles `*` with a (String, Integer) pair in either
// order, yielding the repeated string. A negative count is a runtime
// error.
func (e *Evaluator) stringRepeat(op lexer.Token, left, right objects.Object) (objects.Object, bool) {
	var str *objects.String
	var count *objects.Integer

	if ls, ok := left.(*objects.String); ok {
		if rc, ok := right.(*objects.Integer); ok {
			str, count = ls, rc
		}
	} else if rs, ok := right.(*objects.String); ok {
		if lc, ok := left.(*objects.Integer); ok {
			str, count = rs, lc
		}
	}
	if str == nil {
		return nil, false
	}

	if count.Value < 0 {
		e.raise(op, "string repetition count cannot be negative")
	}
	return &objects.String{Value: strings.Repeat(str.Value, int(count.Value))}, true
}

// buildRange materialises `a..b` as an Array of Integers stepping from
// a toward b, excluding b itself; `a..a` is the one-element array [a].
// Both endpoints must be Integers.
func (e *Evaluator) buildRange(op lexer.Token, left, right objects.Object) objects.Object {
	li, lOK := left.(*objects.Integer)
	ri, rOK := right.(*objects.Integer)
	if !lOK || !rOK {
		e.raise(op, "range endpoints must be integers, got '%s' and '%s'",
			std.TypeName(left), std.TypeName(right))
	}

	a, b := li.Value, ri.Value
	if a == b {
		return &objects.Array{Elements: []objects.Object{&objects.Integer{Value: a}}}
	}

	elements := make([]objects.Object, 0)
	if a < b {
		for v := a; v < b; v++ {
			elements = append(elements, &objects.Integer{Value: v})
		}
	} else {
		for v := a; v > b; v-- {
			elements = append(elements, &objects.Integer{Value: v})
		}
	}
	return &objects.Array{Elements: elements}
}
