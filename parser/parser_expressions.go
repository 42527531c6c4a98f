/*
File : hinton/parser/parser_expressions.go
*/
package parser

import (
	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
)

// compoundBaseOps maps each `OP=` token onto its base operator, for the
// desugaring of compound assignments.
var compoundBaseOps = map[lexer.TokenType]lexer.TokenType{
	lexer.PLUS_ASSIGN:    lexer.PLUS_OP,
	lexer.MINUS_ASSIGN:   lexer.MINUS_OP,
	lexer.STAR_ASSIGN:    lexer.STAR_OP,
	lexer.SLASH_ASSIGN:   lexer.SLASH_OP,
	lexer.PERCENT_ASSIGN: lexer.PERCENT_OP,
	lexer.EXPO_ASSIGN:    lexer.EXPO_OP,
}

// expression parses any expression, entering the precedence ladder at
// its lowest rung.
func (par *Parser) expression() Expr {
	return par.assignment()
}

// assignment parses `target = value` and the compound `target OP= value`
// forms. The left side is parsed as an ordinary expression first; when
// an assignment operator follows, the left side must be a variable,
// member access, or indexing expression, and is rewritten into the
// matching setter node. Compound forms desugar into a plain assignment
// whose value is `target OP value`.
func (par *Parser) assignment() Expr {
	expr := par.logicOr()

	if par.match(lexer.ASSIGN_OP) {
		equals := par.previous()
		value := par.assignment()
		return par.buildSetter(equals, expr, value)
	}

	if base, ok := compoundBaseOps[par.peek().Type]; ok {
		op := par.advance()
		value := par.assignment()
		baseTok := lexer.Token{Type: base, Literal: string(base), Line: op.Line, Column: op.Column}
		combined := &BinaryExpr{Left: expr, Operator: baseTok, Right: value}
		return par.buildSetter(op, expr, combined)
	}

	return expr
}

// buildSetter rewrites an assignment's left side into the matching
// setter node, or reports a syntax error for non-assignable targets.
func (par *Parser) buildSetter(opTok lexer.Token, target Expr, value Expr) Expr {
	switch lhs := target.(type) {
	case *VariableExpr:
		return &AssignExpr{Name: lhs.Name, Value: value}
	case *MemberAccessExpr:
		return &MemberSetterExpr{Object: lhs.Object, Name: lhs.Name, Value: value}
	case *IndexingExpr:
		return &ArrayItemSetterExpr{Token: lhs.Token, Target: lhs, Value: value}
	default:
		panic(par.errorAt(opTok, "invalid assignment target"))
	}
}

// logicOr parses `a || b` chains (short-circuiting, left-associative).
func (par *Parser) logicOr() Expr {
	expr := par.logicAnd()
	for par.match(lexer.LOGIC_OR) {
		operator := par.previous()
		right := par.logicAnd()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// logicAnd parses `a && b` chains.
func (par *Parser) logicAnd() Expr {
	expr := par.equality()
	for par.match(lexer.LOGIC_AND) {
		operator := par.previous()
		right := par.equality()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// equality parses `== !=` chains.
func (par *Parser) equality() Expr {
	expr := par.comparison()
	for par.match(lexer.EQ_OP, lexer.NE_OP) {
		operator := par.previous()
		right := par.comparison()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// comparison parses `< <= > >=` chains.
func (par *Parser) comparison() Expr {
	expr := par.rangeExpr()
	for par.match(lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP) {
		operator := par.previous()
		right := par.rangeExpr()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// rangeExpr parses `a..b`. The operator is non-associative: at most one
// `..` per level, so `a..b..c` is a syntax error at the second `..`.
func (par *Parser) rangeExpr() Expr {
	expr := par.term()
	if par.match(lexer.RANGE_OP) {
		operator := par.previous()
		right := par.term()
		return &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// term parses `+ -` chains.
func (par *Parser) term() Expr {
	expr := par.factor()
	for par.match(lexer.PLUS_OP, lexer.MINUS_OP) {
		operator := par.previous()
		right := par.factor()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// factor parses `* / %` chains.
func (par *Parser) factor() Expr {
	expr := par.exponent()
	for par.match(lexer.STAR_OP, lexer.SLASH_OP, lexer.PERCENT_OP) {
		operator := par.previous()
		right := par.exponent()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// exponent parses `a ** b`, right-associative, binding tighter than the
// multiplicative operators.
func (par *Parser) exponent() Expr {
	expr := par.unary()
	if par.match(lexer.EXPO_OP) {
		operator := par.previous()
		right := par.exponent()
		return &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// unary parses the prefix operators `!`, `-`, `++`, `--`, and the `fn`
// keyword introducing a lambda.
func (par *Parser) unary() Expr {
	switch {
	case par.match(lexer.LOGIC_NOT, lexer.MINUS_OP):
		operator := par.previous()
		right := par.unary()
		return &UnaryExpr{Operator: operator, Right: right}
	case par.match(lexer.PLUS_PLUS, lexer.MINUS_MINUS):
		operator := par.previous()
		operand := par.unary()
		return &DeIncrementExpr{Operator: operator, Operand: operand, IsPrefix: true}
	case par.match(lexer.FN_KEY):
		return par.lambda()
	default:
		return par.postfix()
	}
}

// lambda parses `fn (params) -> { body }`. A non-block body is
// shorthand for a single-return block: `fn (x) -> x * 2` reads as
// `fn (x) -> { return x * 2; }`.
func (par *Parser) lambda() Expr {
	fnTok := par.previous()
	par.consume(lexer.LEFT_PAREN, "expected '(' after 'fn'")
	params := par.parameterList()
	arrow := par.consume(lexer.THIN_ARROW, "expected '->' after lambda parameters")

	var body []Stmt
	if par.match(lexer.LEFT_BRACE) {
		body = par.block()
	} else {
		value := par.expression()
		body = []Stmt{&ReturnStmt{Keyword: arrow, Value: value}}
	}
	return &LambdaExpr{Token: fnTok, Params: params, Body: body}
}

// postfix parses a primary expression followed by any chain of
// indexing, calls, member accesses, and postfix ++/--.
func (par *Parser) postfix() Expr {
	expr := par.primary()

	for {
		switch {
		case par.match(lexer.LEFT_BRACKET):
			bracket := par.previous()
			index := par.expression()
			par.consume(lexer.RIGHT_BRACKET, "expected ']' after index")
			expr = &IndexingExpr{Token: bracket, Container: expr, Index: index}
		case par.match(lexer.LEFT_PAREN):
			expr = par.finishCall(expr)
		case par.match(lexer.DOT_OP):
			name := par.consume(lexer.IDENTIFIER, "expected member name after '.'")
			expr = &MemberAccessExpr{Object: expr, Name: name}
		case par.match(lexer.PLUS_PLUS, lexer.MINUS_MINUS):
			operator := par.previous()
			expr = &DeIncrementExpr{Operator: operator, Operand: expr, IsPrefix: false}
		default:
			return expr
		}
	}
}

// finishCall parses the argument list of a call whose opening
// parenthesis has been consumed. Positional arguments must precede
// named `name = expr` arguments, and at most MaxCallArgs are accepted.
func (par *Parser) finishCall(callee Expr) Expr {
	args := make([]*ArgumentExpr, 0)
	seenNamed := false

	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= MaxCallArgs {
				par.errorAt(par.peek(), "cannot have more than 255 arguments")
			}

			arg := par.argument()
			if arg.Name != nil {
				seenNamed = true
			} else if seenNamed {
				panic(par.errorAt(arg.Value.Pos(), "positional arguments must come before named arguments"))
			}
			args = append(args, arg)

			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	paren := par.consume(lexer.RIGHT_PAREN, "expected ')' after arguments")
	return &CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

// argument parses one call argument: `name = expr` when an identifier
// directly followed by `=` is next, a bare expression otherwise.
func (par *Parser) argument() *ArgumentExpr {
	if par.check(lexer.IDENTIFIER) && par.peekNext().Type == lexer.ASSIGN_OP {
		name := par.advance()
		par.advance() // '='
		value := par.expression()
		return &ArgumentExpr{Name: &name, Value: value}
	}
	return &ArgumentExpr{Value: par.expression()}
}

// primary parses literals, identifiers, groupings, and the array and
// dictionary literal forms.
func (par *Parser) primary() Expr {
	switch {
	case par.match(lexer.TRUE_KEY), par.match(lexer.FALSE_KEY):
		tok := par.previous()
		return &LiteralExpr{Token: tok, Value: &objects.Boolean{Value: tok.Value.(bool)}}
	case par.match(lexer.NULL_KEY):
		return &LiteralExpr{Token: par.previous(), Value: objects.NULL}
	case par.match(lexer.INT_LIT):
		tok := par.previous()
		return &LiteralExpr{Token: tok, Value: &objects.Integer{Value: tok.Value.(int64)}}
	case par.match(lexer.FLOAT_LIT):
		tok := par.previous()
		return &LiteralExpr{Token: tok, Value: &objects.Float{Value: tok.Value.(float64)}}
	case par.match(lexer.STRING_LIT):
		tok := par.previous()
		return &LiteralExpr{Token: tok, Value: &objects.String{Value: tok.Value.(string)}}
	case par.match(lexer.IDENTIFIER):
		return &VariableExpr{Name: par.previous()}
	case par.match(lexer.LEFT_PAREN):
		tok := par.previous()
		expr := par.expression()
		par.consume(lexer.RIGHT_PAREN, "expected ')' after expression")
		return &GroupingExpr{Token: tok, Expression: expr}
	case par.match(lexer.LEFT_BRACKET):
		return par.arrayLiteral()
	case par.match(lexer.LEFT_BRACE):
		return par.dictLiteral()
	case par.match(lexer.ERROR_TYPE):
		tok := par.previous()
		panic(par.errorAt(tok, tok.Value.(string)))
	default:
		panic(par.errorAt(par.peek(), "expected expression"))
	}
}

// arrayLiteral parses `[e1, e2, ...]`; the opening bracket has been
// consumed.
func (par *Parser) arrayLiteral() Expr {
	bracket := par.previous()
	elements := make([]Expr, 0)

	if !par.check(lexer.RIGHT_BRACKET) {
		for {
			elements = append(elements, par.expression())
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	par.consume(lexer.RIGHT_BRACKET, "expected ']' after array elements")
	return &ArrayLiteralExpr{Token: bracket, Elements: elements}
}

// dictLiteral parses `{key: value, ...}`; keys are identifiers or
// string literals. The opening brace has been consumed.
func (par *Parser) dictLiteral() Expr {
	brace := par.previous()
	pairs := make([]*KeyValPairExpr, 0)

	if !par.check(lexer.RIGHT_BRACE) {
		for {
			var key lexer.Token
			if par.match(lexer.IDENTIFIER) || par.match(lexer.STRING_LIT) {
				key = par.previous()
			} else {
				panic(par.errorAt(par.peek(), "expected identifier or string as dictionary key"))
			}
			par.consume(lexer.COLON_DELIM, "expected ':' after dictionary key")
			value := par.expression()
			pairs = append(pairs, &KeyValPairExpr{Key: key, Value: value})

			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	par.consume(lexer.RIGHT_BRACE, "expected '}' after dictionary entries")
	return &DictLiteralExpr{Token: brace, Pairs: pairs}
}
