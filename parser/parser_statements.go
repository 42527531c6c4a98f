/*
File : hinton/parser/parser_statements.go
*/
package parser

import (
	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
)

// declaration parses one declaration or statement, returning the
// statements it expands to (multi-name var/const declarations expand to
// one statement per name). On a syntax error it synchronises and
// returns an empty slice, so parsing always makes progress.
func (par *Parser) declaration() (stmts []Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseBailout); !ok {
				panic(r)
			}
			par.synchronize()
			stmts = nil
		}
	}()

	// A stray semicolon is an empty statement; this also covers the
	// optional terminator written after a '}'.
	if par.match(lexer.SEMICOLON) {
		return []Stmt{}
	}

	switch {
	case par.match(lexer.VAR_KEY):
		return par.varDeclaration()
	case par.match(lexer.CONST_KEY):
		return par.constDeclaration()
	case par.match(lexer.FUNC_KEY):
		return []Stmt{par.functionDeclaration()}
	case par.match(lexer.ENUM_KEY):
		return []Stmt{par.enumDeclaration()}
	default:
		return []Stmt{par.statement()}
	}
}

// varDeclaration parses `var a[, b...] [= expr];`. Every declared name
// shares the same initializer expression.
func (par *Parser) varDeclaration() []Stmt {
	names := []lexer.Token{par.consume(lexer.IDENTIFIER, "expected variable name")}
	for par.match(lexer.COMMA_DELIM) {
		names = append(names, par.consume(lexer.IDENTIFIER, "expected variable name after ','"))
	}

	var initializer Expr
	if par.match(lexer.ASSIGN_OP) {
		initializer = par.expression()
	}
	par.endStatement()

	stmts := make([]Stmt, 0, len(names))
	for _, name := range names {
		stmts = append(stmts, &VarStmt{Name: name, Initializer: initializer})
	}
	return stmts
}

// constDeclaration parses `const a[, b...] = expr;`. The initializer is
// mandatory.
func (par *Parser) constDeclaration() []Stmt {
	names := []lexer.Token{par.consume(lexer.IDENTIFIER, "expected constant name")}
	for par.match(lexer.COMMA_DELIM) {
		names = append(names, par.consume(lexer.IDENTIFIER, "expected constant name after ','"))
	}

	par.consume(lexer.ASSIGN_OP, "constants must be initialized")
	initializer := par.expression()
	par.endStatement()

	stmts := make([]Stmt, 0, len(names))
	for _, name := range names {
		stmts = append(stmts, &ConstStmt{Name: name, Initializer: initializer})
	}
	return stmts
}

// functionDeclaration parses `func name(params) { body }`.
func (par *Parser) functionDeclaration() Stmt {
	name := par.consume(lexer.IDENTIFIER, "expected function name")
	par.consume(lexer.LEFT_PAREN, "expected '(' after function name")
	params := par.parameterList()
	par.consume(lexer.LEFT_BRACE, "expected '{' before function body")
	body := par.block()
	return &FunctionStmt{Name: name, Params: params, Body: body}
}

// parameterList parses a parenthesised parameter list up to and
// including the closing parenthesis. Required parameters are bare
// identifiers; optional parameters are `name?` (default null) or
// `name = expr`. Every optional parameter must follow all required
// ones, and at most MaxCallArgs parameters are accepted.
func (par *Parser) parameterList() []*ParameterStmt {
	params := make([]*ParameterStmt, 0)
	seenOptional := false

	if !par.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= MaxCallArgs {
				par.errorAt(par.peek(), "cannot have more than 255 parameters")
			}
			name := par.consume(lexer.IDENTIFIER, "expected parameter name")
			param := &ParameterStmt{Name: name}

			if par.match(lexer.QUESTION_MARK) {
				param.IsOptional = true
			} else if par.match(lexer.ASSIGN_OP) {
				param.IsOptional = true
				param.Default = par.expression()
			}

			if param.IsOptional {
				seenOptional = true
			} else if seenOptional {
				panic(par.errorAt(name, "required parameters must come before optional parameters"))
			}

			params = append(params, param)
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	par.consume(lexer.RIGHT_PAREN, "expected ')' after parameters")
	return params
}

// enumDeclaration parses `enum Name { A, B, C }`, assigning each member
// its 0-based declaration ordinal.
func (par *Parser) enumDeclaration() Stmt {
	name := par.consume(lexer.IDENTIFIER, "expected enum name")
	par.consume(lexer.LEFT_BRACE, "expected '{' after enum name")

	members := make([]*EnumMemberStmt, 0)
	if !par.check(lexer.RIGHT_BRACE) {
		for {
			member := par.consume(lexer.IDENTIFIER, "expected enum member name")
			members = append(members, &EnumMemberStmt{Name: member, Ordinal: len(members)})
			if !par.match(lexer.COMMA_DELIM) {
				break
			}
		}
	}

	par.consume(lexer.RIGHT_BRACE, "expected '}' after enum members")
	return &EnumStmt{Name: name, Members: members}
}

// statement parses one non-declaration statement.
func (par *Parser) statement() Stmt {
	switch {
	case par.match(lexer.LEFT_BRACE):
		return &BlockStmt{Token: par.previous(), Statements: par.block()}
	case par.match(lexer.IF_KEY):
		return par.ifStatement()
	case par.match(lexer.WHILE_KEY):
		return par.whileStatement()
	case par.match(lexer.FOR_KEY):
		return par.forStatement()
	case par.match(lexer.BREAK_KEY):
		keyword := par.previous()
		par.endStatement()
		return &BreakStmt{Keyword: keyword}
	case par.match(lexer.CONTINUE_KEY):
		keyword := par.previous()
		par.endStatement()
		return &ContinueStmt{Keyword: keyword}
	case par.match(lexer.RETURN_KEY):
		return par.returnStatement()
	default:
		return par.expressionStatement()
	}
}

// block parses statements until the closing brace, which it consumes.
// The opening brace has already been consumed by the caller.
func (par *Parser) block() []Stmt {
	statements := make([]Stmt, 0)
	for !par.check(lexer.RIGHT_BRACE) && !par.isAtEnd() {
		statements = append(statements, par.declaration()...)
	}
	par.consume(lexer.RIGHT_BRACE, "expected '}' after block")
	return statements
}

// ifStatement parses `if cond stmt [else stmt]`. The condition is an
// ordinary expression; a parenthesised condition is just a grouping.
func (par *Parser) ifStatement() Stmt {
	keyword := par.previous()
	condition := par.expression()
	then := par.statement()

	var elseBranch Stmt
	if par.match(lexer.ELSE_KEY) {
		elseBranch = par.statement()
	}
	return &IfStmt{Token: keyword, Condition: condition, Then: then, Else: elseBranch}
}

// whileStatement parses `while cond stmt`.
func (par *Parser) whileStatement() Stmt {
	keyword := par.previous()
	condition := par.expression()
	body := par.statement()
	return &WhileStmt{Token: keyword, Condition: condition, Body: body}
}

// forStatement parses `for (init; cond; step) stmt` and lowers it onto
// a while loop: `{ init; while (cond) { body } <step> }`, with the step
// carried on the While node so `continue` still advances it.
//
// The init clause accepts a single-name `var` declaration, a bare
// expression, or nothing. A missing condition reads as `true`.
func (par *Parser) forStatement() Stmt {
	keyword := par.previous()
	par.consume(lexer.LEFT_PAREN, "expected '(' after 'for'")

	var initializer Stmt
	if par.match(lexer.SEMICOLON) {
		initializer = nil
	} else if par.match(lexer.VAR_KEY) {
		name := par.consume(lexer.IDENTIFIER, "expected variable name")
		if par.check(lexer.COMMA_DELIM) {
			panic(par.errorAt(par.peek(), "'for' initializer declares a single variable"))
		}
		var init Expr
		if par.match(lexer.ASSIGN_OP) {
			init = par.expression()
		}
		par.consume(lexer.SEMICOLON, "expected ';' after 'for' initializer")
		initializer = &VarStmt{Name: name, Initializer: init}
	} else {
		initializer = &ExpressionStmt{Expression: par.expression()}
		par.consume(lexer.SEMICOLON, "expected ';' after 'for' initializer")
	}

	var condition Expr
	if !par.check(lexer.SEMICOLON) {
		condition = par.expression()
	} else {
		condition = &LiteralExpr{Token: keyword, Value: &objects.Boolean{Value: true}}
	}
	par.consume(lexer.SEMICOLON, "expected ';' after 'for' condition")

	var step Stmt
	if !par.check(lexer.RIGHT_PAREN) {
		step = &ExpressionStmt{Expression: par.expression()}
	}
	par.consume(lexer.RIGHT_PAREN, "expected ')' after 'for' clauses")

	body := par.statement()

	loop := &WhileStmt{Token: keyword, Condition: condition, Body: body, Step: step}
	if initializer == nil {
		return loop
	}
	return &BlockStmt{Token: keyword, Statements: []Stmt{initializer, loop}}
}

// returnStatement parses `return [expr];`.
func (par *Parser) returnStatement() Stmt {
	keyword := par.previous()

	var value Expr
	if !par.check(lexer.SEMICOLON) {
		value = par.expression()
	}
	par.endStatement()
	return &ReturnStmt{Keyword: keyword, Value: value}
}

// expressionStatement parses a bare expression followed by a statement
// terminator.
func (par *Parser) expressionStatement() Stmt {
	expr := par.expression()
	par.endStatement()
	return &ExpressionStmt{Expression: expr}
}
