/*
File : hinton/parser/parser.go
*/

/*
Package parser implements the front half of the Hinton interpreter: the
AST node types and a recursive-descent parser with precedence climbing.

The parser converts the lexer's token stream into an abstract syntax
tree. It handles:
  - expressions, with the full precedence ladder from assignment down to
    postfix chains (indexing, calls, member access, ++/--)
  - declarations (var/const with multi-name expansion, func, enum)
  - control statements (blocks, if/else, while, lowered for, break,
    continue, return)
  - positional and named call arguments, required and optional
    parameters

Error handling follows panic-mode recovery: on a syntax error the parser
records a formatted diagnostic, discards tokens until a likely statement
boundary (a semicolon, or a leading declaration/statement keyword), and
resumes. Parsing therefore always terminates with a best-effort AST plus
the collected error list; callers check HasErrors before executing.
*/
package parser

import (
	"fmt"

	"github.com/hinton-lang/hinton/lexer"
)

// MaxCallArgs bounds both the parameter count of a declaration and the
// argument count of a call.
const MaxCallArgs = 255

// parseBailout is the panic payload used internally to unwind to the
// nearest synchronisation point after a syntax error has been recorded.
type parseBailout struct{}

// Parser holds the token stream and the error accumulator.
type Parser struct {
	Tokens  []lexer.Token // the full token stream, ending with EOF
	Current int           // index of the next token to consume

	// Errors collects parsing diagnostics instead of aborting on the
	// first one, so a single parse reports as many problems as it can.
	Errors []string
}

// NewParser tokenizes the source and prepares a parser over the result.
func NewParser(src string) *Parser {
	lex := lexer.NewLexer(src)
	return &Parser{
		Tokens: lex.ConsumeTokens(),
		Errors: make([]string, 0),
	}
}

// Parse consumes the whole token stream and returns the statement list.
// The AST is best-effort: statements that failed to parse are dropped
// after recovery, and HasErrors reports whether any were.
func (par *Parser) Parse() []Stmt {
	statements := make([]Stmt, 0)
	for !par.isAtEnd() {
		statements = append(statements, par.declaration()...)
	}
	return statements
}

// HasErrors reports whether any syntax error was recorded.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns all diagnostics collected during parsing.
func (par *Parser) GetErrors() []string {
	return par.Errors
}

// peek returns the next unconsumed token.
func (par *Parser) peek() lexer.Token {
	return par.Tokens[par.Current]
}

// peekNext returns the token after the next one (EOF at the end).
func (par *Parser) peekNext() lexer.Token {
	if par.Current+1 >= len(par.Tokens) {
		return par.Tokens[len(par.Tokens)-1]
	}
	return par.Tokens[par.Current+1]
}

// previous returns the most recently consumed token.
func (par *Parser) previous() lexer.Token {
	return par.Tokens[par.Current-1]
}

// isAtEnd reports whether the next token is the EOF marker.
func (par *Parser) isAtEnd() bool {
	return par.peek().Type == lexer.EOF_TYPE
}

// advance consumes and returns the next token.
func (par *Parser) advance() lexer.Token {
	if !par.isAtEnd() {
		par.Current++
	}
	return par.previous()
}

// check reports whether the next token has the given type.
func (par *Parser) check(tokenType lexer.TokenType) bool {
	return par.peek().Type == tokenType
}

// match consumes the next token if it has one of the given types.
func (par *Parser) match(tokenTypes ...lexer.TokenType) bool {
	for _, tokenType := range tokenTypes {
		if par.check(tokenType) {
			par.advance()
			return true
		}
	}
	return false
}

// consume expects the next token to have the given type; otherwise it
// records a syntax error and bails out to the recovery point.
func (par *Parser) consume(tokenType lexer.TokenType, msg string) lexer.Token {
	if par.check(tokenType) {
		return par.advance()
	}
	panic(par.errorAt(par.peek(), msg))
}

// errorAt records a diagnostic anchored at the given token and returns
// the bailout payload for the caller to panic with.
func (par *Parser) errorAt(tok lexer.Token, msg string) parseBailout {
	where := fmt.Sprintf("at '%s'", tok.Literal)
	if tok.Type == lexer.EOF_TYPE {
		where = "at end"
	}
	par.Errors = append(par.Errors,
		fmt.Sprintf("[%d:%d] PARSER ERROR: %s: %s", tok.Line, tok.Column, where, msg))
	return parseBailout{}
}

// synchronize discards tokens until a likely statement boundary: just
// past a semicolon, or in front of a keyword that starts a declaration
// or statement. This keeps one syntax error from drowning the rest of
// the file in cascading diagnostics.
func (par *Parser) synchronize() {
	par.advance()

	for !par.isAtEnd() {
		if par.previous().Type == lexer.SEMICOLON {
			return
		}
		switch par.peek().Type {
		case lexer.FUNC_KEY, lexer.VAR_KEY, lexer.CONST_KEY, lexer.FOR_KEY,
			lexer.WHILE_KEY, lexer.IF_KEY, lexer.RETURN_KEY, lexer.ENUM_KEY:
			return
		}
		par.advance()
	}
}

// endStatement consumes the statement terminator: a semicolon, which is
// optional when the statement's last token was a closing brace.
func (par *Parser) endStatement() {
	if par.match(lexer.SEMICOLON) {
		return
	}
	if par.previous().Type == lexer.RIGHT_BRACE {
		return
	}
	panic(par.errorAt(par.peek(), "expected ';' after statement"))
}
