/*
File : hinton/lexer/lexer.go
*/
package lexer

// Lexer performs lexical analysis (tokenization) of Hinton source code.
// It scans through the source text byte by byte, identifying and creating
// tokens for the syntactic elements of the language.
//
// The lexer maintains its current position in the source, including line
// and column counters for error reporting. It handles:
//   - Operators with maximal munch (`**` beats `*`, `==` beats `=`,
//     `..` beats `.`, `->` beats `-`)
//   - Keywords and word-form logical operators
//   - Literals: decimal integers with `_` separators, floats (3.14, .5),
//     prefixed integers (0x / 0o / 0b), double-quoted strings with escapes
//   - Identifiers (letter or underscore first, then letters, digits or
//     underscores)
//   - Comments (single-line // and non-nesting block /* ... */)
//   - Whitespace (skipped)
//
// Failure semantics: an invalid character, unterminated string, or
// malformed number emits an ERROR token carrying a diagnostic message,
// and scanning continues. No failure escapes the lexer.
type Lexer struct {
	Src       string // Entire source code in plain text form
	Current   byte   // Current byte being examined
	Position  int    // Index of Current in Src (0-indexed)
	SrcLength int    // Length of the source string
	Line      int    // Current line (1-indexed)
	Column    int    // Current column (1-indexed)

	// Start position of the token currently being scanned. Captured at
	// the first byte so every token reports where it begins, not where
	// it ends.
	startLine   int
	startColumn int
	startPos    int
}

// NewLexer creates and initializes a new Lexer for the given source code.
// Position tracking starts at line 1, column 1.
func NewLexer(src string) Lexer {
	current := byte(0)
	if len(src) > 0 {
		current = src[0]
	}
	return Lexer{
		Src:       src,
		Current:   current,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
}

// NextToken retrieves the next token from the source stream. It skips
// whitespace and comments, remembers the start position, then classifies
// the token with single-byte dispatch plus lookahead for the
// multi-character operators.
func (lex *Lexer) NextToken() Token {

	lex.IgnoreWhitespacesAndComments()

	// Remember where this token begins.
	lex.startLine = lex.Line
	lex.startColumn = lex.Column
	lex.startPos = lex.Position

	var token Token
	switch lex.Current {
	case '=':
		if lex.Peek() == '=' {
			lex.Advance()
			token = lex.makeToken(EQ_OP)
		} else {
			token = lex.makeToken(ASSIGN_OP)
		}
	case '!':
		if lex.Peek() == '=' {
			lex.Advance()
			token = lex.makeToken(NE_OP)
		} else {
			token = lex.makeToken(LOGIC_NOT)
		}
	case '<':
		if lex.Peek() == '=' {
			lex.Advance()
			token = lex.makeToken(LE_OP)
		} else if lex.Peek() == '<' {
			lex.Advance()
			token = lex.makeToken(SHIFT_LEFT)
		} else {
			token = lex.makeToken(LT_OP)
		}
	case '>':
		if lex.Peek() == '=' {
			lex.Advance()
			token = lex.makeToken(GE_OP)
		} else if lex.Peek() == '>' {
			lex.Advance()
			token = lex.makeToken(SHIFT_RIGHT)
		} else {
			token = lex.makeToken(GT_OP)
		}
	case '+':
		if lex.Peek() == '=' {
			lex.Advance()
			token = lex.makeToken(PLUS_ASSIGN)
		} else if lex.Peek() == '+' {
			lex.Advance()
			token = lex.makeToken(PLUS_PLUS)
		} else {
			token = lex.makeToken(PLUS_OP)
		}
	case '-':
		if lex.Peek() == '=' {
			lex.Advance()
			token = lex.makeToken(MINUS_ASSIGN)
		} else if lex.Peek() == '-' {
			lex.Advance()
			token = lex.makeToken(MINUS_MINUS)
		} else if lex.Peek() == '>' {
			lex.Advance()
			token = lex.makeToken(THIN_ARROW)
		} else {
			token = lex.makeToken(MINUS_OP)
		}
	case '*':
		if lex.Peek() == '*' {
			lex.Advance()
			if lex.Peek() == '=' {
				lex.Advance()
				token = lex.makeToken(EXPO_ASSIGN)
			} else {
				token = lex.makeToken(EXPO_OP)
			}
		} else if lex.Peek() == '=' {
			lex.Advance()
			token = lex.makeToken(STAR_ASSIGN)
		} else {
			token = lex.makeToken(STAR_OP)
		}
	case '/':
		if lex.Peek() == '=' {
			lex.Advance()
			token = lex.makeToken(SLASH_ASSIGN)
		} else {
			token = lex.makeToken(SLASH_OP)
		}
	case '%':
		if lex.Peek() == '=' {
			lex.Advance()
			token = lex.makeToken(PERCENT_ASSIGN)
		} else {
			token = lex.makeToken(PERCENT_OP)
		}
	case '&':
		if lex.Peek() == '&' {
			lex.Advance()
			token = lex.makeToken(LOGIC_AND)
		} else {
			token = lex.makeToken(BIT_AND)
		}
	case '|':
		if lex.Peek() == '|' {
			lex.Advance()
			token = lex.makeToken(LOGIC_OR)
		} else {
			token = lex.makeToken(BIT_OR)
		}
	case '^':
		token = lex.makeToken(BIT_XOR)
	case '~':
		token = lex.makeToken(BIT_NOT)
	case '(':
		token = lex.makeToken(LEFT_PAREN)
	case ')':
		token = lex.makeToken(RIGHT_PAREN)
	case '{':
		token = lex.makeToken(LEFT_BRACE)
	case '}':
		token = lex.makeToken(RIGHT_BRACE)
	case '[':
		token = lex.makeToken(LEFT_BRACKET)
	case ']':
		token = lex.makeToken(RIGHT_BRACKET)
	case ',':
		token = lex.makeToken(COMMA_DELIM)
	case ';':
		token = lex.makeToken(SEMICOLON)
	case ':':
		token = lex.makeToken(COLON_DELIM)
	case '?':
		token = lex.makeToken(QUESTION_MARK)
	case '.':
		if isDigitASCII(lex.Peek()) {
			// A float of the `.5` form.
			return readNumber(lex)
		}
		if lex.Peek() == '.' {
			lex.Advance()
			token = lex.makeToken(RANGE_OP)
		} else {
			token = lex.makeToken(DOT_OP)
		}
	case '"':
		return readStringLiteral(lex)
	case 0:
		token = NewTokenWithMetadata(EOF_TYPE, "EOF", lex.startLine, lex.startColumn)
		return token
	default:
		if isDigitASCII(lex.Current) {
			return readNumber(lex)
		}
		if isAlpha(lex.Current) || lex.Current == '_' {
			return readIdentifier(lex)
		}
		token = lex.errorToken("invalid character '" + string(lex.Current) + "'")
	}

	// Move past the last byte of the token just produced.
	lex.Advance()

	return token
}

// makeToken builds a token of the given type whose literal is the source
// slice from the token's start up to and including the current byte.
func (lex *Lexer) makeToken(tokenType TokenType) Token {
	end := lex.Position + 1
	if end > lex.SrcLength {
		end = lex.SrcLength
	}
	return NewTokenWithMetadata(tokenType, lex.Src[lex.startPos:end], lex.startLine, lex.startColumn)
}

// errorToken builds an ERROR token at the token's start position. The
// diagnostic message travels in the Value payload, the offending source
// text in the Literal.
func (lex *Lexer) errorToken(msg string) Token {
	tok := lex.makeToken(ERROR_TYPE)
	tok.Value = msg
	return tok
}

// Peek looks ahead at the next byte without consuming it. Returns 0 at
// end of source.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// PeekAt looks ahead n bytes past the current one. Returns 0 past the
// end of source.
func (lex *Lexer) PeekAt(n int) byte {
	if lex.Position+n >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+n]
}

// Advance moves the lexer to the next byte, keeping the line and column
// counters accurate. Stepping over a newline bumps the line counter and
// resets the column to 1.
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 0
	}
	lex.Position++
	lex.Column++

	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// IgnoreWhitespacesAndComments skips whitespace, single-line comments
// (// ...) and non-nesting block comments (/* ... */) before the next
// meaningful token.
func (lex *Lexer) IgnoreWhitespacesAndComments() {
	for {
		if isWhitespace(lex.Current) {
			lex.Advance()
		} else if lex.Current == '/' && lex.Peek() == '/' {
			lex.SkipSingleLineComment()
		} else if lex.Current == '/' && lex.Peek() == '*' {
			lex.SkipBlockComment()
		} else {
			break
		}
	}
}

// SkipSingleLineComment advances past a `//` comment, stopping at the
// newline (not consumed, so line tracking stays correct) or end of file.
func (lex *Lexer) SkipSingleLineComment() {
	lex.Advance()
	lex.Advance()
	for lex.Current != '\n' && lex.Current != 0 {
		lex.Advance()
	}
}

// SkipBlockComment advances past a `/* ... */` comment. Block comments do
// not nest; the first `*/` closes the comment. An unterminated block
// comment simply runs to end of file.
func (lex *Lexer) SkipBlockComment() {
	lex.Advance()
	lex.Advance()
	for lex.Current != 0 {
		if lex.Current == '*' && lex.Peek() == '/' {
			lex.Advance()
			lex.Advance()
			break
		}
		lex.Advance()
	}
}

// ConsumeTokens tokenizes the entire source and returns every token up
// to and including the trailing EOF token. This is the batch entry point
// the parser uses.
func (lex *Lexer) ConsumeTokens() []Token {
	tokens := make([]Token, 0)
	for {
		token := lex.NextToken()
		tokens = append(tokens, token)
		if token.Type == EOF_TYPE {
			break
		}
	}
	return tokens
}
