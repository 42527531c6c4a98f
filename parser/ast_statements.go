/*
File : hinton/parser/ast_statements.go
*/
package parser

import "github.com/hinton-lang/hinton/lexer"

// BlockStmt is a `{ ... }` statement list executed in its own scope.
type BlockStmt struct {
	Token      lexer.Token // the opening brace
	Statements []Stmt
}

// ExpressionStmt evaluates an expression for its side effects.
type ExpressionStmt struct {
	Expression Expr
}

// VarStmt declares a mutable variable, optionally initialized. A
// multi-name declaration (`var a, b = e;`) expands to one VarStmt per
// name, all sharing the same initializer expression.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil for a bare `var x;`
}

// ConstStmt declares an immutable binding; the initializer is mandatory.
type ConstStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// FunctionStmt declares a named function.
type FunctionStmt struct {
	Name   lexer.Token
	Params []*ParameterStmt
	Body   []Stmt
}

// ParameterStmt is one function or lambda parameter. A required
// parameter is a bare identifier. Optional parameters are `name?`
// (Default nil, defaults to null) or `name = expr`.
type ParameterStmt struct {
	Name       lexer.Token
	IsOptional bool
	Default    Expr
}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Token     lexer.Token
	Condition Expr
	Then      Stmt
	Else      Stmt // nil when absent
}

// WhileStmt is a condition-guarded loop. Step carries the increment
// clause of a lowered `for` statement; it runs after the body on every
// iteration, including iterations cut short by `continue`, so the
// induction variable always advances. Plain `while` loops have a nil
// Step.
type WhileStmt struct {
	Token     lexer.Token
	Condition Expr
	Body      Stmt
	Step      Stmt
}

// BreakStmt exits the innermost enclosing loop.
type BreakStmt struct {
	Keyword lexer.Token
}

// ContinueStmt resumes the next iteration of the innermost loop.
type ContinueStmt struct {
	Keyword lexer.Token
}

// ReturnStmt leaves the enclosing function, yielding Value (null when
// absent).
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr // nil for a bare `return;`
}

// EnumStmt declares an enum with its ordered members.
type EnumStmt struct {
	Name    lexer.Token
	Members []*EnumMemberStmt
}

// EnumMemberStmt is one enum member and its 0-based declaration ordinal.
type EnumMemberStmt struct {
	Name    lexer.Token
	Ordinal int
}

// ImportStmt is reserved for a future module system; no grammar
// production currently builds it.
type ImportStmt struct {
	Keyword    lexer.Token
	Statements []Stmt
}

func (s *BlockStmt) stmtNode()      {}
func (s *ExpressionStmt) stmtNode() {}
func (s *VarStmt) stmtNode()        {}
func (s *ConstStmt) stmtNode()      {}
func (s *FunctionStmt) stmtNode()   {}
func (s *ParameterStmt) stmtNode()  {}
func (s *IfStmt) stmtNode()         {}
func (s *WhileStmt) stmtNode()      {}
func (s *BreakStmt) stmtNode()      {}
func (s *ContinueStmt) stmtNode()   {}
func (s *ReturnStmt) stmtNode()     {}
func (s *EnumStmt) stmtNode()       {}
func (s *EnumMemberStmt) stmtNode() {}
func (s *ImportStmt) stmtNode()     {}

func (s *BlockStmt) Pos() lexer.Token      { return s.Token }
func (s *ExpressionStmt) Pos() lexer.Token { return s.Expression.Pos() }
func (s *VarStmt) Pos() lexer.Token        { return s.Name }
func (s *ConstStmt) Pos() lexer.Token      { return s.Name }
func (s *FunctionStmt) Pos() lexer.Token   { return s.Name }
func (s *ParameterStmt) Pos() lexer.Token  { return s.Name }
func (s *IfStmt) Pos() lexer.Token         { return s.Token }
func (s *WhileStmt) Pos() lexer.Token      { return s.Token }
func (s *BreakStmt) Pos() lexer.Token      { return s.Keyword }
func (s *ContinueStmt) Pos() lexer.Token   { return s.Keyword }
func (s *ReturnStmt) Pos() lexer.Token     { return s.Keyword }
func (s *EnumStmt) Pos() lexer.Token       { return s.Name }
func (s *EnumMemberStmt) Pos() lexer.Token { return s.Name }
func (s *ImportStmt) Pos() lexer.Token     { return s.Keyword }
