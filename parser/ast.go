/*
File : hinton/parser/ast.go
*/
package parser

import (
	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
)

// Node is the common interface of every AST node. Pos returns a
// representative token of the node, used to anchor resolution and
// runtime diagnostics to a source position.
type Node interface {
	Pos() lexer.Token
}

// Expr is implemented by every expression variant.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement variant.
type Stmt interface {
	Node
	stmtNode()
}

// LiteralExpr is a literal value lifted out of its token: integers,
// floats, strings, booleans and null.
type LiteralExpr struct {
	Token lexer.Token
	Value objects.Object
}

// VariableExpr is a bare identifier read.
type VariableExpr struct {
	Name lexer.Token
}

// AssignExpr writes to a named variable: `x = expr`.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

// BinaryExpr is a two-operand operator application. Both operands are
// always evaluated, left before right.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// LogicalExpr is `&&` / `||`; unlike BinaryExpr the right operand is
// evaluated only when the left does not decide the result.
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// UnaryExpr is a prefix `!` or `-`.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

// DeIncrementExpr is `++`/`--` in either position. The operand must be
// a storable target (variable, index, member); IsPrefix selects whether
// the expression yields the new or the old value.
type DeIncrementExpr struct {
	Operator lexer.Token
	Operand  Expr
	IsPrefix bool
}

// GroupingExpr is a parenthesised expression.
type GroupingExpr struct {
	Token      lexer.Token
	Expression Expr
}

// CallExpr invokes a callee with positional and/or named arguments.
// Paren is the closing parenthesis, used to report call-site errors.
type CallExpr struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []*ArgumentExpr
}

// ArgumentExpr is a single call argument; Name is nil for positional
// arguments and the identifier token for `name = expr` arguments.
type ArgumentExpr struct {
	Name  *lexer.Token
	Value Expr
}

// MemberAccessExpr reads a named member: `object.name`.
type MemberAccessExpr struct {
	Object Expr
	Name   lexer.Token
}

// MemberSetterExpr writes a named member: `object.name = value`.
type MemberSetterExpr struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

// IndexingExpr reads a container element: `container[index]`. Token is
// the opening bracket.
type IndexingExpr struct {
	Token     lexer.Token
	Container Expr
	Index     Expr
}

// ArrayItemSetterExpr writes through an index: `container[index] = value`.
type ArrayItemSetterExpr struct {
	Token  lexer.Token
	Target *IndexingExpr
	Value  Expr
}

// ArrayLiteralExpr is `[e1, e2, ...]`.
type ArrayLiteralExpr struct {
	Token    lexer.Token
	Elements []Expr
}

// DictLiteralExpr is `{key: value, ...}`; keys are identifier or string
// tokens.
type DictLiteralExpr struct {
	Token lexer.Token
	Pairs []*KeyValPairExpr
}

// KeyValPairExpr is one `key: value` entry of a dictionary literal.
type KeyValPairExpr struct {
	Key   lexer.Token
	Value Expr
}

// LambdaExpr is an anonymous function: `fn (params) -> { body }`.
type LambdaExpr struct {
	Token  lexer.Token
	Params []*ParameterStmt
	Body   []Stmt
}

func (e *LiteralExpr) exprNode()         {}
func (e *VariableExpr) exprNode()        {}
func (e *AssignExpr) exprNode()          {}
func (e *BinaryExpr) exprNode()          {}
func (e *LogicalExpr) exprNode()         {}
func (e *UnaryExpr) exprNode()           {}
func (e *DeIncrementExpr) exprNode()     {}
func (e *GroupingExpr) exprNode()        {}
func (e *CallExpr) exprNode()            {}
func (e *ArgumentExpr) exprNode()        {}
func (e *MemberAccessExpr) exprNode()    {}
func (e *MemberSetterExpr) exprNode()    {}
func (e *IndexingExpr) exprNode()        {}
func (e *ArrayItemSetterExpr) exprNode() {}
func (e *ArrayLiteralExpr) exprNode()    {}
func (e *DictLiteralExpr) exprNode()     {}
func (e *KeyValPairExpr) exprNode()      {}
func (e *LambdaExpr) exprNode()          {}

func (e *LiteralExpr) Pos() lexer.Token         { return e.Token }
func (e *VariableExpr) Pos() lexer.Token        { return e.Name }
func (e *AssignExpr) Pos() lexer.Token          { return e.Name }
func (e *BinaryExpr) Pos() lexer.Token          { return e.Operator }
func (e *LogicalExpr) Pos() lexer.Token         { return e.Operator }
func (e *UnaryExpr) Pos() lexer.Token           { return e.Operator }
func (e *DeIncrementExpr) Pos() lexer.Token     { return e.Operator }
func (e *GroupingExpr) Pos() lexer.Token        { return e.Token }
func (e *CallExpr) Pos() lexer.Token            { return e.Paren }
func (e *ArgumentExpr) Pos() lexer.Token        { return e.Value.Pos() }
func (e *MemberAccessExpr) Pos() lexer.Token    { return e.Name }
func (e *MemberSetterExpr) Pos() lexer.Token    { return e.Name }
func (e *IndexingExpr) Pos() lexer.Token        { return e.Token }
func (e *ArrayItemSetterExpr) Pos() lexer.Token { return e.Token }
func (e *ArrayLiteralExpr) Pos() lexer.Token    { return e.Token }
func (e *DictLiteralExpr) Pos() lexer.Token     { return e.Token }
func (e *KeyValPairExpr) Pos() lexer.Token      { return e.Key }
func (e *LambdaExpr) Pos() lexer.Token          { return e.Token }
