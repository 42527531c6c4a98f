/*
File : hinton/eval/eval_statements.go
*/
package eval

import (
	"github.com/hinton-lang/hinton/function"
	"github.com/hinton-lang/hinton/objects"
	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/scope"
)

// Execute runs one statement and returns its completion: NULL for
// normal completion, or one of the control signals (*objects.Break,
// *objects.Continue, *objects.ReturnValue) that enclosing nodes either
// absorb or propagate.
func (e *Evaluator) Execute(stmt parser.Stmt) objects.Object {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		e.Evaluate(s.Expression)
		return objects.NULL

	case *parser.VarStmt:
		// A missing initializer leaves the cell declared but
		// uninitialized; reading it before the first assignment is a
		// runtime error.
		var value objects.Object
		if s.Initializer != nil {
			value = e.Evaluate(s.Initializer)
		}
		if err := e.scp.Define(s.Name.Literal, value, scope.VariableDecl); err != nil {
			e.raise(s.Name, "%s", err.Error())
		}
		return objects.NULL

	case *parser.ConstStmt:
		value := e.Evaluate(s.Initializer)
		if err := e.scp.Define(s.Name.Literal, value, scope.ConstantDecl); err != nil {
			e.raise(s.Name, "%s", err.Error())
		}
		return objects.NULL

	case *parser.FunctionStmt:
		// The closure is the frame current at declaration, so later
		// mutations of captured bindings stay visible to the function.
		fn := &function.Function{
			Name:    s.Name.Literal,
			Params:  s.Params,
			Body:    s.Body,
			Closure: e.scp,
		}
		if err := e.scp.Define(s.Name.Literal, fn, scope.FunctionDecl); err != nil {
			e.raise(s.Name, "%s", err.Error())
		}
		return objects.NULL

	case *parser.EnumStmt:
		enum := objects.NewEnum(s.Name.Literal)
		for _, member := range s.Members {
			if !enum.AddMember(member.Name.Literal) {
				e.raise(member.Name, "duplicate enum member '%s'", member.Name.Literal)
			}
		}
		if err := e.scp.Define(s.Name.Literal, enum, scope.EnumDecl); err != nil {
			e.raise(s.Name, "%s", err.Error())
		}
		return objects.NULL

	case *parser.BlockStmt:
		return e.ExecuteBlock(s.Statements, scope.NewScope(e.scp))

	case *parser.IfStmt:
		if objects.Truthy(e.Evaluate(s.Condition)) {
			return e.Execute(s.Then)
		}
		if s.Else != nil {
			return e.Execute(s.Else)
		}
		return objects.NULL

	case *parser.WhileStmt:
		return e.executeWhile(s)

	case *parser.BreakStmt:
		return &objects.Break{}

	case *parser.ContinueStmt:
		return &objects.Continue{}

	case *parser.ReturnStmt:
		value := objects.Object(objects.NULL)
		if s.Value != nil {
			value = e.Evaluate(s.Value)
		}
		return &objects.ReturnValue{Value: value}

	default:
		// ParameterStmt, EnumMemberStmt and ImportStmt never appear as
		// executable statements.
		return objects.NULL
	}
}

// ExecuteBlock runs a statement list inside the given frame, restoring
// the previous frame on exit even when a control signal cuts the list
// short. A signal produced by any statement stops the block and
// propagates to the enclosing node.
func (e *Evaluator) ExecuteBlock(statements []parser.Stmt, frame *scope.Scope) objects.Object {
	previous := e.scp
	e.scp = frame
	defer func() { e.scp = previous }()

	for _, stmt := range statements {
		result := e.Execute(stmt)
		if isControlSignal(result) {
			return result
		}
	}
	return objects.NULL
}

// executeWhile runs the loop, absorbing Break and Continue at this
// boundary and propagating Return. The optional Step statement (from a
// lowered `for`) runs after the body on every iteration, including the
// ones a Continue cut short, so the induction variable always
// advances. Break skips the step and exits immediately.
func (e *Evaluator) executeWhile(s *parser.WhileStmt) objects.Object {
	for objects.Truthy(e.Evaluate(s.Condition)) {
		result := e.Execute(s.Body)

		switch result.(type) {
		case *objects.Break:
			return objects.NULL
		case *objects.ReturnValue:
			return result
		}

		if s.Step != nil {
			e.Execute(s.Step)
		}
	}
	return objects.NULL
}

// isControlSignal reports whether a statement completion is one of the
// three non-local transfer signals.
func isControlSignal(obj objects.Object) bool {
	switch obj.(type) {
	case *objects.Break, *objects.Continue, *objects.ReturnValue:
		return true
	}
	return false
}
