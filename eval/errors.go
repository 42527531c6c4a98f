/*
File : hinton/eval/errors.go
*/
package eval

import (
	"fmt"

	"github.com/hinton-lang/hinton/lexer"
)

// RuntimeError is an abnormal outcome of evaluation: a type mismatch,
// a division by zero, an undefined or uninitialized name, a write to a
// protected binding, an out-of-range index, a wrong arity, or a store
// to a non-settable target. It carries the originating token so the
// driver can report the source position.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

// Error formats the diagnostic with its source position.
func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%d:%d] RUNTIME ERROR: at '%s': %s",
		e.Token.Line, e.Token.Column, e.Token.Literal, e.Message)
}

// raise aborts evaluation with a runtime error anchored at the given
// token. The panic unwinds to the Interpret driver, which converts it
// back into an error value; no other panic kind is produced by the
// evaluator.
func (e *Evaluator) raise(tok lexer.Token, format string, args ...interface{}) {
	panic(&RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)})
}
