/*
File : hinton/std/builtins.go
*/

// Package std defines the host-implemented callables of the Hinton
// language: the global built-in functions (print, input, clock, typeOf)
// and the property-protocol methods that arrays, dictionaries and enums
// expose through member access.
//
// Built-ins register themselves into the global Builtins slice from
// per-file init functions; the evaluator installs the slice into the
// global environment at startup with built-in protection, so no user
// code can rebind them.
package std

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
)

// Permissions records which host capabilities the user granted on the
// command line. Only Input is enforced by the core built-ins; the other
// three are reserved for future built-in families.
type Permissions struct {
	AllowInput   bool
	AllowNetwork bool
	AllowWrite   bool
	AllowRead    bool
}

// Runtime is the view of the evaluator that built-ins receive. It lets
// them reach the interpreter's I/O streams, the granted permissions,
// and, for higher-order built-ins like forEach, call back into user
// functions.
type Runtime interface {
	// Output returns the writer `print` and friends write to.
	Output() io.Writer
	// InputReader returns the buffered reader `input` reads from.
	InputReader() *bufio.Reader
	// Perms returns the permissions granted on the command line.
	Perms() Permissions
	// CallFunction invokes a Hinton callable with positional arguments.
	// Runtime errors raised inside the callee unwind through the caller.
	CallFunction(fn objects.Object, tok lexer.Token, args []objects.Object) objects.Object
}

// CallbackFunc is the signature of a built-in body. It receives the
// runtime, the caller's source token (for error positions), and the
// argument values in positional order. A non-nil error is converted by
// the evaluator into a runtime error anchored at the call site.
type CallbackFunc func(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error)

// Builtin is a host-implemented callable value. MinArity and MaxArity
// bound the accepted argument count; the evaluator enforces them before
// invoking Callback.
type Builtin struct {
	Name     string
	MinArity int
	MaxArity int
	Callback CallbackFunc
}

// GetType returns the built-in type tag.
func (b *Builtin) GetType() objects.Type { return objects.BuiltinType }

// ToString returns "builtIn(name)".
func (b *Builtin) ToString() string { return fmt.Sprintf("builtIn(%s)", b.Name) }

// ToObject returns "<BuiltIn(name)>".
func (b *Builtin) ToObject() string { return fmt.Sprintf("<BuiltIn(%s)>", b.Name) }

// Builtins is the global registry of built-in functions, populated by
// the init functions of this package and installed into the global
// environment at interpreter startup.
var Builtins = make([]*Builtin, 0)
