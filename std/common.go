/*
File : hinton/std/common.go
*/

// Package std - common.go
// Introspection built-ins: `typeOf` and `clock`.
package std

import (
	"time"

	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
)

var commonMethods = []*Builtin{
	{Name: "typeOf", MinArity: 1, MaxArity: 1, Callback: typeOfFn},
	{Name: "clock", MinArity: 0, MaxArity: 0, Callback: clockFn},
}

// init registers the introspection built-ins.
func init() {
	Builtins = append(Builtins, commonMethods...)
}

// typeOfFn returns the type name of its argument as a String: "Int",
// "Float", "Bool", "String", "Null", "Array", "Dict", "Function",
// "Lambda", "BuiltIn", or the declared name for enum values.
//
// Syntax: typeOf(value)
func typeOfFn(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
	return &objects.String{Value: TypeName(args[0])}, nil
}

// clockFn returns milliseconds since the Unix epoch as an Integer.
//
// Syntax: clock()
func clockFn(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
	return &objects.Integer{Value: time.Now().UnixMilli()}, nil
}

// TypeName returns the user-visible type name of a value: the enum's
// declared name for enum values, the variant tag for everything else.
// Operator diagnostics and `typeOf` share this.
func TypeName(obj objects.Object) string {
	if enum, ok := obj.(*objects.Enum); ok {
		return enum.Name
	}
	return string(obj.GetType())
}
