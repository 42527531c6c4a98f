/*
File : hinton/std/arrays.go
*/

// Package std - arrays.go
// The array property protocol: the members an Array value exposes
// through `.name` access. The method values returned here close over
// the host container itself, not a copy, so mutations through them are
// visible to every binding of the same array.
package std

import (
	"fmt"

	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
)

// ArrayProperty resolves a member name on an array value. It returns
// false when the array exposes no member of that name.
//
// Members: length, push(value), pop(), contains(value), forEach(fn).
func ArrayProperty(arr *objects.Array, name string) (objects.Object, bool) {
	switch name {
	case "length":
		return &objects.Integer{Value: int64(len(arr.Elements))}, true

	case "push":
		return &Builtin{Name: "push", MinArity: 1, MaxArity: 1,
			Callback: func(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
				arr.Elements = append(arr.Elements, args[0])
				return objects.NULL, nil
			}}, true

	case "pop":
		return &Builtin{Name: "pop", MinArity: 0, MaxArity: 0,
			Callback: func(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
				if len(arr.Elements) == 0 {
					return nil, fmt.Errorf("cannot pop from an empty array")
				}
				last := arr.Elements[len(arr.Elements)-1]
				arr.Elements = arr.Elements[:len(arr.Elements)-1]
				return last, nil
			}}, true

	case "contains":
		return &Builtin{Name: "contains", MinArity: 1, MaxArity: 1,
			Callback: func(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
				for _, elem := range arr.Elements {
					if objects.Equals(elem, args[0]) {
						return &objects.Boolean{Value: true}, nil
					}
				}
				return &objects.Boolean{Value: false}, nil
			}}, true

	case "forEach":
		return &Builtin{Name: "forEach", MinArity: 1, MaxArity: 1,
			Callback: func(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
				fn := args[0]
				switch fn.GetType() {
				case objects.FunctionType, objects.LambdaType, objects.BuiltinType:
				default:
					return nil, fmt.Errorf("'forEach' expects a callable, got '%s'", TypeName(fn))
				}
				for _, elem := range arr.Elements {
					rt.CallFunction(fn, tok, []objects.Object{elem})
				}
				return objects.NULL, nil
			}}, true
	}

	return nil, false
}
