/*
File : hinton/std/maps.go
*/

// Package std - maps.go
// The dictionary property protocol: the members a Dict value exposes
// through `.name` access. Built-in members shadow user keys of the same
// name; user keys remain reachable through `get`.
package std

import (
	"fmt"

	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
)

// reservedDictMembers names the built-in dictionary accessors. Literal
// keys and member writes with these names are rejected so the built-ins
// stay reachable.
var reservedDictMembers = map[string]bool{
	"size":    true,
	"put":     true,
	"get":     true,
	"getKeys": true,
}

// IsReservedDictKey reports whether the name collides with a built-in
// dictionary accessor.
func IsReservedDictKey(name string) bool {
	return reservedDictMembers[name]
}

// DictProperty resolves a member name on a dictionary value: first the
// built-in accessors, then the user-defined keys. It returns false when
// neither matches.
//
// Members: size, put(key, value), get(key), getKeys(), plus every user
// key (hidden when it collides with a built-in).
func DictProperty(dict *objects.Dict, name string) (objects.Object, bool) {
	switch name {
	case "size":
		return &objects.Integer{Value: int64(len(dict.Keys))}, true

	case "put":
		return &Builtin{Name: "put", MinArity: 2, MaxArity: 2,
			Callback: func(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
				key, ok := args[0].(*objects.String)
				if !ok {
					return nil, fmt.Errorf("dictionary keys must be strings, got '%s'", TypeName(args[0]))
				}
				dict.Put(key.Value, args[1])
				return objects.NULL, nil
			}}, true

	case "get":
		return &Builtin{Name: "get", MinArity: 1, MaxArity: 1,
			Callback: func(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
				key, ok := args[0].(*objects.String)
				if !ok {
					return nil, fmt.Errorf("dictionary keys must be strings, got '%s'", TypeName(args[0]))
				}
				if value, found := dict.Get(key.Value); found {
					return value, nil
				}
				return objects.NULL, nil
			}}, true

	case "getKeys":
		return &Builtin{Name: "getKeys", MinArity: 0, MaxArity: 0,
			Callback: func(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
				keys := make([]objects.Object, 0, len(dict.Keys))
				for _, key := range dict.Keys {
					keys = append(keys, &objects.String{Value: key})
				}
				return &objects.Array{Elements: keys}, nil
			}}, true
	}

	if value, found := dict.Get(name); found {
		return value, true
	}
	return nil, false
}
