/*
File : hinton/std/enum.go
*/

// Package std - enum.go
// The enum property protocol: the members an enum value exposes through
// `.name` access.
package std

import "github.com/hinton-lang/hinton/objects"

// EnumProperty resolves a member name on an enum value: `length`, or a
// declared member, whose value is its 0-based declaration ordinal.
func EnumProperty(enum *objects.Enum, name string) (objects.Object, bool) {
	if name == "length" {
		return &objects.Integer{Value: int64(len(enum.Ordering))}, true
	}
	if ordinal, ok := enum.Members[name]; ok {
		return &objects.Integer{Value: ordinal}, true
	}
	return nil, false
}
