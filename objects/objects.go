/*
File : hinton/objects/objects.go
*/

// Package objects defines the runtime value model of the Hinton language.
// It provides implementations for the primitive types (integers, floats,
// strings, booleans, null), the container types (arrays and insertion-
// ordered dictionaries), and the control-flow signal values the evaluator
// threads through its statement channel. All types implement the Object
// interface, which allows for type identification, display
// stringification, and object inspection.
package objects

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies the runtime type of a Hinton object. The constant
// values double as the names the `typeOf` built-in reports, except that
// an enum object reports its declared name rather than "Enum".
type Type string

const (
	// IntegerType represents 64-bit signed integer values
	IntegerType Type = "Int"
	// FloatType represents 64-bit floating-point values
	FloatType Type = "Float"
	// BooleanType represents boolean values
	BooleanType Type = "Bool"
	// StringType represents string values
	StringType Type = "String"
	// NullType represents the null value
	NullType Type = "Null"
	// ArrayType represents ordered element sequences
	ArrayType Type = "Array"
	// DictType represents insertion-ordered string-keyed dictionaries
	DictType Type = "Dict"
	// FunctionType represents named user functions (defined in the
	// function package)
	FunctionType Type = "Function"
	// LambdaType represents anonymous functions (function package)
	LambdaType Type = "Lambda"
	// BuiltinType represents host-implemented callables (std package)
	BuiltinType Type = "BuiltIn"
	// EnumType represents enum declarations
	EnumType Type = "Enum"

	// BreakType and ContinueType tag the loop control signals. They are
	// never visible to user code; the evaluator absorbs them at loop
	// boundaries.
	BreakType    Type = "break"
	ContinueType Type = "continue"
)

// Object is the core interface every Hinton runtime value implements.
type Object interface {
	// GetType returns the Type of the object, used for type checking
	GetType() Type
	// ToString returns the display form of the value, as printed by the
	// `print` built-in
	ToString() string
	// ToObject returns a detailed representation including type
	// information, used for inspection and debugging
	ToObject() string
}

// NULL is the shared null singleton. Statements evaluate to it, `null`
// literals produce it, and optional parameters default to it.
var NULL = &Null{}

// Integer represents a 64-bit signed integer value.
type Integer struct {
	Value int64
}

// GetType returns the type of the Integer object
func (i *Integer) GetType() Type { return IntegerType }

// ToString returns the decimal rendering of the value (e.g. "42")
func (i *Integer) ToString() string { return strconv.FormatInt(i.Value, 10) }

// ToObject returns a detailed representation (e.g. "<Int(42)>")
func (i *Integer) ToObject() string { return fmt.Sprintf("<Int(%d)>", i.Value) }

// Float represents a 64-bit floating-point value.
type Float struct {
	Value float64
}

// GetType returns the type of the Float object
func (f *Float) GetType() Type { return FloatType }

// ToString returns the shortest round-trip rendering of the value, so
// `1 / 2` prints as "0.5" rather than "0.500000".
func (f *Float) ToString() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// ToObject returns a detailed representation (e.g. "<Float(0.5)>")
func (f *Float) ToObject() string { return fmt.Sprintf("<Float(%s)>", f.ToString()) }

// Boolean represents a boolean value.
type Boolean struct {
	Value bool
}

// GetType returns the type of the Boolean object
func (b *Boolean) GetType() Type { return BooleanType }

// ToString returns "true" or "false"
func (b *Boolean) ToString() string { return strconv.FormatBool(b.Value) }

// ToObject returns a detailed representation (e.g. "<Bool(true)>")
func (b *Boolean) ToObject() string { return fmt.Sprintf("<Bool(%t)>", b.Value) }

// String represents a string value.
type String struct {
	Value string
}

// GetType returns the type of the String object
func (s *String) GetType() Type { return StringType }

// ToString returns the string content itself
func (s *String) ToString() string { return s.Value }

// ToObject returns a detailed representation (e.g. `<String("hi")>`)
func (s *String) ToObject() string { return fmt.Sprintf("<String(%q)>", s.Value) }

// Null represents the null value.
type Null struct{}

// GetType returns the type of the Null object
func (n *Null) GetType() Type { return NullType }

// ToString returns "null"
func (n *Null) ToString() string { return "null" }

// ToObject returns "<Null>"
func (n *Null) ToObject() string { return "<Null>" }

// Array represents an ordered, mutable sequence of values. Arrays are
// shared by reference: every binding and every property-protocol method
// sees the same underlying element slice.
type Array struct {
	Elements []Object
}

// GetType returns the type of the Array object
func (a *Array) GetType() Type { return ArrayType }

// ToString renders the array as "[elem1, elem2, ...]"
func (a *Array) ToString() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, elem := range a.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem.ToString())
	}
	sb.WriteString("]")
	return sb.String()
}

// ToObject renders the array with element type information
func (a *Array) ToObject() string {
	var sb strings.Builder
	sb.WriteString("<Array([")
	for i, elem := range a.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem.ToObject())
	}
	sb.WriteString("])>")
	return sb.String()
}

// NormalizeIndex maps a possibly-negative index onto the element slice:
// -1 denotes the last element. The boolean result reports whether the
// normalized index is in range.
func (a *Array) NormalizeIndex(index int64) (int64, bool) {
	n := int64(len(a.Elements))
	if index < 0 {
		index += n
	}
	return index, index >= 0 && index < n
}

// Dict represents a dictionary with string keys. Insertion order is part
// of the value: iteration, stringification and equality all follow the
// order keys were first inserted.
type Dict struct {
	Pairs map[string]Object // key -> value storage
	Keys  []string          // keys in insertion order
}

// NewDict creates an empty dictionary.
func NewDict() *Dict {
	return &Dict{Pairs: make(map[string]Object), Keys: make([]string, 0)}
}

// GetType returns the type of the Dict object
func (d *Dict) GetType() Type { return DictType }

// ToString renders the dictionary as "{key1: value1, key2: value2}" in
// insertion order
func (d *Dict) ToString() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, key := range d.Keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(d.Pairs[key].ToString())
	}
	sb.WriteString("}")
	return sb.String()
}

// ToObject renders the dictionary with value type information
func (d *Dict) ToObject() string {
	var sb strings.Builder
	sb.WriteString("<Dict({")
	for i, key := range d.Keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(key)
		sb.WriteString(": ")
		sb.WriteString(d.Pairs[key].ToObject())
	}
	sb.WriteString("})>")
	return sb.String()
}

// Put stores a value under a key, appending the key to the insertion
// order on first insert.
func (d *Dict) Put(key string, value Object) {
	if _, exists := d.Pairs[key]; !exists {
		d.Keys = append(d.Keys, key)
	}
	d.Pairs[key] = value
}

// Get retrieves the value stored under a key.
func (d *Dict) Get(key string) (Object, bool) {
	value, ok := d.Pairs[key]
	return value, ok
}

// ReturnValue wraps a value travelling out of a function body. The
// evaluator unwraps it at the invocation boundary; it is never visible
// to user code.
type ReturnValue struct {
	Value Object
}

// GetType delegates to the wrapped value
func (r *ReturnValue) GetType() Type { return r.Value.GetType() }

// ToString delegates to the wrapped value
func (r *ReturnValue) ToString() string { return r.Value.ToString() }

// ToObject delegates to the wrapped value
func (r *ReturnValue) ToObject() string { return r.Value.ToObject() }

// Break is the loop-exit signal.
type Break struct{}

// GetType returns the internal break tag
func (b *Break) GetType() Type { return BreakType }

// ToString returns "break"
func (b *Break) ToString() string { return "break" }

// ToObject returns "<break>"
func (b *Break) ToObject() string { return "<break>" }

// Continue is the next-iteration signal.
type Continue struct{}

// GetType returns the internal continue tag
func (c *Continue) GetType() Type { return ContinueType }

// ToString returns "continue"
func (c *Continue) ToString() string { return "continue" }

// ToObject returns "<continue>"
func (c *Continue) ToObject() string { return "<continue>" }
