/*
File : hinton/objects/semantics.go
*/
package objects

// Truthy maps any value onto a boolean:
//   - Null is false
//   - Integer 0 and Float 0.0 are false
//   - a Bool is itself
//   - every other value is true
func Truthy(obj Object) bool {
	switch v := obj.(type) {
	case *Null:
		return false
	case *Boolean:
		return v.Value
	case *Integer:
		return v.Value != 0
	case *Float:
		return v.Value != 0.0
	default:
		return true
	}
}

// Equals reports value equality. Two values are equal iff their variants
// match and their raw contents are equal, with one coercion: a Bool
// compared against a number is first converted to 1 or 0.
//
// Arrays compare elementwise. Dictionaries compare key-by-key in
// insertion order, since order is part of the value. Callables and enums
// compare by identity.
func Equals(left, right Object) bool {
	// Bool against a number coerces to 0/1 before comparing.
	if isBoolNumberPair(left, right) {
		lv, _ := NumericValue(left)
		rv, _ := NumericValue(right)
		return lv == rv
	}

	if left.GetType() != right.GetType() {
		return false
	}

	switch lv := left.(type) {
	case *Integer:
		return lv.Value == right.(*Integer).Value
	case *Float:
		return lv.Value == right.(*Float).Value
	case *Boolean:
		return lv.Value == right.(*Boolean).Value
	case *String:
		return lv.Value == right.(*String).Value
	case *Null:
		return true
	case *Array:
		rv := right.(*Array)
		if len(lv.Elements) != len(rv.Elements) {
			return false
		}
		for i := range lv.Elements {
			if !Equals(lv.Elements[i], rv.Elements[i]) {
				return false
			}
		}
		return true
	case *Dict:
		rv := right.(*Dict)
		if len(lv.Keys) != len(rv.Keys) {
			return false
		}
		for i, key := range lv.Keys {
			if rv.Keys[i] != key {
				return false
			}
			if !Equals(lv.Pairs[key], rv.Pairs[key]) {
				return false
			}
		}
		return true
	default:
		// Functions, lambdas, built-ins and enums compare by identity.
		return left == right
	}
}

// NumericValue extracts a float64 from a numeric-or-Bool operand
// (true -> 1, false -> 0). The boolean result reports whether the
// operand was numeric-compatible at all.
func NumericValue(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case *Integer:
		return float64(v.Value), true
	case *Float:
		return v.Value, true
	case *Boolean:
		if v.Value {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// isBoolNumberPair reports whether exactly one side is a Bool and the
// other a number, the one cross-variant case equality coerces.
func isBoolNumberPair(left, right Object) bool {
	_, lb := left.(*Boolean)
	_, rb := right.(*Boolean)
	if lb == rb {
		return false
	}
	other := left
	if lb {
		other = right
	}
	switch other.(type) {
	case *Integer, *Float:
		return true
	}
	return false
}
