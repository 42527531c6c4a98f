/*
File : hinton/eval/eval_access.go
*/
package eval

import (
	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/std"
)

// evalMemberAccess delegates `object.name` to the value's property
// protocol: arrays expose length/push/pop/contains/forEach,
// dictionaries expose size/put/get/getKeys plus their user keys, and
// enums expose length plus each member as its declaration ordinal.
func (e *Evaluator) evalMemberAccess(ex *parser.MemberAccessExpr) objects.Object {
	object := e.Evaluate(ex.Object)
	name := ex.Name.Literal

	switch v := object.(type) {
	case *objects.Array:
		if member, ok := std.ArrayProperty(v, name); ok {
			return member
		}
		e.raise(ex.Name, "arrays have no member '%s'", name)
	case *objects.Dict:
		if member, ok := std.DictProperty(v, name); ok {
			return member
		}
		e.raise(ex.Name, "dictionary has no member '%s'", name)
	case *objects.Enum:
		if member, ok := std.EnumProperty(v, name); ok {
			return member
		}
		e.raise(ex.Name, "enum '%s' has no member '%s'", v.Name, name)
	default:
		e.raise(ex.Name, "value of type '%s' has no members", std.TypeName(object))
	}
	return nil
}

// evalMemberSetter implements `object.name = value`. Only dictionaries
// accept member writes, and the reserved accessor names stay protected.
func (e *Evaluator) evalMemberSetter(ex *parser.MemberSetterExpr) objects.Object {
	object := e.Evaluate(ex.Object)

	dict, ok := object.(*objects.Dict)
	if !ok {
		e.raise(ex.Name, "cannot set member on value of type '%s'", std.TypeName(object))
	}
	if std.IsReservedDictKey(ex.Name.Literal) {
		e.raise(ex.Name, "'%s' is a reserved dictionary member", ex.Name.Literal)
	}

	value := e.Evaluate(ex.Value)
	dict.Put(ex.Name.Literal, value)
	return value
}

// evalIndexing implements `container[index]`. Only arrays are
// indexable; the index must be an Integer, negative indices count from
// the end, and anything outside [-len, len-1] is a runtime error.
func (e *Evaluator) evalIndexing(ex *parser.IndexingExpr) objects.Object {
	container := e.Evaluate(ex.Container)
	arr, ok := container.(*objects.Array)
	if !ok {
		e.raise(ex.Token, "cannot index value of type '%s'", std.TypeName(container))
	}

	index := e.indexValue(ex.Token, ex.Index)
	normalized, inRange := arr.NormalizeIndex(index)
	if !inRange {
		e.raise(ex.Token, "array index %d out of range for length %d", index, len(arr.Elements))
	}
	return arr.Elements[normalized]
}

// evalArrayItemSetter implements `container[index] = value`: evaluate
// the container, compute the index, then store. A non-array target is a
// runtime error.
func (e *Evaluator) evalArrayItemSetter(ex *parser.ArrayItemSetterExpr) objects.Object {
	container := e.Evaluate(ex.Target.Container)
	arr, ok := container.(*objects.Array)
	if !ok {
		e.raise(ex.Token, "cannot assign by index into value of type '%s'", std.TypeName(container))
	}

	index := e.indexValue(ex.Token, ex.Target.Index)
	normalized, inRange := arr.NormalizeIndex(index)
	if !inRange {
		e.raise(ex.Token, "array index %d out of range for length %d", index, len(arr.Elements))
	}

	value := e.Evaluate(ex.Value)
	arr.Elements[normalized] = value
	return value
}

// indexValue evaluates an index expression and requires an Integer.
func (e *Evaluator) indexValue(tok lexer.Token, expr parser.Expr) int64 {
	index := e.Evaluate(expr)
	i, ok := index.(*objects.Integer)
	if !ok {
		e.raise(tok, "array index must be an integer, got '%s'", std.TypeName(index))
	}
	return i.Value
}

// evalDeIncrement implements prefix and postfix `++`/`--`. The operand
// must be an Integer stored in a variable, an array slot, or a
// dictionary member; the stored value becomes old±1, and the expression
// yields the new value for the prefix forms, the old one for postfix.
func (e *Evaluator) evalDeIncrement(ex *parser.DeIncrementExpr) objects.Object {
	delta := int64(1)
	if ex.Operator.Type == lexer.MINUS_MINUS {
		delta = -1
	}

	var old objects.Object
	var store func(objects.Object)

	switch target := ex.Operand.(type) {
	case *parser.VariableExpr:
		old = e.lookUpVariable(target.Name, target)
		store = func(v objects.Object) { e.assignVariable(target.Name, target, v) }

	case *parser.IndexingExpr:
		container := e.Evaluate(target.Container)
		arr, ok := container.(*objects.Array)
		if !ok {
			e.raise(target.Token, "cannot index value of type '%s'", std.TypeName(container))
		}
		index := e.indexValue(target.Token, target.Index)
		normalized, inRange := arr.NormalizeIndex(index)
		if !inRange {
			e.raise(target.Token, "array index %d out of range for length %d", index, len(arr.Elements))
		}
		old = arr.Elements[normalized]
		store = func(v objects.Object) { arr.Elements[normalized] = v }

	case *parser.MemberAccessExpr:
		object := e.Evaluate(target.Object)
		dict, ok := object.(*objects.Dict)
		if !ok {
			e.raise(target.Name, "cannot set member on value of type '%s'", std.TypeName(object))
		}
		if std.IsReservedDictKey(target.Name.Literal) {
			e.raise(target.Name, "'%s' is a reserved dictionary member", target.Name.Literal)
		}
		value, found := dict.Get(target.Name.Literal)
		if !found {
			e.raise(target.Name, "dictionary has no member '%s'", target.Name.Literal)
		}
		old = value
		store = func(v objects.Object) { dict.Put(target.Name.Literal, v) }

	default:
		e.raise(ex.Operator, "invalid target for '%s'", ex.Operator.Literal)
	}

	oldInt, ok := old.(*objects.Integer)
	if !ok {
		e.raise(ex.Operator, "'%s' requires an integer operand, got '%s'",
			ex.Operator.Literal, std.TypeName(old))
	}

	updated := &objects.Integer{Value: oldInt.Value + delta}
	store(updated)

	if ex.IsPrefix {
		return updated
	}
	return oldInt
}
