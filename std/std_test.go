/*
File : hinton/std/std_test.go
*/
package std

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime is a minimal Runtime for exercising built-ins without an
// evaluator. CallFunction applies only Builtin values, which is all the
// property protocol needs here.
type fakeRuntime struct {
	out   bytes.Buffer
	in    *bufio.Reader
	perms Permissions
}

func newFakeRuntime(input string) *fakeRuntime {
	return &fakeRuntime{in: bufio.NewReader(strings.NewReader(input))}
}

func (f *fakeRuntime) Output() io.Writer            { return &f.out }
func (f *fakeRuntime) InputReader() *bufio.Reader   { return f.in }
func (f *fakeRuntime) Perms() Permissions           { return f.perms }
func (f *fakeRuntime) CallFunction(fn objects.Object, tok lexer.Token, args []objects.Object) objects.Object {
	builtin, ok := fn.(*Builtin)
	if !ok {
		panic("fakeRuntime can only call built-ins")
	}
	result, err := builtin.Callback(f, tok, args)
	if err != nil {
		panic(err)
	}
	return result
}

var noTok = lexer.Token{}

// callMember resolves a member that must be a method and invokes it.
func callMember(t *testing.T, rt Runtime, member objects.Object, args ...objects.Object) (objects.Object, error) {
	t.Helper()
	builtin, ok := member.(*Builtin)
	require.True(t, ok, "member is not callable: %T", member)
	return builtin.Callback(rt, noTok, args)
}

// TestRegistry verifies the mandatory built-in set registered itself
// with the arities the language contract fixes.
func TestRegistry(t *testing.T) {
	arities := map[string][2]int{
		"print":  {1, 1},
		"input":  {1, 1},
		"clock":  {0, 0},
		"typeOf": {1, 1},
	}
	found := make(map[string]bool)
	for _, builtin := range Builtins {
		if window, wanted := arities[builtin.Name]; wanted {
			found[builtin.Name] = true
			assert.Equal(t, window[0], builtin.MinArity, builtin.Name)
			assert.Equal(t, window[1], builtin.MaxArity, builtin.Name)
		}
	}
	for name := range arities {
		assert.True(t, found[name], "missing built-in %s", name)
	}
}

// findBuiltin fetches a registered built-in by name.
func findBuiltin(t *testing.T, name string) *Builtin {
	t.Helper()
	for _, builtin := range Builtins {
		if builtin.Name == name {
			return builtin
		}
	}
	t.Fatalf("built-in %s not registered", name)
	return nil
}

// TestPrintAndInput exercises the console built-ins against a fake
// runtime.
func TestPrintAndInput(t *testing.T) {
	rt := newFakeRuntime("Ann\n")

	result, err := findBuiltin(t, "print").Callback(rt, noTok, []objects.Object{&objects.String{Value: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, objects.NullType, result.GetType())
	assert.Equal(t, "hi\n", rt.out.String())

	// Without the permission, input refuses.
	_, err = findBuiltin(t, "input").Callback(rt, noTok, []objects.Object{&objects.String{Value: "? "}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--allow-input")

	// With it, the prompt is written and the line returned trimmed.
	rt.perms.AllowInput = true
	result, err = findBuiltin(t, "input").Callback(rt, noTok, []objects.Object{&objects.String{Value: "? "}})
	require.NoError(t, err)
	assert.Equal(t, "Ann", result.(*objects.String).Value)
	assert.Contains(t, rt.out.String(), "? ")
}

// TestTypeOf verifies the type-name mapping, including enums reporting
// their declared name.
func TestTypeOf(t *testing.T) {
	enum := objects.NewEnum("Color")
	tests := []struct {
		value    objects.Object
		expected string
	}{
		{&objects.Integer{Value: 1}, "Int"},
		{&objects.Float{Value: 1}, "Float"},
		{&objects.Boolean{Value: true}, "Bool"},
		{&objects.String{Value: ""}, "String"},
		{objects.NULL, "Null"},
		{&objects.Array{}, "Array"},
		{objects.NewDict(), "Dict"},
		{enum, "Color"},
	}
	typeOf := findBuiltin(t, "typeOf")
	for _, tt := range tests {
		result, err := typeOf.Callback(nil, noTok, []objects.Object{tt.value})
		require.NoError(t, err)
		assert.Equal(t, tt.expected, result.(*objects.String).Value)
	}
}

// TestArrayProperty exercises the array protocol directly, including
// the shared-backing mutation contract.
func TestArrayProperty(t *testing.T) {
	rt := newFakeRuntime("")
	arr := &objects.Array{Elements: []objects.Object{&objects.Integer{Value: 1}}}

	length, ok := ArrayProperty(arr, "length")
	require.True(t, ok)
	assert.Equal(t, int64(1), length.(*objects.Integer).Value)

	push, ok := ArrayProperty(arr, "push")
	require.True(t, ok)
	_, err := callMember(t, rt, push, &objects.Integer{Value: 2})
	require.NoError(t, err)
	assert.Len(t, arr.Elements, 2)

	contains, _ := ArrayProperty(arr, "contains")
	result, err := callMember(t, rt, contains, &objects.Integer{Value: 2})
	require.NoError(t, err)
	assert.True(t, result.(*objects.Boolean).Value)

	pop, _ := ArrayProperty(arr, "pop")
	result, err = callMember(t, rt, pop)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.(*objects.Integer).Value)
	assert.Len(t, arr.Elements, 1)

	_, err = callMember(t, rt, pop)
	_, err2 := callMember(t, rt, pop)
	require.NoError(t, err)
	require.Error(t, err2)
	assert.Contains(t, err2.Error(), "empty array")

	_, ok = ArrayProperty(arr, "missing")
	assert.False(t, ok)
}

// TestArrayForEach verifies forEach applies the callable to every
// element in order via the runtime callback.
func TestArrayForEach(t *testing.T) {
	rt := newFakeRuntime("")
	arr := &objects.Array{Elements: []objects.Object{
		&objects.String{Value: "a"},
		&objects.String{Value: "b"},
	}}

	var seen []string
	visitor := &Builtin{Name: "visit", MinArity: 1, MaxArity: 1,
		Callback: func(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
			seen = append(seen, args[0].ToString())
			return objects.NULL, nil
		}}

	forEach, ok := ArrayProperty(arr, "forEach")
	require.True(t, ok)
	_, err := callMember(t, rt, forEach, visitor)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, seen)

	// A non-callable argument is rejected.
	_, err = callMember(t, rt, forEach, &objects.Integer{Value: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "callable")
}

// TestDictProperty exercises the dictionary protocol: accessors, user
// keys, and the built-in-shadows-user-key rule.
func TestDictProperty(t *testing.T) {
	rt := newFakeRuntime("")
	dict := objects.NewDict()
	dict.Put("name", &objects.String{Value: "x"})

	size, ok := DictProperty(dict, "size")
	require.True(t, ok)
	assert.Equal(t, int64(1), size.(*objects.Integer).Value)

	user, ok := DictProperty(dict, "name")
	require.True(t, ok)
	assert.Equal(t, "x", user.ToString())

	put, _ := DictProperty(dict, "put")
	_, err := callMember(t, rt, put, &objects.String{Value: "size"}, &objects.Integer{Value: 99})
	require.NoError(t, err)

	// The stored "size" key is hidden behind the accessor...
	hidden, ok := DictProperty(dict, "size")
	require.True(t, ok)
	assert.Equal(t, objects.IntegerType, hidden.GetType())
	assert.Equal(t, int64(2), hidden.(*objects.Integer).Value)

	// ...but reachable through get.
	get, _ := DictProperty(dict, "get")
	result, err := callMember(t, rt, get, &objects.String{Value: "size"})
	require.NoError(t, err)
	assert.Equal(t, int64(99), result.(*objects.Integer).Value)

	// get with a missing key yields null; non-string keys are errors.
	result, err = callMember(t, rt, get, &objects.String{Value: "nope"})
	require.NoError(t, err)
	assert.Equal(t, objects.NullType, result.GetType())
	_, err = callMember(t, rt, get, &objects.Integer{Value: 1})
	require.Error(t, err)

	getKeys, _ := DictProperty(dict, "getKeys")
	keys, err := callMember(t, rt, getKeys)
	require.NoError(t, err)
	assert.Equal(t, "[name, size]", keys.ToString())

	_, ok = DictProperty(dict, "absent")
	assert.False(t, ok)

	assert.True(t, IsReservedDictKey("size"))
	assert.True(t, IsReservedDictKey("getKeys"))
	assert.False(t, IsReservedDictKey("name"))
}

// TestEnumProperty verifies length and member ordinal lookup.
func TestEnumProperty(t *testing.T) {
	enum := objects.NewEnum("Color")
	enum.AddMember("Red")
	enum.AddMember("Green")

	length, ok := EnumProperty(enum, "length")
	require.True(t, ok)
	assert.Equal(t, int64(2), length.(*objects.Integer).Value)

	green, ok := EnumProperty(enum, "Green")
	require.True(t, ok)
	assert.Equal(t, int64(1), green.(*objects.Integer).Value)

	_, ok = EnumProperty(enum, "Purple")
	assert.False(t, ok)
}
