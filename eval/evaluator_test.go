/*
File : hinton/eval/evaluator_test.go
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hinton-lang/hinton/parser"
	"github.com/hinton-lang/hinton/resolver"
	"github.com/hinton-lang/hinton/std"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildProgram parses and resolves source, failing the test on any
// front-end error.
func buildProgram(t *testing.T, src string) ([]parser.Stmt, map[parser.Expr]int) {
	t.Helper()
	par := parser.NewParser(src)
	program := par.Parse()
	require.False(t, par.HasErrors(), "parse errors for %q: %v", src, par.GetErrors())

	res := resolver.NewResolver()
	locals := res.Resolve(program)
	require.False(t, res.HasErrors(), "resolve errors for %q: %v", src, res.GetErrors())
	return program, locals
}

// runProgram executes source and returns the captured print output and
// the runtime error, if any.
func runProgram(t *testing.T, src string) (string, error) {
	t.Helper()
	program, locals := buildProgram(t, src)

	evaluator := NewEvaluator()
	var buf bytes.Buffer
	evaluator.SetWriter(&buf)
	evaluator.AddLocals(locals)

	err := evaluator.Interpret(program)
	return buf.String(), err
}

// expectOutput runs source and requires it to succeed with exactly the
// given print lines.
func expectOutput(t *testing.T, src string, lines ...string) {
	t.Helper()
	output, err := runProgram(t, src)
	require.NoError(t, err, "source: %s", src)
	expected := ""
	if len(lines) > 0 {
		expected = strings.Join(lines, "\n") + "\n"
	}
	assert.Equal(t, expected, output, "source: %s", src)
}

// expectRuntimeError runs source and requires a runtime error whose
// message contains the fragment.
func expectRuntimeError(t *testing.T, src string, fragment string) {
	t.Helper()
	_, err := runProgram(t, src)
	require.Error(t, err, "source: %s", src)
	assert.Contains(t, err.Error(), fragment, "source: %s", src)
}

// TestEvaluator_Arithmetic verifies the numeric tower, precedence, and
// the always-Float division / always-Integer modulo rules.
func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print(1 + 2 * 3);`, "7"},
		{`print((1 + 2) * 3);`, "9"},
		{`print(10 - 2 - 3);`, "5"},
		{`print(2 ** 10);`, "1024"},
		{`print(2 ** 3 ** 2);`, "512"},
		{`print(7 % 3);`, "1"},
		{`print(7.5 % 2);`, "1"},
		{`print(typeOf(7.5 % 2));`, "Int"},
		{`print(10 / 4);`, "2.5"},
		{`print(10 / 5);`, "2"},
		{`print(typeOf(10 / 5));`, "Float"},
		{`print(1.5 + 1);`, "2.5"},
		{`print(2 * 2.5);`, "5"},
		{`print(typeOf(2 * 2.5));`, "Float"},
		{`print(-5 + 3);`, "-2"},
		{`print(-true);`, "-1"},
		{`print(-2.5);`, "-2.5"},
	}
	for _, tt := range tests {
		expectOutput(t, tt.src, tt.expected)
	}
}

// TestEvaluator_DivisionByZero covers the zero cases of / and %.
func TestEvaluator_DivisionByZero(t *testing.T) {
	expectRuntimeError(t, `1 / 0;`, "division by zero")
	expectRuntimeError(t, `1.0 / 0.0;`, "division by zero")
	expectRuntimeError(t, `1 % 0;`, "division by zero")
	expectRuntimeError(t, `1.5 % 0.0;`, "division by zero")
}

// TestEvaluator_StringOperators verifies concatenation and repetition.
func TestEvaluator_StringOperators(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print("ab" + "cd");`, "abcd"},
		{`print("n = " + 42);`, "n = 42"},
		{`print(1.5 + "s");`, "1.5s"},
		{`print("ab" * 3);`, "ababab"},
		{`print(3 * "ab");`, "ababab"},
		{`print("x" * 0);`, ""},
		{`print("yes" + true);`, "yestrue"},
	}
	for _, tt := range tests {
		expectOutput(t, tt.src, tt.expected)
	}

	expectRuntimeError(t, `print("a" * -1);`, "negative")
	expectRuntimeError(t, `print("a" - "b");`, "unsupported operand types")
	expectRuntimeError(t, `print(true + 1);`, "unsupported operand types")
}

// TestEvaluator_Equality verifies the variant-strict equality with the
// Bool/number coercion, and the ordered deep equality of containers.
func TestEvaluator_Equality(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print(1 == 1);`, "true"},
		{`print(1 == 1.0);`, "false"},
		{`print(true == 1);`, "true"},
		{`print(false == 0.0);`, "true"},
		{`print("a" == "a");`, "true"},
		{`print(null == null);`, "true"},
		{`print(null == 0);`, "false"},
		{`print([1, 2] == [1, 2]);`, "true"},
		{`print([1, 2] == [2, 1]);`, "false"},
		{`print({a: 1, b: 2} == {a: 1, b: 2});`, "true"},
		{`print({a: 1, b: 2} == {b: 2, a: 1});`, "false"},
		{`print(1 != 2);`, "true"},
		{`print(2 equals 2);`, "true"},
	}
	for _, tt := range tests {
		expectOutput(t, tt.src, tt.expected)
	}
}

// TestEvaluator_Comparisons verifies numeric and Bool-coerced ordering.
func TestEvaluator_Comparisons(t *testing.T) {
	expectOutput(t, `print(1 < 2); print(2 <= 2); print(3 > 2.5); print(true < 2);`,
		"true", "true", "true", "true")
	expectRuntimeError(t, `print("a" < "b");`, "cannot compare")
}

// TestEvaluator_Logical verifies truthiness and the short-circuit laws,
// observable through print side effects.
func TestEvaluator_Logical(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print(0 || "x");`, "x"},
		{`print(1 || "x");`, "1"},
		{`print(null && 1);`, "null"},
		{`print(2 && 3);`, "3"},
		{`print(!0);`, "true"},
		{`print(!"");`, "false"},
		{`print(not false);`, "true"},
		{`print(0.0 && 1);`, "0"},
	}
	for _, tt := range tests {
		expectOutput(t, tt.src, tt.expected)
	}

	// The right side must not run when the left decides.
	expectOutput(t, `
func side() { print("side"); return true; }
print(true || side());
print(false && side());
`, "true", "false")
}

// TestEvaluator_Ranges verifies the exclusive-end range semantics in
// both directions.
func TestEvaluator_Ranges(t *testing.T) {
	expectOutput(t, `print(1..5);`, "[1, 2, 3, 4]")
	expectOutput(t, `print(5..1);`, "[5, 4, 3, 2]")
	expectOutput(t, `print(3..3);`, "[3]")
	expectOutput(t, `var n = 3; print((n - 2)..(n + 1));`, "[1, 2, 3]")
	expectRuntimeError(t, `print(1.5..3);`, "range endpoints must be integers")
}

// TestEvaluator_WhileLoop is the first end-to-end scenario: a counting
// loop with compound assignment.
func TestEvaluator_WhileLoop(t *testing.T) {
	expectOutput(t, `var x = 0; while x <= 2 { print(x); x += 1; }`, "0", "1", "2")
}

// TestEvaluator_Fibonacci is the recursion scenario.
func TestEvaluator_Fibonacci(t *testing.T) {
	expectOutput(t, `
func fib(n) {
	if (n < 2) return n;
	return fib(n - 2) + fib(n - 1);
}
print(fib(10));
`, "55")
}

// TestEvaluator_ArrayScenario covers push, length and negative
// indexing.
func TestEvaluator_ArrayScenario(t *testing.T) {
	expectOutput(t, `var a = [1, 2, 3]; a.push(4); print(a.length); print(a[-1]);`, "4", "4")
}

// TestEvaluator_ConstImmutability is the constant scenario: the write
// must raise and the diagnostic must mention "constant".
func TestEvaluator_ConstImmutability(t *testing.T) {
	expectRuntimeError(t, `const k = 7; k = 8;`, "constant")
	expectRuntimeError(t, `const k = 7; { k = 8; }`, "constant")
}

// TestEvaluator_ClosureScenario verifies closures capture their
// definition environment.
func TestEvaluator_ClosureScenario(t *testing.T) {
	expectOutput(t, `
func make() {
	var a = "one";
	func get() { return a; }
	return get;
}
print(make()());
`, "one")
}

// TestEvaluator_ClosureSeesMutations verifies a closure observes
// bindings as they are at call time, not definition time.
func TestEvaluator_ClosureSeesMutations(t *testing.T) {
	expectOutput(t, `
func makeCounter() {
	var count = 0;
	func increment() {
		count = count + 1;
		return count;
	}
	return increment;
}
var counter = makeCounter();
print(counter());
print(counter());
print(counter());
`, "1", "2", "3")
}

// TestEvaluator_ForLoop is the continue/break scenario: continue must
// still advance the induction variable.
func TestEvaluator_ForLoop(t *testing.T) {
	expectOutput(t, `
for (var i = 0; i < 5; i = i + 1) {
	if (i == 3) continue;
	if (i == 4) break;
	print(i);
}
`, "0", "1", "2")
}

// TestEvaluator_BreakSkipsStep verifies break exits without another
// step execution, via a step with a visible side effect.
func TestEvaluator_BreakSkipsStep(t *testing.T) {
	expectOutput(t, `
var steps = 0;
for (var i = 0; i < 10; i = i + 1) {
	steps = steps + 1;
	if (i == 1) break;
}
print(steps);
`, "2")
}

// TestEvaluator_Shadowing verifies a local shadows an outer binding for
// the rest of its block only.
func TestEvaluator_Shadowing(t *testing.T) {
	expectOutput(t, `var x = 1; { var x = 2; print(x); } print(x);`, "2", "1")
}

// TestEvaluator_UninitializedAndUndefined verifies the two distinct
// read failures.
func TestEvaluator_UninitializedAndUndefined(t *testing.T) {
	expectRuntimeError(t, `var a; print(a);`, "not been initialized")
	expectRuntimeError(t, `print(zzz);`, "undefined")
	expectOutput(t, `var a; a = 3; print(a);`, "3")
}

// TestEvaluator_ProtectedBindings verifies built-ins and functions
// refuse reassignment.
func TestEvaluator_ProtectedBindings(t *testing.T) {
	expectRuntimeError(t, `print = 1;`, "built-in")
	expectRuntimeError(t, `func f() { } f = 1;`, "function")
}

// TestEvaluator_Arity verifies the accepted argument-count window of
// functions with optional parameters.
func TestEvaluator_Arity(t *testing.T) {
	src := `
func f(a, b = 10, c?) {
	print(a);
	print(b);
	print(c);
}
`
	expectOutput(t, src+`f(1);`, "1", "10", "null")
	expectOutput(t, src+`f(1, 2);`, "1", "2", "null")
	expectOutput(t, src+`f(1, 2, 3);`, "1", "2", "3")

	expectRuntimeError(t, src+`f();`, "expected between 1 and 3 arguments, got 0")
	expectRuntimeError(t, src+`f(1, 2, 3, 4);`, "expected between 1 and 3 arguments, got 4")
}

// TestEvaluator_NamedArguments verifies named binding, unknown names,
// and double binding.
func TestEvaluator_NamedArguments(t *testing.T) {
	src := `
func f(a, b = 10, c?) {
	print(a);
	print(b);
	print(c);
}
`
	expectOutput(t, src+`f(1, c = 5);`, "1", "10", "5")
	expectOutput(t, src+`f(1, c = 5, b = 2);`, "1", "2", "5")

	expectRuntimeError(t, src+`f(1, z = 2);`, "unknown parameter 'z'")
	expectRuntimeError(t, src+`f(1, a = 2);`, "supplied both positionally and by name")
}

// TestEvaluator_DefaultsEvaluateAtCallTime verifies default
// expressions are evaluated in the invocation frame on every call, so
// they observe the current state of captured bindings.
func TestEvaluator_DefaultsEvaluateAtCallTime(t *testing.T) {
	expectOutput(t, `
var base = 10;
func add(n, extra = base) { return n + extra; }
print(add(1));
base = 20;
print(add(1));
print(add(1, 5));
`, "11", "21", "6")
}

// TestEvaluator_Lambdas verifies both body forms, closure capture and
// forEach.
func TestEvaluator_Lambdas(t *testing.T) {
	expectOutput(t, `var double = fn (x) -> x * 2; print(double(21));`, "42")
	expectOutput(t, `
var total = 0;
[1, 2, 3].forEach(fn (v) -> { total += v; });
print(total);
`, "6")
	expectOutput(t, `print(typeOf(fn (x) -> x));`, "Lambda")
}

// TestEvaluator_ReturnNull verifies bare and missing returns yield
// null.
func TestEvaluator_ReturnNull(t *testing.T) {
	expectOutput(t, `func f() { return; } print(f());`, "null")
	expectOutput(t, `func g() { } print(g());`, "null")
}

// TestEvaluator_ArrayIndexing verifies reads, writes, negative
// normalisation and range errors.
func TestEvaluator_ArrayIndexing(t *testing.T) {
	expectOutput(t, `var a = [10, 20, 30]; print(a[0]); print(a[-1]); print(a[-3]);`, "10", "30", "10")
	expectOutput(t, `var a = [1, 2, 3]; a[1] = 9; print(a);`, "[1, 9, 3]")
	expectOutput(t, `var a = [1, 2, 3]; a[-1] = 9; print(a);`, "[1, 2, 9]")

	expectRuntimeError(t, `var a = [1]; print(a[1]);`, "out of range")
	expectRuntimeError(t, `var a = [1]; print(a[-2]);`, "out of range")
	expectRuntimeError(t, `var a = [1]; print(a["x"]);`, "must be an integer")
	expectRuntimeError(t, `var n = 5; print(n[0]);`, "cannot index")
	expectRuntimeError(t, `var n = 5; n[0] = 1;`, "cannot assign by index")
}

// TestEvaluator_ArrayMethods verifies pop, contains and the shared
// mutable backing of array values.
func TestEvaluator_ArrayMethods(t *testing.T) {
	expectOutput(t, `var a = [1, 2]; print(a.pop()); print(a.length);`, "2", "1")
	expectOutput(t, `var a = [1, 2]; print(a.contains(2)); print(a.contains(5));`, "true", "false")
	expectOutput(t, `var a = [1]; var b = a; b.push(2); print(a.length);`, "2")

	expectRuntimeError(t, `var a = []; a.pop();`, "empty array")
	expectRuntimeError(t, `var a = [1]; a.missing;`, "arrays have no member")
}

// TestEvaluator_Dictionaries verifies the dictionary property protocol
// and literal rules.
func TestEvaluator_Dictionaries(t *testing.T) {
	expectOutput(t, `var d = {a: 1, b: 2}; print(d.size); print(d.a); print(d.b);`, "2", "1", "2")
	expectOutput(t, `var d = {}; d.put("k", 5); print(d.get("k")); print(d.get("missing"));`, "5", "null")
	expectOutput(t, `var d = {a: 1}; d.b = 2; print(d.getKeys());`, "[a, b]")
	expectOutput(t, `var d = {"with space": 1}; print(d.get("with space"));`, "1")
	expectOutput(t, `var d = {z: 1, a: 2}; print(d);`, "{z: 1, a: 2}")

	expectRuntimeError(t, `var d = {a: 1, a: 2};`, "duplicate dictionary key")
	expectRuntimeError(t, `var d = {size: 1};`, "reserved dictionary member")
	expectRuntimeError(t, `var d = {}; d.size = 3;`, "reserved dictionary member")
	expectRuntimeError(t, `var d = {}; print(d.missing);`, "has no member")
	expectRuntimeError(t, `var n = 5; n.k = 1;`, "cannot set member")
}

// TestEvaluator_DictBuiltinsShadowUserKeys verifies a key stored with
// put that collides with an accessor stays hidden from member access
// but reachable through get.
func TestEvaluator_DictBuiltinsShadowUserKeys(t *testing.T) {
	expectOutput(t, `
var d = {};
d.put("size", 99);
print(typeOf(d.size));
print(d.get("size"));
`, "Int", "99")
}

// TestEvaluator_Enums verifies member ordinals, length, typeOf, and the
// error cases.
func TestEvaluator_Enums(t *testing.T) {
	src := `enum Color { Red, Green, Blue }`
	expectOutput(t, src+`print(Color.Red); print(Color.Blue);`, "0", "2")
	expectOutput(t, src+`print(Color.length);`, "3")
	expectOutput(t, src+`print(typeOf(Color));`, "Color")
	expectOutput(t, src+`print(typeOf(Color.Red));`, "Int")

	expectRuntimeError(t, src+`print(Color.Purple);`, "has no member 'Purple'")
	expectRuntimeError(t, `enum Dup { A, A }`, "duplicate enum member")
}

// TestEvaluator_DeIncrement verifies the prefix/postfix value contract
// and all three storable targets.
func TestEvaluator_DeIncrement(t *testing.T) {
	expectOutput(t, `
var i = 5;
print(i++);
print(i);
print(++i);
print(--i);
print(i--);
print(i);
`, "5", "6", "7", "6", "6", "5")

	expectOutput(t, `var a = [1, 5]; a[1]++; print(a);`, "[1, 6]")
	expectOutput(t, `var d = {n: 1}; d.n++; print(d.n);`, "2")
	expectOutput(t, `var a = [3]; print(a[0]--); print(a[0]);`, "3", "2")

	expectRuntimeError(t, `var s = "x"; s++;`, "integer operand")
	expectRuntimeError(t, `(1 + 2)++;`, "invalid target")
}

// TestEvaluator_Builtins verifies arity enforcement, clock's type and
// typeOf's full mapping.
func TestEvaluator_Builtins(t *testing.T) {
	expectOutput(t, `print(typeOf(1)); print(typeOf(1.5)); print(typeOf(true)); print(typeOf("s"));`,
		"Int", "Float", "Bool", "String")
	expectOutput(t, `print(typeOf(null)); print(typeOf([1])); print(typeOf({a: 1}));`,
		"Null", "Array", "Dict")
	expectOutput(t, `func f() { } print(typeOf(f)); print(typeOf(print));`, "Function", "BuiltIn")
	expectOutput(t, `print(typeOf(clock()));`, "Int")

	expectRuntimeError(t, `print();`, "'print' expects 1 argument(s), got 0")
	expectRuntimeError(t, `clock(1);`, "'clock' expects 0 argument(s), got 1")
	expectRuntimeError(t, `5(1);`, "not callable")
}

// TestEvaluator_InputPermission verifies the input gate and the happy
// path with a granted permission.
func TestEvaluator_InputPermission(t *testing.T) {
	expectRuntimeError(t, `input("? ");`, "--allow-input")

	program, locals := buildProgram(t, `print("got " + input("name: "));`)
	evaluator := NewEvaluator()
	var buf bytes.Buffer
	evaluator.SetWriter(&buf)
	evaluator.SetReader(strings.NewReader("Ann\n"))
	evaluator.AddLocals(locals)
	evaluator.SetPermissions(std.Permissions{AllowInput: true})

	require.NoError(t, evaluator.Interpret(program))
	assert.Equal(t, "name: got Ann\n", buf.String())
}

// TestEvaluator_ProgramArgs verifies the args binding and its built-in
// protection.
func TestEvaluator_ProgramArgs(t *testing.T) {
	program, locals := buildProgram(t, `print(args.length); print(args[0]);`)
	evaluator := NewEvaluator()
	var buf bytes.Buffer
	evaluator.SetWriter(&buf)
	evaluator.AddLocals(locals)
	evaluator.DefineProgramArgs([]string{"first", "second"})

	require.NoError(t, evaluator.Interpret(program))
	assert.Equal(t, "2\nfirst\n", buf.String())

	program2, locals2 := buildProgram(t, `args = 1;`)
	evaluator.AddLocals(locals2)
	err := evaluator.Interpret(program2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "built-in")
}

// TestEvaluator_EvaluationOrder verifies left-to-right evaluation of
// operands and arguments, observable via print.
func TestEvaluator_EvaluationOrder(t *testing.T) {
	expectOutput(t, `
func tap(label, value) { print(label); return value; }
print(tap("L", 1) + tap("R", 2));
`, "L", "R", "3")
	expectOutput(t, `
func tap(label, value) { print(label); return value; }
func three(a, b, c) { return a + b + c; }
print(three(tap("1", 1), tap("2", 2), tap("3", 3)));
`, "1", "2", "3", "6")
}

// TestEvaluator_RuntimeErrorPosition verifies runtime errors carry the
// source position of their originating token.
func TestEvaluator_RuntimeErrorPosition(t *testing.T) {
	_, err := runProgram(t, "var a = 1;\nvar b = a / 0;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[2:11]")
	assert.Contains(t, err.Error(), "division by zero")
}
