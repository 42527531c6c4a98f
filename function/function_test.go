/*
File : hinton/function/function_test.go
*/
package function

import (
	"testing"

	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
	"github.com/hinton-lang/hinton/parser"
	"github.com/stretchr/testify/assert"
)

func param(name string, optional bool) *parser.ParameterStmt {
	return &parser.ParameterStmt{
		Name:       lexer.NewToken(lexer.IDENTIFIER, name),
		IsOptional: optional,
	}
}

// TestFunction_Arity verifies the arity window derives from the
// required/optional split.
func TestFunction_Arity(t *testing.T) {
	fn := &Function{
		Name:   "f",
		Params: []*parser.ParameterStmt{param("a", false), param("b", false), param("c", true)},
	}
	assert.Equal(t, 2, fn.MinArity())
	assert.Equal(t, 3, fn.MaxArity())
	assert.Equal(t, objects.FunctionType, fn.GetType())
	assert.Equal(t, "func(f)", fn.ToString())
	assert.Equal(t, "<Function[f(a, b, c?)]>", fn.ToObject())
}

// TestLambda_Display verifies the lambda type tag and rendering.
func TestLambda_Display(t *testing.T) {
	lambda := &Lambda{Params: []*parser.ParameterStmt{param("x", false)}}
	assert.Equal(t, objects.LambdaType, lambda.GetType())
	assert.Equal(t, 1, lambda.MinArity())
	assert.Equal(t, 1, lambda.MaxArity())
	assert.Equal(t, "fn(x)", lambda.ToString())
}
