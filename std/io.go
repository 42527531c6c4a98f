/*
File : hinton/std/io.go
*/

// Package std - io.go
// The console built-ins: `print` and `input`.
package std

import (
	"fmt"
	"io"
	"strings"

	"github.com/hinton-lang/hinton/lexer"
	"github.com/hinton-lang/hinton/objects"
)

var ioMethods = []*Builtin{
	{Name: "print", MinArity: 1, MaxArity: 1, Callback: printFn},
	{Name: "input", MinArity: 1, MaxArity: 1, Callback: inputFn},
}

// init registers the I/O built-ins.
func init() {
	Builtins = append(Builtins, ioMethods...)
}

// printFn writes the stringified argument followed by a newline.
//
// Syntax: print(value)
func printFn(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
	fmt.Fprintln(rt.Output(), args[0].ToString())
	return objects.NULL, nil
}

// inputFn writes the prompt and reads one line from standard input,
// returning it without the trailing newline. At end of input the line
// read so far (possibly empty) is returned. Requires the input
// permission; running without `--allow-input` makes this a runtime
// error.
//
// Syntax: input(prompt)
func inputFn(rt Runtime, tok lexer.Token, args []objects.Object) (objects.Object, error) {
	if !rt.Perms().AllowInput {
		return nil, fmt.Errorf("'input' requires the input permission (run with --allow-input)")
	}

	fmt.Fprint(rt.Output(), args[0].ToString())

	line, err := rt.InputReader().ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read from stdin: %v", err)
	}
	return &objects.String{Value: strings.TrimRight(line, "\r\n")}, nil
}
