/*
File : hinton/scope/scope.go
*/

// Package scope implements the lexically chained environment of the
// Hinton interpreter.
//
// A Scope is one frame in a singly-linked chain: each frame holds an
// insertion-ordered set of named cells, and a pointer to its enclosing
// frame. Frames are created on block entry, function invocation and loop
// iterations that declare locals, and are released when their scope
// exits, unless captured by a function or lambda value, which extends
// the frame's lifetime to that of the closure.
//
// Every cell records its declaration kind. Constants, functions and
// built-ins refuse reassignment; a cell declared without an initializer
// refuses reads until its first assignment.
package scope

import (
	"fmt"

	"github.com/hinton-lang/hinton/objects"
)

// DeclKind classifies how a name was introduced into a scope.
type DeclKind int

const (
	// VariableDecl is a mutable `var` binding
	VariableDecl DeclKind = iota
	// ConstantDecl is a `const` binding; reassignment is an error
	ConstantDecl
	// FunctionDecl is a `func` declaration; reassignment is an error
	FunctionDecl
	// BuiltInDecl is a host-installed binding; reassignment is an error
	// at any scope
	BuiltInDecl
	// EnumDecl is an `enum` declaration
	EnumDecl
)

// String returns the kind's display name, used in diagnostics.
func (k DeclKind) String() string {
	switch k {
	case ConstantDecl:
		return "constant"
	case FunctionDecl:
		return "function"
	case BuiltInDecl:
		return "built-in"
	case EnumDecl:
		return "enum"
	default:
		return "variable"
	}
}

// cell is a single binding: its value, its declaration kind, and whether
// it has been initialized yet. A `var x;` declaration produces a cell
// with initialized == false; the first assignment flips it, after which
// the cell is indistinguishable from any other.
type cell struct {
	value       objects.Object
	kind        DeclKind
	initialized bool
}

// Scope is one frame of the environment chain.
type Scope struct {
	cells map[string]*cell
	names []string // insertion order of the cells
	// Parent points to the enclosing frame; nil marks the global scope.
	Parent *Scope
}

// NewScope creates a frame with the given parent (nil for the global
// scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{
		cells:  make(map[string]*cell),
		names:  make([]string, 0),
		Parent: parent,
	}
}

// Define inserts a binding into this frame. A nil value marks the cell
// declared-but-uninitialized (a bare `var x;`). Duplicate names in the
// same frame are an error.
func (s *Scope) Define(name string, value objects.Object, kind DeclKind) error {
	if _, exists := s.cells[name]; exists {
		return fmt.Errorf("'%s' is already declared in this scope", name)
	}
	s.cells[name] = &cell{value: value, kind: kind, initialized: value != nil}
	s.names = append(s.names, name)
	return nil
}

// DefineBuiltIn installs a host binding, overwriting any previous cell
// of the same name. This bypass of the duplicate check exists for
// interpreter startup only.
func (s *Scope) DefineBuiltIn(name string, value objects.Object) {
	if _, exists := s.cells[name]; !exists {
		s.names = append(s.names, name)
	}
	s.cells[name] = &cell{value: value, kind: BuiltInDecl, initialized: true}
}

// Get searches this frame and then outward for a name. Reading a cell
// that was declared without an initializer is an error distinct from the
// name being missing entirely.
func (s *Scope) Get(name string) (objects.Object, error) {
	if c, ok := s.cells[name]; ok {
		if !c.initialized {
			return nil, fmt.Errorf("variable '%s' has not been initialized", name)
		}
		return c.value, nil
	}
	if s.Parent != nil {
		return s.Parent.Get(name)
	}
	return nil, fmt.Errorf("undefined identifier '%s'", name)
}

// GetAt ascends exactly distance frames and reads the name directly from
// that frame. This is the fast path for resolver-annotated local reads;
// the distance is trusted, so a missing cell here indicates a resolver
// defect rather than a user error.
func (s *Scope) GetAt(distance int, name string) (objects.Object, error) {
	frame := s.Ancestor(distance)
	if frame == nil {
		return nil, fmt.Errorf("undefined identifier '%s'", name)
	}
	if c, ok := frame.cells[name]; ok {
		if !c.initialized {
			return nil, fmt.Errorf("variable '%s' has not been initialized", name)
		}
		return c.value, nil
	}
	return nil, fmt.Errorf("undefined identifier '%s'", name)
}

// Assign walks outward until the name is found and overwrites its value.
// Cells declared as constants, functions or built-ins refuse the write.
func (s *Scope) Assign(name string, value objects.Object) error {
	if c, ok := s.cells[name]; ok {
		return c.store(name, value)
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, value)
	}
	return fmt.Errorf("undefined identifier '%s'", name)
}

// AssignAt ascends exactly distance frames and assigns there, with the
// same refusal policy as Assign.
func (s *Scope) AssignAt(distance int, name string, value objects.Object) error {
	frame := s.Ancestor(distance)
	if frame == nil {
		return fmt.Errorf("undefined identifier '%s'", name)
	}
	if c, ok := frame.cells[name]; ok {
		return c.store(name, value)
	}
	return fmt.Errorf("undefined identifier '%s'", name)
}

// Contains reports whether the name is bound in this frame or any
// enclosing one.
func (s *Scope) Contains(name string) bool {
	if _, ok := s.cells[name]; ok {
		return true
	}
	if s.Parent != nil {
		return s.Parent.Contains(name)
	}
	return false
}

// Ancestor returns the frame exactly distance hops up the chain, or nil
// if the chain is shorter than that.
func (s *Scope) Ancestor(distance int) *Scope {
	frame := s
	for i := 0; i < distance && frame != nil; i++ {
		frame = frame.Parent
	}
	return frame
}

// Names returns the binding names of this frame in insertion order.
func (s *Scope) Names() []string {
	return s.names
}

// store overwrites the cell's value unless its kind forbids writes.
func (c *cell) store(name string, value objects.Object) error {
	switch c.kind {
	case ConstantDecl:
		return fmt.Errorf("cannot reassign constant '%s'", name)
	case FunctionDecl:
		return fmt.Errorf("cannot reassign function '%s'", name)
	case BuiltInDecl:
		return fmt.Errorf("cannot reassign built-in '%s'", name)
	}
	c.value = value
	c.initialized = true
	return nil
}
