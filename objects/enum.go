/*
File : hinton/objects/enum.go
*/
package objects

import (
	"fmt"
	"strings"
)

// Enum represents an enum declaration at runtime: an ordered mapping
// from member name to its 0-based declaration ordinal. Members are read
// through the property protocol (`Color.Red`), never mutated.
type Enum struct {
	Name     string
	Members  map[string]int64 // member name -> declaration ordinal
	Ordering []string         // member names in declaration order
}

// NewEnum creates an empty enum value with the given name.
func NewEnum(name string) *Enum {
	return &Enum{
		Name:     name,
		Members:  make(map[string]int64),
		Ordering: make([]string, 0),
	}
}

// AddMember appends a member with the next ordinal. Returns false if the
// member name is already present.
func (e *Enum) AddMember(name string) bool {
	if _, exists := e.Members[name]; exists {
		return false
	}
	e.Members[name] = int64(len(e.Ordering))
	e.Ordering = append(e.Ordering, name)
	return true
}

// GetType returns the type of the Enum object
func (e *Enum) GetType() Type { return EnumType }

// ToString renders the enum as "<enum Name>"
func (e *Enum) ToString() string { return fmt.Sprintf("<enum %s>", e.Name) }

// ToObject renders the enum with its member list
func (e *Enum) ToObject() string {
	return fmt.Sprintf("<Enum(%s{%s})>", e.Name, strings.Join(e.Ordering, ", "))
}
