// Package desc provides the opaque type-identity values the class model is
// built from: field/return type descriptors, class references, and method
// types. The builder core only ever compares these for equality and renders
// them into diagnostics; parsing and descriptor-string emission belong to
// the encoder side of the boundary.
package desc

import (
	"fmt"
	"strings"
)

// Type is an opaque field or return type descriptor.
type Type struct {
	raw string
}

// TypeOf wraps a raw descriptor string, e.g. "I" or "Ljava/lang/String;".
func TypeOf(descriptor string) Type {
	return Type{raw: descriptor}
}

// Primitive and void descriptors.
var (
	Void    = TypeOf("V")
	Boolean = TypeOf("Z")
	Char    = TypeOf("C")
	Byte    = TypeOf("B")
	Short   = TypeOf("S")
	Int     = TypeOf("I")
	Long    = TypeOf("J")
	Float   = TypeOf("F")
	Double  = TypeOf("D")
)

// ArrayOf returns the descriptor for an array of element.
func ArrayOf(element Type) Type {
	return Type{raw: "[" + element.raw}
}

// IsZero reports whether t is the zero Type (no descriptor).
func (t Type) IsZero() bool {
	return t.raw == ""
}

func (t Type) String() string {
	return t.raw
}

// Class identifies a class by its internal binary name, e.g.
// "java/lang/String".
type Class struct {
	name string
}

// ClassOf wraps an internal binary name.
func ClassOf(internalName string) Class {
	return Class{name: internalName}
}

// Well-known classes the rule engine compares against.
var (
	Object    = ClassOf("java/lang/Object")
	Enum      = ClassOf("java/lang/Enum")
	Record    = ClassOf("java/lang/Record")
	String    = ClassOf("java/lang/String")
	Throwable = ClassOf("java/lang/Throwable")
)

// Name returns the internal binary name.
func (c Class) Name() string {
	return c.name
}

// Type returns the field descriptor form, "L<name>;".
func (c Class) Type() Type {
	return Type{raw: "L" + c.name + ";"}
}

// IsZero reports whether c is the zero Class (no reference).
func (c Class) IsZero() bool {
	return c.name == ""
}

func (c Class) String() string {
	return c.name
}

// Method describes a method type: its parameter types and return type.
type Method struct {
	ret    Type
	params string // concatenated parameter descriptors
	count  int
}

// MethodOf builds a method type from a return type and parameter types.
func MethodOf(ret Type, params ...Type) Method {
	var b strings.Builder
	for _, p := range params {
		b.WriteString(p.raw)
	}
	return Method{ret: ret, params: b.String(), count: len(params)}
}

// Return returns the return type.
func (m Method) Return() Type {
	return m.ret
}

// ParamCount returns the number of parameters.
func (m Method) ParamCount() int {
	return m.count
}

func (m Method) String() string {
	return fmt.Sprintf("(%s)%s", m.params, m.ret.raw)
}
