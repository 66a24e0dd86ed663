// Package value provides the closed set of value types usable inside
// annotation entries: literal scalars, class and enum references, nested
// annotations, and arrays of those.
//
// Consumers type switch over the concrete types:
//
//	switch v := v.(type) {
//	case *value.String:
//		// v.Value()
//	case *value.EnumRef:
//		// v.EnumType(), v.EntryName()
//	}
//
// The set is closed: all types implementing Value live in this package, so
// a switch over the listed variants is exhaustive.
package value

import "github.com/Olivki/asmkt-sub001/desc"

// Kind of a value as a string.
type Kind string

// Kind constants
const (
	STRING       Kind = "string"
	BOOL         Kind = "bool"
	CHAR         Kind = "char"
	BYTE         Kind = "byte"
	SHORT        Kind = "short"
	INT          Kind = "int"
	LONG         Kind = "long"
	FLOAT        Kind = "float"
	DOUBLE       Kind = "double"
	CLASS        Kind = "class"
	ENUM         Kind = "enum"
	ANNOTATION   Kind = "annotation"
	BOOL_ARRAY   Kind = "bool_array"
	CHAR_ARRAY   Kind = "char_array"
	BYTE_ARRAY   Kind = "byte_array"
	SHORT_ARRAY  Kind = "short_array"
	INT_ARRAY    Kind = "int_array"
	LONG_ARRAY   Kind = "long_array"
	FLOAT_ARRAY  Kind = "float_array"
	DOUBLE_ARRAY Kind = "double_array"
	ARRAY        Kind = "array"
)

// Value is the interface implemented by every annotation value variant.
type Value interface {
	// Kind of the value.
	Kind() Kind

	// Inspect returns the canonical textual form of the value, used in
	// diagnostics.
	Inspect() string

	// isValue restricts implementations to this package.
	isValue()
}

// ArrayElement is the subset of Value that may appear inside the
// heterogeneous Array variant. Array variants themselves are excluded:
// the class-file format does not allow arrays to nest directly.
type ArrayElement interface {
	Value
	arrayElement()
}

// Default is the subset of Value legal as an annotation property's
// compile-time default. Every constructible variant qualifies; the
// interface marks intent at API boundaries.
type Default interface {
	Value
	defaultValue()
}

// Nested is the view of a nested annotation element held by an
// AnnotationRef. It is implemented by the annotation element type in the
// element package.
type Nested interface {
	// AnnotationType returns the annotation's type.
	AnnotationType() desc.Class
}
