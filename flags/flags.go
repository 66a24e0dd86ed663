// Package flags implements the access-flag algebra used throughout the
// class model. A Flag is a single modifier bit and a Set is an immutable
// combination of flags, both scoped to one entity kind (class, method,
// field, module, or method parameter) at the type level. Combining flags
// from different entity kinds does not compile.
package flags

// Entity kinds. These exist only as type parameters; they carry no state.
type (
	Class     struct{}
	Method    struct{}
	Field     struct{}
	Module    struct{}
	Parameter struct{}
)

// Entity constrains the flag algebra to the kinds of modifiable entities
// in the class-file format.
type Entity interface {
	Class | Method | Field | Module | Parameter
}

// Flag is a single access-modifier bit for entity kind E.
type Flag[E Entity] uint16

// Set is an immutable combination of flags for entity kind E. The zero
// value is the empty set.
type Set[E Entity] uint16

// Of builds a set from the given flags.
func Of[E Entity](fs ...Flag[E]) Set[E] {
	var s Set[E]
	for _, f := range fs {
		s |= Set[E](f)
	}
	return s
}

// Plus combines two flags into a set.
func (f Flag[E]) Plus(other Flag[E]) Set[E] {
	return Set[E](f) | Set[E](other)
}

// AsSet returns the single-flag set containing f.
func (f Flag[E]) AsSet() Set[E] {
	return Set[E](f)
}

// Int returns the raw bit value of the flag.
func (f Flag[E]) Int() int {
	return int(f)
}

// With returns a new set with f added.
func (s Set[E]) With(f Flag[E]) Set[E] {
	return s | Set[E](f)
}

// Plus returns the union of two sets.
func (s Set[E]) Plus(other Set[E]) Set[E] {
	return s | other
}

// Contains reports whether f is present in the set.
func (s Set[E]) Contains(f Flag[E]) bool {
	return s&Set[E](f) != 0
}

// Intersects reports whether the two sets share at least one flag.
func (s Set[E]) Intersects(other Set[E]) bool {
	return s&other != 0
}

// IsEmpty reports whether no flags are set.
func (s Set[E]) IsEmpty() bool {
	return s == 0
}

// Int returns the raw bit mask, as written to the class file.
func (s Set[E]) Int() int {
	return int(s)
}
