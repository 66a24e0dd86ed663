package value

import (
	"fmt"

	"github.com/Olivki/asmkt-sub001/desc"
)

// ClassRef is a reference to a class, e.g. the String.class of an
// annotation property.
type ClassRef struct {
	class desc.Class
}

func NewClassRef(class desc.Class) *ClassRef { return &ClassRef{class: class} }

func (c *ClassRef) Kind() Kind        { return CLASS }
func (c *ClassRef) Class() desc.Class { return c.class }
func (c *ClassRef) Inspect() string   { return c.class.Name() + ".class" }
func (c *ClassRef) isValue()          {}
func (c *ClassRef) arrayElement()     {}
func (c *ClassRef) defaultValue()     {}

// EnumRef references an enum constant by declaring type and constant
// name. Names rather than ordinals keep the value stable when the enum's
// entries are reordered.
type EnumRef struct {
	enumType  desc.Class
	entryName string
}

func NewEnumRef(enumType desc.Class, entryName string) *EnumRef {
	return &EnumRef{enumType: enumType, entryName: entryName}
}

func (e *EnumRef) Kind() Kind           { return ENUM }
func (e *EnumRef) EnumType() desc.Class { return e.enumType }
func (e *EnumRef) EntryName() string    { return e.entryName }
func (e *EnumRef) Inspect() string {
	return fmt.Sprintf("%s.%s", e.enumType.Name(), e.entryName)
}
func (e *EnumRef) isValue()      {}
func (e *EnumRef) arrayElement() {}
func (e *EnumRef) defaultValue() {}

// AnnotationRef holds a nested annotation element.
type AnnotationRef struct {
	nested Nested
}

func NewAnnotationRef(nested Nested) *AnnotationRef {
	return &AnnotationRef{nested: nested}
}

func (a *AnnotationRef) Kind() Kind     { return ANNOTATION }
func (a *AnnotationRef) Nested() Nested { return a.nested }
func (a *AnnotationRef) Inspect() string {
	return "@" + a.nested.AnnotationType().Name()
}
func (a *AnnotationRef) isValue()      {}
func (a *AnnotationRef) arrayElement() {}
func (a *AnnotationRef) defaultValue() {}
