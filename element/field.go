package element

import (
	"fmt"

	"github.com/Olivki/asmkt-sub001/desc"
	"github.com/Olivki/asmkt-sub001/errz"
	"github.com/Olivki/asmkt-sub001/flags"
	"github.com/Olivki/asmkt-sub001/value"
)

// Field is an immutable, validated field description.
type Field struct {
	owner       desc.Class
	name        string
	flags       flags.Set[flags.Field]
	fieldType   desc.Type
	constValue  value.Value
	signature   string
	annotations annotations
}

// Owner returns the declaring class.
func (f *Field) Owner() desc.Class { return f.owner }

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Flags returns the field's access flags.
func (f *Field) Flags() flags.Set[flags.Field] { return f.flags }

// Type returns the field's type descriptor.
func (f *Field) Type() desc.Type { return f.fieldType }

// ConstantValue returns the field's initial constant value, or nil.
func (f *Field) ConstantValue() value.Value { return f.constValue }

// Signature returns the generic signature, empty when absent.
func (f *Field) Signature() string { return f.signature }

// Annotations returns the annotations in the given visibility bucket.
func (f *Field) Annotations(vis Visibility) []*Annotation {
	return f.annotations.get(vis)
}

func (f *Field) String() string {
	return fmt.Sprintf("%s.%s:%s", f.owner, f.name, f.fieldType)
}

// FieldBuilder accumulates the state of one field. It is created through
// ClassBuilder.NewField and finished by the owning class's Build.
type FieldBuilder struct {
	owner      *ClassBuilder
	name       string
	flags      flags.Set[flags.Field]
	fieldType  desc.Type
	constValue value.Value
	signature  string
	anns       annotations
}

// Flags replaces the field's access flags.
func (b *FieldBuilder) Flags(fs flags.Set[flags.Field]) *FieldBuilder {
	b.owner.mutable()
	b.flags = fs
	return b
}

// Signature sets the generic signature.
func (b *FieldBuilder) Signature(sig string) *FieldBuilder {
	b.owner.mutable()
	b.signature = sig
	return b
}

// ConstantValue sets the field's initial constant value. Only int, long,
// float, double, and string constants exist in the format; anything else
// is reported at build time.
func (b *FieldBuilder) ConstantValue(v value.Value) *FieldBuilder {
	b.owner.mutable()
	b.constValue = v
	return b
}

// Annotate inserts an annotation into the chosen visibility bucket.
func (b *FieldBuilder) Annotate(vis Visibility, ann *Annotation) error {
	b.owner.mutable()
	return b.anns.add(b.entity(), vis, ann)
}

func (b *FieldBuilder) entity() string {
	return b.owner.thisClass.Name() + "." + b.name
}

// verify checks the field's own invariants; owner-kind cross checks live
// in the class builder's rule engine.
func (b *FieldBuilder) verify() error {
	if b.constValue == nil {
		return nil
	}
	switch b.constValue.(type) {
	case *value.Int, *value.Long, *value.Float, *value.Double, *value.String:
		return nil
	default:
		return errz.New(errz.ErrValueShape, b.entity(),
			"field constant values must be int, long, float, double, or string; got %s",
			b.constValue.Kind())
	}
}

func (b *FieldBuilder) build() *Field {
	return &Field{
		owner:       b.owner.thisClass,
		name:        b.name,
		flags:       b.flags,
		fieldType:   b.fieldType,
		constValue:  b.constValue,
		signature:   b.signature,
		annotations: b.anns,
	}
}
