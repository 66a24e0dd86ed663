package element

import (
	"strings"

	"github.com/Olivki/asmkt-sub001/desc"
	"github.com/Olivki/asmkt-sub001/errz"
	"github.com/Olivki/asmkt-sub001/value"
)

// Visibility selects the retention bucket an annotation is attached to.
// The choice is the caller's declared intent; it is not inferred from the
// annotation itself.
type Visibility int

const (
	// RuntimeVisible annotations are retained and visible to reflection.
	RuntimeVisible Visibility = iota
	// RuntimeInvisible annotations are retained but not visible to
	// reflection.
	RuntimeInvisible
)

func (v Visibility) String() string {
	if v == RuntimeVisible {
		return "visible"
	}
	return "invisible"
}

// Annotation is an immutable, ordered name→value description of one
// annotation use. It doubles as the nested-annotation payload inside
// value.AnnotationRef.
type Annotation struct {
	annotationType desc.Class
	names          []string
	values         map[string]value.Value
	allowRepeats   bool
}

// AnnotationType returns the annotation's type. This also satisfies
// value.Nested.
func (a *Annotation) AnnotationType() desc.Class {
	return a.annotationType
}

// AllowRepeats reports whether several annotations of this type may share
// one visibility bucket.
func (a *Annotation) AllowRepeats() bool {
	return a.allowRepeats
}

// Names returns the property names in insertion order.
func (a *Annotation) Names() []string {
	return append([]string(nil), a.names...)
}

// Value returns the value for the named property.
func (a *Annotation) Value(name string) (value.Value, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Len returns the number of properties.
func (a *Annotation) Len() int {
	return len(a.names)
}

// Inspect renders the annotation in source-like form for diagnostics.
func (a *Annotation) Inspect() string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(a.annotationType.Name())
	if len(a.names) > 0 {
		b.WriteString("(")
		for i, name := range a.names {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(name)
			b.WriteString(" = ")
			b.WriteString(a.values[name].Inspect())
		}
		b.WriteString(")")
	}
	return b.String()
}

// AnnotationBuilder accumulates the properties of one annotation use.
type AnnotationBuilder struct {
	annotationType desc.Class
	names          []string
	values         map[string]value.Value
	allowRepeats   bool
}

// NewAnnotation starts an annotation of the given type.
func NewAnnotation(annotationType desc.Class) *AnnotationBuilder {
	return &AnnotationBuilder{
		annotationType: annotationType,
		values:         map[string]value.Value{},
	}
}

// AllowRepeats marks the annotation's type as repeatable within one
// visibility bucket.
func (b *AnnotationBuilder) AllowRepeats() *AnnotationBuilder {
	b.allowRepeats = true
	return b
}

// Set adds or replaces the named property. Insertion order of first
// writes is preserved.
func (b *AnnotationBuilder) Set(name string, v value.Value) *AnnotationBuilder {
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = v
	return b
}

// Build emits the immutable annotation element.
func (b *AnnotationBuilder) Build() *Annotation {
	values := make(map[string]value.Value, len(b.values))
	for k, v := range b.values {
		values[k] = v
	}
	return &Annotation{
		annotationType: b.annotationType,
		names:          append([]string(nil), b.names...),
		values:         values,
		allowRepeats:   b.allowRepeats,
	}
}

// annotations holds the visible and invisible buckets for one owner.
type annotations struct {
	visible   []*Annotation
	invisible []*Annotation
}

// add inserts ann into the chosen bucket, enforcing the one-per-type
// rule for non-repeatable annotation types within that bucket.
func (a *annotations) add(owner string, vis Visibility, ann *Annotation) error {
	bucket := &a.visible
	if vis == RuntimeInvisible {
		bucket = &a.invisible
	}
	for _, existing := range *bucket {
		if existing.annotationType == ann.annotationType {
			if existing.allowRepeats && ann.allowRepeats {
				continue
			}
			return errz.New(errz.ErrDuplicateAnnotation, owner,
				"%s annotation %s is already present and its type is not repeatable",
				vis, ann.annotationType)
		}
	}
	*bucket = append(*bucket, ann)
	return nil
}

func (a *annotations) get(vis Visibility) []*Annotation {
	if vis == RuntimeInvisible {
		return append([]*Annotation(nil), a.invisible...)
	}
	return append([]*Annotation(nil), a.visible...)
}
