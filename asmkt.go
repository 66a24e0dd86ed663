// Package asmkt builds and validates in-memory descriptions of JVM class
// files: classes, fields, methods, and annotations, together with their
// modifier and attribute metadata. A finished element tree is semantically
// valid against the format's structural rules and ready to hand to a
// low-level encoder for serialization.
//
// The packages underneath split the model the way the format does:
//
//   - flags:   the access-flag algebra, typed per entity kind
//   - jvm:     class-file versions and feature gates
//   - desc:    opaque type, class, and method descriptors
//   - value:   the closed set of annotation value variants
//   - code:    abstract instruction sequences and labels
//   - element: builders, the rule engine, and the immutable elements
//   - errz:    the validation error taxonomy and diagnostics formatting
package asmkt

import (
	"github.com/rs/zerolog"

	"github.com/Olivki/asmkt-sub001/desc"
	"github.com/Olivki/asmkt-sub001/element"
	"github.com/Olivki/asmkt-sub001/jvm"
)

// Option configures a class builder.
type Option func(*options)

type options struct {
	logger *zerolog.Logger
}

// WithLogger attaches a logger to the builder; the rule engine traces its
// passes at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &log
	}
}

// NewClass starts a class builder targeting the given class-file version.
func NewClass(version jvm.Version, kind element.Kind, name string, opts ...Option) *element.ClassBuilder {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	b := element.NewClass(version, kind, desc.ClassOf(name))
	if o.logger != nil {
		b.WithLogger(*o.logger)
	}
	return b
}

// NewAnnotation starts an annotation builder for the named annotation
// type.
func NewAnnotation(name string) *element.AnnotationBuilder {
	return element.NewAnnotation(desc.ClassOf(name))
}
