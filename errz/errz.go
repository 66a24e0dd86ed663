// Package errz defines the structural-validation error types raised by the
// class builders and rule engine.
package errz

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrorKind represents the category of a validation error.
type ErrorKind int

const (
	// ErrRedundantKindFlag indicates a kind-defining access flag was set
	// directly instead of through the builder's kind.
	ErrRedundantKindFlag ErrorKind = iota
	// ErrSupertypeMismatch indicates the supertype required by the class
	// kind does not match the actual supertype.
	ErrSupertypeMismatch
	// ErrVersionTooLow indicates a feature requires a newer class-file
	// version than the builder is configured with.
	ErrVersionTooLow
	// ErrKindNotAllowed indicates the class kind forbids the named feature.
	ErrKindNotAllowed
	// ErrInterfaceFieldModifier indicates an interface field is missing
	// required public/static/final modifiers.
	ErrInterfaceFieldModifier
	// ErrAbstractMethodNotAllowed indicates an abstract method on a class
	// that cannot hold one.
	ErrAbstractMethodNotAllowed
	// ErrMissingMethodBody indicates a non-abstract method with an empty
	// body.
	ErrMissingMethodBody
	// ErrAbstractMethodHasBody indicates an abstract method with a
	// non-empty body.
	ErrAbstractMethodHasBody
	// ErrDuplicateAnnotation indicates a repeated annotation of a
	// non-repeatable type within one visibility bucket.
	ErrDuplicateAnnotation
	// ErrValueShape indicates reflective population met an unsupported
	// runtime value shape.
	ErrValueShape
	// ErrDefaultValueOnNonAnnotation indicates an annotation default on a
	// method not owned by an annotation class.
	ErrDefaultValueOnNonAnnotation
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrRedundantKindFlag:
		return "redundant kind flag"
	case ErrSupertypeMismatch:
		return "supertype mismatch"
	case ErrVersionTooLow:
		return "version too low"
	case ErrKindNotAllowed:
		return "kind not allowed"
	case ErrInterfaceFieldModifier:
		return "interface field modifier violation"
	case ErrAbstractMethodNotAllowed:
		return "abstract method not allowed"
	case ErrMissingMethodBody:
		return "missing method body"
	case ErrAbstractMethodHasBody:
		return "abstract method has body"
	case ErrDuplicateAnnotation:
		return "duplicate annotation"
	case ErrValueShape:
		return "value shape error"
	case ErrDefaultValueOnNonAnnotation:
		return "default value on non-annotation"
	default:
		return "validation error"
	}
}

// Code returns the stable error code for the kind.
func (k ErrorKind) Code() ErrorCode {
	if c, ok := kindCodes[k]; ok {
		return c
	}
	return ""
}

// VerifyError is a single structural-validation failure. Entity names the
// offending class, field, method, or property so the diagnostic is
// actionable on its own.
type VerifyError struct {
	Kind    ErrorKind
	Entity  string
	Message string
}

// New creates a VerifyError for the named entity.
func New(kind ErrorKind, entity, format string, args ...any) *VerifyError {
	return &VerifyError{
		Kind:    kind,
		Entity:  entity,
		Message: fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *VerifyError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Entity, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// FriendlyErrorMessage returns a human-friendly message with the error
// code and entity called out.
func (e *VerifyError) FriendlyErrorMessage() string {
	return NewFormatter(false).Format(e)
}

// Append aggregates a new violation onto err, which may be nil, a single
// error, or an existing aggregate. Violations stay independently
// retrievable through Filter and HasKind.
func Append(err error, violations ...error) error {
	return multierror.Append(err, violations...).ErrorOrNil()
}

// Filter returns every VerifyError of the given kind reachable from err,
// looking through aggregates.
func Filter(err error, kind ErrorKind) []*VerifyError {
	var out []*VerifyError
	for _, e := range flatten(err) {
		var ve *VerifyError
		if errors.As(e, &ve) && ve.Kind == kind {
			out = append(out, ve)
		}
	}
	return out
}

// HasKind reports whether err contains at least one VerifyError of the
// given kind.
func HasKind(err error, kind ErrorKind) bool {
	return len(Filter(err, kind)) > 0
}

// All returns every VerifyError reachable from err in report order.
func All(err error) []*VerifyError {
	var out []*VerifyError
	for _, e := range flatten(err) {
		var ve *VerifyError
		if errors.As(e, &ve) {
			out = append(out, ve)
		}
	}
	return out
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.Errors
	}
	return []error{err}
}
