package element

import (
	"fmt"

	"github.com/Olivki/asmkt-sub001/code"
	"github.com/Olivki/asmkt-sub001/desc"
	"github.com/Olivki/asmkt-sub001/flags"
	"github.com/Olivki/asmkt-sub001/value"
)

// Parameter is per-parameter metadata: a name and its access flags.
type Parameter struct {
	name  string
	flags flags.Set[flags.Parameter]
}

// Name returns the parameter name.
func (p Parameter) Name() string { return p.name }

// Flags returns the parameter's access flags.
func (p Parameter) Flags() flags.Set[flags.Parameter] { return p.flags }

// LocalVariable describes a named local's type over a label-delimited
// range of the body.
type LocalVariable struct {
	name      string
	varType   desc.Type
	signature string
	start     *code.Label
	end       *code.Label
	index     int
}

// Name returns the local's name.
func (l LocalVariable) Name() string { return l.name }

// Type returns the local's type descriptor.
func (l LocalVariable) Type() desc.Type { return l.varType }

// Signature returns the generic signature, empty when absent.
func (l LocalVariable) Signature() string { return l.signature }

// Start returns the label opening the range.
func (l LocalVariable) Start() *code.Label { return l.start }

// End returns the label closing the range.
func (l LocalVariable) End() *code.Label { return l.end }

// Index returns the local-variable slot.
func (l LocalVariable) Index() int { return l.index }

// TryCatch describes one exception-handler region. A zero CatchType means
// the handler catches everything.
type TryCatch struct {
	start     *code.Label
	end       *code.Label
	handler   *code.Label
	catchType desc.Class
}

// Start returns the label opening the protected range.
func (t TryCatch) Start() *code.Label { return t.start }

// End returns the label closing the protected range.
func (t TryCatch) End() *code.Label { return t.end }

// Handler returns the label of the handler entry point.
func (t TryCatch) Handler() *code.Label { return t.handler }

// CatchType returns the caught exception class; the zero Class is a
// catch-all.
func (t TryCatch) CatchType() desc.Class { return t.catchType }

// Method is an immutable, validated method description.
type Method struct {
	owner        desc.Class
	name         string
	flags        flags.Set[flags.Method]
	methodType   desc.Method
	signature    string
	exceptions   []desc.Class
	parameters   []Parameter
	locals       []LocalVariable
	tryCatch     []TryCatch
	defaultValue value.Default
	annotations  annotations
	body         *code.Code
}

// Owner returns the declaring class.
func (m *Method) Owner() desc.Class { return m.owner }

// Name returns the method name.
func (m *Method) Name() string { return m.name }

// Flags returns the method's access flags.
func (m *Method) Flags() flags.Set[flags.Method] { return m.flags }

// Type returns the method type.
func (m *Method) Type() desc.Method { return m.methodType }

// Signature returns the generic signature, empty when absent.
func (m *Method) Signature() string { return m.signature }

// Exceptions returns the declared thrown exception classes.
func (m *Method) Exceptions() []desc.Class {
	return append([]desc.Class(nil), m.exceptions...)
}

// Parameters returns the parameter metadata in declaration order.
func (m *Method) Parameters() []Parameter {
	return append([]Parameter(nil), m.parameters...)
}

// Locals returns the local-variable metadata.
func (m *Method) Locals() []LocalVariable {
	return append([]LocalVariable(nil), m.locals...)
}

// TryCatchRegions returns the exception-handler regions.
func (m *Method) TryCatchRegions() []TryCatch {
	return append([]TryCatch(nil), m.tryCatch...)
}

// DefaultValue returns the annotation default, or nil.
func (m *Method) DefaultValue() value.Default { return m.defaultValue }

// Annotations returns the annotations in the given visibility bucket.
func (m *Method) Annotations(vis Visibility) []*Annotation {
	return m.annotations.get(vis)
}

// Body returns the abstract instruction sequence. It is never nil; an
// absent body is an empty sequence.
func (m *Method) Body() *code.Code { return m.body }

func (m *Method) String() string {
	return fmt.Sprintf("%s.%s%s", m.owner, m.name, m.methodType)
}

// MethodBuilder accumulates the state of one method. It is created
// through ClassBuilder.NewMethod and finished by the owning class's
// Build.
type MethodBuilder struct {
	owner        *ClassBuilder
	name         string
	flags        flags.Set[flags.Method]
	methodType   desc.Method
	signature    string
	exceptions   []desc.Class
	parameters   []Parameter
	locals       []LocalVariable
	tryCatch     []TryCatch
	defaultValue value.Default
	anns         annotations
	body         *code.Builder
	bodyDefined  bool
}

// Flags replaces the method's access flags.
func (b *MethodBuilder) Flags(fs flags.Set[flags.Method]) *MethodBuilder {
	b.owner.mutable()
	b.flags = fs
	return b
}

// Signature sets the generic signature.
func (b *MethodBuilder) Signature(sig string) *MethodBuilder {
	b.owner.mutable()
	b.signature = sig
	return b
}

// Throws appends declared thrown exception classes.
func (b *MethodBuilder) Throws(exceptions ...desc.Class) *MethodBuilder {
	b.owner.mutable()
	b.exceptions = append(b.exceptions, exceptions...)
	return b
}

// Param records parameter metadata. Naming an already-recorded parameter
// overrides its flags in place.
func (b *MethodBuilder) Param(name string, fs flags.Set[flags.Parameter]) *MethodBuilder {
	b.owner.mutable()
	for i, p := range b.parameters {
		if p.name == name {
			b.parameters[i].flags = fs
			return b
		}
	}
	b.parameters = append(b.parameters, Parameter{name: name, flags: fs})
	return b
}

// Local records a local-variable range.
func (b *MethodBuilder) Local(name string, varType desc.Type, signature string, start, end *code.Label, index int) *MethodBuilder {
	b.owner.mutable()
	b.locals = append(b.locals, LocalVariable{
		name:      name,
		varType:   varType,
		signature: signature,
		start:     start,
		end:       end,
		index:     index,
	})
	return b
}

// Catch records an exception-handler region for the given exception
// class.
func (b *MethodBuilder) Catch(start, end, handler *code.Label, catchType desc.Class) *MethodBuilder {
	b.owner.mutable()
	b.tryCatch = append(b.tryCatch, TryCatch{start: start, end: end, handler: handler, catchType: catchType})
	return b
}

// CatchAll records a catch-everything handler region.
func (b *MethodBuilder) CatchAll(start, end, handler *code.Label) *MethodBuilder {
	b.owner.mutable()
	b.tryCatch = append(b.tryCatch, TryCatch{start: start, end: end, handler: handler})
	return b
}

// Default sets the annotation default value. The owning class must be an
// annotation; the rule engine reports a violation otherwise.
func (b *MethodBuilder) Default(v value.Default) *MethodBuilder {
	b.owner.mutable()
	b.defaultValue = v
	return b
}

// Annotate inserts an annotation into the chosen visibility bucket.
func (b *MethodBuilder) Annotate(vis Visibility, ann *Annotation) error {
	b.owner.mutable()
	return b.anns.add(b.entity(), vis, ann)
}

// WithBody gives fn scoped access to the method's instruction-sequence
// builder. fn runs synchronously, exactly once, before WithBody returns.
// Defining a body twice panics: a method has one body.
func (b *MethodBuilder) WithBody(fn func(*code.Builder)) *MethodBuilder {
	b.owner.mutable()
	if b.bodyDefined {
		panic(fmt.Sprintf("element: body of %s defined twice", b.entity()))
	}
	b.bodyDefined = true
	fn(b.body)
	return b
}

func (b *MethodBuilder) entity() string {
	return b.owner.thisClass.Name() + "." + b.name
}

func (b *MethodBuilder) build() *Method {
	return &Method{
		owner:        b.owner.thisClass,
		name:         b.name,
		flags:        b.flags,
		methodType:   b.methodType,
		signature:    b.signature,
		exceptions:   append([]desc.Class(nil), b.exceptions...),
		parameters:   append([]Parameter(nil), b.parameters...),
		locals:       append([]LocalVariable(nil), b.locals...),
		tryCatch:     append([]TryCatch(nil), b.tryCatch...),
		defaultValue: b.defaultValue,
		annotations:  b.anns,
		body:         b.body.Code(),
	}
}
