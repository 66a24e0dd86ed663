package element

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Olivki/asmkt-sub001/code"
	"github.com/Olivki/asmkt-sub001/desc"
	"github.com/Olivki/asmkt-sub001/flags"
	"github.com/Olivki/asmkt-sub001/jvm"
)

// EnclosingMethod references the method a local or anonymous class is
// declared inside.
type EnclosingMethod struct {
	class      desc.Class
	methodName string
	methodType desc.Method
}

// Class returns the enclosing class.
func (e EnclosingMethod) Class() desc.Class { return e.class }

// MethodName returns the enclosing method's name.
func (e EnclosingMethod) MethodName() string { return e.methodName }

// MethodType returns the enclosing method's type.
func (e EnclosingMethod) MethodType() desc.Method { return e.methodType }

// InnerClass is one inner-class table entry.
type InnerClass struct {
	inner     desc.Class
	outer     desc.Class
	innerName string
	flags     flags.Set[flags.Class]
}

// Inner returns the inner class.
func (i InnerClass) Inner() desc.Class { return i.inner }

// Outer returns the enclosing class; zero for local and anonymous
// classes.
func (i InnerClass) Outer() desc.Class { return i.outer }

// InnerName returns the simple name; empty for anonymous classes.
func (i InnerClass) InnerName() string { return i.innerName }

// Flags returns the inner class's access flags as seen at its
// declaration site.
func (i InnerClass) Flags() flags.Set[flags.Class] { return i.flags }

// Class is an immutable, fully validated class description, ready for the
// encoder.
type Class struct {
	version             jvm.Version
	kind                Kind
	thisClass           desc.Class
	flags               flags.Set[flags.Class]
	signature           string
	superclass          desc.Class
	interfaces          []desc.Class
	sourceFile          string
	sourceDebug         string
	permitted           []desc.Class
	enclosingClass      desc.Class
	enclosingMethod     *EnclosingMethod
	innerClasses        []InnerClass
	nestHost            desc.Class
	nestMembers         []desc.Class
	fieldNames          []string
	fields              map[string]*Field
	methods             []*Method
	treatSuperSpecially bool
	annotations         annotations
	typeAnnotations     annotations
}

// Version returns the class-file version.
func (c *Class) Version() jvm.Version { return c.version }

// Kind returns the class category.
func (c *Class) Kind() Kind { return c.kind }

// Type returns the class's own type identity.
func (c *Class) Type() desc.Class { return c.thisClass }

// Flags returns the effective access flags, including those implied by
// the kind and the treat-super-specially marker.
func (c *Class) Flags() flags.Set[flags.Class] { return c.flags }

// Signature returns the generic signature, empty when absent.
func (c *Class) Signature() string { return c.signature }

// Superclass returns the superclass reference.
func (c *Class) Superclass() desc.Class { return c.superclass }

// Interfaces returns the implemented interfaces in declaration order.
func (c *Class) Interfaces() []desc.Class {
	return append([]desc.Class(nil), c.interfaces...)
}

// SourceFile returns the source-file name, empty when absent.
func (c *Class) SourceFile() string { return c.sourceFile }

// SourceDebug returns the debug extension string, empty when absent.
func (c *Class) SourceDebug() string { return c.sourceDebug }

// PermittedSubclasses returns the sealed-class permits list.
func (c *Class) PermittedSubclasses() []desc.Class {
	return append([]desc.Class(nil), c.permitted...)
}

// EnclosingClass returns the immediately enclosing class, zero when the
// class is top level.
func (c *Class) EnclosingClass() desc.Class { return c.enclosingClass }

// EnclosingMethod returns the enclosing method reference, nil when
// absent.
func (c *Class) EnclosingMethod() *EnclosingMethod { return c.enclosingMethod }

// InnerClasses returns the inner-class table.
func (c *Class) InnerClasses() []InnerClass {
	return append([]InnerClass(nil), c.innerClasses...)
}

// NestHost returns the nest host, zero when the class hosts itself.
func (c *Class) NestHost() desc.Class { return c.nestHost }

// NestMembers returns the nest members.
func (c *Class) NestMembers() []desc.Class {
	return append([]desc.Class(nil), c.nestMembers...)
}

// FieldNames returns the field names in declaration order.
func (c *Class) FieldNames() []string {
	return append([]string(nil), c.fieldNames...)
}

// Field returns the named field.
func (c *Class) Field(name string) (*Field, bool) {
	f, ok := c.fields[name]
	return f, ok
}

// FieldCount returns the number of fields.
func (c *Class) FieldCount() int { return len(c.fieldNames) }

// Methods returns the methods in declaration order.
func (c *Class) Methods() []*Method {
	return append([]*Method(nil), c.methods...)
}

// TreatSuperSpecially reports whether superclass method dispatch uses the
// historical special semantics (the SUPER flag).
func (c *Class) TreatSuperSpecially() bool { return c.treatSuperSpecially }

// Annotations returns the class annotations in the given visibility
// bucket.
func (c *Class) Annotations(vis Visibility) []*Annotation {
	return c.annotations.get(vis)
}

// TypeAnnotations returns the class type annotations in the given
// visibility bucket.
func (c *Class) TypeAnnotations(vis Visibility) []*Annotation {
	return c.typeAnnotations.get(vis)
}

func (c *Class) String() string {
	return fmt.Sprintf("%s %s", c.kind, c.thisClass)
}

// ClassBuilder accumulates the full description of one class and, on
// Build, runs the rule engine and emits the immutable Class element.
// A builder moves through three states: open (accumulating), verified,
// and built. Once built it is write-frozen; further mutation panics.
type ClassBuilder struct {
	version             jvm.Version
	kind                Kind
	thisClass           desc.Class
	flags               flags.Set[flags.Class]
	signature           string
	superclass          desc.Class
	interfaces          []desc.Class
	sourceFile          string
	sourceDebug         string
	permitted           []desc.Class
	enclosingClass      desc.Class
	enclosingMethod     *EnclosingMethod
	innerClasses        []InnerClass
	nestHost            desc.Class
	nestMembers         []desc.Class
	fieldNames          []string
	fields              map[string]*FieldBuilder
	methods             []*MethodBuilder
	treatSuperSpecially bool
	anns                annotations
	typeAnns            annotations
	log                 zerolog.Logger
	built               bool
}

// NewClass starts a class builder. The superclass defaults to
// java/lang/Object and superclass dispatch defaults to the modern special
// treatment.
func NewClass(version jvm.Version, kind Kind, thisClass desc.Class) *ClassBuilder {
	return &ClassBuilder{
		version:             version,
		kind:                kind,
		thisClass:           thisClass,
		superclass:          desc.Object,
		treatSuperSpecially: true,
		fields:              map[string]*FieldBuilder{},
		log:                 zerolog.Nop(),
	}
}

// WithLogger attaches a logger; the rule engine traces its passes at
// debug level. The default logger is disabled.
func (b *ClassBuilder) WithLogger(log zerolog.Logger) *ClassBuilder {
	b.log = log
	return b
}

func (b *ClassBuilder) mutable() {
	if b.built {
		panic("element: class builder mutated after Build")
	}
}

// Version changes the target class-file version.
func (b *ClassBuilder) Version(v jvm.Version) *ClassBuilder {
	b.mutable()
	b.version = v
	return b
}

// Kind changes the class category.
func (b *ClassBuilder) Kind(k Kind) *ClassBuilder {
	b.mutable()
	b.kind = k
	return b
}

// Flags replaces the directly-set access flags. Kind-implied flags are
// merged in at build time and must not be set here.
func (b *ClassBuilder) Flags(fs flags.Set[flags.Class]) *ClassBuilder {
	b.mutable()
	b.flags = fs
	return b
}

// Signature sets the generic signature.
func (b *ClassBuilder) Signature(sig string) *ClassBuilder {
	b.mutable()
	b.signature = sig
	return b
}

// Superclass replaces the superclass reference.
func (b *ClassBuilder) Superclass(c desc.Class) *ClassBuilder {
	b.mutable()
	b.superclass = c
	return b
}

// Implements appends implemented interfaces.
func (b *ClassBuilder) Implements(interfaces ...desc.Class) *ClassBuilder {
	b.mutable()
	b.interfaces = append(b.interfaces, interfaces...)
	return b
}

// SourceFile sets the source-file name.
func (b *ClassBuilder) SourceFile(name string) *ClassBuilder {
	b.mutable()
	b.sourceFile = name
	return b
}

// SourceDebug sets the debug extension string.
func (b *ClassBuilder) SourceDebug(debug string) *ClassBuilder {
	b.mutable()
	b.sourceDebug = debug
	return b
}

// Permits appends permitted subclasses, sealing the class.
func (b *ClassBuilder) Permits(subclasses ...desc.Class) *ClassBuilder {
	b.mutable()
	b.permitted = append(b.permitted, subclasses...)
	return b
}

// EnclosingClass records the immediately enclosing class.
func (b *ClassBuilder) EnclosingClass(c desc.Class) *ClassBuilder {
	b.mutable()
	b.enclosingClass = c
	return b
}

// EnclosingMethod records the enclosing method of a local or anonymous
// class.
func (b *ClassBuilder) EnclosingMethod(c desc.Class, name string, methodType desc.Method) *ClassBuilder {
	b.mutable()
	b.enclosingMethod = &EnclosingMethod{class: c, methodName: name, methodType: methodType}
	return b
}

// InnerClass appends an inner-class table entry.
func (b *ClassBuilder) InnerClass(inner, outer desc.Class, innerName string, fs flags.Set[flags.Class]) *ClassBuilder {
	b.mutable()
	b.innerClasses = append(b.innerClasses, InnerClass{inner: inner, outer: outer, innerName: innerName, flags: fs})
	return b
}

// NestHost records the nest host.
func (b *ClassBuilder) NestHost(c desc.Class) *ClassBuilder {
	b.mutable()
	b.nestHost = c
	return b
}

// NestMembers appends nest members.
func (b *ClassBuilder) NestMembers(members ...desc.Class) *ClassBuilder {
	b.mutable()
	b.nestMembers = append(b.nestMembers, members...)
	return b
}

// TreatSuperSpecially sets the superclass-dispatch marker.
func (b *ClassBuilder) TreatSuperSpecially(v bool) *ClassBuilder {
	b.mutable()
	b.treatSuperSpecially = v
	return b
}

// Annotate inserts a class annotation into the chosen visibility bucket.
func (b *ClassBuilder) Annotate(vis Visibility, ann *Annotation) error {
	b.mutable()
	return b.anns.add(b.thisClass.Name(), vis, ann)
}

// AnnotateType inserts a class type annotation into the chosen visibility
// bucket.
func (b *ClassBuilder) AnnotateType(vis Visibility, ann *Annotation) error {
	b.mutable()
	return b.typeAnns.add(b.thisClass.Name(), vis, ann)
}

// NewField starts a field of the given name and type. Field names are
// unique within a class; redeclaring one panics.
func (b *ClassBuilder) NewField(name string, fieldType desc.Type) *FieldBuilder {
	b.mutable()
	if _, exists := b.fields[name]; exists {
		panic(fmt.Sprintf("element: field %s declared twice on %s", name, b.thisClass))
	}
	fb := &FieldBuilder{owner: b, name: name, fieldType: fieldType}
	b.fieldNames = append(b.fieldNames, name)
	b.fields[name] = fb
	b.log.Debug().Str("class", b.thisClass.Name()).Str("field", name).Msg("field added")
	return fb
}

// NewMethod starts a method of the given name and type.
func (b *ClassBuilder) NewMethod(name string, methodType desc.Method) *MethodBuilder {
	b.mutable()
	mb := &MethodBuilder{owner: b, name: name, methodType: methodType, body: code.NewBuilder()}
	b.methods = append(b.methods, mb)
	b.log.Debug().Str("class", b.thisClass.Name()).Str("method", name).Msg("method added")
	return mb
}

// effectiveFlags merges the directly-set flags with those implied by the
// kind and the treat-super-specially marker.
func (b *ClassBuilder) effectiveFlags() flags.Set[flags.Class] {
	fs := b.flags.Plus(b.kind.impliedFlags())
	if b.treatSuperSpecially && b.kind != KindInterface && b.kind != KindAnnotation && b.kind != KindModule {
		fs = fs.With(flags.ClassSuper)
	}
	return fs
}

// Build runs the rule engine over the accumulated state and, when every
// structural invariant holds, freezes the builder and emits the Class
// element. On failure no partial element is returned and the builder
// stays open so the caller can fix and retry.
func (b *ClassBuilder) Build() (*Class, error) {
	b.mutable()
	b.log.Debug().Str("class", b.thisClass.Name()).Msg("running pre-build verification")
	if err := b.verifyStateBeforeBuild(); err != nil {
		b.log.Debug().Err(err).Str("class", b.thisClass.Name()).Msg("verification failed")
		return nil, err
	}
	b.built = true

	fields := make(map[string]*Field, len(b.fields))
	for name, fb := range b.fields {
		fields[name] = fb.build()
	}
	methods := make([]*Method, len(b.methods))
	for i, mb := range b.methods {
		methods[i] = mb.build()
	}

	return &Class{
		version:             b.version,
		kind:                b.kind,
		thisClass:           b.thisClass,
		flags:               b.effectiveFlags(),
		signature:           b.signature,
		superclass:          b.superclass,
		interfaces:          append([]desc.Class(nil), b.interfaces...),
		sourceFile:          b.sourceFile,
		sourceDebug:         b.sourceDebug,
		permitted:           append([]desc.Class(nil), b.permitted...),
		enclosingClass:      b.enclosingClass,
		enclosingMethod:     b.enclosingMethod,
		innerClasses:        append([]InnerClass(nil), b.innerClasses...),
		nestHost:            b.nestHost,
		nestMembers:         append([]desc.Class(nil), b.nestMembers...),
		fieldNames:          append([]string(nil), b.fieldNames...),
		fields:              fields,
		methods:             methods,
		treatSuperSpecially: b.treatSuperSpecially,
		annotations:         b.anns,
		typeAnnotations:     b.typeAnns,
	}, nil
}
