package element

import (
	"github.com/Olivki/asmkt-sub001/desc"
	"github.com/Olivki/asmkt-sub001/errz"
	"github.com/Olivki/asmkt-sub001/flags"
	"github.com/Olivki/asmkt-sub001/jvm"
)

// The class flags that correspond one-to-one to a class kind. Setting one
// directly is always a mistake: the kind drives these bits.
var kindFlags = []struct {
	flag flags.Flag[flags.Class]
	name string
	kind Kind
}{
	{flags.ClassInterface, "INTERFACE", KindInterface},
	{flags.ClassAnnotation, "ANNOTATION", KindAnnotation},
	{flags.ClassEnum, "ENUM", KindEnum},
	{flags.ClassModule, "MODULE", KindModule},
}

// VerifyState checks the invariants that can be judged from the kind,
// version, flags, and supertype alone. It may be called any number of
// times while the builder is open; with unchanged state the outcome and
// diagnostics are identical each time. Build runs it again, so no
// violation can survive into an element.
func (b *ClassBuilder) VerifyState() error {
	b.log.Debug().Str("class", b.thisClass.Name()).Msg("running eager verification")
	var err error
	entity := b.thisClass.Name()

	for _, kf := range kindFlags {
		if b.flags.Contains(kf.flag) {
			err = errz.Append(err, errz.New(errz.ErrRedundantKindFlag, entity,
				"the %s flag may not be set directly; set the builder's kind to %s instead",
				kf.name, kf.kind))
		}
	}

	switch b.kind {
	case KindEnum:
		if b.superclass != desc.Enum {
			err = errz.Append(err, errz.New(errz.ErrSupertypeMismatch, entity,
				"enum classes must extend %s, not %s", desc.Enum, b.superclass))
		}
	case KindModule:
		if !b.version.AtLeast(jvm.VersionModules) {
			err = errz.Append(err, errz.New(errz.ErrVersionTooLow, entity,
				"modules require class-file version %s or newer, have %s",
				jvm.VersionModules, b.version))
		}
	case KindRecord:
		// Both violations are reported independently.
		if !b.version.AtLeast(jvm.VersionRecords) {
			err = errz.Append(err, errz.New(errz.ErrVersionTooLow, entity,
				"records require class-file version %s or newer, have %s",
				jvm.VersionRecords, b.version))
		}
		if b.superclass != desc.Record {
			err = errz.Append(err, errz.New(errz.ErrSupertypeMismatch, entity,
				"record classes must extend %s, not %s", desc.Record, b.superclass))
		}
	}

	return err
}

// verifyStateBeforeBuild runs the full rule set immediately before
// snapshot emission. Check order is fixed (class state, then fields in
// declaration order, then methods in declaration order) so diagnostics
// are reproducible.
func (b *ClassBuilder) verifyStateBeforeBuild() error {
	err := b.VerifyState()
	entity := b.thisClass.Name()

	if len(b.permitted) > 0 {
		if !b.version.AtLeast(jvm.VersionSealed) {
			err = errz.Append(err, errz.New(errz.ErrVersionTooLow, entity,
				"permitted subtypes require class-file version %s or newer, have %s",
				jvm.VersionSealed, b.version))
		}
		if !b.kind.allowsPermittedSubtypes() {
			err = errz.Append(err, errz.New(errz.ErrKindNotAllowed, entity,
				"permitted subtypes are not allowed on a %s", b.kind))
		}
	}

	if len(b.fieldNames) > 0 && !b.kind.allowsFields() {
		err = errz.Append(err, errz.New(errz.ErrKindNotAllowed, entity,
			"fields are not allowed on a %s", b.kind))
	}
	for _, name := range b.fieldNames {
		fb := b.fields[name]
		if b.kind == KindInterface {
			required := flags.Of(flags.FieldPublic, flags.FieldStatic, flags.FieldFinal)
			if fb.flags&required != required {
				err = errz.Append(err, errz.New(errz.ErrInterfaceFieldModifier, fb.entity(),
					"interface fields must be public, static, and final"))
			}
		}
		if ferr := fb.verify(); ferr != nil {
			err = errz.Append(err, ferr)
		}
	}

	if b.kind == KindInterface && b.superclass != desc.Object {
		err = errz.Append(err, errz.New(errz.ErrSupertypeMismatch, entity,
			"interfaces must extend %s, not %s", desc.Object, b.superclass))
	}
	if b.kind == KindRecord && b.superclass != desc.Record {
		err = errz.Append(err, errz.New(errz.ErrSupertypeMismatch, entity,
			"record classes must extend %s, not %s", desc.Record, b.superclass))
	}

	if len(b.methods) > 0 && !b.kind.allowsMethods() {
		err = errz.Append(err, errz.New(errz.ErrKindNotAllowed, entity,
			"methods are not allowed on a %s", b.kind))
	}
	abstractOK := b.canHoldAbstractMethods()
	for _, mb := range b.methods {
		abstract := mb.flags.Contains(flags.MethodAbstract)
		body := mb.body.Code()
		switch {
		case abstract && !abstractOK:
			err = errz.Append(err, errz.New(errz.ErrAbstractMethodNotAllowed, mb.entity(),
				"abstract methods require an abstract class or interface, not a %s", b.kind))
		case !abstract && body.Empty():
			err = errz.Append(err, errz.New(errz.ErrMissingMethodBody, mb.entity(),
				"non-abstract methods must have a body"))
		case abstract && !body.LabelsOnly():
			err = errz.Append(err, errz.New(errz.ErrAbstractMethodHasBody, mb.entity(),
				"abstract methods may not have a body"))
		}
		if mb.defaultValue != nil && b.kind != KindAnnotation {
			err = errz.Append(err, errz.New(errz.ErrDefaultValueOnNonAnnotation, mb.entity(),
				"annotation default values require an annotation class, not a %s", b.kind))
		}
	}

	return err
}

// canHoldAbstractMethods reports whether the class, given its kind and
// directly-set flags, may declare abstract methods.
func (b *ClassBuilder) canHoldAbstractMethods() bool {
	if b.kind == KindAbstractClass || b.kind == KindInterface {
		return true
	}
	effective := b.effectiveFlags()
	return effective.Contains(flags.ClassAbstract) || effective.Contains(flags.ClassInterface)
}
