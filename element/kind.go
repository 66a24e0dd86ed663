// Package element provides the class, field, method, and annotation model:
// mutable builders that accumulate state, the rule engine that checks the
// format's structural invariants, and the immutable element records a
// successful Build emits for the encoder.
package element

import "github.com/Olivki/asmkt-sub001/flags"

// Kind is the class category. It gates which flags, supertypes, and
// members the rule engine accepts, and contributes the category's implied
// access flags at build time.
type Kind int

const (
	// KindClass is a plain concrete class.
	KindClass Kind = iota
	// KindAbstractClass is an abstract class.
	KindAbstractClass
	// KindInterface is an interface.
	KindInterface
	// KindAnnotation is an annotation interface.
	KindAnnotation
	// KindEnum is an enum class.
	KindEnum
	// KindRecord is a record class.
	KindRecord
	// KindModule is a module descriptor.
	KindModule
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindAbstractClass:
		return "abstract class"
	case KindInterface:
		return "interface"
	case KindAnnotation:
		return "annotation"
	case KindEnum:
		return "enum"
	case KindRecord:
		return "record"
	case KindModule:
		return "module"
	default:
		return "unknown"
	}
}

// impliedFlags returns the access flags the kind contributes to the
// class's flag set when the element is built.
func (k Kind) impliedFlags() flags.Set[flags.Class] {
	switch k {
	case KindAbstractClass:
		return flags.ClassAbstract.AsSet()
	case KindInterface:
		return flags.ClassInterface.Plus(flags.ClassAbstract)
	case KindAnnotation:
		return flags.Of(flags.ClassAnnotation, flags.ClassInterface, flags.ClassAbstract)
	case KindEnum:
		return flags.ClassEnum.AsSet()
	case KindRecord:
		return flags.ClassFinal.AsSet()
	case KindModule:
		return flags.ClassModule.AsSet()
	default:
		return 0
	}
}

// allowsFields reports whether classes of this kind may declare fields.
func (k Kind) allowsFields() bool {
	switch k {
	case KindInterface, KindAnnotation, KindModule:
		return false
	default:
		return true
	}
}

// allowsMethods reports whether classes of this kind may declare methods.
func (k Kind) allowsMethods() bool {
	return k != KindModule
}

// allowsPermittedSubtypes reports whether classes of this kind may be
// sealed.
func (k Kind) allowsPermittedSubtypes() bool {
	switch k {
	case KindClass, KindAbstractClass, KindInterface:
		return true
	default:
		return false
	}
}
