package flags

// The JVM access-flag tables, one block per entity kind. Values are the
// bit masks defined by the class-file format.

// Class access flags.
var (
	ClassPublic     = Flag[Class](0x0001)
	ClassFinal      = Flag[Class](0x0010)
	ClassSuper      = Flag[Class](0x0020)
	ClassInterface  = Flag[Class](0x0200)
	ClassAbstract   = Flag[Class](0x0400)
	ClassSynthetic  = Flag[Class](0x1000)
	ClassAnnotation = Flag[Class](0x2000)
	ClassEnum       = Flag[Class](0x4000)
	ClassModule     = Flag[Class](0x8000)
)

// Field access flags.
var (
	FieldPublic    = Flag[Field](0x0001)
	FieldPrivate   = Flag[Field](0x0002)
	FieldProtected = Flag[Field](0x0004)
	FieldStatic    = Flag[Field](0x0008)
	FieldFinal     = Flag[Field](0x0010)
	FieldVolatile  = Flag[Field](0x0040)
	FieldTransient = Flag[Field](0x0080)
	FieldSynthetic = Flag[Field](0x1000)
	FieldEnum      = Flag[Field](0x4000)
)

// Method access flags.
var (
	MethodPublic       = Flag[Method](0x0001)
	MethodPrivate      = Flag[Method](0x0002)
	MethodProtected    = Flag[Method](0x0004)
	MethodStatic       = Flag[Method](0x0008)
	MethodFinal        = Flag[Method](0x0010)
	MethodSynchronized = Flag[Method](0x0020)
	MethodBridge       = Flag[Method](0x0040)
	MethodVarargs      = Flag[Method](0x0080)
	MethodNative       = Flag[Method](0x0100)
	MethodAbstract     = Flag[Method](0x0400)
	MethodStrict       = Flag[Method](0x0800)
	MethodSynthetic    = Flag[Method](0x1000)
)

// Module access flags.
var (
	ModuleOpen      = Flag[Module](0x0020)
	ModuleSynthetic = Flag[Module](0x1000)
	ModuleMandated  = Flag[Module](0x8000)
)

// Method-parameter access flags.
var (
	ParamFinal     = Flag[Parameter](0x0010)
	ParamSynthetic = Flag[Parameter](0x1000)
	ParamMandated  = Flag[Parameter](0x8000)
)
