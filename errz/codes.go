package errz

// ErrorCode is a stable identifier for a validation error kind, suitable
// for documentation lookup and test assertions. The E4xxx band is the
// structural-validation band.
type ErrorCode string

const (
	E4001 ErrorCode = "E4001" // Redundant kind flag
	E4002 ErrorCode = "E4002" // Supertype mismatch
	E4003 ErrorCode = "E4003" // Version too low
	E4004 ErrorCode = "E4004" // Kind not allowed
	E4005 ErrorCode = "E4005" // Interface field modifier violation
	E4006 ErrorCode = "E4006" // Abstract method not allowed
	E4007 ErrorCode = "E4007" // Missing method body
	E4008 ErrorCode = "E4008" // Abstract method has body
	E4009 ErrorCode = "E4009" // Duplicate annotation
	E4010 ErrorCode = "E4010" // Value shape error
	E4011 ErrorCode = "E4011" // Default value on non-annotation
)

var kindCodes = map[ErrorKind]ErrorCode{
	ErrRedundantKindFlag:           E4001,
	ErrSupertypeMismatch:           E4002,
	ErrVersionTooLow:               E4003,
	ErrKindNotAllowed:              E4004,
	ErrInterfaceFieldModifier:      E4005,
	ErrAbstractMethodNotAllowed:    E4006,
	ErrMissingMethodBody:           E4007,
	ErrAbstractMethodHasBody:       E4008,
	ErrDuplicateAnnotation:         E4009,
	ErrValueShape:                  E4010,
	ErrDefaultValueOnNonAnnotation: E4011,
}
