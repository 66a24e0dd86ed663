// Package code models a method body as an abstract instruction sequence:
// opcodes, operands, and labels. The sequence stays abstract on purpose.
// Byte emission, label resolution, and stack-map computation belong to the
// external encoder; the builder core only needs to know whether a body is
// empty and whether it consists solely of labels.
package code

// Opcode is an integer opcode that indicates a JVM instruction.
type Opcode uint8

// The opcode subset the builder emits in practice. The encoder accepts the
// full instruction set; the values here are the format's own.
const (
	NOP          Opcode = 0x00
	ACONST_NULL  Opcode = 0x01
	ICONST_0     Opcode = 0x03
	ICONST_1     Opcode = 0x04
	LDC          Opcode = 0x12
	ILOAD        Opcode = 0x15
	ALOAD        Opcode = 0x19
	ALOAD_0      Opcode = 0x2a
	ISTORE       Opcode = 0x36
	ASTORE       Opcode = 0x3a
	POP          Opcode = 0x57
	DUP          Opcode = 0x59
	IADD         Opcode = 0x60
	GOTO         Opcode = 0xa7
	IRETURN      Opcode = 0xac
	LRETURN      Opcode = 0xad
	FRETURN      Opcode = 0xae
	DRETURN      Opcode = 0xaf
	ARETURN      Opcode = 0xb0
	RETURN       Opcode = 0xb1
	GETSTATIC    Opcode = 0xb2
	PUTSTATIC    Opcode = 0xb3
	GETFIELD     Opcode = 0xb4
	PUTFIELD     Opcode = 0xb5
	INVOKEVIRT   Opcode = 0xb6
	INVOKESPEC   Opcode = 0xb7
	INVOKESTATIC Opcode = 0xb8
	NEW          Opcode = 0xbb
	ATHROW       Opcode = 0xbf
)

var opcodeNames = map[Opcode]string{
	NOP:          "nop",
	ACONST_NULL:  "aconst_null",
	ICONST_0:     "iconst_0",
	ICONST_1:     "iconst_1",
	LDC:          "ldc",
	ILOAD:        "iload",
	ALOAD:        "aload",
	ALOAD_0:      "aload_0",
	ISTORE:       "istore",
	ASTORE:       "astore",
	POP:          "pop",
	DUP:          "dup",
	IADD:         "iadd",
	GOTO:         "goto",
	IRETURN:      "ireturn",
	LRETURN:      "lreturn",
	FRETURN:      "freturn",
	DRETURN:      "dreturn",
	ARETURN:      "areturn",
	RETURN:       "return",
	GETSTATIC:    "getstatic",
	PUTSTATIC:    "putstatic",
	GETFIELD:     "getfield",
	PUTFIELD:     "putfield",
	INVOKEVIRT:   "invokevirtual",
	INVOKESPEC:   "invokespecial",
	INVOKESTATIC: "invokestatic",
	NEW:          "new",
	ATHROW:       "athrow",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "unknown"
}
