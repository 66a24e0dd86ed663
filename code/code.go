package code

import "fmt"

// Instr is one entry in an instruction sequence: either an *Op or a
// *Label placement.
type Instr interface {
	instr()
	String() string
}

// Label marks a position in the instruction sequence. Labels have
// identity: two labels are the same position only if they are the same
// pointer. A label is minted unplaced by Builder.NewLabel and placed by
// Builder.Mark.
type Label struct {
	name   string
	placed bool
}

func (l *Label) instr() {}

// Name returns the label's debug name.
func (l *Label) Name() string { return l.name }

// Placed reports whether the label has been marked into a sequence.
func (l *Label) Placed() bool { return l.placed }

func (l *Label) String() string {
	return l.name + ":"
}

// Op is a single instruction with its operands. Operands reference
// constant-pool entries, locals, or labels by index; their interpretation
// is the encoder's concern.
type Op struct {
	Opcode   Opcode
	Operands []int32
	Target   *Label // branch target, nil for non-branch instructions
}

func (o *Op) instr() {}

func (o *Op) String() string {
	if o.Target != nil {
		return fmt.Sprintf("%s %s", o.Opcode, o.Target.Name())
	}
	if len(o.Operands) > 0 {
		return fmt.Sprintf("%s %v", o.Opcode, o.Operands)
	}
	return o.Opcode.String()
}

// Code is a frozen instruction sequence.
type Code struct {
	instrs []Instr
}

// Instructions returns the instruction sequence.
func (c *Code) Instructions() []Instr {
	return append([]Instr(nil), c.instrs...)
}

// Len returns the number of entries in the sequence.
func (c *Code) Len() int {
	return len(c.instrs)
}

// Empty reports whether the sequence has no entries at all.
func (c *Code) Empty() bool {
	return len(c.instrs) == 0
}

// LabelsOnly reports whether the sequence contains no instructions other
// than label placements. An empty sequence is labels-only.
func (c *Code) LabelsOnly() bool {
	for _, in := range c.instrs {
		if _, ok := in.(*Label); !ok {
			return false
		}
	}
	return true
}

// Builder accumulates an instruction sequence for one method body.
type Builder struct {
	instrs []Instr
	labels int
}

// NewBuilder returns an empty instruction sequence builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewLabel mints a fresh unplaced label.
func (b *Builder) NewLabel() *Label {
	b.labels++
	return &Label{name: fmt.Sprintf("L%d", b.labels)}
}

// Mark places the label at the current position. Marking the same label
// twice panics: a label is one position.
func (b *Builder) Mark(l *Label) *Builder {
	if l.placed {
		panic(fmt.Sprintf("code: label %s marked twice", l.name))
	}
	l.placed = true
	b.instrs = append(b.instrs, l)
	return b
}

// Emit appends an instruction with the given operands.
func (b *Builder) Emit(op Opcode, operands ...int32) *Builder {
	b.instrs = append(b.instrs, &Op{Opcode: op, Operands: operands})
	return b
}

// Branch appends a branch instruction targeting the given label.
func (b *Builder) Branch(op Opcode, target *Label) *Builder {
	b.instrs = append(b.instrs, &Op{Opcode: op, Target: target})
	return b
}

// Len returns the number of entries emitted so far.
func (b *Builder) Len() int {
	return len(b.instrs)
}

// Code freezes the accumulated sequence.
func (b *Builder) Code() *Code {
	return &Code{instrs: append([]Instr(nil), b.instrs...)}
}
