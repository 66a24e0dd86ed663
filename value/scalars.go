package value

import "strconv"

// String is a string literal value.
type String struct {
	value string
}

func NewString(v string) *String { return &String{value: v} }

func (s *String) Kind() Kind      { return STRING }
func (s *String) Value() string   { return s.value }
func (s *String) Inspect() string { return strconv.Quote(s.value) }
func (s *String) isValue()        {}
func (s *String) arrayElement()   {}
func (s *String) defaultValue()   {}

// Bool is a boolean literal value.
type Bool struct {
	value bool
}

func NewBool(v bool) *Bool { return &Bool{value: v} }

func (b *Bool) Kind() Kind      { return BOOL }
func (b *Bool) Value() bool     { return b.value }
func (b *Bool) Inspect() string { return strconv.FormatBool(b.value) }
func (b *Bool) isValue()        {}
func (b *Bool) arrayElement()   {}
func (b *Bool) defaultValue()   {}

// Char is a UTF-16 code unit literal value.
type Char struct {
	value rune
}

func NewChar(v rune) *Char { return &Char{value: v} }

func (c *Char) Kind() Kind      { return CHAR }
func (c *Char) Value() rune     { return c.value }
func (c *Char) Inspect() string { return strconv.QuoteRune(c.value) }
func (c *Char) isValue()        {}
func (c *Char) arrayElement()   {}
func (c *Char) defaultValue()   {}

// Byte is a signed 8-bit integer literal value.
type Byte struct {
	value int8
}

func NewByte(v int8) *Byte { return &Byte{value: v} }

func (b *Byte) Kind() Kind      { return BYTE }
func (b *Byte) Value() int8     { return b.value }
func (b *Byte) Inspect() string { return strconv.Itoa(int(b.value)) }
func (b *Byte) isValue()        {}
func (b *Byte) arrayElement()   {}
func (b *Byte) defaultValue()   {}

// Short is a signed 16-bit integer literal value.
type Short struct {
	value int16
}

func NewShort(v int16) *Short { return &Short{value: v} }

func (s *Short) Kind() Kind      { return SHORT }
func (s *Short) Value() int16    { return s.value }
func (s *Short) Inspect() string { return strconv.Itoa(int(s.value)) }
func (s *Short) isValue()        {}
func (s *Short) arrayElement()   {}
func (s *Short) defaultValue()   {}

// Int is a signed 32-bit integer literal value.
type Int struct {
	value int32
}

func NewInt(v int32) *Int { return &Int{value: v} }

func (i *Int) Kind() Kind      { return INT }
func (i *Int) Value() int32    { return i.value }
func (i *Int) Inspect() string { return strconv.Itoa(int(i.value)) }
func (i *Int) isValue()        {}
func (i *Int) arrayElement()   {}
func (i *Int) defaultValue()   {}

// Long is a signed 64-bit integer literal value.
type Long struct {
	value int64
}

func NewLong(v int64) *Long { return &Long{value: v} }

func (l *Long) Kind() Kind      { return LONG }
func (l *Long) Value() int64    { return l.value }
func (l *Long) Inspect() string { return strconv.FormatInt(l.value, 10) + "L" }
func (l *Long) isValue()        {}
func (l *Long) arrayElement()   {}
func (l *Long) defaultValue()   {}

// Float is a 32-bit floating point literal value.
type Float struct {
	value float32
}

func NewFloat(v float32) *Float { return &Float{value: v} }

func (f *Float) Kind() Kind     { return FLOAT }
func (f *Float) Value() float32 { return f.value }
func (f *Float) Inspect() string {
	return strconv.FormatFloat(float64(f.value), 'g', -1, 32) + "f"
}
func (f *Float) isValue()      {}
func (f *Float) arrayElement() {}
func (f *Float) defaultValue() {}

// Double is a 64-bit floating point literal value.
type Double struct {
	value float64
}

func NewDouble(v float64) *Double { return &Double{value: v} }

func (d *Double) Kind() Kind     { return DOUBLE }
func (d *Double) Value() float64 { return d.value }
func (d *Double) Inspect() string {
	return strconv.FormatFloat(d.value, 'g', -1, 64)
}
func (d *Double) isValue()      {}
func (d *Double) arrayElement() {}
func (d *Double) defaultValue() {}
