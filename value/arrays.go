package value

import (
	"strconv"
	"strings"
)

func renderArray(parts []string) string {
	return "{" + strings.Join(parts, ", ") + "}"
}

// BoolArray is an array of boolean literals.
type BoolArray struct {
	values []bool
}

func NewBoolArray(vs ...bool) *BoolArray {
	return &BoolArray{values: append([]bool(nil), vs...)}
}

func (a *BoolArray) Kind() Kind     { return BOOL_ARRAY }
func (a *BoolArray) Values() []bool { return append([]bool(nil), a.values...) }
func (a *BoolArray) Len() int       { return len(a.values) }
func (a *BoolArray) Inspect() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.FormatBool(v)
	}
	return renderArray(parts)
}
func (a *BoolArray) isValue()      {}
func (a *BoolArray) defaultValue() {}

// CharArray is an array of char literals.
type CharArray struct {
	values []rune
}

func NewCharArray(vs ...rune) *CharArray {
	return &CharArray{values: append([]rune(nil), vs...)}
}

func (a *CharArray) Kind() Kind     { return CHAR_ARRAY }
func (a *CharArray) Values() []rune { return append([]rune(nil), a.values...) }
func (a *CharArray) Len() int       { return len(a.values) }
func (a *CharArray) Inspect() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.QuoteRune(v)
	}
	return renderArray(parts)
}
func (a *CharArray) isValue()      {}
func (a *CharArray) defaultValue() {}

// ByteArray is an array of byte literals.
type ByteArray struct {
	values []int8
}

func NewByteArray(vs ...int8) *ByteArray {
	return &ByteArray{values: append([]int8(nil), vs...)}
}

func (a *ByteArray) Kind() Kind     { return BYTE_ARRAY }
func (a *ByteArray) Values() []int8 { return append([]int8(nil), a.values...) }
func (a *ByteArray) Len() int       { return len(a.values) }
func (a *ByteArray) Inspect() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.Itoa(int(v))
	}
	return renderArray(parts)
}
func (a *ByteArray) isValue()      {}
func (a *ByteArray) defaultValue() {}

// ShortArray is an array of short literals.
type ShortArray struct {
	values []int16
}

func NewShortArray(vs ...int16) *ShortArray {
	return &ShortArray{values: append([]int16(nil), vs...)}
}

func (a *ShortArray) Kind() Kind      { return SHORT_ARRAY }
func (a *ShortArray) Values() []int16 { return append([]int16(nil), a.values...) }
func (a *ShortArray) Len() int        { return len(a.values) }
func (a *ShortArray) Inspect() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.Itoa(int(v))
	}
	return renderArray(parts)
}
func (a *ShortArray) isValue()      {}
func (a *ShortArray) defaultValue() {}

// IntArray is an array of int literals.
type IntArray struct {
	values []int32
}

func NewIntArray(vs ...int32) *IntArray {
	return &IntArray{values: append([]int32(nil), vs...)}
}

func (a *IntArray) Kind() Kind      { return INT_ARRAY }
func (a *IntArray) Values() []int32 { return append([]int32(nil), a.values...) }
func (a *IntArray) Len() int        { return len(a.values) }
func (a *IntArray) Inspect() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.Itoa(int(v))
	}
	return renderArray(parts)
}
func (a *IntArray) isValue()      {}
func (a *IntArray) defaultValue() {}

// LongArray is an array of long literals.
type LongArray struct {
	values []int64
}

func NewLongArray(vs ...int64) *LongArray {
	return &LongArray{values: append([]int64(nil), vs...)}
}

func (a *LongArray) Kind() Kind      { return LONG_ARRAY }
func (a *LongArray) Values() []int64 { return append([]int64(nil), a.values...) }
func (a *LongArray) Len() int        { return len(a.values) }
func (a *LongArray) Inspect() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.FormatInt(v, 10) + "L"
	}
	return renderArray(parts)
}
func (a *LongArray) isValue()      {}
func (a *LongArray) defaultValue() {}

// FloatArray is an array of float literals.
type FloatArray struct {
	values []float32
}

func NewFloatArray(vs ...float32) *FloatArray {
	return &FloatArray{values: append([]float32(nil), vs...)}
}

func (a *FloatArray) Kind() Kind        { return FLOAT_ARRAY }
func (a *FloatArray) Values() []float32 { return append([]float32(nil), a.values...) }
func (a *FloatArray) Len() int          { return len(a.values) }
func (a *FloatArray) Inspect() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.FormatFloat(float64(v), 'g', -1, 32) + "f"
	}
	return renderArray(parts)
}
func (a *FloatArray) isValue()      {}
func (a *FloatArray) defaultValue() {}

// DoubleArray is an array of double literals.
type DoubleArray struct {
	values []float64
}

func NewDoubleArray(vs ...float64) *DoubleArray {
	return &DoubleArray{values: append([]float64(nil), vs...)}
}

func (a *DoubleArray) Kind() Kind        { return DOUBLE_ARRAY }
func (a *DoubleArray) Values() []float64 { return append([]float64(nil), a.values...) }
func (a *DoubleArray) Len() int          { return len(a.values) }
func (a *DoubleArray) Inspect() string {
	parts := make([]string, len(a.values))
	for i, v := range a.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return renderArray(parts)
}
func (a *DoubleArray) isValue()      {}
func (a *DoubleArray) defaultValue() {}

// Array is a heterogeneous array of non-array values. The element type
// bound enforces the format's rule that arrays do not nest directly.
type Array struct {
	elements []ArrayElement
}

func NewArray(elements ...ArrayElement) *Array {
	return &Array{elements: append([]ArrayElement(nil), elements...)}
}

func (a *Array) Kind() Kind { return ARRAY }
func (a *Array) Elements() []ArrayElement {
	return append([]ArrayElement(nil), a.elements...)
}
func (a *Array) Len() int { return len(a.elements) }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.elements))
	for i, v := range a.elements {
		parts[i] = v.Inspect()
	}
	return renderArray(parts)
}
func (a *Array) isValue()      {}
func (a *Array) defaultValue() {}
