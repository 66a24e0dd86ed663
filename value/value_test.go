package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Olivki/asmkt-sub001/desc"
)

// Compile-time checks that the subset interfaces cover exactly the
// intended variants. Array variants must not satisfy ArrayElement.
var (
	_ ArrayElement = (*String)(nil)
	_ ArrayElement = (*Bool)(nil)
	_ ArrayElement = (*Char)(nil)
	_ ArrayElement = (*Byte)(nil)
	_ ArrayElement = (*Short)(nil)
	_ ArrayElement = (*Int)(nil)
	_ ArrayElement = (*Long)(nil)
	_ ArrayElement = (*Float)(nil)
	_ ArrayElement = (*Double)(nil)
	_ ArrayElement = (*ClassRef)(nil)
	_ ArrayElement = (*EnumRef)(nil)
	_ ArrayElement = (*AnnotationRef)(nil)

	_ Default = (*String)(nil)
	_ Default = (*Array)(nil)
	_ Default = (*IntArray)(nil)
	_ Default = (*AnnotationRef)(nil)
)

func TestScalarKinds(t *testing.T) {
	tests := []struct {
		v        Value
		expected Kind
	}{
		{NewString("x"), STRING},
		{NewBool(true), BOOL},
		{NewChar('a'), CHAR},
		{NewByte(1), BYTE},
		{NewShort(2), SHORT},
		{NewInt(3), INT},
		{NewLong(4), LONG},
		{NewFloat(5), FLOAT},
		{NewDouble(6), DOUBLE},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.v.Kind())
	}
}

func TestScalarInspect(t *testing.T) {
	tests := []struct {
		v        Value
		expected string
	}{
		{NewString("hi"), `"hi"`},
		{NewBool(false), "false"},
		{NewChar('a'), "'a'"},
		{NewByte(-1), "-1"},
		{NewShort(300), "300"},
		{NewInt(42), "42"},
		{NewLong(42), "42L"},
		{NewFloat(1.5), "1.5f"},
		{NewDouble(2.5), "2.5"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, tc.v.Inspect())
	}
}

func TestRefInspect(t *testing.T) {
	cls := NewClassRef(desc.ClassOf("java/lang/String"))
	assert.Equal(t, CLASS, cls.Kind())
	assert.Equal(t, "java/lang/String.class", cls.Inspect())

	enum := NewEnumRef(desc.ClassOf("java/util/concurrent/TimeUnit"), "SECONDS")
	assert.Equal(t, ENUM, enum.Kind())
	assert.Equal(t, "java/util/concurrent/TimeUnit.SECONDS", enum.Inspect())
	assert.Equal(t, "SECONDS", enum.EntryName())
}

func TestPrimitiveArrays(t *testing.T) {
	a := NewIntArray(1, 2, 3)
	assert.Equal(t, INT_ARRAY, a.Kind())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "{1, 2, 3}", a.Inspect())

	l := NewLongArray(7)
	assert.Equal(t, "{7L}", l.Inspect())

	b := NewBoolArray(true, false)
	assert.Equal(t, "{true, false}", b.Inspect())
}

func TestArrayValuesAreCopied(t *testing.T) {
	src := []int32{1, 2}
	a := NewIntArray(src...)
	src[0] = 99
	assert.Equal(t, []int32{1, 2}, a.Values())

	got := a.Values()
	got[1] = 99
	assert.Equal(t, []int32{1, 2}, a.Values())
}

func TestHeterogeneousArray(t *testing.T) {
	a := NewArray(
		NewString("x"),
		NewClassRef(desc.ClassOf("java/lang/Object")),
	)
	assert.Equal(t, ARRAY, a.Kind())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, `{"x", java/lang/Object.class}`, a.Inspect())
}
