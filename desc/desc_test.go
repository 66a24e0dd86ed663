package desc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeEquality(t *testing.T) {
	assert.Equal(t, TypeOf("I"), Int)
	assert.Equal(t, TypeOf("Ljava/lang/String;"), String.Type())
	assert.NotEqual(t, Int, Long)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "I", Int.String())
	assert.Equal(t, "V", Void.String())
	assert.Equal(t, "[J", ArrayOf(Long).String())
	assert.Equal(t, "[[I", ArrayOf(ArrayOf(Int)).String())
}

func TestTypeIsZero(t *testing.T) {
	var zero Type
	assert.True(t, zero.IsZero())
	assert.False(t, Int.IsZero())
}

func TestClass(t *testing.T) {
	c := ClassOf("com/example/Thing")
	assert.Equal(t, "com/example/Thing", c.Name())
	assert.Equal(t, "Lcom/example/Thing;", c.Type().String())
	assert.Equal(t, c, ClassOf("com/example/Thing"))

	var zero Class
	assert.True(t, zero.IsZero())
	assert.False(t, c.IsZero())
}

func TestWellKnownClasses(t *testing.T) {
	assert.Equal(t, "java/lang/Object", Object.Name())
	assert.Equal(t, "java/lang/Enum", Enum.Name())
	assert.Equal(t, "java/lang/Record", Record.Name())
}

func TestMethod(t *testing.T) {
	m := MethodOf(Void, Int, String.Type())
	assert.Equal(t, "(ILjava/lang/String;)V", m.String())
	assert.Equal(t, 2, m.ParamCount())
	assert.Equal(t, Void, m.Return())
	assert.Equal(t, m, MethodOf(Void, Int, String.Type()))
	assert.NotEqual(t, m, MethodOf(Void, Int))
}

func TestMethodNoParams(t *testing.T) {
	m := MethodOf(Int)
	assert.Equal(t, "()I", m.String())
	assert.Equal(t, 0, m.ParamCount())
}
