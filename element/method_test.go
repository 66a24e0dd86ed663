package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Olivki/asmkt-sub001/code"
	"github.com/Olivki/asmkt-sub001/desc"
	"github.com/Olivki/asmkt-sub001/flags"
	"github.com/Olivki/asmkt-sub001/jvm"
)

func TestMethodMetadata(t *testing.T) {
	b := NewClass(jvm.V17, KindClass, desc.ClassOf("com/example/Thing"))
	ioException := desc.ClassOf("java/io/IOException")

	var start, end, handler *code.Label
	b.NewMethod("copy", desc.MethodOf(desc.Void, desc.String.Type(), desc.String.Type())).
		Flags(flags.MethodPublic.AsSet()).
		Signature("(Ljava/lang/String;Ljava/lang/String;)V").
		Throws(ioException).
		Param("source", flags.ParamFinal.AsSet()).
		Param("target", flags.ParamFinal.AsSet()).
		WithBody(func(cb *code.Builder) {
			start = cb.NewLabel()
			end = cb.NewLabel()
			handler = cb.NewLabel()
			cb.Mark(start)
			cb.Emit(code.NOP)
			cb.Mark(end)
			cb.Emit(code.RETURN)
			cb.Mark(handler)
			cb.Emit(code.ATHROW)
		}).
		Catch(start, end, handler, ioException).
		Local("source", desc.String.Type(), "", start, end, 1)

	built, err := b.Build()
	require.NoError(t, err)
	require.Len(t, built.Methods(), 1)
	m := built.Methods()[0]

	assert.Equal(t, "com/example/Thing.copy(Ljava/lang/String;Ljava/lang/String;)V", m.String())
	assert.Equal(t, []desc.Class{ioException}, m.Exceptions())

	params := m.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "source", params[0].Name())
	assert.True(t, params[0].Flags().Contains(flags.ParamFinal))

	regions := m.TryCatchRegions()
	require.Len(t, regions, 1)
	assert.Same(t, start, regions[0].Start())
	assert.Same(t, handler, regions[0].Handler())
	assert.Equal(t, ioException, regions[0].CatchType())
	assert.False(t, regions[0].CatchType().IsZero())

	locals := m.Locals()
	require.Len(t, locals, 1)
	assert.Equal(t, 1, locals[0].Index())
	assert.Equal(t, desc.String.Type(), locals[0].Type())
}

func TestCatchAll(t *testing.T) {
	b := NewClass(jvm.V17, KindClass, desc.ClassOf("com/example/Thing"))
	var start, end, handler *code.Label
	b.NewMethod("guard", desc.MethodOf(desc.Void)).
		Flags(flags.MethodPublic.AsSet()).
		WithBody(func(cb *code.Builder) {
			start = cb.NewLabel()
			end = cb.NewLabel()
			handler = cb.NewLabel()
			cb.Mark(start)
			cb.Emit(code.NOP)
			cb.Mark(end)
			cb.Mark(handler)
			cb.Emit(code.RETURN)
		}).
		CatchAll(start, end, handler)

	built, err := b.Build()
	require.NoError(t, err)
	regions := built.Methods()[0].TryCatchRegions()
	require.Len(t, regions, 1)
	assert.True(t, regions[0].CatchType().IsZero())
}

func TestParamOverrideByName(t *testing.T) {
	b := NewClass(jvm.V17, KindClass, desc.ClassOf("com/example/Thing"))
	m := b.NewMethod("run", desc.MethodOf(desc.Void, desc.Int)).
		Flags(flags.MethodPublic.AsSet()).
		Param("n", flags.Of[flags.Parameter]()).
		Param("n", flags.ParamFinal.AsSet()).
		WithBody(func(cb *code.Builder) {
			cb.Emit(code.RETURN)
		})
	_ = m

	built, err := b.Build()
	require.NoError(t, err)
	params := built.Methods()[0].Parameters()
	require.Len(t, params, 1)
	assert.True(t, params[0].Flags().Contains(flags.ParamFinal))
}

func TestWithBodyRunsExactlyOnce(t *testing.T) {
	b := NewClass(jvm.V17, KindClass, desc.ClassOf("com/example/Thing"))
	calls := 0
	mb := b.NewMethod("run", desc.MethodOf(desc.Void)).
		WithBody(func(cb *code.Builder) {
			calls++
			cb.Emit(code.RETURN)
		})
	assert.Equal(t, 1, calls)

	assert.Panics(t, func() {
		mb.WithBody(func(cb *code.Builder) {})
	})
	assert.Equal(t, 1, calls)
}

func TestMethodBodyNeverNil(t *testing.T) {
	b := NewClass(jvm.V17, KindAbstractClass, desc.ClassOf("com/example/Base"))
	b.NewMethod("run", desc.MethodOf(desc.Void)).
		Flags(flags.MethodAbstract.AsSet())

	built, err := b.Build()
	require.NoError(t, err)
	body := built.Methods()[0].Body()
	require.NotNil(t, body)
	assert.True(t, body.Empty())
}
