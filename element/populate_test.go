package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Olivki/asmkt-sub001/desc"
	"github.com/Olivki/asmkt-sub001/errz"
	"github.com/Olivki/asmkt-sub001/value"
)

// Mirror types used across the population tests.

type retentionPolicy string

func (p retentionPolicy) EnumType() desc.Class {
	return desc.ClassOf("java/lang/annotation/RetentionPolicy")
}

func (p retentionPolicy) EnumName() string { return string(p) }

type retention struct {
	Value retentionPolicy
}

func (retention) AnnotationType() desc.Class {
	return desc.ClassOf("java/lang/annotation/Retention")
}

type webRoute struct {
	Path    string
	Methods []string `classfile:"allowedMethods"`
	Timeout int64
	Filter  desc.Class
	Meta    retention
}

func (webRoute) AnnotationType() desc.Class {
	return desc.ClassOf("com/example/WebRoute")
}

func TestPopulateScalarAndNested(t *testing.T) {
	b := NewAnnotation(webRoute{}.AnnotationType())
	err := Populate(b, webRoute{
		Path:    "/users",
		Methods: []string{"GET", "POST"},
		Timeout: 30,
		Filter:  desc.ClassOf("com/example/AuthFilter"),
		Meta:    retention{Value: "RUNTIME"},
	})
	require.NoError(t, err)
	ann := b.Build()

	assert.Equal(t, []string{"path", "allowedMethods", "timeout", "filter", "meta"}, ann.Names())

	path, ok := ann.Value("path")
	require.True(t, ok)
	require.IsType(t, (*value.String)(nil), path)
	assert.Equal(t, "/users", path.(*value.String).Value())

	methods, ok := ann.Value("allowedMethods")
	require.True(t, ok)
	require.IsType(t, (*value.Array)(nil), methods)
	assert.Equal(t, `{"GET", "POST"}`, methods.Inspect())

	timeout, _ := ann.Value("timeout")
	require.IsType(t, (*value.Long)(nil), timeout)

	filter, _ := ann.Value("filter")
	require.IsType(t, (*value.ClassRef)(nil), filter)
	assert.Equal(t, "com/example/AuthFilter", filter.(*value.ClassRef).Class().Name())

	meta, _ := ann.Value("meta")
	ref, ok := meta.(*value.AnnotationRef)
	require.True(t, ok)
	nested, ok := ref.Nested().(*Annotation)
	require.True(t, ok)
	assert.Equal(t, "java/lang/annotation/Retention", nested.AnnotationType().Name())

	policy, ok := nested.Value("value")
	require.True(t, ok)
	enum, ok := policy.(*value.EnumRef)
	require.True(t, ok)
	assert.Equal(t, "RUNTIME", enum.EntryName())
	assert.Equal(t, "java/lang/annotation/RetentionPolicy", enum.EnumType().Name())
}

func TestPopulatePrimitiveShapes(t *testing.T) {
	type sample struct {
		Enabled bool
		B       int8
		S       int16
		I       int32
		L       int64
		N       int
		F       float32
		D       float64
		Bits    []int64
	}
	b := NewAnnotation(desc.ClassOf("com/example/Sample"))
	err := Populate(b, sample{Enabled: true, B: 1, S: 2, I: 3, L: 4, N: 5, F: 6, D: 7, Bits: []int64{8}})
	require.NoError(t, err)
	ann := b.Build()

	expect := map[string]value.Kind{
		"enabled": value.BOOL,
		"b":       value.BYTE,
		"s":       value.SHORT,
		"i":       value.INT,
		"l":       value.LONG,
		"n":       value.INT,
		"f":       value.FLOAT,
		"d":       value.DOUBLE,
		"bits":    value.LONG_ARRAY,
	}
	for name, kind := range expect {
		v, ok := ann.Value(name)
		require.True(t, ok, "missing property %s", name)
		assert.Equal(t, kind, v.Kind(), "property %s", name)
	}
}

func TestPopulatePointerInstance(t *testing.T) {
	b := NewAnnotation(desc.ClassOf("com/example/WebRoute"))
	err := Populate(b, &webRoute{Path: "/x", Meta: retention{Value: "CLASS"}})
	require.NoError(t, err)
	v, ok := b.Build().Value("path")
	require.True(t, ok)
	assert.Equal(t, `"/x"`, v.Inspect())
}

func TestPopulateEnumSlice(t *testing.T) {
	type policies struct {
		Allowed []retentionPolicy
	}
	b := NewAnnotation(desc.ClassOf("com/example/Policies"))
	err := Populate(b, policies{Allowed: []retentionPolicy{"CLASS", "RUNTIME"}})
	require.NoError(t, err)

	v, ok := b.Build().Value("allowed")
	require.True(t, ok)
	arr, ok := v.(*value.Array)
	require.True(t, ok)
	assert.Equal(t,
		"{java/lang/annotation/RetentionPolicy.CLASS, java/lang/annotation/RetentionPolicy.RUNTIME}",
		arr.Inspect())
}

func TestPopulateUnexportedFieldsSkipped(t *testing.T) {
	type sample struct {
		Name   string
		hidden int
	}
	b := NewAnnotation(desc.ClassOf("com/example/Sample"))
	require.NoError(t, Populate(b, sample{Name: "x", hidden: 1}))
	ann := b.Build()
	assert.Equal(t, []string{"name"}, ann.Names())
}

func TestPopulateUnsupportedShape(t *testing.T) {
	type sample struct {
		Lookup map[string]int
	}
	b := NewAnnotation(desc.ClassOf("com/example/Sample"))
	err := Populate(b, sample{Lookup: map[string]int{"a": 1}})
	require.Error(t, err)

	got := errz.Filter(err, errz.ErrValueShape)
	require.Len(t, got, 1)
	assert.Equal(t, "lookup", got[0].Entity)
	assert.Contains(t, got[0].Message, "map[string]int")
}

func TestPopulateUnsupportedArrayElement(t *testing.T) {
	type widget struct{ X int }
	type sample struct {
		Widgets []widget
	}
	b := NewAnnotation(desc.ClassOf("com/example/Sample"))
	err := Populate(b, sample{Widgets: []widget{{X: 1}}})
	require.Error(t, err)
	assert.True(t, errz.HasKind(err, errz.ErrValueShape))
}

func TestPopulateNilEnumPointer(t *testing.T) {
	type sample struct {
		Policy *retentionPolicy
	}
	b := NewAnnotation(desc.ClassOf("com/example/Sample"))
	err := Populate(b, sample{})
	require.Error(t, err)

	got := errz.Filter(err, errz.ErrValueShape)
	require.Len(t, got, 1)
	assert.Equal(t, "policy", got[0].Entity)
	assert.Contains(t, got[0].Message, "nil")
}

func TestPopulateNilNestedAnnotation(t *testing.T) {
	type sample struct {
		Meta Mirror
	}
	b := NewAnnotation(desc.ClassOf("com/example/Sample"))
	err := Populate(b, sample{Meta: nil})
	require.Error(t, err)

	got := errz.Filter(err, errz.ErrValueShape)
	require.Len(t, got, 1)
	assert.Equal(t, "meta", got[0].Entity)
}

func TestPopulateNilInstance(t *testing.T) {
	b := NewAnnotation(desc.ClassOf("com/example/Sample"))
	err := Populate(b, (*webRoute)(nil))
	require.Error(t, err)
	assert.True(t, errz.HasKind(err, errz.ErrValueShape))
}

func TestPopulateNonStruct(t *testing.T) {
	b := NewAnnotation(desc.ClassOf("com/example/Sample"))
	err := Populate(b, 42)
	require.Error(t, err)
	assert.True(t, errz.HasKind(err, errz.ErrValueShape))
}

func TestPopulateIntOverflow(t *testing.T) {
	type sample struct {
		N int
	}
	b := NewAnnotation(desc.ClassOf("com/example/Sample"))
	err := Populate(b, sample{N: 1 << 40})
	require.Error(t, err)
	assert.True(t, errz.HasKind(err, errz.ErrValueShape))
}
