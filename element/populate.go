package element

import (
	"math"
	"reflect"
	"unicode"

	"github.com/Olivki/asmkt-sub001/desc"
	"github.com/Olivki/asmkt-sub001/errz"
	"github.com/Olivki/asmkt-sub001/value"
)

// Mirror is implemented by Go struct types that stand in for an
// annotation interface. The exported fields are the annotation's declared
// properties.
type Mirror interface {
	// AnnotationType returns the mirrored annotation's type.
	AnnotationType() desc.Class
}

// EnumConstant is implemented by Go values that stand in for enum
// constants. Constants are materialized as {declaring type, name} pairs,
// never ordinals, so reordering the enum does not change the value.
type EnumConstant interface {
	EnumType() desc.Class
	EnumName() string
}

var (
	classRefType  = reflect.TypeOf(desc.Class{})
	enumConstType = reflect.TypeOf((*EnumConstant)(nil)).Elem()
	mirrorType    = reflect.TypeOf((*Mirror)(nil)).Elem()
)

// Populate fills b with one property per exported field of instance,
// dispatching on each field's runtime shape. Supported shapes: bool,
// string, the sized signed integers, float32/float64, int (when the value
// fits in 32 bits), desc.Class, EnumConstant values, nested Mirror
// structs, and homogeneous slices of all of those. The property name is
// taken from the field's `classfile` tag, defaulting to the lower-camel
// field name.
func Populate(b *AnnotationBuilder, instance any) error {
	rv := reflect.ValueOf(instance)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return errz.New(errz.ErrValueShape, b.annotationType.Name(),
				"cannot populate from a nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return errz.New(errz.ErrValueShape, b.annotationType.Name(),
			"annotation instances must be structs, got %s", rv.Kind())
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := propertyName(field)
		v, err := convertProperty(name, rv.Field(i))
		if err != nil {
			return err
		}
		b.Set(name, v)
	}
	return nil
}

func propertyName(field reflect.StructField) string {
	if tag, ok := field.Tag.Lookup("classfile"); ok && tag != "" {
		return tag
	}
	runes := []rune(field.Name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// convertProperty maps one runtime value onto its Value variant.
func convertProperty(name string, rv reflect.Value) (value.Value, error) {
	if v, ok, err := convertRef(name, rv); ok || err != nil {
		return v, err
	}
	switch rv.Kind() {
	case reflect.Bool:
		return value.NewBool(rv.Bool()), nil
	case reflect.String:
		return value.NewString(rv.String()), nil
	case reflect.Int8:
		return value.NewByte(int8(rv.Int())), nil
	case reflect.Int16:
		return value.NewShort(int16(rv.Int())), nil
	case reflect.Int32:
		return value.NewInt(int32(rv.Int())), nil
	case reflect.Int64:
		return value.NewLong(rv.Int()), nil
	case reflect.Int:
		n := rv.Int()
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, errz.New(errz.ErrValueShape, name,
				"int value %d does not fit a 32-bit annotation int; use int64 for a long", n)
		}
		return value.NewInt(int32(n)), nil
	case reflect.Float32:
		return value.NewFloat(float32(rv.Float())), nil
	case reflect.Float64:
		return value.NewDouble(rv.Float()), nil
	case reflect.Slice:
		return convertSlice(name, rv)
	default:
		return nil, errz.New(errz.ErrValueShape, name,
			"unsupported runtime shape %s", rv.Type())
	}
}

// convertRef handles the reference shapes: class references, enum
// constants, and nested annotation instances.
func convertRef(name string, rv reflect.Value) (value.Value, bool, error) {
	if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil, false, errz.New(errz.ErrValueShape, name,
			"property is nil (%s)", rv.Type())
	}
	if rv.Type() == classRefType {
		return value.NewClassRef(rv.Interface().(desc.Class)), true, nil
	}
	if rv.Type().Implements(enumConstType) {
		ec := rv.Interface().(EnumConstant)
		return value.NewEnumRef(ec.EnumType(), ec.EnumName()), true, nil
	}
	if rv.Type().Implements(mirrorType) {
		m := rv.Interface().(Mirror)
		child := NewAnnotation(m.AnnotationType())
		if err := Populate(child, m); err != nil {
			return nil, false, err
		}
		return value.NewAnnotationRef(child.Build()), true, nil
	}
	return nil, false, nil
}

// convertSlice maps homogeneous slices onto their array variants.
func convertSlice(name string, rv reflect.Value) (value.Value, error) {
	switch rv.Type().Elem().Kind() {
	case reflect.Bool:
		vs := make([]bool, rv.Len())
		for i := range vs {
			vs[i] = rv.Index(i).Bool()
		}
		return value.NewBoolArray(vs...), nil
	case reflect.Int8:
		vs := make([]int8, rv.Len())
		for i := range vs {
			vs[i] = int8(rv.Index(i).Int())
		}
		return value.NewByteArray(vs...), nil
	case reflect.Int16:
		vs := make([]int16, rv.Len())
		for i := range vs {
			vs[i] = int16(rv.Index(i).Int())
		}
		return value.NewShortArray(vs...), nil
	case reflect.Int32:
		vs := make([]int32, rv.Len())
		for i := range vs {
			vs[i] = int32(rv.Index(i).Int())
		}
		return value.NewIntArray(vs...), nil
	case reflect.Int64:
		vs := make([]int64, rv.Len())
		for i := range vs {
			vs[i] = rv.Index(i).Int()
		}
		return value.NewLongArray(vs...), nil
	case reflect.Float32:
		vs := make([]float32, rv.Len())
		for i := range vs {
			vs[i] = float32(rv.Index(i).Float())
		}
		return value.NewFloatArray(vs...), nil
	case reflect.Float64:
		vs := make([]float64, rv.Len())
		for i := range vs {
			vs[i] = rv.Index(i).Float()
		}
		return value.NewDoubleArray(vs...), nil
	}

	// Reference element types become a heterogeneous array.
	et := rv.Type().Elem()
	if et.Kind() != reflect.String && et != classRefType &&
		!et.Implements(enumConstType) && !et.Implements(mirrorType) {
		return nil, errz.New(errz.ErrValueShape, name,
			"unsupported array element shape %s", et)
	}
	elems := make([]value.ArrayElement, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		ev := rv.Index(i)
		// Interface shapes win over the plain-string fallback: a named
		// string type backing an enum constant is still an enum ref.
		converted, ok, err := convertRef(name, ev)
		if err != nil {
			return nil, err
		}
		if ok {
			elems = append(elems, converted.(value.ArrayElement))
			continue
		}
		if ev.Kind() != reflect.String {
			return nil, errz.New(errz.ErrValueShape, name,
				"unsupported array element shape %s", rv.Type().Elem())
		}
		elems = append(elems, value.NewString(ev.String()))
	}
	return value.NewArray(elems...), nil
}
