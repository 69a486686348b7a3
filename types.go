package settings

import (
	"math"
	"reflect"
)

// Type is the semantic constraint a supplied value must satisfy.
type Type struct {
	name  string
	check func(any) bool
}

// NewType builds a custom Type. A nil check accepts every value.
func NewType(name string, check func(any) bool) Type {
	return Type{name: name, check: check}
}

// TypeOf returns a Type satisfied by values whose dynamic type is T (or
// implements T when T is an interface).
func TypeOf[T any]() Type {
	return Type{
		name: reflect.TypeFor[T]().String(),
		check: func(value any) bool {
			_, ok := value.(T)
			return ok
		},
	}
}

// Name returns the human readable type name used in validation reasons.
func (t Type) Name() string {
	if t.name == "" {
		return "any"
	}
	return t.name
}

func (t Type) String() string {
	return t.Name()
}

// Check reports whether value satisfies the type.
func (t Type) Check(value any) bool {
	if t.check == nil {
		return true
	}
	return t.check(value)
}

func (t Type) isZero() bool {
	return t.name == "" && t.check == nil
}

var (
	// String accepts Go strings. It is the default descriptor type.
	String = TypeOf[string]()
	// Bool accepts Go booleans.
	Bool = TypeOf[bool]()
	// Int accepts any integer kind and floats without a fractional part
	// inside the int64 range, so numbers decoded from JSON or produced by a
	// JS source qualify.
	Int = NewType("int", isInteger)
	// Float accepts float32 and float64.
	Float = NewType("float", func(value any) bool {
		switch reflect.ValueOf(value).Kind() {
		case reflect.Float32, reflect.Float64:
			return true
		}
		return false
	})
	// Number accepts any integer or float kind.
	Number = NewType("number", isNumeric)
	// List accepts slices and arrays.
	List = NewType("list", func(value any) bool {
		switch reflect.ValueOf(value).Kind() {
		case reflect.Slice, reflect.Array:
			return true
		}
		return false
	})
	// Map accepts maps keyed by strings.
	Map = NewType("map", func(value any) bool {
		rv := reflect.ValueOf(value)
		return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
	})
	// Any accepts every value, including nil.
	Any = NewType("any", nil)
)

func isInteger(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
	}
	return false
}

func isNumeric(value any) bool {
	switch reflect.ValueOf(value).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
