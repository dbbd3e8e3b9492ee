package typedesc

import (
	"reflect"
)

// Of derives a description from a live Go type. Pointers, arrays and slices
// decompose structurally; every other kind is a non-decomposable base
// identity under its reflect string. Go has no qualifiers or member
// pointers, so descriptions derived here never carry them; use the struct
// literals in this package to describe those.
func Of(t reflect.Type) Desc {
	switch t.Kind() {
	case reflect.Pointer:
		return &Pointer{Elem: Of(t.Elem())}
	case reflect.Array:
		return &Array{Len: t.Len(), Elem: Of(t.Elem())}
	case reflect.Slice:
		return &Slice{Elem: Of(t.Elem())}
	default:
		return &Named{Name: t.String()}
	}
}

// For is the generic shorthand for Of.
func For[T any]() Desc {
	return Of(reflect.TypeFor[T]())
}
