package typedesc_test

import (
	"reflect"
	"testing"

	"github.com/cottand/fwd/typedesc"
	"github.com/stretchr/testify/assert"
)

func TestForDecomposesGoTypes(t *testing.T) {
	assert.True(t, typedesc.Equal(
		typedesc.For[int](),
		&typedesc.Named{Name: "int"},
	))
	assert.True(t, typedesc.Equal(
		typedesc.For[*[5]int](),
		&typedesc.Pointer{Elem: &typedesc.Array{Len: 5, Elem: &typedesc.Named{Name: "int"}}},
	))
	assert.True(t, typedesc.Equal(
		typedesc.For[[]string](),
		&typedesc.Slice{Elem: &typedesc.Named{Name: "string"}},
	))
	// maps, funcs, channels and structs stay opaque base identities
	assert.True(t, typedesc.Equal(
		typedesc.For[map[string]int](),
		&typedesc.Named{Name: "map[string]int"},
	))
}

func TestOfMatchesFor(t *testing.T) {
	assert.True(t, typedesc.Equal(
		typedesc.Of(reflect.TypeOf([6]float64{})),
		typedesc.For[[6]float64](),
	))
}

func TestForAgreesWithNotation(t *testing.T) {
	d, err := typedesc.Parse("int*[5]")
	assert.NoError(t, err)
	assert.True(t, typedesc.Similar(typedesc.For[[5]*int](), d))
	assert.True(t, typedesc.Alike(typedesc.For[[]*int](), d))
}
