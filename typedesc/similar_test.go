package typedesc_test

import (
	"fmt"
	"testing"

	"github.com/cottand/fwd/typedesc"
	"github.com/cottand/fwd/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, notation string) typedesc.Desc {
	t.Helper()
	d, err := typedesc.Parse(notation)
	require.NoError(t, err, "notation %q must parse", notation)
	return d
}

// testSimilar asserts the Similar verdict for a pair of notations, in both
// argument orders.
func testSimilar(t *testing.T, fst, snd string, expected bool) {
	t.Run(fmt.Sprintf("similar(%s, %s)=%v", fst, snd, expected), func(t *testing.T) {
		a, b := mustParse(t, fst), mustParse(t, snd)
		assert.Equal(t, expected, typedesc.Similar(a, b))
		assert.Equal(t, expected, typedesc.Similar(b, a))
	})
}

func testAlike(t *testing.T, fst, snd string, expected bool) {
	t.Run(fmt.Sprintf("alike(%s, %s)=%v", fst, snd, expected), func(t *testing.T) {
		a, b := mustParse(t, fst), mustParse(t, snd)
		assert.Equal(t, expected, typedesc.Alike(a, b))
		assert.Equal(t, expected, typedesc.Alike(b, a), "alike must be symmetric")
	})
}

func TestSimilarReflexive(t *testing.T) {
	for _, notation := range []string{
		"int",
		"const int",
		"int*",
		"int[5]",
		"int[]",
		"int A::*",
		"int* const * volatile",
		"int&",
		"int&&",
	} {
		t.Run(notation, func(t *testing.T) {
			d := mustParse(t, notation)
			assert.True(t, typedesc.Similar(d, d))
			assert.True(t, typedesc.Alike(d, d))
		})
	}
}

func TestSimilarIgnoresQualifiers(t *testing.T) {
	testSimilar(t, "int", "const int", true)
	testSimilar(t, "const int", "const int", true)
	testSimilar(t, "volatile int", "const int", true)
	// qualifiers never change the verdict at any nesting depth
	testSimilar(t, "int*", "const int*", true)
	testSimilar(t, "const int* const *", "int**", true)
	testSimilar(t, "const int", "const float64", false)
}

func TestSimilarPointers(t *testing.T) {
	testSimilar(t, "int*", "int*", true)
	testSimilar(t, "int*", "float64*", false)
	testSimilar(t, "int**", "int*", false)
	testSimilar(t, "int*", "int", false)
}

func TestSimilarArrays(t *testing.T) {
	testSimilar(t, "int[5]", "int[5]", true)
	testSimilar(t, "int[5]", "int[6]", false)
	testSimilar(t, "int[5]", "float64[5]", false)
	testSimilar(t, "int[]", "int[]", true)

	// an unknown-bound array is similar to a fixed array of any length
	// with a matching element; the length is ignored on purpose
	testSimilar(t, "int[]", "int[5]", true)
	testSimilar(t, "int[]", "int[6000]", true)
	testSimilar(t, "int[]", "float64[5]", false)
}

func TestSimilarMemberPointers(t *testing.T) {
	testSimilar(t, "int A::*", "int A::*", true)
	testSimilar(t, "int A::*", "const int A::*", true)
	// host classes differing means not similar even when the member
	// type matches
	testSimilar(t, "int A::*", "int B::*", false)
	testSimilar(t, "int A::*", "float64 A::*", false)
}

func TestSimilarReferences(t *testing.T) {
	// no recursion rule covers references, so they compare by identity
	testSimilar(t, "int&", "int&", true)
	testSimilar(t, "int&", "int&&", false)
	testSimilar(t, "int&", "int", false)
}

func TestAlikeStripsBindingMode(t *testing.T) {
	testAlike(t, "int", "int&", true)
	testAlike(t, "int", "int&&", true)
	testAlike(t, "int&", "const int&&", true)
	testAlike(t, "const int", "int", true)
	testAlike(t, "int", "float64&", false)
	testAlike(t, "int*", "const int*&&", true)
}

func TestAlikeDecaysArrays(t *testing.T) {
	// arrays decay to a pointer to their element before comparison
	testAlike(t, "int[5]", "int*", true)
	testAlike(t, "int[]", "int*", true)
	testAlike(t, "int[5]", "int[6]", true)
	testAlike(t, "int[5]&", "int*", true)
	testAlike(t, "int[5]", "float64*", false)
}

func TestDecay(t *testing.T) {
	for _, tt := range []util.Pair[string, string]{
		util.NewPair("int&", "int"),
		util.NewPair("const int&&", "int"),
		util.NewPair("int[5]", "int*"),
		util.NewPair("int[]", "int*"),
		util.NewPair("int[5]&&", "int*"),
		util.NewPair("const int* const", "const int*"),
	} {
		t.Run(fmt.Sprintf("decay(%s)=%s", tt.Fst, tt.Snd), func(t *testing.T) {
			decayed := typedesc.Decay(mustParse(t, tt.Fst))
			expected := mustParse(t, tt.Snd)
			assert.True(t, typedesc.Equal(decayed, expected),
				"expected %s, got %s", expected.String(), decayed.String())
		})
	}
}
