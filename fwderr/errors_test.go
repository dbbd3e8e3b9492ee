package fwderr_test

import (
	"strings"
	"testing"

	"github.com/cottand/fwd/fwderr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCode(t *testing.T) {
	err := fwderr.New(fwderr.NewParse{
		Message: "expected ']'",
		Hint:    "close the array length",
	})
	formatted := fwderr.FormatWithCode(err)
	assert.True(t, strings.HasPrefix(formatted, "(E004) "), "got %q", formatted)
	assert.Contains(t, formatted, "expected ']'")
	assert.Contains(t, formatted, "close the array length")
}

func TestCodeOf(t *testing.T) {
	err := fwderr.New(fwderr.NewNotAlike{From: "string", To: "int"})
	assert.Equal(t, fwderr.NotAlike, fwderr.CodeOf(err))
	// codes survive wrapping
	assert.Equal(t, fwderr.NotAlike, fwderr.CodeOf(errors.Wrap(err, "while constructing")))
	assert.Equal(t, fwderr.None, fwderr.CodeOf(errors.New("uncoded")))
}
