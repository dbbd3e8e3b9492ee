package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runs the CLI against real argument vectors, capturing stdout
func runCli(t *testing.T, args ...string) string {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	require.NoError(t, err)
	return out.String()
}

func TestSimilarEndToEnd(t *testing.T) {
	for _, tt := range []struct {
		fst, snd string
		expected bool
	}{
		{"int*", "const int*", true},
		{"int*", "float64*", false},
		{"int[]", "int[5]", true},
		{"int A::*", "int B::*", false},
	} {
		t.Run(fmt.Sprintf("%s vs %s", tt.fst, tt.snd), func(t *testing.T) {
			out := runCli(t, "similar", tt.fst, tt.snd)
			assert.Equal(t, fmt.Sprintf("similar: %v\n", tt.expected), out)
		})
	}
}

func TestAlikeEndToEnd(t *testing.T) {
	out := runCli(t, "alike", "const int&", "int&&")
	assert.Equal(t, "alike: true\n", out)

	out = runCli(t, "alike", "int[5]", "float64*")
	assert.Equal(t, "alike: false\n", out)
}

func TestCliRejectsBadNotation(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"similar", "int[", "int"})
	err := rootCmd.Execute()
	require.Error(t, err)
	// parse failures surface with their error code rendered
	assert.Contains(t, err.Error(), "(E004)")
	assert.Contains(t, err.Error(), `could not parse type "int["`)
}
