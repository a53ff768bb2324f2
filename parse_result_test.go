package ecp

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult_Iterators(t *testing.T) {
	result, err := newTestApp().Parse([]string{"ecp", "cargo", "run", "-r", "--locked", "port", "8080"})
	require.NoError(t, err)

	// iterators can be consumed any number of times
	for range 2 {
		assert.Equal(t, []string{"release", "locked"}, slices.Collect(result.Flags()))
		assert.Equal(t, []string{"port", "8080"}, slices.Collect(result.Values()))
	}

	var first string
	for flag := range result.Flags() {
		first = flag
		break
	}
	assert.Equal(t, "release", first)
	assert.Equal(t, []string{"release", "locked"}, slices.Collect(result.Flags()))
}

func TestParseResult_HasFlag(t *testing.T) {
	result, err := newTestApp().Parse([]string{"ecp", "cargo", "run", "-r"})
	require.NoError(t, err)

	assert.True(t, result.HasFlag("release"))
	assert.False(t, result.HasFlag("r"))
	assert.False(t, result.HasFlag("locked"))
}

func TestParseResult_Empty(t *testing.T) {
	result, err := newTestApp().Parse([]string{"ecp", "plain"})
	require.NoError(t, err)

	assert.Equal(t, "plain", result.Command())
	_, ok := result.Subcommand()
	assert.False(t, ok)
	assert.Empty(t, slices.Collect(result.Flags()))
	assert.Empty(t, slices.Collect(result.Values()))
}
