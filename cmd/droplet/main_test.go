package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseColor(t *testing.T) {
	styled, err := parseColor("always")
	require.NoError(t, err)
	assert.True(t, styled)
	styled, err = parseColor("Never")
	require.NoError(t, err)
	assert.False(t, styled)
	_, err = parseColor("auto")
	assert.NoError(t, err)
	_, err = parseColor("sometimes")
	assert.Error(t, err)
}
