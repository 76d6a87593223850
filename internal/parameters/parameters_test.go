package parameters

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParse(t *testing.T) {
	name, params, err := Parse("dense")
	require.NoError(t, err)
	assert.Equal(t, "dense", name)
	assert.Empty(t, params)

	name, params, err = Parse(" hashed : capacity=128, verbose ,")
	require.NoError(t, err)
	assert.Equal(t, "hashed", name)
	assert.Equal(t, Params{"capacity": "128", "verbose": ""}, params)

	_, _, err = Parse(":capacity=1")
	assert.Error(t, err)
	_, _, err = Parse("map:a=1,a=2")
	assert.Error(t, err)
	_, _, err = Parse("map:=3")
	assert.Error(t, err)
}

func TestGetParamOr(t *testing.T) {
	params := Params{"n": "12", "big": "0x10", "x": "0.5", "flag": "", "off": "false", "s": "abc", "bad": "zz"}

	n, err := GetParamOr(params, "n", 0)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	big, err := GetParamOr(params, "big", int64(0))
	require.NoError(t, err)
	assert.Equal(t, int64(16), big)

	x, err := GetParamOr(params, "x", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, x)

	flag, err := GetParamOr(params, "flag", false)
	require.NoError(t, err)
	assert.True(t, flag)

	off, err := GetParamOr(params, "off", true)
	require.NoError(t, err)
	assert.False(t, off)

	s, err := GetParamOr(params, "s", "")
	require.NoError(t, err)
	assert.Equal(t, "abc", s)

	missing, err := GetParamOr(params, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, missing)

	_, err = GetParamOr(params, "bad", 0)
	assert.Error(t, err)
	_, err = GetParamOr(params, "bad", true)
	assert.Error(t, err)
}

func TestPopParamOrAndCheckAllUsed(t *testing.T) {
	params := Params{"capacity": "64", "typo": "1"}
	capacity, err := PopParamOr(params, "capacity", 0)
	require.NoError(t, err)
	assert.Equal(t, 64, capacity)
	assert.NotContains(t, params, "capacity")

	err = params.CheckAllUsed()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typo")

	delete(params, "typo")
	assert.NoError(t, params.CheckAllUsed())
}
