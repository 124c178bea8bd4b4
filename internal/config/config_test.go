package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("input", "i", "", "")
	fs.Float64P("alpha", "a", 3.0, "")
	fs.IntP("size-max", "s", 5, "")
	fs.IntP("max-results", "r", 10, "")
	return fs
}

func TestLoadUsesDefaultsWhenNoFlagsSet(t *testing.T) {
	opts, err := Load(newFlagSet())
	require.NoError(t, err)
	assert.Equal(t, 3.0, opts.Alpha)
	assert.Equal(t, 5, opts.SizeMax)
	assert.Equal(t, 10, opts.MaxResults)
	assert.False(t, opts.AllowCarbonylStart)
}

func TestLoadHonorsExplicitFlagOverDefault(t *testing.T) {
	fs := newFlagSet()
	require.NoError(t, fs.Set("alpha", "4.5"))
	require.NoError(t, fs.Set("input", "molecule.xyz"))

	opts, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, 4.5, opts.Alpha)
	assert.Equal(t, "molecule.xyz", opts.InputFile)
}
