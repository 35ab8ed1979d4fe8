package rtconfig

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsUnevenBlockSize(t *testing.T) {
	c := Default()
	c.BlockSize = 7
	require.Error(t, c.Validate())
}

func TestValidateRejectsZeroThreads(t *testing.T) {
	c := Default()
	c.Threads = 0
	require.Error(t, c.Validate())
}

func TestValidateRejectsInvertedTRange(t *testing.T) {
	c := Default()
	c.TMin, c.TMax = 10, 1
	require.Error(t, c.Validate())
}

func TestBindFlagsOverridesDefaults(t *testing.T) {
	c := Default()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.BindFlags(fs)

	require.NoError(t, fs.Parse([]string{"--threads=8", "--block-size=20"}))
	require.Equal(t, 8, c.Threads)
	require.Equal(t, 20, c.BlockSize)
	require.Equal(t, Default().FOV, c.FOV)
}
