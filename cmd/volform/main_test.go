package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestUnitsCommand(t *testing.T) {
	out, err := execute(t, "units")
	require.NoError(t, err)
	assert.Equal(t, "UNIT  BYTES\n"+
		"B     1\n"+
		"KiB   1024\n"+
		"MiB   1048576\n"+
		"GiB   1073741824\n"+
		"TiB   1099511627776\n"+
		"PiB   1125899906842624\n", out)
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "10", "GiB")
	require.NoError(t, err)
	assert.Equal(t, "10737418240\n", out)

	out, err = execute(t, "parse", "1.5KiB")
	require.NoError(t, err)
	assert.Equal(t, "1536\n", out)
}

func TestFormatCommand(t *testing.T) {
	out, err := execute(t, "format", "5368709120")
	require.NoError(t, err)
	assert.Equal(t, "5 GiB\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "volform dev")
}

func TestExitCodeError(t *testing.T) {
	assert.Equal(t, "exit code 2", (&exitCodeError{code: 2}).Error())
}
