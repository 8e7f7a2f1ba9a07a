package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/streamingfast/hexints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setGlobals(t *testing.T, format, scheme, whitespace string) {
	t.Helper()

	viper.Set("global-format", format)
	viper.Set("global-decoder", scheme)
	viper.Set("global-whitespace", whitespace)
	viper.Set("global-input-file", "")
	t.Cleanup(viper.Reset)
}

func runDecode(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()

	setGlobals(t, format, "hex", "trim")
	return runDecodeCmd(args...)
}

func runDecodeCmd(args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	err := decodeRunE(cmd, args)
	return out.String(), err
}

func TestDecodeRunE_Sample(t *testing.T) {
	out, err := runDecode(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "[69, 164, 210, 89, 146, 214, 173, 67, 192, 36, 192, 158, 12, 0, 0, 0, 198, 82, 32, 15, 0, 0, 0, 0, 161, 153, 249, 14, 0, 0, 0, 0, 1, 0, 0, 0, 192, 36, 192, 158, 12, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 46, 1, 0, 0, 0, 100, 64, 66, 15, 0, 0, 0, 0, 0, 0, 50, 182, 1, 0, 0, 0, 0, 0]\n", out)
}

func TestDecodeRunE_Args(t *testing.T) {
	out, err := runDecode(t, "go", "0001ff")
	require.NoError(t, err)
	assert.Equal(t, "[0 1 255]\n", out)
}

func TestDecodeRunE_FormatError(t *testing.T) {
	out, err := runDecode(t, "go", "abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, hexints.ErrFormat))
	assert.Empty(t, out)
}

func TestDecodeRunE_UnknownFormat(t *testing.T) {
	_, err := runDecode(t, "octal", "00")
	require.Error(t, err)
}

func TestDecodeRunE_Decoding(t *testing.T) {
	tests := []struct {
		name        string
		scheme      string
		whitespace  string
		args        []string
		expected    string
		expectError bool
	}{
		{"hex ignore whitespace", "hex", "ignore", []string{"48 65 6c\t6c 6f"}, "[72 101 108 108 111]\n", false},
		{"hex trim rejects interior whitespace", "hex", "trim", []string{"48 65"}, "", true},
		{"hex reject trailing whitespace", "hex", "reject", []string{"4865 "}, "", true},
		{"base58", "base58", "trim", []string{"9Ajdvzr"}, "[72 101 108 108 111]\n", false},
		{"base58 invalid", "base58", "trim", []string{"0OIl"}, "", true},
		{"ascii", "ascii", "trim", []string{"Hi"}, "[72 105]\n", false},
		{"unknown decoder", "octal", "trim", []string{"777"}, "", true},
		{"unknown whitespace", "hex", "sometimes", []string{"00"}, "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			setGlobals(t, "go", test.scheme, test.whitespace)

			out, err := runDecodeCmd(test.args...)
			if test.expectError {
				require.Error(t, err)
				assert.Empty(t, out)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expected, out)
		})
	}
}
