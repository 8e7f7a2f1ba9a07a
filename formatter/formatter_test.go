package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		scheme   string
		in       []byte
		expected string
	}{
		{"", []byte{0, 1, 255}, "[0 1 255]"},
		{"go", []byte{0, 1, 255}, "[0 1 255]"},
		{"go", []byte{}, "[]"},
		{"list", []byte{0, 1, 255}, "[0, 1, 255]"},
		{"list", []byte{72, 101, 108, 108, 111}, "[72, 101, 108, 108, 111]"},
		{"list", nil, "[]"},
		{"json", []byte{0, 1, 255}, "[0,1,255]"},
		{"json", nil, "[]"},
		{"hex", []byte{0, 1, 255}, "0001ff"},
		{"ascii", []byte("Hello"), "Hello"},
		{"ascii", []byte{'a', 0, '\n'}, `a\x00\n`},
		{"base58", []byte("hello world"), "StV1DL6CwTryKyV"},
		{"base58", []byte{0, 0, 1}, "112"},
	}

	for _, test := range tests {
		t.Run(test.scheme+"/"+test.expected, func(t *testing.T) {
			f, err := New(test.scheme)
			require.NoError(t, err)
			assert.Equal(t, test.expected, f.Format(test.in))
		})
	}
}

func TestNew_UnknownScheme(t *testing.T) {
	_, err := New("octal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format scheme "octal"`)
}

func TestProtoFormatter(t *testing.T) {
	f, err := New("proto://testdata/sample.proto@test.hexints.Sample")
	require.NoError(t, err)

	// count=150, label="hi"
	assert.JSONEq(t, `{"count":150,"label":"hi"}`, f.Format([]byte{0x08, 0x96, 0x01, 0x12, 0x02, 'h', 'i'}))
	assert.True(t, strings.HasPrefix(f.Format([]byte{0xff}), "Error unmarshalling message into test.hexints.Sample"))
}

func TestProtoFormatter_InvalidScheme(t *testing.T) {
	tests := []string{
		"proto",
		"proto://testdata/sample.proto",
		"proto://testdata/sample.proto@",
		"proto://testdata/missing.proto@test.hexints.Sample",
		"proto://testdata/sample.proto@test.hexints.Missing",
	}

	for _, scheme := range tests {
		t.Run(scheme, func(t *testing.T) {
			_, err := New(scheme)
			require.Error(t, err)
		})
	}
}
