package store

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompressor(t *testing.T) {
	c, err := NewCompressor("", DefaultCompressionThreshold)
	require.NoError(t, err)
	assert.IsType(t, &ZstdCompressor{}, c)

	c, err = NewCompressor("none", DefaultCompressionThreshold)
	require.NoError(t, err)
	assert.IsType(t, &NoOpCompressor{}, c)

	_, err = NewCompressor("gzip", DefaultCompressionThreshold)
	require.Error(t, err)
}

func TestZstdCompressor(t *testing.T) {
	c := NewZstdCompressor(DefaultCompressionThreshold)

	small := []byte{0x45, 0xa4, 0xd2}
	assert.Equal(t, small, c.Compress(small))

	large := bytes.Repeat([]byte{0x00, 0x01, 0xff}, 200)
	compressed := c.Compress(large)
	assert.Equal(t, zstdMagicBytes, compressed[:4])
	assert.Less(t, len(compressed), len(large))

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, large, out)

	out, err = c.Decompress(small)
	require.NoError(t, err)
	assert.Equal(t, small, out)
}
