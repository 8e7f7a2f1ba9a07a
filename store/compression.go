package store

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// DefaultCompressionThreshold is the value size above which zstd kicks in,
// smaller values are stored as is.
const DefaultCompressionThreshold = 256

type Compressor interface {
	Compress(in []byte) []byte
	Decompress(in []byte) ([]byte, error)
}

// NewCompressor accepts the `compression` DSN option value. Values of at most
// `sizeThreshold` bytes are never compressed.
func NewCompressor(mode string, sizeThreshold int) (Compressor, error) {
	switch mode {
	case "", "zstd":
		return NewZstdCompressor(sizeThreshold), nil
	case "none", "false", "no":
		return NewNoOpCompressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression value %q, use zstd (by default) or 'none'", mode)
	}
}

type NoOpCompressor struct{}

func NewNoOpCompressor() *NoOpCompressor {
	return &NoOpCompressor{}
}

func (NoOpCompressor) Compress(in []byte) []byte {
	return in
}
func (NoOpCompressor) Decompress(in []byte) ([]byte, error) {
	return in, nil
}

type ZstdCompressor struct {
	dec           *zstd.Decoder
	enc           *zstd.Encoder
	sizeThreshold int
}

func NewZstdCompressor(sizeThreshold int) *ZstdCompressor {
	enc, _ := zstd.NewWriter(nil) // Errors only on failed `opts` application
	dec, _ := zstd.NewReader(nil)
	return &ZstdCompressor{
		dec:           dec,
		enc:           enc,
		sizeThreshold: sizeThreshold,
	}
}

func (c *ZstdCompressor) Compress(in []byte) (out []byte) {
	if len(in) > c.sizeThreshold {
		return c.enc.EncodeAll(in, out)
	}
	return in
}

var zstdMagicBytes = []byte{0x28, 0xB5, 0x2F, 0xFD}

func (c *ZstdCompressor) Decompress(in []byte) ([]byte, error) {
	if len(in) > 4 && bytes.Equal(in[:4], zstdMagicBytes) {
		buf, err := c.dec.DecodeAll(in, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return buf, nil
	}

	return in, nil
}
