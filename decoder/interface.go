package decoder

import (
	"fmt"

	"github.com/streamingfast/hexints"
)

// Decoder turns user provided text into the byte sequence it represents.
type Decoder interface {
	Decode(text string) ([]byte, error)
}

const DefaultScheme = "hex"

func New(scheme string, opts ...hexints.DecodeOption) (Decoder, error) {
	switch scheme {
	case "", "hex":
		return &HexDecoder{opts: opts}, nil
	case "base58":
		return &Base58Decoder{}, nil
	case "ascii":
		return &AsciiDecoder{}, nil
	}

	return nil, fmt.Errorf("unknown decoding scheme %q, supported schemes: 'hex', 'base58', 'ascii'", scheme)
}
