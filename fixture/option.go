package fixture

import (
	"github.com/streamingfast/hexints"
	"github.com/streamingfast/hexints/decoder"
)

type PinOption func(f *Fixture)

// WithDecoding records the decoding scheme and whitespace policy the source
// was decoded with, VerifyAll decodes the source again the same way.
func WithDecoding(scheme string, policy hexints.WhitespacePolicy) PinOption {
	return func(f *Fixture) {
		f.Scheme = scheme
		f.Whitespace = policy
	}
}

// DecoderFactory builds the decoder for a fixture's recorded scheme and
// whitespace policy.
type DecoderFactory func(scheme string, policy hexints.WhitespacePolicy) (decoder.Decoder, error)

func NewDecoder(scheme string, policy hexints.WhitespacePolicy) (decoder.Decoder, error) {
	return decoder.New(scheme, hexints.WithWhitespace(policy))
}
