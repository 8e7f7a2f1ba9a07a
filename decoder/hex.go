package decoder

import (
	"github.com/streamingfast/hexints"
)

var _ Decoder = (*HexDecoder)(nil)

type HexDecoder struct {
	opts []hexints.DecodeOption
}

func (h *HexDecoder) Decode(text string) ([]byte, error) {
	return hexints.Decode(text, h.opts...)
}
