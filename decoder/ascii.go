package decoder

var _ Decoder = (*AsciiDecoder)(nil)

// AsciiDecoder takes the text bytes as is.
type AsciiDecoder struct {
}

func (h *AsciiDecoder) Decode(text string) ([]byte, error) {
	return []byte(text), nil
}
