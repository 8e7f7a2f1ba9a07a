package decoder

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

var _ Decoder = (*Base58Decoder)(nil)

type Base58Decoder struct {
}

func (h *Base58Decoder) Decode(text string) ([]byte, error) {
	out, err := base58.Decode(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("invalid base58: %w", err)
	}
	return out, nil
}
