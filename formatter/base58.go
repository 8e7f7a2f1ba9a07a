package formatter

import (
	"github.com/mr-tron/base58"
)

var _ Formatter = (*Base58Formatter)(nil)

type Base58Formatter struct {
}

func (h *Base58Formatter) Format(data []byte) string {
	return base58.Encode(data)
}
