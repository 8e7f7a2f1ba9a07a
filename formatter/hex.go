package formatter

import (
	"strconv"

	"github.com/streamingfast/hexints"
)

var _ Formatter = (*HexFormatter)(nil)
var _ Formatter = (*AsciiFormatter)(nil)

type HexFormatter struct {
}

func (h *HexFormatter) Format(data []byte) string {
	return hexints.Encode(data)
}

// AsciiFormatter prints the bytes as text, non printable bytes escaped.
type AsciiFormatter struct {
}

func (h *AsciiFormatter) Format(data []byte) string {
	quoted := strconv.Quote(string(data))
	return quoted[1 : len(quoted)-1]
}
