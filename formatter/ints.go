package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/streamingfast/hexints"
)

var _ Formatter = (*GoFormatter)(nil)
var _ Formatter = (*ListFormatter)(nil)
var _ Formatter = (*JSONFormatter)(nil)

// GoFormatter prints the integer list the way `fmt` prints an `[]int`,
// e.g. `[0 1 255]`.
type GoFormatter struct {
}

func (f *GoFormatter) Format(data []byte) string {
	return fmt.Sprint(hexints.ToInts(data))
}

// ListFormatter prints a bracketed, comma separated list, e.g. `[0, 1, 255]`.
type ListFormatter struct {
}

func (f *ListFormatter) Format(data []byte) string {
	sb := &strings.Builder{}
	sb.WriteString("[")
	for i, b := range data {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(b)))
	}
	sb.WriteString("]")
	return sb.String()
}

type JSONFormatter struct {
}

func (f *JSONFormatter) Format(data []byte) string {
	cnt, err := json.Marshal(hexints.ToInts(data))
	if err != nil {
		return fmt.Sprintf("Error marshalling to json: %s", err)
	}
	return string(cnt)
}
