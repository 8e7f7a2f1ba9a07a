package formatter

import (
	"fmt"
	"strings"
)

// Formatter renders a decoded byte sequence as a single line of text.
type Formatter interface {
	Format(data []byte) string
}

const DefaultScheme = "go"

func New(scheme string) (Formatter, error) {
	switch scheme {
	case "", "go":
		return &GoFormatter{}, nil
	case "list":
		return &ListFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "hex":
		return &HexFormatter{}, nil
	case "base58":
		return &Base58Formatter{}, nil
	case "ascii":
		return &AsciiFormatter{}, nil
	}

	if strings.HasPrefix(scheme, raydiumSwapScheme) {
		formatter, err := newRaydiumSwapFormatter(scheme)
		if err != nil {
			return nil, fmt.Errorf("raydium swap formatter: %w", err)
		}
		return formatter, nil
	}

	if strings.HasPrefix(scheme, "proto") {
		formatter, err := newProtoFormatter(scheme)
		if err != nil {
			return nil, fmt.Errorf("proto formatter: %w", err)
		}
		return formatter, nil
	}

	return nil, fmt.Errorf("unknown format scheme %q, supported schemes: 'go', 'list', 'json', 'hex', 'base58', 'ascii', 'raydium-swap[://<account>,...]', 'proto:///<path_to_proto>@<message_type>'", scheme)
}
