package hexints

import (
	"fmt"
	"strings"
)

type WhitespacePolicy int

const (
	// WhitespaceTrim strips leading and trailing whitespace, whitespace
	// found between digits is an invalid character.
	WhitespaceTrim WhitespacePolicy = iota
	// WhitespaceIgnore drops whitespace wherever it appears.
	WhitespaceIgnore
	// WhitespaceReject treats any whitespace as an invalid character.
	WhitespaceReject
)

func (p WhitespacePolicy) String() string {
	switch p {
	case WhitespaceTrim:
		return "trim"
	case WhitespaceIgnore:
		return "ignore"
	case WhitespaceReject:
		return "reject"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

func ParseWhitespacePolicy(in string) (WhitespacePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(in)) {
	case "", "trim":
		return WhitespaceTrim, nil
	case "ignore", "strip":
		return WhitespaceIgnore, nil
	case "reject", "strict":
		return WhitespaceReject, nil
	default:
		return 0, fmt.Errorf("invalid whitespace policy %q, use 'trim' (by default), 'ignore' or 'reject'", in)
	}
}

type DecodeOption func(o *decodeOptions)

func WithWhitespace(policy WhitespacePolicy) DecodeOption {
	return func(o *decodeOptions) {
		o.whitespace = policy
	}
}

type decodeOptions struct {
	whitespace WhitespacePolicy
}

func newDecodeOptions(opts []DecodeOption) *decodeOptions {
	out := &decodeOptions{whitespace: WhitespaceTrim}
	for _, opt := range opts {
		opt(out)
	}

	return out
}
