// Copyright 2019 dfuse Platform Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hexints

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

// Decode turns a hexadecimal string into the bytes it encodes, two
// characters per byte, most significant nibble first, in input order.
//
// Whitespace is handled according to the configured WhitespacePolicy
// (`WhitespaceTrim` when none is given). Any character that is not a hex
// digit yields a *FormatError of kind InvalidCharacter, reported before the
// length is checked; an odd number of hex digits yields a *FormatError of
// kind OddLength. An empty input decodes to an empty slice.
func Decode(input string, opts ...DecodeOption) ([]byte, error) {
	options := newDecodeOptions(opts)

	start, end := 0, len(input)
	if options.whitespace == WhitespaceTrim {
		for start < end && isSpace(input[start]) {
			start++
		}
		for end > start && isSpace(input[end-1]) {
			end--
		}
	}

	digits := make([]byte, 0, end-start)
	for i := start; i < end; i++ {
		c := input[i]
		if options.whitespace == WhitespaceIgnore && isSpace(c) {
			continue
		}

		if !isHexDigit(c) {
			r, _ := utf8.DecodeRuneInString(input[i:])
			return nil, &FormatError{Kind: InvalidCharacter, Offset: i, Char: r}
		}

		digits = append(digits, c)
	}

	if len(digits)%2 != 0 {
		return nil, &FormatError{Kind: OddLength, Length: len(digits)}
	}

	out := make([]byte, len(digits)/2)
	if _, err := hex.Decode(out, digits); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}

	return out, nil
}

// MustDecode is Decode that panics on error, meant for literals known to be
// well formed.
func MustDecode(input string, opts ...DecodeOption) []byte {
	out, err := Decode(input, opts...)
	if err != nil {
		panic(err)
	}

	return out
}

// Encode is the inverse of Decode, lowercase digits.
func Encode(data []byte) string {
	return hex.EncodeToString(data)
}

// ToInts re-types each byte as an int, same length and order.
func ToInts(data []byte) []int {
	out := make([]int, len(data))
	for i, b := range data {
		out[i] = int(b)
	}

	return out
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
