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
	"errors"
	"fmt"
)

// ErrFormat is matched by every *FormatError through `errors.Is`.
var ErrFormat = errors.New("invalid hex format")

type FormatErrorKind int

const (
	OddLength FormatErrorKind = iota + 1
	InvalidCharacter
)

func (k FormatErrorKind) String() string {
	switch k {
	case OddLength:
		return "odd length"
	case InvalidCharacter:
		return "invalid character"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// FormatError is returned by Decode when the input is not a well-formed hex
// string. For `InvalidCharacter`, `Offset` is the byte offset of `Char` in the
// input as received by Decode. For `OddLength`, `Length` is the length once
// whitespace was handled.
type FormatError struct {
	Kind   FormatErrorKind
	Offset int
	Char   rune
	Length int
}

func (e *FormatError) Error() string {
	if e.Kind == InvalidCharacter {
		return fmt.Sprintf("%s: invalid character %q at offset %d", ErrFormat, e.Char, e.Offset)
	}

	return fmt.Sprintf("%s: odd length %d", ErrFormat, e.Length)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
