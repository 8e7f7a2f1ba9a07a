package fixture

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/streamingfast/hexints"
)

var ErrFixtureNotFound = errors.New("fixture not found")
var ErrInvalidName = errors.New("invalid fixture name")

const keyPrefix = "fx:"

// prefixEnd is the first key past every fixture key.
var prefixEnd = []byte("fx;")

// Fixture is a decoded byte sequence pinned under a name, along with the text
// it was decoded from and how it was decoded.
type Fixture struct {
	Name       string
	Source     string
	Scheme     string
	Whitespace hexints.WhitespacePolicy
	Bytes      []byte
	CreatedAt  time.Time
}

func (f *Fixture) Ints() []int {
	return hexints.ToInts(f.Bytes)
}

func Key(name string) []byte {
	return []byte(keyPrefix + name)
}

func nameFromKey(key []byte) string {
	return strings.TrimPrefix(string(key), keyPrefix)
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be blank", ErrInvalidName)
	}
	return nil
}

// MismatchError reports the first index at which a byte sequence differs from
// a pinned fixture. When one sequence is a prefix of the other, Index is the
// length of the shorter one and the missing side's value is -1.
type MismatchError struct {
	Name        string
	Index       int
	Expected    int
	Actual      int
	ExpectedLen int
	ActualLen   int
}

func (e *MismatchError) Error() string {
	if e.ExpectedLen != e.ActualLen && (e.Expected == -1 || e.Actual == -1) {
		return fmt.Sprintf("fixture %q: length mismatch, expected %d bytes, got %d", e.Name, e.ExpectedLen, e.ActualLen)
	}

	return fmt.Sprintf("fixture %q: byte %d differs, expected %d, got %d", e.Name, e.Index, e.Expected, e.Actual)
}

func compare(f *Fixture, actual []byte) error {
	expected := f.Bytes

	shortest := len(expected)
	if len(actual) < shortest {
		shortest = len(actual)
	}

	for i := 0; i < shortest; i++ {
		if expected[i] != actual[i] {
			return &MismatchError{
				Name:        f.Name,
				Index:       i,
				Expected:    int(expected[i]),
				Actual:      int(actual[i]),
				ExpectedLen: len(expected),
				ActualLen:   len(actual),
			}
		}
	}

	if len(expected) != len(actual) {
		return &MismatchError{
			Name:        f.Name,
			Index:       shortest,
			Expected:    valueAt(expected, shortest),
			Actual:      valueAt(actual, shortest),
			ExpectedLen: len(expected),
			ActualLen:   len(actual),
		}
	}

	return nil
}

func valueAt(data []byte, i int) int {
	if i < len(data) {
		return int(data[i])
	}
	return -1
}
