package fixture

import (
	"fmt"
	"time"

	"github.com/streamingfast/hexints"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	sourceField    protowire.Number = 1
	dataField      protowire.Number = 2
	createdAtField protowire.Number = 3
	schemeField    protowire.Number = 4
	policyField    protowire.Number = 5
)

// encodeRecord writes a fixture in protobuf wire format, the name is the
// store key and is not part of the value. Records written before fields 4 and
// 5 existed decode as hex with the trim policy.
func encodeRecord(f *Fixture) []byte {
	var out []byte
	out = protowire.AppendTag(out, sourceField, protowire.BytesType)
	out = protowire.AppendString(out, f.Source)
	out = protowire.AppendTag(out, dataField, protowire.BytesType)
	out = protowire.AppendBytes(out, f.Bytes)
	out = protowire.AppendTag(out, createdAtField, protowire.VarintType)
	out = protowire.AppendVarint(out, uint64(f.CreatedAt.UnixNano()))
	out = protowire.AppendTag(out, schemeField, protowire.BytesType)
	out = protowire.AppendString(out, f.Scheme)
	out = protowire.AppendTag(out, policyField, protowire.VarintType)
	out = protowire.AppendVarint(out, uint64(f.Whitespace))
	return out
}

func decodeRecord(name string, in []byte) (*Fixture, error) {
	f := &Fixture{Name: name, Bytes: []byte{}}

	for len(in) > 0 {
		num, typ, n := protowire.ConsumeTag(in)
		if n < 0 {
			return nil, fmt.Errorf("fixture %q: invalid tag: %w", name, protowire.ParseError(n))
		}
		in = in[n:]

		switch {
		case num == sourceField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(in)
			if n < 0 {
				return nil, fmt.Errorf("fixture %q: invalid source: %w", name, protowire.ParseError(n))
			}
			f.Source = v
			in = in[n:]

		case num == dataField && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(in)
			if n < 0 {
				return nil, fmt.Errorf("fixture %q: invalid data: %w", name, protowire.ParseError(n))
			}
			f.Bytes = append([]byte{}, v...)
			in = in[n:]

		case num == createdAtField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(in)
			if n < 0 {
				return nil, fmt.Errorf("fixture %q: invalid created at: %w", name, protowire.ParseError(n))
			}
			f.CreatedAt = time.Unix(0, int64(v)).UTC()
			in = in[n:]

		case num == schemeField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(in)
			if n < 0 {
				return nil, fmt.Errorf("fixture %q: invalid scheme: %w", name, protowire.ParseError(n))
			}
			f.Scheme = v
			in = in[n:]

		case num == policyField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(in)
			if n < 0 {
				return nil, fmt.Errorf("fixture %q: invalid whitespace policy: %w", name, protowire.ParseError(n))
			}
			f.Whitespace = hexints.WhitespacePolicy(v)
			in = in[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, in)
			if n < 0 {
				return nil, fmt.Errorf("fixture %q: invalid field %d: %w", name, num, protowire.ParseError(n))
			}
			in = in[n:]
		}
	}

	return f, nil
}
