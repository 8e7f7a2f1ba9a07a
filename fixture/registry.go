package fixture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/streamingfast/hexints"
	"github.com/streamingfast/hexints/decoder"
	"github.com/streamingfast/hexints/store"
	"github.com/streamingfast/logging"
	"go.opencensus.io/trace"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Registry pins decoded byte sequences in a KV store and checks later
// decodings against them.
type Registry struct {
	kv  store.KVStore
	now func() time.Time
}

func New(kv store.KVStore) *Registry {
	return &Registry{
		kv:  kv,
		now: time.Now,
	}
}

// Pin stores `data`, decoded from `source`, under `name`, replacing any
// previous fixture with that name. Without WithDecoding, the source is
// recorded as hex with the default whitespace policy.
func (r *Registry) Pin(ctx context.Context, name, source string, data []byte, opts ...PinOption) (out *Fixture, err error) {
	ctx, span := startSpan(ctx, "pin", name)
	defer func() { endSpan(span, err) }()

	if err := validateName(name); err != nil {
		return nil, err
	}

	f := &Fixture{
		Name:       name,
		Source:     source,
		Scheme:     decoder.DefaultScheme,
		Whitespace: hexints.WhitespaceTrim,
		Bytes:      append([]byte{}, data...),
		CreatedAt:  r.now().UTC(),
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := r.kv.Put(ctx, Key(name), encodeRecord(f)); err != nil {
		return nil, fmt.Errorf("put fixture %q: %w", name, err)
	}

	if err := r.kv.FlushPuts(ctx); err != nil {
		return nil, fmt.Errorf("flush fixture %q: %w", name, err)
	}

	logging.Logger(ctx, zlog).Info("pinned fixture", zap.String("name", name), zap.Int("byte_count", len(data)))
	return f, nil
}

func (r *Registry) Get(ctx context.Context, name string) (out *Fixture, err error) {
	ctx, span := startSpan(ctx, "get", name)
	defer func() { endSpan(span, err) }()

	return r.get(ctx, name)
}

func (r *Registry) get(ctx context.Context, name string) (*Fixture, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	value, err := r.kv.Get(ctx, Key(name))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrFixtureNotFound, name)
		}
		return nil, fmt.Errorf("get fixture %q: %w", name, err)
	}

	return decodeRecord(name, value)
}

// Verify returns nil when `data` is exactly the byte sequence pinned under
// `name`, a *MismatchError otherwise.
func (r *Registry) Verify(ctx context.Context, name string, data []byte) (err error) {
	ctx, span := startSpan(ctx, "verify", name)
	defer func() { endSpan(span, err) }()

	f, err := r.get(ctx, name)
	if err != nil {
		return err
	}

	return compare(f, data)
}

// VerifyAll decodes the source of every pinned fixture with the decoder
// `newDecoder` builds for the fixture's recorded scheme and whitespace policy,
// and compares the result against the pinned bytes. Every failing fixture is
// reported in the returned error.
func (r *Registry) VerifyAll(ctx context.Context, newDecoder DecoderFactory) (checked int, err error) {
	ctx, span := startSpan(ctx, "verify_all", "")
	defer func() { endSpan(span, err) }()

	zlogger := logging.Logger(ctx, zlog)

	var errs error
	itr := r.kv.Prefix(ctx, []byte(keyPrefix), store.Unlimited)
	for itr.Next() {
		item := itr.Item()
		checked++

		f, err := decodeRecord(nameFromKey(item.Key), item.Value)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		d, err := newDecoder(f.Scheme, f.Whitespace)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("fixture %q: %w", f.Name, err))
			continue
		}

		data, err := d.Decode(f.Source)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("fixture %q: decode source: %w", f.Name, err))
			continue
		}

		if err := compare(f, data); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		if tracer.Enabled() {
			zlogger.Debug("fixture verified", zap.String("name", f.Name), zap.Int("byte_count", len(data)))
		}
	}

	if err := itr.Err(); err != nil {
		return checked, fmt.Errorf("iterate fixtures: %w", err)
	}

	return checked, errs
}

// List returns fixture names in key order, from `from` included up to `to`
// excluded. Empty bounds are open, a 0 limit is unbounded.
func (r *Registry) List(ctx context.Context, from, to string, limit int) (names []string, err error) {
	ctx, span := startSpan(ctx, "list", "")
	defer func() { endSpan(span, err) }()

	end := prefixEnd
	if to != "" {
		end = Key(to)
	}

	itr := r.kv.Scan(ctx, Key(from), end, limit, store.KeyOnly())
	for itr.Next() {
		names = append(names, nameFromKey(itr.Item().Key))
	}

	if err := itr.Err(); err != nil {
		return nil, fmt.Errorf("iterate fixtures: %w", err)
	}

	return names, nil
}

func (r *Registry) Delete(ctx context.Context, names ...string) (err error) {
	ctx, span := startSpan(ctx, "delete", "")
	defer func() { endSpan(span, err) }()

	keys := make([][]byte, len(names))
	for i, name := range names {
		if err := validateName(name); err != nil {
			return err
		}
		keys[i] = Key(name)
	}

	if err := r.kv.BatchDelete(ctx, keys); err != nil {
		return fmt.Errorf("delete fixtures: %w", err)
	}

	logging.Logger(ctx, zlog).Info("deleted fixtures", zap.Strings("names", names))
	return nil
}

func (r *Registry) Close() error {
	return r.kv.Close()
}

func startSpan(ctx context.Context, operation string, name string) (context.Context, *trace.Span) {
	ctx, span := trace.StartSpan(ctx, "hexints/fixture/"+operation)
	if name != "" {
		span.AddAttributes(trace.StringAttribute("name", name))
	}
	return ctx, span
}

func endSpan(span *trace.Span, err error) {
	if err != nil {
		span.SetStatus(trace.Status{Code: trace.StatusCodeUnknown, Message: err.Error()})
	}
	span.End()
}
