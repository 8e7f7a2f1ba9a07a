package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testKVStore struct {
	dsn    string
	logger *zap.Logger
}

func (s *testKVStore) Put(context.Context, []byte, []byte) error { return nil }
func (s *testKVStore) FlushPuts(context.Context) error           { return nil }
func (s *testKVStore) Get(context.Context, []byte) ([]byte, error) {
	return nil, ErrNotFound
}
func (s *testKVStore) BatchDelete(context.Context, [][]byte) error { return nil }
func (s *testKVStore) Scan(ctx context.Context, _, _ []byte, _ int, _ ...ReadOption) *Iterator {
	it := NewIterator(ctx)
	it.PushFinished()
	return it
}
func (s *testKVStore) Prefix(ctx context.Context, _ []byte, _ int, _ ...ReadOption) *Iterator {
	it := NewIterator(ctx)
	it.PushFinished()
	return it
}
func (s *testKVStore) Close() error                 { return nil }
func (s *testKVStore) SetLogger(logger *zap.Logger) { s.logger = logger }

func registerTestKVStore() {
	if !isRegistered("test") {
		Register(&Registration{
			Name:  "test",
			Title: "Test KV Store",
			FactoryFunc: func(dsn string) (KVStore, error) {
				return &testKVStore{dsn: dsn}, nil
			},
		})
	}
}

func TestNew(t *testing.T) {
	registerTestKVStore()

	logger := zap.NewNop()
	s, err := New("test://some/path", WithLogger(logger))
	require.NoError(t, err)

	ts := s.(*testKVStore)
	assert.Equal(t, "test://some/path", ts.dsn)
	assert.Same(t, logger, ts.logger)

	assert.Equal(t, "Test KV Store", ByName("test").Title)
	assert.Nil(t, ByName("unknown"))
}

func TestNew_UnknownScheme(t *testing.T) {
	_, err := New("unknown:///tmp/db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no such kv store registered "unknown"`)
}

func TestNewReadOptions(t *testing.T) {
	assert.False(t, NewReadOptions().KeyOnly)
	assert.True(t, NewReadOptions(KeyOnly()).KeyOnly)
}
