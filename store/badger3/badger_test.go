package badger3

import (
	"context"
	"fmt"
	"path"
	"testing"

	"github.com/streamingfast/hexints/store"
	"github.com/streamingfast/hexints/store/storetest"
	"github.com/streamingfast/logging"
	"github.com/stretchr/testify/require"
)

func init() {
	logging.TestingOverride()
}

func TestAll(t *testing.T) {
	storetest.TestAll(t, "Badger3", NewTestBadgerFactory(t, "badger-test.db", ""))
	storetest.TestAll(t, "Badger3NoCompression", NewTestBadgerFactory(t, "badger-test.db", "?compression=none"))
}

func NewTestBadgerFactory(t *testing.T, testDBFilename string, query string) storetest.DriverFactory {
	return func(opts ...store.Option) (store.KVStore, storetest.DriverCleanupFunc) {
		dir := t.TempDir()
		dsn := fmt.Sprintf("badger3://%s%s", path.Join(dir, testDBFilename), query)
		kvStore, err := store.New(dsn, opts...)
		require.NoError(t, err)

		return kvStore, func() {}
	}
}

func TestReopen(t *testing.T) {
	dsn := fmt.Sprintf("badger3://%s", path.Join(t.TempDir(), "reopen.db"))

	kvStore, err := store.New(dsn)
	require.NoError(t, err)
	require.NoError(t, kvStore.Put(context.Background(), []byte("fx:sample"), []byte{0x45, 0xa4}))
	require.NoError(t, kvStore.FlushPuts(context.Background()))
	require.NoError(t, kvStore.Close())

	kvStore, err = store.New(dsn)
	require.NoError(t, err)
	defer kvStore.Close()

	value, err := kvStore.Get(context.Background(), []byte("fx:sample"))
	require.NoError(t, err)
	require.Equal(t, []byte{0x45, 0xa4}, value)
}

func TestNewStore_InvalidCompression(t *testing.T) {
	_, err := store.New(fmt.Sprintf("badger3://%s?compression=lz4", path.Join(t.TempDir(), "bad.db")))
	require.Error(t, err)
}
