package storetest

import (
	"bytes"
	"context"
	"testing"

	"github.com/streamingfast/hexints/store"
	"github.com/stretchr/testify/require"
)

var kvstoreTests = []struct {
	name string
	test func(t *testing.T, driver store.KVStore)
}{
	{"basic", TestBasic},
	{"limit", TestLimit},
	{"key_only", TestKeyOnly},
	{"batch_delete", TestBatchDelete},
	{"large_value", TestLargeValue},
	{"cancelled_context", TestCancelledContext},
}

func TestAllKVStore(t *testing.T, driverName string, driverFactory DriverFactory) {
	for _, rt := range kvstoreTests {
		t.Run(driverName+"/"+rt.name, func(t *testing.T) {
			driver, closer := driverFactory()
			defer closer()
			defer driver.Close()
			rt.test(t, driver)
		})
	}
}

var basicKVs = []store.KV{
	{Key: []byte("a"), Value: []byte("1")},
	{Key: []byte("ba"), Value: []byte("2")},
	{Key: []byte("ba1"), Value: []byte("3")},
	{Key: []byte("ba2"), Value: []byte("4")},
	{Key: []byte("bb"), Value: []byte("5")},
	{Key: []byte("c"), Value: []byte("6")},
}

func putAll(t *testing.T, driver store.KVStore, kvs []store.KV) {
	for _, kv := range kvs {
		require.NoError(t, driver.Put(context.Background(), kv.Key, kv.Value))
	}
	require.NoError(t, driver.FlushPuts(context.Background()))
}

func TestBasic(t *testing.T, driver store.KVStore) {
	all := basicKVs
	putAll(t, driver, all)

	for _, kv := range all {
		v, err := driver.Get(context.Background(), kv.Key)
		require.NoError(t, err)
		require.Equal(t, kv.Value, v)
	}

	_, err := driver.Get(context.Background(), []byte("keydoesnotexists"))
	require.Equal(t, store.ErrNotFound, err)

	testPrefix(t, driver, nil, 0, all)
	testPrefix(t, driver, []byte("a"), 0, all[:1])
	testPrefix(t, driver, []byte("c"), 0, all[5:])
	testPrefix(t, driver, []byte("b"), 0, all[1:5])
	testPrefix(t, driver, []byte("ba"), 0, all[1:4])
	testPrefix(t, driver, []byte("d"), 0, nil)

	testScan(t, driver, []byte("a"), []byte("a"), 0, nil)
	testScan(t, driver, []byte("a"), []byte("b"), 0, all[:1])
	testScan(t, driver, []byte("b"), []byte("a"), 0, nil)
	testScan(t, driver, []byte("b"), []byte("bb"), 0, all[1:4])
	testScan(t, driver, []byte("b"), []byte("c"), 0, all[1:5])
	testScan(t, driver, []byte("a"), []byte("c"), 0, all[:5])
	testScan(t, driver, []byte("ba"), []byte("bb"), 0, all[1:4])
	testScan(t, driver, nil, nil, 0, nil)
	testScan(t, driver, nil, []byte("c"), 0, all[:5])
	testScan(t, driver, []byte(""), []byte("c"), 0, all[:5])
	testScan(t, driver, []byte("b"), nil, 0, nil)
}

func TestLimit(t *testing.T, driver store.KVStore) {
	all := basicKVs
	putAll(t, driver, all)

	testPrefix(t, driver, []byte("b"), 2, all[1:3])
	testPrefix(t, driver, []byte("b"), 10, all[1:5])
	testScan(t, driver, []byte("a"), []byte("c"), 1, all[:1])
	testScan(t, driver, []byte("a"), []byte("c"), 3, all[:3])
}

func TestKeyOnly(t *testing.T, driver store.KVStore) {
	putAll(t, driver, basicKVs)

	var keys [][]byte
	itr := driver.Prefix(context.Background(), []byte("ba"), 0, store.KeyOnly())
	for itr.Next() {
		require.Empty(t, itr.Item().Value)
		keys = append(keys, itr.Item().Key)
	}
	require.NoError(t, itr.Err())
	require.Equal(t, [][]byte{[]byte("ba"), []byte("ba1"), []byte("ba2")}, keys)
}

func TestBatchDelete(t *testing.T, driver store.KVStore) {
	all := basicKVs
	putAll(t, driver, all)

	err := driver.BatchDelete(context.Background(), [][]byte{[]byte("ba1"), []byte("c"), []byte("missing")})
	require.NoError(t, err)

	_, err = driver.Get(context.Background(), []byte("ba1"))
	require.Equal(t, store.ErrNotFound, err)

	testPrefix(t, driver, nil, 0, []store.KV{all[0], all[1], all[3], all[4]})
}

func TestLargeValue(t *testing.T, driver store.KVStore) {
	value := bytes.Repeat([]byte{0x45, 0xa4, 0xd2, 0x59}, 1024)
	require.NoError(t, driver.Put(context.Background(), []byte("large"), value))
	require.NoError(t, driver.FlushPuts(context.Background()))

	v, err := driver.Get(context.Background(), []byte("large"))
	require.NoError(t, err)
	require.Equal(t, value, v)

	testPrefix(t, driver, []byte("large"), 0, []store.KV{{Key: []byte("large"), Value: value}})
}

func TestCancelledContext(t *testing.T, driver store.KVStore) {
	var kvs []store.KV
	for i := 0; i < 300; i++ {
		kvs = append(kvs, store.KV{Key: []byte{'k', byte(i >> 8), byte(i)}, Value: []byte{byte(i)}})
	}
	putAll(t, driver, kvs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	itr := driver.Prefix(ctx, []byte("k"), 0)
	for itr.Next() {
	}
	require.Equal(t, context.Canceled, itr.Err())
}

func testPrefix(t *testing.T, driver store.KVStore, prefix []byte, limit int, exp []store.KV) {
	t.Helper()

	var got []store.KV
	itr := driver.Prefix(context.Background(), prefix, limit)
	for itr.Next() {
		got = append(got, *itr.Item())
	}
	require.NoError(t, itr.Err())
	require.Equal(t, exp, got, "prefix %q limit %d", string(prefix), limit)
}

func testScan(t *testing.T, driver store.KVStore, start, end []byte, limit int, exp []store.KV) {
	t.Helper()

	var got []store.KV
	itr := driver.Scan(context.Background(), start, end, limit)
	for itr.Next() {
		got = append(got, *itr.Item())
	}
	require.NoError(t, itr.Err())
	require.Equal(t, exp, got, "scan [%q, %q) limit %d", string(start), string(end), limit)
}
