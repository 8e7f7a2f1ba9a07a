package storetest

import (
	"testing"

	"github.com/streamingfast/hexints/store"
)

type DriverCleanupFunc func()
type DriverFactory func(opts ...store.Option) (store.KVStore, DriverCleanupFunc)

func TestAll(t *testing.T, driverName string, driverFactory DriverFactory) {
	TestAllKVStore(t, driverName, driverFactory)
}
