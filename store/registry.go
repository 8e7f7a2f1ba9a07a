package store

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// NewStoreFunc is a function for opening a database.
type NewStoreFunc func(dsn string) (KVStore, error)

type Registration struct {
	Name        string // unique name
	Title       string // human-readable name
	FactoryFunc NewStoreFunc
}

var registry = make(map[string]*Registration)

func Register(reg *Registration) {
	if reg.Name == "" {
		zlog.Fatal("name cannot be blank")
	} else if _, ok := registry[reg.Name]; ok {
		zlog.Fatal("already registered", zap.String("name", reg.Name))
	}
	registry[reg.Name] = reg
}

// New opens the store matching the scheme of `dsn`, for example
// `badger3:///tmp/fixtures.db`.
func New(dsn string, opts ...Option) (KVStore, error) {
	chunks := strings.Split(dsn, ":")
	reg, found := registry[chunks[0]]
	if !found {
		return nil, fmt.Errorf("no such kv store registered %q", chunks[0])
	}

	s, err := reg.FactoryFunc(dsn)
	if err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt.apply(s)
	}

	return s, nil
}

// ByName returns a registered store driver
func ByName(name string) *Registration {
	r, ok := registry[name]
	if !ok {
		return nil
	}
	return r
}

func isRegistered(name string) bool {
	_, ok := registry[name]
	return ok
}
