// Package badger is the store backend for databases written with badger v2.
// New fixture stores should use `badger3`.
package badger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v2"
	"github.com/dgraph-io/badger/v2/options"
	"github.com/streamingfast/hexints/store"
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

type Store struct {
	dsn        string
	db         *badger.DB
	writeBatch *badger.WriteBatch
	compressor store.Compressor
	logger     *zap.Logger
}

func (s *Store) String() string {
	return fmt.Sprintf("badger kv store with dsn: %q", s.dsn)
}

func init() {
	store.Register(&store.Registration{
		Name:        "badger",
		Title:       "Badger",
		FactoryFunc: NewStore,
	})
}

func NewStore(dsnString string) (store.KVStore, error) {
	dsn, err := newDSN(dsnString)
	if err != nil {
		return nil, fmt.Errorf("badger new: %w", err)
	}

	createPath := filepath.Dir(dsn.dbPath)
	if err := os.MkdirAll(createPath, 0755); err != nil {
		return nil, fmt.Errorf("creating path %q: %w", createPath, err)
	}

	// Badger compresses with Snappy itself, our compressor only ever
	// decompresses zstd values written by older versions, `math.MaxInt64` as
	// the threshold means compression never kicks in.
	compressor, err := store.NewCompressor(dsn.compression, math.MaxInt64)
	if err != nil {
		return nil, err
	}

	db, err := badger.Open(badger.DefaultOptions(dsn.dbPath).WithLogger(nil).WithCompression(options.Snappy))
	if err != nil {
		return nil, fmt.Errorf("badger new: open badger db: %w", err)
	}

	return &Store{
		dsn:        dsnString,
		db:         db,
		compressor: compressor,
		logger:     zlog,
	}, nil
}

func (s *Store) SetLogger(logger *zap.Logger) {
	s.logger = logger
}

func (s *Store) Close() error {
	if s.writeBatch != nil {
		s.writeBatch.Cancel()
		s.writeBatch = nil
	}
	return s.db.Close()
}

func (s *Store) Put(ctx context.Context, key, value []byte) (err error) {
	zlogger := logging.Logger(ctx, s.logger)
	zlogger.Debug("putting", zap.Stringer("key", store.Key(key)))
	if s.writeBatch == nil {
		s.writeBatch = s.db.NewWriteBatch()
	}

	value = s.compressor.Compress(value)

	err = s.writeBatch.SetEntry(badger.NewEntry(key, value))
	if errors.Is(err, badger.ErrTxnTooBig) {
		zlogger.Debug("txn too big pre-emptively pushing")
		if err := s.writeBatch.Flush(); err != nil {
			return err
		}

		s.writeBatch = s.db.NewWriteBatch()
		if err := s.writeBatch.SetEntry(badger.NewEntry(key, value)); err != nil {
			return fmt.Errorf("after txn too big: %w", err)
		}
		return nil
	}

	return err
}

func (s *Store) FlushPuts(ctx context.Context) error {
	if s.writeBatch == nil {
		return nil
	}

	err := s.writeBatch.Flush()
	s.writeBatch = nil
	return err
}

func wrapNotFoundError(err error) error {
	if errors.Is(err, badger.ErrKeyNotFound) {
		return store.ErrNotFound
	}
	return err
}

func (s *Store) Get(ctx context.Context, key []byte) (value []byte, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return wrapNotFoundError(err)
		}

		value, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}

		value, err = s.compressor.Decompress(value)
		return err
	})
	return
}

func (s *Store) BatchDelete(ctx context.Context, keys [][]byte) error {
	logging.Logger(ctx, s.logger).Debug("batch deletion", zap.Int("key_count", len(keys)))

	return s.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// Scan and Prefix share the same walk, a Scan has an exclusive end and a
// Prefix has a prefix.
func (s *Store) Scan(ctx context.Context, start, exclusiveEnd []byte, limit int, options ...store.ReadOption) *store.Iterator {
	logging.Logger(ctx, s.logger).Debug("scanning", zap.Stringer("start", store.Key(start)), zap.Stringer("exclusive_end", store.Key(exclusiveEnd)), zap.Stringer("limit", store.Limit(limit)))

	return s.iterate(ctx, start, nil, func(key []byte) bool {
		return bytes.Compare(key, exclusiveEnd) == -1
	}, limit, options)
}

func (s *Store) Prefix(ctx context.Context, prefix []byte, limit int, options ...store.ReadOption) *store.Iterator {
	logging.Logger(ctx, s.logger).Debug("prefix scanning", zap.Stringer("prefix", store.Key(prefix)), zap.Stringer("limit", store.Limit(limit)))

	return s.iterate(ctx, prefix, prefix, func(key []byte) bool {
		return bytes.HasPrefix(key, prefix)
	}, limit, options)
}

func (s *Store) iterate(ctx context.Context, seek, prefix []byte, inRange func(key []byte) bool, limit int, options []store.ReadOption) *store.Iterator {
	kr := store.NewIterator(ctx)

	go func() {
		err := s.db.View(func(txn *badger.Txn) error {
			badgerOptions := badgerIteratorOptions(store.Limit(limit), options)
			badgerOptions.Prefix = prefix

			it := txn.NewIterator(badgerOptions)
			defer it.Close()

			count := uint64(0)
			for it.Seek(seek); it.Valid() && inRange(it.Item().Key()); it.Next() {
				count++

				var value []byte
				if badgerOptions.PrefetchValues {
					v, err := it.Item().ValueCopy(nil)
					if err != nil {
						return err
					}

					value, err = s.compressor.Decompress(v)
					if err != nil {
						return err
					}
				}

				if !kr.PushItem(&store.KV{Key: it.Item().KeyCopy(nil), Value: value}) {
					break
				}

				if store.Limit(limit).Reached(count) {
					break
				}
			}
			return nil
		})
		if err != nil {
			kr.PushError(err)
			return
		}

		kr.PushFinished()
	}()

	return kr
}

func badgerIteratorOptions(limit store.Limit, options []store.ReadOption) badger.IteratorOptions {
	readOptions := store.NewReadOptions(options...)

	opts := badger.DefaultIteratorOptions
	if readOptions.KeyOnly {
		opts.PrefetchValues = false
	} else if limit.Bounded() && int(limit) < opts.PrefetchSize {
		opts.PrefetchSize = int(limit)
	}

	return opts
}
