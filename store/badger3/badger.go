package badger3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
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
	return fmt.Sprintf("badger3 kv store with dsn: %q", s.dsn)
}

func init() {
	store.Register(&store.Registration{
		Name:        "badger3",
		Title:       "Badger v3",
		FactoryFunc: NewStore,
	})
}

func NewStore(dsnString string) (store.KVStore, error) {
	dsn, err := newDSN(dsnString)
	if err != nil {
		return nil, fmt.Errorf("badger3 new: %w", err)
	}

	createPath := filepath.Dir(dsn.dbPath)
	if err := os.MkdirAll(createPath, 0755); err != nil {
		return nil, fmt.Errorf("creating path %q: %w", createPath, err)
	}

	compressor, err := store.NewCompressor(dsn.compression, store.DefaultCompressionThreshold)
	if err != nil {
		return nil, err
	}

	db, err := badger.Open(badger.DefaultOptions(dsn.dbPath).WithLogger(badgerLogger{}))
	if err != nil {
		return nil, fmt.Errorf("badger3 new: open badger db: %w", err)
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
	zlogger := logging.Logger(ctx, s.logger)
	zlogger.Debug("batch deletion", zap.Int("key_count", len(keys)))

	deletionBatch := s.db.NewWriteBatch()
	for _, key := range keys {
		err := deletionBatch.Delete(key)
		if errors.Is(err, badger.ErrTxnTooBig) {
			zlogger.Debug("txn too big pre-emptively pushing")
			if err := deletionBatch.Flush(); err != nil {
				return err
			}

			deletionBatch = s.db.NewWriteBatch()
			err = deletionBatch.Delete(key)
		}

		if err != nil {
			deletionBatch.Cancel()
			return err
		}
	}

	return deletionBatch.Flush()
}

func (s *Store) Scan(ctx context.Context, start, exclusiveEnd []byte, limit int, options ...store.ReadOption) *store.Iterator {
	zlogger := logging.Logger(ctx, s.logger)
	sit := store.NewIterator(ctx)
	zlogger.Debug("scanning", zap.Stringer("start", store.Key(start)), zap.Stringer("exclusive_end", store.Key(exclusiveEnd)), zap.Stringer("limit", store.Limit(limit)))

	go func() {
		err := s.db.View(func(txn *badger.Txn) error {
			badgerOptions := badgerIteratorOptions(store.Limit(limit), options)
			bit := txn.NewIterator(badgerOptions)
			defer bit.Close()

			count := uint64(0)
			for bit.Seek(start); bit.Valid() && bytes.Compare(bit.Item().Key(), exclusiveEnd) == -1; bit.Next() {
				count++

				value, err := s.itemValue(bit.Item(), badgerOptions.PrefetchValues)
				if err != nil {
					return err
				}

				if !sit.PushItem(&store.KV{Key: bit.Item().KeyCopy(nil), Value: value}) {
					break
				}

				if store.Limit(limit).Reached(count) {
					break
				}
			}
			return nil
		})
		if err != nil {
			sit.PushError(err)
			return
		}

		sit.PushFinished()
	}()

	return sit
}

func (s *Store) Prefix(ctx context.Context, prefix []byte, limit int, options ...store.ReadOption) *store.Iterator {
	zlogger := logging.Logger(ctx, s.logger)
	kr := store.NewIterator(ctx)
	zlogger.Debug("prefix scanning", zap.Stringer("prefix", store.Key(prefix)), zap.Stringer("limit", store.Limit(limit)))

	go func() {
		err := s.db.View(func(txn *badger.Txn) error {
			badgerOptions := badgerIteratorOptions(store.Limit(limit), options)
			badgerOptions.Prefix = prefix

			it := txn.NewIterator(badgerOptions)
			defer it.Close()

			count := uint64(0)
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				count++

				value, err := s.itemValue(it.Item(), badgerOptions.PrefetchValues)
				if err != nil {
					return err
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

// itemValue is nil on key-only iterations, values are neither fetched nor
// decompressed in that case.
func (s *Store) itemValue(item *badger.Item, withValue bool) ([]byte, error) {
	if !withValue {
		return nil, nil
	}

	value, err := item.ValueCopy(nil)
	if err != nil {
		return nil, err
	}

	return s.compressor.Decompress(value)
}

func badgerIteratorOptions(limit store.Limit, options []store.ReadOption) badger.IteratorOptions {
	if limit.Unbounded() && len(options) == 0 {
		return badger.DefaultIteratorOptions
	}

	readOptions := store.NewReadOptions(options...)

	opts := badger.DefaultIteratorOptions
	if readOptions.KeyOnly {
		opts.PrefetchValues = false
	} else if limit.Bounded() && int(limit) < opts.PrefetchSize {
		opts.PrefetchSize = int(limit)
	}

	return opts
}
