package store

import (
	"context"
	"sync"
)

const iteratorBufferSize = 100

// Iterator streams KV pairs from a backend goroutine to a single reader.
//
// The backend pushes pairs with PushItem and ends the stream with exactly one
// of PushFinished or PushError, later ends are ignored. The reader calls Next
// until it returns false and then checks Err. Once the context is done, a
// PushItem blocked on a full buffer ends the stream with the context error.
type Iterator struct {
	ctx     context.Context
	items   chan *KV
	failure chan error
	ended   sync.Once

	current *KV
	err     error
}

func NewIterator(ctx context.Context) *Iterator {
	return &Iterator{
		ctx:     ctx,
		items:   make(chan *KV, iteratorBufferSize),
		failure: make(chan error, 1),
	}
}

func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}

	select {
	case kv, ok := <-it.items:
		if !ok {
			return false
		}
		it.current = kv
		return true

	case err := <-it.failure:
		it.err = err
		return false
	}
}

func (it *Iterator) Item() *KV {
	return it.current
}

func (it *Iterator) Err() error {
	return it.err
}

// PushItem returns false when the reader's context is done, the backend must
// stop producing.
func (it *Iterator) PushItem(kv *KV) bool {
	select {
	case it.items <- kv:
		return true
	case <-it.ctx.Done():
		it.PushError(it.ctx.Err())
		return false
	}
}

func (it *Iterator) PushFinished() {
	it.ended.Do(func() {
		close(it.items)
	})
}

func (it *Iterator) PushError(err error) {
	it.ended.Do(func() {
		it.failure <- err
		close(it.failure)
	})
}
