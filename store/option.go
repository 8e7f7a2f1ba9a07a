package store

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Option interface {
	apply(s KVStore)
}

type loggerOpt struct {
	logger *zap.Logger
}

func WithLogger(logger *zap.Logger) Option {
	return loggerOpt{logger: logger}
}

func (o loggerOpt) apply(s KVStore) {
	if c, ok := s.(Configurable); ok {
		c.SetLogger(o.logger)
	}
}

func NewReadOptions(opts ...ReadOption) (out *ReadOptions) {
	out = &ReadOptions{}
	for _, opt := range opts {
		opt.Apply(out)
	}

	return out
}

type ReadOptions struct {
	KeyOnly bool
}

func (o *ReadOptions) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	if o == nil {
		encoder.AddBool("key_only", false)
		return nil
	}

	encoder.AddBool("key_only", o.KeyOnly)
	return nil
}

type ReadOption interface {
	Apply(o *ReadOptions)
}

// KeyOnly skips fetching values, items pushed by the iterator have a nil Value.
func KeyOnly() ReadOption {
	return keyOnlyReadOption{}
}

type keyOnlyReadOption struct{}

func (o keyOnlyReadOption) Apply(opts *ReadOptions) {
	opts.KeyOnly = true
}
