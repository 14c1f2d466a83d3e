package memo

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/fnkit-go/fnkit/shared/helper"
)

type config struct {
	maxSize uint32
	ttl     time.Duration
	logger  *zap.Logger
	store   Store
}

// Option configures a memoized instance at construction time.
type Option func(*config)

// WithMaxSize bounds the default trie store to roughly maxSize entries via
// generation rotation. This is the explicit eviction extension; without it
// the cache never evicts and grows with the number of distinct keys.
func WithMaxSize(maxSize uint32) Option {
	return func(c *config) { c.maxSize = maxSize }
}

// WithTTL limits each entry to a validity span of ttl from the moment it was
// computed. Entries found outside their span are recomputed. Like
// [WithMaxSize], expiry is an explicit extension, never a silent default.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) { c.ttl = ttl }
}

// WithLogger emits cache activity through the given zap logger at Debug
// level. The default logger is a no-op.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithStore replaces the default trie store with a caller-supplied [Store],
// e.g. an eviction-capable cache. WithMaxSize has no effect on an external
// store.
func WithStore(store Store) Option {
	return func(c *config) { c.store = store }
}

// entry is what actually lives in the store: the computed value plus the
// span during which it may be served.
type entry struct {
	value    any
	validity timespan.TimeSpan
	expiring bool
}

// memoizer implements the shared call path behind the Memoize family. Each
// wrapped function owns exactly one memoizer, so caches are never shared
// between instances.
type memoizer struct {
	store  Store
	flight singleflight.Group
	conf   config
	id     string
}

func newMemoizer(opts []Option) *memoizer {
	conf := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&conf)
	}
	store := conf.store
	if store == nil {
		store = NewTrieStore(conf.maxSize)
	}
	return &memoizer{
		store: store,
		conf:  conf,
		id:    uuid.New().String(),
	}
}

// call returns the cached value for keys, or computes it via fn. Concurrent
// callers with an identical in-flight key await the single in-progress
// computation instead of duplicating work. A computation error propagates
// to every awaiting caller and nothing is cached, so the next call retries.
func (m *memoizer) call(keys []ComparableOrString, fn func() (any, error)) (any, error) {
	if v, ok := m.lookup(keys); ok {
		m.conf.logger.Debug("memo cache hit", zap.String("memo_id", m.id))
		return v, nil
	}

	digest := KeyDigest(keys)
	v, err, shared := m.flight.Do(digest, func() (any, error) {
		// a peer flight may have populated the store since our lookup
		if v, ok := m.lookup(keys); ok {
			return v, nil
		}
		out, err := fn()
		if err != nil {
			return nil, err
		}
		m.store.Store(keys, m.newEntry(out))
		return out, nil
	})
	if err != nil {
		m.conf.logger.Debug("memo computation failed",
			zap.String("memo_id", m.id),
			zap.String("key", digest),
			zap.Error(err),
		)
		return nil, err
	}
	m.conf.logger.Debug("memo cache miss",
		zap.String("memo_id", m.id),
		zap.String("key", digest),
		zap.Bool("shared", shared),
	)
	return v, nil
}

func (m *memoizer) lookup(keys []ComparableOrString) (any, bool) {
	raw, ok := m.store.Load(keys)
	if !ok {
		return nil, false
	}
	e, ok := raw.(entry)
	if !ok {
		return nil, false
	}
	if e.expiring && !e.validity.Contains(time.Now()) {
		return nil, false
	}
	return e.value, true
}

func (m *memoizer) newEntry(value any) entry {
	e := entry{value: value}
	if m.conf.ttl > 0 {
		now := time.Now()
		e.validity = timespan.BetweenTimes(now, now.Add(m.conf.ttl))
		e.expiring = true
	}
	return e
}

// MemoizeI1O1 memoizes a pure unary function. The wrapped function invokes
// pureFn at most once per distinct canonicalized argument for the lifetime
// of the instance.
func MemoizeI1O1[I1 ComparableOrStringer, O1 any](pureFn func(I1) O1, opts ...Option) func(I1) O1 {
	m := newMemoizer(opts)
	return func(i1 I1) O1 {
		return helper.MustGetTypedValue[O1](func() (any, error) {
			return m.call(canonicalKeys(i1), func() (any, error) {
				return pureFn(i1), nil
			})
		})
	}
}

// MemoizeI2O1 memoizes a pure binary function.
func MemoizeI2O1[I1, I2 ComparableOrStringer, O1 any](pureFn func(I1, I2) O1, opts ...Option) func(I1, I2) O1 {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2) O1 {
		return helper.MustGetTypedValue[O1](func() (any, error) {
			return m.call(canonicalKeys(i1, i2), func() (any, error) {
				return pureFn(i1, i2), nil
			})
		})
	}
}

// MemoizeI3O1 memoizes a pure ternary function.
func MemoizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](pureFn func(I1, I2, I3) O1, opts ...Option) func(I1, I2, I3) O1 {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return helper.MustGetTypedValue[O1](func() (any, error) {
			return m.call(canonicalKeys(i1, i2, i3), func() (any, error) {
				return pureFn(i1, i2, i3), nil
			})
		})
	}
}

// MemoizeI4O1 memoizes a pure four-argument function.
func MemoizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](pureFn func(I1, I2, I3, I4) O1, opts ...Option) func(I1, I2, I3, I4) O1 {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return helper.MustGetTypedValue[O1](func() (any, error) {
			return m.call(canonicalKeys(i1, i2, i3, i4), func() (any, error) {
				return pureFn(i1, i2, i3, i4), nil
			})
		})
	}
}

// MemoizeI1O1Err memoizes a fallible unary function. A returned error
// propagates to the caller and is not cached, so a later call with the same
// argument retries the computation.
func MemoizeI1O1Err[I1 ComparableOrStringer, O1 any](fn func(I1) (O1, error), opts ...Option) func(I1) (O1, error) {
	m := newMemoizer(opts)
	return func(i1 I1) (O1, error) {
		return helper.GetTypedValueOf[O1](func() (any, error) {
			return m.call(canonicalKeys(i1), func() (any, error) {
				return fn(i1)
			})
		})
	}
}

// MemoizeI2O1Err memoizes a fallible binary function.
func MemoizeI2O1Err[I1, I2 ComparableOrStringer, O1 any](fn func(I1, I2) (O1, error), opts ...Option) func(I1, I2) (O1, error) {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2) (O1, error) {
		return helper.GetTypedValueOf[O1](func() (any, error) {
			return m.call(canonicalKeys(i1, i2), func() (any, error) {
				return fn(i1, i2)
			})
		})
	}
}

// MemoizeI3O1Err memoizes a fallible ternary function.
func MemoizeI3O1Err[I1, I2, I3 ComparableOrStringer, O1 any](fn func(I1, I2, I3) (O1, error), opts ...Option) func(I1, I2, I3) (O1, error) {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2, i3 I3) (O1, error) {
		return helper.GetTypedValueOf[O1](func() (any, error) {
			return m.call(canonicalKeys(i1, i2, i3), func() (any, error) {
				return fn(i1, i2, i3)
			})
		})
	}
}

// MemoizeI4O1Err memoizes a fallible four-argument function.
func MemoizeI4O1Err[I1, I2, I3, I4 ComparableOrStringer, O1 any](fn func(I1, I2, I3, I4) (O1, error), opts ...Option) func(I1, I2, I3, I4) (O1, error) {
	m := newMemoizer(opts)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, error) {
		return helper.GetTypedValueOf[O1](func() (any, error) {
			return m.call(canonicalKeys(i1, i2, i3, i4), func() (any, error) {
				return fn(i1, i2, i3, i4)
			})
		})
	}
}
