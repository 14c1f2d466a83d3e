package memo_test

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fnkit-go/fnkit/memo"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoizeI1O1(t *testing.T) {
	count := 0
	fn := memo.MemoizeI1O1(func(i int) int {
		count++
		return i * 2
	})

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)

	assert.Equal(t, 6, fn(3))
	assert.Equal(t, 2, count)
}

func TestMemoizeI2O1(t *testing.T) {
	count := 0
	fn := memo.MemoizeI2O1(func(a, b int) int {
		count++
		return a + b
	})

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 1, count)

	// argument order is part of the key
	assert.Equal(t, 5, fn(3, 2))
	assert.Equal(t, 2, count)
}

func TestMemoizeI3O1(t *testing.T) {
	count := 0
	fn := memo.MemoizeI3O1(func(a, b, c int) int {
		count++
		return a * b * c
	})

	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 24, fn(2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestMemoizeI4O1(t *testing.T) {
	count := 0
	fn := memo.MemoizeI4O1(func(a, b, c, d int) int {
		count++
		return a + b + c + d
	})

	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 10, fn(1, 2, 3, 4))
	assert.Equal(t, 1, count)
}

func TestMemoize_RecursiveFib(t *testing.T) {
	calls := 0
	var memoFib func(int) int
	fib := func(n int) int {
		calls++
		if n < 2 {
			return n
		}
		return memoFib(n-1) + memoFib(n-2)
	}
	memoFib = memo.MemoizeI1O1(fib)

	assert.Equal(t, 55, memoFib(10))
	firstRunCalls := calls
	assert.Equal(t, 11, firstRunCalls) // one invocation per distinct n in 0..10

	assert.Equal(t, 55, memoFib(10))
	assert.Equal(t, firstRunCalls, calls) // second outer call is a pure hit
}

type point struct{ x, y int }

func (p *point) String() string { return fmt.Sprintf("(%d,%d)", p.x, p.y) }

func TestMemoize_StringerCanonicalization(t *testing.T) {
	count := 0
	fn := memo.MemoizeI1O1(func(p *point) int {
		count++
		return p.x + p.y
	})

	// distinct identities, equal structure: one computation
	assert.Equal(t, 3, fn(&point{1, 2}))
	assert.Equal(t, 3, fn(&point{1, 2}))
	assert.Equal(t, 1, count)

	assert.Equal(t, 7, fn(&point{3, 4}))
	assert.Equal(t, 2, count)
}

func TestMemoizeErr_FailureIsNotCached(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fn := memo.MemoizeI1O1Err(func(i int) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return i * 2, nil
	})

	_, err := fn(3)
	assert.ErrorIs(t, err, boom)

	// failure was not cached: the next call retries and succeeds
	v, err := fn(3)
	assert.NoError(t, err)
	assert.Equal(t, 6, v)
	assert.Equal(t, 2, calls)

	// the success is cached
	v, err = fn(3)
	assert.NoError(t, err)
	assert.Equal(t, 6, v)
	assert.Equal(t, 2, calls)
}

func TestMemoizeI2O1Err(t *testing.T) {
	count := 0
	fn := memo.MemoizeI2O1Err(func(a, b int) (int, error) {
		count++
		return a + b, nil
	})

	v, err := fn(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
	_, _ = fn(1, 2)
	assert.Equal(t, 1, count)
}

func TestMemoize_SingleFlight(t *testing.T) {
	var invocations atomic.Int32
	gate := make(chan struct{})
	fn := memo.MemoizeI1O1(func(i int) int {
		invocations.Add(1)
		<-gate
		return i * 2
	})

	const callers = 8
	results := make([]int, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = fn(21)
		}(i)
	}

	time.Sleep(20 * time.Millisecond) // let the callers pile onto the flight
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), invocations.Load())
	for _, r := range results {
		assert.Equal(t, 42, r)
	}
}

func TestMemoize_WithTTL(t *testing.T) {
	count := 0
	fn := memo.MemoizeI1O1(func(i int) int {
		count++
		return i * 2
	}, memo.WithTTL(30*time.Millisecond))

	assert.Equal(t, 2, fn(1))
	assert.Equal(t, 2, fn(1))
	assert.Equal(t, 1, count)

	time.Sleep(50 * time.Millisecond)

	// entry aged out, computation runs again
	assert.Equal(t, 2, fn(1))
	assert.Equal(t, 2, count)
}

func TestMemoize_WithLogger(t *testing.T) {
	fn := memo.MemoizeI1O1(func(i int) int {
		return i + 1
	}, memo.WithLogger(zaptest.NewLogger(t)))

	assert.Equal(t, 2, fn(1))
	assert.Equal(t, 2, fn(1))
}

type flatStore struct {
	mu sync.RWMutex
	m  map[string]any
}

func (s *flatStore) Load(keys []memo.ComparableOrString) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[memo.KeyDigest(keys)]
	return v, ok
}

func (s *flatStore) Store(keys []memo.ComparableOrString, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[memo.KeyDigest(keys)] = value
}

func TestMemoize_WithStore(t *testing.T) {
	store := &flatStore{m: map[string]any{}}
	count := 0
	fn := memo.MemoizeI1O1(func(i int) int {
		count++
		return i * i
	}, memo.WithStore(store))

	assert.Equal(t, 9, fn(3))
	assert.Equal(t, 9, fn(3))
	assert.Equal(t, 1, count)
	assert.Len(t, store.m, 1)
}
