package compose_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/fnkit-go/fnkit/compose"

	"github.com/stretchr/testify/assert"
)

func TestPipe_AppliesLeftToRight(t *testing.T) {
	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	// (3*2)+1, not (3+1)*2
	assert.Equal(t, 7, compose.Pipe(double, inc)(3))
	assert.Equal(t, 8, compose.Compose(double, inc)(3))
}

func TestPipe_ZeroStagesIsIdentity(t *testing.T) {
	assert.Equal(t, 42, compose.Pipe[int]()(42))
	assert.Equal(t, "x", compose.Compose[string]()("x"))
}

func TestPipe_SingleStage(t *testing.T) {
	double := func(n int) int { return n * 2 }
	assert.Equal(t, 10, compose.Pipe(double)(5))
	assert.Equal(t, 10, compose.Compose(double)(5))
}

func TestPipe2_HeterogeneousTypes(t *testing.T) {
	itoa := strconv.Itoa
	upper := strings.ToUpper
	length := func(s string) int { return len(s) }

	assert.Equal(t, "12", compose.Pipe2(itoa, upper)(12))
	assert.Equal(t, 3, compose.Pipe3(itoa, upper, length)(100))
}

func TestPipe3_EqualsNestedApplication(t *testing.T) {
	f := func(n int) int { return n + 1 }
	g := func(n int) int { return n * 3 }
	h := func(n int) int { return n - 2 }

	for _, x := range []int{-4, 0, 1, 9} {
		assert.Equal(t, h(g(f(x))), compose.Pipe3(f, g, h)(x))
		assert.Equal(t, f(g(h(x))), compose.Compose3(f, g, h)(x))
	}
}

func TestPipe8_LongChain(t *testing.T) {
	inc := func(n int) int { return n + 1 }
	got := compose.Pipe8(inc, inc, inc, inc, inc, inc, inc, inc)(0)
	assert.Equal(t, 8, got)
}

func TestCompose2_AppliesRightToLeft(t *testing.T) {
	itoa := strconv.Itoa
	double := func(n int) int { return n * 2 }

	assert.Equal(t, "6", compose.Compose2(itoa, double)(3))
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, 5, compose.Identity(5))
	assert.Equal(t, "id", compose.Identity("id"))
}

func TestConst(t *testing.T) {
	always7 := compose.Const[string](7)
	assert.Equal(t, 7, always7("ignored"))
	assert.Equal(t, 7, always7(""))
}

func TestPipe_Idempotent(t *testing.T) {
	trim := strings.TrimSpace
	upper := strings.ToUpper
	p := compose.Pipe(trim, upper)

	first := p("  hello ")
	second := p("  hello ")
	assert.Equal(t, first, second)
	assert.Equal(t, "HELLO", first)
}

func TestPipeErr2_FailsFast(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	parse := func(s string) (int, error) { return strconv.Atoi(s) }
	double := func(n int) (int, error) {
		calls++
		return n * 2, nil
	}
	fail := func(string) (int, error) { return 0, boom }

	got, err := compose.PipeErr2(parse, double)("21")
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)

	_, err = compose.PipeErr2(fail, double)("nope")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls) // second stage never ran
}

func TestPipeErr3_PropagatesMiddleError(t *testing.T) {
	boom := errors.New("mid")
	f := func(n int) (int, error) { return n + 1, nil }
	g := func(int) (int, error) { return 0, boom }
	h := func(n int) (int, error) { return n * 10, nil }

	_, err := compose.PipeErr3(f, g, h)(1)
	assert.ErrorIs(t, err, boom)
}
