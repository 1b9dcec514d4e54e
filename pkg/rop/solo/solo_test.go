package solo

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/match"
)

var (
	errA = rop.BrandedError("A")
	errB = rop.BrandedError("B")
)

func TestMap_Success(t *testing.T) {
	t.Parallel()

	out := Map(rop.Ok[*rop.Base](21), func(r int) int { return r * 2 })

	assert.Equal(t, rop.Ok[*rop.Base](42), out)
}

func TestMap_ChangesType(t *testing.T) {
	t.Parallel()

	out := Map(rop.Ok[*rop.Base](7), strconv.Itoa)

	assert.Equal(t, "7", rop.Unwrap(out))
}

func TestMap_ErrorPassesThrough(t *testing.T) {
	t.Parallel()

	e := errA.New("boom")
	called := false
	out := Map(rop.Err[int](e), func(r int) string {
		called = true
		return "never"
	})

	assert.False(t, called)
	assert.Equal(t, rop.Err[string](e), out)
	assert.Same(t, e, rop.UnwrapErr(out))
}

func TestMapErr_TransformsOnlyErrorSlot(t *testing.T) {
	t.Parallel()

	toB := func(e *rop.Base) *rop.Base { return errB.Wrap(e, "remapped") }

	ok := MapErr(rop.Ok[*rop.Base](1), toB)
	assert.Equal(t, rop.Ok[*rop.Base](1), ok)

	failed := MapErr(rop.Err[int](errA.New("x")), toB)
	require.True(t, failed.IsErr())
	assert.Equal(t, "B", failed.Err().Brand())
	assert.ErrorIs(t, failed.Err(), errA.New("any"))
}

func TestMapErr_ToDifferentType(t *testing.T) {
	t.Parallel()

	out := MapErr(rop.Err[int](errA.New("x")), func(e *rop.Base) *rop.UnknownException {
		return rop.NewUnknownException(e)
	})

	assert.Equal(t, rop.UnknownExceptionBrand, rop.UnwrapErr(out).Brand())
}

func TestCatchAllErr(t *testing.T) {
	t.Parallel()

	absorb := func(e *rop.Base) string { return "recovered " + e.Brand() }

	fromErr := CatchAllErr(rop.Err[string](errA.New("x")), absorb)
	assert.Equal(t, rop.Ok[rop.Never]("recovered A"), fromErr)
	assert.False(t, fromErr.IsErr())

	fromOk := CatchAllErr(rop.Ok[*rop.Base]("fine"), absorb)
	assert.Equal(t, "fine", rop.Unwrap(fromOk))
}

func TestCatchAllBrands(t *testing.T) {
	t.Parallel()

	brands := match.Cases[*rop.Base, string, string]{
		"A": func(e *rop.Base) string { return "got-a: " + e.Message() },
		"B": func(e *rop.Base) string { return "got-b" },
	}

	assert.Equal(t, "got-a: x", rop.Unwrap(CatchAllBrands(rop.Err[string](errA.New("x")), brands)))
	assert.Equal(t, "got-b", rop.Unwrap(CatchAllBrands(rop.Err[string](errB.New("y")), brands)))
	assert.Equal(t, "value", rop.Unwrap(CatchAllBrands(rop.Ok[*rop.Base]("value"), brands)))
}

func TestCatchAllBrands_AgreesWithCatchAllErr(t *testing.T) {
	t.Parallel()

	f := func(e *rop.Base) int { return len(e.Message()) }
	e := errA.New("four")

	assert.Equal(t,
		CatchAllErr(rop.Err[int](e), f),
		CatchAllBrands(rop.Err[int](e), match.Cases[*rop.Base, string, int]{"A": f}))
}

type quotaError struct {
	*rop.Base
	limit int
}

func TestCatchAllBrands_SameBrandAcrossGoTypes(t *testing.T) {
	t.Parallel()

	quota := rop.BrandedError("X")
	custom := &quotaError{Base: quota.New("over quota"), limit: 10}
	plain := rop.BrandedError("X").New("declared elsewhere")

	brands := match.Cases[rop.BaseError, string, string]{
		"X": func(e rop.BaseError) string { return "got-x: " + e.Message() },
		"A": func(rop.BaseError) string { return "got-a" },
	}

	fromCustom := CatchAllBrands(rop.Err[string, rop.BaseError](custom), brands)
	fromPlain := CatchAllBrands(rop.Err[string, rop.BaseError](plain), brands)

	assert.Equal(t, "got-x: over quota", rop.Unwrap(fromCustom))
	assert.Equal(t, "got-x: declared elsewhere", rop.Unwrap(fromPlain))
	assert.Equal(t, "X", custom.Brand())
	assert.Equal(t, 10, custom.limit)
}

func TestCatchAllBrands_MissingBrandPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, match.ErrNoHandler)
	}()

	CatchAllBrands(rop.Err[int](errB.New("y")), match.Cases[*rop.Base, string, int]{
		"A": func(*rop.Base) int { return 1 },
	})
	t.Fatal("CatchAllBrands should have panicked")
}

func TestSwitch(t *testing.T) {
	t.Parallel()

	parse := func(s string) rop.Result[int, *rop.Base] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return rop.Err[int](errA.Wrap(err, "not a number"))
		}
		return rop.Ok[*rop.Base](n)
	}

	assert.Equal(t, 12, rop.Unwrap(Switch(rop.Ok[*rop.Base]("12"), parse)))

	bad := Switch(rop.Ok[*rop.Base]("x"), parse)
	assert.True(t, bad.IsErr())
	assert.Equal(t, "not a number", bad.Err().Message())

	e := errB.New("earlier")
	assert.Same(t, e, rop.UnwrapErr(Switch(rop.Err[string](e), parse)))
}

func TestTee(t *testing.T) {
	t.Parallel()

	var seen []int
	record := func(r int) { seen = append(seen, r) }

	in := rop.Ok[*rop.Base](3)
	assert.Equal(t, in, Tee(in, record))

	failed := rop.Err[int](errA.New("x"))
	assert.Equal(t, failed, Tee(failed, record))

	assert.Equal(t, []int{3}, seen)
}

func TestFinally(t *testing.T) {
	t.Parallel()

	onSuccess := func(r int) string { return "val:" + strconv.Itoa(r) }
	onError := func(e *rop.Base) string { return "err:" + e.Brand() }

	assert.Equal(t, "val:5", Finally(rop.Ok[*rop.Base](5), onSuccess, onError))
	assert.Equal(t, "err:A", Finally(rop.Err[int](errA.New("x")), onSuccess, onError))
}
