package mytex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/barometz/mytex"
)

func TestGuardsCompareByValue(t *testing.T) {
	a := mytex.New(6)
	b := mytex.New(6)

	ga := a.Lock()
	gb := b.Lock()
	require.True(t, mytex.Equal(ga, gb))
	require.False(t, mytex.NotEqual(ga, gb))
	require.True(t, mytex.LessEqual(ga, gb))
	require.True(t, mytex.GreaterEqual(ga, gb))
	require.False(t, mytex.Less(ga, gb))
	require.False(t, mytex.Greater(ga, gb))

	// Comparison follows the referenced values, so mutation changes the
	// answer.
	ga.Set(5)
	require.False(t, mytex.Equal(ga, gb))
	require.True(t, mytex.NotEqual(ga, gb))
	require.True(t, mytex.Less(ga, gb))
	require.True(t, mytex.LessEqual(ga, gb))
	require.False(t, mytex.Greater(ga, gb))
	require.False(t, mytex.GreaterEqual(ga, gb))

	ga.Unlock()
	gb.Unlock()
}

func TestGuardVersusBareValue(t *testing.T) {
	m := mytex.New(6)
	g := m.Lock()
	defer g.Unlock()

	// Both operand positions via the Val adapter.
	require.True(t, mytex.Equal(g, mytex.Val(6)))
	require.True(t, mytex.Equal(mytex.Val(6), g))
	require.True(t, mytex.Less(mytex.Val(5), g))
	require.True(t, mytex.Greater(g, mytex.Val(5)))
	require.True(t, mytex.NotEqual(g, mytex.Val(7)))
	require.True(t, mytex.LessEqual(g, mytex.Val(7)))
}

func TestSharedGuardInComparisonFamily(t *testing.T) {
	a := mytex.NewRW(3)
	b := mytex.New(4)

	ra := a.LockShared()
	gb := b.Lock()
	defer ra.Unlock()
	defer gb.Unlock()

	require.True(t, mytex.Less(ra, gb))
	require.True(t, mytex.Greater(gb, ra))
	require.True(t, mytex.Equal(ra, mytex.Val(3)))
}

func TestCompareAcrossValueTypes(t *testing.T) {
	// Two guards protecting different numeric types compare through an
	// explicit comparator, as with the slices Func variants.
	a := mytex.New(int32(6))
	b := mytex.New(int64(6))

	ga := a.Lock()
	gb := b.Lock()
	defer ga.Unlock()
	defer gb.Unlock()

	eq := func(x int32, y int64) bool { return int64(x) == y }
	cmp := func(x int32, y int64) int {
		switch {
		case int64(x) < y:
			return -1
		case int64(x) > y:
			return +1
		}
		return 0
	}

	require.True(t, mytex.EqualFunc(ga, gb, eq))
	require.Zero(t, mytex.CompareFunc(ga, gb, cmp))

	ga.Set(5)
	require.False(t, mytex.EqualFunc(ga, gb, eq))
	require.Equal(t, -1, mytex.CompareFunc(ga, gb, cmp))
}

func TestFloatNaNSortsFirst(t *testing.T) {
	a := mytex.New(math.NaN())
	b := mytex.New(1.0)

	ga := a.Lock()
	gb := b.Lock()
	defer ga.Unlock()
	defer gb.Unlock()

	// NaN sorts before any value and is equal only to another NaN, as
	// with cmp.Compare.
	require.True(t, mytex.Less(ga, gb))
	require.True(t, mytex.NotEqual(ga, gb))
	require.True(t, mytex.Greater(gb, ga))
	require.False(t, mytex.GreaterEqual(ga, gb))
	require.True(t, mytex.Less(ga, mytex.Val(math.Inf(-1))))

	c := mytex.New(math.NaN())
	gc := c.Lock()
	defer gc.Unlock()
	require.True(t, mytex.Equal(ga, gc))
	require.False(t, mytex.Less(ga, gc))
	require.True(t, mytex.LessEqual(ga, gc))

	// The optional family uses the same convention, with empty still
	// sorting before NaN.
	d := mytex.New(math.NaN())
	od := d.TryLock()
	defer od.Unlock()
	require.True(t, mytex.LessOpt(od, mytex.Held(0.0)))
	require.True(t, mytex.EqualOpt(od, mytex.Held(math.NaN())))
	require.True(t, mytex.GreaterOpt(od, mytex.None[float64]()))
}

func TestOptionalGuardComparisons(t *testing.T) {
	// Two held locks produce two empty optional guards; empty compares
	// equal to empty.
	a := mytex.New(1)
	b := mytex.New(2)
	holdA := a.Lock()
	holdB := b.Lock()
	defer holdA.Unlock()
	defer holdB.Unlock()

	emptyA := a.TryLock()
	emptyB := b.TryLock()
	require.False(t, emptyA.Held())
	require.False(t, emptyB.Held())

	require.True(t, mytex.EqualOpt(emptyA, emptyB))
	require.False(t, mytex.LessOpt(emptyA, emptyB))
	require.True(t, mytex.LessEqualOpt(emptyA, emptyB))
	require.True(t, mytex.GreaterEqualOpt(emptyA, emptyB))

	// Empty sorts strictly before any held value.
	c := mytex.New(7)
	held := c.TryLock()
	defer held.Unlock()
	require.True(t, held.Held())

	require.True(t, mytex.LessOpt(emptyA, held))
	require.True(t, mytex.GreaterOpt(held, emptyA))
	require.True(t, mytex.NotEqualOpt(emptyA, held))

	// Two held optionals compare by value.
	d := mytex.New(7)
	heldToo := d.TryLock()
	defer heldToo.Unlock()
	require.True(t, mytex.EqualOpt(held, heldToo))

	heldToo.Set(8)
	require.True(t, mytex.LessOpt(held, heldToo))
}

func TestOptionalGuardVersusBareValue(t *testing.T) {
	m := mytex.New(6)

	held := m.TryLock()
	require.True(t, held.Held())
	require.True(t, mytex.EqualOpt(held, mytex.Held(6)))
	require.True(t, mytex.EqualOpt(mytex.Held(6), held))
	require.True(t, mytex.LessOpt(held, mytex.Held(7)))
	require.True(t, mytex.GreaterOpt(mytex.Held(7), held))

	// An empty optional is never equal to, and always less than, a bare
	// value.
	empty := m.TryLock()
	require.False(t, empty.Held())
	require.True(t, mytex.NotEqualOpt(empty, mytex.Held(6)))
	require.True(t, mytex.LessOpt(empty, mytex.Held(6)))
	require.True(t, mytex.GreaterOpt(mytex.Held(6), empty))

	held.Unlock()
}

func TestOptionalGuardVersusNone(t *testing.T) {
	m := mytex.New(6)

	// Held vs the no-value sentinel, both operand positions.
	held := m.TryLock()
	require.True(t, mytex.NotEqualOpt(held, mytex.None[int]()))
	require.True(t, mytex.GreaterOpt(held, mytex.None[int]()))
	require.True(t, mytex.LessOpt(mytex.None[int](), held))

	// Empty vs the sentinel: equal, not less.
	empty := m.TryLock()
	require.False(t, empty.Held())
	require.True(t, mytex.EqualOpt(empty, mytex.None[int]()))
	require.True(t, mytex.EqualOpt(mytex.None[int](), empty))
	require.False(t, mytex.LessOpt(empty, mytex.None[int]()))
	require.False(t, mytex.LessOpt(mytex.None[int](), empty))

	held.Unlock()
}

func TestOptionalSharedGuardComparisons(t *testing.T) {
	a := mytex.NewRW(5)
	b := mytex.NewRW(5)

	ra := a.TryLockShared()
	rb := b.TryLockShared()
	defer ra.Unlock()
	defer rb.Unlock()
	require.True(t, ra.Held())
	require.True(t, rb.Held())

	require.True(t, mytex.EqualOpt(ra, rb))
	require.True(t, mytex.GreaterOpt(ra, mytex.None[int]()))
	require.True(t, mytex.LessOpt(ra, mytex.Held(6)))
}

func TestOptionalCompareAcrossValueTypes(t *testing.T) {
	a := mytex.New(int32(6))
	b := mytex.New(int64(6))

	eq := func(x int32, y int64) bool { return int64(x) == y }
	cmp := func(x int32, y int64) int {
		switch {
		case int64(x) < y:
			return -1
		case int64(x) > y:
			return +1
		}
		return 0
	}

	ga := a.TryLock()
	gb := b.TryLock()
	require.True(t, mytex.EqualOptFunc(ga, gb, eq))
	require.Zero(t, mytex.CompareOptFunc(ga, gb, cmp))
	ga.Unlock()

	// One empty operand: unequal, and empty sorts first regardless of
	// the comparator.
	hold := a.TryLock()
	require.True(t, hold.Held())
	emptied := a.TryLock()
	require.False(t, emptied.Held())
	require.False(t, mytex.EqualOptFunc(emptied, gb, eq))
	require.Equal(t, -1, mytex.CompareOptFunc(emptied, gb, cmp))
	require.Equal(t, +1, mytex.CompareOptFunc(gb, emptied, func(y int64, x int32) int { return -cmp(x, y) }))

	hold.Unlock()
	gb.Unlock()
}

// Note what is absent: a plain guard cannot be compared against an
// optional guard. Ref and OptRef are sealed, separate views, so
// mytex.EqualOpt(someGuard, someOptGuard) does not compile; deref the
// plain guard first and wrap it with Held.
func TestPlainGuardBridgedIntoOptionalFamily(t *testing.T) {
	a := mytex.New(6)
	b := mytex.New(6)

	g := a.Lock()
	defer g.Unlock()
	og := b.TryLock()
	defer og.Unlock()

	require.True(t, mytex.EqualOpt(mytex.Held(g.Value()), og))
}
