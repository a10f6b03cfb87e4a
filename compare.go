package mytex

import "golang.org/x/exp/constraints"

// Guards compare by the values they reference, never by lock or guard
// identity. The family below covers guard-vs-guard and guard-vs-value in
// either operand position (wrap the bare value in Val), and a parallel
// family with option semantics covers the optional guards. All six
// relational predicates in each family are derived from a single
// three-way compare, so they cannot disagree with each other.
//
// There is deliberately no comparison between a plain guard and an
// optional guard: Ref and OptRef are distinct, sealed views, so mixing
// them is a compile error. Dereference the plain guard first if that is
// what you mean.

// A Ref is a readable view of a definitely-present value: a *Guard, an
// *RGuard, or a bare value wrapped in Val. It is the operand type of the
// plain comparison family.
type Ref[T any] interface {
	ref() T
}

// An OptRef is a readable view of a possibly-absent value: an *OptGuard,
// an *OptRGuard, a bare value wrapped in Held, or the sentinel None. It
// is the operand type of the optional comparison family.
type OptRef[T any] interface {
	opt() (T, bool)
}

type val[T any] struct{ v T }

func (v val[T]) ref() T { return v.v }

// Val adapts a bare value for comparison against guards.
func Val[T any](v T) Ref[T] { return val[T]{v} }

type held[T any] struct{ v T }

func (h held[T]) opt() (T, bool) { return h.v, true }

// Held adapts a bare value for comparison against optional guards; it
// compares like a holding guard with that value.
func Held[T any](v T) OptRef[T] { return held[T]{v} }

type none[T any] struct{}

func (none[T]) opt() (T, bool) {
	var zero T
	return zero, false
}

// None is the no-value sentinel for the optional comparison family; it
// compares equal to an empty optional guard and less than any holding
// one.
func None[T any]() OptRef[T] { return none[T]{} }

// Compare three-way-compares the referenced values: -1 if a's value is
// less than b's, 0 if equal, +1 if greater.
func Compare[T constraints.Ordered](a, b Ref[T]) int {
	return compareOrdered(a.ref(), b.ref())
}

// Equal reports whether a and b reference equal values.
func Equal[T constraints.Ordered](a, b Ref[T]) bool { return Compare(a, b) == 0 }

// NotEqual reports whether a and b reference unequal values.
func NotEqual[T constraints.Ordered](a, b Ref[T]) bool { return Compare(a, b) != 0 }

// Less reports whether a's referenced value sorts before b's.
func Less[T constraints.Ordered](a, b Ref[T]) bool { return Compare(a, b) < 0 }

// LessEqual reports whether a's referenced value sorts before b's or
// equals it.
func LessEqual[T constraints.Ordered](a, b Ref[T]) bool { return Compare(a, b) <= 0 }

// Greater reports whether a's referenced value sorts after b's.
func Greater[T constraints.Ordered](a, b Ref[T]) bool { return Compare(a, b) > 0 }

// GreaterEqual reports whether a's referenced value sorts after b's or
// equals it.
func GreaterEqual[T constraints.Ordered](a, b Ref[T]) bool { return Compare(a, b) >= 0 }

// CompareOpt three-way-compares two optional views with the usual option
// semantics: empty equals empty, empty sorts before any held value, and
// two held values compare by value.
func CompareOpt[T constraints.Ordered](a, b OptRef[T]) int {
	av, aok := a.opt()
	bv, bok := b.opt()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return +1
	}
	return compareOrdered(av, bv)
}

// EqualOpt reports whether a and b are both empty or hold equal values.
func EqualOpt[T constraints.Ordered](a, b OptRef[T]) bool { return CompareOpt(a, b) == 0 }

// NotEqualOpt is the negation of EqualOpt.
func NotEqualOpt[T constraints.Ordered](a, b OptRef[T]) bool { return CompareOpt(a, b) != 0 }

// LessOpt reports whether a sorts before b, with empty before any value.
func LessOpt[T constraints.Ordered](a, b OptRef[T]) bool { return CompareOpt(a, b) < 0 }

// LessEqualOpt reports whether a sorts before b or equals it.
func LessEqualOpt[T constraints.Ordered](a, b OptRef[T]) bool { return CompareOpt(a, b) <= 0 }

// GreaterOpt reports whether a sorts after b.
func GreaterOpt[T constraints.Ordered](a, b OptRef[T]) bool { return CompareOpt(a, b) > 0 }

// GreaterEqualOpt reports whether a sorts after b or equals it.
func GreaterEqualOpt[T constraints.Ordered](a, b OptRef[T]) bool { return CompareOpt(a, b) >= 0 }

// CompareFunc is Compare for views of two different types, using an
// explicit three-way comparator, in the style of the slices package's
// Func variants. Use it when the two guards protect different numeric
// types.
func CompareFunc[T, U any](a Ref[T], b Ref[U], cmp func(T, U) int) int {
	return cmp(a.ref(), b.ref())
}

// EqualFunc is Equal for views of two different types, using an explicit
// equality predicate.
func EqualFunc[T, U any](a Ref[T], b Ref[U], eq func(T, U) bool) bool {
	return eq(a.ref(), b.ref())
}

// CompareOptFunc is CompareOpt for views of two different types.
func CompareOptFunc[T, U any](a OptRef[T], b OptRef[U], cmp func(T, U) int) int {
	av, aok := a.opt()
	bv, bok := b.opt()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return +1
	}
	return cmp(av, bv)
}

// EqualOptFunc is EqualOpt for views of two different types.
func EqualOptFunc[T, U any](a OptRef[T], b OptRef[U], eq func(T, U) bool) bool {
	av, aok := a.opt()
	bv, bok := b.opt()
	if aok != bok {
		return false
	}
	if !aok {
		return true
	}
	return eq(av, bv)
}

// compareOrdered follows the stdlib cmp.Compare convention: a NaN sorts
// before anything else and compares equal only to another NaN, so the
// six derived operators stay mutually consistent on floats.
func compareOrdered[T constraints.Ordered](x, y T) int {
	xNaN := isNaN(x)
	yNaN := isNaN(y)
	switch {
	case xNaN && yNaN:
		return 0
	case xNaN, x < y:
		return -1
	case yNaN, x > y:
		return +1
	}
	return 0
}

// isNaN reports whether x is a floating-point NaN; always false for
// non-float types.
func isNaN[T constraints.Ordered](x T) bool { return x != x }
