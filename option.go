package optional

import "fmt"

// Option represents an optional value: a container holding either exactly one
// value of type T ("Some") or no value at all ("None").
//
// The zero value of Option[T] is None. An option is never mutated in place;
// operations return new options. For comparable T, Option[T] is itself
// comparable with ==, and struct equality coincides with the structural
// equality of the container: two options are equal iff both are None, or both
// are Some of equal values. (Every operation maintains the invariant that a
// None option carries the zero value of T in its value slot, so == cannot be
// confused by stale values.)
type Option[T any] struct {
	value   T
	present bool
}

// Some constructs an option holding v. Some is defined for every v, including
// a nil pointer or nil interface: such an option is present, and distinct
// from None.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None constructs an empty option. Go generics instantiate one canonical
// empty per element type; use As to carry an option, empty or not, over to
// another element type.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer converts Go's native nullable representation into an option:
// nil becomes None, everything else Some of the pointed-to value (copied).
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk converts a (value, ok) pair, as produced by map lookups, channel
// receives and type assertions, into an option.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromComparable returns Some(v), except that the zero value of T becomes
// None. Useful for legacy APIs that use the zero value as an absence marker.
func FromComparable[T comparable](v T) Option[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}

// As converts the element type of an option. A present value whose dynamic
// type satisfies U is carried over as Some[U]; anything else, including a
// None receiver, yields None[U]. This covers both narrowing (keep the value
// only if it is a U) and explicit widening to an interface type that T
// implements.
func As[U, T any](o Option[T]) Option[U] {
	if o.present {
		if u, ok := any(o.value).(U); ok {
			return Some(u)
		}
	}
	return None[U]()
}

// IsSome reports whether the option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// IsSomeAnd reports whether the option contains a value matching pred.
// pred is not invoked on a None receiver.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.present && pred(o.value)
}

// IsNoneOr reports whether the option is empty or contains a value matching
// pred. pred is not invoked on a None receiver.
func (o Option[T]) IsNoneOr(pred func(T) bool) bool {
	return !o.present || pred(o.value)
}

// Len returns the number of contained values: 1 for Some, 0 for None.
func (o Option[T]) Len() int {
	if o.present {
		return 1
	}
	return 0
}

// String renders the option as "Some(<value>)" or "None".
func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

var _ fmt.Stringer = Option[int]{}

// Equal reports structural equality of two options: both None, or both Some
// of equal values.
func Equal[T comparable](a, b Option[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}

// EqualFunc is Equal for element types that are not comparable. eq is
// consulted only when both options are present.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || eq(a.value, b.value)
}
