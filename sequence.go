package optional

import (
	"cmp"
	"math/rand/v2"
)

// Sequence operations of the collection protocol. On a container of at most
// one element most of them degenerate to identities: a single value is
// already distinct, sorted, shuffled, reversed. They are spelled out, rather
// than omitted, so that an option can stand in for a small collection without
// the call site special-casing it. No identity below ever invokes a supplied
// comparator, selector or random source.

// Distinct returns the receiver: a container of at most one element holds no
// duplicates.
func (o Option[T]) Distinct() Option[T] {
	return o
}

// Reversed returns the receiver.
func (o Option[T]) Reversed() Option[T] {
	return o
}

// Sorted returns the receiver: at most one element is trivially in order.
func (o Option[T]) Sorted() Option[T] {
	return o
}

// SortedWith returns the receiver. compare is never invoked.
func (o Option[T]) SortedWith(compare func(T, T) int) Option[T] {
	return o
}

// Shuffled returns the receiver: every permutation of at most one element is
// the identity. rnd is never consulted and may be nil.
func (o Option[T]) Shuffled(rnd *rand.Rand) Option[T] {
	return o
}

// ToSet returns the receiver: a container of at most one element already is
// a set.
func (o Option[T]) ToSet() Option[T] {
	return o
}

// RequireNoNils returns the receiver. A present nil value is a legal,
// distinguishable option state here, so there is nothing to reject; the
// method exists for collection-protocol parity.
func (o Option[T]) RequireNoNils() Option[T] {
	return o
}

// FilterNotNil returns the receiver, for the same reason as RequireNoNils:
// absence is modeled by the container state, not by nil-ness of the value.
func (o Option[T]) FilterNotNil() Option[T] {
	return o
}

// SortedBy returns o unchanged; selector is never invoked. It exists for
// parity with SortedWith when ordering by a derived key.
func SortedBy[T any, K cmp.Ordered](o Option[T], selector func(T) K) Option[T] {
	return o
}

// Take returns a prefix of at most n elements: None when n is 0, the
// receiver otherwise. It panics with an error wrapping ErrInvalidArgument
// when n is negative.
func (o Option[T]) Take(n int) Option[T] {
	if n < 0 {
		panic(invalidCount(n))
	}
	if n == 0 {
		return None[T]()
	}
	return o
}

// Drop returns the receiver without its first n elements: the receiver when
// n is 0, None otherwise. It panics with an error wrapping ErrInvalidArgument
// when n is negative.
func (o Option[T]) Drop(n int) Option[T] {
	if n < 0 {
		panic(invalidCount(n))
	}
	if n == 0 {
		return o
	}
	return None[T]()
}
