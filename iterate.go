package optional

import "iter"

// Iterator walks the 0 or 1 elements of an option. Create one with
// Option.Iterator; the zero Iterator is exhausted. An Iterator is single-pass
// state owned by its creator and must not be shared across goroutines.
type Iterator[T any] struct {
	rest Option[T]
}

// Iterator returns a fresh iterator over the option's elements. Consuming the
// iterator does not affect the option; call Iterator again for another pass.
func (o Option[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{rest: o}
}

// HasNext reports whether Next will yield a value.
func (it *Iterator[T]) HasNext() bool {
	return it.rest.present
}

// Next returns the next element and exhausts the iterator. It panics with
// ErrNoSuchElement whenever HasNext is false.
func (it *Iterator[T]) Next() T {
	if !it.rest.present {
		panic(ErrNoSuchElement)
	}
	v := it.rest.value
	it.rest = None[T]()
	return v
}

// Iter returns a range-over-func sequence yielding the contained value once,
// or nothing for None. The sequence is re-rangeable; each range is a fresh
// pass.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ForEach invokes action exactly once with the contained value. It does
// nothing on a None receiver.
func (o Option[T]) ForEach(action func(T)) {
	if o.present {
		action(o.value)
	}
}

// ForEachIndexed is ForEach with the element index passed to action. The
// only index a present option has is 0.
func (o Option[T]) ForEachIndexed(action func(int, T)) {
	if o.present {
		action(0, o.value)
	}
}
