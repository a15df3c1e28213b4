package optional

// Functional combinators. Methods cover the operations that stay within one
// element type; transformations introducing a second type parameter are
// package-level functions, since Go methods cannot declare type parameters of
// their own.

// Filter returns the receiver if it holds a value matching pred, and None
// otherwise. pred is not invoked on a None receiver.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.present && pred(o.value) {
		return o
	}
	return None[T]()
}

// FilterNot returns the receiver if it holds a value not matching pred, and
// None otherwise.
func (o Option[T]) FilterNot(pred func(T) bool) Option[T] {
	if o.present && !pred(o.value) {
		return o
	}
	return None[T]()
}

// FilterIndexed is Filter with the element index (always 0) passed to pred.
func (o Option[T]) FilterIndexed(pred func(int, T) bool) Option[T] {
	if o.present && pred(0, o.value) {
		return o
	}
	return None[T]()
}

// Find returns the contained value if it matches pred, together with a flag
// reporting the match. On None, or when the value does not match, it returns
// the zero value and false.
func (o Option[T]) Find(pred func(T) bool) (T, bool) {
	if o.present && pred(o.value) {
		return o.value, true
	}
	var zero T
	return zero, false
}

// Any reports whether the option holds a value matching pred. It is false
// for None, without consulting pred.
func (o Option[T]) Any(pred func(T) bool) bool {
	return o.present && pred(o.value)
}

// All reports whether every contained value matches pred. It is vacuously
// true for None, without consulting pred.
func (o Option[T]) All(pred func(T) bool) bool {
	return !o.present || pred(o.value)
}

// None reports whether no contained value matches pred. It is true for an
// empty receiver, without consulting pred. (The method shares its name with
// the constructor None; Go keeps method and function namespaces apart.)
func (o Option[T]) None(pred func(T) bool) bool {
	return !o.present || !pred(o.value)
}

// Or returns the receiver if present, and other otherwise. For a lazily
// produced alternative use OrElse.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// OrElse returns the receiver if present; otherwise it calls supply for the
// result. supply is not invoked on a present receiver.
func (o Option[T]) OrElse(supply func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return supply()
}

// Xor returns whichever of the receiver and other is present, or None when
// both or neither are.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	if o.present == other.present {
		return None[T]()
	}
	return o.Or(other)
}

// ---------------------------------------------------------------------------

// Map transforms the contained value with f. On None, f is not invoked and
// the result is None[U]. f must produce a value; to express a transformation
// that may itself come up empty, use FlatMap or MapPtr.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.present {
		return Some(f(o.value))
	}
	return None[U]()
}

// MapIndexed is Map with the element index (always 0) passed to f.
func MapIndexed[T, U any](o Option[T], f func(int, T) U) Option[U] {
	if o.present {
		return Some(f(0, o.value))
	}
	return None[U]()
}

// FlatMap transforms the contained value with f, which may itself report
// absence by returning None. On a None receiver, f is not invoked.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.present {
		return f(o.value)
	}
	return None[U]()
}

// MapPtr transforms the contained value with f and treats a nil result as
// absence. On a None receiver, f is not invoked.
func MapPtr[T, U any](o Option[T], f func(T) *U) Option[U] {
	if o.present {
		return FromPointer(f(o.value))
	}
	return None[U]()
}

// Fold combines initial with the contained value through op. On None, op is
// not invoked and initial is returned unchanged.
func Fold[T, U any](o Option[T], initial U, op func(U, T) U) U {
	if o.present {
		return op(initial, o.value)
	}
	return initial
}

// FoldIndexed is Fold with the element index (always 0) passed to op.
func FoldIndexed[T, U any](o Option[T], initial U, op func(int, U, T) U) U {
	if o.present {
		return op(0, initial, o.value)
	}
	return initial
}
