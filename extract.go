package optional

// Unwrap returns the contained value and whether it was present. This is the
// Go-native "(value, ok)" extraction; the zero value accompanies ok == false.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.present
}

// MustUnwrap returns the contained value, or panics with ErrNoSuchElement on
// a None receiver. Useful in tests and when presence is guaranteed by an
// invariant.
func (o Option[T]) MustUnwrap() T {
	if !o.present {
		panic(ErrNoSuchElement)
	}
	return o.value
}

// Expect returns the contained value, or panics with msg on a None receiver.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(msg)
	}
	return o.value
}

// UnwrapOrPanic returns the contained value. On None it calls supply and
// panics with the returned error; supply is not invoked on a present
// receiver.
func (o Option[T]) UnwrapOrPanic(supply func() error) T {
	if !o.present {
		panic(supply())
	}
	return o.value
}

// UnwrapOr returns the contained value, or fallback on a None receiver.
func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// UnwrapOrElse returns the contained value. On None it returns supply()'s
// result; supply is not invoked on a present receiver.
func (o Option[T]) UnwrapOrElse(supply func() T) T {
	if o.present {
		return o.value
	}
	return supply()
}

// UnwrapOrZero returns the contained value, or the zero value of T. The zero
// value is this representation's absence marker, so a round trip through
// FromComparable and UnwrapOrZero is lossless.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// OkOr returns the contained value, or err on a None receiver.
func (o Option[T]) OkOr(err error) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	return zero, err
}

// First returns the single contained value. It fails with ErrNoSuchElement
// on a None receiver. For a container of at most one element the first, the
// last and the single element coincide; the three accessors exist for
// collection-protocol parity.
func (o Option[T]) First() (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	return zero, ErrNoSuchElement
}

// Last returns the single contained value, or ErrNoSuchElement on None.
func (o Option[T]) Last() (T, error) {
	return o.First()
}

// Single returns the single contained value, or ErrNoSuchElement on None.
func (o Option[T]) Single() (T, error) {
	return o.First()
}

// FirstOrZero returns the single contained value, or the zero value on None.
func (o Option[T]) FirstOrZero() T {
	return o.value
}

// LastOrZero returns the single contained value, or the zero value on None.
func (o Option[T]) LastOrZero() T {
	return o.value
}

// SingleOrZero returns the single contained value, or the zero value on None.
func (o Option[T]) SingleOrZero() T {
	return o.value
}

// At returns the element at index i. The only valid access is index 0 on a
// present option; anything else fails with an error wrapping
// ErrIndexOutOfRange that names the index.
func (o Option[T]) At(i int) (T, error) {
	if i == 0 && o.present {
		return o.value, nil
	}
	var zero T
	return zero, indexError(i)
}

// AtOrElse returns the element at index i, or fallback(i) for any
// out-of-range access, including every access on None. fallback is not
// invoked for a valid access.
func (o Option[T]) AtOrElse(i int, fallback func(int) T) T {
	if i == 0 && o.present {
		return o.value
	}
	return fallback(i)
}

// AtOrZero returns the element at index i, or the zero value for any
// out-of-range access.
func (o Option[T]) AtOrZero(i int) T {
	if i == 0 && o.present {
		return o.value
	}
	var zero T
	return zero
}

// Presence records whether an IfPresent action ran. It is a plain boolean:
// the IfPresent/Else pair compiles down to the two conditional branches and
// allocates nothing.
type Presence bool

// IfPresent runs action with the contained value iff the option is present,
// and returns a token for chaining Else.
func (o Option[T]) IfPresent(action func(T)) Presence {
	if o.present {
		action(o.value)
		return true
	}
	return false
}

// Else runs fallback iff the preceding IfPresent did not run its action.
func (p Presence) Else(fallback func()) {
	if !p {
		fallback()
	}
}

// IfPresentOrElse runs exactly one of action (with the contained value, when
// present) and fallback (when not).
func (o Option[T]) IfPresentOrElse(action func(T), fallback func()) {
	if o.present {
		action(o.value)
	} else {
		fallback()
	}
}

// IfEmpty runs action iff the option is empty.
func (o Option[T]) IfEmpty(action func()) {
	if !o.present {
		action()
	}
}
