package optional

// Membership and bulk operations of the collection protocol. An option
// behaves as a finite set of at most one element.

// Contains reports whether the option holds a value equal to v. It is always
// false for a None receiver.
func Contains[T comparable](o Option[T], v T) bool {
	return o.present && o.value == v
}

// ContainsFunc is Contains for element types that are not comparable. eq is
// consulted only for a present receiver.
func ContainsFunc[T any](o Option[T], v T, eq func(T, T) bool) bool {
	return o.present && eq(o.value, v)
}

// ContainsAll reports whether the option holds every element of vs. An empty
// vs is contained in every option, None included: the empty set is a subset
// of any set. Note the resulting asymmetry with Contains, which never
// succeeds on None.
func ContainsAll[T comparable](o Option[T], vs []T) bool {
	for _, v := range vs {
		if !o.present || o.value != v {
			return false
		}
	}
	return true
}

// ContainsAllFunc is ContainsAll with a caller-supplied equality relation.
func ContainsAllFunc[T any](o Option[T], vs []T, eq func(T, T) bool) bool {
	for _, v := range vs {
		if !o.present || !eq(o.value, v) {
			return false
		}
	}
	return true
}

// AsSlice returns the contained values as a freshly allocated slice of length
// 0 or 1. For None the slice is nil.
func (o Option[T]) AsSlice() []T {
	if o.present {
		return []T{o.value}
	}
	return nil
}
