/*
Package optional provides Option[T], a container holding either exactly one
value of some type T or no value at all. Intended audience for this package
are:

▪︎ library authors who want to express "this may be missing" in a signature
without reserving a pointer, a zero value or an extra boolean for it

▪︎ application code decoding configuration or wire data where "absent" and
"present but zero" must not collapse into one state

▪︎ any code that wants map/filter/fold-style composition over a value that may
not be there, with the same cost as writing the if-statement by hand

An Option[T] is a plain struct of a value slot and a presence flag. It is
immutable after construction: every operation that seems to modify an option
returns a new one, and the same option instance may be read from any number
of goroutines without synchronization. The zero value of Option[T] is None,
so options embed safely into larger structs.

Besides the functional combinators (Filter, Map, FlatMap, Fold and friends),
the type carries the operations of a finite set of at most one element:
membership tests, size, slice conversion and iteration, including the
operations that degenerate to identities on such a set (Sorted, Distinct,
Reversed, ...). This lets an option stand in wherever code expects a small
collection, without adapter glue at the call site.

Every operation taking a caller-supplied function observes one rule: the
function is never invoked when the receiver is None, and is invoked exactly
once, synchronously, when it is Some. Panics raised by supplied functions
propagate to the caller unchanged; this package never recovers, wraps or
retries them.

Conversions between Option[T] and Go's native optional representations live
at the package boundary: FromPointer/AsPointer for pointers, FromOk for
(value, ok) pairs, plus JSON, YAML and database/sql codec hooks.

# Status

Complete for single-value containers. Multi-value monadic structures (lists,
results) are out of scope here and may some day get sister packages.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package optional

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fp.optional'
func tracer() tracing.Trace {
	return tracing.Select("fp.optional")
}
