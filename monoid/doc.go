/*
Package monoid defines the algebraic contract used by the trees of this module,
together with a small set of generic standard monoids.

A monoid is a set S with an associative operation and an identity element:

	Operate(Operate(a, b), c) == Operate(a, Operate(b, c))
	Operate(Identity(), a) == a == Operate(a, Identity())

Neither law is checked at runtime. Supplying an operation which violates them
results in silently wrong aggregates, not in an error.

Aggregates are passed by value. Clients with large aggregates should use handle
types which are cheap to copy and treat them as immutable.

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package monoid

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'sumtrees'
func tracer() tracing.Trace {
	return tracing.Select("sumtrees")
}
