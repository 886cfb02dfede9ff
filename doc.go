/*
Package sumtrees is a collection of array-backed aggregate trees.

Sum Trees

A sum tree keeps the aggregate of a sequence of values under an associative
operation up to date while single values change, and answers aggregate
queries over ranges of the sequence. The operation, together with an identity
element, forms a monoid (see package monoid). Sums, products, minimum and
maximum are the usual examples, but any associative operation will do,
including non-commutative ones such as concatenation.

The module contains

	fenwick   prefix aggregates with point updates (binary indexed tree)
	segtree   range aggregates with point updates, and the lazy variant with
	          range actions such as range assignment
	bisect    binary search for the boundaries of a monotone comparator,
	          over slices, integer intervals and Fenwick prefix aggregates

All trees have a fixed number of elements, chosen at construction time, and
operate in O(log n) time per update or query. None of them is safe for
concurrent modification.

Tracing

Packages of this module trace to the tracing key 'sumtrees'. Tests redirect
it to the testing log with schuko's gotestingadapter.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sumtrees

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
