/*
Package condensed offers a sparse, index-addressable sequence type.

Condensed Vectors

A condensed vector stores only the occupied positions of a logically dense
sequence. Every occupied position is kept as an (index, value) entry in a single
slice, sorted by index. Positions without an entry read as the zero value of the
value type. This is useful for domains with large logical index ranges where most
positions are empty, e.g. rows of sparse matrices or sparse attribute arrays.

	cv := condensed.FromSliceFunc[float64, int]([]float64{1, 0, 1.5}, condensed.NonZero)
	cv.Count()          // => 2
	cv.ToSlice(0, 0)    // => [1 0 1.5]

Inserting or deleting logical positions does not touch empty slots at all: only
the indices of occupied entries at or after the edit point are shifted.

	Operation     |   Condensed       |  Slice
	--------------+-------------------+--------
	Lookup        |   O(log n)        |   O(1)
	Put           |   O(n) worst      |   O(1)
	Insert(b, k)  |   O(log n + m)    |   O(N + k)
	Delete(f, k)  |   O(log n + n)    |   O(N)

with n occupied entries, m occupied entries at or after b, and N the dense length.

A Vector is not safe for concurrent use. Pointers returned by lookups are
invalidated by every mutating operation.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

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
package condensed

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// CondensedError is an error type for the condensed module
type CondensedError string

func (e CondensedError) Error() string {
	return string(e)
}

// ErrIndexOutOfRange is flagged whenever a lookup addresses a position
// without an occupied entry.
const ErrIndexOutOfRange = CondensedError("no such index in the condensed vector")

// ErrInvariantViolated is flagged by Check if the entries of a vector are
// not strictly ascending by index.
const ErrInvariantViolated = CondensedError("condensed vector invariant violated")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = CondensedError("illegal arguments")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
