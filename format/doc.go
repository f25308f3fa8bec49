/*
Package format outputs condensed vectors on devices with fixed-width fonts.

Condensed vectors may span huge logical ranges with only a few occupied
positions. This package lays out a vector as a dense grid of cells, one per
logical position, wrapping lines at a configured width and prefixing every
line with the position of its first cell. Long runs of empty positions may be
collapsed into a single marker, so that sparse vectors remain readable.

Cell widths are measured according to UAX#11 (character width), which makes
values containing East Asian wide characters line up correctly.

BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package format

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
