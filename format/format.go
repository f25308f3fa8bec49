package format

/*
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

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/condensed"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth    int            // target line length in fixed width positions ('en's)
	GapMarker    string         // cell text for unoccupied positions
	CollapseGaps int            // runs of more empty positions are collapsed; 0 = never
	Context      *uax11.Context // character width context; nil = Latin
}

const (
	defaultLineWidth = 65
	defaultGapMarker = "·"
)

func (config Config) normalized() Config {
	if config.LineWidth <= 0 {
		config.LineWidth = defaultLineWidth
	}
	if config.GapMarker == "" {
		config.GapMarker = defaultGapMarker
	}
	if config.CollapseGaps < 0 {
		config.CollapseGaps = 0
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	return config
}

// Format is an interface for formatting drivers, given an io.Writer.
type Format interface {
	Preamble(io.Writer)
	Position(pos int64, width int, w io.Writer) // start of a line
	Cell(text string, occupied bool, w io.Writer)
	Gap(n int64, w io.Writer) // a collapsed run of n empty positions
	Newline(io.Writer)
}

var setupGraphemes sync.Once

// StringWidth returns the display width of s in fixed width positions.
func StringWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Output formats the logical positions [origin, origin+length) of a vector,
// or more if needed to show every occupied position, using a given formatter.
// Values are converted to cell text with fmt.Sprint.
//
// None of the pointer arguments may be nil, length may not be negative, and
// origin may not be greater than the smallest occupied index.
func Output[V any, I condensed.Index](cv *condensed.Vector[V, I], length, origin I,
	out io.Writer, config *Config, format Format) error {
	//
	if cv == nil || out == nil || config == nil || format == nil {
		return fmt.Errorf("%w: nil", condensed.ErrIllegalArguments)
	}
	if length < 0 {
		return fmt.Errorf("%w: negative length %d", condensed.ErrIllegalArguments, length)
	}
	if cv.Count() > 0 && cv.EntryAt(0).Index < origin {
		return fmt.Errorf("%w: origin %d behind index %d", condensed.ErrIllegalArguments,
			origin, cv.EntryAt(0).Index)
	}
	cfg := config.normalized()
	end := int64(origin) + int64(length)
	texts := make([]string, 0, cv.Count())
	cellWidth := StringWidth(cfg.GapMarker, cfg.Context)
	for i, v := range cv.All() {
		s := fmt.Sprint(v)
		texts = append(texts, s)
		cellWidth = max(cellWidth, StringWidth(s, cfg.Context))
		end = max(end, int64(i)+1)
	}
	lo := &layout{
		out:      out,
		format:   format,
		posWidth: len(strconv.FormatInt(max(end-1, int64(origin)), 10)),
	}
	lo.perLine = max(1, (cfg.LineWidth-lo.posWidth-2)/(cellWidth+1))
	T().Debugf("format: %d cells of width %d per line", lo.perLine, cellWidth)
	//
	format.Preamble(out)
	pos, k := int64(origin), 0
	for i := range cv.All() {
		lo.gaps(pos, int64(i)-pos, cellWidth, &cfg)
		lo.cell(int64(i), pad(texts[k], cellWidth, cfg.Context), true)
		pos, k = int64(i)+1, k+1
	}
	lo.gaps(pos, end-pos, cellWidth, &cfg)
	lo.finish()
	return nil
}

// Print outputs a vector to stdout, using a console formatter.
//
// If parameter config is nil,
// a heuristic will create a config from the current terminal's properties (if
// stdout is interactive). Config.Context will also be created based on heuristics
// from the user environment.
func Print[V any, I condensed.Index](cv *condensed.Vector[V, I], length, origin I, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	consoleFmt := NewConsoleFixedWidthFormat(nil)
	return Output(cv, length, origin, os.Stdout, config, consoleFmt)
}

// --- Layout ----------------------------------------------------------------

// layout distributes cells over lines.
type layout struct {
	out      io.Writer
	format   Format
	posWidth int // width of line prefixes
	perLine  int // cells per line
	onLine   int // cells already output on the current line
}

func (lo *layout) startCell(pos int64) {
	if lo.onLine == 0 {
		lo.format.Position(pos, lo.posWidth, lo.out)
	} else {
		io.WriteString(lo.out, " ")
	}
}

func (lo *layout) endCell() {
	lo.onLine++
	if lo.onLine == lo.perLine {
		lo.format.Newline(lo.out)
		lo.onLine = 0
	}
}

func (lo *layout) cell(pos int64, text string, occupied bool) {
	lo.startCell(pos)
	lo.format.Cell(text, occupied, lo.out)
	lo.endCell()
}

// gaps outputs n empty positions starting at pos.
func (lo *layout) gaps(pos, n int64, cellWidth int, cfg *Config) {
	if n <= 0 {
		return
	}
	if cfg.CollapseGaps > 0 && n > int64(cfg.CollapseGaps) {
		lo.startCell(pos)
		lo.format.Gap(n, lo.out)
		lo.endCell()
		return
	}
	marker := pad(cfg.GapMarker, cellWidth, cfg.Context)
	for p := pos; p < pos+n; p++ {
		lo.cell(p, marker, false)
	}
}

func (lo *layout) finish() {
	if lo.onLine > 0 {
		lo.format.Newline(lo.out)
		lo.onLine = 0
	}
}

// pad right-aligns s in a cell of the given width.
func pad(s string, width int, context *uax11.Context) string {
	if w := StringWidth(s, context); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
