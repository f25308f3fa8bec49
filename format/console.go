package format

/*
BSD 3-Clause License

Copyright (c) 2020–26, Norbert Pillmayer

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors a console formatter uses. A nil color outputs
// plain text.
type Palette struct {
	Position *color.Color // line prefixes
	Occupied *color.Color // cells of occupied positions
	Empty    *color.Color // cells of empty positions and collapsed runs
}

// DefaultPalette is the palette used if none is given explicitly.
var DefaultPalette = Palette{
	Position: color.New(color.FgHiBlack),
	Occupied: color.New(color.FgBlue, color.Bold),
	Empty:    color.New(color.Faint),
}

// ConsoleFixedWidth is a type for outputting condensed vectors to a console
// with a fixed width font.
type ConsoleFixedWidth struct {
	colors Palette
}

// NewConsoleFixedWidthFormat creates a new formatter. It is to be used for consoles
// with a fixed width font. If colors is nil, DefaultPalette is used.
func NewConsoleFixedWidthFormat(colors *Palette) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{colors: DefaultPalette}
	if colors != nil {
		fw.colors = *colors
	}
	return fw
}

func colored(c *color.Color, s string, w io.Writer) {
	if c != nil {
		c.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

// Preamble is called by the output driver before a vector will be formatted.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Preamble(w io.Writer) {}

// Position is called at the start of every line, with the logical position of
// the first cell on the line. width is the common width of all line prefixes.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Position(pos int64, width int, w io.Writer) {
	colored(fw.colors.Position, fmt.Sprintf("%*d:", width, pos), w)
	io.WriteString(w, " ")
}

// Cell outputs the text of a single position.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Cell(text string, occupied bool, w io.Writer) {
	if occupied {
		colored(fw.colors.Occupied, text, w)
		return
	}
	colored(fw.colors.Empty, text, w)
}

// Gap outputs a marker for a run of n empty positions.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Gap(n int64, w io.Writer) {
	colored(fw.colors.Empty, fmt.Sprintf("…%d…", n), w)
}

// Newline will be called at the end of every formatted line.
// (Part of interface Format)
func (fw *ConsoleFixedWidth) Newline(w io.Writer) {
	io.WriteString(w, "\n")
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{CollapseGaps: 8}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil {
			config.LineWidth = defaultLineWidth
		} else if w > 20 {
			config.LineWidth = w - 2
		} else {
			config.LineWidth = 20
		}
	} else {
		config.LineWidth = defaultLineWidth
	}
	T().Infof("format: setting line length to %d en", config.LineWidth)
	return config
}
