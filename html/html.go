/*
Package html converts between condensed vectors and HTML table rows.

A vector is rendered as a table with a single row, one cell per logical
position. Runs of empty positions are rendered as a single empty cell
spanning the run, so that sparse vectors produce compact markup.
*/
package html

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/condensed"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// IndexAttr is the attribute holding the logical position of an occupied cell.
const IndexAttr = "data-index"

// Table creates an HTML table element for the logical positions
// [origin, origin+length) of a vector, or more if needed to show every
// occupied position. Values are converted to cell text with fmt.Sprint.
//
// length may not be negative, and origin may not be greater than the smallest
// occupied index.
func Table[V any, I condensed.Index](cv *condensed.Vector[V, I], length, origin I) (*html.Node, error) {
	if cv == nil {
		return nil, condensed.ErrIllegalArguments
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", condensed.ErrIllegalArguments, length)
	}
	if cv.Count() > 0 && cv.EntryAt(0).Index < origin {
		return nil, fmt.Errorf("%w: origin %d behind index %d", condensed.ErrIllegalArguments,
			origin, cv.EntryAt(0).Index)
	}
	table := element(atom.Table)
	tr := element(atom.Tr)
	table.AppendChild(tr)
	pos := int64(origin)
	for i, v := range cv.All() {
		appendGap(tr, int64(i)-pos)
		td := element(atom.Td)
		td.Attr = append(td.Attr, html.Attribute{Key: IndexAttr, Val: strconv.FormatInt(int64(i), 10)})
		td.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(v)})
		tr.AppendChild(td)
		pos = int64(i) + 1
	}
	appendGap(tr, int64(origin)+int64(length)-pos)
	return table, nil
}

// Render writes the HTML table for a vector to w. See Table.
func Render[V any, I condensed.Index](w io.Writer, cv *condensed.Vector[V, I], length, origin I) error {
	table, err := Table(cv, length, origin)
	if err != nil {
		return err
	}
	return html.Render(w, table)
}

// RowFromHTML creates a vector from the first table row of an HTML fragment.
// The ordinal of a cell, advanced by the colspan of preceding cells, is its
// logical position. The text content of a cell is its value; cells without
// text other than white space are unoccupied.
func RowFromHTML(input io.Reader) (*condensed.Vector[string, int], error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	tr := findFirst(doc, atom.Tr)
	if tr == nil {
		return nil, fmt.Errorf("%w: no table row", condensed.ErrIllegalArguments)
	}
	cv := condensed.New[string, int]()
	pos := 0
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		var b strings.Builder
		collectText(c, &b)
		if text := strings.TrimSpace(b.String()); text != "" {
			cv.Put(pos, text)
		}
		pos += colspan(c)
	}
	tracer().Debugf("html row with %d positions condensed to %d entries", pos, cv.Count())
	return cv, nil
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
}

// appendGap appends a cell for a run of n empty positions.
func appendGap(tr *html.Node, n int64) {
	if n <= 0 {
		return
	}
	td := element(atom.Td)
	if n > 1 {
		td.Attr = append(td.Attr, html.Attribute{Key: "colspan", Val: strconv.FormatInt(n, 10)})
	}
	tr.AppendChild(td)
}

func colspan(n *html.Node) int {
	for _, a := range n.Attr {
		if a.Key == "colspan" {
			if span, err := strconv.Atoi(a.Val); err == nil && span > 0 {
				return span
			}
			tracer().Errorf("html: ignoring illegal colspan %q", a.Val)
		}
	}
	return 1
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
