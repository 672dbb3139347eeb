// Package render projects keyboard layout geometry onto a character grid,
// either as plain text lines or onto a tcell screen.
package render

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/Alia5/kbdoverlay/overlay"
)

// DefaultColumns is the grid width used when Options.Columns is zero.
const DefaultColumns = 124

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Options control the projection.
type Options struct {
	// Columns is the width of the grid in cells.
	Columns int
	// Highlight marks scan codes to draw with a double border.
	Highlight map[string]bool
}

// KeyLookup returns the glyph entry for a scan code.
type KeyLookup func(scanCode string) (overlay.KeyEntry, bool)

// LocaleKeys looks keys up in a locale, falling back to
// overlay.FallbackLocale for keys the locale does not define.
func LocaleKeys(t *overlay.Table, locale string) KeyLookup {
	return func(code string) (overlay.KeyEntry, bool) {
		e, _, ok := t.KeyWithFallback(locale, code)
		return e, ok
	}
}

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellBorder
	cellText
)

type cell struct {
	str   string
	width int // 0 for the trailing half of a wide cluster
	kind  cellKind
	code  string
	fmt   overlay.Format
}

type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{str: " ", width: 1}
		}
		c.cells[y] = row
	}
	return c
}

func (c *canvas) set(x, y int, v cell) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || x+v.width > c.w {
		return
	}
	row := c.cells[y]
	if row[x].width == 0 && x > 0 {
		row[x-1] = cell{str: " ", width: 1}
	}
	if row[x].width == 2 && x+1 < c.w {
		row[x+1] = cell{str: " ", width: 1}
	}
	row[x] = v
	if v.width == 2 {
		if x+2 < c.w && row[x+1].width == 2 {
			row[x+2] = cell{str: " ", width: 1}
		}
		row[x+1] = cell{width: 0, kind: v.kind, code: v.code, fmt: v.fmt}
	}
}

func (c *canvas) lines() []string {
	out := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			if cl.width > 0 {
				b.WriteString(cl.str)
			}
		}
		out[y] = strings.TrimRight(b.String(), " ")
	}
	return out
}

type box struct {
	x0, y0, x1, y1 int
	code           string
	text           string
	format         overlay.Format
	highlight      bool
}

var (
	singleBorder = [6]string{"┌", "┐", "└", "┘", "─", "│"}
	doubleBorder = [6]string{"╔", "╗", "╚", "╝", "═", "║"}
)

// project scales the layout so its bounding box is cols cells wide.
func project(lay *overlay.Layout, keys KeyLookup, opts Options) (*canvas, []box) {
	cols := opts.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	bw, bh := lay.Bounds()
	if bw <= 0 || bh <= 0 {
		return newCanvas(0, 0), nil
	}
	sx := float64(cols-1) / bw
	sy := sx / cellAspect
	rows := int(math.Round(bh*sy)) + 1

	boxes := make([]box, 0, lay.Len())
	for _, r := range lay.Rects() {
		b := box{
			x0:        int(math.Round(r.X * sx)),
			y0:        int(math.Round(r.Y * sy)),
			x1:        int(math.Round(r.Right() * sx)),
			y1:        int(math.Round(r.Bottom() * sy)),
			code:      r.ScanCode,
			highlight: opts.Highlight[r.ScanCode],
		}
		if b.x1 <= b.x0 {
			b.x1 = b.x0 + 1
		}
		if b.y1 <= b.y0 {
			b.y1 = b.y0 + 1
		}
		if keys != nil {
			if e, ok := keys(r.ScanCode); ok {
				b.text = glyphLine(e, b.x1-b.x0-1)
				b.format = e.Format
			}
		}
		boxes = append(boxes, b)
	}
	return newCanvas(cols, rows), boxes
}

func (c *canvas) draw(boxes []box) {
	for _, b := range boxes {
		set := singleBorder
		if b.highlight {
			set = doubleBorder
		}
		border := func(x, y int, s string) {
			c.set(x, y, cell{str: s, width: 1, kind: cellBorder, code: b.code, fmt: b.format})
		}
		for x := b.x0 + 1; x < b.x1; x++ {
			border(x, b.y0, set[4])
			border(x, b.y1, set[4])
		}
		for y := b.y0 + 1; y < b.y1; y++ {
			border(b.x0, y, set[5])
			border(b.x1, y, set[5])
		}
		border(b.x0, b.y0, set[0])
		border(b.x1, b.y0, set[1])
		border(b.x0, b.y1, set[2])
		border(b.x1, b.y1, set[3])

		if b.text == "" || b.y1-b.y0 < 2 {
			continue
		}
		y := (b.y0 + b.y1) / 2
		x := b.x0 + 1
		if b.format == overlay.FormatRight {
			x = b.x1 - uniseg.StringWidth(b.text)
		}
		rest, state := b.text, -1
		for rest != "" {
			var cluster string
			var w int
			cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if w == 0 {
				continue
			}
			c.set(x, y, cell{str: cluster, width: w, kind: cellText, code: b.code, fmt: b.format})
			x += w
		}
	}
}

// glyphLine picks the text shown inside a key that is width cells wide:
// the first glyph line that fits, or the bottom line cut to size.
func glyphLine(e overlay.KeyEntry, width int) string {
	if width <= 0 {
		return ""
	}
	lines := e.Lines()
	if len(lines) == 0 || strings.TrimSpace(e.Key) == "" {
		if t, ok := overlay.LabelToKeyText[e.Label]; ok {
			lines = []string{t}
		} else if e.Label != "" {
			lines = []string{e.Label}
		}
	}
	if len(lines) == 0 {
		return ""
	}
	for _, l := range lines {
		if uniseg.StringWidth(l) <= width {
			return l
		}
	}
	return truncate(lines[len(lines)-1], width)
}

func truncate(s string, width int) string {
	var b strings.Builder
	used, state := 0, -1
	for s != "" {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}

// Grid renders the layout as text lines with box drawing borders.
// Trailing spaces are trimmed.
func Grid(lay *overlay.Layout, keys KeyLookup, opts Options) []string {
	c, boxes := project(lay, keys, opts)
	c.draw(boxes)
	return c.lines()
}
