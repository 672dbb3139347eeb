package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Alia5/kbdoverlay/overlay"
)

// Palette holds the colours used by Draw.
type Palette struct {
	Border    colorful.Color
	Highlight colorful.Color
	Text      map[overlay.Format]colorful.Color
}

// DefaultPalette spreads the per-format text colours evenly around the
// HCL hue circle so they keep the same perceived lightness.
func DefaultPalette() Palette {
	formats := []overlay.Format{overlay.FormatNone, overlay.FormatLeft, overlay.FormatRight, overlay.FormatSmaller}
	text := make(map[overlay.Format]colorful.Color, len(formats))
	for i, f := range formats {
		text[f] = colorful.Hcl(float64(i)*360/float64(len(formats))+60, 0.45, 0.8).Clamped()
	}
	return Palette{
		Border:    colorful.Hcl(250, 0.05, 0.55).Clamped(),
		Highlight: colorful.Hcl(30, 0.7, 0.5).Clamped(),
		Text:      text,
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Draw paints the layout onto the screen with its top left corner at
// (x, y). opts.Columns defaults to the screen width minus x. It returns
// the number of rows used. The caller calls Show.
func Draw(screen tcell.Screen, x, y int, lay *overlay.Layout, keys KeyLookup, opts Options, pal Palette) int {
	if opts.Columns <= 0 {
		w, _ := screen.Size()
		opts.Columns = w - x
	}
	if opts.Columns <= 0 {
		return 0
	}
	c, boxes := project(lay, keys, opts)
	c.draw(boxes)

	base := tcell.StyleDefault
	border := base.Foreground(tcellColor(pal.Border))
	for row, cells := range c.cells {
		for col, cl := range cells {
			if cl.width == 0 {
				continue
			}
			style := base
			switch cl.kind {
			case cellBorder:
				style = border
			case cellText:
				fg, ok := pal.Text[cl.fmt]
				if !ok {
					fg = pal.Text[overlay.FormatNone]
				}
				style = base.Foreground(tcellColor(fg))
			}
			if cl.kind != cellEmpty && opts.Highlight[cl.code] {
				style = style.Background(tcellColor(pal.Highlight))
			}
			runes := []rune(cl.str)
			screen.SetContent(x+col, y+row, runes[0], runes[1:], style)
		}
	}
	return c.h
}
