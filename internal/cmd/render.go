package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"github.com/Alia5/kbdoverlay/overlay"
	"github.com/Alia5/kbdoverlay/overlay/messages"
	"github.com/Alia5/kbdoverlay/render"
)

// Render draws a locale's keyboard in the terminal. With modifiers, the
// keys that trigger a shortcut are highlighted and listed below.
type Render struct {
	Locale      string   `arg:"" help:"Locale id, BCP 47 tag or input method id"`
	Modifiers   []string `arg:"" optional:"" help:"Held modifiers: ALT CTRL SEARCH SHIFT"`
	Columns     int      `help:"Grid width in cells (defaults to the terminal width)"`
	Highlight   []string `help:"Extra scan codes to highlight"`
	Interactive bool     `help:"Full screen view; press Esc or q to quit" short:"i"`
}

type binding struct {
	code, descriptor, action string
}

func (c *Render) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	t, err := g.LoadTable(logger)
	if err != nil {
		return err
	}
	cat, err := g.LoadCatalog()
	if err != nil {
		return err
	}
	locale, exact := t.Resolve(c.Locale)
	if !exact {
		logger.Info("showing closest locale", "input", c.Locale, "locale", locale)
	}
	lay, ok := t.LayoutFor(locale)
	if !ok {
		return fmt.Errorf("locale %s has no layout geometry", locale)
	}
	mods, err := overlay.ParseModifiers(c.Modifiers...)
	if err != nil {
		return err
	}

	opts := render.Options{Columns: c.Columns, Highlight: map[string]bool{}}
	for _, code := range c.Highlight {
		if n, ok := overlay.NormalizeScanCode(code); ok {
			opts.Highlight[n] = true
		}
	}
	bindings := activeBindings(t, locale, lay, mods)
	for _, b := range bindings {
		opts.Highlight[b.code] = true
	}
	keys := render.LocaleKeys(t, locale)

	if c.Interactive {
		return c.runScreen(lay, keys, opts, bindings, cat, g.Lang)
	}

	if opts.Columns <= 0 {
		opts.Columns = render.DefaultColumns
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			opts.Columns = w
		}
	}
	for _, line := range render.Grid(lay, keys, opts) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	for _, line := range legend(bindings, cat, g.Lang) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// activeBindings lists the keys of the layout that trigger a shortcut with
// mods held, in layout order.
func activeBindings(t *overlay.Table, locale string, lay *overlay.Layout, mods overlay.Modifier) []binding {
	if mods == overlay.ModNone {
		return nil
	}
	var out []binding
	for _, r := range lay.Rects() {
		if _, isMod := overlay.ModifierScanCodes[r.ScanCode]; isMod {
			continue
		}
		desc, action, ok := t.Action(locale, r.ScanCode, mods)
		if ok {
			out = append(out, binding{code: r.ScanCode, descriptor: desc, action: action})
		}
	}
	return out
}

func legend(bindings []binding, cat *messages.Catalog, lang string) []string {
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		pad := max(24-uniseg.StringWidth(b.descriptor), 0)
		lines = append(lines, b.descriptor+strings.Repeat(" ", pad)+" "+cat.Describe(b.action, lang))
	}
	return lines
}

func (c *Render) runScreen(lay *overlay.Layout, keys render.KeyLookup, opts render.Options, bindings []binding, cat *messages.Catalog, lang string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	return interact(screen, lay, keys, opts, legend(bindings, cat, lang))
}

// interact draws until the user quits. Resizes redraw at the new width.
func interact(screen tcell.Screen, lay *overlay.Layout, keys render.KeyLookup, opts render.Options, legendLines []string) error {
	pal := render.DefaultPalette()
	draw := func() {
		screen.Clear()
		rows := render.Draw(screen, 0, 0, lay, keys, opts, pal)
		for i, line := range legendLines {
			drawLine(screen, rows+1+i, line)
		}
		screen.Show()
	}
	draw()
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || strings.EqualFold(string(ev.Rune()), "q") {
				return nil
			}
		case nil:
			return nil
		}
	}
}

// drawLine writes one grapheme cluster per cell run so wide scripts keep their columns.
func drawLine(screen tcell.Screen, y int, line string) {
	col, state := 0, -1
	for line != "" {
		var cluster string
		var w int
		cluster, line, w, state = uniseg.FirstGraphemeClusterInString(line, state)
		if w == 0 {
			continue
		}
		runes := []rune(cluster)
		screen.SetContent(col, y, runes[0], runes[1:], tcell.StyleDefault)
		col += w
	}
}
