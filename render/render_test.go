package render_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/overlay"
	"github.com/Alia5/kbdoverlay/render"
)

func layout(t *testing.T, name string) *overlay.Layout {
	t.Helper()
	lay, ok := overlay.Default().Layout(name)
	require.True(t, ok)
	return lay
}

func TestGridUS(t *testing.T) {
	tbl := overlay.Default()
	lines := render.Grid(layout(t, "U"), render.LocaleKeys(tbl, "en_US"), render.Options{})
	require.NotEmpty(t, lines)

	text := strings.Join(lines, "\n")
	for _, want := range []string{"esc", "search", "space", "┌", "┘"} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "╔")
	for _, l := range lines {
		assert.LessOrEqual(t, uniseg.StringWidth(l), render.DefaultColumns)
	}
}

func TestGridHighlight(t *testing.T) {
	lines := render.Grid(layout(t, "U"), nil, render.Options{
		Columns:   80,
		Highlight: map[string]bool{"14": true},
	})
	text := strings.Join(lines, "\n")
	assert.Contains(t, text, "╔")
	assert.Contains(t, text, "╝")
	for _, l := range lines {
		assert.LessOrEqual(t, uniseg.StringWidth(l), 80)
	}
}

func TestGridWideGlyphs(t *testing.T) {
	tbl := overlay.Default()
	lines := render.Grid(layout(t, "J"), render.LocaleKeys(tbl, "ja"), render.Options{Columns: 160})
	text := strings.Join(lines, "\n")
	assert.Contains(t, text, "た")
	for _, l := range lines {
		assert.LessOrEqual(t, uniseg.StringWidth(l), 160)
	}
}

func TestGridSparseLocaleFallsBack(t *testing.T) {
	tbl := overlay.Default()
	lines := render.Grid(layout(t, "U"), render.LocaleKeys(tbl, "en_US_colemak"), render.Options{})
	text := strings.Join(lines, "\n")
	assert.Contains(t, text, "backspace")
}

func TestGridEmptyLayout(t *testing.T) {
	lay, ok := overlay.NewTable(nil, map[overlay.LayoutName][]overlay.Rect{overlay.LayoutUS: nil}, nil).Layout("U")
	require.True(t, ok)
	assert.Empty(t, render.Grid(lay, nil, render.Options{}))
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(130, 40)
	screen.Clear()

	tbl := overlay.Default()
	pal := render.DefaultPalette()
	rows := render.Draw(screen, 2, 1, layout(t, "U"), render.LocaleKeys(tbl, "en_US"), render.Options{
		Highlight: map[string]bool{"01": true},
	}, pal)
	screen.Show()

	want := render.Grid(layout(t, "U"), render.LocaleKeys(tbl, "en_US"), render.Options{
		Columns:   128,
		Highlight: map[string]bool{"01": true},
	})
	require.Equal(t, len(want), rows)

	var got []string
	for y := 1; y < 1+rows; y++ {
		var b strings.Builder
		for x := 2; x < 130; x++ {
			mainc, comb, _, w := screen.GetContent(x, y) //nolint:staticcheck // GetContent is the simulation screen accessor
			if w == 0 {
				continue
			}
			b.WriteRune(mainc)
			for _, r := range comb {
				b.WriteRune(r)
			}
		}
		got = append(got, strings.TrimRight(b.String(), " "))
	}
	assert.Equal(t, want, got)

	// the highlighted Esc key has a coloured background
	var corner tcell.Style
	found := false
	for y := 1; y < 1+rows && !found; y++ {
		for x := 2; x < 130; x++ {
			mainc, _, style, _ := screen.GetContent(x, y) //nolint:staticcheck // GetContent is the simulation screen accessor
			if mainc == '╔' {
				corner, found = style, true
				break
			}
		}
	}
	require.True(t, found)
	_, bg, _ := corner.Decompose()
	r, g, b := pal.Highlight.RGB255()
	assert.Equal(t, tcell.NewRGBColor(int32(r), int32(g), int32(b)), bg)
}
