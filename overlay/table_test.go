package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/overlay"
)

func TestDefaultLocales(t *testing.T) {
	tbl := overlay.Default()

	ids := tbl.LocaleIDs()
	assert.Len(t, ids, 21)
	assert.Contains(t, ids, overlay.FallbackLocale)
	assert.IsIncreasing(t, ids)

	for _, id := range ids {
		l, ok := tbl.Locale(id)
		require.True(t, ok, id)
		assert.True(t, l.LayoutName.Valid(), "locale %s has layout %q", id, l.LayoutName)
		_, ok = tbl.LayoutFor(id)
		assert.True(t, ok, "locale %s has no geometry", id)
	}
}

func TestLocaleLayouts(t *testing.T) {
	tbl := overlay.Default()
	tests := []struct {
		locale string
		want   overlay.LayoutName
	}{
		{"en_US", overlay.LayoutUS},
		{"en_GB", overlay.LayoutEuropean},
		{"de", overlay.LayoutEuropean},
		{"fr", overlay.LayoutEuropean},
		{"pt_BR", overlay.LayoutBrazilian},
		{"ja", overlay.LayoutJapanese},
		{"ru", overlay.LayoutUS},
		{"ko", overlay.LayoutUS},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			l, ok := tbl.Locale(tt.locale)
			require.True(t, ok)
			assert.Equal(t, tt.want, l.LayoutName)
		})
	}
}

func TestLocaleLookupIgnoresCase(t *testing.T) {
	tbl := overlay.Default()
	for _, id := range []string{"en_US", "EN_us", "en-us", " en-US "} {
		l, ok := tbl.Locale(id)
		require.True(t, ok, id)
		assert.Equal(t, "en_US", l.ID)
	}
	_, ok := tbl.Locale("xx_YY")
	assert.False(t, ok)
}

func TestKeyFrenchE(t *testing.T) {
	e, ok := overlay.Default().Key("fr", "12")
	require.True(t, ok)
	assert.Equal(t, "e €", e.Key)
	assert.Equal(t, 203, e.Position)
	assert.Equal(t, "65", e.P1)
	assert.Equal(t, "45", e.P2)
	assert.Equal(t, "20AC", e.P9)

	r, ok := e.PlaneRune(9)
	require.True(t, ok)
	assert.Equal(t, '€', r)
	assert.Equal(t, map[int]string{1: "65", 2: "45", 9: "20AC"}, e.Planes())
	assert.Equal(t, "e E €", e.KeyText())
}

func TestKeyNormalizesScanCode(t *testing.T) {
	tbl := overlay.Default()
	want, ok := tbl.Key("en_US", "E0 5B")
	require.True(t, ok)
	for _, code := range []string{"e0 5b", "E05B", "0xE05B", "e0-5b"} {
		got, ok := tbl.Key("en_US", code)
		require.True(t, ok, code)
		assert.Equal(t, want, got, code)
	}
	assert.Equal(t, "glyph_search", want.Label)
	assert.Equal(t, "search", want.KeyText())
}

func TestSparseLocaleFallsBack(t *testing.T) {
	tbl := overlay.Default()
	l, ok := tbl.Locale("en_US_colemak")
	require.True(t, ok)
	assert.Less(t, l.Len(), 20)

	_, ok = tbl.Key("en_US_colemak", "0E")
	assert.False(t, ok)

	e, src, ok := tbl.KeyWithFallback("en_US_colemak", "0E")
	require.True(t, ok)
	assert.Equal(t, "en_US", src)
	assert.Equal(t, "backspace", e.Key)

	e, src, ok = tbl.KeyWithFallback("en_US_colemak", "14")
	require.True(t, ok)
	assert.Equal(t, "en_US_colemak", src)
	assert.Equal(t, "g", e.Key)

	_, _, ok = tbl.KeyWithFallback("en_US_colemak", "FF")
	assert.False(t, ok)
}

func TestScanCodesOrder(t *testing.T) {
	l, ok := overlay.Default().Locale("en_US")
	require.True(t, ok)
	codes := l.ScanCodes()
	require.NotEmpty(t, codes)
	assert.Equal(t, "01", codes[0])
	assert.Len(t, codes[len(codes)-1], 5)
}

func TestLayoutGeometry(t *testing.T) {
	tbl := overlay.Default()
	assert.Equal(t, overlay.LayoutNames, tbl.LayoutNames())

	for _, name := range tbl.LayoutNames() {
		t.Run(string(name), func(t *testing.T) {
			lay, ok := tbl.Layout(string(name))
			require.True(t, ok)
			require.Positive(t, lay.Len())
			for _, r := range lay.Rects() {
				assert.GreaterOrEqual(t, r.X, 0.0, r.ScanCode)
				assert.GreaterOrEqual(t, r.Y, 0.0, r.ScanCode)
				assert.Positive(t, r.Width, r.ScanCode)
				assert.Positive(t, r.Height, r.ScanCode)
			}
			w, h := lay.Bounds()
			assert.LessOrEqual(t, w, 1237.0)
			assert.LessOrEqual(t, h, 514.0)
		})
	}
}

func TestLayoutCoversLocaleKeys(t *testing.T) {
	tbl := overlay.Default()
	for _, id := range tbl.LocaleIDs() {
		l, _ := tbl.Locale(id)
		lay, ok := tbl.LayoutFor(id)
		require.True(t, ok)
		for _, code := range l.ScanCodes() {
			_, ok := lay.Rect(code)
			assert.True(t, ok, "%s key %s missing from layout %s", id, code, l.LayoutName)
		}
	}
}

func TestLayoutKeyAt(t *testing.T) {
	lay, ok := overlay.Default().Layout("u")
	require.True(t, ok)
	r, ok := lay.Rect("14")
	require.True(t, ok)

	got, ok := lay.KeyAt(r.X+r.Width/2, r.Y+r.Height/2)
	require.True(t, ok)
	assert.Equal(t, "14", got.ScanCode)

	_, ok = lay.KeyAt(-10, -10)
	assert.False(t, ok)
}

func TestJapaneseExtraKeys(t *testing.T) {
	tbl := overlay.Default()
	ja, _ := tbl.Layout("J")
	us, _ := tbl.Layout("U")
	for _, code := range []string{"70", "73", "79", "7B", "7D"} {
		_, ok := ja.Rect(code)
		assert.True(t, ok, code)
		_, ok = us.Rect(code)
		assert.False(t, ok, code)
	}
}

func TestNewTableCopiesInput(t *testing.T) {
	locales := map[string]overlay.LocaleData{
		"xx": {LayoutName: overlay.LayoutUS, Keys: map[string]overlay.KeyEntry{"e0 1d": {Key: "ctrl"}}},
	}
	shortcuts := map[string]string{"a CTRL": "selectAll"}
	tbl := overlay.NewTable(locales, nil, shortcuts)

	shortcuts["a CTRL"] = "changed"
	got, ok := tbl.Shortcut("a CTRL")
	require.True(t, ok)
	assert.Equal(t, "selectAll", got)

	e, ok := tbl.Key("xx", "E0 1D")
	require.True(t, ok)
	assert.Equal(t, "ctrl", e.Key)

	_, ok = tbl.LayoutFor("xx")
	assert.False(t, ok)
}
