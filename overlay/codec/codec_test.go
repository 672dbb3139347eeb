package codec_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/overlay"
	"github.com/Alia5/kbdoverlay/overlay/codec"
)

func TestNormalizeFormat(t *testing.T) {
	assert.Equal(t, codec.JSON, codec.NormalizeFormat("JSON"))
	assert.Equal(t, codec.YAML, codec.NormalizeFormat(".yml"))
	assert.Equal(t, codec.TOML, codec.NormalizeFormat("toml"))
	assert.Equal(t, codec.Format(""), codec.NormalizeFormat("xml"))

	f, err := codec.FormatFromPath("/tmp/data.yaml")
	require.NoError(t, err)
	assert.Equal(t, codec.YAML, f)
	_, err = codec.FormatFromPath("/tmp/data.txt")
	assert.Error(t, err)
}

func TestRoundTripDefaultTable(t *testing.T) {
	want := codec.FromTable(overlay.Default())
	for _, f := range codec.Formats {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, codec.Encode(&buf, want, f))
			got, err := codec.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, want, got)

			tbl := got.Table()
			e, ok := tbl.Key("fr", "12")
			require.True(t, ok)
			assert.Equal(t, "20AC", e.P9)
			action, ok := tbl.Shortcut("t CTRL")
			require.True(t, ok)
			assert.Equal(t, "keyboardOverlayNewTab", action)
		})
	}
}

func TestDecodeAssetJSON(t *testing.T) {
	const src = `{
	  "keyboardGlyph": {
	    "xx": {"layoutName": "U", "keys": {"12": {"key": "e €", "p1": "65", "p9": "20AC", "position": 203}}}
	  },
	  "layouts": {"U": [["12", 296, 150, 74, 68]]},
	  "shortcut": {"e CTRL": "keyboardOverlayFocusAddressBarInSearchMode"}
	}`
	doc, err := codec.Decode(bytes.NewBufferString(src), codec.JSON)
	require.NoError(t, err)
	assert.Equal(t, []overlay.Rect{{ScanCode: "12", X: 296, Y: 150, Width: 74, Height: 68}}, doc.Layouts["U"])

	tbl := doc.Table()
	desc, action, ok := tbl.Action("xx", "12", overlay.ModCtrl)
	require.True(t, ok)
	assert.Equal(t, "e CTRL", desc)
	assert.Equal(t, "keyboardOverlayFocusAddressBarInSearchMode", action)
}

func TestDecodeErrors(t *testing.T) {
	_, err := codec.Decode(bytes.NewBufferString("{"), codec.JSON)
	assert.Error(t, err)
	_, err = codec.Decode(bytes.NewBufferString("a = "), codec.TOML)
	assert.Error(t, err)
	_, err = codec.Decode(bytes.NewBufferString("{}"), codec.Format("xml"))
	assert.Error(t, err)
	assert.Error(t, codec.Encode(&bytes.Buffer{}, codec.Document{}, codec.Format("xml")))
}

func TestMerge(t *testing.T) {
	base := overlay.Default()
	override := codec.Document{
		KeyboardGlyph: map[string]overlay.LocaleData{
			"DE": {LayoutName: overlay.LayoutEuropean, Keys: map[string]overlay.KeyEntry{
				"10": {Key: "q", P1: "71", P2: "51"},
			}},
			"eo": {LayoutName: overlay.LayoutUS, Keys: map[string]overlay.KeyEntry{
				"14": {Key: "t", P1: "74"},
			}},
		},
		Shortcut: map[string]string{
			"t CTRL":     "customNewTab",
			"a CTRL":     "",
			"k ALT CTRL": "customThing",
		},
	}
	merged := codec.Merge(base, override)

	de, ok := merged.Locale("de")
	require.True(t, ok)
	assert.Equal(t, 1, de.Len())

	_, ok = merged.Locale("eo")
	assert.True(t, ok)

	a, ok := merged.Shortcut("t CTRL")
	require.True(t, ok)
	assert.Equal(t, "customNewTab", a)
	_, ok = merged.Shortcut("a CTRL")
	assert.False(t, ok)
	_, ok = merged.Shortcut("k ALT CTRL")
	assert.True(t, ok)

	// base is untouched
	a, _ = base.Shortcut("t CTRL")
	assert.Equal(t, "keyboardOverlayNewTab", a)
	de, _ = base.Locale("de")
	assert.Greater(t, de.Len(), 1)

	lay, ok := merged.Layout("J")
	require.True(t, ok)
	assert.Positive(t, lay.Len())
}

func TestMergeLayoutOverride(t *testing.T) {
	merged := codec.Merge(overlay.Default(), codec.Document{
		Layouts: map[string][]overlay.Rect{"u": {{ScanCode: "01", X: 1, Y: 1, Width: 1, Height: 1}}},
	})
	lay, ok := merged.Layout("U")
	require.True(t, ok)
	assert.Equal(t, 1, lay.Len())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shortcut:\n  \"k ALT CTRL\": customThing\n"), 0o644))

	doc, err := codec.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k ALT CTRL": "customThing"}, doc.Shortcut)

	_, err = codec.LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
	_, err = codec.LoadFile(filepath.Join(dir, "override.ini"))
	assert.Error(t, err)
}

func TestQuery(t *testing.T) {
	doc := codec.FromTable(overlay.Default())

	res, err := codec.Query(doc, "keyboardGlyph.fr.keys.12.p9")
	require.NoError(t, err)
	assert.Equal(t, "20AC", res.String())

	res, err = codec.Query(doc, "shortcut.t CTRL")
	require.NoError(t, err)
	assert.Equal(t, "keyboardOverlayNewTab", res.String())

	res, err = codec.Query(doc, "keyboardGlyph.ja.layoutName")
	require.NoError(t, err)
	assert.Equal(t, "J", res.String())

	res, err = codec.Query(doc, "layouts.U.0")
	require.NoError(t, err)
	assert.True(t, res.IsArray())
	assert.Equal(t, "01", res.Array()[0].String())
	assert.Contains(t, codec.Pretty(res), "\n")

	_, err = codec.Query(doc, "keyboardGlyph.xx")
	assert.ErrorIs(t, err, codec.ErrNoMatch)
}
