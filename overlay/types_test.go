package overlay_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/overlay"
)

func TestNormalizeScanCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1d", "1D", true},
		{" 0x3b ", "3B", true},
		{"E0 1D", "E0 1D", true},
		{"e01d", "E0 1D", true},
		{"e0-1d", "E0 1D", true},
		{"e0:5b", "E0 5B", true},
		{"0XE05E", "E0 5E", true},
		{"", "", false},
		{"1", "", false},
		{"123", "", false},
		{"zz", "", false},
		{"E0 1D 2A", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := overlay.NormalizeScanCode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlaneCode(t *testing.T) {
	r, ok := overlay.ParsePlaneCode("20AC")
	require.True(t, ok)
	assert.Equal(t, '€', r)

	r, ok = overlay.ParsePlaneCode("61")
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	for _, bad := range []string{"", "xyz", "D800", "110000"} {
		_, ok := overlay.ParsePlaneCode(bad)
		assert.False(t, ok, bad)
	}
}

func TestKeyEntryText(t *testing.T) {
	assert.Equal(t, "switch window", overlay.KeyEntry{Key: "x", Label: "glyph_overview"}.KeyText())
	assert.Equal(t, "space", overlay.KeyEntry{Label: "space"}.KeyText())
	assert.Equal(t, "tab", overlay.KeyEntry{Key: "tab"}.KeyText())
	assert.Equal(t, []string{"!", "1"}, overlay.KeyEntry{Key: "!\n1"}.Lines())
	assert.Nil(t, overlay.KeyEntry{}.Lines())
	assert.Empty(t, overlay.KeyEntry{}.Plane(0))
	assert.Empty(t, overlay.KeyEntry{P9: "41"}.Plane(10))
}

func TestFormatAndLayoutName(t *testing.T) {
	for _, f := range []overlay.Format{overlay.FormatNone, overlay.FormatLeft, overlay.FormatRight, overlay.FormatSmaller} {
		assert.True(t, f.Valid(), f)
	}
	assert.False(t, overlay.Format("bold").Valid())

	assert.True(t, overlay.LayoutJapanese.Valid())
	assert.False(t, overlay.LayoutName("X").Valid())
	assert.Equal(t, "Brazilian ABNT2", overlay.LayoutBrazilian.Description())
	assert.Empty(t, overlay.LayoutName("X").Description())
}

func TestRectJSON(t *testing.T) {
	r := overlay.Rect{ScanCode: "E0 1D", X: 16, Y: 396, Width: 114.5, Height: 44}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `["E0 1D",16,396,114.5,44]`, string(b))

	var back overlay.Rect
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, r, back)

	var obj overlay.Rect
	require.NoError(t, json.Unmarshal([]byte(`{"scanCode":"01","x":1,"y":2,"width":3,"height":4}`), &obj))
	assert.Equal(t, overlay.Rect{ScanCode: "01", X: 1, Y: 2, Width: 3, Height: 4}, obj)

	assert.Error(t, json.Unmarshal([]byte(`["01",1,2]`), &obj))
	assert.Error(t, json.Unmarshal([]byte(`[1,1,2,3,4]`), &obj))
	assert.Error(t, json.Unmarshal([]byte(`["01","x",2,3,4]`), &obj))
}

func TestRectEdges(t *testing.T) {
	r := overlay.Rect{X: 10, Y: 20, Width: 30, Height: 40}
	assert.Equal(t, 40.0, r.Right())
	assert.Equal(t, 60.0, r.Bottom())
	assert.True(t, r.Contains(10, 20))
	assert.False(t, r.Contains(40, 30))
	assert.False(t, r.Contains(15, 60))
}

func TestEveryKeyTextLabelIsUsed(t *testing.T) {
	tbl := overlay.Default()
	used := map[string]bool{}
	for _, id := range tbl.LocaleIDs() {
		loc, ok := tbl.Locale(id)
		require.True(t, ok, id)
		for _, e := range loc.Keys() {
			used[e.Label] = true
		}
	}
	for label := range overlay.LabelToKeyText {
		assert.True(t, used[label], "%s is not the label of any built-in key", label)
	}
}
