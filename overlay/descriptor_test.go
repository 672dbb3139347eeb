package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/overlay"
)

func TestModifierNames(t *testing.T) {
	all := overlay.ModShift | overlay.ModCtrl | overlay.ModAlt | overlay.ModSearch
	assert.Equal(t, []string{"ALT", "CTRL", "SEARCH", "SHIFT"}, all.Names())
	assert.Equal(t, "CTRL SHIFT", (overlay.ModShift | overlay.ModCtrl).String())
	assert.Empty(t, overlay.ModNone.Names())
	assert.False(t, overlay.ModCtrl.Has(overlay.ModNone))
	assert.True(t, all.Has(overlay.ModAlt|overlay.ModSearch))
}

func TestParseModifiers(t *testing.T) {
	m, err := overlay.ParseModifiers("shift", "Control", "", "META")
	require.NoError(t, err)
	assert.Equal(t, overlay.ModShift|overlay.ModCtrl|overlay.ModSearch, m)

	_, err = overlay.ParseModifiers("hyper")
	assert.Error(t, err)
}

func TestDescriptor(t *testing.T) {
	assert.Equal(t, "t CTRL", overlay.Descriptor("t", overlay.ModCtrl))
	assert.Equal(t, "/ ALT CTRL", overlay.Descriptor("/", overlay.ModCtrl|overlay.ModAlt))
	assert.Equal(t, "esc", overlay.Descriptor("esc", overlay.ModNone))

	key, mods, err := overlay.ParseDescriptor("glyph_arrow_left SHIFT ALT")
	require.NoError(t, err)
	assert.Equal(t, "glyph_arrow_left", key)
	assert.Equal(t, overlay.ModAlt|overlay.ModShift, mods)
	assert.Equal(t, "glyph_arrow_left ALT SHIFT", overlay.Descriptor(key, mods))

	_, _, err = overlay.ParseDescriptor("  ")
	assert.Error(t, err)
	_, _, err = overlay.ParseDescriptor("a FN")
	assert.Error(t, err)
}

func TestShortcutDescriptorsCanonical(t *testing.T) {
	tbl := overlay.Default()
	descs := tbl.ShortcutDescriptors()
	require.NotEmpty(t, descs)
	for _, d := range descs {
		key, mods, err := overlay.ParseDescriptor(d)
		require.NoError(t, err, d)
		assert.Equal(t, d, overlay.Descriptor(key, mods))
		action, ok := tbl.Shortcut(d)
		require.True(t, ok)
		assert.NotEmpty(t, action, d)
	}
}

func TestKeyName(t *testing.T) {
	tbl := overlay.NewTable(nil, nil, map[string]string{
		"1 ALT":  "one",
		"a CTRL": "selectAll",
	})
	tests := []struct {
		name  string
		entry overlay.KeyEntry
		mods  overlay.Modifier
		want  string
	}{
		{"label wins", overlay.KeyEntry{Key: "search", Label: "glyph_search", P1: "61"}, overlay.ModAlt, "glyph_search"},
		{"bound plane", overlay.KeyEntry{Key: "!\n1", P1: "31", P2: "21"}, overlay.ModAlt, "1"},
		{"last printable when unbound", overlay.KeyEntry{Key: "!\n1", P1: "31", P2: "21"}, overlay.ModCtrl, "!"},
		{"native plane when unbound", overlay.KeyEntry{Key: "a ф", P1: "61", P3: "444"}, overlay.ModAlt, "ф"},
		{"latin plane when bound", overlay.KeyEntry{Key: "a ф", P1: "61", P3: "444"}, overlay.ModCtrl, "a"},
		{"no planes", overlay.KeyEntry{Key: "Esc\nmore"}, overlay.ModShift, "esc"},
		{"nothing", overlay.KeyEntry{}, overlay.ModShift, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.KeyName(tt.entry, tt.mods))
		})
	}
}

func TestAction(t *testing.T) {
	tbl := overlay.Default()
	tests := []struct {
		name     string
		locale   string
		scanCode string
		mods     overlay.Modifier
		wantDesc string
		want     string
		ok       bool
	}{
		{"us new tab", "en_US", "14", overlay.ModCtrl, "t CTRL", "keyboardOverlayNewTab", true},
		{"french new tab", "fr", "14", overlay.ModCtrl, "t CTRL", "keyboardOverlayNewTab", true},
		{"azerty a", "fr", "10", overlay.ModCtrl, "a CTRL", "keyboardOverlaySelectAll", true},
		{"russian prefers bound latin", "ru", "14", overlay.ModCtrl, "t CTRL", "keyboardOverlayNewTab", true},
		{"shelf item", "en_US", "02", overlay.ModAlt, "1 ALT", "keyboardOverlayActivateShelfItem1", true},
		{"translated backspace", "de", "0E", overlay.ModAlt, "backspace ALT", "keyboardOverlayDelete", true},
		{"task manager", "en_US", "01", overlay.ModShift, "esc SHIFT", "keyboardOverlayTaskManager", true},
		{"space label", "en_US", "39", overlay.ModCtrl, "space CTRL", "keyboardOverlaySelectPreviousInputMethod", true},
		{"arrow label", "en_US", "E0 4B", overlay.ModAlt, "glyph_arrow_left ALT", "keyboardOverlayGoBack", true},
		{"sparse locale", "en_US_colemak", "0F", overlay.ModAlt, "tab ALT", "keyboardOverlayNextWindow", true},
		{"unknown locale", "xx", "14", overlay.ModCtrl, "t CTRL", "keyboardOverlayNewTab", true},
		{"unbound", "en_US", "14", overlay.ModNone, "T", "", false},
		{"unknown key", "en_US", "FF", overlay.ModCtrl, "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, action, ok := tbl.Action(tt.locale, tt.scanCode, tt.mods)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantDesc, desc)
			assert.Equal(t, tt.want, action)
		})
	}
}
