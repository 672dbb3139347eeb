package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/overlay"
)

func TestRemapModifiers(t *testing.T) {
	r := overlay.Remap{
		overlay.ModSearch: overlay.ModCtrl,
		overlay.ModCtrl:   overlay.ModSearch,
		overlay.ModAlt:    overlay.ModNone,
	}
	assert.Equal(t, overlay.ModCtrl, r.RemapModifiers(overlay.ModSearch))
	assert.Equal(t, overlay.ModSearch|overlay.ModShift, r.RemapModifiers(overlay.ModCtrl|overlay.ModShift))
	assert.Equal(t, overlay.ModNone, r.RemapModifiers(overlay.ModAlt))
	assert.Equal(t, overlay.ModShift, overlay.Remap(nil).RemapModifiers(overlay.ModShift))
}

func TestRemapScanCode(t *testing.T) {
	r := overlay.Remap{
		overlay.ModSearch: overlay.ModCtrl,
		overlay.ModAlt:    overlay.ModNone,
		overlay.ModShift:  overlay.ModShift,
	}
	assert.Equal(t, "1D", r.RemapScanCode("e0 5b"))
	assert.Equal(t, "", r.RemapScanCode("38"))
	assert.Equal(t, "", r.RemapScanCode("E0 38"))
	assert.Equal(t, "2A", r.RemapScanCode("2a"))
	assert.Equal(t, "36", r.RemapScanCode("36"))
	assert.Equal(t, "E0 1D", r.RemapScanCode("e01d"))
	assert.Equal(t, "14", r.RemapScanCode("14"))
	assert.Equal(t, "junk", r.RemapScanCode("junk"))
}

func TestParseRemap(t *testing.T) {
	r, err := overlay.ParseRemap(map[string]string{"search": "ctrl", "alt": "disabled", "ctrl": ""})
	require.NoError(t, err)
	assert.Equal(t, overlay.Remap{
		overlay.ModSearch: overlay.ModCtrl,
		overlay.ModAlt:    overlay.ModNone,
		overlay.ModCtrl:   overlay.ModNone,
	}, r)

	_, err = overlay.ParseRemap(map[string]string{"caps": "ctrl"})
	assert.Error(t, err)
	_, err = overlay.ParseRemap(map[string]string{"ctrl": "caps"})
	assert.Error(t, err)
}
