package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/overlay"
)

func TestScanCodeToHID(t *testing.T) {
	assert.Equal(t, uint8(overlay.HIDKeyT), overlay.ScanCodeToHID["14"])
	assert.Equal(t, uint8(overlay.HIDKeyF1), overlay.ScanCodeToHID["3B"])
	assert.Equal(t, uint8(overlay.HIDKeyLeftGUI), overlay.ScanCodeToHID["E0 5B"])

	for code, usage := range overlay.ScanCodeToHID {
		back, ok := overlay.HIDToScanCode(usage)
		require.True(t, ok, code)
		assert.Equal(t, code, back)
		assert.NotEmpty(t, overlay.HIDName[usage], code)
	}
	_, ok := overlay.HIDToScanCode(0xFF)
	assert.False(t, ok)
}

func TestLayoutKeysHaveHIDUsage(t *testing.T) {
	for _, name := range overlay.LayoutNames {
		lay, ok := overlay.Default().Layout(string(name))
		require.True(t, ok)
		for _, r := range lay.Rects() {
			_, ok := overlay.ScanCodeToHID[r.ScanCode]
			assert.True(t, ok, "layout %s key %s", name, r.ScanCode)
		}
	}
}

func TestParseHIDUsage(t *testing.T) {
	tests := []struct {
		in      string
		want    uint8
		wantErr bool
	}{
		{"0x04", 0x04, false},
		{"0XE3", 0xE3, false},
		{"2Ah", 0x2A, false},
		{"40", 40, false},
		{"300", 0, true},
		{"0xZZ", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := overlay.ParseHIDUsage(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
