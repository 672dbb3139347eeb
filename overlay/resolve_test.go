package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Alia5/kbdoverlay/overlay"
)

func TestResolve(t *testing.T) {
	tbl := overlay.Default()
	tests := []struct {
		in    string
		want  string
		exact bool
	}{
		{"", "en_US", false},
		{"de", "de", true},
		{"PT-br", "pt_BR", true},
		{"xkb:de::ger", "de", true},
		{"xkb:us:colemak:eng", "en_US_colemak", true},
		{"hangul_2set", "ko", true},
		{"zh-hant-t-i0-und", "zh_TW", true},
		{"de-AT", "de", false},
		{"fr-FR", "fr", false},
		{"ja-JP", "ja", false},
		{"ru-RU", "ru", false},
		{"sw", "en_US", false},
		{"not a tag!", "en_US", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, exact := tbl.Resolve(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.exact, exact)
		})
	}
}

func TestMatchLocale(t *testing.T) {
	tbl := overlay.Default()
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"de", "de", true},
		{"xkb:us:colemak:eng", "en_US_colemak", true},
		{"de-AT", "de", true},
		{"", "", false},
		{"zz", "", false},
		{"sw", "", false},
		{"garbage", "", false},
	}
	for _, tt := range tests {
		got, ok := tbl.MatchLocale(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestInputMethodTargetsExist(t *testing.T) {
	tbl := overlay.Default()
	for im, id := range overlay.InputMethodToOverlayID {
		_, ok := tbl.Locale(id)
		assert.True(t, ok, "%s maps to unknown locale %s", im, id)
	}
}

func TestResolveEmptyTable(t *testing.T) {
	tbl := overlay.NewTable(nil, nil, nil)
	got, exact := tbl.Resolve("de")
	assert.Equal(t, overlay.FallbackLocale, got)
	assert.False(t, exact)
}
