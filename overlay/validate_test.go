package overlay_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/overlay"
)

func TestValidateDefault(t *testing.T) {
	findings := overlay.Default().Validate()
	assert.False(t, overlay.HasErrors(findings), "%v", findings)

	has := func(locale, code string) bool {
		return slices.ContainsFunc(findings, func(f overlay.Finding) bool {
			return f.Locale == locale && f.ScanCode == code && f.Field == "notes" && f.Severity == overlay.SeverityWarning
		})
	}
	for _, code := range []string{"04", "05", "06", "07", "08", "09"} {
		assert.True(t, has("hi", code), "hi %s", code)
	}
	assert.True(t, has("pt_BR", "1B"))
	assert.True(t, has("pt_PT", "2B"))
	assert.True(t, has("zh_TW", "04"))
	assert.True(t, has("zh_TW", "08"))
	assert.False(t, has("zh_TW", "05"))

	assert.Equal(t, findings, overlay.Default().Validate())
}

func TestValidateErrors(t *testing.T) {
	locales := map[string]overlay.LocaleData{
		"bad": {
			LayoutName: "Q",
			Keys: map[string]overlay.KeyEntry{
				"zz": {Key: "x"},
				"10": {Key: "q", Format: "bold", P1: "nothex"},
			},
		},
		"nogeo": {LayoutName: overlay.LayoutJapanese, Keys: map[string]overlay.KeyEntry{}},
		"ok": {
			LayoutName: overlay.LayoutUS,
			Keys: map[string]overlay.KeyEntry{
				"10": {Key: "q", P1: "71"},
				"11": {Key: "w", P1: "77"},
				"12": {},
			},
		},
	}
	layouts := map[overlay.LayoutName][]overlay.Rect{
		overlay.LayoutUS: {
			{ScanCode: "10", X: 0, Y: 0, Width: 10, Height: 10},
			{ScanCode: "10", X: 10, Y: 0, Width: 10, Height: 10},
			{ScanCode: "12", X: -1, Y: 0, Width: 10, Height: math.NaN()},
		},
	}
	shortcuts := map[string]string{
		"a SHIFT CTRL": "x",
		"b CTRL":       "",
		"c HYPER":      "y",
		"d ALT":        "z",
	}
	findings := overlay.NewTable(locales, layouts, shortcuts).Validate()
	require.True(t, overlay.HasErrors(findings))

	type key struct {
		sev      overlay.Severity
		locale   string
		layout   string
		scanCode string
		field    string
	}
	got := map[key]bool{}
	for _, f := range findings {
		got[key{f.Severity, f.Locale, f.Layout, f.ScanCode, f.Field}] = true
		assert.NotEmpty(t, f.String())
	}
	want := []key{
		{overlay.SeverityError, "bad", "", "", "layoutName"},
		{overlay.SeverityError, "bad", "", "zz", ""},
		{overlay.SeverityError, "bad", "", "10", "format"},
		{overlay.SeverityError, "bad", "", "10", "p1"},
		{overlay.SeverityError, "nogeo", "", "", "layoutName"},
		{overlay.SeverityError, "", "U", "10", ""},
		{overlay.SeverityError, "", "U", "12", "geometry"},
		{overlay.SeverityError, "", "", "", "shortcut"},
		{overlay.SeverityWarning, "ok", "", "11", ""},
		{overlay.SeverityWarning, "ok", "", "12", ""},
	}
	for _, w := range want {
		assert.True(t, got[w], "missing finding %+v in %v", w, findings)
	}

	var shortcutErrs int
	for _, f := range findings {
		if f.Field == "shortcut" {
			shortcutErrs++
		}
	}
	assert.Equal(t, 3, shortcutErrs)

	assert.True(t, slices.IsSortedFunc(findings, func(a, b overlay.Finding) int {
		if a.Severity != b.Severity {
			if a.Severity < b.Severity {
				return -1
			}
			return 1
		}
		return 0
	}))
}

func TestFindingString(t *testing.T) {
	f := overlay.Finding{Severity: overlay.SeverityWarning, Locale: "hi", ScanCode: "04", Field: "notes", Message: `spreadsheet artifact "#VALUE!"`}
	assert.Equal(t, `warning: locale hi key 04 notes: spreadsheet artifact "#VALUE!"`, f.String())
	assert.Equal(t, "error: boom", overlay.Finding{Severity: overlay.SeverityError, Message: "boom"}.String())
}
