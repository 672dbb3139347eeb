package messages_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/overlay"
	"github.com/Alia5/kbdoverlay/overlay/messages"
)

func TestEveryActionHasEnglishText(t *testing.T) {
	c, err := messages.New()
	require.NoError(t, err)

	for desc, action := range overlay.Default().Shortcuts() {
		text, lang, ok := c.Lookup(action, "en")
		assert.True(t, ok, "%s -> %s", desc, action)
		assert.Equal(t, "en", lang)
		assert.NotEqual(t, action, text)
	}
}

func TestEveryActionHasGermanOrEnglishText(t *testing.T) {
	c, err := messages.New()
	require.NoError(t, err)

	for desc, action := range overlay.Default().Shortcuts() {
		assert.NotEqual(t, action, c.Describe(action, "de"), desc)
	}
}

func TestDescribe(t *testing.T) {
	c, err := messages.New()
	require.NoError(t, err)

	assert.Equal(t, "Open a new tab", c.Describe("keyboardOverlayNewTab"))
	assert.Equal(t, "Neuen Tab öffnen", c.Describe("keyboardOverlayNewTab", "de-AT"))
	assert.Equal(t, "Open a new tab", c.Describe("keyboardOverlayNewTab", "ja"))
	assert.Equal(t, "Mirror displays", c.Describe("keyboardOverlayMirrorMonitors", "de"))
	assert.Equal(t, "noSuchAction", c.Describe("noSuchAction", "de"))

	text, lang, ok := c.Lookup("keyboardOverlayMirrorMonitors", "de", "en")
	require.True(t, ok)
	assert.Equal(t, "Mirror displays", text)
	assert.Equal(t, "en", lang)

	_, _, ok = c.Lookup("noSuchAction", "de")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"en", "de"}, c.Languages())
}

func TestExtraFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.fr.toml")
	require.NoError(t, os.WriteFile(path, []byte(`keyboardOverlayNewTab = "Ouvrir un nouvel onglet"`+"\n"), 0o644))

	c, err := messages.New(path)
	require.NoError(t, err)
	text, lang, ok := c.Lookup("keyboardOverlayNewTab", "fr-CA")
	require.True(t, ok)
	assert.Equal(t, "Ouvrir un nouvel onglet", text)
	assert.Equal(t, "fr", lang)

	_, err = messages.New(filepath.Join(t.TempDir(), "messages.xx.toml"))
	assert.Error(t, err)
}
