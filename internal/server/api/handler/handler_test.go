package handler_test

import (
	"encoding/json"
	"testing"

	"github.com/Alia5/kbdoverlay/apiclient"
	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/internal/server/api/handler"
	htesting "github.com/Alia5/kbdoverlay/internal/testing"
	"github.com/Alia5/kbdoverlay/overlay"
	"github.com/Alia5/kbdoverlay/overlay/messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, tbl *overlay.Table) *apiclient.Transport {
	t.Helper()
	cat, err := messages.New()
	require.NoError(t, err)
	cfg := api.ServerConfig{Lang: "en"}
	addr, done := htesting.StartAPIServer(t, cfg, func(r *api.Router, _ *api.Server) {
		handler.Register(r, tbl, cat, cfg, "1.2.3")
	})
	t.Cleanup(done)
	return apiclient.NewTransport(addr)
}

func TestLookupRoutes(t *testing.T) {
	tr := startServer(t, overlay.Default())

	tests := []struct {
		name       string
		path       string
		pathParams map[string]string
		payload    any
		expected   string
	}{
		{
			name:     "ping",
			path:     "ping",
			expected: `{"server":"kbdoverlay","version":"1.2.3"}`,
		},
		{
			name:       "key",
			path:       "locale/{id}/key",
			pathParams: map[string]string{"id": "en_US"},
			payload:    "14",
			expected:   `{"locale":"en_US","source":"en_US","fallback":false,"key":{"scanCode":"14","key":"t","position":205,"planes":{"p1":"74","p2":"54"},"text":"t T","hid":"0x17"}}`,
		},
		{
			name:       "key scan code is normalized",
			path:       "locale/{id}/key",
			pathParams: map[string]string{"id": "EN_us"},
			payload:    "0x14",
			expected:   `{"locale":"en_US","source":"en_US","fallback":false,"key":{"scanCode":"14","key":"t","position":205,"planes":{"p1":"74","p2":"54"},"text":"t T","hid":"0x17"}}`,
		},
		{
			name:       "key missing scan code",
			path:       "locale/{id}/key",
			pathParams: map[string]string{"id": "en_US"},
			expected:   `{"status":400,"title":"Bad Request","detail":"missing scan code"}`,
		},
		{
			name:       "key invalid scan code",
			path:       "locale/{id}/key",
			pathParams: map[string]string{"id": "en_US"},
			payload:    "zz",
			expected:   `{"status":400,"title":"Bad Request","detail":"invalid scan code: \"zz\""}`,
		},
		{
			name:       "key unknown locale",
			path:       "locale/{id}/key",
			pathParams: map[string]string{"id": "xx"},
			payload:    "14",
			expected:   `{"status":404,"title":"Not Found","detail":"unknown locale: xx"}`,
		},
		{
			name:       "key unknown in every locale",
			path:       "locale/{id}/key",
			pathParams: map[string]string{"id": "en_US"},
			payload:    "FF",
			expected:   `{"status":404,"title":"Not Found","detail":"no key FF in locale en_US"}`,
		},
		{
			name:     "shortcut resolve canonicalizes",
			path:     "shortcut/resolve",
			payload:  "t ctrl",
			expected: `{"descriptor":"t CTRL","action":"keyboardOverlayNewTab","description":"Open a new tab"}`,
		},
		{
			name:     "shortcut resolve unbound",
			path:     "shortcut/resolve",
			payload:  "t",
			expected: `{"status":404,"title":"Not Found","detail":"no shortcut bound to \"t\""}`,
		},
		{
			name:     "shortcut resolve bad modifier",
			path:     "shortcut/resolve",
			payload:  "t HYPER",
			expected: `{"status":400,"title":"Bad Request","detail":"descriptor \"t HYPER\": unknown modifier \"HYPER\""}`,
		},
		{
			name:     "action with german description",
			path:     "shortcut/action",
			payload:  apitypes.ActionRequest{Locale: "en_US", ScanCode: "14", Modifiers: []string{"ctrl"}, Lang: "de"},
			expected: `{"descriptor":"t CTRL","action":"keyboardOverlayNewTab","description":"Neuen Tab öffnen","locale":"en_US","scanCode":"14"}`,
		},
		{
			name:     "action without german text falls back to english",
			path:     "shortcut/action",
			payload:  apitypes.ActionRequest{Locale: "en_US", ScanCode: "3E", Modifiers: []string{"ctrl"}, Lang: "de"},
			expected: `{"descriptor":"glyph_fullscreen CTRL","action":"keyboardOverlayMirrorMonitors","description":"Mirror displays","locale":"en_US","scanCode":"3E"}`,
		},
		{
			name:     "action resolves locale tag",
			path:     "shortcut/action",
			payload:  apitypes.ActionRequest{Locale: "de-AT", ScanCode: "E0 4B", Modifiers: []string{"ALT"}},
			expected: `{"descriptor":"glyph_arrow_left ALT","action":"keyboardOverlayGoBack","description":"Go back","locale":"de","scanCode":"E0 4B"}`,
		},
		{
			name:     "action unknown locale",
			path:     "shortcut/action",
			payload:  apitypes.ActionRequest{Locale: "garbage", ScanCode: "14", Modifiers: []string{"ctrl"}},
			expected: `{"status":404,"title":"Not Found","detail":"unknown locale: garbage"}`,
		},
		{
			name:     "action empty locale uses en_US",
			path:     "shortcut/action",
			payload:  apitypes.ActionRequest{ScanCode: "14", Modifiers: []string{"ctrl"}},
			expected: `{"descriptor":"t CTRL","action":"keyboardOverlayNewTab","description":"Open a new tab","locale":"en_US","scanCode":"14"}`,
		},
		{
			name:     "action invalid json",
			path:     "shortcut/action",
			payload:  "{",
			expected: `{"status":400,"title":"Bad Request","detail":"invalid json: unexpected end of JSON input"}`,
		},
		{
			name:     "resolve input method",
			path:     "resolve",
			payload:  "hangul_2set",
			expected: `{"input":"hangul_2set","locale":"ko","exact":true,"layoutName":"U"}`,
		},
		{
			name:     "resolve empty",
			path:     "resolve",
			expected: `{"status":400,"title":"Bad Request","detail":"missing locale or input method id"}`,
		},
		{
			name:       "unknown layout",
			path:       "layout/{name}",
			pathParams: map[string]string{"name": "X"},
			expected:   `{"status":404,"title":"Not Found","detail":"unknown layout: x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := tr.Do(tt.path, tt.payload, tt.pathParams)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, line)
		})
	}
}

func TestLists(t *testing.T) {
	tbl := overlay.Default()
	tr := startServer(t, tbl)

	line, err := tr.Do("locale/list", nil, nil)
	require.NoError(t, err)
	var locales apitypes.LocaleListResponse
	require.NoError(t, json.Unmarshal([]byte(line), &locales))
	assert.Len(t, locales.Locales, len(tbl.LocaleIDs()))

	line, err = tr.Do("layout/list", nil, nil)
	require.NoError(t, err)
	var layouts apitypes.LayoutListResponse
	require.NoError(t, json.Unmarshal([]byte(line), &layouts))
	require.Len(t, layouts.Layouts, 4)
	for _, l := range layouts.Layouts {
		assert.NotEmpty(t, l.Description, l.Name)
		assert.Positive(t, l.Keys, l.Name)
	}

	line, err = tr.Do("layout/{name}", nil, map[string]string{"name": "J"})
	require.NoError(t, err)
	var jis apitypes.LayoutResponse
	require.NoError(t, json.Unmarshal([]byte(line), &jis))
	assert.Equal(t, "J", jis.Name)
	assert.Len(t, jis.Rects, jis.Keys)

	line, err = tr.Do("shortcut/list", "de", nil)
	require.NoError(t, err)
	var shortcuts apitypes.ShortcutListResponse
	require.NoError(t, json.Unmarshal([]byte(line), &shortcuts))
	assert.Len(t, shortcuts.Shortcuts, len(tbl.Shortcuts()))
	for _, s := range shortcuts.Shortcuts {
		assert.NotEqual(t, s.Action, s.Description, s.Descriptor)
		if s.Descriptor == "t CTRL" {
			assert.Equal(t, "Neuen Tab öffnen", s.Description)
		}
	}

	line, err = tr.Do("locale/{id}", nil, map[string]string{"id": "fr"})
	require.NoError(t, err)
	var fr apitypes.LocaleResponse
	require.NoError(t, json.Unmarshal([]byte(line), &fr))
	assert.Equal(t, "fr", fr.ID)
	l, _ := tbl.Locale("fr")
	assert.Len(t, fr.Keys, l.Len())
}

func TestKeyFallback(t *testing.T) {
	tr := startServer(t, overlay.Default())

	line, err := tr.Do("locale/{id}/key", "0E", map[string]string{"id": "en_US_colemak"})
	require.NoError(t, err)
	var resp apitypes.KeyResponse
	require.NoError(t, json.Unmarshal([]byte(line), &resp))
	assert.True(t, resp.Fallback)
	assert.Equal(t, "en_US", resp.Source)
	assert.Equal(t, "backspace", resp.Key.Key)
}

func TestValidate(t *testing.T) {
	tbl := overlay.NewTable(
		map[string]overlay.LocaleData{
			"xx": {LayoutName: "Q", Keys: map[string]overlay.KeyEntry{"14": {Key: "t", P1: "74"}}},
		},
		nil,
		map[string]string{"t CTRL": "keyboardOverlayNewTab"},
	)
	tr := startServer(t, tbl)

	line, err := tr.Do("validate", nil, nil)
	require.NoError(t, err)
	var resp apitypes.ValidateResponse
	require.NoError(t, json.Unmarshal([]byte(line), &resp))
	assert.Equal(t, 1, resp.Errors)
	assert.Equal(t, 0, resp.Warnings)
	require.Len(t, resp.Findings, 1)
	assert.Equal(t, "layoutName", resp.Findings[0].Field)
}
