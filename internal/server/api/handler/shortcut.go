package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/overlay"
	"github.com/Alia5/kbdoverlay/overlay/messages"
)

// Describer turns action ids into display text.
type Describer interface {
	Describe(action string, langs ...string) string
}

var _ Describer = (*messages.Catalog)(nil)

func describe(d Describer, action string, langs ...string) string {
	if d == nil {
		return ""
	}
	return d.Describe(action, langs...)
}

// ShortcutList returns a handler that lists every shortcut binding in
// descriptor order. The payload optionally names the description language.
func ShortcutList(t *overlay.Table, d Describer, defaultLang string) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		lang := strings.TrimSpace(req.Payload)
		shortcuts := t.Shortcuts()
		out := apitypes.ShortcutListResponse{Shortcuts: make([]apitypes.Shortcut, 0, len(shortcuts))}
		for _, desc := range t.ShortcutDescriptors() {
			action := shortcuts[desc]
			out.Shortcuts = append(out.Shortcuts, apitypes.Shortcut{
				Descriptor:  desc,
				Action:      action,
				Description: describe(d, action, lang, defaultLang),
			})
		}
		return writeJSON(res, out)
	}
}

// ShortcutResolve returns a handler that looks up the action bound to the
// descriptor given as payload. The descriptor is canonicalized first, so
// modifier order and case do not matter.
func ShortcutResolve(t *overlay.Table, d Describer, defaultLang string) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		payload := strings.TrimSpace(req.Payload)
		if payload == "" {
			return api.ErrBadRequest("missing descriptor")
		}
		key, mods, err := overlay.ParseDescriptor(payload)
		if err != nil {
			return api.ErrBadRequest(err.Error())
		}
		desc := overlay.Descriptor(key, mods)
		action, ok := t.Shortcut(desc)
		if !ok {
			return api.ErrNotFound(fmt.Sprintf("no shortcut bound to %q", desc))
		}
		return writeJSON(res, apitypes.ShortcutResponse{Shortcut: apitypes.Shortcut{
			Descriptor:  desc,
			Action:      action,
			Description: describe(d, action, defaultLang),
		}})
	}
}

// ShortcutAction returns a handler that resolves the action a key press
// triggers. The payload is an ActionRequest JSON object. The locale may be
// a locale id, an input method id or a language tag; an empty locale means
// overlay.FallbackLocale.
func ShortcutAction(t *overlay.Table, d Describer, defaultLang string) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		var in apitypes.ActionRequest
		if err := json.Unmarshal([]byte(req.Payload), &in); err != nil {
			return api.ErrBadRequest(fmt.Sprintf("invalid json: %v", err))
		}
		code, err := parseScanCode(strings.TrimSpace(in.ScanCode))
		if err != nil {
			return err
		}
		mods, err := overlay.ParseModifiers(in.Modifiers...)
		if err != nil {
			return api.ErrBadRequest(err.Error())
		}
		locale, err := requestLocale(t, in.Locale)
		if err != nil {
			return err
		}
		if !strings.EqualFold(locale, in.Locale) {
			logger.Debug("resolved locale", "input", in.Locale, "locale", locale)
		}
		out, err := lookupAction(t, d, locale, code, mods, in.Lang, defaultLang)
		if err != nil {
			return err
		}
		return writeJSON(res, out)
	}
}

// requestLocale maps the locale of a request through Table.MatchLocale.
// Input that matches nothing is a 404, unlike Table.Resolve.
func requestLocale(t *overlay.Table, in string) (string, error) {
	if strings.TrimSpace(in) == "" {
		return overlay.FallbackLocale, nil
	}
	id, ok := t.MatchLocale(in)
	if !ok {
		return "", api.ErrNotFound(fmt.Sprintf("unknown locale: %s", in))
	}
	return id, nil
}

func lookupAction(t *overlay.Table, d Describer, locale, code string, mods overlay.Modifier, langs ...string) (apitypes.ShortcutResponse, error) {
	desc, action, ok := t.Action(locale, code, mods)
	if desc == "" {
		return apitypes.ShortcutResponse{}, api.ErrNotFound(fmt.Sprintf("no key %s in locale %s", code, locale))
	}
	if !ok {
		return apitypes.ShortcutResponse{}, api.ErrNotFound(fmt.Sprintf("no shortcut bound to %q", desc))
	}
	return apitypes.ShortcutResponse{
		Shortcut: apitypes.Shortcut{
			Descriptor:  desc,
			Action:      action,
			Description: describe(d, action, langs...),
		},
		Locale:   locale,
		ScanCode: code,
	}, nil
}
