package handler

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/overlay"
)

// LocaleList returns a handler that lists the locales of the table.
func LocaleList(t *overlay.Table) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		out := apitypes.LocaleListResponse{Locales: []apitypes.LocaleSummary{}}
		for _, id := range t.LocaleIDs() {
			l, _ := t.Locale(id)
			out.Locales = append(out.Locales, apitypes.LocaleSummary{
				ID:         l.ID,
				LayoutName: string(l.LayoutName),
				Keys:       l.Len(),
			})
		}
		return writeJSON(res, out)
	}
}

// Locale returns a handler that dumps every key of one locale.
func Locale(t *overlay.Table) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		l, err := lookupLocale(t, req.Params["id"])
		if err != nil {
			return err
		}
		out := apitypes.LocaleResponse{ID: l.ID, LayoutName: string(l.LayoutName), Keys: []apitypes.Key{}}
		for _, code := range l.ScanCodes() {
			e, _ := l.Key(code)
			out.Keys = append(out.Keys, keyDTO(code, e))
		}
		return writeJSON(res, out)
	}
}

// LocaleKey returns a handler that looks up one scan code, given as the
// payload, in a locale. Keys the locale lacks come from the fallback locale.
func LocaleKey(t *overlay.Table) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		l, err := lookupLocale(t, req.Params["id"])
		if err != nil {
			return err
		}
		code, err := parseScanCode(strings.TrimSpace(req.Payload))
		if err != nil {
			return err
		}
		e, src, ok := t.KeyWithFallback(l.ID, code)
		if !ok {
			return api.ErrNotFound(fmt.Sprintf("no key %s in locale %s", code, l.ID))
		}
		if src != l.ID {
			logger.Debug("key from fallback locale", "locale", l.ID, "scanCode", code, "source", src)
		}
		return writeJSON(res, apitypes.KeyResponse{
			Locale:   l.ID,
			Source:   src,
			Fallback: src != l.ID,
			Key:      keyDTO(code, e),
		})
	}
}
