package handler

import (
	"encoding/json"
	"fmt"

	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/overlay"
)

func keyDTO(code string, e overlay.KeyEntry) apitypes.Key {
	k := apitypes.Key{
		ScanCode: code,
		Key:      e.Key,
		Label:    e.Label,
		Format:   string(e.Format),
		Notes:    e.Notes,
		Position: e.Position,
		Text:     e.KeyText(),
	}
	if planes := e.Planes(); len(planes) > 0 {
		k.Planes = make(map[string]string, len(planes))
		for i, p := range planes {
			k.Planes[fmt.Sprintf("p%d", i)] = p
		}
	}
	if usage, ok := overlay.ScanCodeToHID[code]; ok {
		k.HID = fmt.Sprintf("0x%02x", usage)
	}
	return k
}

func layoutSummary(l *overlay.Layout) apitypes.LayoutSummary {
	w, h := l.Bounds()
	return apitypes.LayoutSummary{
		Name:        string(l.Name),
		Description: l.Name.Description(),
		Keys:        l.Len(),
		Width:       w,
		Height:      h,
	}
}

func findingDTO(f overlay.Finding) apitypes.Finding {
	return apitypes.Finding{
		Severity: string(f.Severity),
		Locale:   f.Locale,
		Layout:   f.Layout,
		ScanCode: f.ScanCode,
		Field:    f.Field,
		Message:  f.Message,
	}
}

func writeJSON(res *api.Response, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	res.JSON = string(b)
	return nil
}

func lookupLocale(t *overlay.Table, id string) (*overlay.Locale, error) {
	l, ok := t.Locale(id)
	if !ok {
		return nil, api.ErrNotFound(fmt.Sprintf("unknown locale: %s", id))
	}
	return l, nil
}

func parseScanCode(payload string) (string, error) {
	if payload == "" {
		return "", api.ErrBadRequest("missing scan code")
	}
	code, ok := overlay.NormalizeScanCode(payload)
	if !ok {
		return "", api.ErrBadRequest(fmt.Sprintf("invalid scan code: %q", payload))
	}
	return code, nil
}
