package handler

import (
	"log/slog"
	"strings"

	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/overlay"
)

// Resolve returns a handler mapping a BCP 47 tag or input method id to the
// overlay locale that should be shown for it.
func Resolve(t *overlay.Table) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		in := strings.TrimSpace(req.Payload)
		if in == "" {
			return api.ErrBadRequest("missing locale or input method id")
		}
		id, exact := t.Resolve(in)
		out := apitypes.ResolveResponse{Input: in, Locale: id, Exact: exact}
		if l, ok := t.Locale(id); ok {
			out.LayoutName = string(l.LayoutName)
		}
		return writeJSON(res, out)
	}
}
