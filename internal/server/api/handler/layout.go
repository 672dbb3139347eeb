package handler

import (
	"fmt"
	"log/slog"

	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/overlay"
)

// LayoutList returns a handler that lists the layouts and their extents.
func LayoutList(t *overlay.Table) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		out := apitypes.LayoutListResponse{Layouts: []apitypes.LayoutSummary{}}
		for _, name := range t.LayoutNames() {
			l, _ := t.Layout(string(name))
			out.Layouts = append(out.Layouts, layoutSummary(l))
		}
		return writeJSON(res, out)
	}
}

// Layout returns a handler that dumps the key rectangles of one layout.
func Layout(t *overlay.Table) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		name := req.Params["name"]
		l, ok := t.Layout(name)
		if !ok {
			return api.ErrNotFound(fmt.Sprintf("unknown layout: %s", name))
		}
		out := apitypes.LayoutResponse{LayoutSummary: layoutSummary(l), Rects: []apitypes.Rect{}}
		for _, r := range l.Rects() {
			out.Rects = append(out.Rects, apitypes.Rect(r))
		}
		return writeJSON(res, out)
	}
}
