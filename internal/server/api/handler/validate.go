package handler

import (
	"log/slog"

	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/overlay"
)

// Validate returns a handler reporting the validation findings of the
// served table.
func Validate(t *overlay.Table) api.HandlerFunc {
	return func(req *api.Request, res *api.Response, logger *slog.Logger) error {
		findings := t.Validate()
		out := apitypes.ValidateResponse{Findings: make([]apitypes.Finding, 0, len(findings))}
		for _, f := range findings {
			if f.Severity == overlay.SeverityError {
				out.Errors++
			} else {
				out.Warnings++
			}
			out.Findings = append(out.Findings, findingDTO(f))
		}
		return writeJSON(res, out)
	}
}
