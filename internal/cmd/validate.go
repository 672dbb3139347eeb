package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/kbdoverlay/apitypes"
)

// Validate checks the table, including --data overrides, for errors and
// authoring leftovers.
type Validate struct {
	Strict bool `help:"Fail on warnings as well as errors"`
}

func (c *Validate) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	raw, err := g.Do(context.Background(), logger, "validate", nil, nil)
	if err != nil {
		return err
	}
	var resp apitypes.ValidateResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return fmt.Errorf("decode validate response: %w", err)
	}
	if err := g.Print(out, raw); err != nil {
		return err
	}
	logger.Info("validation finished", "errors", resp.Errors, "warnings", resp.Warnings)
	switch {
	case resp.Errors > 0:
		return fmt.Errorf("%d validation errors", resp.Errors)
	case c.Strict && resp.Warnings > 0:
		return fmt.Errorf("%d validation warnings", resp.Warnings)
	}
	return nil
}
