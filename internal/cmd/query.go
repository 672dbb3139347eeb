package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/kbdoverlay/overlay/codec"
)

// Query evaluates a gjson path against the table document, e.g.
// "keyboardGlyph.fr.keys.12" or "shortcut.t CTRL".
type Query struct {
	Path string `arg:"" help:"gjson path"`
}

func (c *Query) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	t, err := g.LoadTable(logger)
	if err != nil {
		return err
	}
	res, err := codec.Query(codec.FromTable(t), c.Path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, codec.Pretty(res))
	return err
}
