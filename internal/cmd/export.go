package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/kbdoverlay/internal/configpaths"
	"github.com/Alia5/kbdoverlay/overlay"
	"github.com/Alia5/kbdoverlay/overlay/codec"
)

// Export writes the table as a document that --data accepts.
type Export struct {
	File    string   `help:"Destination file; the format follows its extension" short:"f" type:"path"`
	Locales []string `help:"Only export these locales" name:"locale"`
	Force   bool     `help:"Overwrite if the file already exists"`
}

func (c *Export) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	t, err := g.LoadTable(logger)
	if err != nil {
		return err
	}
	doc := codec.FromTable(t)
	if len(c.Locales) > 0 {
		doc.KeyboardGlyph, err = pickLocales(t, c.Locales)
		if err != nil {
			return err
		}
	}

	format := codec.NormalizeFormat(g.Output)
	if c.File == "" {
		return codec.Encode(out, doc, format)
	}
	if format, err = codec.FormatFromPath(c.File); err != nil {
		return err
	}
	if !c.Force {
		if _, err := os.Stat(c.File); err == nil {
			return fmt.Errorf("%s exists; use --force to overwrite", c.File)
		}
	}
	if err := configpaths.EnsureDir(c.File); err != nil {
		return err
	}
	f, err := os.Create(c.File)
	if err != nil {
		return err
	}
	if err := codec.Encode(f, doc, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("exported table", "file", c.File, "format", format, "locales", len(doc.KeyboardGlyph))
	return nil
}

func pickLocales(t *overlay.Table, ids []string) (map[string]overlay.LocaleData, error) {
	out := make(map[string]overlay.LocaleData, len(ids))
	var unknown []string
	for _, id := range ids {
		l, ok := t.Locale(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		out[l.ID] = l.Data()
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown locales: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}
