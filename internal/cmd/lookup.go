package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/overlay"
)

// Locales lists the locales of the table.
type Locales struct{}

func (c *Locales) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	raw, err := g.Do(context.Background(), logger, "locale/list", nil, nil)
	if err != nil {
		return err
	}
	return g.Print(out, raw)
}

// Locale dumps every key of one locale.
type Locale struct {
	ID string `arg:"" help:"Locale id, e.g. de or en_US_colemak"`
}

func (c *Locale) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	raw, err := g.Do(context.Background(), logger, "locale/{id}", nil, map[string]string{"id": c.ID})
	if err != nil {
		return err
	}
	return g.Print(out, raw)
}

// Key looks up the glyph of one physical key.
type Key struct {
	Locale   string `arg:"" help:"Locale id"`
	ScanCode string `arg:"" name:"scancode" help:"Set 1 scan code (\"14\", \"E0 4B\") or, with --hid, a HID usage"`
	HID      bool   `help:"Interpret the key as a USB HID usage (0x17, 17h or 23)"`
}

func (c *Key) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	code, err := scanCodeArg(c.ScanCode, c.HID)
	if err != nil {
		return err
	}
	raw, err := g.Do(context.Background(), logger, "locale/{id}/key", code, map[string]string{"id": c.Locale})
	if err != nil {
		return err
	}
	return g.Print(out, raw)
}

func scanCodeArg(s string, hid bool) (string, error) {
	if !hid {
		return s, nil
	}
	usage, err := overlay.ParseHIDUsage(s)
	if err != nil {
		return "", err
	}
	code, ok := overlay.HIDToScanCode(usage)
	if !ok {
		return "", fmt.Errorf("no overlay key for HID usage 0x%02x", usage)
	}
	return code, nil
}

// Layout lists the layouts, or dumps one when a name is given.
type Layout struct {
	Name string `arg:"" optional:"" help:"Layout name (E, U, B or J)"`
}

func (c *Layout) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	pattern, params := "layout/list", map[string]string(nil)
	if c.Name != "" {
		pattern, params = "layout/{name}", map[string]string{"name": c.Name}
	}
	raw, err := g.Do(context.Background(), logger, pattern, nil, params)
	if err != nil {
		return err
	}
	return g.Print(out, raw)
}

// Shortcut lists the shortcut table, or resolves one descriptor.
type Shortcut struct {
	Descriptor []string `arg:"" optional:"" help:"Descriptor such as: t CTRL"`
}

func (c *Shortcut) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	var (
		raw string
		err error
	)
	if len(c.Descriptor) == 0 {
		raw, err = g.Do(context.Background(), logger, "shortcut/list", g.Lang, nil)
	} else {
		key, mods, perr := overlay.ParseDescriptor(strings.Join(c.Descriptor, " "))
		if perr != nil {
			return perr
		}
		raw, err = g.Do(context.Background(), logger, "shortcut/resolve", overlay.Descriptor(key, mods), nil)
	}
	if err != nil {
		return err
	}
	return g.Print(out, raw)
}

// Action resolves the action a key press triggers.
type Action struct {
	Locale    string   `arg:"" help:"Locale id, BCP 47 tag or input method id"`
	ScanCode  string   `arg:"" name:"scancode" help:"Set 1 scan code of the pressed key"`
	Modifiers []string `arg:"" optional:"" help:"Held modifiers: ALT CTRL SEARCH SHIFT"`
	HID       bool     `help:"Interpret the key as a USB HID usage"`
}

func (c *Action) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	code, err := scanCodeArg(c.ScanCode, c.HID)
	if err != nil {
		return err
	}
	req := apitypes.ActionRequest{Locale: c.Locale, ScanCode: code, Modifiers: c.Modifiers, Lang: g.Lang}
	raw, err := g.Do(context.Background(), logger, "shortcut/action", req, nil)
	if err != nil {
		return err
	}
	return g.Print(out, raw)
}

// Resolve maps a language tag or input method id to an overlay locale.
type Resolve struct {
	Tag string `arg:"" help:"BCP 47 tag (de-AT) or input method id (xkb:de::ger)"`
}

func (c *Resolve) Run(g *Globals, logger *slog.Logger, out io.Writer) error {
	raw, err := g.Do(context.Background(), logger, "resolve", c.Tag, nil)
	if err != nil {
		return err
	}
	return g.Print(out, raw)
}
