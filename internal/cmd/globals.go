package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/kbdoverlay/apiclient"
	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/internal/server/api/handler"
	"github.com/Alia5/kbdoverlay/overlay"
	"github.com/Alia5/kbdoverlay/overlay/codec"
	"github.com/Alia5/kbdoverlay/overlay/messages"
)

// Version is reported by ping and the server banner.
var Version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Data     []string `help:"Override files (json/yaml/toml) merged over the built-in table, in order" type:"existingfile" env:"KBDOVERLAY_DATA"`
	Messages []string `help:"Extra go-i18n message files for action descriptions" type:"existingfile" env:"KBDOVERLAY_MESSAGES"`
	Lang     string   `help:"Language of action descriptions" default:"en" env:"KBDOVERLAY_LANG"`
	Remote   string   `help:"Query a running server at this address instead of the local table" env:"KBDOVERLAY_REMOTE"`
	Password string   `help:"Password of the --remote server" env:"KBDOVERLAY_PASSWORD"`
	Output   string   `help:"Output format" enum:"json,yaml,toml" default:"json" short:"o"`
}

// LoadTable returns the built-in table with every --data file merged on top.
func (g *Globals) LoadTable(logger *slog.Logger) (*overlay.Table, error) {
	t := overlay.Default()
	for _, path := range g.Data {
		doc, err := codec.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load data: %w", err)
		}
		t = codec.Merge(t, doc)
		logger.Debug("merged data file", "file", path,
			"locales", len(doc.KeyboardGlyph), "layouts", len(doc.Layouts), "shortcuts", len(doc.Shortcut))
	}
	return t, nil
}

// LoadCatalog returns the message catalog including every --messages file.
func (g *Globals) LoadCatalog() (*messages.Catalog, error) {
	cat, err := messages.New(g.Messages...)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	return cat, nil
}

// Do runs one lookup request, either against --remote or in process through
// the same handlers the server uses, and returns the JSON response.
func (g *Globals) Do(ctx context.Context, logger *slog.Logger, pattern string, payload any, params map[string]string) (string, error) {
	if g.Remote != "" {
		raw, err := g.transport().DoCtx(ctx, pattern, payload, params)
		if err != nil {
			return "", err
		}
		return raw, problem(raw)
	}

	t, err := g.LoadTable(logger)
	if err != nil {
		return "", err
	}
	cat, err := g.LoadCatalog()
	if err != nil {
		return "", err
	}
	r := api.NewRouter()
	handler.Register(r, t, cat, api.ServerConfig{Lang: g.Lang}, Version)

	path := pattern
	for k, v := range params {
		path = strings.ReplaceAll(path, "{"+k+"}", v)
	}
	h, p := r.Match(path)
	if h == nil {
		return "", api.ErrNotFound(fmt.Sprintf("unknown path: %s", path))
	}
	var body string
	switch v := payload.(type) {
	case nil:
	case string:
		body = v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		body = string(b)
	}
	req := &api.Request{Ctx: ctx, Path: strings.ToLower(path), Params: p, Payload: body}
	res := &api.Response{}
	if err := h(req, res, logger); err != nil {
		return "", api.WrapError(err)
	}
	return res.JSON, nil
}

func (g *Globals) transport() *apiclient.Transport {
	if g.Password != "" {
		return apiclient.NewTransportWithPassword(g.Remote, g.Password)
	}
	return apiclient.NewTransport(g.Remote)
}

// problem returns the ApiError carried by a response line, if any.
func problem(raw string) error {
	var p apitypes.ApiError
	if err := json.Unmarshal([]byte(raw), &p); err == nil && (p.Status != 0 || p.Title != "") {
		return &p
	}
	return nil
}

// Print writes a JSON document in the --output format.
func (g *Globals) Print(w io.Writer, raw string) error {
	return printAs(w, raw, g.Output)
}

func printAs(w io.Writer, raw, format string) error {
	switch codec.NormalizeFormat(format) {
	case codec.YAML:
		var node yaml.Node
		if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
			return err
		}
		blockStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return err
		}
		return enc.Close()
	case codec.TOML:
		var m map[string]any
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			return err
		}
		b, err := toml.Marshal(m)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	default:
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(raw), "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err := buf.WriteTo(w)
		return err
	}
}

// blockStyle drops the flow style JSON input decodes with, so the YAML
// output keeps key order but reads like YAML.
func blockStyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, c := range n.Content {
		blockStyle(c)
	}
}
