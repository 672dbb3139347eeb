// Package codec reads and writes the overlay table as a document in JSON,
// YAML or TOML.
//
// The document has the shape of the authored asset:
//
//	{
//	  "keyboardGlyph": {"en_US": {"layoutName": "U", "keys": {"02": {...}}}},
//	  "layouts":       {"U": [["01", 16, 16, 114, 38], ...]},
//	  "shortcut":      {"t CTRL": "keyboardOverlayNewTab"}
//	}
//
// In YAML and TOML a rectangle is written as a table with scanCode, x, y,
// width and height.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	"github.com/tidwall/gjson"
	yaml "gopkg.in/yaml.v3"

	"github.com/Alia5/kbdoverlay/overlay"
)

// Format is a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// Formats lists the supported encodings.
var Formats = []Format{JSON, YAML, TOML}

// ErrNoMatch is returned by Query when the path selects nothing.
var ErrNoMatch = errors.New("path matched nothing")

// Document is the serializable form of an overlay table. All sections are
// optional so a document can carry a partial override.
type Document struct {
	KeyboardGlyph map[string]overlay.LocaleData `json:"keyboardGlyph,omitempty" yaml:"keyboardGlyph,omitempty" toml:"keyboardGlyph,omitempty"`
	Layouts       map[string][]overlay.Rect     `json:"layouts,omitempty" yaml:"layouts,omitempty" toml:"layouts,omitempty"`
	Shortcut      map[string]string             `json:"shortcut,omitempty" yaml:"shortcut,omitempty" toml:"shortcut,omitempty"`
}

// FromTable captures the whole table as a document.
func FromTable(t *overlay.Table) Document {
	layouts := map[string][]overlay.Rect{}
	for name, rects := range t.LayoutData() {
		layouts[string(name)] = rects
	}
	return Document{
		KeyboardGlyph: t.LocaleData(),
		Layouts:       layouts,
		Shortcut:      t.Shortcuts(),
	}
}

// Table builds a table from the document alone.
func (d Document) Table() *overlay.Table {
	return overlay.NewTable(d.KeyboardGlyph, d.layoutData(), d.Shortcut)
}

func (d Document) layoutData() map[overlay.LayoutName][]overlay.Rect {
	out := make(map[overlay.LayoutName][]overlay.Rect, len(d.Layouts))
	for name, rects := range d.Layouts {
		out[overlay.LayoutName(strings.ToUpper(name))] = rects
	}
	return out
}

// NormalizeFormat maps a format name or file extension to a Format.
// It returns "" for anything unsupported.
func NormalizeFormat(f string) Format {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(f), ".")) {
	case "json":
		return JSON
	case "yaml", "yml":
		return YAML
	case "toml":
		return TOML
	default:
		return ""
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	f := NormalizeFormat(filepath.Ext(path))
	if f == "" {
		return "", fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
	return f, nil
}

// Marshal encodes the document. JSON output is indented.
func Marshal(doc Document, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return json.MarshalIndent(doc, "", "  ")
	case YAML:
		return yaml.Marshal(doc)
	case TOML:
		return toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported format: %s", f)
	}
}

// Unmarshal decodes a document.
func Unmarshal(data []byte, f Format) (Document, error) {
	var doc Document
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, &doc)
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case TOML:
		err = toml.Unmarshal(data, &doc)
	default:
		return Document{}, fmt.Errorf("unsupported format: %s", f)
	}
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", f, err)
	}
	return doc, nil
}

// Encode writes the document to w.
func Encode(w io.Writer, doc Document, f Format) error {
	data, err := Marshal(doc, f)
	if err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a whole document from r.
func Decode(r io.Reader, f Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}
	return Unmarshal(data, f)
}

// LoadFile reads a document, choosing the format by extension.
func LoadFile(path string) (Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	doc, err := Unmarshal(data, f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Merge overlays doc onto base and returns a new table. Locales and layouts
// in doc replace the base entry with the same name as a whole. Shortcuts
// are merged per descriptor; an empty message id removes the binding.
func Merge(base *overlay.Table, doc Document) *overlay.Table {
	locales := base.LocaleData()
	for id, l := range doc.KeyboardGlyph {
		if existing, ok := base.Locale(id); ok {
			delete(locales, existing.ID)
		}
		locales[id] = l
	}
	layouts := base.LayoutData()
	for name, rects := range doc.layoutData() {
		layouts[name] = rects
	}
	shortcuts := base.Shortcuts()
	for desc, action := range doc.Shortcut {
		if action == "" {
			delete(shortcuts, desc)
			continue
		}
		shortcuts[desc] = action
	}
	return overlay.NewTable(locales, layouts, shortcuts)
}

// Query evaluates a gjson path against the JSON form of the document,
// e.g. "keyboardGlyph.fr.keys.12.p9" or "shortcut.t CTRL".
func Query(doc Document, path string) (gjson.Result, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return gjson.Result{}, err
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return res, fmt.Errorf("%w: %s", ErrNoMatch, path)
	}
	return res, nil
}

// Pretty re-indents a query result for display.
func Pretty(res gjson.Result) string {
	if res.IsObject() || res.IsArray() {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(res.Raw), "", "  "); err == nil {
			return buf.String()
		}
	}
	return res.String()
}
