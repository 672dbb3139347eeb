package overlay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// PlaneCount is the number of modifier planes a key can carry (p1..p9).
const PlaneCount = 9

// Format is a rendering hint for a key's glyph text.
type Format string

const (
	FormatNone    Format = ""
	FormatLeft    Format = "left"
	FormatRight   Format = "right"
	FormatSmaller Format = "smaller"
)

// Valid reports whether f is one of the known formats.
func (f Format) Valid() bool {
	switch f {
	case FormatNone, FormatLeft, FormatRight, FormatSmaller:
		return true
	}
	return false
}

// LayoutName selects the physical keyboard geometry.
type LayoutName string

const (
	LayoutEuropean  LayoutName = "E"
	LayoutUS        LayoutName = "U"
	LayoutBrazilian LayoutName = "B"
	LayoutJapanese  LayoutName = "J"
)

// LayoutNames lists the known layouts in table order.
var LayoutNames = []LayoutName{LayoutEuropean, LayoutUS, LayoutBrazilian, LayoutJapanese}

// Valid reports whether n is one of E, U, B or J.
func (n LayoutName) Valid() bool {
	return slices.Contains(LayoutNames, n)
}

// Description returns the form factor name of the layout.
func (n LayoutName) Description() string {
	switch n {
	case LayoutEuropean:
		return "European ISO"
	case LayoutUS:
		return "US ANSI"
	case LayoutBrazilian:
		return "Brazilian ABNT2"
	case LayoutJapanese:
		return "Japanese JIS"
	}
	return ""
}

// KeyEntry describes what is printed on one physical key for one locale.
// Plane codes are hexadecimal Unicode code points exactly as authored.
type KeyEntry struct {
	Key      string `json:"key,omitempty" yaml:"key,omitempty" toml:"key,omitempty"`
	Label    string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Format   Format `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	Notes    string `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
	Position int    `json:"position" yaml:"position" toml:"position"`
	P1       string `json:"p1,omitempty" yaml:"p1,omitempty" toml:"p1,omitempty"`
	P2       string `json:"p2,omitempty" yaml:"p2,omitempty" toml:"p2,omitempty"`
	P3       string `json:"p3,omitempty" yaml:"p3,omitempty" toml:"p3,omitempty"`
	P4       string `json:"p4,omitempty" yaml:"p4,omitempty" toml:"p4,omitempty"`
	P5       string `json:"p5,omitempty" yaml:"p5,omitempty" toml:"p5,omitempty"`
	P6       string `json:"p6,omitempty" yaml:"p6,omitempty" toml:"p6,omitempty"`
	P7       string `json:"p7,omitempty" yaml:"p7,omitempty" toml:"p7,omitempty"`
	P8       string `json:"p8,omitempty" yaml:"p8,omitempty" toml:"p8,omitempty"`
	P9       string `json:"p9,omitempty" yaml:"p9,omitempty" toml:"p9,omitempty"`
}

// Plane returns the code authored for plane i (1..9), or "".
func (e KeyEntry) Plane(i int) string {
	switch i {
	case 1:
		return e.P1
	case 2:
		return e.P2
	case 3:
		return e.P3
	case 4:
		return e.P4
	case 5:
		return e.P5
	case 6:
		return e.P6
	case 7:
		return e.P7
	case 8:
		return e.P8
	case 9:
		return e.P9
	}
	return ""
}

// PlaneRune decodes the hex code point of plane i.
func (e KeyEntry) PlaneRune(i int) (rune, bool) {
	return ParsePlaneCode(e.Plane(i))
}

// Planes returns the non-empty planes keyed by index.
func (e KeyEntry) Planes() map[int]string {
	out := map[int]string{}
	for i := 1; i <= PlaneCount; i++ {
		if p := e.Plane(i); p != "" {
			out[i] = p
		}
	}
	return out
}

// Lines splits the glyph text into its printed rows, top first.
func (e KeyEntry) Lines() []string {
	if e.Key == "" {
		return nil
	}
	return strings.Split(e.Key, "\n")
}

// KeyText is the text used to identify the key: the alias of a glyph label,
// else the plane characters, else the printed glyph.
func (e KeyEntry) KeyText() string {
	if t, ok := LabelToKeyText[e.Label]; ok {
		return t
	}
	var chars []string
	for i := 1; i <= PlaneCount; i++ {
		if r, ok := e.PlaneRune(i); ok {
			chars = append(chars, string(r))
		}
	}
	if len(chars) > 0 {
		return strings.Join(chars, " ")
	}
	if e.Key != "" {
		return e.Key
	}
	return e.Label
}

// ParsePlaneCode decodes a plane code such as "20AC" into its rune.
func ParsePlaneCode(code string) (rune, bool) {
	if code == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

// LocaleData is the authoring form of one locale: its layout and key map.
type LocaleData struct {
	LayoutName LayoutName          `json:"layoutName" yaml:"layoutName" toml:"layoutName"`
	Keys       map[string]KeyEntry `json:"keys" yaml:"keys" toml:"keys"`
}

// Locale is the read-only view of one locale in a Table.
type Locale struct {
	ID         string
	LayoutName LayoutName
	keys       map[string]KeyEntry
}

// Key returns the entry for a scan code. The code is normalized first.
func (l *Locale) Key(scanCode string) (KeyEntry, bool) {
	code, ok := NormalizeScanCode(scanCode)
	if !ok {
		return KeyEntry{}, false
	}
	e, ok := l.keys[code]
	return e, ok
}

// Keys returns a copy of the locale's key map.
func (l *Locale) Keys() map[string]KeyEntry {
	return maps.Clone(l.keys)
}

// ScanCodes returns the locale's scan codes, short codes first.
func (l *Locale) ScanCodes() []string {
	return sortScanCodes(slices.Collect(maps.Keys(l.keys)))
}

// Len returns the number of keys defined by the locale.
func (l *Locale) Len() int { return len(l.keys) }

// Data returns a deep copy in authoring form.
func (l *Locale) Data() LocaleData {
	return LocaleData{LayoutName: l.LayoutName, Keys: l.Keys()}
}

// Rect is the on-screen bounding box of a physical key.
type Rect struct {
	ScanCode string  `yaml:"scanCode" toml:"scanCode"`
	X        float64 `yaml:"x" toml:"x"`
	Y        float64 `yaml:"y" toml:"y"`
	Width    float64 `yaml:"width" toml:"width"`
	Height   float64 `yaml:"height" toml:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// MarshalJSON writes the rectangle as [scanCode, x, y, width, height].
func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{r.ScanCode, r.X, r.Y, r.Width, r.Height})
}

// UnmarshalJSON accepts the array form and an object form.
func (r *Rect) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			ScanCode string  `json:"scanCode"`
			X        float64 `json:"x"`
			Y        float64 `json:"y"`
			Width    float64 `json:"width"`
			Height   float64 `json:"height"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = Rect(obj)
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 5 {
		return fmt.Errorf("rect: expected 5 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &r.ScanCode); err != nil {
		return fmt.Errorf("rect scan code: %w", err)
	}
	for i, dst := range []*float64{&r.X, &r.Y, &r.Width, &r.Height} {
		if err := json.Unmarshal(raw[i+1], dst); err != nil {
			return fmt.Errorf("rect %s element %d: %w", r.ScanCode, i+1, err)
		}
	}
	return nil
}

// Layout is the ordered key geometry of one form factor.
type Layout struct {
	Name  LayoutName
	rects []Rect
	index map[string]int
}

func newLayout(name LayoutName, rects []Rect) *Layout {
	l := &Layout{Name: name, rects: slices.Clone(rects), index: make(map[string]int, len(rects))}
	for i, r := range l.rects {
		if _, dup := l.index[r.ScanCode]; !dup {
			l.index[r.ScanCode] = i
		}
	}
	return l
}

// Rects returns a copy of the rectangles in table order.
func (l *Layout) Rects() []Rect { return slices.Clone(l.rects) }

// Rect returns the rectangle of a scan code.
func (l *Layout) Rect(scanCode string) (Rect, bool) {
	code, ok := NormalizeScanCode(scanCode)
	if !ok {
		return Rect{}, false
	}
	i, ok := l.index[code]
	if !ok {
		return Rect{}, false
	}
	return l.rects[i], true
}

// Len returns the number of rectangles.
func (l *Layout) Len() int { return len(l.rects) }

// Bounds returns the bounding box of all keys.
func (l *Layout) Bounds() (width, height float64) {
	for _, r := range l.rects {
		width = max(width, r.Right())
		height = max(height, r.Bottom())
	}
	return width, height
}

// KeyAt returns the rectangle containing the point, if any.
func (l *Layout) KeyAt(x, y float64) (Rect, bool) {
	for _, r := range l.rects {
		if r.Contains(x, y) {
			return r, true
		}
	}
	return Rect{}, false
}

// NormalizeScanCode returns the canonical form of a scan code: two upper-case
// hex digits, or "E0 XX" for extended keys. It accepts "e0-1d", "e01d",
// "0xE01D" and "E0 1D".
func NormalizeScanCode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', ':':
			return -1
		}
		return r
	}, s)
	s = strings.ToUpper(s)
	if len(s) != 2 && len(s) != 4 {
		return "", false
	}
	if _, err := strconv.ParseUint(s, 16, 16); err != nil {
		return "", false
	}
	if len(s) == 4 {
		return s[:2] + " " + s[2:], true
	}
	return s, true
}

func sortScanCodes(codes []string) []string {
	slices.SortFunc(codes, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	return codes
}
