package overlay

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// FallbackLocale is used when a locale or one of its keys is missing.
const FallbackLocale = "en_US"

// Table is the complete overlay data: key glyphs per locale, key geometry
// per layout and the shortcut bindings. A Table is never modified after
// construction and is safe for concurrent use.
type Table struct {
	locales   map[string]*Locale
	ids       map[string]string
	layouts   map[LayoutName]*Layout
	shortcuts map[string]string

	matcher    language.Matcher
	matcherIDs []string
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the built-in table.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(builtinLocales, builtinLayouts, builtinShortcuts)
	})
	return defaultTable
}

// NewTable builds a table from authoring data. Inputs are copied.
func NewTable(locales map[string]LocaleData, layouts map[LayoutName][]Rect, shortcuts map[string]string) *Table {
	t := &Table{
		locales:   make(map[string]*Locale, len(locales)),
		ids:       make(map[string]string, len(locales)),
		layouts:   make(map[LayoutName]*Layout, len(layouts)),
		shortcuts: maps.Clone(shortcuts),
	}
	if t.shortcuts == nil {
		t.shortcuts = map[string]string{}
	}
	for id, data := range locales {
		keys := make(map[string]KeyEntry, len(data.Keys))
		for code, e := range data.Keys {
			if c, ok := NormalizeScanCode(code); ok {
				code = c
			}
			keys[code] = e
		}
		t.locales[id] = &Locale{ID: id, LayoutName: data.LayoutName, keys: keys}
		t.ids[canonicalKey(id)] = id
	}
	for name, rects := range layouts {
		t.layouts[name] = newLayout(name, rects)
	}
	t.buildMatcher()
	return t
}

func canonicalKey(id string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(id), "-", "_"))
}

// Locale returns a locale by id. Matching ignores case and accepts "-" for "_".
func (t *Table) Locale(id string) (*Locale, bool) {
	canon, ok := t.ids[canonicalKey(id)]
	if !ok {
		return nil, false
	}
	return t.locales[canon], true
}

// LocaleIDs returns all locale ids, sorted.
func (t *Table) LocaleIDs() []string {
	return slices.Sorted(maps.Keys(t.locales))
}

// Key returns the entry of a scan code in a locale.
func (t *Table) Key(locale, scanCode string) (KeyEntry, bool) {
	l, ok := t.Locale(locale)
	if !ok {
		return KeyEntry{}, false
	}
	return l.Key(scanCode)
}

// KeyWithFallback looks the scan code up in the locale and then in
// FallbackLocale. It returns the id of the locale that supplied the entry.
func (t *Table) KeyWithFallback(locale, scanCode string) (KeyEntry, string, bool) {
	if l, ok := t.Locale(locale); ok {
		if e, ok := l.Key(scanCode); ok {
			return e, l.ID, true
		}
	}
	if l, ok := t.Locale(FallbackLocale); ok {
		if e, ok := l.Key(scanCode); ok {
			return e, l.ID, true
		}
	}
	return KeyEntry{}, "", false
}

// Layout returns the geometry of a layout name, case-insensitively.
func (t *Table) Layout(name string) (*Layout, bool) {
	l, ok := t.layouts[LayoutName(strings.ToUpper(strings.TrimSpace(name)))]
	return l, ok
}

// LayoutNames returns the names of the layouts present in the table.
func (t *Table) LayoutNames() []LayoutName {
	out := make([]LayoutName, 0, len(t.layouts))
	for _, n := range LayoutNames {
		if _, ok := t.layouts[n]; ok {
			out = append(out, n)
		}
	}
	for n := range t.layouts {
		if !n.Valid() {
			out = append(out, n)
		}
	}
	return out
}

// LayoutFor returns the geometry used by a locale.
func (t *Table) LayoutFor(locale string) (*Layout, bool) {
	l, ok := t.Locale(locale)
	if !ok {
		return nil, false
	}
	lay, ok := t.layouts[l.LayoutName]
	return lay, ok
}

// Shortcut returns the message id bound to a shortcut descriptor.
func (t *Table) Shortcut(descriptor string) (string, bool) {
	action, ok := t.shortcuts[descriptor]
	return action, ok
}

// Shortcuts returns a copy of the shortcut table.
func (t *Table) Shortcuts() map[string]string {
	return maps.Clone(t.shortcuts)
}

// ShortcutDescriptors returns all descriptors, sorted.
func (t *Table) ShortcutDescriptors() []string {
	return slices.Sorted(maps.Keys(t.shortcuts))
}

// LocaleData returns a deep copy of every locale in authoring form.
func (t *Table) LocaleData() map[string]LocaleData {
	out := make(map[string]LocaleData, len(t.locales))
	for id, l := range t.locales {
		out[id] = l.Data()
	}
	return out
}

// LayoutData returns a copy of every layout's rectangles.
func (t *Table) LayoutData() map[LayoutName][]Rect {
	out := make(map[LayoutName][]Rect, len(t.layouts))
	for n, l := range t.layouts {
		out[n] = l.Rects()
	}
	return out
}
