package overlay

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Modifier is a set of modifier keys held with a shortcut.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModSearch
)

// Modifier names in descriptor order.
var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModAlt, "ALT"},
	{ModCtrl, "CTRL"},
	{ModSearch, "SEARCH"},
	{ModShift, "SHIFT"},
}

// Has reports whether m contains every modifier in mod.
func (m Modifier) Has(mod Modifier) bool {
	return mod != ModNone && m&mod == mod
}

// Names returns the modifier names in descriptor order.
func (m Modifier) Names() []string {
	var names []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			names = append(names, o.name)
		}
	}
	return names
}

func (m Modifier) String() string {
	return strings.Join(m.Names(), " ")
}

// ParseModifier parses one modifier name. "control" and "meta" are accepted
// as aliases of CTRL and SEARCH.
func ParseModifier(name string) (Modifier, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ALT":
		return ModAlt, nil
	case "CTRL", "CONTROL":
		return ModCtrl, nil
	case "SEARCH", "META":
		return ModSearch, nil
	case "SHIFT":
		return ModShift, nil
	}
	return ModNone, fmt.Errorf("unknown modifier %q", name)
}

// ParseModifiers combines modifier names into a set.
func ParseModifiers(names ...string) (Modifier, error) {
	var m Modifier
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		mod, err := ParseModifier(n)
		if err != nil {
			return ModNone, err
		}
		m |= mod
	}
	return m, nil
}

// Descriptor builds the shortcut lookup key: the key name followed by the
// modifier names, separated by single spaces.
func Descriptor(keyName string, mods Modifier) string {
	return strings.Join(append([]string{keyName}, mods.Names()...), " ")
}

// ParseDescriptor splits a descriptor into its key name and modifiers.
// Modifier order is not checked; compare with Descriptor for that.
func ParseDescriptor(s string) (string, Modifier, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", ModNone, fmt.Errorf("empty shortcut descriptor")
	}
	key := fields[0]
	mods, err := ParseModifiers(fields[1:]...)
	if err != nil {
		return "", ModNone, fmt.Errorf("descriptor %q: %w", s, err)
	}
	return key, mods, nil
}

// KeyName returns the name a key contributes to a shortcut descriptor.
// A glyph label wins. Otherwise the planes are scanned in order and the
// first ASCII character bound to a shortcut with mods is chosen; when none
// is bound the last printable plane character is used. Keys without planes
// use the first line of their glyph text.
func (t *Table) KeyName(e KeyEntry, mods Modifier) string {
	if e.Label != "" {
		return e.Label
	}
	name := ""
	for i := 1; i <= PlaneCount; i++ {
		r, ok := e.PlaneRune(i)
		if !ok || !unicode.IsPrint(r) {
			continue
		}
		name = string(r)
		if r < utf8.RuneSelf {
			if _, bound := t.shortcuts[Descriptor(name, mods)]; bound {
				break
			}
		}
	}
	if name != "" {
		return name
	}
	if lines := e.Lines(); len(lines) > 0 {
		return strings.ToLower(strings.TrimSpace(lines[0]))
	}
	return ""
}

// Action resolves the shortcut triggered by pressing scanCode with mods in
// a locale. Keys missing from the locale fall back to FallbackLocale, and so
// do keys identified only by their translated glyph text.
func (t *Table) Action(locale, scanCode string, mods Modifier) (descriptor, action string, ok bool) {
	e, src, found := t.KeyWithFallback(locale, scanCode)
	if !found {
		return "", "", false
	}
	if e.Label == "" && len(e.Planes()) == 0 && src != FallbackLocale {
		if fe, ok := t.Key(FallbackLocale, scanCode); ok {
			e = fe
		}
	}
	descriptor = Descriptor(t.KeyName(e, mods), mods)
	action, ok = t.shortcuts[descriptor]
	return descriptor, action, ok
}
