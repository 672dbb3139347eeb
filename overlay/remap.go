package overlay

// ModifierScanCodes maps the scan codes of modifier keys to their modifier.
var ModifierScanCodes = map[string]Modifier{
	"2A":    ModShift,
	"36":    ModShift,
	"1D":    ModCtrl,
	"E0 1D": ModCtrl,
	"38":    ModAlt,
	"E0 38": ModAlt,
	"E0 5B": ModSearch,
}

// Scan codes of the left-hand key of each modifier.
var modifierHomeKeys = map[Modifier]string{
	ModShift:  "2A",
	ModCtrl:   "1D",
	ModAlt:    "38",
	ModSearch: "E0 5B",
}

// Remap describes user modifier remapping: the physical modifier key on
// the left acts as the modifier on the right. ModNone disables the key.
// Modifiers without an entry keep their own meaning.
type Remap map[Modifier]Modifier

// RemapModifiers translates physically held modifiers into the modifiers
// the system sees.
func (r Remap) RemapModifiers(held Modifier) Modifier {
	var out Modifier
	for _, o := range modifierOrder {
		if !held.Has(o.mod) {
			continue
		}
		if to, ok := r[o.mod]; ok {
			out |= to
			continue
		}
		out |= o.mod
	}
	return out
}

// RemapScanCode returns the scan code of the key whose meaning a pressed
// modifier key takes on. Other keys are returned unchanged; a disabled
// modifier key returns "".
func (r Remap) RemapScanCode(scanCode string) string {
	code, ok := NormalizeScanCode(scanCode)
	if !ok {
		return scanCode
	}
	mod, ok := ModifierScanCodes[code]
	if !ok {
		return code
	}
	to, ok := r[mod]
	if !ok || to == mod {
		return code
	}
	if to == ModNone {
		return ""
	}
	return modifierHomeKeys[to]
}

// ParseRemap builds a Remap from name pairs such as {"search": "ctrl"}.
// The target "disabled" maps a key to ModNone.
func ParseRemap(pairs map[string]string) (Remap, error) {
	r := Remap{}
	for from, to := range pairs {
		f, err := ParseModifier(from)
		if err != nil {
			return nil, err
		}
		if to == "disabled" || to == "" {
			r[f] = ModNone
			continue
		}
		t, err := ParseModifier(to)
		if err != nil {
			return nil, err
		}
		r[f] = t
	}
	return r, nil
}
