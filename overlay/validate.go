package overlay

import (
	"cmp"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
)

// Severity grades a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one problem found in the table data.
type Finding struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Locale   string   `json:"locale,omitempty" yaml:"locale,omitempty"`
	Layout   string   `json:"layout,omitempty" yaml:"layout,omitempty"`
	ScanCode string   `json:"scanCode,omitempty" yaml:"scanCode,omitempty"`
	Field    string   `json:"field,omitempty" yaml:"field,omitempty"`
	Message  string   `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	var where []string
	if f.Locale != "" {
		where = append(where, "locale "+f.Locale)
	}
	if f.Layout != "" {
		where = append(where, "layout "+f.Layout)
	}
	if f.ScanCode != "" {
		where = append(where, "key "+f.ScanCode)
	}
	if f.Field != "" {
		where = append(where, f.Field)
	}
	if len(where) == 0 {
		return fmt.Sprintf("%s: %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("%s: %s: %s", f.Severity, strings.Join(where, " "), f.Message)
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	return slices.ContainsFunc(findings, func(f Finding) bool { return f.Severity == SeverityError })
}

// Spreadsheet formula errors left in notes by the authoring tool.
var spreadsheetArtifact = regexp.MustCompile(`#(VALUE|NUM|REF|NAME|N/A|DIV/0|NULL)[!?]?`)

// Authoring markers that mean a glyph still needs review.
var reviewMarker = regexp.MustCompile(`(?i)\b(TODO|FIXME|check|verify)\b`)

// Validate checks the table for structural errors and authoring leftovers.
// Findings are sorted so the output is stable.
func (t *Table) Validate() []Finding {
	var out []Finding
	add := func(f Finding) { out = append(out, f) }

	for name, lay := range t.layouts {
		if !name.Valid() {
			add(Finding{Severity: SeverityError, Layout: string(name), Message: "unknown layout name"})
		}
		seen := map[string]bool{}
		for _, r := range lay.rects {
			if _, ok := NormalizeScanCode(r.ScanCode); !ok {
				add(Finding{Severity: SeverityError, Layout: string(name), ScanCode: r.ScanCode, Message: "malformed scan code"})
			}
			if seen[r.ScanCode] {
				add(Finding{Severity: SeverityError, Layout: string(name), ScanCode: r.ScanCode, Message: "duplicate rectangle"})
			}
			seen[r.ScanCode] = true
			for _, v := range []float64{r.X, r.Y, r.Width, r.Height} {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
					add(Finding{Severity: SeverityError, Layout: string(name), ScanCode: r.ScanCode, Field: "geometry",
						Message: fmt.Sprintf("invalid geometry [%g %g %g %g]", r.X, r.Y, r.Width, r.Height)})
					break
				}
			}
		}
	}

	for id, l := range t.locales {
		lay, hasLayout := t.layouts[l.LayoutName]
		switch {
		case !l.LayoutName.Valid():
			add(Finding{Severity: SeverityError, Locale: id, Field: "layoutName", Message: fmt.Sprintf("unknown layout %q", l.LayoutName)})
		case !hasLayout:
			add(Finding{Severity: SeverityError, Locale: id, Field: "layoutName", Message: fmt.Sprintf("layout %q has no geometry", l.LayoutName)})
		}
		for code, e := range l.keys {
			if _, ok := NormalizeScanCode(code); !ok {
				add(Finding{Severity: SeverityError, Locale: id, ScanCode: code, Message: "malformed scan code"})
				continue
			}
			if !e.Format.Valid() {
				add(Finding{Severity: SeverityError, Locale: id, ScanCode: code, Field: "format", Message: fmt.Sprintf("unknown format %q", e.Format)})
			}
			for i, p := range e.Planes() {
				if _, ok := ParsePlaneCode(p); !ok {
					add(Finding{Severity: SeverityError, Locale: id, ScanCode: code, Field: fmt.Sprintf("p%d", i),
						Message: fmt.Sprintf("invalid code point %q", p)})
				}
			}
			if e.Key == "" && e.Label == "" {
				add(Finding{Severity: SeverityWarning, Locale: id, ScanCode: code, Message: "key has neither glyph text nor label"})
			}
			if hasLayout {
				if _, ok := lay.index[code]; !ok {
					add(Finding{Severity: SeverityWarning, Locale: id, ScanCode: code, Message: fmt.Sprintf("key not present in layout %s", l.LayoutName)})
				}
			}
			if m := spreadsheetArtifact.FindString(e.Notes); m != "" {
				add(Finding{Severity: SeverityWarning, Locale: id, ScanCode: code, Field: "notes", Message: fmt.Sprintf("spreadsheet artifact %q", m)})
			} else if reviewMarker.MatchString(e.Notes) {
				add(Finding{Severity: SeverityWarning, Locale: id, ScanCode: code, Field: "notes", Message: fmt.Sprintf("unresolved note %q", e.Notes)})
			}
		}
	}

	for desc, action := range t.shortcuts {
		if action == "" {
			add(Finding{Severity: SeverityError, Field: "shortcut", Message: fmt.Sprintf("descriptor %q has no message id", desc)})
		}
		key, mods, err := ParseDescriptor(desc)
		if err != nil {
			add(Finding{Severity: SeverityError, Field: "shortcut", Message: err.Error()})
			continue
		}
		if want := Descriptor(key, mods); want != desc {
			add(Finding{Severity: SeverityError, Field: "shortcut",
				Message: fmt.Sprintf("descriptor %q is not canonical, want %q", desc, want)})
		}
	}

	slices.SortFunc(out, func(a, b Finding) int {
		return cmp.Or(
			cmp.Compare(a.Severity, b.Severity),
			cmp.Compare(a.Layout, b.Layout),
			cmp.Compare(a.Locale, b.Locale),
			cmp.Compare(a.ScanCode, b.ScanCode),
			cmp.Compare(a.Field, b.Field),
			cmp.Compare(a.Message, b.Message),
		)
	})
	return out
}
