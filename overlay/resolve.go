package overlay

import (
	"strings"

	"golang.org/x/text/language"
)

// InputMethodToOverlayID maps input method ids to overlay locale ids.
var InputMethodToOverlayID = map[string]string{
	"xkb:us::eng":               "en_US",
	"xkb:us:intl:eng":           "en_US_intl",
	"xkb:us:altgr-intl:eng":     "en_US_intl",
	"xkb:us:dvorak:eng":         "en_US_dvorak",
	"xkb:us:colemak:eng":        "en_US_colemak",
	"xkb:gb:extd:eng":           "en_GB",
	"xkb:gb:dvorak:eng":         "en_GB",
	"xkb:de::ger":               "de",
	"xkb:de:neo:ger":            "de",
	"xkb:ch::ger":               "de",
	"xkb:fr::fra":               "fr",
	"xkb:be::fra":               "fr",
	"xkb:ch:fr:fra":             "fr",
	"xkb:ca::fra":               "fr_CA",
	"xkb:ca:multix:fra":         "fr_CA",
	"xkb:es::spa":               "es",
	"xkb:latam::spa":            "es",
	"xkb:it::ita":               "it",
	"xkb:se::swe":               "sv",
	"xkb:pt::por":               "pt_PT",
	"xkb:br::por":               "pt_BR",
	"xkb:ru::rus":               "ru",
	"xkb:ru:phonetic:rus":       "ru",
	"xkb:gr::gre":               "el",
	"xkb:il::heb":               "he",
	"xkb:jp::jpn":               "ja",
	"nacl_mozc_jp":              "ja",
	"nacl_mozc_us":              "ja",
	"hangul_2set":               "ko",
	"hangul_3set390":            "ko",
	"zh-t-i0-pinyin":            "zh_CN",
	"zh-hant-t-i0-und":          "zh_TW",
	"zh-hant-t-i0-cangjie-1987": "zh_TW",
	"vkd_hi_inscript":           "hi",
	"hi-t-i0-und":               "hi",
}

func (t *Table) buildMatcher() {
	var tags []language.Tag
	add := func(id string) {
		tag, err := language.Parse(strings.ReplaceAll(id, "_", "-"))
		if err != nil {
			return
		}
		tags = append(tags, tag)
		t.matcherIDs = append(t.matcherIDs, id)
	}
	// The matcher falls back to its first tag.
	if _, ok := t.locales[FallbackLocale]; ok {
		add(FallbackLocale)
	}
	for _, id := range t.LocaleIDs() {
		if id != FallbackLocale {
			add(id)
		}
	}
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}
}

// Resolve picks the locale to show for a language tag or input method id.
// exact is true when the input named a locale or input method directly.
// Unknown input resolves to FallbackLocale.
func (t *Table) Resolve(tag string) (id string, exact bool) {
	id, exact, ok := t.match(tag)
	if !ok {
		return FallbackLocale, false
	}
	return id, exact
}

// MatchLocale is Resolve without the fallback. ok is false when the input
// names no locale or input method and matches no language of the table.
func (t *Table) MatchLocale(tag string) (id string, ok bool) {
	id, _, ok = t.match(tag)
	return id, ok
}

func (t *Table) match(tag string) (id string, exact, ok bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "", false, false
	}
	if l, ok := t.Locale(tag); ok {
		return l.ID, true, true
	}
	if mapped, ok := InputMethodToOverlayID[tag]; ok {
		if l, ok := t.Locale(mapped); ok {
			return l.ID, true, true
		}
	}
	if t.matcher == nil {
		return "", false, false
	}
	want, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return "", false, false
	}
	_, idx, conf := t.matcher.Match(want)
	if conf == language.No {
		return "", false, false
	}
	return t.matcherIDs[idx], false, true
}
