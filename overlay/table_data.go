package overlay

// builtinLocales is the keyboardGlyph section of the overlay table.
var builtinLocales = map[string]LocaleData{
	"de":            glyphsDe,
	"el":            glyphsEl,
	"en_GB":         glyphsEnGB,
	"en_US":         glyphsEnUS,
	"en_US_colemak": glyphsEnUSColemak,
	"en_US_dvorak":  glyphsEnUSDvorak,
	"en_US_intl":    glyphsEnUSIntl,
	"es":            glyphsEs,
	"fr":            glyphsFr,
	"fr_CA":         glyphsFrCA,
	"he":            glyphsHe,
	"hi":            glyphsHi,
	"it":            glyphsIt,
	"ja":            glyphsJa,
	"ko":            glyphsKo,
	"pt_BR":         glyphsPtBR,
	"pt_PT":         glyphsPtPT,
	"ru":            glyphsRu,
	"sv":            glyphsSv,
	"zh_CN":         glyphsZhCN,
	"zh_TW":         glyphsZhTW,
}

// builtinLayouts holds the key rectangles of each keyboard form factor, in
// pixels on the 1237x514 overlay image.
var builtinLayouts = map[LayoutName][]Rect{
	LayoutEuropean: {
		{"01", 16, 16, 114, 38},
		{"3B", 136, 16, 90, 38},
		{"3C", 232, 16, 90, 38},
		{"3D", 328, 16, 90, 38},
		{"3E", 424, 16, 90, 38},
		{"3F", 520, 16, 90, 38},
		{"40", 616, 16, 90, 38},
		{"41", 712, 16, 90, 38},
		{"42", 808, 16, 90, 38},
		{"43", 904, 16, 90, 38},
		{"44", 1000, 16, 90, 38},
		{"E0 5E", 1096, 16, 114, 38},
		{"29", 16, 68, 74, 68},
		{"02", 96, 68, 74, 68},
		{"03", 176, 68, 74, 68},
		{"04", 256, 68, 74, 68},
		{"05", 336, 68, 74, 68},
		{"06", 416, 68, 74, 68},
		{"07", 496, 68, 74, 68},
		{"08", 576, 68, 74, 68},
		{"09", 656, 68, 74, 68},
		{"0A", 736, 68, 74, 68},
		{"0B", 816, 68, 74, 68},
		{"0C", 896, 68, 74, 68},
		{"0D", 976, 68, 74, 68},
		{"0E", 1056, 68, 154, 68},
		{"0F", 16, 150, 114, 68},
		{"10", 136, 150, 74, 68},
		{"11", 216, 150, 74, 68},
		{"12", 296, 150, 74, 68},
		{"13", 376, 150, 74, 68},
		{"14", 456, 150, 74, 68},
		{"15", 536, 150, 74, 68},
		{"16", 616, 150, 74, 68},
		{"17", 696, 150, 74, 68},
		{"18", 776, 150, 74, 68},
		{"19", 856, 150, 74, 68},
		{"1A", 936, 150, 74, 68},
		{"1B", 1016, 150, 74, 68},
		{"1C", 1096, 150, 114, 150},
		{"E0 5B", 16, 232, 134, 68},
		{"1E", 156, 232, 74, 68},
		{"1F", 236, 232, 74, 68},
		{"20", 316, 232, 74, 68},
		{"21", 396, 232, 74, 68},
		{"22", 476, 232, 74, 68},
		{"23", 556, 232, 74, 68},
		{"24", 636, 232, 74, 68},
		{"25", 716, 232, 74, 68},
		{"26", 796, 232, 74, 68},
		{"27", 876, 232, 74, 68},
		{"28", 956, 232, 74, 68},
		{"2B", 1036, 232, 74, 68},
		{"2A", 16, 314, 94, 68},
		{"56", 116, 314, 74, 68},
		{"2C", 196, 314, 74, 68},
		{"2D", 276, 314, 74, 68},
		{"2E", 356, 314, 74, 68},
		{"2F", 436, 314, 74, 68},
		{"30", 516, 314, 74, 68},
		{"31", 596, 314, 74, 68},
		{"32", 676, 314, 74, 68},
		{"33", 756, 314, 74, 68},
		{"34", 836, 314, 74, 68},
		{"35", 916, 314, 74, 68},
		{"36", 996, 314, 214, 68},
		{"1D", 16, 396, 114, 68},
		{"38", 136, 396, 114, 68},
		{"39", 256, 396, 474, 68},
		{"E0 38", 736, 396, 114, 68},
		{"E0 1D", 856, 396, 114, 68},
		{"E0 4B", 976, 396, 74, 68},
		{"E0 48", 1056, 396, 74, 32},
		{"E0 50", 1056, 432, 74, 32},
		{"E0 4D", 1136, 396, 74, 68},
	},
	LayoutUS: {
		{"01", 16, 16, 114, 38},
		{"3B", 136, 16, 90, 38},
		{"3C", 232, 16, 90, 38},
		{"3D", 328, 16, 90, 38},
		{"3E", 424, 16, 90, 38},
		{"3F", 520, 16, 90, 38},
		{"40", 616, 16, 90, 38},
		{"41", 712, 16, 90, 38},
		{"42", 808, 16, 90, 38},
		{"43", 904, 16, 90, 38},
		{"44", 1000, 16, 90, 38},
		{"E0 5E", 1096, 16, 114, 38},
		{"29", 16, 68, 74, 68},
		{"02", 96, 68, 74, 68},
		{"03", 176, 68, 74, 68},
		{"04", 256, 68, 74, 68},
		{"05", 336, 68, 74, 68},
		{"06", 416, 68, 74, 68},
		{"07", 496, 68, 74, 68},
		{"08", 576, 68, 74, 68},
		{"09", 656, 68, 74, 68},
		{"0A", 736, 68, 74, 68},
		{"0B", 816, 68, 74, 68},
		{"0C", 896, 68, 74, 68},
		{"0D", 976, 68, 74, 68},
		{"0E", 1056, 68, 154, 68},
		{"0F", 16, 150, 114, 68},
		{"10", 136, 150, 74, 68},
		{"11", 216, 150, 74, 68},
		{"12", 296, 150, 74, 68},
		{"13", 376, 150, 74, 68},
		{"14", 456, 150, 74, 68},
		{"15", 536, 150, 74, 68},
		{"16", 616, 150, 74, 68},
		{"17", 696, 150, 74, 68},
		{"18", 776, 150, 74, 68},
		{"19", 856, 150, 74, 68},
		{"1A", 936, 150, 74, 68},
		{"1B", 1016, 150, 74, 68},
		{"2B", 1096, 150, 114, 68},
		{"E0 5B", 16, 232, 134, 68},
		{"1E", 156, 232, 74, 68},
		{"1F", 236, 232, 74, 68},
		{"20", 316, 232, 74, 68},
		{"21", 396, 232, 74, 68},
		{"22", 476, 232, 74, 68},
		{"23", 556, 232, 74, 68},
		{"24", 636, 232, 74, 68},
		{"25", 716, 232, 74, 68},
		{"26", 796, 232, 74, 68},
		{"27", 876, 232, 74, 68},
		{"28", 956, 232, 74, 68},
		{"1C", 1036, 232, 174, 68},
		{"2A", 16, 314, 174, 68},
		{"2C", 196, 314, 74, 68},
		{"2D", 276, 314, 74, 68},
		{"2E", 356, 314, 74, 68},
		{"2F", 436, 314, 74, 68},
		{"30", 516, 314, 74, 68},
		{"31", 596, 314, 74, 68},
		{"32", 676, 314, 74, 68},
		{"33", 756, 314, 74, 68},
		{"34", 836, 314, 74, 68},
		{"35", 916, 314, 74, 68},
		{"36", 996, 314, 214, 68},
		{"1D", 16, 396, 114, 68},
		{"38", 136, 396, 114, 68},
		{"39", 256, 396, 474, 68},
		{"E0 38", 736, 396, 114, 68},
		{"E0 1D", 856, 396, 114, 68},
		{"E0 4B", 976, 396, 74, 68},
		{"E0 48", 1056, 396, 74, 32},
		{"E0 50", 1056, 432, 74, 32},
		{"E0 4D", 1136, 396, 74, 68},
	},
	LayoutBrazilian: {
		{"01", 16, 16, 114, 38},
		{"3B", 136, 16, 90, 38},
		{"3C", 232, 16, 90, 38},
		{"3D", 328, 16, 90, 38},
		{"3E", 424, 16, 90, 38},
		{"3F", 520, 16, 90, 38},
		{"40", 616, 16, 90, 38},
		{"41", 712, 16, 90, 38},
		{"42", 808, 16, 90, 38},
		{"43", 904, 16, 90, 38},
		{"44", 1000, 16, 90, 38},
		{"E0 5E", 1096, 16, 114, 38},
		{"29", 16, 68, 74, 68},
		{"02", 96, 68, 74, 68},
		{"03", 176, 68, 74, 68},
		{"04", 256, 68, 74, 68},
		{"05", 336, 68, 74, 68},
		{"06", 416, 68, 74, 68},
		{"07", 496, 68, 74, 68},
		{"08", 576, 68, 74, 68},
		{"09", 656, 68, 74, 68},
		{"0A", 736, 68, 74, 68},
		{"0B", 816, 68, 74, 68},
		{"0C", 896, 68, 74, 68},
		{"0D", 976, 68, 74, 68},
		{"0E", 1056, 68, 154, 68},
		{"0F", 16, 150, 114, 68},
		{"10", 136, 150, 74, 68},
		{"11", 216, 150, 74, 68},
		{"12", 296, 150, 74, 68},
		{"13", 376, 150, 74, 68},
		{"14", 456, 150, 74, 68},
		{"15", 536, 150, 74, 68},
		{"16", 616, 150, 74, 68},
		{"17", 696, 150, 74, 68},
		{"18", 776, 150, 74, 68},
		{"19", 856, 150, 74, 68},
		{"1A", 936, 150, 74, 68},
		{"1B", 1016, 150, 74, 68},
		{"1C", 1096, 150, 114, 150},
		{"E0 5B", 16, 232, 134, 68},
		{"1E", 156, 232, 74, 68},
		{"1F", 236, 232, 74, 68},
		{"20", 316, 232, 74, 68},
		{"21", 396, 232, 74, 68},
		{"22", 476, 232, 74, 68},
		{"23", 556, 232, 74, 68},
		{"24", 636, 232, 74, 68},
		{"25", 716, 232, 74, 68},
		{"26", 796, 232, 74, 68},
		{"27", 876, 232, 74, 68},
		{"28", 956, 232, 74, 68},
		{"2B", 1036, 232, 74, 68},
		{"2A", 16, 314, 94, 68},
		{"56", 116, 314, 74, 68},
		{"2C", 196, 314, 74, 68},
		{"2D", 276, 314, 74, 68},
		{"2E", 356, 314, 74, 68},
		{"2F", 436, 314, 74, 68},
		{"30", 516, 314, 74, 68},
		{"31", 596, 314, 74, 68},
		{"32", 676, 314, 74, 68},
		{"33", 756, 314, 74, 68},
		{"34", 836, 314, 74, 68},
		{"35", 916, 314, 74, 68},
		{"73", 996, 314, 74, 68},
		{"36", 1076, 314, 134, 68},
		{"1D", 16, 396, 114, 68},
		{"38", 136, 396, 114, 68},
		{"39", 256, 396, 474, 68},
		{"E0 38", 736, 396, 114, 68},
		{"E0 1D", 856, 396, 114, 68},
		{"E0 4B", 976, 396, 74, 68},
		{"E0 48", 1056, 396, 74, 32},
		{"E0 50", 1056, 432, 74, 32},
		{"E0 4D", 1136, 396, 74, 68},
	},
	LayoutJapanese: {
		{"01", 16, 16, 114, 38},
		{"3B", 136, 16, 90, 38},
		{"3C", 232, 16, 90, 38},
		{"3D", 328, 16, 90, 38},
		{"3E", 424, 16, 90, 38},
		{"3F", 520, 16, 90, 38},
		{"40", 616, 16, 90, 38},
		{"41", 712, 16, 90, 38},
		{"42", 808, 16, 90, 38},
		{"43", 904, 16, 90, 38},
		{"44", 1000, 16, 90, 38},
		{"E0 5E", 1096, 16, 114, 38},
		{"29", 16, 68, 74, 68},
		{"02", 96, 68, 74, 68},
		{"03", 176, 68, 74, 68},
		{"04", 256, 68, 74, 68},
		{"05", 336, 68, 74, 68},
		{"06", 416, 68, 74, 68},
		{"07", 496, 68, 74, 68},
		{"08", 576, 68, 74, 68},
		{"09", 656, 68, 74, 68},
		{"0A", 736, 68, 74, 68},
		{"0B", 816, 68, 74, 68},
		{"0C", 896, 68, 74, 68},
		{"0D", 976, 68, 74, 68},
		{"7D", 1056, 68, 74, 68},
		{"0E", 1136, 68, 74, 68},
		{"0F", 16, 150, 114, 68},
		{"10", 136, 150, 74, 68},
		{"11", 216, 150, 74, 68},
		{"12", 296, 150, 74, 68},
		{"13", 376, 150, 74, 68},
		{"14", 456, 150, 74, 68},
		{"15", 536, 150, 74, 68},
		{"16", 616, 150, 74, 68},
		{"17", 696, 150, 74, 68},
		{"18", 776, 150, 74, 68},
		{"19", 856, 150, 74, 68},
		{"1A", 936, 150, 74, 68},
		{"1B", 1016, 150, 74, 68},
		{"1C", 1096, 150, 114, 150},
		{"E0 5B", 16, 232, 134, 68},
		{"1E", 156, 232, 74, 68},
		{"1F", 236, 232, 74, 68},
		{"20", 316, 232, 74, 68},
		{"21", 396, 232, 74, 68},
		{"22", 476, 232, 74, 68},
		{"23", 556, 232, 74, 68},
		{"24", 636, 232, 74, 68},
		{"25", 716, 232, 74, 68},
		{"26", 796, 232, 74, 68},
		{"27", 876, 232, 74, 68},
		{"28", 956, 232, 74, 68},
		{"2B", 1036, 232, 74, 68},
		{"2A", 16, 314, 174, 68},
		{"2C", 196, 314, 74, 68},
		{"2D", 276, 314, 74, 68},
		{"2E", 356, 314, 74, 68},
		{"2F", 436, 314, 74, 68},
		{"30", 516, 314, 74, 68},
		{"31", 596, 314, 74, 68},
		{"32", 676, 314, 74, 68},
		{"33", 756, 314, 74, 68},
		{"34", 836, 314, 74, 68},
		{"35", 916, 314, 74, 68},
		{"73", 996, 314, 74, 68},
		{"36", 1076, 314, 134, 68},
		{"1D", 16, 396, 114, 68},
		{"38", 136, 396, 94, 68},
		{"7B", 236, 396, 94, 68},
		{"39", 336, 396, 214, 68},
		{"79", 556, 396, 94, 68},
		{"70", 656, 396, 94, 68},
		{"E0 38", 756, 396, 94, 68},
		{"E0 1D", 856, 396, 114, 68},
		{"E0 4B", 976, 396, 74, 68},
		{"E0 48", 1056, 396, 74, 32},
		{"E0 50", 1056, 432, 74, 32},
		{"E0 4D", 1136, 396, 74, 68},
	},
}
