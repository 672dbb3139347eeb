package overlay

var glyphsEnUS = LocaleData{
	LayoutName: LayoutUS,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1", Position: 101, P1: "31", P2: "21"},
		"03":    {Key: "@\n2", Position: 102, P1: "32", P2: "40"},
		"04":    {Key: "#\n3", Position: 103, P1: "33", P2: "23"},
		"05":    {Key: "$\n4", Position: 104, P1: "34", P2: "24"},
		"06":    {Key: "%\n5", Position: 105, P1: "35", P2: "25"},
		"07":    {Key: "^\n6", Position: 106, P1: "36", P2: "5E"},
		"08":    {Key: "&\n7", Position: 107, P1: "37", P2: "26"},
		"09":    {Key: "*\n8", Position: 108, P1: "38", P2: "2A"},
		"0A":    {Key: "(\n9", Position: 109, P1: "39", P2: "28"},
		"0B":    {Key: ")\n0", Position: 110, P1: "30", P2: "29"},
		"0C":    {Key: "_\n-", Position: 111, P1: "2D", P2: "5F"},
		"0D":    {Key: "+\n=", Position: 112, P1: "3D", P2: "2B"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q", Position: 201, P1: "71", P2: "51"},
		"11":    {Key: "w", Position: 202, P1: "77", P2: "57"},
		"12":    {Key: "e", Position: 203, P1: "65", P2: "45"},
		"13":    {Key: "r", Position: 204, P1: "72", P2: "52"},
		"14":    {Key: "t", Position: 205, P1: "74", P2: "54"},
		"15":    {Key: "y", Position: 206, P1: "79", P2: "59"},
		"16":    {Key: "u", Position: 207, P1: "75", P2: "55"},
		"17":    {Key: "i", Position: 208, P1: "69", P2: "49"},
		"18":    {Key: "o", Position: 209, P1: "6F", P2: "4F"},
		"19":    {Key: "p", Position: 210, P1: "70", P2: "50"},
		"1A":    {Key: "{\n[", Position: 211, P1: "5B", P2: "7B"},
		"1B":    {Key: "}\n]", Position: 212, P1: "5D", P2: "7D"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a", Position: 301, P1: "61", P2: "41"},
		"1F":    {Key: "s", Position: 302, P1: "73", P2: "53"},
		"20":    {Key: "d", Position: 303, P1: "64", P2: "44"},
		"21":    {Key: "f", Position: 304, P1: "66", P2: "46"},
		"22":    {Key: "g", Position: 305, P1: "67", P2: "47"},
		"23":    {Key: "h", Position: 306, P1: "68", P2: "48"},
		"24":    {Key: "j", Position: 307, P1: "6A", P2: "4A"},
		"25":    {Key: "k", Position: 308, P1: "6B", P2: "4B"},
		"26":    {Key: "l", Position: 309, P1: "6C", P2: "4C"},
		"27":    {Key: ":\n;", Position: 310, P1: "3B", P2: "3A"},
		"28":    {Key: "\"\n'", Position: 311, P1: "27", P2: "22"},
		"29":    {Key: "~\n`", Position: 100, P1: "60", P2: "7E"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "|\n\\", Position: 312, P1: "5C", P2: "7C"},
		"2C":    {Key: "z", Position: 401, P1: "7A", P2: "5A"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "m", Position: 407, P1: "6D", P2: "4D"},
		"33":    {Key: "<\n,", Position: 408, P1: "2C", P2: "3C"},
		"34":    {Key: ">\n.", Position: 409, P1: "2E", P2: "3E"},
		"35":    {Key: "?\n/", Position: 410, P1: "2F", P2: "3F"},
		"36":    {Key: "shift", Format: FormatRight, Position: 411},
		"38":    {Key: "alt", Format: FormatLeft, Position: 501},
		"39":    {Key: "", Label: "space", Position: 502},
		"3B":    {Key: "back", Label: "glyph_back", Position: 1},
		"3C":    {Key: "forward", Label: "glyph_forward", Position: 2},
		"3D":    {Key: "reload", Label: "glyph_reload", Position: 3},
		"3E":    {Key: "full screen", Label: "glyph_fullscreen", Position: 4},
		"3F":    {Key: "switch window", Label: "glyph_overview", Position: 5},
		"40":    {Key: "bright down", Label: "glyph_brightness_down", Position: 6},
		"41":    {Key: "bright up", Label: "glyph_brightness_up", Position: 7},
		"42":    {Key: "mute", Label: "glyph_volume_mute", Position: 8},
		"43":    {Key: "vol. down", Label: "glyph_volume_down", Position: 9},
		"44":    {Key: "vol. up", Label: "glyph_volume_up", Position: 10},
		"E0 1D": {Key: "ctrl", Format: FormatRight, Position: 504},
		"E0 38": {Key: "alt", Format: FormatRight, Position: 503},
		"E0 48": {Key: "up", Label: "glyph_arrow_up", Format: FormatSmaller, Position: 506},
		"E0 4B": {Key: "left", Label: "glyph_arrow_left", Format: FormatSmaller, Position: 505},
		"E0 4D": {Key: "right", Label: "glyph_arrow_right", Format: FormatSmaller, Position: 508},
		"E0 50": {Key: "down", Label: "glyph_arrow_down", Format: FormatSmaller, Position: 507},
		"E0 5B": {Key: "search", Label: "glyph_search", Format: FormatLeft, Position: 300},
		"E0 5E": {Key: "power", Label: "glyph_power", Format: FormatSmaller, Position: 11},
	},
}

var glyphsEnGB = LocaleData{
	LayoutName: LayoutEuropean,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1", Position: 101, P1: "31", P2: "21"},
		"03":    {Key: "\"\n2", Position: 102, P1: "32", P2: "22"},
		"04":    {Key: "\u00a3\n3", Position: 103, P1: "33", P2: "A3"},
		"05":    {Key: "$\n4 \u20ac", Position: 104, P1: "34", P2: "24", P9: "20AC"},
		"06":    {Key: "%\n5", Position: 105, P1: "35", P2: "25"},
		"07":    {Key: "^\n6", Position: 106, P1: "36", P2: "5E"},
		"08":    {Key: "&\n7", Position: 107, P1: "37", P2: "26"},
		"09":    {Key: "*\n8", Position: 108, P1: "38", P2: "2A"},
		"0A":    {Key: "(\n9", Position: 109, P1: "39", P2: "28"},
		"0B":    {Key: ")\n0", Position: 110, P1: "30", P2: "29"},
		"0C":    {Key: "_\n-", Position: 111, P1: "2D", P2: "5F"},
		"0D":    {Key: "+\n=", Position: 112, P1: "3D", P2: "2B"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q", Position: 201, P1: "71", P2: "51"},
		"11":    {Key: "w", Position: 202, P1: "77", P2: "57"},
		"12":    {Key: "e", Position: 203, P1: "65", P2: "45"},
		"13":    {Key: "r", Position: 204, P1: "72", P2: "52"},
		"14":    {Key: "t", Position: 205, P1: "74", P2: "54"},
		"15":    {Key: "y", Position: 206, P1: "79", P2: "59"},
		"16":    {Key: "u", Position: 207, P1: "75", P2: "55"},
		"17":    {Key: "i", Position: 208, P1: "69", P2: "49"},
		"18":    {Key: "o", Position: 209, P1: "6F", P2: "4F"},
		"19":    {Key: "p", Position: 210, P1: "70", P2: "50"},
		"1A":    {Key: "{\n[", Position: 211, P1: "5B", P2: "7B"},
		"1B":    {Key: "}\n]", Position: 212, P1: "5D", P2: "7D"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a", Position: 301, P1: "61", P2: "41"},
		"1F":    {Key: "s", Position: 302, P1: "73", P2: "53"},
		"20":    {Key: "d", Position: 303, P1: "64", P2: "44"},
		"21":    {Key: "f", Position: 304, P1: "66", P2: "46"},
		"22":    {Key: "g", Position: 305, P1: "67", P2: "47"},
		"23":    {Key: "h", Position: 306, P1: "68", P2: "48"},
		"24":    {Key: "j", Position: 307, P1: "6A", P2: "4A"},
		"25":    {Key: "k", Position: 308, P1: "6B", P2: "4B"},
		"26":    {Key: "l", Position: 309, P1: "6C", P2: "4C"},
		"27":    {Key: ":\n;", Position: 310, P1: "3B", P2: "3A"},
		"28":    {Key: "@\n'", Position: 311, P1: "27", P2: "40"},
		"29":    {Key: "\u00ac\n` \u00a6", Position: 100, P1: "60", P2: "AC", P9: "A6"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "~\n#", Position: 312, P1: "23", P2: "7E"},
		"2C":    {Key: "z", Position: 401, P1: "7A", P2: "5A"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "m", Position: 407, P1: "6D", P2: "4D"},
		"33":    {Key: "<\n,", Position: 408, P1: "2C", P2: "3C"},
		"34":    {Key: ">\n.", Position: 409, P1: "2E", P2: "3E"},
		"35":    {Key: "?\n/", Position: 410, P1: "2F", P2: "3F"},
		"36":    {Key: "shift", Format: FormatRight, Position: 411},
		"38":    {Key: "alt", Format: FormatLeft, Position: 501},
		"39":    {Key: "", Label: "space", Position: 502},
		"3B":    {Key: "back", Label: "glyph_back", Position: 1},
		"3C":    {Key: "forward", Label: "glyph_forward", Position: 2},
		"3D":    {Key: "reload", Label: "glyph_reload", Position: 3},
		"3E":    {Key: "full screen", Label: "glyph_fullscreen", Position: 4},
		"3F":    {Key: "switch window", Label: "glyph_overview", Position: 5},
		"40":    {Key: "bright down", Label: "glyph_brightness_down", Position: 6},
		"41":    {Key: "bright up", Label: "glyph_brightness_up", Position: 7},
		"42":    {Key: "mute", Label: "glyph_volume_mute", Position: 8},
		"43":    {Key: "vol. down", Label: "glyph_volume_down", Position: 9},
		"44":    {Key: "vol. up", Label: "glyph_volume_up", Position: 10},
		"56":    {Key: "|\n\\", Position: 450, P1: "5C", P2: "7C"},
		"E0 1D": {Key: "ctrl", Format: FormatRight, Position: 504},
		"E0 38": {Key: "alt", Format: FormatRight, Position: 503},
		"E0 48": {Key: "up", Label: "glyph_arrow_up", Format: FormatSmaller, Position: 506},
		"E0 4B": {Key: "left", Label: "glyph_arrow_left", Format: FormatSmaller, Position: 505},
		"E0 4D": {Key: "right", Label: "glyph_arrow_right", Format: FormatSmaller, Position: 508},
		"E0 50": {Key: "down", Label: "glyph_arrow_down", Format: FormatSmaller, Position: 507},
		"E0 5B": {Key: "search", Label: "glyph_search", Format: FormatLeft, Position: 300},
		"E0 5E": {Key: "power", Label: "glyph_power", Format: FormatSmaller, Position: 11},
	},
}

var glyphsEnUSIntl = LocaleData{
	LayoutName: LayoutUS,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1 \u00a1", Position: 101, P1: "31", P2: "21", P8: "B9", P9: "A1"},
		"03":    {Key: "@\n2 \u00b2", Position: 102, P1: "32", P2: "40", P9: "B2"},
		"04":    {Key: "#\n3 \u00b3", Position: 103, P1: "33", P2: "23", P9: "B3"},
		"05":    {Key: "$\n4 \u00a4", Position: 104, P1: "34", P2: "24", P8: "A3", P9: "A4"},
		"06":    {Key: "%\n5 \u20ac", Position: 105, P1: "35", P2: "25", P9: "20AC"},
		"07":    {Key: "^\n6 \u00bc", Position: 106, P1: "36", P2: "5E", P9: "BC"},
		"08":    {Key: "&\n7 \u00bd", Position: 107, P1: "37", P2: "26", P9: "BD"},
		"09":    {Key: "*\n8 \u00be", Position: 108, P1: "38", P2: "2A", P9: "BE"},
		"0A":    {Key: "(\n9", Position: 109, P1: "39", P2: "28"},
		"0B":    {Key: ")\n0", Position: 110, P1: "30", P2: "29"},
		"0C":    {Key: "_\n- \u00a5", Position: 111, P1: "2D", P2: "5F", P9: "A5"},
		"0D":    {Key: "+\n= \u00d7", Position: 112, P1: "3D", P2: "2B", P8: "F7", P9: "D7"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q \u00e4", Position: 201, P1: "71", P2: "51", P8: "C4", P9: "E4"},
		"11":    {Key: "w \u00e5", Position: 202, P1: "77", P2: "57", P8: "C5", P9: "E5"},
		"12":    {Key: "e \u00e9", Position: 203, P1: "65", P2: "45", P8: "C9", P9: "E9"},
		"13":    {Key: "r \u00ae", Position: 204, P1: "72", P2: "52", P9: "AE"},
		"14":    {Key: "t \u00fe", Position: 205, P1: "74", P2: "54", P8: "DE", P9: "FE"},
		"15":    {Key: "y \u00fc", Position: 206, P1: "79", P2: "59", P8: "DC", P9: "FC"},
		"16":    {Key: "u \u00fa", Position: 207, P1: "75", P2: "55", P8: "DA", P9: "FA"},
		"17":    {Key: "i \u00ed", Position: 208, P1: "69", P2: "49", P8: "CD", P9: "ED"},
		"18":    {Key: "o \u00f3", Position: 209, P1: "6F", P2: "4F", P8: "D3", P9: "F3"},
		"19":    {Key: "p \u00f6", Position: 210, P1: "70", P2: "50", P8: "D6", P9: "F6"},
		"1A":    {Key: "{\n[ \u00ab", Position: 211, P1: "5B", P2: "7B", P9: "AB"},
		"1B":    {Key: "}\n] \u00bb", Position: 212, P1: "5D", P2: "7D", P9: "BB"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a \u00e1", Position: 301, P1: "61", P2: "41", P8: "C1", P9: "E1"},
		"1F":    {Key: "s \u00df", Position: 302, P1: "73", P2: "53", P8: "A7", P9: "DF"},
		"20":    {Key: "d \u00f0", Position: 303, P1: "64", P2: "44", P8: "D0", P9: "F0"},
		"21":    {Key: "f", Position: 304, P1: "66", P2: "46"},
		"22":    {Key: "g", Position: 305, P1: "67", P2: "47"},
		"23":    {Key: "h", Position: 306, P1: "68", P2: "48"},
		"24":    {Key: "j", Position: 307, P1: "6A", P2: "4A"},
		"25":    {Key: "k", Position: 308, P1: "6B", P2: "4B"},
		"26":    {Key: "l \u00f8", Position: 309, P1: "6C", P2: "4C", P8: "D8", P9: "F8"},
		"27":    {Key: ":\n; \u00b6", Position: 310, P1: "3B", P2: "3A", P8: "B0", P9: "B6"},
		"28":    {Key: "\"\n' \u00b4", Position: 311, P1: "27", P2: "22", P8: "A8", P9: "B4"},
		"29":    {Key: "~\n`", Position: 100, P1: "60", P2: "7E"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "|\n\\ \u00ac", Position: 312, P1: "5C", P2: "7C", P8: "A6", P9: "AC"},
		"2C":    {Key: "z \u00e6", Position: 401, P1: "7A", P2: "5A", P8: "C6", P9: "E6"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c \u00a9", Position: 403, P1: "63", P2: "43", P8: "A2", P9: "A9"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n \u00f1", Position: 406, P1: "6E", P2: "4E", P8: "D1", P9: "F1"},
		"32":    {Key: "m \u00b5", Position: 407, P1: "6D", P2: "4D", P9: "B5"},
		"33":    {Key: "<\n, \u00e7", Position: 408, P1: "2C", P2: "3C", P8: "C7", P9: "E7"},
		"34":    {Key: ">\n.", Position: 409, P1: "2E", P2: "3E"},
		"35":    {Key: "?\n/ \u00bf", Position: 410, P1: "2F", P2: "3F", P9: "BF"},
		"36":    {Key: "shift", Format: FormatRight, Position: 411},
		"38":    {Key: "alt", Format: FormatLeft, Position: 501},
		"39":    {Key: "", Label: "space", Position: 502},
		"3B":    {Key: "back", Label: "glyph_back", Position: 1},
		"3C":    {Key: "forward", Label: "glyph_forward", Position: 2},
		"3D":    {Key: "reload", Label: "glyph_reload", Position: 3},
		"3E":    {Key: "full screen", Label: "glyph_fullscreen", Position: 4},
		"3F":    {Key: "switch window", Label: "glyph_overview", Position: 5},
		"40":    {Key: "bright down", Label: "glyph_brightness_down", Position: 6},
		"41":    {Key: "bright up", Label: "glyph_brightness_up", Position: 7},
		"42":    {Key: "mute", Label: "glyph_volume_mute", Position: 8},
		"43":    {Key: "vol. down", Label: "glyph_volume_down", Position: 9},
		"44":    {Key: "vol. up", Label: "glyph_volume_up", Position: 10},
		"E0 1D": {Key: "ctrl", Format: FormatRight, Position: 504},
		"E0 38": {Key: "alt", Format: FormatRight, Position: 503},
		"E0 48": {Key: "up", Label: "glyph_arrow_up", Format: FormatSmaller, Position: 506},
		"E0 4B": {Key: "left", Label: "glyph_arrow_left", Format: FormatSmaller, Position: 505},
		"E0 4D": {Key: "right", Label: "glyph_arrow_right", Format: FormatSmaller, Position: 508},
		"E0 50": {Key: "down", Label: "glyph_arrow_down", Format: FormatSmaller, Position: 507},
		"E0 5B": {Key: "search", Label: "glyph_search", Format: FormatLeft, Position: 300},
		"E0 5E": {Key: "power", Label: "glyph_power", Format: FormatSmaller, Position: 11},
	},
}

var glyphsEnUSDvorak = LocaleData{
	LayoutName: LayoutUS,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1", Position: 101, P1: "31", P2: "21"},
		"03":    {Key: "@\n2", Position: 102, P1: "32", P2: "40"},
		"04":    {Key: "#\n3", Position: 103, P1: "33", P2: "23"},
		"05":    {Key: "$\n4", Position: 104, P1: "34", P2: "24"},
		"06":    {Key: "%\n5", Position: 105, P1: "35", P2: "25"},
		"07":    {Key: "^\n6", Position: 106, P1: "36", P2: "5E"},
		"08":    {Key: "&\n7", Position: 107, P1: "37", P2: "26"},
		"09":    {Key: "*\n8", Position: 108, P1: "38", P2: "2A"},
		"0A":    {Key: "(\n9", Position: 109, P1: "39", P2: "28"},
		"0B":    {Key: ")\n0", Position: 110, P1: "30", P2: "29"},
		"0C":    {Key: "{\n[", Position: 111, P1: "5B", P2: "7B"},
		"0D":    {Key: "}\n]", Position: 112, P1: "5D", P2: "7D"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "\"\n'", Position: 201, P1: "27", P2: "22"},
		"11":    {Key: "<\n,", Position: 202, P1: "2C", P2: "3C"},
		"12":    {Key: ">\n.", Position: 203, P1: "2E", P2: "3E"},
		"13":    {Key: "p", Position: 204, P1: "70", P2: "50"},
		"14":    {Key: "y", Position: 205, P1: "79", P2: "59"},
		"15":    {Key: "f", Position: 206, P1: "66", P2: "46"},
		"16":    {Key: "g", Position: 207, P1: "67", P2: "47"},
		"17":    {Key: "c", Position: 208, P1: "63", P2: "43"},
		"18":    {Key: "r", Position: 209, P1: "72", P2: "52"},
		"19":    {Key: "l", Position: 210, P1: "6C", P2: "4C"},
		"1A":    {Key: "?\n/", Position: 211, P1: "2F", P2: "3F"},
		"1B":    {Key: "+\n=", Position: 212, P1: "3D", P2: "2B"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a", Position: 301, P1: "61", P2: "41"},
		"1F":    {Key: "o", Position: 302, P1: "6F", P2: "4F"},
		"20":    {Key: "e", Position: 303, P1: "65", P2: "45"},
		"21":    {Key: "u", Position: 304, P1: "75", P2: "55"},
		"22":    {Key: "i", Position: 305, P1: "69", P2: "49"},
		"23":    {Key: "d", Position: 306, P1: "64", P2: "44"},
		"24":    {Key: "h", Position: 307, P1: "68", P2: "48"},
		"25":    {Key: "t", Position: 308, P1: "74", P2: "54"},
		"26":    {Key: "n", Position: 309, P1: "6E", P2: "4E"},
		"27":    {Key: "s", Position: 310, P1: "73", P2: "53"},
		"28":    {Key: "_\n-", Position: 311, P1: "2D", P2: "5F"},
		"29":    {Key: "~\n`", Position: 100, P1: "60", P2: "7E"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "|\n\\", Position: 312, P1: "5C", P2: "7C"},
		"2C":    {Key: ":\n;", Position: 401, P1: "3B", P2: "3A"},
		"2D":    {Key: "q", Position: 402, P1: "71", P2: "51"},
		"2E":    {Key: "j", Position: 403, P1: "6A", P2: "4A"},
		"2F":    {Key: "k", Position: 404, P1: "6B", P2: "4B"},
		"30":    {Key: "x", Position: 405, P1: "78", P2: "58"},
		"31":    {Key: "b", Position: 406, P1: "62", P2: "42"},
		"32":    {Key: "m", Position: 407, P1: "6D", P2: "4D"},
		"33":    {Key: "w", Position: 408, P1: "77", P2: "57"},
		"34":    {Key: "v", Position: 409, P1: "76", P2: "56"},
		"35":    {Key: "z", Position: 410, P1: "7A", P2: "5A"},
		"36":    {Key: "shift", Format: FormatRight, Position: 411},
		"38":    {Key: "alt", Format: FormatLeft, Position: 501},
		"39":    {Key: "", Label: "space", Position: 502},
		"3B":    {Key: "back", Label: "glyph_back", Position: 1},
		"3C":    {Key: "forward", Label: "glyph_forward", Position: 2},
		"3D":    {Key: "reload", Label: "glyph_reload", Position: 3},
		"3E":    {Key: "full screen", Label: "glyph_fullscreen", Position: 4},
		"3F":    {Key: "switch window", Label: "glyph_overview", Position: 5},
		"40":    {Key: "bright down", Label: "glyph_brightness_down", Position: 6},
		"41":    {Key: "bright up", Label: "glyph_brightness_up", Position: 7},
		"42":    {Key: "mute", Label: "glyph_volume_mute", Position: 8},
		"43":    {Key: "vol. down", Label: "glyph_volume_down", Position: 9},
		"44":    {Key: "vol. up", Label: "glyph_volume_up", Position: 10},
		"E0 1D": {Key: "ctrl", Format: FormatRight, Position: 504},
		"E0 38": {Key: "alt", Format: FormatRight, Position: 503},
		"E0 48": {Key: "up", Label: "glyph_arrow_up", Format: FormatSmaller, Position: 506},
		"E0 4B": {Key: "left", Label: "glyph_arrow_left", Format: FormatSmaller, Position: 505},
		"E0 4D": {Key: "right", Label: "glyph_arrow_right", Format: FormatSmaller, Position: 508},
		"E0 50": {Key: "down", Label: "glyph_arrow_down", Format: FormatSmaller, Position: 507},
		"E0 5B": {Key: "search", Label: "glyph_search", Format: FormatLeft, Position: 300},
		"E0 5E": {Key: "power", Label: "glyph_power", Format: FormatSmaller, Position: 11},
	},
}

var glyphsEnUSColemak = LocaleData{
	LayoutName: LayoutUS,
	Keys: map[string]KeyEntry{
		"12": {Key: "f", Position: 203, P1: "66", P2: "46"},
		"13": {Key: "p", Position: 204, P1: "70", P2: "50"},
		"14": {Key: "g", Position: 205, P1: "67", P2: "47"},
		"15": {Key: "j", Position: 206, P1: "6A", P2: "4A"},
		"16": {Key: "l", Position: 207, P1: "6C", P2: "4C"},
		"17": {Key: "u", Position: 208, P1: "75", P2: "55"},
		"18": {Key: "y", Position: 209, P1: "79", P2: "59"},
		"19": {Key: ":\n;", Position: 210, P1: "3B", P2: "3A"},
		"1F": {Key: "r", Position: 302, P1: "72", P2: "52"},
		"20": {Key: "s", Position: 303, P1: "73", P2: "53"},
		"21": {Key: "t", Position: 304, P1: "74", P2: "54"},
		"22": {Key: "d", Position: 305, P1: "64", P2: "44"},
		"24": {Key: "n", Position: 307, P1: "6E", P2: "4E"},
		"25": {Key: "e", Position: 308, P1: "65", P2: "45"},
		"26": {Key: "i", Position: 309, P1: "69", P2: "49"},
		"27": {Key: "o", Position: 310, P1: "6F", P2: "4F"},
		"31": {Key: "k", Position: 406, P1: "6B", P2: "4B"},
	},
}
