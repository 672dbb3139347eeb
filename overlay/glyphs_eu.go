package overlay

var glyphsDe = LocaleData{
	LayoutName: LayoutEuropean,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1", Position: 101, P1: "31", P2: "21"},
		"03":    {Key: "\"\n2 \u00b2", Position: 102, P1: "32", P2: "22", P9: "B2"},
		"04":    {Key: "\u00a7\n3 \u00b3", Position: 103, P1: "33", P2: "A7", P9: "B3"},
		"05":    {Key: "$\n4", Position: 104, P1: "34", P2: "24"},
		"06":    {Key: "%\n5", Position: 105, P1: "35", P2: "25"},
		"07":    {Key: "&\n6", Position: 106, P1: "36", P2: "26"},
		"08":    {Key: "/\n7 {", Position: 107, P1: "37", P2: "2F", P9: "7B"},
		"09":    {Key: "(\n8 [", Position: 108, P1: "38", P2: "28", P9: "5B"},
		"0A":    {Key: ")\n9 ]", Position: 109, P1: "39", P2: "29", P9: "5D"},
		"0B":    {Key: "=\n0 }", Position: 110, P1: "30", P2: "3D", P9: "7D"},
		"0C":    {Key: "?\n\u00df \\", Position: 111, P1: "DF", P2: "3F", P9: "5C"},
		"0D":    {Key: "`\n\u00b4", Position: 112, P1: "B4", P2: "60"},
		"0E":    {Key: "r\u00fccktaste", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q @", Position: 201, P1: "71", P2: "51", P9: "40"},
		"11":    {Key: "w", Position: 202, P1: "77", P2: "57"},
		"12":    {Key: "e \u20ac", Position: 203, P1: "65", P2: "45", P9: "20AC"},
		"13":    {Key: "r", Position: 204, P1: "72", P2: "52"},
		"14":    {Key: "t", Position: 205, P1: "74", P2: "54"},
		"15":    {Key: "z", Position: 206, P1: "7A", P2: "5A"},
		"16":    {Key: "u", Position: 207, P1: "75", P2: "55"},
		"17":    {Key: "i", Position: 208, P1: "69", P2: "49"},
		"18":    {Key: "o", Position: 209, P1: "6F", P2: "4F"},
		"19":    {Key: "p", Position: 210, P1: "70", P2: "50"},
		"1A":    {Key: "\u00fc", Position: 211, P1: "FC", P2: "DC"},
		"1B":    {Key: "*\n+ ~", Position: 212, P1: "2B", P2: "2A", P9: "7E"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "strg", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a", Position: 301, P1: "61", P2: "41"},
		"1F":    {Key: "s", Position: 302, P1: "73", P2: "53"},
		"20":    {Key: "d", Position: 303, P1: "64", P2: "44"},
		"21":    {Key: "f", Position: 304, P1: "66", P2: "46"},
		"22":    {Key: "g", Position: 305, P1: "67", P2: "47"},
		"23":    {Key: "h", Position: 306, P1: "68", P2: "48"},
		"24":    {Key: "j", Position: 307, P1: "6A", P2: "4A"},
		"25":    {Key: "k", Position: 308, P1: "6B", P2: "4B"},
		"26":    {Key: "l", Position: 309, P1: "6C", P2: "4C"},
		"27":    {Key: "\u00f6", Position: 310, P1: "F6", P2: "D6"},
		"28":    {Key: "\u00e4", Position: 311, P1: "E4", P2: "C4"},
		"29":    {Key: "\u00b0\n^", Position: 100, P1: "5E", P2: "B0"},
		"2A":    {Key: "umschalt", Format: FormatLeft, Position: 400},
		"2B":    {Key: "'\n#", Position: 312, P1: "23", P2: "27"},
		"2C":    {Key: "y", Position: 401, P1: "79", P2: "59"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "m \u00b5", Position: 407, P1: "6D", P2: "4D", P9: "B5"},
		"33":    {Key: ";\n,", Position: 408, P1: "2C", P2: "3B"},
		"34":    {Key: ":\n.", Position: 409, P1: "2E", P2: "3A"},
		"35":    {Key: "_\n-", Position: 410, P1: "2D", P2: "5F"},
		"36":    {Key: "umschalt", Format: FormatRight, Position: 411},
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
		"56":    {Key: ">\n< |", Position: 450, P1: "3C", P2: "3E", P9: "7C"},
		"E0 1D": {Key: "strg", Format: FormatRight, Position: 504},
		"E0 38": {Key: "alt", Format: FormatRight, Position: 503},
		"E0 48": {Key: "up", Label: "glyph_arrow_up", Format: FormatSmaller, Position: 506},
		"E0 4B": {Key: "left", Label: "glyph_arrow_left", Format: FormatSmaller, Position: 505},
		"E0 4D": {Key: "right", Label: "glyph_arrow_right", Format: FormatSmaller, Position: 508},
		"E0 50": {Key: "down", Label: "glyph_arrow_down", Format: FormatSmaller, Position: 507},
		"E0 5B": {Key: "search", Label: "glyph_search", Format: FormatLeft, Position: 300},
		"E0 5E": {Key: "power", Label: "glyph_power", Format: FormatSmaller, Position: 11},
	},
}

var glyphsFr = LocaleData{
	LayoutName: LayoutEuropean,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "1\n&", Position: 101, P1: "26", P2: "31"},
		"03":    {Key: "2\n\u00e9 ~", Position: 102, P1: "E9", P2: "32", P9: "7E"},
		"04":    {Key: "3\n\" #", Position: 103, P1: "22", P2: "33", P9: "23"},
		"05":    {Key: "4\n' {", Position: 104, P1: "27", P2: "34", P9: "7B"},
		"06":    {Key: "5\n( [", Position: 105, P1: "28", P2: "35", P9: "5B"},
		"07":    {Key: "6\n- |", Position: 106, P1: "2D", P2: "36", P9: "7C"},
		"08":    {Key: "7\n\u00e8 `", Position: 107, P1: "E8", P2: "37", P9: "60"},
		"09":    {Key: "8\n_ \\", Position: 108, P1: "5F", P2: "38", P9: "5C"},
		"0A":    {Key: "9\n\u00e7 ^", Position: 109, P1: "E7", P2: "39", P9: "5E"},
		"0B":    {Key: "0\n\u00e0 @", Position: 110, P1: "E0", P2: "30", P9: "40"},
		"0C":    {Key: "\u00b0\n) ]", Position: 111, P1: "29", P2: "B0", P9: "5D"},
		"0D":    {Key: "+\n= }", Position: 112, P1: "3D", P2: "2B", P9: "7D"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "a", Position: 201, P1: "61", P2: "41"},
		"11":    {Key: "z", Position: 202, P1: "7A", P2: "5A"},
		"12":    {Key: "e \u20ac", Position: 203, P1: "65", P2: "45", P9: "20AC"},
		"13":    {Key: "r", Position: 204, P1: "72", P2: "52"},
		"14":    {Key: "t", Position: 205, P1: "74", P2: "54"},
		"15":    {Key: "y", Position: 206, P1: "79", P2: "59"},
		"16":    {Key: "u", Position: 207, P1: "75", P2: "55"},
		"17":    {Key: "i", Position: 208, P1: "69", P2: "49"},
		"18":    {Key: "o", Position: 209, P1: "6F", P2: "4F"},
		"19":    {Key: "p", Position: 210, P1: "70", P2: "50"},
		"1A":    {Key: "\u00a8\n^", Position: 211, P1: "5E", P2: "A8"},
		"1B":    {Key: "\u00a3\n$ \u00a4", Position: 212, P1: "24", P2: "A3", P9: "A4"},
		"1C":    {Key: "entr\u00e9e", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "q", Position: 301, P1: "71", P2: "51"},
		"1F":    {Key: "s", Position: 302, P1: "73", P2: "53"},
		"20":    {Key: "d", Position: 303, P1: "64", P2: "44"},
		"21":    {Key: "f", Position: 304, P1: "66", P2: "46"},
		"22":    {Key: "g", Position: 305, P1: "67", P2: "47"},
		"23":    {Key: "h", Position: 306, P1: "68", P2: "48"},
		"24":    {Key: "j", Position: 307, P1: "6A", P2: "4A"},
		"25":    {Key: "k", Position: 308, P1: "6B", P2: "4B"},
		"26":    {Key: "l", Position: 309, P1: "6C", P2: "4C"},
		"27":    {Key: "m", Position: 310, P1: "6D", P2: "4D"},
		"28":    {Key: "%\n\u00f9", Position: 311, P1: "F9", P2: "25"},
		"29":    {Key: "\u00b2", Position: 100, P1: "B2"},
		"2A":    {Key: "maj", Format: FormatLeft, Position: 400},
		"2B":    {Key: "\u00b5\n*", Position: 312, P1: "2A", P2: "B5"},
		"2C":    {Key: "w", Position: 401, P1: "77", P2: "57"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "?\n,", Position: 407, P1: "2C", P2: "3F"},
		"33":    {Key: ".\n;", Position: 408, P1: "3B", P2: "2E"},
		"34":    {Key: "/\n:", Position: 409, P1: "3A", P2: "2F"},
		"35":    {Key: "\u00a7\n!", Position: 410, P1: "21", P2: "A7"},
		"36":    {Key: "maj", Format: FormatRight, Position: 411},
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
		"56":    {Key: ">\n<", Position: 450, P1: "3C", P2: "3E"},
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

var glyphsFrCA = LocaleData{
	LayoutName: LayoutEuropean,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1 \u00b1", Position: 101, P1: "31", P2: "21", P9: "B1"},
		"03":    {Key: "\"\n2 @", Position: 102, P1: "32", P2: "22", P9: "40"},
		"04":    {Key: "/\n3 \u00a3", Position: 103, P1: "33", P2: "2F", P9: "A3"},
		"05":    {Key: "$\n4 \u00a2", Position: 104, P1: "34", P2: "24", P9: "A2"},
		"06":    {Key: "%\n5 \u00a4", Position: 105, P1: "35", P2: "25", P9: "A4"},
		"07":    {Key: "?\n6 \u00ac", Position: 106, P1: "36", P2: "3F", P9: "AC"},
		"08":    {Key: "&\n7 \u00a6", Position: 107, P1: "37", P2: "26", P9: "A6"},
		"09":    {Key: "*\n8 \u00b2", Position: 108, P1: "38", P2: "2A", P9: "B2"},
		"0A":    {Key: "(\n9 \u00b3", Position: 109, P1: "39", P2: "28", P9: "B3"},
		"0B":    {Key: ")\n0 \u00bc", Position: 110, P1: "30", P2: "29", P9: "BC"},
		"0C":    {Key: "_\n- \u00bd", Position: 111, P1: "2D", P2: "5F", P9: "BD"},
		"0D":    {Key: "+\n= \u00be", Position: 112, P1: "3D", P2: "2B", P9: "BE"},
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
		"18":    {Key: "o \u00a7", Position: 209, P1: "6F", P2: "4F", P9: "A7"},
		"19":    {Key: "p \u00b6", Position: 210, P1: "70", P2: "50", P9: "B6"},
		"1A":    {Key: "^ [", Position: 211, P1: "5E", P9: "5B"},
		"1B":    {Key: "\u00a8\n\u00b8 ]", Position: 212, P1: "B8", P2: "A8", P9: "5D"},
		"1C":    {Key: "entr\u00e9e", Format: FormatRight, Position: 312},
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
		"27":    {Key: ":\n; ~", Position: 310, P1: "3B", P2: "3A", P9: "7E"},
		"28":    {Key: "` {", Position: 311, P1: "60", P9: "7B"},
		"29":    {Key: "|\n# \\", Position: 100, P1: "23", P2: "7C", P9: "5C"},
		"2A":    {Key: "maj", Format: FormatLeft, Position: 400},
		"2B":    {Key: ">\n< }", Position: 312, P1: "3C", P2: "3E", P9: "7D"},
		"2C":    {Key: "z", Position: 401, P1: "7A", P2: "5A"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "m \u00b5", Position: 407, P1: "6D", P2: "4D", P9: "B5"},
		"33":    {Key: "'\n,", Position: 408, P1: "2C", P2: "27"},
		"34":    {Key: ".", Position: 409, P1: "2E"},
		"35":    {Key: "\u00e9", Position: 410, P1: "E9", P2: "C9"},
		"36":    {Key: "maj", Format: FormatRight, Position: 411},
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
		"56":    {Key: "\u00bb\n\u00ab \u00b0", Position: 450, P1: "AB", P2: "BB", P9: "B0"},
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

var glyphsEs = LocaleData{
	LayoutName: LayoutEuropean,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1 |", Position: 101, P1: "31", P2: "21", P9: "7C"},
		"03":    {Key: "\"\n2 @", Position: 102, P1: "32", P2: "22", P9: "40"},
		"04":    {Key: "3 #", Position: 103, P1: "33", P9: "23"},
		"05":    {Key: "$\n4 ~", Position: 104, P1: "34", P2: "24", P9: "7E"},
		"06":    {Key: "%\n5 \u20ac", Position: 105, P1: "35", P2: "25", P9: "20AC"},
		"07":    {Key: "&\n6 \u00ac", Position: 106, P1: "36", P2: "26", P9: "AC"},
		"08":    {Key: "/\n7", Position: 107, P1: "37", P2: "2F"},
		"09":    {Key: "(\n8", Position: 108, P1: "38", P2: "28"},
		"0A":    {Key: ")\n9", Position: 109, P1: "39", P2: "29"},
		"0B":    {Key: "=\n0", Position: 110, P1: "30", P2: "3D"},
		"0C":    {Key: "?\n'", Position: 111, P1: "27", P2: "3F"},
		"0D":    {Key: "\u00bf\n\u00a1", Position: 112, P1: "A1", P2: "BF"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q", Position: 201, P1: "71", P2: "51"},
		"11":    {Key: "w", Position: 202, P1: "77", P2: "57"},
		"12":    {Key: "e \u20ac", Position: 203, P1: "65", P2: "45", P9: "20AC"},
		"13":    {Key: "r", Position: 204, P1: "72", P2: "52"},
		"14":    {Key: "t", Position: 205, P1: "74", P2: "54"},
		"15":    {Key: "y", Position: 206, P1: "79", P2: "59"},
		"16":    {Key: "u", Position: 207, P1: "75", P2: "55"},
		"17":    {Key: "i", Position: 208, P1: "69", P2: "49"},
		"18":    {Key: "o", Position: 209, P1: "6F", P2: "4F"},
		"19":    {Key: "p", Position: 210, P1: "70", P2: "50"},
		"1A":    {Key: "^\n` [", Position: 211, P1: "60", P2: "5E", P9: "5B"},
		"1B":    {Key: "*\n+ ]", Position: 212, P1: "2B", P2: "2A", P9: "5D"},
		"1C":    {Key: "intro", Format: FormatRight, Position: 312},
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
		"27":    {Key: "\u00f1", Position: 310, P1: "F1", P2: "D1"},
		"28":    {Key: "\u00a8\n\u00b4 {", Position: 311, P1: "B4", P2: "A8", P9: "7B"},
		"29":    {Key: "\u00aa\n\u00ba \\", Position: 100, P1: "BA", P2: "AA", P9: "5C"},
		"2A":    {Key: "may\u00fas", Format: FormatLeft, Position: 400},
		"2B":    {Key: "\u00e7 }", Position: 312, P1: "E7", P2: "C7", P9: "7D"},
		"2C":    {Key: "z", Position: 401, P1: "7A", P2: "5A"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "m", Position: 407, P1: "6D", P2: "4D"},
		"33":    {Key: ";\n,", Position: 408, P1: "2C", P2: "3B"},
		"34":    {Key: ":\n.", Position: 409, P1: "2E", P2: "3A"},
		"35":    {Key: "_\n-", Position: 410, P1: "2D", P2: "5F"},
		"36":    {Key: "may\u00fas", Format: FormatRight, Position: 411},
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
		"56":    {Key: ">\n<", Position: 450, P1: "3C", P2: "3E"},
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

var glyphsIt = LocaleData{
	LayoutName: LayoutEuropean,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1", Position: 101, P1: "31", P2: "21"},
		"03":    {Key: "\"\n2", Position: 102, P1: "32", P2: "22"},
		"04":    {Key: "\u00a3\n3", Position: 103, P1: "33", P2: "A3"},
		"05":    {Key: "$\n4", Position: 104, P1: "34", P2: "24"},
		"06":    {Key: "%\n5 \u20ac", Position: 105, P1: "35", P2: "25", P9: "20AC"},
		"07":    {Key: "&\n6", Position: 106, P1: "36", P2: "26"},
		"08":    {Key: "/\n7", Position: 107, P1: "37", P2: "2F"},
		"09":    {Key: "(\n8", Position: 108, P1: "38", P2: "28"},
		"0A":    {Key: ")\n9", Position: 109, P1: "39", P2: "29"},
		"0B":    {Key: "=\n0", Position: 110, P1: "30", P2: "3D"},
		"0C":    {Key: "?\n'", Position: 111, P1: "27", P2: "3F"},
		"0D":    {Key: "^\n\u00ec", Position: 112, P1: "EC", P2: "5E"},
		"0E":    {Key: "canc", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q", Position: 201, P1: "71", P2: "51"},
		"11":    {Key: "w", Position: 202, P1: "77", P2: "57"},
		"12":    {Key: "e \u20ac", Position: 203, P1: "65", P2: "45", P9: "20AC"},
		"13":    {Key: "r", Position: 204, P1: "72", P2: "52"},
		"14":    {Key: "t", Position: 205, P1: "74", P2: "54"},
		"15":    {Key: "y", Position: 206, P1: "79", P2: "59"},
		"16":    {Key: "u", Position: 207, P1: "75", P2: "55"},
		"17":    {Key: "i", Position: 208, P1: "69", P2: "49"},
		"18":    {Key: "o", Position: 209, P1: "6F", P2: "4F"},
		"19":    {Key: "p", Position: 210, P1: "70", P2: "50"},
		"1A":    {Key: "\u00e9\n\u00e8 [", Position: 211, P1: "E8", P2: "E9", P8: "7B", P9: "5B"},
		"1B":    {Key: "*\n+ ]", Position: 212, P1: "2B", P2: "2A", P8: "7D", P9: "5D"},
		"1C":    {Key: "invio", Format: FormatRight, Position: 312},
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
		"27":    {Key: "\u00e7\n\u00f2 @", Position: 310, P1: "F2", P2: "E7", P9: "40"},
		"28":    {Key: "\u00b0\n\u00e0 #", Position: 311, P1: "E0", P2: "B0", P9: "23"},
		"29":    {Key: "|\n\\", Position: 100, P1: "5C", P2: "7C"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "\u00a7\n\u00f9", Position: 312, P1: "F9", P2: "A7"},
		"2C":    {Key: "z", Position: 401, P1: "7A", P2: "5A"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "m", Position: 407, P1: "6D", P2: "4D"},
		"33":    {Key: ";\n,", Position: 408, P1: "2C", P2: "3B"},
		"34":    {Key: ":\n.", Position: 409, P1: "2E", P2: "3A"},
		"35":    {Key: "_\n-", Position: 410, P1: "2D", P2: "5F"},
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
		"56":    {Key: ">\n<", Position: 450, P1: "3C", P2: "3E"},
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

var glyphsSv = LocaleData{
	LayoutName: LayoutEuropean,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1", Position: 101, P1: "31", P2: "21"},
		"03":    {Key: "\"\n2 @", Position: 102, P1: "32", P2: "22", P9: "40"},
		"04":    {Key: "#\n3 \u00a3", Position: 103, P1: "33", P2: "23", P9: "A3"},
		"05":    {Key: "\u00a4\n4 $", Position: 104, P1: "34", P2: "A4", P9: "24"},
		"06":    {Key: "%\n5", Position: 105, P1: "35", P2: "25"},
		"07":    {Key: "&\n6", Position: 106, P1: "36", P2: "26"},
		"08":    {Key: "/\n7 {", Position: 107, P1: "37", P2: "2F", P9: "7B"},
		"09":    {Key: "(\n8 [", Position: 108, P1: "38", P2: "28", P9: "5B"},
		"0A":    {Key: ")\n9 ]", Position: 109, P1: "39", P2: "29", P9: "5D"},
		"0B":    {Key: "=\n0 }", Position: 110, P1: "30", P2: "3D", P9: "7D"},
		"0C":    {Key: "?\n+ \\", Position: 111, P1: "2B", P2: "3F", P9: "5C"},
		"0D":    {Key: "`\n\u00b4", Position: 112, P1: "B4", P2: "60"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q", Position: 201, P1: "71", P2: "51"},
		"11":    {Key: "w", Position: 202, P1: "77", P2: "57"},
		"12":    {Key: "e \u20ac", Position: 203, P1: "65", P2: "45", P9: "20AC"},
		"13":    {Key: "r", Position: 204, P1: "72", P2: "52"},
		"14":    {Key: "t", Position: 205, P1: "74", P2: "54"},
		"15":    {Key: "y", Position: 206, P1: "79", P2: "59"},
		"16":    {Key: "u", Position: 207, P1: "75", P2: "55"},
		"17":    {Key: "i", Position: 208, P1: "69", P2: "49"},
		"18":    {Key: "o", Position: 209, P1: "6F", P2: "4F"},
		"19":    {Key: "p", Position: 210, P1: "70", P2: "50"},
		"1A":    {Key: "\u00e5", Position: 211, P1: "E5", P2: "C5"},
		"1B":    {Key: "^\n\u00a8 ~", Position: 212, P1: "A8", P2: "5E", P9: "7E"},
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
		"27":    {Key: "\u00f6", Position: 310, P1: "F6", P2: "D6"},
		"28":    {Key: "\u00e4", Position: 311, P1: "E4", P2: "C4"},
		"29":    {Key: "\u00bd\n\u00a7", Position: 100, P1: "A7", P2: "BD"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "*\n'", Position: 312, P1: "27", P2: "2A"},
		"2C":    {Key: "z", Position: 401, P1: "7A", P2: "5A"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "m \u00b5", Position: 407, P1: "6D", P2: "4D", P9: "B5"},
		"33":    {Key: ";\n,", Position: 408, P1: "2C", P2: "3B"},
		"34":    {Key: ":\n.", Position: 409, P1: "2E", P2: "3A"},
		"35":    {Key: "_\n-", Position: 410, P1: "2D", P2: "5F"},
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
		"56":    {Key: ">\n< |", Position: 450, P1: "3C", P2: "3E", P9: "7C"},
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

var glyphsPtPT = LocaleData{
	LayoutName: LayoutEuropean,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1", Position: 101, P1: "31", P2: "21"},
		"03":    {Key: "\"\n2 @", Position: 102, P1: "32", P2: "22", P9: "40"},
		"04":    {Key: "#\n3 \u00a3", Position: 103, P1: "33", P2: "23", P9: "A3"},
		"05":    {Key: "$\n4 \u00a7", Position: 104, P1: "34", P2: "24", P9: "A7"},
		"06":    {Key: "%\n5", Position: 105, P1: "35", P2: "25"},
		"07":    {Key: "&\n6", Position: 106, P1: "36", P2: "26"},
		"08":    {Key: "/\n7 {", Position: 107, P1: "37", P2: "2F", P9: "7B"},
		"09":    {Key: "(\n8 [", Position: 108, P1: "38", P2: "28", P9: "5B"},
		"0A":    {Key: ")\n9 ]", Position: 109, P1: "39", P2: "29", P9: "5D"},
		"0B":    {Key: "=\n0 }", Position: 110, P1: "30", P2: "3D", P9: "7D"},
		"0C":    {Key: "?\n'", Position: 111, P1: "27", P2: "3F"},
		"0D":    {Key: "\u00bb\n\u00ab", Position: 112, P1: "AB", P2: "BB"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q", Position: 201, P1: "71", P2: "51"},
		"11":    {Key: "w", Position: 202, P1: "77", P2: "57"},
		"12":    {Key: "e \u20ac", Position: 203, P1: "65", P2: "45", P9: "20AC"},
		"13":    {Key: "r", Position: 204, P1: "72", P2: "52"},
		"14":    {Key: "t", Position: 205, P1: "74", P2: "54"},
		"15":    {Key: "y", Position: 206, P1: "79", P2: "59"},
		"16":    {Key: "u", Position: 207, P1: "75", P2: "55"},
		"17":    {Key: "i", Position: 208, P1: "69", P2: "49"},
		"18":    {Key: "o", Position: 209, P1: "6F", P2: "4F"},
		"19":    {Key: "p", Position: 210, P1: "70", P2: "50"},
		"1A":    {Key: "*\n+ \u00a8", Position: 211, P1: "2B", P2: "2A", P9: "A8"},
		"1B":    {Key: "`\n\u00b4", Position: 212, P1: "B4", P2: "60"},
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
		"27":    {Key: "\u00e7", Position: 310, P1: "E7", P2: "C7"},
		"28":    {Key: "\u00aa\n\u00ba", Position: 311, P1: "BA", P2: "AA"},
		"29":    {Key: "|\n\\", Position: 100, P1: "5C", P2: "7C"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "^\n~", Notes: "#NUM!", Position: 312, P1: "7E", P2: "5E"},
		"2C":    {Key: "z", Position: 401, P1: "7A", P2: "5A"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "m", Position: 407, P1: "6D", P2: "4D"},
		"33":    {Key: ";\n,", Position: 408, P1: "2C", P2: "3B"},
		"34":    {Key: ":\n.", Position: 409, P1: "2E", P2: "3A"},
		"35":    {Key: "_\n-", Position: 410, P1: "2D", P2: "5F"},
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
		"56":    {Key: ">\n<", Position: 450, P1: "3C", P2: "3E"},
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

var glyphsPtBR = LocaleData{
	LayoutName: LayoutBrazilian,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1 \u00b9", Position: 101, P1: "31", P2: "21", P9: "B9"},
		"03":    {Key: "@\n2 \u00b2", Position: 102, P1: "32", P2: "40", P9: "B2"},
		"04":    {Key: "#\n3 \u00b3", Position: 103, P1: "33", P2: "23", P9: "B3"},
		"05":    {Key: "$\n4 \u00a3", Position: 104, P1: "34", P2: "24", P9: "A3"},
		"06":    {Key: "%\n5 \u00a2", Position: 105, P1: "35", P2: "25", P9: "A2"},
		"07":    {Key: "\u00a8\n6 \u00ac", Position: 106, P1: "36", P2: "A8", P9: "AC"},
		"08":    {Key: "&\n7", Position: 107, P1: "37", P2: "26"},
		"09":    {Key: "*\n8", Position: 108, P1: "38", P2: "2A"},
		"0A":    {Key: "(\n9", Position: 109, P1: "39", P2: "28"},
		"0B":    {Key: ")\n0", Position: 110, P1: "30", P2: "29"},
		"0C":    {Key: "_\n-", Position: 111, P1: "2D", P2: "5F"},
		"0D":    {Key: "+\n= \u00a7", Position: 112, P1: "3D", P2: "2B", P9: "A7"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q /", Position: 201, P1: "71", P2: "51", P9: "2F"},
		"11":    {Key: "w ?", Position: 202, P1: "77", P2: "57", P9: "3F"},
		"12":    {Key: "e \u20ac", Position: 203, P1: "65", P2: "45", P9: "20AC"},
		"13":    {Key: "r", Position: 204, P1: "72", P2: "52"},
		"14":    {Key: "t", Position: 205, P1: "74", P2: "54"},
		"15":    {Key: "y", Position: 206, P1: "79", P2: "59"},
		"16":    {Key: "u", Position: 207, P1: "75", P2: "55"},
		"17":    {Key: "i", Position: 208, P1: "69", P2: "49"},
		"18":    {Key: "o", Position: 209, P1: "6F", P2: "4F"},
		"19":    {Key: "p", Position: 210, P1: "70", P2: "50"},
		"1A":    {Key: "`\n\u00b4", Position: 211, P1: "B4", P2: "60"},
		"1B":    {Key: "{\n[ \u00aa", Notes: "#NUM!", Position: 212, P1: "5B", P2: "7B", P9: "AA"},
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
		"27":    {Key: "\u00e7", Position: 310, P1: "E7", P2: "C7"},
		"28":    {Key: "^\n~", Position: 311, P1: "7E", P2: "5E"},
		"29":    {Key: "\"\n'", Position: 100, P1: "27", P2: "22"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "}\n] \u00ba", Position: 312, P1: "5D", P2: "7D", P9: "BA"},
		"2C":    {Key: "z", Position: 401, P1: "7A", P2: "5A"},
		"2D":    {Key: "x", Position: 402, P1: "78", P2: "58"},
		"2E":    {Key: "c", Position: 403, P1: "63", P2: "43"},
		"2F":    {Key: "v", Position: 404, P1: "76", P2: "56"},
		"30":    {Key: "b", Position: 405, P1: "62", P2: "42"},
		"31":    {Key: "n", Position: 406, P1: "6E", P2: "4E"},
		"32":    {Key: "m", Position: 407, P1: "6D", P2: "4D"},
		"33":    {Key: "<\n,", Position: 408, P1: "2C", P2: "3C"},
		"34":    {Key: ">\n.", Position: 409, P1: "2E", P2: "3E"},
		"35":    {Key: ":\n;", Position: 410, P1: "3B", P2: "3A"},
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
		"73":    {Key: "?\n/ \u00b0", Position: 412, P1: "2F", P2: "3F", P9: "B0"},
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
