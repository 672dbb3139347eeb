package overlay

var glyphsRu = LocaleData{
	LayoutName: LayoutUS,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1", Position: 101, P1: "31", P2: "21"},
		"03":    {Key: "@\n2 \"", Position: 102, P1: "32", P2: "40", P4: "22"},
		"04":    {Key: "#\n3 \u2116", Position: 103, P1: "33", P2: "23", P4: "2116"},
		"05":    {Key: "$\n4 ;", Position: 104, P1: "34", P2: "24", P4: "3B"},
		"06":    {Key: "%\n5", Position: 105, P1: "35", P2: "25"},
		"07":    {Key: "^\n6 :", Position: 106, P1: "36", P2: "5E", P4: "3A"},
		"08":    {Key: "&\n7 ?", Position: 107, P1: "37", P2: "26", P4: "3F"},
		"09":    {Key: "*\n8", Position: 108, P1: "38", P2: "2A"},
		"0A":    {Key: "(\n9", Position: 109, P1: "39", P2: "28"},
		"0B":    {Key: ")\n0", Position: 110, P1: "30", P2: "29"},
		"0C":    {Key: "_\n-", Position: 111, P1: "2D", P2: "5F"},
		"0D":    {Key: "+\n=", Position: 112, P1: "3D", P2: "2B"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q \u0439", Position: 201, P1: "71", P2: "51", P3: "439", P4: "419"},
		"11":    {Key: "w \u0446", Position: 202, P1: "77", P2: "57", P3: "446", P4: "426"},
		"12":    {Key: "e \u0443", Position: 203, P1: "65", P2: "45", P3: "443", P4: "423"},
		"13":    {Key: "r \u043a", Position: 204, P1: "72", P2: "52", P3: "43A", P4: "41A"},
		"14":    {Key: "t \u0435", Position: 205, P1: "74", P2: "54", P3: "435", P4: "415"},
		"15":    {Key: "y \u043d", Position: 206, P1: "79", P2: "59", P3: "43D", P4: "41D"},
		"16":    {Key: "u \u0433", Position: 207, P1: "75", P2: "55", P3: "433", P4: "413"},
		"17":    {Key: "i \u0448", Position: 208, P1: "69", P2: "49", P3: "448", P4: "428"},
		"18":    {Key: "o \u0449", Position: 209, P1: "6F", P2: "4F", P3: "449", P4: "429"},
		"19":    {Key: "p \u0437", Position: 210, P1: "70", P2: "50", P3: "437", P4: "417"},
		"1A":    {Key: "{\n[ \u0445", Position: 211, P1: "5B", P2: "7B", P3: "445", P4: "425"},
		"1B":    {Key: "}\n] \u044a", Position: 212, P1: "5D", P2: "7D", P3: "44A", P4: "42A"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a \u0444", Position: 301, P1: "61", P2: "41", P3: "444", P4: "424"},
		"1F":    {Key: "s \u044b", Position: 302, P1: "73", P2: "53", P3: "44B", P4: "42B"},
		"20":    {Key: "d \u0432", Position: 303, P1: "64", P2: "44", P3: "432", P4: "412"},
		"21":    {Key: "f \u0430", Position: 304, P1: "66", P2: "46", P3: "430", P4: "410"},
		"22":    {Key: "g \u043f", Position: 305, P1: "67", P2: "47", P3: "43F", P4: "41F"},
		"23":    {Key: "h \u0440", Position: 306, P1: "68", P2: "48", P3: "440", P4: "420"},
		"24":    {Key: "j \u043e", Position: 307, P1: "6A", P2: "4A", P3: "43E", P4: "41E"},
		"25":    {Key: "k \u043b", Position: 308, P1: "6B", P2: "4B", P3: "43B", P4: "41B"},
		"26":    {Key: "l \u0434", Position: 309, P1: "6C", P2: "4C", P3: "434", P4: "414"},
		"27":    {Key: ":\n; \u0436", Position: 310, P1: "3B", P2: "3A", P3: "436", P4: "416"},
		"28":    {Key: "\"\n' \u044d", Position: 311, P1: "27", P2: "22", P3: "44D", P4: "42D"},
		"29":    {Key: "~\n` \u0451", Position: 100, P1: "60", P2: "7E", P3: "451", P4: "401"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "|\n\\ \\", Position: 312, P1: "5C", P2: "7C", P3: "5C", P4: "2F"},
		"2C":    {Key: "z \u044f", Position: 401, P1: "7A", P2: "5A", P3: "44F", P4: "42F"},
		"2D":    {Key: "x \u0447", Position: 402, P1: "78", P2: "58", P3: "447", P4: "427"},
		"2E":    {Key: "c \u0441", Position: 403, P1: "63", P2: "43", P3: "441", P4: "421"},
		"2F":    {Key: "v \u043c", Position: 404, P1: "76", P2: "56", P3: "43C", P4: "41C"},
		"30":    {Key: "b \u0438", Position: 405, P1: "62", P2: "42", P3: "438", P4: "418"},
		"31":    {Key: "n \u0442", Position: 406, P1: "6E", P2: "4E", P3: "442", P4: "422"},
		"32":    {Key: "m \u044c", Position: 407, P1: "6D", P2: "4D", P3: "44C", P4: "42C"},
		"33":    {Key: "<\n, \u0431", Position: 408, P1: "2C", P2: "3C", P3: "431", P4: "411"},
		"34":    {Key: ">\n. \u044e", Position: 409, P1: "2E", P2: "3E", P3: "44E", P4: "42E"},
		"35":    {Key: "?\n/ .", Position: 410, P1: "2F", P2: "3F", P3: "2E", P4: "2C"},
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

var glyphsEl = LocaleData{
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
		"10":    {Key: "q ;", Position: 201, P1: "71", P2: "51", P3: "3B", P4: "3A"},
		"11":    {Key: "w \u03c2", Position: 202, P1: "77", P2: "57", P3: "3C2"},
		"12":    {Key: "e \u03b5", Position: 203, P1: "65", P2: "45", P3: "3B5", P4: "395"},
		"13":    {Key: "r \u03c1", Position: 204, P1: "72", P2: "52", P3: "3C1", P4: "3A1"},
		"14":    {Key: "t \u03c4", Position: 205, P1: "74", P2: "54", P3: "3C4", P4: "3A4"},
		"15":    {Key: "y \u03c5", Position: 206, P1: "79", P2: "59", P3: "3C5", P4: "3A5"},
		"16":    {Key: "u \u03b8", Position: 207, P1: "75", P2: "55", P3: "3B8", P4: "398"},
		"17":    {Key: "i \u03b9", Position: 208, P1: "69", P2: "49", P3: "3B9", P4: "399"},
		"18":    {Key: "o \u03bf", Position: 209, P1: "6F", P2: "4F", P3: "3BF", P4: "39F"},
		"19":    {Key: "p \u03c0", Position: 210, P1: "70", P2: "50", P3: "3C0", P4: "3A0"},
		"1A":    {Key: "{\n[", Position: 211, P1: "5B", P2: "7B"},
		"1B":    {Key: "}\n]", Position: 212, P1: "5D", P2: "7D"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a \u03b1", Position: 301, P1: "61", P2: "41", P3: "3B1", P4: "391"},
		"1F":    {Key: "s \u03c3", Position: 302, P1: "73", P2: "53", P3: "3C3", P4: "3A3"},
		"20":    {Key: "d \u03b4", Position: 303, P1: "64", P2: "44", P3: "3B4", P4: "394"},
		"21":    {Key: "f \u03c6", Position: 304, P1: "66", P2: "46", P3: "3C6", P4: "3A6"},
		"22":    {Key: "g \u03b3", Position: 305, P1: "67", P2: "47", P3: "3B3", P4: "393"},
		"23":    {Key: "h \u03b7", Position: 306, P1: "68", P2: "48", P3: "3B7", P4: "397"},
		"24":    {Key: "j \u03be", Position: 307, P1: "6A", P2: "4A", P3: "3BE", P4: "39E"},
		"25":    {Key: "k \u03ba", Position: 308, P1: "6B", P2: "4B", P3: "3BA", P4: "39A"},
		"26":    {Key: "l \u03bb", Position: 309, P1: "6C", P2: "4C", P3: "3BB", P4: "39B"},
		"27":    {Key: ":\n; \u0384", Position: 310, P1: "3B", P2: "3A", P3: "384", P4: "A8"},
		"28":    {Key: "\"\n'", Position: 311, P1: "27", P2: "22"},
		"29":    {Key: "~\n`", Position: 100, P1: "60", P2: "7E"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "|\n\\", Position: 312, P1: "5C", P2: "7C"},
		"2C":    {Key: "z \u03b6", Position: 401, P1: "7A", P2: "5A", P3: "3B6", P4: "396"},
		"2D":    {Key: "x \u03c7", Position: 402, P1: "78", P2: "58", P3: "3C7", P4: "3A7"},
		"2E":    {Key: "c \u03c8", Position: 403, P1: "63", P2: "43", P3: "3C8", P4: "3A8"},
		"2F":    {Key: "v \u03c9", Position: 404, P1: "76", P2: "56", P3: "3C9", P4: "3A9"},
		"30":    {Key: "b \u03b2", Position: 405, P1: "62", P2: "42", P3: "3B2", P4: "392"},
		"31":    {Key: "n \u03bd", Position: 406, P1: "6E", P2: "4E", P3: "3BD", P4: "39D"},
		"32":    {Key: "m \u03bc", Position: 407, P1: "6D", P2: "4D", P3: "3BC", P4: "39C"},
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

var glyphsHe = LocaleData{
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
		"10":    {Key: "q /", Position: 201, P1: "71", P2: "51", P3: "2F"},
		"11":    {Key: "w '", Position: 202, P1: "77", P2: "57", P3: "27"},
		"12":    {Key: "e \u05e7", Position: 203, P1: "65", P2: "45", P3: "5E7"},
		"13":    {Key: "r \u05e8", Position: 204, P1: "72", P2: "52", P3: "5E8"},
		"14":    {Key: "t \u05d0", Position: 205, P1: "74", P2: "54", P3: "5D0"},
		"15":    {Key: "y \u05d8", Position: 206, P1: "79", P2: "59", P3: "5D8"},
		"16":    {Key: "u \u05d5", Position: 207, P1: "75", P2: "55", P3: "5D5"},
		"17":    {Key: "i \u05df", Position: 208, P1: "69", P2: "49", P3: "5DF"},
		"18":    {Key: "o \u05dd", Position: 209, P1: "6F", P2: "4F", P3: "5DD"},
		"19":    {Key: "p \u05e4", Position: 210, P1: "70", P2: "50", P3: "5E4"},
		"1A":    {Key: "{\n[", Position: 211, P1: "5B", P2: "7B"},
		"1B":    {Key: "}\n]", Position: 212, P1: "5D", P2: "7D"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a \u05e9", Position: 301, P1: "61", P2: "41", P3: "5E9"},
		"1F":    {Key: "s \u05d3", Position: 302, P1: "73", P2: "53", P3: "5D3"},
		"20":    {Key: "d \u05d2", Position: 303, P1: "64", P2: "44", P3: "5D2"},
		"21":    {Key: "f \u05db", Position: 304, P1: "66", P2: "46", P3: "5DB"},
		"22":    {Key: "g \u05e2", Position: 305, P1: "67", P2: "47", P3: "5E2"},
		"23":    {Key: "h \u05d9", Position: 306, P1: "68", P2: "48", P3: "5D9"},
		"24":    {Key: "j \u05d7", Position: 307, P1: "6A", P2: "4A", P3: "5D7"},
		"25":    {Key: "k \u05dc", Position: 308, P1: "6B", P2: "4B", P3: "5DC"},
		"26":    {Key: "l \u05da", Position: 309, P1: "6C", P2: "4C", P3: "5DA"},
		"27":    {Key: ":\n; \u05e3", Position: 310, P1: "3B", P2: "3A", P3: "5E3"},
		"28":    {Key: "\"\n' ,", Position: 311, P1: "27", P2: "22", P3: "2C"},
		"29":    {Key: "~\n`", Position: 100, P1: "60", P2: "7E"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "|\n\\", Position: 312, P1: "5C", P2: "7C"},
		"2C":    {Key: "z \u05d6", Position: 401, P1: "7A", P2: "5A", P3: "5D6"},
		"2D":    {Key: "x \u05e1", Position: 402, P1: "78", P2: "58", P3: "5E1"},
		"2E":    {Key: "c \u05d1", Position: 403, P1: "63", P2: "43", P3: "5D1"},
		"2F":    {Key: "v \u05d4", Position: 404, P1: "76", P2: "56", P3: "5D4"},
		"30":    {Key: "b \u05e0", Position: 405, P1: "62", P2: "42", P3: "5E0"},
		"31":    {Key: "n \u05de", Position: 406, P1: "6E", P2: "4E", P3: "5DE"},
		"32":    {Key: "m \u05e6", Position: 407, P1: "6D", P2: "4D", P3: "5E6"},
		"33":    {Key: "<\n, \u05ea", Position: 408, P1: "2C", P2: "3C", P3: "5EA"},
		"34":    {Key: ">\n. \u05e5", Position: 409, P1: "2E", P2: "3E", P3: "5E5"},
		"35":    {Key: "?\n/ .", Position: 410, P1: "2F", P2: "3F", P3: "2E"},
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

var glyphsHi = LocaleData{
	LayoutName: LayoutUS,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1 \u0967", Position: 101, P1: "31", P2: "21", P3: "967", P4: "90D"},
		"03":    {Key: "@\n2 \u0968", Position: 102, P1: "32", P2: "40", P3: "968", P4: "945"},
		"04":    {Key: "#\n3 \u0969\n\u094d\u0930", Notes: "#VALUE!", Position: 103, P1: "33", P2: "23", P3: "969"},
		"05":    {Key: "$\n4 \u096a\n\u0930\u094d", Notes: "#VALUE!", Position: 104, P1: "34", P2: "24", P3: "96A"},
		"06":    {Key: "%\n5 \u096b\n\u091c\u094d\u091e", Notes: "#VALUE!", Position: 105, P1: "35", P2: "25", P3: "96B"},
		"07":    {Key: "^\n6 \u096c\n\u0924\u094d\u0930", Notes: "#VALUE!", Position: 106, P1: "36", P2: "5E", P3: "96C"},
		"08":    {Key: "&\n7 \u096d\n\u0915\u094d\u0937", Notes: "#VALUE!", Position: 107, P1: "37", P2: "26", P3: "96D"},
		"09":    {Key: "*\n8 \u096e\n\u0936\u094d\u0930", Notes: "#VALUE!", Position: 108, P1: "38", P2: "2A", P3: "96E"},
		"0A":    {Key: "(\n9 \u096f", Position: 109, P1: "39", P2: "28", P3: "96F", P4: "28"},
		"0B":    {Key: ")\n0 \u0966", Position: 110, P1: "30", P2: "29", P3: "966", P4: "29"},
		"0C":    {Key: "_\n- -", Position: 111, P1: "2D", P2: "5F", P3: "2D", P4: "903"},
		"0D":    {Key: "+\n= \u0943", Position: 112, P1: "3D", P2: "2B", P3: "943", P4: "90B"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q \u094c", Position: 201, P1: "71", P2: "51", P3: "94C", P4: "914"},
		"11":    {Key: "w \u0948", Position: 202, P1: "77", P2: "57", P3: "948", P4: "910"},
		"12":    {Key: "e \u093e", Position: 203, P1: "65", P2: "45", P3: "93E", P4: "906"},
		"13":    {Key: "r \u0940", Position: 204, P1: "72", P2: "52", P3: "940", P4: "908"},
		"14":    {Key: "t \u0942", Position: 205, P1: "74", P2: "54", P3: "942", P4: "90A"},
		"15":    {Key: "y \u092c", Position: 206, P1: "79", P2: "59", P3: "92C", P4: "92D"},
		"16":    {Key: "u \u0939", Position: 207, P1: "75", P2: "55", P3: "939", P4: "919"},
		"17":    {Key: "i \u0917", Position: 208, P1: "69", P2: "49", P3: "917", P4: "918"},
		"18":    {Key: "o \u0926", Position: 209, P1: "6F", P2: "4F", P3: "926", P4: "927"},
		"19":    {Key: "p \u091c", Position: 210, P1: "70", P2: "50", P3: "91C", P4: "91D"},
		"1A":    {Key: "{\n[ \u0921", Position: 211, P1: "5B", P2: "7B", P3: "921", P4: "922"},
		"1B":    {Key: "}\n] \u093c", Position: 212, P1: "5D", P2: "7D", P3: "93C", P4: "91E"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a \u094b", Position: 301, P1: "61", P2: "41", P3: "94B", P4: "913"},
		"1F":    {Key: "s \u0947", Position: 302, P1: "73", P2: "53", P3: "947", P4: "90F"},
		"20":    {Key: "d \u094d", Position: 303, P1: "64", P2: "44", P3: "94D", P4: "905"},
		"21":    {Key: "f \u093f", Position: 304, P1: "66", P2: "46", P3: "93F", P4: "907"},
		"22":    {Key: "g \u0941", Position: 305, P1: "67", P2: "47", P3: "941", P4: "909"},
		"23":    {Key: "h \u092a", Position: 306, P1: "68", P2: "48", P3: "92A", P4: "92B"},
		"24":    {Key: "j \u0930", Position: 307, P1: "6A", P2: "4A", P3: "930", P4: "931"},
		"25":    {Key: "k \u0915", Position: 308, P1: "6B", P2: "4B", P3: "915", P4: "916"},
		"26":    {Key: "l \u0924", Position: 309, P1: "6C", P2: "4C", P3: "924", P4: "925"},
		"27":    {Key: ":\n; \u091a", Position: 310, P1: "3B", P2: "3A", P3: "91A", P4: "91B"},
		"28":    {Key: "\"\n' \u091f", Position: 311, P1: "27", P2: "22", P3: "91F", P4: "920"},
		"29":    {Key: "~\n`", Position: 100, P1: "60", P2: "7E"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "|\n\\ \u0949", Position: 312, P1: "5C", P2: "7C", P3: "949", P4: "911"},
		"2C":    {Key: "z \u0946", Position: 401, P1: "7A", P2: "5A", P3: "946", P4: "90E"},
		"2D":    {Key: "x \u0902", Position: 402, P1: "78", P2: "58", P3: "902", P4: "901"},
		"2E":    {Key: "c \u092e", Position: 403, P1: "63", P2: "43", P3: "92E", P4: "923"},
		"2F":    {Key: "v \u0928", Position: 404, P1: "76", P2: "56", P3: "928"},
		"30":    {Key: "b \u0935", Position: 405, P1: "62", P2: "42", P3: "935"},
		"31":    {Key: "n \u0932", Position: 406, P1: "6E", P2: "4E", P3: "932", P4: "933"},
		"32":    {Key: "m \u0938", Position: 407, P1: "6D", P2: "4D", P3: "938", P4: "936"},
		"33":    {Key: "<\n, ,", Position: 408, P1: "2C", P2: "3C", P3: "2C", P4: "937"},
		"34":    {Key: ">\n. .", Position: 409, P1: "2E", P2: "3E", P3: "2E", P4: "964"},
		"35":    {Key: "?\n/ \u092f", Position: 410, P1: "2F", P2: "3F", P3: "92F", P4: "95F"},
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
