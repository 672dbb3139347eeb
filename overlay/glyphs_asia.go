package overlay

var glyphsJa = LocaleData{
	LayoutName: LayoutJapanese,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1 \u306c", Position: 101, P1: "31", P2: "21", P3: "306C"},
		"03":    {Key: "\"\n2 \u3075", Position: 102, P1: "32", P2: "22", P3: "3075"},
		"04":    {Key: "#\n3 \u3042", Position: 103, P1: "33", P2: "23", P3: "3042", P4: "3041"},
		"05":    {Key: "$\n4 \u3046", Position: 104, P1: "34", P2: "24", P3: "3046", P4: "3045"},
		"06":    {Key: "%\n5 \u3048", Position: 105, P1: "35", P2: "25", P3: "3048", P4: "3047"},
		"07":    {Key: "&\n6 \u304a", Position: 106, P1: "36", P2: "26", P3: "304A", P4: "3049"},
		"08":    {Key: "'\n7 \u3084", Position: 107, P1: "37", P2: "27", P3: "3084", P4: "3083"},
		"09":    {Key: "(\n8 \u3086", Position: 108, P1: "38", P2: "28", P3: "3086", P4: "3085"},
		"0A":    {Key: ")\n9 \u3088", Position: 109, P1: "39", P2: "29", P3: "3088", P4: "3087"},
		"0B":    {Key: "0 \u308f", Position: 110, P1: "30", P3: "308F", P4: "3092"},
		"0C":    {Key: "=\n- \u307b", Position: 111, P1: "2D", P2: "3D", P3: "307B"},
		"0D":    {Key: "~\n^ \u3078", Position: 112, P1: "5E", P2: "7E", P3: "3078"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q \u305f", Position: 201, P1: "71", P2: "51", P3: "305F"},
		"11":    {Key: "w \u3066", Position: 202, P1: "77", P2: "57", P3: "3066"},
		"12":    {Key: "e \u3044", Position: 203, P1: "65", P2: "45", P3: "3044", P4: "3043"},
		"13":    {Key: "r \u3059", Position: 204, P1: "72", P2: "52", P3: "3059"},
		"14":    {Key: "t \u304b", Position: 205, P1: "74", P2: "54", P3: "304B"},
		"15":    {Key: "y \u3093", Position: 206, P1: "79", P2: "59", P3: "3093"},
		"16":    {Key: "u \u306a", Position: 207, P1: "75", P2: "55", P3: "306A"},
		"17":    {Key: "i \u306b", Position: 208, P1: "69", P2: "49", P3: "306B"},
		"18":    {Key: "o \u3089", Position: 209, P1: "6F", P2: "4F", P3: "3089"},
		"19":    {Key: "p \u305b", Position: 210, P1: "70", P2: "50", P3: "305B"},
		"1A":    {Key: "`\n@ \u309b", Position: 211, P1: "40", P2: "60", P3: "309B"},
		"1B":    {Key: "{\n[ \u309c", Position: 212, P1: "5B", P2: "7B", P3: "309C", P4: "300C"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a \u3061", Position: 301, P1: "61", P2: "41", P3: "3061"},
		"1F":    {Key: "s \u3068", Position: 302, P1: "73", P2: "53", P3: "3068"},
		"20":    {Key: "d \u3057", Position: 303, P1: "64", P2: "44", P3: "3057"},
		"21":    {Key: "f \u306f", Position: 304, P1: "66", P2: "46", P3: "306F"},
		"22":    {Key: "g \u304d", Position: 305, P1: "67", P2: "47", P3: "304D"},
		"23":    {Key: "h \u304f", Position: 306, P1: "68", P2: "48", P3: "304F"},
		"24":    {Key: "j \u307e", Position: 307, P1: "6A", P2: "4A", P3: "307E"},
		"25":    {Key: "k \u306e", Position: 308, P1: "6B", P2: "4B", P3: "306E"},
		"26":    {Key: "l \u308a", Position: 309, P1: "6C", P2: "4C", P3: "308A"},
		"27":    {Key: "+\n; \u308c", Position: 310, P1: "3B", P2: "2B", P3: "308C"},
		"28":    {Key: "*\n: \u3051", Position: 311, P1: "3A", P2: "2A", P3: "3051"},
		"29":    {Key: "\u534a\u89d2/\u5168\u89d2", Format: FormatSmaller, Position: 100},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "}\n] \u3080", Position: 312, P1: "5D", P2: "7D", P3: "3080", P4: "300D"},
		"2C":    {Key: "z \u3064", Position: 401, P1: "7A", P2: "5A", P3: "3064", P4: "3063"},
		"2D":    {Key: "x \u3055", Position: 402, P1: "78", P2: "58", P3: "3055"},
		"2E":    {Key: "c \u305d", Position: 403, P1: "63", P2: "43", P3: "305D"},
		"2F":    {Key: "v \u3072", Position: 404, P1: "76", P2: "56", P3: "3072"},
		"30":    {Key: "b \u3053", Position: 405, P1: "62", P2: "42", P3: "3053"},
		"31":    {Key: "n \u307f", Position: 406, P1: "6E", P2: "4E", P3: "307F"},
		"32":    {Key: "m \u3082", Position: 407, P1: "6D", P2: "4D", P3: "3082"},
		"33":    {Key: "<\n, \u306d", Position: 408, P1: "2C", P2: "3C", P3: "306D", P4: "3001"},
		"34":    {Key: ">\n. \u308b", Position: 409, P1: "2E", P2: "3E", P3: "308B", P4: "3002"},
		"35":    {Key: "?\n/ \u3081", Position: 410, P1: "2F", P2: "3F", P3: "3081", P4: "30FB"},
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
		"70":    {Key: "\u304b\u306a", Format: FormatSmaller, Position: 507},
		"73":    {Key: "_\n\\ \u308d", Position: 412, P1: "5C", P2: "5F", P3: "308D"},
		"79":    {Key: "\u5909\u63db", Format: FormatSmaller, Position: 506},
		"7B":    {Key: "\u7121\u5909\u63db", Format: FormatSmaller, Position: 504},
		"7D":    {Key: "|\n\u00a5 \u30fc", Position: 114, P1: "A5", P2: "7C", P3: "30FC"},
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

var glyphsKo = LocaleData{
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
		"10":    {Key: "q \u3142", Position: 201, P1: "71", P2: "51", P3: "3142", P4: "3143"},
		"11":    {Key: "w \u3148", Position: 202, P1: "77", P2: "57", P3: "3148", P4: "3149"},
		"12":    {Key: "e \u3137", Position: 203, P1: "65", P2: "45", P3: "3137", P4: "3138"},
		"13":    {Key: "r \u3131", Position: 204, P1: "72", P2: "52", P3: "3131", P4: "3132"},
		"14":    {Key: "t \u3145", Position: 205, P1: "74", P2: "54", P3: "3145", P4: "3146"},
		"15":    {Key: "y \u315b", Position: 206, P1: "79", P2: "59", P3: "315B"},
		"16":    {Key: "u \u3155", Position: 207, P1: "75", P2: "55", P3: "3155"},
		"17":    {Key: "i \u3151", Position: 208, P1: "69", P2: "49", P3: "3151"},
		"18":    {Key: "o \u3150", Position: 209, P1: "6F", P2: "4F", P3: "3150", P4: "3152"},
		"19":    {Key: "p \u3154", Position: 210, P1: "70", P2: "50", P3: "3154", P4: "3156"},
		"1A":    {Key: "{\n[", Position: 211, P1: "5B", P2: "7B"},
		"1B":    {Key: "}\n]", Position: 212, P1: "5D", P2: "7D"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a \u3141", Position: 301, P1: "61", P2: "41", P3: "3141"},
		"1F":    {Key: "s \u3134", Position: 302, P1: "73", P2: "53", P3: "3134"},
		"20":    {Key: "d \u3147", Position: 303, P1: "64", P2: "44", P3: "3147"},
		"21":    {Key: "f \u3139", Position: 304, P1: "66", P2: "46", P3: "3139"},
		"22":    {Key: "g \u314e", Position: 305, P1: "67", P2: "47", P3: "314E"},
		"23":    {Key: "h \u3157", Position: 306, P1: "68", P2: "48", P3: "3157"},
		"24":    {Key: "j \u3153", Position: 307, P1: "6A", P2: "4A", P3: "3153"},
		"25":    {Key: "k \u314f", Position: 308, P1: "6B", P2: "4B", P3: "314F"},
		"26":    {Key: "l \u3163", Position: 309, P1: "6C", P2: "4C", P3: "3163"},
		"27":    {Key: ":\n;", Position: 310, P1: "3B", P2: "3A"},
		"28":    {Key: "\"\n'", Position: 311, P1: "27", P2: "22"},
		"29":    {Key: "~\n`", Position: 100, P1: "60", P2: "7E"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "|\n\\", Position: 312, P1: "5C", P2: "7C"},
		"2C":    {Key: "z \u314b", Position: 401, P1: "7A", P2: "5A", P3: "314B"},
		"2D":    {Key: "x \u314c", Position: 402, P1: "78", P2: "58", P3: "314C"},
		"2E":    {Key: "c \u314a", Position: 403, P1: "63", P2: "43", P3: "314A"},
		"2F":    {Key: "v \u314d", Position: 404, P1: "76", P2: "56", P3: "314D"},
		"30":    {Key: "b \u3160", Position: 405, P1: "62", P2: "42", P3: "3160"},
		"31":    {Key: "n \u315c", Position: 406, P1: "6E", P2: "4E", P3: "315C"},
		"32":    {Key: "m \u3161", Position: 407, P1: "6D", P2: "4D", P3: "3161"},
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
		"E0 1D": {Key: "\ud55c\uc790", Format: FormatRight, Position: 504},
		"E0 38": {Key: "\ud55c/\uc601", Format: FormatRight, Position: 503},
		"E0 48": {Key: "up", Label: "glyph_arrow_up", Format: FormatSmaller, Position: 506},
		"E0 4B": {Key: "left", Label: "glyph_arrow_left", Format: FormatSmaller, Position: 505},
		"E0 4D": {Key: "right", Label: "glyph_arrow_right", Format: FormatSmaller, Position: 508},
		"E0 50": {Key: "down", Label: "glyph_arrow_down", Format: FormatSmaller, Position: 507},
		"E0 5B": {Key: "search", Label: "glyph_search", Format: FormatLeft, Position: 300},
		"E0 5E": {Key: "power", Label: "glyph_power", Format: FormatSmaller, Position: 11},
	},
}

var glyphsZhCN = LocaleData{
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

var glyphsZhTW = LocaleData{
	LayoutName: LayoutUS,
	Keys: map[string]KeyEntry{
		"01":    {Key: "esc", Format: FormatSmaller, Position: 0},
		"02":    {Key: "!\n1 \u3105", Position: 101, P1: "31", P2: "21", P3: "3105"},
		"03":    {Key: "@\n2 \u3109", Position: 102, P1: "32", P2: "40", P3: "3109"},
		"04":    {Key: "#\n3 \u02c7", Notes: "tone 3 mark; TODO confirm glyph with Taiwan keyboard vendor", Position: 103, P1: "33", P2: "23", P3: "2C7"},
		"05":    {Key: "$\n4 \u02cb", Notes: "tone 4 mark", Position: 104, P1: "34", P2: "24", P3: "2CB"},
		"06":    {Key: "%\n5 \u3113", Position: 105, P1: "35", P2: "25", P3: "3113"},
		"07":    {Key: "^\n6 \u02ca", Notes: "tone 2 mark", Position: 106, P1: "36", P2: "5E", P3: "2CA"},
		"08":    {Key: "&\n7 \u02d9", Notes: "neutral tone; check rendering on small font sizes", Position: 107, P1: "37", P2: "26", P3: "2D9"},
		"09":    {Key: "*\n8 \u311a", Position: 108, P1: "38", P2: "2A", P3: "311A"},
		"0A":    {Key: "(\n9 \u311e", Position: 109, P1: "39", P2: "28", P3: "311E"},
		"0B":    {Key: ")\n0 \u3122", Position: 110, P1: "30", P2: "29", P3: "3122"},
		"0C":    {Key: "_\n- \u3126", Position: 111, P1: "2D", P2: "5F", P3: "3126"},
		"0D":    {Key: "+\n=", Position: 112, P1: "3D", P2: "2B"},
		"0E":    {Key: "backspace", Format: FormatRight, Position: 113},
		"0F":    {Key: "tab", Format: FormatLeft, Position: 200},
		"10":    {Key: "q \u3106", Position: 201, P1: "71", P2: "51", P3: "3106"},
		"11":    {Key: "w \u310a", Position: 202, P1: "77", P2: "57", P3: "310A"},
		"12":    {Key: "e \u310d", Position: 203, P1: "65", P2: "45", P3: "310D"},
		"13":    {Key: "r \u3110", Position: 204, P1: "72", P2: "52", P3: "3110"},
		"14":    {Key: "t \u3114", Position: 205, P1: "74", P2: "54", P3: "3114"},
		"15":    {Key: "y \u3117", Position: 206, P1: "79", P2: "59", P3: "3117"},
		"16":    {Key: "u \u3127", Position: 207, P1: "75", P2: "55", P3: "3127"},
		"17":    {Key: "i \u311b", Position: 208, P1: "69", P2: "49", P3: "311B"},
		"18":    {Key: "o \u311f", Position: 209, P1: "6F", P2: "4F", P3: "311F"},
		"19":    {Key: "p \u3123", Position: 210, P1: "70", P2: "50", P3: "3123"},
		"1A":    {Key: "{\n[", Position: 211, P1: "5B", P2: "7B"},
		"1B":    {Key: "}\n]", Position: 212, P1: "5D", P2: "7D"},
		"1C":    {Key: "enter", Format: FormatRight, Position: 312},
		"1D":    {Key: "ctrl", Format: FormatLeft, Position: 500},
		"1E":    {Key: "a \u3107", Position: 301, P1: "61", P2: "41", P3: "3107"},
		"1F":    {Key: "s \u310b", Position: 302, P1: "73", P2: "53", P3: "310B"},
		"20":    {Key: "d \u310e", Position: 303, P1: "64", P2: "44", P3: "310E"},
		"21":    {Key: "f \u3111", Position: 304, P1: "66", P2: "46", P3: "3111"},
		"22":    {Key: "g \u3115", Position: 305, P1: "67", P2: "47", P3: "3115"},
		"23":    {Key: "h \u3118", Position: 306, P1: "68", P2: "48", P3: "3118"},
		"24":    {Key: "j \u3128", Position: 307, P1: "6A", P2: "4A", P3: "3128"},
		"25":    {Key: "k \u311c", Position: 308, P1: "6B", P2: "4B", P3: "311C"},
		"26":    {Key: "l \u3120", Position: 309, P1: "6C", P2: "4C", P3: "3120"},
		"27":    {Key: ":\n; \u3124", Position: 310, P1: "3B", P2: "3A", P3: "3124"},
		"28":    {Key: "\"\n'", Position: 311, P1: "27", P2: "22"},
		"29":    {Key: "~\n`", Position: 100, P1: "60", P2: "7E"},
		"2A":    {Key: "shift", Format: FormatLeft, Position: 400},
		"2B":    {Key: "|\n\\", Position: 312, P1: "5C", P2: "7C"},
		"2C":    {Key: "z \u3108", Position: 401, P1: "7A", P2: "5A", P3: "3108"},
		"2D":    {Key: "x \u310c", Position: 402, P1: "78", P2: "58", P3: "310C"},
		"2E":    {Key: "c \u310f", Position: 403, P1: "63", P2: "43", P3: "310F"},
		"2F":    {Key: "v \u3112", Position: 404, P1: "76", P2: "56", P3: "3112"},
		"30":    {Key: "b \u3116", Position: 405, P1: "62", P2: "42", P3: "3116"},
		"31":    {Key: "n \u3119", Position: 406, P1: "6E", P2: "4E", P3: "3119"},
		"32":    {Key: "m \u3129", Position: 407, P1: "6D", P2: "4D", P3: "3129"},
		"33":    {Key: "<\n, \u311d", Position: 408, P1: "2C", P2: "3C", P3: "311D"},
		"34":    {Key: ">\n. \u3121", Position: 409, P1: "2E", P2: "3E", P3: "3121"},
		"35":    {Key: "?\n/ \u3125", Position: 410, P1: "2F", P2: "3F", P3: "3125"},
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
