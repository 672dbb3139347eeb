package overlay

// LabelToKeyText maps glyph labels to the text shown for them.
var LabelToKeyText = map[string]string{
	"glyph_arrow_down":      "down",
	"glyph_arrow_left":      "left",
	"glyph_arrow_right":     "right",
	"glyph_arrow_up":        "up",
	"glyph_back":            "back",
	"glyph_brightness_down": "bright down",
	"glyph_brightness_up":   "bright up",
	"glyph_forward":         "forward",
	"glyph_fullscreen":      "full screen",
	"glyph_overview":        "switch window",
	"glyph_power":           "power",
	"glyph_reload":          "reload",
	"glyph_search":          "search",
	"glyph_volume_down":     "vol. down",
	"glyph_volume_mute":     "mute",
	"glyph_volume_up":       "vol. up",
}

// KeyCodeToLabel maps browser keyCode values of non-character keys to the
// label the overlay shows for them. The top-row keys report F1..F10.
var KeyCodeToLabel = map[int]string{
	8:   "backspace",
	9:   "tab",
	13:  "enter",
	16:  "shift",
	17:  "ctrl",
	18:  "alt",
	27:  "esc",
	32:  "space",
	33:  "pgup",
	34:  "pgdown",
	35:  "end",
	36:  "home",
	37:  "left",
	38:  "up",
	39:  "right",
	40:  "down",
	45:  "insert",
	46:  "delete",
	91:  "search",
	112: "back",
	113: "forward",
	114: "reload",
	115: "full screen",
	116: "switch window",
	117: "bright down",
	118: "bright up",
	119: "mute",
	120: "vol. down",
	121: "vol. up",
}
