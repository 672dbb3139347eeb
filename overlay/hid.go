package overlay

import "fmt"

// HID usage codes (USB HID Keyboard/Keypad usage page) of the keys that
// appear on the overlay.
const (
	HIDKeyA = 0x04
	HIDKeyB = 0x05
	HIDKeyC = 0x06
	HIDKeyD = 0x07
	HIDKeyE = 0x08
	HIDKeyF = 0x09
	HIDKeyG = 0x0A
	HIDKeyH = 0x0B
	HIDKeyI = 0x0C
	HIDKeyJ = 0x0D
	HIDKeyK = 0x0E
	HIDKeyL = 0x0F
	HIDKeyM = 0x10
	HIDKeyN = 0x11
	HIDKeyO = 0x12
	HIDKeyP = 0x13
	HIDKeyQ = 0x14
	HIDKeyR = 0x15
	HIDKeyS = 0x16
	HIDKeyT = 0x17
	HIDKeyU = 0x18
	HIDKeyV = 0x19
	HIDKeyW = 0x1A
	HIDKeyX = 0x1B
	HIDKeyY = 0x1C
	HIDKeyZ = 0x1D

	HIDKey1 = 0x1E
	HIDKey2 = 0x1F
	HIDKey3 = 0x20
	HIDKey4 = 0x21
	HIDKey5 = 0x22
	HIDKey6 = 0x23
	HIDKey7 = 0x24
	HIDKey8 = 0x25
	HIDKey9 = 0x26
	HIDKey0 = 0x27

	HIDKeyEnter      = 0x28
	HIDKeyEscape     = 0x29
	HIDKeyBackspace  = 0x2A
	HIDKeyTab        = 0x2B
	HIDKeySpace      = 0x2C
	HIDKeyMinus      = 0x2D // - and _
	HIDKeyEqual      = 0x2E // = and +
	HIDKeyLeftBrace  = 0x2F // [ and {
	HIDKeyRightBrace = 0x30 // ] and }
	HIDKeyBackslash  = 0x31 // \ and |
	HIDKeySemicolon  = 0x33 // ; and :
	HIDKeyApostrophe = 0x34 // ' and "
	HIDKeyGrave      = 0x35 // ` and ~
	HIDKeyComma      = 0x36 // , and <
	HIDKeyPeriod     = 0x37 // . and >
	HIDKeySlash      = 0x38 // / and ?

	// Chromebook top row keys report F1..F10.
	HIDKeyF1  = 0x3A
	HIDKeyF2  = 0x3B
	HIDKeyF3  = 0x3C
	HIDKeyF4  = 0x3D
	HIDKeyF5  = 0x3E
	HIDKeyF6  = 0x3F
	HIDKeyF7  = 0x40
	HIDKeyF8  = 0x41
	HIDKeyF9  = 0x42
	HIDKeyF10 = 0x43

	HIDKeyRight = 0x4F
	HIDKeyLeft  = 0x50
	HIDKeyDown  = 0x51
	HIDKeyUp    = 0x52

	HIDKeyNonUSBackslash = 0x64
	HIDKeyPower          = 0x66

	HIDKeyInternational1 = 0x87 // Ro
	HIDKeyInternational2 = 0x88 // Katakana/Hiragana
	HIDKeyInternational3 = 0x89 // Yen
	HIDKeyInternational4 = 0x8A // Henkan
	HIDKeyInternational5 = 0x8B // Muhenkan

	HIDKeyLeftCtrl   = 0xE0
	HIDKeyLeftShift  = 0xE1
	HIDKeyLeftAlt    = 0xE2
	HIDKeyLeftGUI    = 0xE3 // Search
	HIDKeyRightCtrl  = 0xE4
	HIDKeyRightShift = 0xE5
	HIDKeyRightAlt   = 0xE6
)

// ScanCodeToHID maps set 1 scan codes to HID usage codes.
var ScanCodeToHID = map[string]uint8{
	"01": HIDKeyEscape,
	"02": HIDKey1, "03": HIDKey2, "04": HIDKey3, "05": HIDKey4, "06": HIDKey5,
	"07": HIDKey6, "08": HIDKey7, "09": HIDKey8, "0A": HIDKey9, "0B": HIDKey0,
	"0C": HIDKeyMinus,
	"0D": HIDKeyEqual,
	"0E": HIDKeyBackspace,
	"0F": HIDKeyTab,
	"10": HIDKeyQ, "11": HIDKeyW, "12": HIDKeyE, "13": HIDKeyR, "14": HIDKeyT,
	"15": HIDKeyY, "16": HIDKeyU, "17": HIDKeyI, "18": HIDKeyO, "19": HIDKeyP,
	"1A": HIDKeyLeftBrace,
	"1B": HIDKeyRightBrace,
	"1C": HIDKeyEnter,
	"1D": HIDKeyLeftCtrl,
	"1E": HIDKeyA, "1F": HIDKeyS, "20": HIDKeyD, "21": HIDKeyF, "22": HIDKeyG,
	"23": HIDKeyH, "24": HIDKeyJ, "25": HIDKeyK, "26": HIDKeyL,
	"27": HIDKeySemicolon,
	"28": HIDKeyApostrophe,
	"29": HIDKeyGrave,
	"2A": HIDKeyLeftShift,
	"2B": HIDKeyBackslash,
	"2C": HIDKeyZ, "2D": HIDKeyX, "2E": HIDKeyC, "2F": HIDKeyV, "30": HIDKeyB,
	"31": HIDKeyN, "32": HIDKeyM,
	"33": HIDKeyComma,
	"34": HIDKeyPeriod,
	"35": HIDKeySlash,
	"36": HIDKeyRightShift,
	"38": HIDKeyLeftAlt,
	"39": HIDKeySpace,
	"3B": HIDKeyF1, "3C": HIDKeyF2, "3D": HIDKeyF3, "3E": HIDKeyF4, "3F": HIDKeyF5,
	"40": HIDKeyF6, "41": HIDKeyF7, "42": HIDKeyF8, "43": HIDKeyF9, "44": HIDKeyF10,
	"56":    HIDKeyNonUSBackslash,
	"70":    HIDKeyInternational2,
	"73":    HIDKeyInternational1,
	"79":    HIDKeyInternational4,
	"7B":    HIDKeyInternational5,
	"7D":    HIDKeyInternational3,
	"E0 1D": HIDKeyRightCtrl,
	"E0 38": HIDKeyRightAlt,
	"E0 48": HIDKeyUp,
	"E0 4B": HIDKeyLeft,
	"E0 4D": HIDKeyRight,
	"E0 50": HIDKeyDown,
	"E0 5B": HIDKeyLeftGUI,
	"E0 5E": HIDKeyPower,
}

var hidToScanCode = func() map[uint8]string {
	m := make(map[uint8]string, len(ScanCodeToHID))
	for code, usage := range ScanCodeToHID {
		m[usage] = code
	}
	return m
}()

// HIDToScanCode returns the scan code producing a HID usage.
func HIDToScanCode(usage uint8) (string, bool) {
	code, ok := hidToScanCode[usage]
	return code, ok
}

// HIDName maps HID usage codes to human-readable key names.
var HIDName = map[uint8]string{
	HIDKeyA: "A", HIDKeyB: "B", HIDKeyC: "C", HIDKeyD: "D", HIDKeyE: "E", HIDKeyF: "F", HIDKeyG: "G",
	HIDKeyH: "H", HIDKeyI: "I", HIDKeyJ: "J", HIDKeyK: "K", HIDKeyL: "L", HIDKeyM: "M", HIDKeyN: "N",
	HIDKeyO: "O", HIDKeyP: "P", HIDKeyQ: "Q", HIDKeyR: "R", HIDKeyS: "S", HIDKeyT: "T", HIDKeyU: "U",
	HIDKeyV: "V", HIDKeyW: "W", HIDKeyX: "X", HIDKeyY: "Y", HIDKeyZ: "Z",

	HIDKey1: "1", HIDKey2: "2", HIDKey3: "3", HIDKey4: "4", HIDKey5: "5",
	HIDKey6: "6", HIDKey7: "7", HIDKey8: "8", HIDKey9: "9", HIDKey0: "0",

	HIDKeyEnter:      "Enter",
	HIDKeyEscape:     "Escape",
	HIDKeyBackspace:  "Backspace",
	HIDKeyTab:        "Tab",
	HIDKeySpace:      "Space",
	HIDKeyMinus:      "Minus",
	HIDKeyEqual:      "Equal",
	HIDKeyLeftBrace:  "LeftBrace",
	HIDKeyRightBrace: "RightBrace",
	HIDKeyBackslash:  "Backslash",
	HIDKeySemicolon:  "Semicolon",
	HIDKeyApostrophe: "Apostrophe",
	HIDKeyGrave:      "Grave",
	HIDKeyComma:      "Comma",
	HIDKeyPeriod:     "Period",
	HIDKeySlash:      "Slash",

	HIDKeyF1: "F1", HIDKeyF2: "F2", HIDKeyF3: "F3", HIDKeyF4: "F4", HIDKeyF5: "F5",
	HIDKeyF6: "F6", HIDKeyF7: "F7", HIDKeyF8: "F8", HIDKeyF9: "F9", HIDKeyF10: "F10",

	HIDKeyRight: "Right",
	HIDKeyLeft:  "Left",
	HIDKeyDown:  "Down",
	HIDKeyUp:    "Up",

	HIDKeyNonUSBackslash: "NonUSBackslash",
	HIDKeyPower:          "Power",
	HIDKeyInternational1: "Ro",
	HIDKeyInternational2: "KatakanaHiragana",
	HIDKeyInternational3: "Yen",
	HIDKeyInternational4: "Henkan",
	HIDKeyInternational5: "Muhenkan",

	HIDKeyLeftCtrl:   "LeftCtrl",
	HIDKeyLeftShift:  "LeftShift",
	HIDKeyLeftAlt:    "LeftAlt",
	HIDKeyLeftGUI:    "Search",
	HIDKeyRightCtrl:  "RightCtrl",
	HIDKeyRightShift: "RightShift",
	HIDKeyRightAlt:   "RightAlt",
}

// ParseHIDUsage parses "0x04", "04h" or "4" style usage codes.
func ParseHIDUsage(s string) (uint8, error) {
	var v uint
	var err error
	switch {
	case len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X"):
		_, err = fmt.Sscanf(s[2:], "%x", &v)
	case len(s) > 1 && (s[len(s)-1] == 'h' || s[len(s)-1] == 'H'):
		_, err = fmt.Sscanf(s[:len(s)-1], "%x", &v)
	default:
		_, err = fmt.Sscanf(s, "%d", &v)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid HID usage %q: %w", s, err)
	}
	if v > 0xFF {
		return 0, fmt.Errorf("HID usage %q out of range", s)
	}
	return uint8(v), nil
}
