package overlay

// builtinShortcuts maps shortcut descriptors to the message ids of the
// actions they trigger.
var builtinShortcuts = map[string]string{
	"1 ALT":                        "keyboardOverlayActivateShelfItem1",
	"2 ALT":                        "keyboardOverlayActivateShelfItem2",
	"3 ALT":                        "keyboardOverlayActivateShelfItem3",
	"4 ALT":                        "keyboardOverlayActivateShelfItem4",
	"5 ALT":                        "keyboardOverlayActivateShelfItem5",
	"6 ALT":                        "keyboardOverlayActivateShelfItem6",
	"7 ALT":                        "keyboardOverlayActivateShelfItem7",
	"8 ALT":                        "keyboardOverlayActivateShelfItem8",
	"9 ALT":                        "keyboardOverlayActivateLastShelfItem",
	"1 CTRL":                       "keyboardOverlayActivateTab1",
	"2 CTRL":                       "keyboardOverlayActivateTab2",
	"3 CTRL":                       "keyboardOverlayActivateTab3",
	"4 CTRL":                       "keyboardOverlayActivateTab4",
	"5 CTRL":                       "keyboardOverlayActivateTab5",
	"6 CTRL":                       "keyboardOverlayActivateTab6",
	"7 CTRL":                       "keyboardOverlayActivateTab7",
	"8 CTRL":                       "keyboardOverlayActivateTab8",
	"9 CTRL":                       "keyboardOverlayActivateLastTab",
	"0 CTRL":                       "keyboardOverlayResetZoom",
	"- ALT":                        "keyboardOverlayMinimizeWindow",
	"- CTRL":                       "keyboardOverlayZoomOut",
	"= ALT":                        "keyboardOverlayMaximizeWindow",
	"= CTRL":                       "keyboardOverlayZoomIn",
	"[ ALT":                        "keyboardOverlayWindowPositionLeft",
	"] ALT":                        "keyboardOverlayWindowPositionRight",
	"/ ALT CTRL":                   "keyboardOverlayViewKeyboardOverlay",
	"a CTRL":                       "keyboardOverlaySelectAll",
	"b ALT SHIFT":                  "keyboardOverlayFocusShelf",
	"b CTRL SHIFT":                 "keyboardOverlayToggleBookmarkBar",
	"c CTRL":                       "keyboardOverlayCopy",
	"d CTRL":                       "keyboardOverlayBookmarkCurrentPage",
	"d CTRL SHIFT":                 "keyboardOverlayBookmarkAllTabs",
	"e ALT":                        "keyboardOverlayShowWrenchMenu",
	"e CTRL":                       "keyboardOverlayFocusAddressBarInSearchMode",
	"f ALT":                        "keyboardOverlayShowWrenchMenu",
	"f CTRL":                       "keyboardOverlayFindText",
	"g CTRL":                       "keyboardOverlayFindTextAgain",
	"g CTRL SHIFT":                 "keyboardOverlayFindPreviousText",
	"h CTRL":                       "keyboardOverlayHistory",
	"h CTRL SEARCH":                "keyboardOverlayToggleHighContrastMode",
	"i ALT SHIFT":                  "keyboardOverlayReportIssue",
	"i CTRL SHIFT":                 "keyboardOverlayDeveloperTools",
	"j CTRL":                       "keyboardOverlayDownloads",
	"j CTRL SHIFT":                 "keyboardOverlayJavascriptConsole",
	"k CTRL":                       "keyboardOverlayFocusAddressBarInSearchMode",
	"l ALT SHIFT":                  "keyboardOverlayFocusLauncher",
	"l CTRL":                       "keyboardOverlayFocusAddressBar",
	"l CTRL SHIFT":                 "keyboardOverlayLockScreen",
	"l SEARCH":                     "keyboardOverlayLockScreen",
	"m ALT SHIFT":                  "keyboardOverlayOpenFileManager",
	"n ALT SHIFT":                  "keyboardOverlayShowMessageCenterBubble",
	"n CTRL":                       "keyboardOverlayNewWindow",
	"n CTRL SHIFT":                 "keyboardOverlayNewIncognitoWindow",
	"o CTRL":                       "keyboardOverlayOpenFile",
	"o CTRL SHIFT":                 "keyboardOverlayBookmarkManager",
	"p CTRL":                       "keyboardOverlayPrint",
	"q CTRL SHIFT":                 "keyboardOverlaySignOut",
	"r CTRL":                       "keyboardOverlayReloadCurrentPage",
	"r CTRL SHIFT":                 "keyboardOverlayReloadBypassingCache",
	"s ALT SHIFT":                  "keyboardOverlayShowStatusMenu",
	"s CTRL":                       "keyboardOverlaySave",
	"t ALT CTRL":                   "keyboardOverlayOpenCrosh",
	"t ALT SHIFT":                  "keyboardOverlayFocusToolbar",
	"t CTRL":                       "keyboardOverlayNewTab",
	"t CTRL SHIFT":                 "keyboardOverlayReopenLastClosedTab",
	"u CTRL":                       "keyboardOverlayViewSource",
	"v CTRL":                       "keyboardOverlayPaste",
	"v CTRL SHIFT":                 "keyboardOverlayPasteAsPlainText",
	"w CTRL":                       "keyboardOverlayCloseTab",
	"w CTRL SHIFT":                 "keyboardOverlayCloseWindow",
	"x CTRL":                       "keyboardOverlayCut",
	"z ALT CTRL":                   "keyboardOverlayToggleSpokenFeedback",
	"z CTRL":                       "keyboardOverlayUndo",
	"z CTRL SHIFT":                 "keyboardOverlayRedo",
	"backspace ALT":                "keyboardOverlayDelete",
	"backspace CTRL":               "keyboardOverlayDeleteWord",
	"backspace SEARCH":             "keyboardOverlayDelete",
	"enter ALT":                    "keyboardOverlayOpenAddressInNewTab",
	"enter CTRL":                   "keyboardOverlayAddWwwAndComAndOpenAddress",
	"esc SHIFT":                    "keyboardOverlayTaskManager",
	"space ALT SHIFT":              "keyboardOverlayCycleThroughInputMethods",
	"space CTRL":                   "keyboardOverlaySelectPreviousInputMethod",
	"tab ALT":                      "keyboardOverlayNextWindow",
	"tab ALT SHIFT":                "keyboardOverlayPreviousWindow",
	"tab CTRL":                     "keyboardOverlayNextTab",
	"tab CTRL SHIFT":               "keyboardOverlayPreviousTab",
	"glyph_arrow_down ALT":         "keyboardOverlayPageDown",
	"glyph_arrow_down ALT CTRL":    "keyboardOverlayEnd",
	"glyph_arrow_down SEARCH":      "keyboardOverlayPageDown",
	"glyph_arrow_left ALT":         "keyboardOverlayGoBack",
	"glyph_arrow_left CTRL":        "keyboardOverlayPreviousWord",
	"glyph_arrow_left CTRL SHIFT":  "keyboardOverlaySelectPreviousWord",
	"glyph_arrow_left SEARCH":      "keyboardOverlayHome",
	"glyph_arrow_right ALT":        "keyboardOverlayGoForward",
	"glyph_arrow_right CTRL":       "keyboardOverlayNextWord",
	"glyph_arrow_right CTRL SHIFT": "keyboardOverlaySelectNextWord",
	"glyph_arrow_right SEARCH":     "keyboardOverlayEnd",
	"glyph_arrow_up ALT":           "keyboardOverlayPageUp",
	"glyph_arrow_up ALT CTRL":      "keyboardOverlayHome",
	"glyph_arrow_up SEARCH":        "keyboardOverlayPageUp",
	"glyph_back CTRL":              "keyboardOverlayGoBack",
	"glyph_brightness_down ALT":    "keyboardOverlayKeyboardBrightnessDown",
	"glyph_brightness_up ALT":      "keyboardOverlayKeyboardBrightnessUp",
	"glyph_forward CTRL":           "keyboardOverlayGoForward",
	"glyph_fullscreen CTRL":        "keyboardOverlayMirrorMonitors",
	"glyph_fullscreen ALT":         "keyboardOverlaySwapPrimaryMonitor",
	"glyph_overview CTRL":          "keyboardOverlayTakeScreenshot",
	"glyph_overview CTRL SHIFT":    "keyboardOverlayScreenshotRegion",
	"glyph_reload CTRL":            "keyboardOverlayReloadBypassingCache",
	"glyph_reload SHIFT":           "keyboardOverlayReloadBypassingCache",
	"glyph_search ALT":             "keyboardOverlayToggleCapsLock",
	"glyph_volume_mute SEARCH":     "keyboardOverlayToggleMute",
}
