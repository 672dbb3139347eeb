package apitypes

import (
	"fmt"
)

// ApiError represents an RFC 7807 (problem+json) error response.
type ApiError struct {
	// Status is the HTTP-style status code (e.g., 400, 404, 500)
	Status int `json:"status"`
	// Title is a short, human-readable summary of the problem type
	Title string `json:"title"`
	// Detail is a human-readable explanation specific to this occurrence
	Detail string `json:"detail"`
}

func (e ApiError) Error() string {
	if e.Status == 0 && e.Title == "" {
		return "unknown error"
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Title, e.Detail)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Title, e.Detail)
}

// --

type PingResponse struct {
	Server  string `json:"server"`
	Version string `json:"version"`
}

type LocaleSummary struct {
	ID         string `json:"id"`
	LayoutName string `json:"layoutName"`
	Keys       int    `json:"keys"`
}

type LocaleListResponse struct {
	Locales []LocaleSummary `json:"locales"`
}

// Key is one glyph entry. Planes holds the authored hex code points keyed
// "p1".."p9"; Text is the decoded key text.
type Key struct {
	ScanCode string            `json:"scanCode"`
	Key      string            `json:"key,omitempty"`
	Label    string            `json:"label,omitempty"`
	Format   string            `json:"format,omitempty"`
	Notes    string            `json:"notes,omitempty"`
	Position int               `json:"position"`
	Planes   map[string]string `json:"planes,omitempty"`
	Text     string            `json:"text"`
	HID      string            `json:"hid,omitempty"`
}

type LocaleResponse struct {
	ID         string `json:"id"`
	LayoutName string `json:"layoutName"`
	Keys       []Key  `json:"keys"`
}

type KeyResponse struct {
	Locale string `json:"locale"`
	// Source is the locale that supplied the entry.
	Source   string `json:"source"`
	Fallback bool   `json:"fallback"`
	Key      Key    `json:"key"`
}

type LayoutSummary struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Keys        int     `json:"keys"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
}

type LayoutListResponse struct {
	Layouts []LayoutSummary `json:"layouts"`
}

type Rect struct {
	ScanCode string  `json:"scanCode"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

type LayoutResponse struct {
	LayoutSummary
	Rects []Rect `json:"rects"`
}

type Shortcut struct {
	Descriptor  string `json:"descriptor"`
	Action      string `json:"action"`
	Description string `json:"description,omitempty"`
}

type ShortcutListResponse struct {
	Shortcuts []Shortcut `json:"shortcuts"`
}

type ShortcutResponse struct {
	Shortcut
	Locale   string `json:"locale,omitempty"`
	ScanCode string `json:"scanCode,omitempty"`
}

// ActionRequest asks which action a key press triggers.
type ActionRequest struct {
	Locale    string   `json:"locale"`
	ScanCode  string   `json:"scanCode"`
	Modifiers []string `json:"modifiers,omitempty"`
	// Lang selects the description language; defaults to English.
	Lang string `json:"lang,omitempty"`
}

type ResolveResponse struct {
	Input      string `json:"input"`
	Locale     string `json:"locale"`
	Exact      bool   `json:"exact"`
	LayoutName string `json:"layoutName"`
}

type Finding struct {
	Severity string `json:"severity"`
	Locale   string `json:"locale,omitempty"`
	Layout   string `json:"layout,omitempty"`
	ScanCode string `json:"scanCode,omitempty"`
	Field    string `json:"field,omitempty"`
	Message  string `json:"message"`
}

type ValidateResponse struct {
	Errors   int       `json:"errors"`
	Warnings int       `json:"warnings"`
	Findings []Finding `json:"findings"`
}
