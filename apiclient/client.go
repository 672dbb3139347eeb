package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	apitypes "github.com/Alia5/kbdoverlay/apitypes"
)

// Client provides a high-level interface to the kbdoverlay lookup API, handling request
// formatting, response parsing, and error handling.
type Client struct{ transport *Transport }

// New constructs a high-level API client using the internal low-level Transport.
// The addr parameter specifies the TCP address (host:port) of the kbdoverlay lookup API server.
func New(addr string) *Client { return &Client{transport: NewTransport(addr)} }

// NewWithPassword constructs a client for a password protected server.
func NewWithPassword(addr, password string) *Client {
	return &Client{transport: NewTransportWithPassword(addr, password)}
}

// NewWithConfig constructs a client with custom transport timeouts.
func NewWithConfig(addr string, cfg *Config) *Client {
	return &Client{transport: NewTransportWithConfig(addr, cfg)}
}

// WithTransport constructs a Client using a custom Transport implementation.
// This is primarily useful for testing or when advanced transport configuration is needed.
func WithTransport(t *Transport) *Client { return &Client{transport: t} }

// Ping returns the version and identity of the kbdoverlay server.
func (c *Client) Ping() (*apitypes.PingResponse, error) {
	return c.PingCtx(context.Background())
}

// PingCtx is the context-aware version of Ping.
func (c *Client) PingCtx(ctx context.Context) (*apitypes.PingResponse, error) {
	const path = "ping"
	raw, err := c.transport.DoCtx(ctx, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.PingResponse](raw)
}

// LocaleList lists the locales known to the server.
func (c *Client) LocaleList() (*apitypes.LocaleListResponse, error) {
	return c.LocaleListCtx(context.Background())
}

func (c *Client) LocaleListCtx(ctx context.Context) (*apitypes.LocaleListResponse, error) {
	const path = "locale/list"
	raw, err := c.transport.DoCtx(ctx, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.LocaleListResponse](raw)
}

// Locale returns every key of a locale.
func (c *Client) Locale(id string) (*apitypes.LocaleResponse, error) {
	return c.LocaleCtx(context.Background(), id)
}

func (c *Client) LocaleCtx(ctx context.Context, id string) (*apitypes.LocaleResponse, error) {
	const path = "locale/{id}"
	raw, err := c.transport.DoCtx(ctx, path, nil, map[string]string{"id": id})
	if err != nil {
		return nil, err
	}
	return parse[apitypes.LocaleResponse](raw)
}

// Key looks up one scan code in a locale. Keys the locale does not define
// are answered from the fallback locale and flagged as such.
func (c *Client) Key(locale, scanCode string) (*apitypes.KeyResponse, error) {
	return c.KeyCtx(context.Background(), locale, scanCode)
}

func (c *Client) KeyCtx(ctx context.Context, locale, scanCode string) (*apitypes.KeyResponse, error) {
	const path = "locale/{id}/key"
	raw, err := c.transport.DoCtx(ctx, path, scanCode, map[string]string{"id": locale})
	if err != nil {
		return nil, err
	}
	return parse[apitypes.KeyResponse](raw)
}

// LayoutList lists the keyboard layouts and their extents.
func (c *Client) LayoutList() (*apitypes.LayoutListResponse, error) {
	return c.LayoutListCtx(context.Background())
}

func (c *Client) LayoutListCtx(ctx context.Context) (*apitypes.LayoutListResponse, error) {
	const path = "layout/list"
	raw, err := c.transport.DoCtx(ctx, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.LayoutListResponse](raw)
}

// Layout returns the key rectangles of a layout ("E", "U", "B" or "J").
func (c *Client) Layout(name string) (*apitypes.LayoutResponse, error) {
	return c.LayoutCtx(context.Background(), name)
}

func (c *Client) LayoutCtx(ctx context.Context, name string) (*apitypes.LayoutResponse, error) {
	const path = "layout/{name}"
	raw, err := c.transport.DoCtx(ctx, path, nil, map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	return parse[apitypes.LayoutResponse](raw)
}

// ShortcutList lists every shortcut binding. lang selects the language of
// the descriptions and may be empty.
func (c *Client) ShortcutList(lang string) (*apitypes.ShortcutListResponse, error) {
	return c.ShortcutListCtx(context.Background(), lang)
}

func (c *Client) ShortcutListCtx(ctx context.Context, lang string) (*apitypes.ShortcutListResponse, error) {
	const path = "shortcut/list"
	raw, err := c.transport.DoCtx(ctx, path, lang, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.ShortcutListResponse](raw)
}

// ShortcutResolve returns the action bound to a descriptor such as "t CTRL".
func (c *Client) ShortcutResolve(descriptor string) (*apitypes.ShortcutResponse, error) {
	return c.ShortcutResolveCtx(context.Background(), descriptor)
}

func (c *Client) ShortcutResolveCtx(ctx context.Context, descriptor string) (*apitypes.ShortcutResponse, error) {
	const path = "shortcut/resolve"
	raw, err := c.transport.DoCtx(ctx, path, descriptor, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.ShortcutResponse](raw)
}

// Action returns the action a key press triggers in a locale.
func (c *Client) Action(req apitypes.ActionRequest) (*apitypes.ShortcutResponse, error) {
	return c.ActionCtx(context.Background(), req)
}

func (c *Client) ActionCtx(ctx context.Context, req apitypes.ActionRequest) (*apitypes.ShortcutResponse, error) {
	const path = "shortcut/action"
	payloadBytes, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal action request: %w", err)
	}
	raw, err := c.transport.DoCtx(ctx, path, string(payloadBytes), nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.ShortcutResponse](raw)
}

// Resolve maps a BCP 47 tag or input method id to an overlay locale.
func (c *Client) Resolve(tag string) (*apitypes.ResolveResponse, error) {
	return c.ResolveCtx(context.Background(), tag)
}

func (c *Client) ResolveCtx(ctx context.Context, tag string) (*apitypes.ResolveResponse, error) {
	const path = "resolve"
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil, errors.New("resolve: empty tag")
	}
	raw, err := c.transport.DoCtx(ctx, path, tag, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.ResolveResponse](raw)
}

// Validate returns the validation findings of the served table.
func (c *Client) Validate() (*apitypes.ValidateResponse, error) {
	return c.ValidateCtx(context.Background())
}

func (c *Client) ValidateCtx(ctx context.Context) (*apitypes.ValidateResponse, error) {
	const path = "validate"
	raw, err := c.transport.DoCtx(ctx, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return parse[apitypes.ValidateResponse](raw)
}

func parse[T any](data string) (*T, error) {
	if data == "" {
		return nil, errors.New("empty response")
	}
	var problem apitypes.ApiError
	if err := json.Unmarshal([]byte(data), &problem); err == nil && (problem.Status != 0 || problem.Title != "") {
		return nil, &problem
	}
	var out T
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return &out, nil
}
