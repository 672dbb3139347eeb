package api

import (
	"context"
	"log/slog"
	"net"
	"strings"
)

// Request contains route parameters and additional args from the command.
type Request struct {
	Ctx     context.Context
	Path    string
	Params  map[string]string
	Payload string
}

// Response holds the JSON string to return to the client.
type Response struct {
	JSON string
}

// HandlerFunc processes a request and populates the response.
// Returns an error on failure. The logger provided is a connection-scoped logger
// enriched with remote address metadata by the API server.
type HandlerFunc func(req *Request, res *Response, logger *slog.Logger) error

// StreamHandlerFunc handles long-lived TCP connections.
// The handler takes ownership of the connection and should close it when done.
// Bytes the client sent after the request terminator are readable from conn.
type StreamHandlerFunc func(conn net.Conn, req *Request, logger *slog.Logger) error

// Router implements simple path pattern matching with placeholders in {name}.
// Patterns and paths are matched case-insensitively.
type Router struct {
	routes       []route[HandlerFunc]
	streamRoutes []route[StreamHandlerFunc]
}

type route[H any] struct {
	pattern string
	names   []string // placeholder name per segment, "" for literals
	parts   []string
	handler H
}

func newRoute[H any](pattern string, handler H) route[H] {
	orig := strings.Split(pattern, "/")
	rt := route[H]{
		pattern: strings.ToLower(pattern),
		names:   make([]string, len(orig)),
		parts:   strings.Split(strings.ToLower(pattern), "/"),
		handler: handler,
	}
	for i, p := range orig {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			rt.names[i] = p[1 : len(p)-1]
		}
	}
	return rt
}

func (rt route[H]) match(parts []string) (map[string]string, bool) {
	if len(rt.parts) != len(parts) {
		return nil, false
	}
	params := map[string]string{}
	for i := range parts {
		if rt.names[i] != "" {
			if parts[i] == "" {
				return nil, false
			}
			params[rt.names[i]] = parts[i]
			continue
		}
		if rt.parts[i] != parts[i] {
			return nil, false
		}
	}
	return params, true
}

func matchRoutes[H any](routes []route[H], path string) (H, map[string]string, bool) {
	parts := strings.Split(strings.ToLower(path), "/")
	for _, rt := range routes {
		if params, ok := rt.match(parts); ok {
			return rt.handler, params, true
		}
	}
	var zero H
	return zero, nil, false
}

// NewRouter returns a new Router instance.
func NewRouter() *Router { return &Router{} }

// Register registers a handler for a path pattern like "locale/{id}/key".
func (r *Router) Register(pattern string, handler HandlerFunc) {
	r.routes = append(r.routes, newRoute(pattern, handler))
}

// RegisterStream registers a StreamHandler for long-lived TCP connections.
func (r *Router) RegisterStream(pattern string, handler StreamHandlerFunc) {
	r.streamRoutes = append(r.streamRoutes, newRoute(pattern, handler))
}

// Match returns the HandlerFunc and params if the given path matches any
// registered pattern. Returns nil if none match.
func (r *Router) Match(path string) (HandlerFunc, map[string]string) {
	h, params, ok := matchRoutes(r.routes, path)
	if !ok {
		return nil, nil
	}
	return h, params
}

// MatchStream returns the StreamHandler and params if the given path matches
// any registered stream pattern. Returns nil if none match.
func (r *Router) MatchStream(path string) (StreamHandlerFunc, map[string]string) {
	h, params, ok := matchRoutes(r.streamRoutes, path)
	if !ok {
		return nil, nil
	}
	return h, params
}

// Patterns lists the registered request and stream patterns in
// registration order.
func (r *Router) Patterns() []string {
	out := make([]string, 0, len(r.routes)+len(r.streamRoutes))
	for _, rt := range r.routes {
		out = append(out, rt.pattern)
	}
	for _, rt := range r.streamRoutes {
		out = append(out, rt.pattern)
	}
	return out
}
