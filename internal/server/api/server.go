package api

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Alia5/kbdoverlay/internal/log"
	"github.com/Alia5/kbdoverlay/internal/server/api/auth"
)

var wsRegex = regexp.MustCompile(`\s`)

// Server implements a small TCP API for looking up overlay data.
//
// Request framing: `<path>[ SP <payload>]\x00`. The response is a single
// JSON line, after which the connection is closed. Stream routes keep the
// connection open and speak their own line protocol.
type Server struct {
	addr   string
	ln     net.Listener
	logger *slog.Logger
	raw    log.RawLogger
	router *Router
	config ServerConfig
	key    []byte

	ctx    context.Context
	cancel context.CancelFunc
	conns  sync.WaitGroup
}

// New creates a new API server. rawLogger receives every byte exchanged
// with clients and may be log.NewRaw(nil).
func New(addr string, config ServerConfig, logger *slog.Logger, rawLogger log.RawLogger) *Server {
	if rawLogger == nil {
		rawLogger = log.NewRaw(nil)
	}
	var key []byte
	if config.Password != "" {
		// Only an empty password fails to derive.
		key, _ = auth.DeriveKey(config.Password)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		key:    key,
		addr:   addr,
		logger: logger,
		raw:    rawLogger,
		router: NewRouter(),
		config: config,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Router returns the router used by the API server so callers can register handlers.
func (a *Server) Router() *Router { return a.router }

// Config returns the server configuration.
func (a *Server) Config() ServerConfig { return a.config }

// Addr returns the listening address once started, else the configured one.
func (a *Server) Addr() string {
	if a.ln != nil {
		return a.ln.Addr().String()
	}
	return a.addr
}

// Start listens on the configured address and serves incoming API commands.
func (a *Server) Start() error {
	ln, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}
	a.ln = ln
	a.logger.Info("API listening", "addr", ln.Addr().String())
	go a.serve()
	return nil
}

// Close stops the API server and cancels running stream handlers.
func (a *Server) Close() {
	a.cancel()
	if a.ln != nil {
		_ = a.ln.Close()
	}
}

// Wait blocks until all connections have been handled.
func (a *Server) Wait() { a.conns.Wait() }

func (a *Server) serve() {
	for {
		c, err := a.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				a.logger.Info("API server stopped")
				return
			}
			a.logger.Info("API accept error", "error", err)
			return
		}
		a.conns.Add(1)
		go func() {
			defer a.conns.Done()
			a.handleConn(c)
		}()
	}
}

func (a *Server) writeError(w io.Writer, err error) {
	apiErr := WrapError(err)
	problemJSON, _ := json.Marshal(apiErr)
	fmt.Fprintf(w, "%s\n", string(problemJSON))
}

func (a *Server) writeOK(w io.Writer, rest string) {
	if rest == "" {
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "%s\n", rest)
	}
}

// splitRequest separates the path from the payload at the first whitespace.
func splitRequest(reqData string) (path, payload string) {
	loc := wsRegex.FindStringIndex(reqData)
	if loc == nil {
		return reqData, ""
	}
	return reqData[:loc[0]], reqData[loc[1]:]
}

func (a *Server) handleConn(nc net.Conn) {
	remote := nc.RemoteAddr().String()
	wire := &wireConn{Conn: nc, remote: remote, raw: a.raw}
	var conn net.Conn = wire
	r := bufio.NewReader(conn)
	owned := false
	defer func() {
		if !owned {
			_ = conn.Close()
		}
	}()

	connCtx, connCancel := context.WithCancel(a.ctx)
	defer connCancel()

	connLogger := a.logger.With("remote", remote)

	if a.config.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(a.config.ReadTimeout))
	}
	if a.key != nil || auth.IsHandshake(r) {
		sealed, err := a.authenticate(wire, r)
		if err != nil {
			connLogger.Error("api authentication failed", "error", err)
			a.writeError(wire, err)
			return
		}
		conn = sealed
		r = bufio.NewReader(sealed)
		connLogger.Debug("api connection authenticated")
	}
	bconn := &bufferedConn{Conn: conn, r: r}

	// Read until null terminator
	reqData, err := r.ReadString('\x00')
	if err != nil {
		if err == io.EOF {
			connLogger.Error("api incomplete request (no null terminator)")
		} else {
			connLogger.Error("read api data", "error", err)
		}
		return
	}
	_ = conn.SetReadDeadline(time.Time{})
	reqData = strings.TrimSuffix(reqData, "\x00")

	if reqData == "" {
		connLogger.Error("api empty command")
		a.writeError(conn, ErrBadRequest("empty request"))
		return
	}

	path, payload := splitRequest(reqData)
	if path == "" {
		connLogger.Error("api empty path")
		a.writeError(conn, ErrBadRequest("empty path"))
		return
	}

	path = strings.ToLower(path)
	connLogger.Info("api cmd", "path", path)

	if h, params := a.router.Match(path); h != nil {
		req := &Request{Ctx: connCtx, Path: path, Params: params, Payload: payload}
		res := &Response{}
		if err := h(req, res, connLogger); err != nil {
			connLogger.Error("api handler error", "path", path, "error", err)
			a.writeError(conn, err)
			return
		}
		connLogger.Debug("api handler success", "path", path)
		a.writeOK(conn, res.JSON)
		return
	}
	if sh, params := a.router.MatchStream(path); sh != nil {
		connLogger.Info("api stream begin", "path", path)
		req := &Request{Ctx: connCtx, Path: path, Params: params, Payload: payload}
		owned = true
		// Stream handler takes ownership of connection
		if err := sh(bconn, req, connLogger); err != nil {
			connLogger.Error("api stream handler error", "path", path, "error", err)
		}
		connLogger.Info("api stream end", "path", path)
		return
	}
	connLogger.Error("api unknown path", "path", path)
	a.writeError(conn, ErrNotFound(fmt.Sprintf("unknown path: %s", path)))
}

// authenticate runs the password handshake and returns the sealed
// connection. Errors are answered in plain text on the raw connection.
func (a *Server) authenticate(conn net.Conn, r *bufio.Reader) (net.Conn, error) {
	if a.key == nil {
		return nil, ErrUnauthorized("server does not use a password")
	}
	if !auth.IsHandshake(r) {
		return nil, ErrUnauthorized("authentication required")
	}
	sessionKey, err := auth.Server(r, conn, a.key)
	if errors.Is(err, auth.ErrInvalidPassword) {
		return nil, ErrUnauthorized("invalid password")
	}
	if err != nil {
		return nil, ErrBadRequest(err.Error())
	}
	// Bytes the client sent after the handshake may already sit in r.
	return auth.Wrap(&bufferedConn{Conn: conn, r: r}, sessionKey, false)
}

// wireConn reports every chunk read or written to the raw logger.
type wireConn struct {
	net.Conn
	remote string
	raw    log.RawLogger
}

func (c *wireConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 {
		c.raw.Log(c.remote, true, p[:n])
	}
	return n, err
}

func (c *wireConn) Write(p []byte) (int, error) {
	n, err := c.Conn.Write(p)
	if n > 0 {
		c.raw.Log(c.remote, false, p[:n])
	}
	return n, err
}

// bufferedConn hands stream handlers the bytes already buffered while the
// request line was read.
type bufferedConn struct {
	net.Conn
	r *bufio.Reader
}

func (c *bufferedConn) Read(p []byte) (int, error) { return c.r.Read(p) }
