package api_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/apiclient"
	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/log"
	"github.com/Alia5/kbdoverlay/internal/server/api"
	th "github.com/Alia5/kbdoverlay/internal/testing"
)

type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestAPIServer_Requests(t *testing.T) {
	addr, done := th.StartAPIServer(t, api.ServerConfig{}, func(r *api.Router, _ *api.Server) {
		r.Register("echo/{word}", func(req *api.Request, res *api.Response, _ *slog.Logger) error {
			res.JSON = fmt.Sprintf(`{"word":%q,"payload":%q}`, req.Params["word"], req.Payload)
			return nil
		})
		r.Register("fail", func(*api.Request, *api.Response, *slog.Logger) error {
			return api.ErrBadRequest("nope")
		})
		r.Register("boom", func(*api.Request, *api.Response, *slog.Logger) error {
			return errors.New("kaput")
		})
	})
	defer done()

	tests := []struct {
		name     string
		cmd      string
		expected string
	}{
		{"params and payload", "ECHO/Hi multi word\npayload", `{"word":"hi","payload":"multi word\npayload"}`},
		{"api error", "fail", `{"status":400,"title":"Bad Request","detail":"nope"}`},
		{"plain error is internal", "boom", `{"status":500,"title":"Internal Server Error","detail":"kaput"}`},
		{"unknown path", "nothing/here", `{"status":404,"title":"Not Found","detail":"unknown path: nothing/here"}`},
		{"empty request", "", `{"status":400,"title":"Bad Request","detail":"empty request"}`},
		{"empty param segment", "echo/", `{"status":404,"title":"Not Found","detail":"unknown path: echo/"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.expected, th.ExecCmd(t, addr, tt.cmd))
		})
	}
}

func TestAPIServer_StreamGetsBufferedBytes(t *testing.T) {
	addr, done := th.StartAPIServer(t, api.ServerConfig{}, func(r *api.Router, _ *api.Server) {
		r.RegisterStream("upper/{id}", func(conn net.Conn, req *api.Request, _ *slog.Logger) error {
			defer conn.Close()
			sc := bufio.NewScanner(conn)
			for sc.Scan() {
				fmt.Fprintf(conn, "%s:%s\n", req.Params["id"], strings.ToUpper(sc.Text()))
			}
			return sc.Err()
		})
	})
	defer done()

	c, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c.Close()

	// The first line arrives in the same write as the request.
	_, err = fmt.Fprint(c, "upper/7\x00one\n")
	require.NoError(t, err)
	r := bufio.NewReader(c)
	_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
	line, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "7:ONE\n", line)

	_, err = fmt.Fprint(c, "two\n")
	require.NoError(t, err)
	line, err = r.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "7:TWO\n", line)
}

func TestAPIServer_StreamClosedOnShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	_ = ln.Close()

	started := make(chan struct{})
	apiSrv := api.New(addr, api.ServerConfig{}, slog.Default(), nil)
	apiSrv.Router().RegisterStream("wait", func(conn net.Conn, req *api.Request, _ *slog.Logger) error {
		defer conn.Close()
		close(started)
		<-req.Ctx.Done()
		return nil
	})
	require.NoError(t, apiSrv.Start())

	c, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c.Close()
	_, err = fmt.Fprint(c, "wait\x00")
	require.NoError(t, err)
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("stream handler did not start")
	}

	apiSrv.Close()
	apiSrv.Wait()

	_ = c.SetReadDeadline(time.Now().Add(time.Second))
	_, err = io.ReadAll(c)
	assert.NoError(t, err)
}

func TestAPIServer_ReadTimeout(t *testing.T) {
	addr, done := th.StartAPIServer(t, api.ServerConfig{ReadTimeout: 50 * time.Millisecond}, nil)
	defer done()

	c, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer c.Close()
	_, err = fmt.Fprint(c, "ping")
	require.NoError(t, err)

	_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
	out, err := io.ReadAll(c)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestAPIServer_RawLogging(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	_ = ln.Close()

	var buf syncBuffer
	apiSrv := api.New(addr, api.ServerConfig{}, slog.Default(), log.NewRaw(&buf))
	apiSrv.Router().Register("ping", func(_ *api.Request, res *api.Response, _ *slog.Logger) error {
		res.JSON = `{"ok":true}`
		return nil
	})
	require.NoError(t, apiSrv.Start())
	assert.Equal(t, addr, apiSrv.Addr())

	assert.JSONEq(t, `{"ok":true}`, th.ExecCmd(t, addr, "ping"))
	apiSrv.Close()
	apiSrv.Wait()

	out := buf.String()
	assert.Contains(t, out, `C->S 5 bytes: "ping\x00"`)
	assert.Contains(t, out, `S->C 12 bytes: "{\"ok\":true}\n"`)
}

func TestAPIServer_Password(t *testing.T) {
	addr, done := th.StartAPIServer(t, api.ServerConfig{Password: "s3cret"}, func(r *api.Router, _ *api.Server) {
		r.Register("locale/{id}/key", func(req *api.Request, res *api.Response, _ *slog.Logger) error {
			res.JSON = fmt.Sprintf(`{"locale":%q,"scanCode":%q}`, req.Params["id"], req.Payload)
			return nil
		})
		r.RegisterStream("session/{locale}", func(conn net.Conn, req *api.Request, _ *slog.Logger) error {
			defer conn.Close()
			sc := bufio.NewScanner(conn)
			for sc.Scan() {
				fmt.Fprintf(conn, "{\"locale\":%q,\"press\":%q}\n", req.Params["locale"], sc.Text())
			}
			return sc.Err()
		})
	})
	defer done()

	t.Run("correct password", func(t *testing.T) {
		resp, err := apiclient.NewTransportWithPassword(addr, "s3cret").Do("locale/{id}/key", "E0 4B", map[string]string{"id": "de"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"locale":"de","scanCode":"E0 4B"}`, resp)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := apiclient.NewTransportWithPassword(addr, "guess").Do("locale/{id}/key", "12", map[string]string{"id": "fr"})
		var apiErr *apitypes.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 401, apiErr.Status)
		assert.Equal(t, "invalid password", apiErr.Detail)
	})

	t.Run("no password", func(t *testing.T) {
		assert.JSONEq(t, `{"status":401,"title":"Unauthorized","detail":"authentication required"}`,
			th.ExecCmd(t, addr, "locale/fr/key 12"))
	})

	t.Run("session over sealed connection", func(t *testing.T) {
		s, err := apiclient.NewWithPassword(addr, "s3cret").OpenSession(context.Background(), "fr", nil)
		require.NoError(t, err)
		defer s.Close()
		for _, press := range []string{"12", "E0 5B SHIFT"} {
			resp, err := s.Press(press)
			require.NoError(t, err)
			assert.Equal(t, "fr", resp.Locale)
		}
	})
}

func TestAPIServer_HandshakeWithoutPassword(t *testing.T) {
	addr, done := th.StartAPIServer(t, api.ServerConfig{}, nil)
	defer done()

	_, err := apiclient.NewTransportWithPassword(addr, "s3cret").Do("ping", nil, nil)
	var apiErr *apitypes.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "server does not use a password", apiErr.Detail)
}

func TestRouter_Patterns(t *testing.T) {
	r := api.NewRouter()
	h := func(*api.Request, *api.Response, *slog.Logger) error { return nil }
	r.Register("Locale/{id}/Key", h)
	r.RegisterStream("session/{locale}", func(net.Conn, *api.Request, *slog.Logger) error { return nil })

	assert.Equal(t, []string{"locale/{id}/key", "session/{locale}"}, r.Patterns())

	got, params := r.Match("LOCALE/pt_BR/key")
	require.NotNil(t, got)
	assert.Equal(t, map[string]string{"id": "pt_br"}, params)

	got, _ = r.Match("session/en_US")
	assert.Nil(t, got)
	sh, params := r.MatchStream("session/en_US")
	require.NotNil(t, sh)
	assert.Equal(t, map[string]string{"locale": "en_us"}, params)
}
