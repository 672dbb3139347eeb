package handler_test

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/internal/server/api/handler"
	htesting "github.com/Alia5/kbdoverlay/internal/testing"
	"github.com/Alia5/kbdoverlay/overlay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialSession(t *testing.T, cfg api.ServerConfig, request string) (net.Conn, *bufio.Reader) {
	t.Helper()
	c, r, _ := dialSessionServer(t, cfg, request)
	return c, r
}

// dialSessionServer also returns the function that shuts the server down.
func dialSessionServer(t *testing.T, cfg api.ServerConfig, request string) (net.Conn, *bufio.Reader, func()) {
	t.Helper()
	addr, done := htesting.StartAPIServer(t, cfg, func(r *api.Router, _ *api.Server) {
		handler.Register(r, overlay.Default(), nil, cfg, "test")
	})
	var once sync.Once
	shutdown := func() { once.Do(done) }
	t.Cleanup(shutdown)
	c, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	_, err = fmt.Fprintf(c, "%s\x00", request)
	require.NoError(t, err)
	_ = c.SetReadDeadline(time.Now().Add(2 * time.Second))
	return c, bufio.NewReader(c), shutdown
}

func TestKeySession(t *testing.T) {
	c, r := dialSession(t, api.ServerConfig{SessionIdleTimeout: time.Second}, "session/de")

	_, err := fmt.Fprint(c, "\n0E alt\n01 SHIFT\n")
	require.NoError(t, err)

	line, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"descriptor":"backspace ALT","action":"keyboardOverlayDelete","locale":"de","scanCode":"0E"}`, line)
	line, err = r.ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"descriptor":"esc SHIFT","action":"keyboardOverlayTaskManager","locale":"de","scanCode":"01"}`, line)

	_, err = fmt.Fprint(c, "14 HYPER\nquit\n")
	require.NoError(t, err)
	line, err = r.ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":400,"title":"Bad Request","detail":"unknown modifier \"HYPER\""}`, line)

	rest, err := io.ReadAll(r)
	assert.NoError(t, err)
	assert.Empty(t, rest)
}

func TestKeySession_DisabledModifierKey(t *testing.T) {
	c, r := dialSession(t, api.ServerConfig{}, `session/en_US {"search":"disabled"}`)

	_, err := fmt.Fprint(c, "E0 5B\n")
	require.NoError(t, err)
	line, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":404,"title":"Not Found","detail":"key E0 5B is disabled"}`, line)
}

func TestKeySession_BadRemap(t *testing.T) {
	_, r := dialSession(t, api.ServerConfig{}, `session/en_US {"hyper":"ctrl"}`)

	line, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":400,"title":"Bad Request","detail":"unknown modifier \"hyper\""}`, line)
	_, err = r.ReadString('\n')
	assert.ErrorIs(t, err, io.EOF)
}

func TestKeySession_IdleTimeout(t *testing.T) {
	_, r := dialSession(t, api.ServerConfig{SessionIdleTimeout: 50 * time.Millisecond}, "session/fr")

	start := time.Now()
	_, err := r.ReadString('\n')
	assert.ErrorIs(t, err, io.EOF)
	assert.Less(t, time.Since(start), time.Second)
}

func TestKeySession_Remap(t *testing.T) {
	c, r := dialSession(t, api.ServerConfig{}, `session/en_US {"search":"ctrl"}`)

	_, err := fmt.Fprint(c, "14 SEARCH\n")
	require.NoError(t, err)
	line, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"descriptor":"t CTRL","action":"keyboardOverlayNewTab","locale":"en_US","scanCode":"14"}`, line)
}

func TestKeySession_UnknownLocale(t *testing.T) {
	_, r := dialSession(t, api.ServerConfig{}, "session/zz")

	line, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":404,"title":"Not Found","detail":"unknown locale: zz"}`, line)
	_, err = r.ReadString('\n')
	assert.ErrorIs(t, err, io.EOF)
}

func TestKeySession_InputMethodLocale(t *testing.T) {
	c, r := dialSession(t, api.ServerConfig{}, "session/xkb:de::ger")

	_, err := fmt.Fprint(c, "0E alt\n")
	require.NoError(t, err)
	line, err := r.ReadString('\n')
	require.NoError(t, err)
	assert.Contains(t, line, `"locale":"de"`)
}

func TestKeySession_ClosedOnShutdown(t *testing.T) {
	c, r, shutdown := dialSessionServer(t, api.ServerConfig{SessionIdleTimeout: time.Hour}, "session/de")

	// One answered press proves the session loop is running.
	_, err := fmt.Fprint(c, "0E alt\n")
	require.NoError(t, err)
	_, err = r.ReadString('\n')
	require.NoError(t, err)

	stopped := make(chan struct{})
	go func() {
		shutdown()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop while a key session was open")
	}

	_ = c.SetReadDeadline(time.Now().Add(time.Second))
	_, err = r.ReadString('\n')
	assert.ErrorIs(t, err, io.EOF)
}
