package apiclient_test

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/Alia5/kbdoverlay/apiclient"
	"github.com/Alia5/kbdoverlay/apitypes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingServer accepts one connection, records the framed request and
// answers with reply. Lines the client sends afterwards are recorded too
// and each is answered with a canned shortcut line.
type recordingServer struct {
	addr     string
	requests chan string
	lines    chan string
}

func startRecordingServer(t *testing.T, reply string) *recordingServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	s := &recordingServer{addr: ln.Addr().String(), requests: make(chan string, 1), lines: make(chan string, 8)}
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.SetDeadline(time.Now().Add(2 * time.Second))
		r := bufio.NewReader(conn)
		req, err := r.ReadString('\x00')
		if err != nil {
			return
		}
		s.requests <- req
		if reply != "" {
			_, _ = fmt.Fprint(conn, reply)
			return
		}
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimSuffix(line, "\n")
			s.lines <- line
			if line == "quit" {
				return
			}
			fields := strings.Fields(line)
			_, _ = fmt.Fprintf(conn, `{"descriptor":"t CTRL","action":"keyboardOverlayNewTab","scanCode":%q}`+"\n", fields[0])
		}
	}()
	return s
}

func (s *recordingServer) request(t *testing.T) string {
	t.Helper()
	select {
	case req := <-s.requests:
		return req
	case <-time.After(2 * time.Second):
		t.Fatal("no request received")
		return ""
	}
}

func TestTransportRequestFraming(t *testing.T) {
	cases := []struct {
		name     string
		path     string
		payload  any
		params   map[string]string
		expected string
	}{
		{
			name:     "no payload",
			path:     "ping",
			expected: "ping\x00",
		},
		{
			name:     "empty string payload is dropped",
			path:     "layout/list",
			payload:  "",
			expected: "layout/list\x00",
		},
		{
			name:     "extended scan code keeps its space",
			path:     "locale/{id}/key",
			payload:  "E0 4B",
			params:   map[string]string{"id": "pt_BR"},
			expected: "locale/pt_br/key E0 4B\x00",
		},
		{
			name:     "descriptor with modifiers",
			path:     "shortcut/resolve",
			payload:  "t CTRL",
			expected: "shortcut/resolve t CTRL\x00",
		},
		{
			name:     "bytes payload sent as-is",
			path:     "shortcut/list",
			payload:  []byte("de"),
			expected: "shortcut/list de\x00",
		},
		{
			name:     "input method id",
			path:     "resolve",
			payload:  "xkb:us:colemak:eng",
			expected: "resolve xkb:us:colemak:eng\x00",
		},
		{
			name:     "action request marshaled as json",
			path:     "shortcut/action",
			payload:  apitypes.ActionRequest{Locale: "de", ScanCode: "0E", Modifiers: []string{"ALT"}, Lang: "de"},
			expected: `shortcut/action {"locale":"de","scanCode":"0E","modifiers":["ALT"],"lang":"de"}` + "\x00",
		},
		{
			name:     "multi-line payload",
			path:     "shortcut/action",
			payload:  "{\n\"locale\":\"fr\"\n}",
			expected: "shortcut/action {\n\"locale\":\"fr\"\n}\x00",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := startRecordingServer(t, `{"ok":true}`+"\n")
			out, err := apiclient.NewTransport(srv.addr).Do(tc.path, tc.payload, tc.params)
			require.NoError(t, err)
			assert.Equal(t, `{"ok":true}`, out)
			assert.Equal(t, tc.expected, srv.request(t))
		})
	}
}

func TestTransportKeepsResponseNewlines(t *testing.T) {
	srv := startRecordingServer(t, "{\n  \"locale\": \"ja\",\n  \"exact\": true\n}\n")
	out, err := apiclient.NewTransport(srv.addr).Do("resolve", "ja-JP", nil)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"locale\": \"ja\",\n  \"exact\": true\n}", out)
	assert.Equal(t, "resolve ja-JP\x00", srv.request(t))
}

func TestSessionFraming(t *testing.T) {
	srv := startRecordingServer(t, "")
	c := apiclient.New(srv.addr)

	s, err := c.OpenSession(context.Background(), "fr", map[string]string{"search": "ctrl"})
	require.NoError(t, err)
	assert.Equal(t, `session/fr {"search":"ctrl"}`+"\x00", srv.request(t))

	resp, err := s.Press("14", "SEARCH")
	require.NoError(t, err)
	assert.Equal(t, "t CTRL", resp.Descriptor)
	assert.Equal(t, "14", resp.ScanCode)
	assert.Equal(t, "14 SEARCH", <-srv.lines)

	_, err = s.Press("E0 5B")
	require.NoError(t, err)
	assert.Equal(t, "E0 5B", <-srv.lines)

	require.NoError(t, s.Close())
	assert.Equal(t, "quit", <-srv.lines)
}

func TestSessionWithoutRemap(t *testing.T) {
	srv := startRecordingServer(t, "")
	s, err := apiclient.New(srv.addr).OpenSession(context.Background(), "en_US_colemak", nil)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, "session/en_us_colemak\x00", srv.request(t))
}

func TestTransportDialError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	_ = ln.Close()

	cfg := apiclient.Config{DialTimeout: 200 * time.Millisecond}
	_, err = apiclient.NewTransportWithConfig(addr, &cfg).DoCtx(context.Background(), "ping", nil, nil)
	assert.ErrorContains(t, err, "dial")
}
