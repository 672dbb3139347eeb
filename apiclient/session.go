package apiclient

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	apitypes "github.com/Alia5/kbdoverlay/apitypes"
)

// Session is an open key session. Each Press sends one key press and waits
// for the server's answer on the same connection.
type Session struct {
	conn net.Conn
	r    *bufio.Reader
	cfg  Config
}

// OpenSession starts a key session for a locale. remap optionally maps
// physical modifier keys to the modifiers they act as, e.g.
// {"search": "ctrl"}.
func (c *Client) OpenSession(ctx context.Context, locale string, remap map[string]string) (*Session, error) {
	t := c.transport
	if t.mock != nil {
		return nil, errors.New("session: not supported with mock transport")
	}
	var payload any
	if len(remap) > 0 {
		payload = remap
	}
	conn, err := t.send(ctx, "session/{locale}", payload, map[string]string{"locale": locale})
	if err != nil {
		return nil, err
	}
	return &Session{conn: conn, r: bufio.NewReader(conn), cfg: t.cfg}, nil
}

// Press reports a key press and returns the bound action. Unbound presses
// return an *apitypes.ApiError.
func (s *Session) Press(scanCode string, modifiers ...string) (*apitypes.ShortcutResponse, error) {
	line := strings.Join(append([]string{scanCode}, modifiers...), " ")
	if s.cfg.WriteTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	}
	if _, err := fmt.Fprintf(s.conn, "%s\n", line); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	if s.cfg.ReadTimeout > 0 {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}
	resp, err := s.r.ReadString('\n')
	if err != nil && resp == "" {
		return nil, fmt.Errorf("read: %w", err)
	}
	return parse[apitypes.ShortcutResponse](strings.TrimSuffix(resp, "\n"))
}

// Close ends the session.
func (s *Session) Close() error {
	_, _ = fmt.Fprint(s.conn, "quit\n")
	return s.conn.Close()
}
