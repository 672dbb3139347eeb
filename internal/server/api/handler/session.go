package handler

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/Alia5/kbdoverlay/internal/server/api"
	"github.com/Alia5/kbdoverlay/overlay"
)

// KeySession returns a stream handler for "session/{locale}".
//
// The locale may be any locale id, input method id or language tag that
// Table.MatchLocale accepts; anything else is answered with a 404 line.
// The request payload is an optional JSON object of modifier remappings,
// e.g. {"search":"ctrl"}. Afterwards the client writes one key press per
// line, "<scanCode>[ MODIFIER...]", and receives one JSON line per press:
// a ShortcutResponse, or an ApiError when nothing is bound. The line "quit"
// ends the session, as does the idle timeout.
func KeySession(t *overlay.Table, d Describer, config api.ServerConfig) api.StreamHandlerFunc {
	return func(conn net.Conn, req *api.Request, logger *slog.Logger) error {
		defer conn.Close()

		enc := json.NewEncoder(conn)
		remap := overlay.Remap{}
		if p := strings.TrimSpace(req.Payload); p != "" {
			var pairs map[string]string
			if err := json.Unmarshal([]byte(p), &pairs); err != nil {
				_ = enc.Encode(api.ErrBadRequest(fmt.Sprintf("invalid remap: %v", err)))
				return err
			}
			r, err := overlay.ParseRemap(pairs)
			if err != nil {
				_ = enc.Encode(api.ErrBadRequest(err.Error()))
				return err
			}
			remap = r
		}

		locale, err := requestLocale(t, req.Params["locale"])
		if err != nil {
			_ = enc.Encode(err)
			return err
		}
		logger.Info("key session", "locale", locale, "remapped", len(remap))

		// Closing the connection unblocks the scanner whatever deadline
		// the loop has set.
		stop := make(chan struct{})
		defer close(stop)
		go func() {
			select {
			case <-req.Ctx.Done():
				_ = conn.Close()
			case <-stop:
			}
		}()

		sc := bufio.NewScanner(conn)
		for {
			if config.SessionIdleTimeout > 0 {
				_ = conn.SetReadDeadline(time.Now().Add(config.SessionIdleTimeout))
			}
			if !sc.Scan() {
				if req.Ctx.Err() != nil {
					return nil
				}
				err := sc.Err()
				if errors.Is(err, os.ErrDeadlineExceeded) {
					logger.Info("key session idle timeout")
					return nil
				}
				return err
			}
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			if strings.EqualFold(line, "quit") {
				return nil
			}
			var reply any
			if out, err := sessionPress(t, d, locale, remap, line, config.Lang); err != nil {
				reply = api.WrapError(err)
			} else {
				reply = out
			}
			if err := enc.Encode(reply); err != nil {
				return err
			}
		}
	}
}

func sessionPress(t *overlay.Table, d Describer, locale string, remap overlay.Remap, line, lang string) (any, error) {
	fields := strings.Fields(line)
	// Extended scan codes are written with their E0 prefix as a separate byte.
	n := 1
	if len(fields) > 1 && strings.EqualFold(fields[0], "E0") {
		n = 2
	}
	code, err := parseScanCode(strings.Join(fields[:n], " "))
	if err != nil {
		return nil, err
	}
	mods, err := overlay.ParseModifiers(fields[n:]...)
	if err != nil {
		return nil, api.ErrBadRequest(err.Error())
	}
	pressed := code
	code = remap.RemapScanCode(code)
	if code == "" {
		return nil, api.ErrNotFound(fmt.Sprintf("key %s is disabled", pressed))
	}
	return lookupAction(t, d, locale, code, remap.RemapModifiers(mods), lang)
}
