package auth

import (
	"bufio"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Alia5/kbdoverlay/apitypes"
)

const (
	// Magic starts every handshake. Its first byte never begins a request
	// path, so one peeked byte tells the two apart.
	Magic     = "\x01kbd1"
	NonceSize = 32

	authLabel = "kbdoverlay-auth-v1"
	accepted  = "OK\x00"
)

// IsHandshake reports whether the next byte on r starts a handshake.
func IsHandshake(r *bufio.Reader) bool {
	b, err := r.Peek(1)
	return err == nil && b[0] == Magic[0]
}

func clientMAC(key, clientNonce []byte) []byte {
	mac := hmac.New(sha256.New, key)
	_, _ = mac.Write([]byte(authLabel))
	_, _ = mac.Write(clientNonce)
	return mac.Sum(nil)
}

// Client runs the client side of the handshake on a fresh connection and
// returns the session key. A rejection by the server is returned as
// *apitypes.ApiError.
func Client(rw io.ReadWriter, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("handshake: missing key")
	}
	clientNonce := make([]byte, NonceSize)
	if _, err := rand.Read(clientNonce); err != nil {
		return nil, fmt.Errorf("generate client nonce: %w", err)
	}
	msg := make([]byte, 0, len(Magic)+NonceSize+sha256.Size)
	msg = append(msg, Magic...)
	msg = append(msg, clientNonce...)
	msg = append(msg, clientMAC(key, clientNonce)...)
	if _, err := rw.Write(msg); err != nil {
		return nil, fmt.Errorf("write handshake: %w", err)
	}

	prefix := make([]byte, len(accepted))
	if _, err := io.ReadFull(rw, prefix); err != nil {
		return nil, fmt.Errorf("read handshake response: %w", err)
	}
	if string(prefix) != accepted {
		rest, _ := io.ReadAll(rw)
		line := strings.TrimSuffix(string(prefix)+string(rest), "\n")
		var apiErr apitypes.ApiError
		if err := json.Unmarshal([]byte(line), &apiErr); err == nil && apiErr.Status != 0 {
			return nil, &apiErr
		}
		return nil, fmt.Errorf("invalid handshake response: %q", line)
	}
	serverNonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rw, serverNonce); err != nil {
		return nil, fmt.Errorf("read server nonce: %w", err)
	}
	return sessionKey(key, serverNonce, clientNonce)
}

// Server runs the server side of the handshake. The caller has checked
// IsHandshake. A wrong password yields ErrInvalidPassword and nothing is
// written.
func Server(r *bufio.Reader, w io.Writer, key []byte) ([]byte, error) {
	hello := make([]byte, len(Magic)+NonceSize+sha256.Size)
	if _, err := io.ReadFull(r, hello); err != nil {
		return nil, fmt.Errorf("read handshake: %w", err)
	}
	if string(hello[:len(Magic)]) != Magic {
		return nil, fmt.Errorf("handshake: unsupported version %q", hello[:len(Magic)])
	}
	clientNonce := hello[len(Magic) : len(Magic)+NonceSize]
	if !hmac.Equal(hello[len(Magic)+NonceSize:], clientMAC(key, clientNonce)) {
		return nil, ErrInvalidPassword
	}

	serverNonce := make([]byte, NonceSize)
	if _, err := rand.Read(serverNonce); err != nil {
		return nil, fmt.Errorf("generate server nonce: %w", err)
	}
	if _, err := w.Write(append([]byte(accepted), serverNonce...)); err != nil {
		return nil, fmt.Errorf("write handshake response: %w", err)
	}
	return sessionKey(key, serverNonce, clientNonce)
}
