// Package auth implements the optional password handshake of the lookup
// API and the encrypted connection both sides switch to after it.
//
// Handshake, client first:
//
//	client: Magic | clientNonce[32] | HMAC-SHA256(key, authLabel | clientNonce)
//	server: "OK\x00" | serverNonce[32]
//
// A server that rejects the client answers with one ApiError JSON line
// instead and closes the connection. key is derived from the password with
// PBKDF2; the session key is HKDF(key, serverNonce | clientNonce).
package auth

import (
	"crypto/hkdf"
	"crypto/pbkdf2"
	"crypto/rand"
	"crypto/sha256"
	"errors"
)

const (
	// PasswordLength is the length of generated passwords.
	PasswordLength = 16

	passwordAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	keyIterations    = 100000
	keySalt          = "kbdoverlay-api-key-v1"
	sessionLabel     = "kbdoverlay-session-v1"
	keySize          = 32
)

var (
	ErrEmptyPassword   = errors.New("password cannot be empty")
	ErrInvalidPassword = errors.New("invalid password")
)

// GeneratePassword returns a random base62 password.
func GeneratePassword() (string, error) {
	buf := make([]byte, PasswordLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = passwordAlphabet[int(b)%len(passwordAlphabet)]
	}
	return string(buf), nil
}

// DeriveKey stretches a password to a 32 byte key.
func DeriveKey(password string) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	return pbkdf2.Key(sha256.New, password, []byte(keySalt), keyIterations, keySize)
}

func sessionKey(key, serverNonce, clientNonce []byte) ([]byte, error) {
	salt := make([]byte, 0, len(serverNonce)+len(clientNonce))
	salt = append(append(salt, serverNonce...), clientNonce...)
	return hkdf.Key(sha256.New, key, salt, sessionLabel, keySize)
}
