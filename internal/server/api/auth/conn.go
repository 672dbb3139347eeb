package auth

import (
	"bytes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

const maxFrame = 1 << 20

// Conn seals every Write into one frame, a big endian uint32 length
// followed by the ChaCha20-Poly1305 ciphertext. Nonces are not sent: each
// side counts its frames and the first nonce byte tells the directions
// apart, so both sides can share one key.
type Conn struct {
	net.Conn
	aead cipher.AEAD
	out  byte
	in   byte

	wmu     sync.Mutex
	sendCtr uint64
	recvCtr uint64
	plain   bytes.Buffer
}

// Wrap switches conn to sealed frames. client selects the direction of
// this end.
func Wrap(conn net.Conn, sessionKey []byte, client bool) (*Conn, error) {
	aead, err := chacha20poly1305.New(sessionKey)
	if err != nil {
		return nil, err
	}
	c := &Conn{Conn: conn, aead: aead, out: 's', in: 'c'}
	if client {
		c.out, c.in = 'c', 's'
	}
	return c, nil
}

func (c *Conn) nonce(dir byte, ctr uint64) []byte {
	n := make([]byte, chacha20poly1305.NonceSize)
	n[0] = dir
	binary.BigEndian.PutUint64(n[4:], ctr)
	return n
}

func (c *Conn) Write(p []byte) (int, error) {
	c.wmu.Lock()
	defer c.wmu.Unlock()

	frame := make([]byte, 4, 4+len(p)+c.aead.Overhead())
	frame = c.aead.Seal(frame, c.nonce(c.out, c.sendCtr), p, nil)
	binary.BigEndian.PutUint32(frame[:4], uint32(len(frame)-4))
	c.sendCtr++
	if _, err := c.Conn.Write(frame); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (c *Conn) Read(p []byte) (int, error) {
	for c.plain.Len() == 0 {
		var hdr [4]byte
		if _, err := io.ReadFull(c.Conn, hdr[:]); err != nil {
			return 0, err
		}
		n := binary.BigEndian.Uint32(hdr[:])
		if n > maxFrame {
			return 0, fmt.Errorf("sealed frame of %d bytes exceeds limit", n)
		}
		ct := make([]byte, n)
		if _, err := io.ReadFull(c.Conn, ct); err != nil {
			return 0, err
		}
		pt, err := c.aead.Open(ct[:0], c.nonce(c.in, c.recvCtr), ct, nil)
		if err != nil {
			return 0, err
		}
		c.recvCtr++
		c.plain.Write(pt)
	}
	return c.plain.Read(p)
}
