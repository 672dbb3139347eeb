package auth_test

import (
	"bufio"
	"bytes"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/kbdoverlay/apitypes"
	"github.com/Alia5/kbdoverlay/internal/server/api/auth"
)

func TestGeneratePassword(t *testing.T) {
	a, err := auth.GeneratePassword()
	require.NoError(t, err)
	assert.Regexp(t, "^[0-9A-Za-z]{16}$", a)

	b, err := auth.GeneratePassword()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDeriveKey(t *testing.T) {
	k1, err := auth.DeriveKey("hunter2")
	require.NoError(t, err)
	assert.Len(t, k1, 32)

	k2, err := auth.DeriveKey("hunter2")
	require.NoError(t, err)
	assert.Equal(t, k1, k2)

	k3, err := auth.DeriveKey("hunter3")
	require.NoError(t, err)
	assert.NotEqual(t, k1, k3)

	_, err = auth.DeriveKey("")
	assert.ErrorIs(t, err, auth.ErrEmptyPassword)
}

func TestIsHandshake(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{auth.Magic, true},
		{"ping\x00", false},
		{"locale/de/key E0 4B\x00", false},
		{"", false},
	}
	for _, tt := range tests {
		r := bufio.NewReader(strings.NewReader(tt.input))
		assert.Equal(t, tt.want, auth.IsHandshake(r), "%q", tt.input)
	}
}

// handshake runs both sides over a pipe and returns the session keys.
func handshake(t *testing.T, clientPwd, serverPwd string) (clientKey, serverKey []byte, clientErr, serverErr error) {
	t.Helper()
	ck, err := auth.DeriveKey(clientPwd)
	require.NoError(t, err)
	sk, err := auth.DeriveKey(serverPwd)
	require.NoError(t, err)

	cc, sc := net.Pipe()
	defer cc.Close()
	done := make(chan struct{})
	go func() {
		defer close(done)
		serverKey, serverErr = auth.Server(bufio.NewReader(sc), sc, sk)
		if serverErr != nil {
			// what the API server sends on rejection
			_, _ = sc.Write([]byte(`{"status":401,"title":"Unauthorized","detail":"invalid password"}` + "\n"))
		}
		_ = sc.Close()
	}()
	clientKey, clientErr = auth.Client(cc, ck)
	<-done
	return
}

func TestHandshake(t *testing.T) {
	ck, sk, cerr, serr := handshake(t, "secret", "secret")
	require.NoError(t, cerr)
	require.NoError(t, serr)
	assert.Equal(t, ck, sk)
	assert.Len(t, ck, 32)
}

func TestHandshakeWrongPassword(t *testing.T) {
	_, _, cerr, serr := handshake(t, "guess", "secret")
	assert.ErrorIs(t, serr, auth.ErrInvalidPassword)

	var apiErr *apitypes.ApiError
	require.ErrorAs(t, cerr, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
}

func TestServerRejectsTruncatedHello(t *testing.T) {
	key, err := auth.DeriveKey("secret")
	require.NoError(t, err)
	var out bytes.Buffer
	_, err = auth.Server(bufio.NewReader(strings.NewReader(auth.Magic+"short")), &out, key)
	assert.ErrorContains(t, err, "read handshake")
	assert.Zero(t, out.Len())
}
