// File: sock/sock_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Loopback round-trip tests over a non-blocking socketpair.

package sock_test

import (
	"testing"

	"github.com/momentics/sockio/api"
	"github.com/momentics/sockio/endpoint"
	"github.com/momentics/sockio/sock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// pair returns two connected non-blocking stream descriptors.
func pair(t *testing.T) (*sock.Desc, *sock.Desc) {
	t.Helper()
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	require.NoError(t, err)
	for _, fd := range fds {
		require.NoError(t, unix.SetNonblock(fd, true))
	}
	a, b := sock.NewDesc(fds[0]), sock.NewDesc(fds[1])
	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})
	return a, b
}

func TestWriteReadRoundTrip(t *testing.T) {
	a, b := pair(t)
	w, r := sock.New(a), sock.New(b)

	msg := []byte("hello, kernel")
	res, err := w.Write(msg)
	require.NoError(t, err)
	require.False(t, res.Blocked())
	assert.Equal(t, len(msg), res.Count(), "kernel must consume the full small write")

	buf := make([]byte, 64)
	rres, err := r.Read(buf)
	require.NoError(t, err)
	require.False(t, rres.Blocked())
	assert.Equal(t, msg, buf[:rres.Count()])
}

func TestWriteEmptyIsCompletedZero(t *testing.T) {
	a, _ := pair(t)
	w := sock.New(a)

	res, err := w.Write(nil)
	require.NoError(t, err)
	assert.False(t, res.Blocked())
	assert.Equal(t, 0, res.Count())
}

func TestReadEmptyQueueWouldBlock(t *testing.T) {
	a, _ := pair(t)
	r := sock.New(a)

	res, err := r.Read(make([]byte, 16))
	require.NoError(t, err, "would-block must not surface as an error")
	assert.True(t, res.Blocked())
	assert.Equal(t, 0, res.Count())
}

func TestWriteFillsBufferThenBlocks(t *testing.T) {
	a, _ := pair(t)
	w := sock.New(a)
	_ = unix.SetsockoptInt(a.Fd(), unix.SOL_SOCKET, unix.SO_SNDBUF, 4096)

	chunk := make([]byte, 64<<10)
	blocked := false
	for i := 0; i < 10000; i++ {
		res, err := w.Write(chunk)
		require.NoError(t, err)
		if res.Blocked() {
			assert.Equal(t, 0, res.Count(), "single-buffer writes never block with partial progress")
			blocked = true
			break
		}
	}
	assert.True(t, blocked, "an undrained peer must eventually yield WouldBlock")
}

func TestReadAfterPeerCloseCompletesZero(t *testing.T) {
	a, b := pair(t)
	r := sock.New(a)
	require.NoError(t, b.Close())

	res, err := r.Read(make([]byte, 16))
	require.NoError(t, err)
	assert.False(t, res.Blocked())
	assert.Equal(t, 0, res.Count())
}

func TestClosedSocketFailsFastEverywhere(t *testing.T) {
	a, _ := pair(t)
	s := sock.New(a)
	require.NoError(t, a.Close())

	_, err := s.Read(make([]byte, 1))
	assert.ErrorIs(t, err, api.ErrNotOpen)

	_, err = s.Write([]byte("x"))
	assert.ErrorIs(t, err, api.ErrNotOpen)

	_, err = s.Writev([][]byte{{1}, {2}})
	assert.ErrorIs(t, err, api.ErrNotOpen)

	_, err = s.SendFile(0, 0, 1)
	assert.ErrorIs(t, err, api.ErrNotOpen)

	_, err = s.Connect(endpoint.IPv4([4]byte{127, 0, 0, 1}, 1))
	assert.ErrorIs(t, err, api.ErrNotOpen)

	assert.ErrorIs(t, s.FinishConnect(), api.ErrNotOpen)
}

func TestCloseIsIdempotent(t *testing.T) {
	a, _ := pair(t)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
	assert.False(t, a.IsOpen())
}
