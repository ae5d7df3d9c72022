// File: sock/writev_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sock_test

import (
	"bytes"
	"testing"

	"github.com/momentics/sockio/api"
	"github.com/momentics/sockio/sock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestWritevGathersBuffers(t *testing.T) {
	a, b := pair(t)
	w, r := sock.New(a), sock.New(b)

	res, err := w.Writev([][]byte{[]byte("hello "), []byte("gather "), []byte("world")})
	require.NoError(t, err)
	require.False(t, res.Blocked())
	assert.Equal(t, len("hello gather world"), res.Count())

	buf := make([]byte, 64)
	rres, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello gather world"), buf[:rres.Count()])
}

func TestWritevAtPlatformLimit(t *testing.T) {
	a, b := pair(t)
	w, r := sock.New(a), sock.New(b)

	limit := sock.MaxVectors()
	bufs := make([][]byte, limit)
	for i := range bufs {
		bufs[i] = []byte{byte(i)}
	}
	res, err := w.Writev(bufs)
	require.NoError(t, err, "a batch at the limit must reach the kernel")
	require.False(t, res.Blocked())
	assert.Equal(t, limit, res.Count())

	got := make([]byte, 0, limit)
	tmp := make([]byte, limit)
	for len(got) < limit {
		rres, err := r.Read(tmp)
		require.NoError(t, err)
		require.False(t, rres.Blocked())
		got = append(got, tmp[:rres.Count()]...)
	}
	want := make([]byte, limit)
	for i := range want {
		want[i] = byte(i)
	}
	assert.True(t, bytes.Equal(want, got))
}

func TestWritevAboveLimitRejected(t *testing.T) {
	a, _ := pair(t)
	w := sock.New(a)

	bufs := make([][]byte, sock.MaxVectors()+1)
	for i := range bufs {
		bufs[i] = []byte{0}
	}
	_, err := w.Writev(bufs)
	assert.ErrorIs(t, err, api.ErrTooManyVectors,
		"an oversized batch is rejected before any syscall")
}

func TestWritevWouldBlockOnFullBuffer(t *testing.T) {
	a, _ := pair(t)
	w := sock.New(a)
	_ = unix.SetsockoptInt(a.Fd(), unix.SOL_SOCKET, unix.SO_SNDBUF, 4096)

	chunk := make([]byte, 64<<10)
	for i := 0; i < 10000; i++ {
		res, err := w.Write(chunk)
		require.NoError(t, err)
		if res.Blocked() {
			break
		}
	}

	res, err := w.Writev([][]byte{[]byte("more")})
	require.NoError(t, err)
	assert.True(t, res.Blocked())
	assert.Equal(t, 0, res.Count())
}

func TestMaxVectorsIsPositive(t *testing.T) {
	assert.Greater(t, sock.MaxVectors(), 0)
}
