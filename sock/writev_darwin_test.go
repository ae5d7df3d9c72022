//go:build darwin
// +build darwin

// File: sock/writev_darwin_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// The Darwin gather must be the kernel's writev, not an emulation;
// this pins the wrapper to the single-syscall signature.
var _ func(fd int, iovs [][]byte) (int, error) = unix.Writev

func TestWritevRawGathersInOneCall(t *testing.T) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	require.NoError(t, err)
	defer unix.Close(fds[0])
	defer unix.Close(fds[1])
	require.NoError(t, unix.SetNonblock(fds[0], true))

	n, err := writevRaw(fds[0], [][]byte{[]byte("one "), []byte("call")})
	require.NoError(t, err)
	assert.Equal(t, len("one call"), n)

	buf := make([]byte, 16)
	rn, err := unix.Read(fds[1], buf)
	require.NoError(t, err)
	assert.Equal(t, []byte("one call"), buf[:rn])
}

func TestWritevRawSurfacesGenuineErrors(t *testing.T) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	require.NoError(t, err)
	defer unix.Close(fds[0])
	require.NoError(t, unix.SetNonblock(fds[0], true))
	require.NoError(t, unix.Close(fds[1]))

	// Writing into a closed peer must fail loudly, never be folded
	// into a short completed gather.
	_, err = writevRaw(fds[0], [][]byte{[]byte("x"), []byte("y")})
	assert.Error(t, err)
}
