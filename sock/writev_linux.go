//go:build linux
// +build linux

// File: sock/writev_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vectored write on Linux: one writev(2) syscall, with the buffer
// count limit fixed at compile time.

package sock

import "golang.org/x/sys/unix"

// uioMaxIOV mirrors UIO_MAXIOV from the kernel headers; the kernel
// rejects larger vectors with EINVAL instead of clipping them.
const uioMaxIOV = 1024

// MaxVectors returns the largest buffer count one Writev call accepts.
func MaxVectors() int { return uioMaxIOV }

func writevRaw(fd int, bufs [][]byte) (int, error) {
	return unix.Writev(fd, bufs)
}
