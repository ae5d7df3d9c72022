//go:build darwin
// +build darwin

// File: sock/writev_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vectored write on Darwin: one writev(2) syscall, same wrapper shape
// as Linux. IOV_MAX is a runtime property on this family, queried once
// with the documented Darwin value as fallback.

package sock

import (
	"sync"

	"golang.org/x/sys/unix"
)

const defaultIOVMax = 1024

var iovMax = sync.OnceValue(func() int {
	v, err := unix.SysctlUint32("kern.iov_max")
	if err != nil || v == 0 {
		return defaultIOVMax
	}
	return int(v)
})

// MaxVectors returns the largest buffer count one Writev call accepts.
func MaxVectors() int { return iovMax() }

func writevRaw(fd int, bufs [][]byte) (int, error) {
	return unix.Writev(fd, bufs)
}
