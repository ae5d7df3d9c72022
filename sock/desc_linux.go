//go:build linux
// +build linux

// File: sock/desc_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-blocking stream socket creation on Linux: the socket call takes
// the non-blocking and close-on-exec flags directly.

package sock

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// NewStream creates a non-blocking stream descriptor in the given
// address family (unix.AF_INET, unix.AF_INET6, or unix.AF_UNIX).
func NewStream(family int) (*Desc, error) {
	proto := 0
	if family == unix.AF_INET || family == unix.AF_INET6 {
		proto = unix.IPPROTO_TCP
	}
	fd, err := unix.Socket(family, unix.SOCK_STREAM|unix.SOCK_NONBLOCK|unix.SOCK_CLOEXEC, proto)
	if err != nil {
		return nil, fmt.Errorf("socket create: %w", err)
	}
	return NewDesc(fd), nil
}
