//go:build darwin
// +build darwin

// File: sock/desc_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-blocking stream socket creation on Darwin: no socket-call flags
// here, the descriptor is switched to non-blocking after creation.

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
	fd, err := unix.Socket(family, unix.SOCK_STREAM, proto)
	if err != nil {
		return nil, fmt.Errorf("socket create: %w", err)
	}
	unix.CloseOnExec(fd)
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("set nonblock: %w", err)
	}
	return NewDesc(fd), nil
}
