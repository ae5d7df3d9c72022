//go:build linux
// +build linux

// File: sock/sendfile_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy file-to-socket transfer on Linux. sendfile(2) here reports
// progress only through its return value and the advanced offset: a
// would-block failure carries no byte count of its own, so the bytes
// moved before blocking are recovered from how far the kernel advanced
// the offset, not from the failing return.

package sock

import (
	"github.com/momentics/sockio/api"
	"golang.org/x/sys/unix"
)

// SendFile transmits count bytes from the open file descriptor src,
// starting at offset, directly into the socket without a user-space
// copy. One sendfile syscall is issued (reissued only on interrupt).
// Completed(n) reports n bytes consumed by the kernel, n <= count;
// WouldBlock(k) reports k bytes that were moved before the socket
// buffer filled.
func (s *Socket) SendFile(src int, offset, count int64) (api.TransferResult[int64], error) {
	if !s.d.IsOpen() {
		return api.TransferResult[int64]{}, api.ErrNotOpen
	}
	pos := offset
	_, blocked, err := runRetryingNonBlocking("sendfile", func() (int, error) {
		remaining := count - (pos - offset)
		if remaining <= 0 {
			return 0, nil
		}
		// The kernel advances pos by the bytes it consumed.
		return unix.Sendfile(s.d.Fd(), src, &pos, int(remaining))
	})
	sent := pos - offset
	if err != nil {
		return api.TransferResult[int64]{}, err
	}
	if blocked {
		return api.WouldBlock(sent), nil
	}
	return api.Completed(sent), nil
}
