//go:build darwin
// +build darwin

// File: sock/sendfile_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Zero-copy file-to-socket transfer on Darwin. sendfile(2) here uses a
// length in/out parameter: even when the call fails with a would-block
// signal, the out value holds the bytes already handed to the socket.
// That partial count must be read from the failing call itself, the
// offset is never advanced by the kernel on this family.

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
	var sent int64
	_, blocked, err := runRetryingNonBlocking("sendfile", func() (int, error) {
		remaining := count - sent
		if remaining <= 0 {
			// A zero length would mean "until EOF" on this family;
			// an interrupted call that already moved everything is
			// a completed transfer.
			return 0, nil
		}
		pos := offset + sent
		// The length out-parameter reports progress even when the
		// call itself fails.
		w, werr := unix.Sendfile(s.d.Fd(), src, &pos, int(remaining))
		if w > 0 {
			sent += int64(w)
		}
		return w, werr
	})
	if err != nil {
		return api.TransferResult[int64]{}, err
	}
	if blocked {
		return api.WouldBlock(sent), nil
	}
	return api.Completed(sent), nil
}
