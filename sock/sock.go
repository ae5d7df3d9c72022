// File: sock/sock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Socket binds the I/O operations to one descriptor. Buffers passed to
// the transfer methods stay owned by the caller and must remain valid
// and unmodified for the duration of the call; nothing is copied.

package sock

import (
	"github.com/momentics/sockio/api"
	"golang.org/x/sys/unix"
)

// Socket executes non-blocking I/O against one OS descriptor owned by
// the lifecycle collaborator. Every operation checks liveness first
// and fails with api.ErrNotOpen once the collaborator has closed the
// descriptor.
type Socket struct {
	d api.Descriptor
}

// New binds a Socket to a descriptor. The descriptor must already be
// in non-blocking mode.
func New(d api.Descriptor) *Socket {
	return &Socket{d: d}
}

// RawFD returns the underlying descriptor for reactor registration.
func (s *Socket) RawFD() uintptr { return uintptr(s.d.Fd()) }

// Write transfers up to len(p) bytes into the socket with one write
// syscall. A zero-length write is a valid Completed(0). A kernel
// send-buffer full condition yields WouldBlock(0).
func (s *Socket) Write(p []byte) (api.TransferResult[int], error) {
	if !s.d.IsOpen() {
		return api.TransferResult[int]{}, api.ErrNotOpen
	}
	n, blocked, err := runRetryingNonBlocking("write", func() (int, error) {
		return unix.Write(s.d.Fd(), p)
	})
	if err != nil {
		return api.TransferResult[int]{}, err
	}
	if blocked {
		return api.WouldBlock(0), nil
	}
	return api.Completed(n), nil
}

// Read fills up to len(p) bytes from the socket with one read syscall.
// Completed(0) on a stream socket means the peer closed its end; an
// empty receive queue yields WouldBlock(0).
func (s *Socket) Read(p []byte) (api.TransferResult[int], error) {
	if !s.d.IsOpen() {
		return api.TransferResult[int]{}, api.ErrNotOpen
	}
	n, blocked, err := runRetryingNonBlocking("read", func() (int, error) {
		return unix.Read(s.d.Fd(), p)
	})
	if err != nil {
		return api.TransferResult[int]{}, err
	}
	if blocked {
		return api.WouldBlock(0), nil
	}
	return api.Completed(n), nil
}
