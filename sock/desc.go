// File: sock/desc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Default descriptor-lifecycle collaborator backed by a raw fd. The
// I/O core only consumes the api.Descriptor view; Close lives here,
// outside the data-plane operations.

package sock

import (
	"golang.org/x/sys/unix"
)

// Desc owns one non-blocking descriptor and its liveness flag. It is
// driven by a single goroutine, matching the per-socket discipline of
// the rest of the package, so the flag needs no synchronization.
type Desc struct {
	fd   int
	open bool
}

// NewDesc adopts an existing descriptor that is already non-blocking,
// for example one returned by accept.
func NewDesc(fd int) *Desc {
	return &Desc{fd: fd, open: true}
}

// Fd implements api.Descriptor.
func (d *Desc) Fd() int { return d.fd }

// IsOpen implements api.Descriptor.
func (d *Desc) IsOpen() bool { return d.open }

// SockoptInt implements api.Descriptor.
func (d *Desc) SockoptInt(level, opt int) (int, error) {
	return unix.GetsockoptInt(d.fd, level, opt)
}

// Close closes the descriptor and drops liveness. Idempotent: a second
// Close is a no-op. After Close every Socket operation on this
// descriptor reports api.ErrNotOpen.
func (d *Desc) Close() error {
	if !d.open {
		return nil
	}
	d.open = false
	return unix.Close(d.fd)
}
