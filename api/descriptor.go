// File: api/descriptor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract of the descriptor-lifecycle collaborator. The I/O core
// never creates, closes, or reconfigures descriptors; it only issues
// data-plane syscalls against a descriptor somebody else owns.

package api

// Descriptor is the read-only view of one OS socket descriptor as seen
// by the I/O core. The owning collaborator creates the descriptor in
// non-blocking mode, closes it, and keeps IsOpen consistent with that
// lifecycle; the core checks IsOpen before every syscall and fails
// fast with ErrNotOpen once the descriptor is gone.
type Descriptor interface {
	// Fd returns the raw descriptor for syscall use. Only meaningful
	// while IsOpen reports true.
	Fd() int

	// IsOpen reports whether the descriptor is still live.
	IsOpen() bool

	// SockoptInt reads an integer socket option. The core uses it for
	// exactly one thing: reading the pending-error option after an
	// asynchronous connect resolves.
	SockoptInt(level, opt int) (int, error)
}
