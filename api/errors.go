// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error taxonomy for the socket I/O core. Would-block and
// in-progress-connect conditions are not errors and never appear here;
// they are folded into TransferResult and the pending return of
// Connect respectively.

package api

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Errors surfaced by socket operations.
var (
	// ErrNotOpen reports an operation on a socket whose descriptor has
	// already been closed by the lifecycle collaborator. Checked before
	// any syscall is issued.
	ErrNotOpen = errors.New("socket is not open")

	// ErrTooManyVectors reports a vectored write whose buffer count
	// exceeds the platform limit. The call is rejected before reaching
	// the kernel; the caller chunks and retries.
	ErrTooManyVectors = errors.New("vector count exceeds platform limit")
)

// SyscallError is a genuine OS-level failure: a terminal negative
// outcome that is neither an interrupt (retried transparently) nor a
// would-block or in-progress signal. It carries the raw errno and the
// name of the syscall that produced it.
type SyscallError struct {
	Name  string
	Errno unix.Errno
}

// Error implements the error interface.
func (e *SyscallError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Errno.Error())
}

// Unwrap exposes the raw errno for errors.Is comparisons against
// unix.Errno values.
func (e *SyscallError) Unwrap() error { return e.Errno }

// Temporary reports whether the underlying errno is transient.
func (e *SyscallError) Temporary() bool { return e.Errno.Temporary() }
