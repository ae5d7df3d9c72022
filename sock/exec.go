// File: sock/exec.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Syscall execution strategies. Every data-plane and connect operation
// funnels through one of these wrappers, so errno classification
// happens in exactly one place: interrupts are reissued transparently,
// would-block is folded into a sentinel, and everything else becomes a
// *api.SyscallError. No raw negative result ever escapes to a caller.

package sock

import (
	"errors"
	"fmt"

	"github.com/momentics/sockio/api"
	"golang.org/x/sys/unix"
)

// syscallFunc issues one attempt of an OS call. The unix package has
// already folded the raw -1 convention into the returned error, so a
// nil error is the success predicate.
type syscallFunc func() (int, error)

// runRetrying invokes fn until a terminal outcome exists, reissuing
// the call while the kernel reports an interrupt. A terminal failure
// is classified once as *api.SyscallError carrying the errno and the
// syscall name.
func runRetrying(name string, fn syscallFunc) (int, error) {
	for {
		n, err := fn()
		if err == nil {
			return n, nil
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return n, classify(name, err)
	}
}

// runRetryingNonBlocking behaves like runRetrying but additionally
// recognizes the would-block errno and reports it through the blocked
// flag instead of an error. Callers turn that flag into a
// TransferResult would-block variant.
func runRetryingNonBlocking(name string, fn syscallFunc) (n int, blocked bool, err error) {
	for {
		n, err := fn()
		if err == nil {
			return n, false, nil
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if isBlocked(err) {
			return n, true, nil
		}
		return n, false, classify(name, err)
	}
}

// runRetryingOp is runRetrying for syscalls that report no count, such
// as connect.
func runRetryingOp(name string, fn func() error) error {
	_, err := runRetrying(name, func() (int, error) { return 0, fn() })
	return err
}

// isBlocked reports the would-block errno. EAGAIN and EWOULDBLOCK
// share a value on the supported platforms but POSIX does not require
// that, so both are checked.
func isBlocked(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

// classify turns a terminal failure into *api.SyscallError when err
// carries an errno. A failure with no errno, possible when a custom
// descriptor collaborator is in play, keeps its original cause wrapped
// instead of being flattened into a meaningless errno zero.
func classify(name string, err error) error {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return &api.SyscallError{Name: name, Errno: errno}
	}
	return fmt.Errorf("%s: %w", name, err)
}
