// File: sock/connect.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Connection establishment on a non-blocking socket. A connect attempt
// resolves to exactly one of: connected now (true), genuinely failed
// (error), or in flight (false). In the in-flight case the caller
// waits for writability through its readiness mechanism and then calls
// FinishConnect to learn the real outcome.

package sock

import (
	"errors"

	"github.com/momentics/sockio/api"
	"github.com/momentics/sockio/endpoint"
	"golang.org/x/sys/unix"
)

// Connect issues one connect syscall toward ep, dispatching on the
// endpoint variant for the native address layout and length. It
// returns (true, nil) when the connection completed synchronously and
// (false, nil) when the kernel accepted the attempt but completion is
// pending; every other outcome is an error. An in-progress signal is
// not an error and is never surfaced as one.
func (s *Socket) Connect(ep endpoint.Endpoint) (bool, error) {
	if !s.d.IsOpen() {
		return false, api.ErrNotOpen
	}
	sa, err := ep.Sockaddr()
	if err != nil {
		return false, err
	}
	err = runRetryingOp("connect", func() error {
		return unix.Connect(s.d.Fd(), sa)
	})
	if err != nil {
		var se *api.SyscallError
		if errors.As(err, &se) && se.Errno == unix.EINPROGRESS {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FinishConnect resolves a pending connect after the readiness
// mechanism reported the socket writable. It reads the pending-error
// option through the descriptor collaborator: zero means the deferred
// connect succeeded; any other value is the connect's real errno and
// is surfaced as a SyscallError. Calling it after a synchronous
// connect is harmless, the pending error reads zero.
func (s *Socket) FinishConnect() error {
	if !s.d.IsOpen() {
		return api.ErrNotOpen
	}
	v, err := s.d.SockoptInt(unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		return classify("getsockopt", err)
	}
	if v != 0 {
		return &api.SyscallError{Name: "getsockopt", Errno: unix.Errno(v)}
	}
	return nil
}
