// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral readiness notification interface. The reactor is
// the collaborator that turns would-block outcomes and pending
// connects into "retry later": callers register interest, wait, and
// reissue the blocked operation when its descriptor becomes ready.

package reactor

// Interest selects which readiness conditions a registration watches.
type Interest uint8

const (
	// Readable interest: the descriptor has data to read.
	Readable Interest = 1 << iota
	// Writable interest: the descriptor accepts writes. Also the
	// signal that a pending connect has resolved.
	Writable
)

// Event is one readiness report from Wait.
type Event struct {
	// Fd is the descriptor that became ready.
	Fd uintptr
	// Ready holds the conditions that fired.
	Ready Interest
	// Err reports an error or hangup condition on the descriptor. The
	// caller learns the actual error from its next operation on it.
	Err bool
}

// EventReactor multiplexes readiness over registered descriptors.
type EventReactor interface {
	// Register adds fd with the given interest set.
	Register(fd uintptr, interest Interest) error

	// Unregister removes fd from the watch set.
	Unregister(fd uintptr) error

	// Wait blocks until events are available or timeoutMs elapses and
	// fills them into events. timeoutMs < 0 blocks indefinitely. An
	// interrupted wait returns (0, nil), and so does an empty events
	// slice: there is nowhere to report readiness into.
	Wait(events []Event, timeoutMs int) (n int, err error)

	// Close releases the reactor's own descriptor.
	Close() error
}
