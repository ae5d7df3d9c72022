//go:build darwin
// +build darwin

// File: reactor/reactor_darwin.go
// Author: momentics <momentics@gmail.com>
//
// Darwin kqueue(2)-based reactor implementation and factory. Read and
// write interest map to separate kevent filters, so one registration
// may install two filters and one ready descriptor may surface as two
// raw events; Wait reports them as they arrive.

package reactor

import "golang.org/x/sys/unix"

// darwinReactor is a kqueue-based event reactor.
type darwinReactor struct {
	kq int
}

// NewReactor constructs the platform-specific EventReactor for Darwin.
func NewReactor() (EventReactor, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, err
	}
	unix.CloseOnExec(kq)
	return &darwinReactor{kq: kq}, nil
}

// Register installs kevent filters for the requested interest.
func (r *darwinReactor) Register(fd uintptr, interest Interest) error {
	changes := keventChanges(fd, interest, unix.EV_ADD)
	_, err := unix.Kevent(r.kq, changes, nil, nil)
	return err
}

// Unregister removes both filters; a filter that was never installed
// reports ENOENT and is ignored.
func (r *darwinReactor) Unregister(fd uintptr) error {
	changes := keventChanges(fd, Readable|Writable, unix.EV_DELETE)
	for i := range changes {
		if _, err := unix.Kevent(r.kq, changes[i:i+1], nil, nil); err != nil && err != unix.ENOENT {
			return err
		}
	}
	return nil
}

// Wait waits for kevents and fills the result into events.
func (r *darwinReactor) Wait(events []Event, timeoutMs int) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}
	var ts *unix.Timespec
	if timeoutMs >= 0 {
		t := unix.NsecToTimespec(int64(timeoutMs) * 1e6)
		ts = &t
	}
	rawEvents := make([]unix.Kevent_t, len(events))
	n, err := unix.Kevent(r.kq, nil, rawEvents, ts)
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, err
	}
	for i := 0; i < n; i++ {
		raw := rawEvents[i]
		ev := Event{Fd: uintptr(raw.Ident)}
		switch raw.Filter {
		case unix.EVFILT_READ:
			ev.Ready |= Readable
		case unix.EVFILT_WRITE:
			ev.Ready |= Writable
		}
		if raw.Flags&unix.EV_EOF != 0 || raw.Flags&unix.EV_ERROR != 0 {
			ev.Err = true
		}
		events[i] = ev
	}
	return n, nil
}

// Close closes the kqueue instance.
func (r *darwinReactor) Close() error {
	return unix.Close(r.kq)
}

func keventChanges(fd uintptr, interest Interest, flags int) []unix.Kevent_t {
	var changes []unix.Kevent_t
	if interest&Readable != 0 {
		var k unix.Kevent_t
		unix.SetKevent(&k, int(fd), unix.EVFILT_READ, flags)
		changes = append(changes, k)
	}
	if interest&Writable != 0 {
		var k unix.Kevent_t
		unix.SetKevent(&k, int(fd), unix.EVFILT_WRITE, flags)
		changes = append(changes, k)
	}
	return changes
}
