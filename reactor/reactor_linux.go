//go:build linux
// +build linux

// File: reactor/reactor_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux epoll(7)-based reactor implementation and factory.
// Level-triggered: a would-block operation left unretried keeps
// reporting ready until the caller either drains it or unregisters.

package reactor

import "golang.org/x/sys/unix"

// linuxReactor is an epoll-based event reactor.
type linuxReactor struct {
	epfd int
}

// NewReactor constructs the platform-specific EventReactor for Linux.
func NewReactor() (EventReactor, error) {
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, err
	}
	return &linuxReactor{epfd: epfd}, nil
}

// Register adds the file descriptor to epoll.
func (r *linuxReactor) Register(fd uintptr, interest Interest) error {
	event := &unix.EpollEvent{
		Events: epollEvents(interest),
		Fd:     int32(fd),
	}
	return unix.EpollCtl(r.epfd, unix.EPOLL_CTL_ADD, int(fd), event)
}

// Unregister removes the file descriptor from epoll.
func (r *linuxReactor) Unregister(fd uintptr) error {
	return unix.EpollCtl(r.epfd, unix.EPOLL_CTL_DEL, int(fd), nil)
}

// Wait waits for epoll events and fills the result into events.
func (r *linuxReactor) Wait(events []Event, timeoutMs int) (int, error) {
	if len(events) == 0 {
		// epoll_wait rejects maxevents 0 with EINVAL.
		return 0, nil
	}
	rawEvents := make([]unix.EpollEvent, len(events))
	n, err := unix.EpollWait(r.epfd, rawEvents, timeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return 0, nil
		}
		return 0, err
	}
	for i := 0; i < n; i++ {
		raw := rawEvents[i]
		ev := Event{Fd: uintptr(raw.Fd)}
		if raw.Events&unix.EPOLLIN != 0 {
			ev.Ready |= Readable
		}
		if raw.Events&unix.EPOLLOUT != 0 {
			ev.Ready |= Writable
		}
		if raw.Events&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
			ev.Err = true
		}
		events[i] = ev
	}
	return n, nil
}

// Close closes the epoll instance.
func (r *linuxReactor) Close() error {
	return unix.Close(r.epfd)
}

func epollEvents(interest Interest) uint32 {
	var ev uint32
	if interest&Readable != 0 {
		ev |= unix.EPOLLIN
	}
	if interest&Writable != 0 {
		ev |= unix.EPOLLOUT
	}
	return ev
}
