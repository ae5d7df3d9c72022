// File: api/result.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed outcome of a single non-blocking syscall attempt.

package api

import "fmt"

// Count constrains the unit type a transfer result can carry.
// Byte counts are int for single-call transfers and int64 for
// file-to-socket transfers.
type Count interface {
	~int | ~int64
}

// TransferResult classifies one syscall attempt on a non-blocking
// descriptor. The two variants are mutually exclusive and terminal:
// either the kernel consumed data (Completed), or it signaled that the
// operation cannot proceed right now (WouldBlock). In both variants the
// carried count is the number of units actually transferred before the
// outcome was determined. Only zero-copy file transfers can report a
// nonzero count together with a would-block signal.
type TransferResult[T Count] struct {
	n       T
	blocked bool
}

// Completed reports n units transferred with no blocking signal.
// n may be zero: an empty write is a valid completed transfer.
func Completed[T Count](n T) TransferResult[T] {
	return TransferResult[T]{n: n}
}

// WouldBlock reports that the kernel cannot proceed right now, after
// n units were already moved by the same attempt.
func WouldBlock[T Count](n T) TransferResult[T] {
	return TransferResult[T]{n: n, blocked: true}
}

// Blocked reports whether the attempt hit a would-block signal.
// A blocked result is a retry-later signal for the event loop, not an
// error.
func (r TransferResult[T]) Blocked() bool { return r.blocked }

// Count returns the number of units transferred before the outcome was
// determined.
func (r TransferResult[T]) Count() T { return r.n }

// String implements fmt.Stringer for diagnostics.
func (r TransferResult[T]) String() string {
	if r.blocked {
		return fmt.Sprintf("WouldBlock(%d)", int64(r.n))
	}
	return fmt.Sprintf("Completed(%d)", int64(r.n))
}
