// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package sock is the non-blocking socket I/O core: single-buffer and
// vectored transfers, zero-copy file-to-socket transmission, and
// asynchronous connect establishment, each one syscall per call with a
// typed outcome. The package performs no buffering and no locking; a
// socket is driven by one event-loop goroutine at a time, and
// would-block outcomes are its yield signal.
package sock
