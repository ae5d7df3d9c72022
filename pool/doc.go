// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package pool provides a small fixed-size byte buffer pool used by
// event-loop callers of the sockio core.
package pool
