// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package api defines the shared contracts of the sockio core: the
// typed transfer result, the error taxonomy, and the descriptor
// collaborator interface. It has no syscall logic of its own.
package api
