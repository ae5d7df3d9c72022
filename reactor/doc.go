// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package reactor provides the readiness-notification collaborator for
// the sockio core, with epoll (Linux) and kqueue (Darwin)
// implementations selected at build time.
package reactor
