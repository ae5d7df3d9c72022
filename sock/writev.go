// File: sock/writev.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Vectored (gather) write. One gather call moves bytes from up to
// MaxVectors discontiguous caller buffers; the count limit is enforced
// here rather than left to kernel clipping, and callers above the
// limit chunk on their side. The raw gather is platform-specific.

package sock

import (
	"github.com/momentics/sockio/api"
)

// Writev gathers the buffers into one vectored write syscall. The
// buffer count must not exceed MaxVectors(); larger batches are
// rejected with api.ErrTooManyVectors before any syscall is issued.
// Classification matches Write: Completed(n) bytes consumed, or
// WouldBlock(0).
func (s *Socket) Writev(bufs [][]byte) (api.TransferResult[int], error) {
	if !s.d.IsOpen() {
		return api.TransferResult[int]{}, api.ErrNotOpen
	}
	if len(bufs) > MaxVectors() {
		return api.TransferResult[int]{}, api.ErrTooManyVectors
	}
	n, blocked, err := runRetryingNonBlocking("writev", func() (int, error) {
		return writevRaw(s.d.Fd(), bufs)
	})
	if err != nil {
		return api.TransferResult[int]{}, err
	}
	if blocked {
		return api.WouldBlock(0), nil
	}
	return api.Completed(n), nil
}
