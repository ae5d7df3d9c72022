// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-size byte buffer pool for event-loop read paths. The I/O core
// itself never copies or retains buffers; this pool exists for callers
// that recycle read buffers across would-block retries.

package pool

import "sync"

// BytePool hands out fixed-size byte slices.
type BytePool struct {
	size int
	p    sync.Pool
}

// NewBytePool creates a pool of size-byte buffers.
func NewBytePool(size int) *BytePool {
	return &BytePool{
		size: size,
		p: sync.Pool{
			New: func() any { return make([]byte, size) },
		},
	}
}

// Get returns a buffer from the pool.
func (b *BytePool) Get() []byte {
	return b.p.Get().([]byte)
}

// Put returns a buffer to the pool. Buffers of a different size are
// dropped instead of being recycled.
func (b *BytePool) Put(buf []byte) {
	if cap(buf) != b.size {
		return
	}
	b.p.Put(buf[:b.size])
}
