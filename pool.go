package istr

import "sync"

// maxPooledCapacity caps the buffers kept for reuse. A render that grew past
// this is dropped rather than pinned in the pool.
const maxPooledCapacity = 64 << 10

// pools holds the object pools used by the render path.
var pools = struct {
	buffers *sync.Pool
}{
	buffers: &sync.Pool{
		New: func() interface{} {
			b := make([]byte, 0, 256) // Pre-size for typical use
			return &b
		},
	},
}

// getBuffer gets an empty render buffer with at least the given capacity.
func getBuffer(capacity int) *[]byte {
	bp := pools.buffers.Get().(*[]byte)
	b := (*bp)[:0]
	if cap(b) < capacity {
		b = make([]byte, 0, capacity)
	}
	*bp = b
	return bp
}

// putBuffer returns a render buffer to the pool.
func putBuffer(bp *[]byte) {
	if cap(*bp) > maxPooledCapacity {
		return
	}
	pools.buffers.Put(bp)
}
