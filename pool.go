package pixbuf

import "sync"

// Pool is a thread-safe pool for reusing buffers.
//
// Pool groups buffers by their dimensions, so applications that repeatedly
// allocate same-sized buffers (video frames, tiles) avoid GC pressure.
// The pool is safe for concurrent use; the buffers it hands out are not.
type Pool[P any] struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer[P]
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
}

// NewPool creates a pool retaining at most maxPerBucket buffers per size.
// A maxPerBucket of 0 or less means unlimited.
func NewPool[P any](maxPerBucket int) *Pool[P] {
	return &Pool[P]{
		buckets: make(map[poolKey][]*Buffer[P]),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed width x height buffer, reusing a pooled one if available.
func (p *Pool[P]) Get(width, height int) *Buffer[P] {
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		Logger().Debug("pixbuf: pool hit", "width", width, "height", height)
		return buf
	}
	p.mu.Unlock()

	Logger().Debug("pixbuf: pool miss", "width", width, "height", height)
	return New[P](width, height)
}

// Put clears buf and keeps it for reuse. Buffers beyond the bucket limit
// are discarded. Put ignores nil and buffers obtained from Rows, which share
// storage with their parent; such views are left untouched.
func (p *Pool[P]) Put(buf *Buffer[P]) {
	if buf == nil {
		return
	}
	if buf.view {
		Logger().Debug("pixbuf: pool rejected view", "width", buf.width, "height", buf.height)
		return
	}
	buf.Clear()

	key := poolKey{width: buf.width, height: buf.height}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		Logger().Warn("pixbuf: pool bucket full",
			"width", key.width, "height", key.height, "max", p.maxSize)
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers of the given size.
func (p *Pool[P]) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}
