package product

// IDAllocator hands out product ids: a strictly increasing sequence that
// survives restarts because it is seeded from the highest id found in the
// journal. It is deliberately not safe for concurrent use on its own:
// every caller of Next must hold the service's create gate, which also
// covers the append that makes the id durable.
type IDAllocator struct {
	last int64
}

// NewIDAllocator seeds the allocator with the last id recovered from the
// journal; 0 for an empty or absent log.
func NewIDAllocator(last int64) *IDAllocator {
	return &IDAllocator{last: last}
}

// Next returns the next id. An id handed out here but never persisted is
// skipped forever.
func (a *IDAllocator) Next() int64 {
	a.last++
	return a.last
}

// Last returns the most recently issued (or recovered) id.
func (a *IDAllocator) Last() int64 {
	return a.last
}
