package pipeline

import "sync"

// Inbox is a thread-safe ring buffer of Updates supporting many
// concurrent producers and a single draining consumer. It grows
// instead of blocking producers, and receives never block: the drain
// loop must always proceed immediately when the inbox is empty.
type Inbox struct {
	mu       sync.Mutex
	buf      []Update
	head     int
	tail     int
	count    int
	capacity int
	closed   bool

	totalPosted  int64
	totalDrained int64
	dropped      int64
}

// NewInbox creates an inbox with the given initial capacity.
func NewInbox(initialCapacity int) *Inbox {
	if initialCapacity < 1 {
		initialCapacity = 1
	}
	return &Inbox{
		buf:      make([]Update, initialCapacity),
		capacity: initialCapacity,
	}
}

// Post adds an update, growing the buffer when full. Posts to a closed
// inbox are dropped silently and reported as false; a producer whose
// consumer is gone must not fail its own fetch operation over it.
func (b *Inbox) Post(u Update) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		b.dropped++
		return false
	}

	if b.count == b.capacity {
		b.grow()
	}

	b.buf[b.tail] = u
	b.tail = (b.tail + 1) % b.capacity
	b.count++
	b.totalPosted++
	return true
}

// TryDrainOne removes the oldest update without blocking.
func (b *Inbox) TryDrainOne() (Update, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == 0 {
		return Update{}, false
	}
	return b.takeLocked(), true
}

// DrainAll removes every currently-queued update in delivery order.
// Updates posted after DrainAll has taken the lock are deferred to the
// next drain pass.
func (b *Inbox) DrainAll() []Update {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == 0 {
		return nil
	}

	out := make([]Update, 0, b.count)
	for b.count > 0 {
		out = append(out, b.takeLocked())
	}
	return out
}

// Close marks the inbox closed. Subsequent posts are dropped.
func (b *Inbox) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
}

// Len returns the number of queued updates.
func (b *Inbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// InboxStats holds inbox counters.
type InboxStats struct {
	Queued       int
	Capacity     int
	TotalPosted  int64
	TotalDrained int64
	Dropped      int64
}

// Stats returns current counters.
func (b *Inbox) Stats() InboxStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return InboxStats{
		Queued:       b.count,
		Capacity:     b.capacity,
		TotalPosted:  b.totalPosted,
		TotalDrained: b.totalDrained,
		Dropped:      b.dropped,
	}
}

// takeLocked removes the head update. Caller holds the lock.
func (b *Inbox) takeLocked() Update {
	u := b.buf[b.head]
	b.buf[b.head] = Update{}
	b.head = (b.head + 1) % b.capacity
	b.count--
	b.totalDrained++
	return u
}

// grow doubles capacity, un-wrapping the ring. Caller holds the lock.
func (b *Inbox) grow() {
	newBuf := make([]Update, b.capacity*2)
	if b.head < b.tail {
		copy(newBuf, b.buf[b.head:b.tail])
	} else if b.count > 0 {
		n := copy(newBuf, b.buf[b.head:])
		copy(newBuf[n:], b.buf[:b.tail])
	}
	b.buf = newBuf
	b.head = 0
	b.tail = b.count
	b.capacity = len(newBuf)
}
