package cfifo

import (
	"sync"
)

// Direction selects which link the chain-wide clear and fill operations
// follow from the instance they start at.
type Direction int

const (
	// Up walks toward the next instance in the chain.
	Up Direction = iota

	// Down walks toward the previous instance in the chain.
	Down
)

// Fifo is a fixed-capacity circular byte queue. Instances can be linked
// into a chain with CascadeNext; the *Chain methods operate across the
// links.
type Fifo struct {
	mu    sync.Mutex
	buf   []byte
	rd    int
	wr    int
	used  int
	cap   int
	dummy byte

	next *Fifo
	prev *Fifo
}

// New creates an empty Fifo with the given capacity in bytes.
// A capacity of zero or less yields a Fifo that accepts nothing.
func New(capacity int) *Fifo {
	if capacity < 0 {
		capacity = 0
	}

	return &Fifo{
		buf: make([]byte, capacity),
		cap: capacity,
	}
}

// NewDummySource creates a Fifo without a backing store that yields n
// pops of the dummy byte. Pushes always fail; pops succeed until the
// usage is drained.
func NewDummySource(n int, dummy byte) *Fifo {
	if n < 0 {
		n = 0
	}

	return &Fifo{
		cap:   n,
		used:  n,
		dummy: dummy,
	}
}

// SetDummyByte sets the byte returned by pops on a store-less Fifo.
func (f *Fifo) SetDummyByte(b byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dummy = b
}

// CascadeNext links next after f: f's chain operations spill into next,
// and next's downward operations reach back to f.
func (f *Fifo) CascadeNext(next *Fifo) {
	if next == nil {
		return
	}

	f.mu.Lock()
	f.next = next
	f.mu.Unlock()

	next.mu.Lock()
	next.prev = f
	next.mu.Unlock()
}

// Push inserts one byte. It returns false when the Fifo is full or has
// no backing store.
func (f *Fifo) Push(b byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.push(b)
}

// PushChain inserts one byte into the first instance with free space,
// walking forward from f. Returns false when the whole chain is full.
func (f *Fifo) PushChain(b byte) bool {
	for cur := f; cur != nil; cur = cur.forward() {
		cur.mu.Lock()
		ok := cur.push(b)
		cur.mu.Unlock()

		if ok {
			return true
		}
	}
	return false
}

// Pop removes and returns the oldest byte. ok is false when the Fifo is
// empty.
func (f *Fifo) Pop() (b byte, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pop()
}

// PopChain removes and returns the oldest byte of the first non-empty
// instance, walking forward from f. ok is false when the whole chain is
// empty.
func (f *Fifo) PopChain() (b byte, ok bool) {
	for cur := f; cur != nil; cur = cur.forward() {
		cur.mu.Lock()
		b, ok = cur.pop()
		cur.mu.Unlock()

		if ok {
			return b, true
		}
	}
	return 0, false
}

// Clear discards all stored bytes.
func (f *Fifo) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clear()
}

// ClearChain discards the stored bytes of every instance reachable from
// f in the given direction, including f itself.
func (f *Fifo) ClearChain(dir Direction) {
	for cur := f; cur != nil; cur = cur.adjacent(dir) {
		cur.mu.Lock()
		cur.clear()
		cur.mu.Unlock()
	}
}

// SetFull marks the Fifo as holding its full capacity without touching
// the buffer contents. Useful after preloading the backing store.
func (f *Fifo) SetFull() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setFull()
}

// SetFullChain marks every instance reachable from f in the given
// direction as full, including f itself.
func (f *Fifo) SetFullChain(dir Direction) {
	for cur := f; cur != nil; cur = cur.adjacent(dir) {
		cur.mu.Lock()
		cur.setFull()
		cur.mu.Unlock()
	}
}

// Preload copies data into the backing store from the start and marks
// that many bytes as used. Data beyond the capacity is dropped. Returns
// the number of bytes loaded.
func (f *Fifo) Preload(data []byte) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := copy(f.buf, data)
	f.rd = 0
	f.wr = 0
	if f.cap > 0 {
		f.wr = n % f.cap
	}
	f.used = n
	return n
}

// Cap returns the capacity in bytes.
func (f *Fifo) Cap() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cap
}

// CapChain returns the summed capacity of f and every instance after it.
func (f *Fifo) CapChain() int {
	total := 0
	for cur := f; cur != nil; cur = cur.forward() {
		total += cur.Cap()
	}
	return total
}

// Len returns the number of stored bytes.
func (f *Fifo) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.used
}

// LenChain returns the summed stored bytes of f and every instance after
// it.
func (f *Fifo) LenChain() int {
	total := 0
	for cur := f; cur != nil; cur = cur.forward() {
		total += cur.Len()
	}
	return total
}

// IsEmpty reports whether no bytes are stored.
func (f *Fifo) IsEmpty() bool {
	return f.Len() == 0
}

// IsEmptyChain reports whether f and every instance after it are empty.
func (f *Fifo) IsEmptyChain() bool {
	for cur := f; cur != nil; cur = cur.forward() {
		if !cur.IsEmpty() {
			return false
		}
	}
	return true
}

// IsFull reports whether the usage has reached the capacity.
func (f *Fifo) IsFull() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.isFull()
}

// IsFullChain reports whether f and every instance after it are full.
func (f *Fifo) IsFullChain() bool {
	for cur := f; cur != nil; cur = cur.forward() {
		if !cur.IsFull() {
			return false
		}
	}
	return true
}

// push, pop, clear, setFull and isFull require f.mu held.

func (f *Fifo) push(b byte) bool {
	if len(f.buf) == 0 {
		return false
	}
	if f.isFull() {
		return false
	}

	f.buf[f.wr] = b
	f.wr = (f.wr + 1) % f.cap
	f.used++
	return true
}

func (f *Fifo) pop() (byte, bool) {
	if f.used == 0 {
		return 0, false
	}

	// Store-less instances yield the dummy byte.
	if len(f.buf) == 0 {
		f.used--
		return f.dummy, true
	}

	b := f.buf[f.rd]
	f.rd = (f.rd + 1) % f.cap
	f.used--
	return b, true
}

func (f *Fifo) clear() {
	f.rd = 0
	f.wr = 0
	f.used = 0
}

func (f *Fifo) setFull() {
	f.rd = 0
	f.wr = 0
	f.used = f.cap
}

func (f *Fifo) isFull() bool {
	return f.used >= f.cap
}

// forward returns the next link under f's lock.
func (f *Fifo) forward() *Fifo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next
}

// adjacent returns the neighbor in the given direction under f's lock.
func (f *Fifo) adjacent(dir Direction) *Fifo {
	f.mu.Lock()
	defer f.mu.Unlock()

	if dir == Up {
		return f.next
	}
	return f.prev
}
