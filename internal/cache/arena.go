package cache

// handle is a stable index into an arena's node slice.
//
// Links between nodes are handles, not pointers, so the index map and both
// neighbours can refer to the same entry without aliasing it.
type handle int

// Slots 0 and 1 are permanent sentinels. headSlot.next is the MRU entry,
// tailSlot.prev is the LRU entry. Neither is ever stored in the index.
const (
	headSlot handle = 0
	tailSlot handle = 1

	sentinels = 2

	// preallocLimit caps up-front allocation. Capacity is only an upper
	// bound on entries; storage past this grows on demand.
	preallocLimit = 64
)

// node is one cached key/value pair plus its position in recency order.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  handle
	next  handle
}

// arena owns every node and the doubly linked recency list threaded
// through them. Released slots go on a free list and are reused by alloc.
type arena[K comparable, V any] struct {
	nodes []node[K, V]
	free  []handle
}

func newArena[K comparable, V any](capacity int) arena[K, V] {
	a := arena[K, V]{
		nodes: make([]node[K, V], sentinels, min(capacity, preallocLimit)+sentinels),
	}
	a.link()
	return a
}

// link points the sentinels at each other, producing an empty list.
func (a *arena[K, V]) link() {
	a.nodes[headSlot] = node[K, V]{prev: headSlot, next: tailSlot}
	a.nodes[tailSlot] = node[K, V]{prev: headSlot, next: tailSlot}
}

// alloc stores key/value in a free slot. The returned node is not linked.
func (a *arena[K, V]) alloc(key K, value V) handle {
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[h] = node[K, V]{key: key, value: value}
		return h
	}
	a.nodes = append(a.nodes, node[K, V]{key: key, value: value})
	return handle(len(a.nodes) - 1)
}

// release zeroes an unlinked slot so it holds no references, then makes it
// available to alloc.
func (a *arena[K, V]) release(h handle) {
	a.nodes[h] = node[K, V]{}
	a.free = append(a.free, h)
}

func (a *arena[K, V]) unlink(h handle) {
	prev, next := a.nodes[h].prev, a.nodes[h].next
	a.nodes[prev].next = next
	a.nodes[next].prev = prev
	a.nodes[h].prev, a.nodes[h].next = 0, 0
}

// pushFront links h directly after the head sentinel.
func (a *arena[K, V]) pushFront(h handle) {
	first := a.nodes[headSlot].next
	a.nodes[h].prev = headSlot
	a.nodes[h].next = first
	a.nodes[first].prev = h
	a.nodes[headSlot].next = h
}

// moveToFront repositions a linked node at the MRU end.
// Get and Put both go through here; every touch makes the order strict.
func (a *arena[K, V]) moveToFront(h handle) {
	if a.nodes[headSlot].next == h {
		return
	}
	a.unlink(h)
	a.pushFront(h)
}

// back returns the LRU node, or false when the list is empty.
func (a *arena[K, V]) back() (handle, bool) {
	h := a.nodes[tailSlot].prev
	return h, h != headSlot
}

// reset drops every node but keeps the backing storage.
func (a *arena[K, V]) reset() {
	clear(a.nodes[sentinels:])
	a.nodes = a.nodes[:sentinels]
	a.free = a.free[:0]
	a.link()
}
