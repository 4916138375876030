package search

// frontierEntry pairs a node with its priority snapshot and an insertion
// sequence number. The sequence breaks ties among equal f values in FIFO
// order, making dequeue order (and therefore results) reproducible.
type frontierEntry[S comparable, A any] struct {
	node *Node[S, A] // the frontier-resident node
	f    float64     // priority snapshot g+h at insertion time
	seq  uint64      // monotone insertion counter for FIFO tie-breaking
}

// frontier is a min-heap (priority queue) of *frontierEntry ordered by
// ascending f, then by ascending seq. We use the "lazy decrease-key"
// approach inherited from the shortest-path engines this package grew out
// of: when a cheaper path to an already-seen state is found, a fresh entry
// is pushed and the stale one is ignored when popped (detected via the
// best-g map in astar.go).
type frontier[S comparable, A any] []*frontierEntry[S, A]

// Len returns the number of entries in the heap.
func (fr frontier[S, A]) Len() int { return len(fr) }

// Less defines the comparison: smaller f → higher priority; equal f →
// earlier insertion wins (FIFO among ties).
func (fr frontier[S, A]) Less(i, j int) bool {
	if fr[i].f != fr[j].f {
		return fr[i].f < fr[j].f
	}

	return fr[i].seq < fr[j].seq
}

// Swap swaps two elements in the heap.
func (fr frontier[S, A]) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierEntry[S, A].
func (fr *frontier[S, A]) Push(x any) { *fr = append(*fr, x.(*frontierEntry[S, A])) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop.
func (fr *frontier[S, A]) Pop() any {
	old := *fr
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // release the slot for GC
	*fr = old[:n-1]

	return item
}
