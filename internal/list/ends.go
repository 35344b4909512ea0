package list

import "iter"

// Ends is the head and tail of a chain that is being built. It is
// used as an accumulator so that appending is O(1) without having to
// walk to the end of the chain every time.
type Ends[T any, N Node[T, N]] struct {
	Head, Tail N
	Len        int
}

// Append adds a new node containing v after the current tail.
func (e *Ends[T, N]) Append(v T) {
	e.Tail = e.Tail.InsertAfter(v)
	e.Len++

	var zero N
	if e.Head == zero {
		e.Head = e.Tail
	}
}

// Collect builds a new chain from the values yielded by seq. An empty
// seq produces empty Ends.
func Collect[T any, N Node[T, N]](seq iter.Seq[T]) (e Ends[T, N]) {
	for v := range seq {
		e.Append(v)
	}
	return e
}

// CloneUntil copies the chain starting at start into new nodes,
// stopping before boundary. A zero boundary copies everything
// reachable from start.
func CloneUntil[T any, N Node[T, N]](start, boundary N) (e Ends[T, N]) {
	var zero N
	for cur := start; cur != zero && cur != boundary; cur = cur.Next() {
		e.Append(cur.Value())
	}
	return e
}

// Distance counts the nodes from start up to but not including end. A
// zero end counts through the last node. It returns false if end is
// not reachable from start.
func Distance[T any, N Node[T, N]](start, end N) (int, bool) {
	var zero N
	var n int
	for cur := start; cur != end; cur = cur.Next() {
		if cur == zero {
			return 0, false
		}
		n++
	}
	return n, true
}
