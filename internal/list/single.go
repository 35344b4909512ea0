package list

// SingleNode is a node of a forward-only chain. A node owns everything
// reachable through next.
type SingleNode[T any] struct {
	Val      T
	next     *SingleNode[T]
	detached bool
}

func (n *SingleNode[T]) Value() T {
	return n.Val
}

func (n *SingleNode[T]) Next() *SingleNode[T] {
	return n.next
}

func (n *SingleNode[T]) Link(next *SingleNode[T]) {
	if n == nil {
		return
	}
	n.next = next
}

func (n *SingleNode[T]) InsertAfter(v T) *SingleNode[T] {
	if n == nil {
		return &SingleNode[T]{Val: v}
	}

	n.next = &SingleNode[T]{Val: v, next: n.next}
	return n.next
}

// InsertBefore returns a new node that owns n as its successor. A
// forward node has no way to reach its own predecessor, so the caller
// is responsible for pointing whatever referenced n at the returned
// node instead.
func (n *SingleNode[T]) InsertBefore(v T) *SingleNode[T] {
	return &SingleNode[T]{Val: v, next: n}
}

func (n *SingleNode[T]) Detach() {
	n.next = nil
	n.detached = true
}

// Detached returns true if n has been removed from its chain.
func (n *SingleNode[T]) Detached() bool {
	return n.detached
}
