package list

// DoubleNode is a node of a bidirectional chain. Like a [SingleNode],
// it owns its successor. prev is only a back-reference and is kept
// such that n.next.prev == n for every linked n.
type DoubleNode[T any] struct {
	Val        T
	prev, next *DoubleNode[T]
	detached   bool
}

func (n *DoubleNode[T]) Value() T {
	return n.Val
}

func (n *DoubleNode[T]) Next() *DoubleNode[T] {
	return n.next
}

// Prev returns the node that precedes n.
func (n *DoubleNode[T]) Prev() *DoubleNode[T] {
	return n.prev
}

func (n *DoubleNode[T]) Link(next *DoubleNode[T]) {
	if n != nil {
		n.next = next
	}
	if next != nil {
		next.prev = n
	}
}

func (n *DoubleNode[T]) InsertAfter(v T) *DoubleNode[T] {
	m := &DoubleNode[T]{Val: v}
	if n == nil {
		return m
	}

	m.Link(n.next)
	n.Link(m)
	return m
}

func (n *DoubleNode[T]) InsertBefore(v T) *DoubleNode[T] {
	m := &DoubleNode[T]{Val: v}
	if n == nil {
		return m
	}

	n.prev.Link(m)
	m.Link(n)
	return m
}

func (n *DoubleNode[T]) Detach() {
	n.prev = nil
	n.next = nil
	n.detached = true
}

// Detached returns true if n has been removed from its chain.
func (n *DoubleNode[T]) Detached() bool {
	return n.detached
}
