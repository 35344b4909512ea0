package list

import "iter"

// Chain owns a run of linked nodes along with a reference to the last
// one for quick inserts at either end. The zero value is an empty
// chain.
type Chain[T any, N Node[T, N]] struct {
	head, tail N
	len        int
}

// Head returns the first node, or the zero N if the chain is empty.
func (c *Chain[T, N]) Head() N {
	return c.head
}

// Tail returns the last node, or the zero N if the chain is empty.
func (c *Chain[T, N]) Tail() N {
	return c.tail
}

// Len returns the number of nodes in the chain.
func (c *Chain[T, N]) Len() int {
	return c.len
}

// Splice replaces the nodes between prefix and suffix with the chain
// held by r. A zero prefix means that the replaced run starts at the
// head and a zero suffix means that it runs through the tail. suffix
// must be reachable from the start of the run.
//
// An empty r turns Splice into a pure removal and an empty run turns
// it into a pure insertion. Removed nodes are detached. Apart from
// that, only the two boundary links are touched.
func (c *Chain[T, N]) Splice(prefix N, r Ends[T, N], suffix N) {
	var zero N

	first := c.head
	if prefix != zero {
		first = prefix.Next()
	}
	var removed int
	for cur := first; cur != suffix && cur != zero; removed++ {
		next := cur.Next()
		cur.Detach()
		cur = next
	}

	link := r.Head
	if link == zero {
		link = suffix
	}
	prefix.Link(link)
	if prefix == zero {
		c.head = link
	}

	if r.Tail != zero {
		r.Tail.Link(suffix)
	}
	if suffix == zero {
		c.tail = r.Tail
		if c.tail == zero {
			c.tail = prefix
		}
	}

	c.len += r.Len - removed
}

// PushFront adds a new node containing v before the head.
func (c *Chain[T, N]) PushFront(v T) {
	c.head = c.head.InsertBefore(v)
	c.len++

	var zero N
	if c.tail == zero {
		c.tail = c.head
	}
}

// PushBack adds a new node containing v after the tail.
func (c *Chain[T, N]) PushBack(v T) {
	c.tail = c.tail.InsertAfter(v)
	c.len++

	var zero N
	if c.head == zero {
		c.head = c.tail
	}
}

// All returns an iterator over the values in the chain. Every call
// starts a fresh walk from the current head.
func (c *Chain[T, N]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero N
		for cur := c.head; cur != zero; cur = cur.Next() {
			if !yield(cur.Value()) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes in the chain.
func (c *Chain[T, N]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		var zero N
		for cur := c.head; cur != zero; cur = cur.Next() {
			if !yield(cur) {
				return
			}
		}
	}
}
