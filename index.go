package xlist

import (
	"fmt"
	"weak"

	"deedles.dev/xlist/internal/list"
)

// An Index is a position in a [List]. It refers either to an element
// or to the end of the list, one past the last element.
//
// An Index remembers the element before its position as well as the
// element at it. It remains usable for as long as both are still in
// the list and the first still immediately precedes the second, so
// changes elsewhere in the list do not affect it. Using it after that
// results in [ErrStaleIndex]. Indices do not keep removed elements
// alive.
//
// The zero Index does not belong to any list.
type Index[T any] struct {
	ls   *List[T]
	node weak.Pointer[list.SingleNode[T]]
	prev weak.Pointer[list.SingleNode[T]]
}

func (ls *List[T]) index(node, prev *list.SingleNode[T]) Index[T] {
	return Index[T]{
		ls:   ls,
		node: weak.Make(node),
		prev: weak.Make(prev),
	}
}

// resolve checks that i is a current index into ls and returns the
// node that it refers to and the node before that. Either may be nil.
func (i Index[T]) resolve(ls *List[T]) (node, prev *list.SingleNode[T], err error) {
	if ls == nil || i.ls != ls {
		return nil, nil, stale("index belongs to a different list")
	}

	var none weak.Pointer[list.SingleNode[T]]
	node, prev = i.node.Value(), i.prev.Value()
	if (node == nil && i.node != none) || (node != nil && node.Detached()) {
		return nil, nil, stale("element is no longer in the list")
	}
	if (prev == nil && i.prev != none) || (prev != nil && prev.Detached()) {
		return nil, nil, stale("predecessor is no longer in the list")
	}

	if prev == nil {
		if node != ls.chain.Head() {
			return nil, nil, stale("index without a predecessor is not at the start")
		}
		return node, nil, nil
	}
	if prev.Next() != node {
		return nil, nil, stale("predecessor no longer precedes the element")
	}
	return node, prev, nil
}

// Equal returns true if i and j belong to the same list and refer to
// the same element, or are both the end index.
func (i Index[T]) Equal(j Index[T]) bool {
	return i.ls == j.ls && i.node == j.node
}

// Next returns the index of the element after the one that i refers
// to. It returns [ErrOutOfBounds] if i is the end index.
func (i Index[T]) Next() (Index[T], error) {
	node, _, err := i.resolve(i.ls)
	if err != nil {
		return Index[T]{}, err
	}
	if node == nil {
		return Index[T]{}, fmt.Errorf("%w: cannot advance past the end", ErrOutOfBounds)
	}

	return i.ls.index(node.Next(), node), nil
}

// Advance returns the index n elements after i. n must not be
// negative.
func (i Index[T]) Advance(n int) (Index[T], error) {
	if n < 0 {
		return Index[T]{}, fmt.Errorf("%w: cannot move a forward index by %v", ErrOutOfBounds, n)
	}
	if _, _, err := i.resolve(i.ls); err != nil {
		return Index[T]{}, err
	}

	var err error
	for range n {
		i, err = i.Next()
		if err != nil {
			return Index[T]{}, err
		}
	}
	return i, nil
}
