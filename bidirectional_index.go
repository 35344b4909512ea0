package xlist

import (
	"fmt"
	"weak"

	"deedles.dev/xlist/internal/list"
)

// A BidirectionalIndex is a position in a [Bidirectional] list. It
// can also move backwards. Because every element knows its own
// predecessor, a BidirectionalIndex stays usable for as long as its
// element is in the list, and the end index never goes stale.
type BidirectionalIndex[T any] struct {
	ls   *Bidirectional[T]
	node weak.Pointer[list.DoubleNode[T]]
}

func (ls *Bidirectional[T]) index(node *list.DoubleNode[T]) BidirectionalIndex[T] {
	return BidirectionalIndex[T]{
		ls:   ls,
		node: weak.Make(node),
	}
}

func (i BidirectionalIndex[T]) resolve(ls *Bidirectional[T]) (*list.DoubleNode[T], error) {
	if ls == nil || i.ls != ls {
		return nil, stale("index belongs to a different list")
	}

	node := i.node.Value()
	if node == nil {
		if i.node != (weak.Pointer[list.DoubleNode[T]]{}) {
			return nil, stale("element is no longer in the list")
		}
		return nil, nil
	}
	if node.Detached() {
		return nil, stale("element is no longer in the list")
	}

	prev := node.Prev()
	if prev == nil {
		if node != ls.chain.Head() {
			return nil, stale("index without a predecessor is not at the start")
		}
		return node, nil
	}
	if prev.Next() != node {
		return nil, stale("predecessor no longer precedes the element")
	}
	return node, nil
}

// Equal returns true if i and j belong to the same list and refer to
// the same element, or are both the end index.
func (i BidirectionalIndex[T]) Equal(j BidirectionalIndex[T]) bool {
	return i.ls == j.ls && i.node == j.node
}

// Next returns the index of the element after the one that i refers
// to. It returns [ErrOutOfBounds] if i is the end index.
func (i BidirectionalIndex[T]) Next() (BidirectionalIndex[T], error) {
	node, err := i.resolve(i.ls)
	if err != nil {
		return BidirectionalIndex[T]{}, err
	}
	if node == nil {
		return BidirectionalIndex[T]{}, fmt.Errorf("%w: cannot advance past the end", ErrOutOfBounds)
	}

	return i.ls.index(node.Next()), nil
}

// Prev returns the index of the element before the one that i refers
// to. It returns [ErrOutOfBounds] if i is the start index.
func (i BidirectionalIndex[T]) Prev() (BidirectionalIndex[T], error) {
	node, err := i.resolve(i.ls)
	if err != nil {
		return BidirectionalIndex[T]{}, err
	}

	prev := i.ls.before(node)
	if prev == nil {
		return BidirectionalIndex[T]{}, fmt.Errorf("%w: cannot retreat past the start", ErrOutOfBounds)
	}
	return i.ls.index(prev), nil
}

// Advance returns the index n elements after i, or -n elements before
// it if n is negative.
func (i BidirectionalIndex[T]) Advance(n int) (BidirectionalIndex[T], error) {
	if _, err := i.resolve(i.ls); err != nil {
		return BidirectionalIndex[T]{}, err
	}

	step := BidirectionalIndex[T].Next
	if n < 0 {
		step, n = BidirectionalIndex[T].Prev, -n
	}

	var err error
	for range n {
		i, err = step(i)
		if err != nil {
			return BidirectionalIndex[T]{}, err
		}
	}
	return i, nil
}
