package xlist

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xlist/internal/list"
)

// Bidirectional is a doubly-linked list. It supports everything that
// [List] does and can additionally be walked and indexed backwards.
//
// The zero value is an empty list ready to use. A Bidirectional must
// not be copied after first use.
type Bidirectional[T any] struct {
	_     noCopy
	chain list.Chain[T, *list.DoubleNode[T]]
}

// OfBidirectional returns a new list containing vals in order.
func OfBidirectional[T any](vals ...T) *Bidirectional[T] {
	return CollectBidirectional(slices.Values(vals))
}

// CollectBidirectional returns a new list containing the values
// yielded by seq in order.
func CollectBidirectional[T any](seq iter.Seq[T]) *Bidirectional[T] {
	var ls Bidirectional[T]
	ls.Extend(seq)
	return &ls
}

// MapBidirectional returns a new list containing the result of
// calling f on each element of ls. ls is not modified.
func MapBidirectional[T, U any](ls *Bidirectional[T], f func(T) U) *Bidirectional[U] {
	return CollectBidirectional(mapped(ls.All(), f))
}

// Filter returns a new list containing the elements of ls for which
// keep returns true. ls is not modified.
func (ls *Bidirectional[T]) Filter(keep func(T) bool) *Bidirectional[T] {
	return CollectBidirectional(filtered(ls.All(), keep))
}

// Clone returns an independent copy of ls.
func (ls *Bidirectional[T]) Clone() *Bidirectional[T] {
	var c Bidirectional[T]
	c.chain.Splice(nil, list.CloneUntil[T](ls.chain.Head(), nil), nil)
	return &c
}

// Len returns the number of elements in the list.
func (ls *Bidirectional[T]) Len() int {
	return ls.chain.Len()
}

// IsEmpty returns true if the list has no elements.
func (ls *Bidirectional[T]) IsEmpty() bool {
	return ls.chain.Head() == nil
}

// First returns the first element of the list. It returns false if
// the list is empty.
func (ls *Bidirectional[T]) First() (v T, ok bool) {
	head := ls.chain.Head()
	if head == nil {
		return v, false
	}
	return head.Val, true
}

// Last returns the last element of the list. It returns false if the
// list is empty.
func (ls *Bidirectional[T]) Last() (v T, ok bool) {
	tail := ls.chain.Tail()
	if tail == nil {
		return v, false
	}
	return tail.Val, true
}

// Prepend inserts v before the first element.
func (ls *Bidirectional[T]) Prepend(v T) {
	ls.chain.PushFront(v)
}

// Append inserts v after the last element.
func (ls *Bidirectional[T]) Append(v T) {
	ls.chain.PushBack(v)
}

// Extend appends the values yielded by seq.
func (ls *Bidirectional[T]) Extend(seq iter.Seq[T]) {
	r := list.Collect[T, *list.DoubleNode[T]](seq)
	if r.Len == 0 {
		return
	}
	ls.chain.Splice(ls.chain.Tail(), r, nil)
}

// RemoveFirst removes the first element and returns it. It returns
// [ErrInvalidIndex] if the list is empty.
func (ls *Bidirectional[T]) RemoveFirst() (v T, err error) {
	head := ls.chain.Head()
	if head == nil {
		return v, fmt.Errorf("%w: list is empty", ErrInvalidIndex)
	}
	return ls.unlink(head), nil
}

// RemoveLast removes the last element and returns it. It returns
// [ErrInvalidIndex] if the list is empty.
func (ls *Bidirectional[T]) RemoveLast() (v T, err error) {
	tail := ls.chain.Tail()
	if tail == nil {
		return v, fmt.Errorf("%w: list is empty", ErrInvalidIndex)
	}
	return ls.unlink(tail), nil
}

func (ls *Bidirectional[T]) unlink(n *list.DoubleNode[T]) T {
	ls.chain.Splice(n.Prev(), list.Ends[T, *list.DoubleNode[T]]{}, n.Next())
	return n.Val
}

// Clear removes every element.
func (ls *Bidirectional[T]) Clear() {
	ls.chain.Splice(nil, list.Ends[T, *list.DoubleNode[T]]{}, nil)
}

// before returns the node that precedes the position of n, where a
// nil n is the end of the list.
func (ls *Bidirectional[T]) before(n *list.DoubleNode[T]) *list.DoubleNode[T] {
	if n == nil {
		return ls.chain.Tail()
	}
	return n.Prev()
}

// Start returns the index of the first element.
func (ls *Bidirectional[T]) Start() BidirectionalIndex[T] {
	return ls.index(ls.chain.Head())
}

// End returns the index one past the last element.
func (ls *Bidirectional[T]) End() BidirectionalIndex[T] {
	return ls.index(nil)
}

// Indices returns an iterator over the index of every element, not
// including the end index.
func (ls *Bidirectional[T]) Indices() iter.Seq[BidirectionalIndex[T]] {
	return func(yield func(BidirectionalIndex[T]) bool) {
		for node := range ls.chain.Nodes() {
			if !yield(ls.index(node)) {
				return
			}
		}
	}
}

// All returns an iterator over the elements of the list from first to
// last.
func (ls *Bidirectional[T]) All() iter.Seq[T] {
	return ls.chain.All()
}

// Backward returns an iterator over the elements of the list from
// last to first.
func (ls *Bidirectional[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := ls.chain.Tail(); cur != nil; cur = cur.Prev() {
			if !yield(cur.Val) {
				return
			}
		}
	}
}

// Get returns the element at i.
func (ls *Bidirectional[T]) Get(i BidirectionalIndex[T]) (v T, err error) {
	node, err := i.resolve(ls)
	if err != nil {
		return v, err
	}
	if node == nil {
		return v, fmt.Errorf("%w: cannot get the end index", ErrInvalidIndex)
	}
	return node.Val, nil
}

// Set replaces the element at i with v. Indices into the list remain
// valid.
func (ls *Bidirectional[T]) Set(i BidirectionalIndex[T], v T) error {
	node, err := i.resolve(ls)
	if err != nil {
		return err
	}
	if node == nil {
		return fmt.Errorf("%w: cannot set the end index", ErrInvalidIndex)
	}

	node.Val = v
	return nil
}

// Insert inserts v before the element at i, or at the end if i is the
// end index, and returns the index of the new element.
func (ls *Bidirectional[T]) Insert(v T, i BidirectionalIndex[T]) (BidirectionalIndex[T], error) {
	node, err := i.resolve(ls)
	if err != nil {
		return BidirectionalIndex[T]{}, err
	}

	var r list.Ends[T, *list.DoubleNode[T]]
	r.Append(v)
	ls.chain.Splice(ls.before(node), r, node)
	return ls.index(r.Head), nil
}

// Remove removes the element at i and returns it.
func (ls *Bidirectional[T]) Remove(i BidirectionalIndex[T]) (v T, err error) {
	node, err := i.resolve(ls)
	if err != nil {
		return v, err
	}
	if node == nil {
		return v, fmt.Errorf("%w: cannot remove the end index", ErrInvalidIndex)
	}
	return ls.unlink(node), nil
}

// bounds resolves a range of the list to its first node and the node
// after it. It returns [ErrOutOfBounds] if end does not come at or
// after start.
func (ls *Bidirectional[T]) bounds(start, end BidirectionalIndex[T]) (first, suffix *list.DoubleNode[T], err error) {
	first, err = start.resolve(ls)
	if err != nil {
		return nil, nil, err
	}
	suffix, err = end.resolve(ls)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := list.Distance[T](first, suffix); !ok {
		return nil, nil, fmt.Errorf("%w: range ends before it starts", ErrOutOfBounds)
	}
	return first, suffix, nil
}

// Distance returns the number of elements from start up to but not
// including end.
func (ls *Bidirectional[T]) Distance(start, end BidirectionalIndex[T]) (int, error) {
	first, suffix, err := ls.bounds(start, end)
	if err != nil {
		return 0, err
	}
	n, _ := list.Distance[T](first, suffix)
	return n, nil
}

// RemoveRange removes the elements from start up to but not including
// end.
func (ls *Bidirectional[T]) RemoveRange(start, end BidirectionalIndex[T]) error {
	return ls.ReplaceRange(start, end)
}

// ReplaceRange replaces the elements from start up to but not
// including end with vals.
func (ls *Bidirectional[T]) ReplaceRange(start, end BidirectionalIndex[T], vals ...T) error {
	first, suffix, err := ls.bounds(start, end)
	if err != nil {
		return err
	}

	r := list.Collect[T, *list.DoubleNode[T]](slices.Values(vals))
	ls.chain.Splice(ls.before(first), r, suffix)
	return nil
}

// Splice inserts vals before the element at i, or at the end if i is
// the end index.
func (ls *Bidirectional[T]) Splice(i BidirectionalIndex[T], vals ...T) error {
	return ls.ReplaceRange(i, i, vals...)
}

// Slice returns a new list containing copies of the elements from
// start up to but not including end.
func (ls *Bidirectional[T]) Slice(start, end BidirectionalIndex[T]) (*Bidirectional[T], error) {
	first, suffix, err := ls.bounds(start, end)
	if err != nil {
		return nil, err
	}

	var s Bidirectional[T]
	s.chain.Splice(nil, list.CloneUntil[T](first, suffix), nil)
	return &s, nil
}

// SetSlice replaces the elements from start up to but not including
// end with copies of the elements of src. src may be ls itself.
func (ls *Bidirectional[T]) SetSlice(start, end BidirectionalIndex[T], src *Bidirectional[T]) error {
	first, suffix, err := ls.bounds(start, end)
	if err != nil {
		return err
	}

	var r list.Ends[T, *list.DoubleNode[T]]
	if src != nil {
		r = list.CloneUntil[T](src.chain.Head(), nil)
	}
	ls.chain.Splice(ls.before(first), r, suffix)
	return nil
}

// String formats the list as its elements in square brackets.
func (ls *Bidirectional[T]) String() string {
	return format(ls.All())
}
