package xlist

import (
	"fmt"
	"iter"
	"slices"

	"deedles.dev/xlist/internal/list"
)

// List is a singly-linked list. Besides quick inserts and removals at
// either end, elements can be inserted, removed and replaced anywhere
// in the list in constant time given an [Index] to the position.
//
// The zero value is an empty list ready to use. A List must not be
// copied after first use. Use [List.Clone] instead.
type List[T any] struct {
	_     noCopy
	chain list.Chain[T, *list.SingleNode[T]]
}

// Of returns a new list containing vals in order.
func Of[T any](vals ...T) *List[T] {
	return Collect(slices.Values(vals))
}

// Collect returns a new list containing the values yielded by seq in
// order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	var ls List[T]
	ls.Extend(seq)
	return &ls
}

// Map returns a new list containing the result of calling f on each
// element of ls. ls is not modified.
func Map[T, U any](ls *List[T], f func(T) U) *List[U] {
	return Collect(mapped(ls.All(), f))
}

// Filter returns a new list containing the elements of ls for which
// keep returns true. ls is not modified.
func (ls *List[T]) Filter(keep func(T) bool) *List[T] {
	return Collect(filtered(ls.All(), keep))
}

// Clone returns an independent copy of ls.
func (ls *List[T]) Clone() *List[T] {
	var c List[T]
	c.chain.Splice(nil, list.CloneUntil[T](ls.chain.Head(), nil), nil)
	return &c
}

// Len returns the number of elements in the list.
func (ls *List[T]) Len() int {
	return ls.chain.Len()
}

// IsEmpty returns true if the list has no elements.
func (ls *List[T]) IsEmpty() bool {
	return ls.chain.Head() == nil
}

// First returns the first element of the list. It returns false if
// the list is empty.
func (ls *List[T]) First() (v T, ok bool) {
	head := ls.chain.Head()
	if head == nil {
		return v, false
	}
	return head.Val, true
}

// Last returns the last element of the list. It returns false if the
// list is empty.
func (ls *List[T]) Last() (v T, ok bool) {
	tail := ls.chain.Tail()
	if tail == nil {
		return v, false
	}
	return tail.Val, true
}

// Prepend inserts v before the first element.
func (ls *List[T]) Prepend(v T) {
	ls.chain.PushFront(v)
}

// Append inserts v after the last element.
func (ls *List[T]) Append(v T) {
	ls.chain.PushBack(v)
}

// Extend appends the values yielded by seq. It is fine for seq to
// yield values from ls itself.
func (ls *List[T]) Extend(seq iter.Seq[T]) {
	r := list.Collect[T, *list.SingleNode[T]](seq)
	if r.Len == 0 {
		return
	}
	ls.chain.Splice(ls.chain.Tail(), r, nil)
}

// RemoveFirst removes the first element and returns it. It returns
// [ErrInvalidIndex] if the list is empty.
func (ls *List[T]) RemoveFirst() (v T, err error) {
	head := ls.chain.Head()
	if head == nil {
		return v, fmt.Errorf("%w: list is empty", ErrInvalidIndex)
	}

	ls.chain.Splice(nil, list.Ends[T, *list.SingleNode[T]]{}, head.Next())
	return head.Val, nil
}

// Clear removes every element.
func (ls *List[T]) Clear() {
	ls.chain.Splice(nil, list.Ends[T, *list.SingleNode[T]]{}, nil)
}

// Start returns the index of the first element. For an empty list
// this is the same as the end index.
func (ls *List[T]) Start() Index[T] {
	return ls.index(ls.chain.Head(), nil)
}

// End returns the index one past the last element.
func (ls *List[T]) End() Index[T] {
	return ls.index(nil, ls.chain.Tail())
}

// Indices returns an iterator over the index of every element, not
// including the end index.
func (ls *List[T]) Indices() iter.Seq[Index[T]] {
	return func(yield func(Index[T]) bool) {
		var prev *list.SingleNode[T]
		for node := range ls.chain.Nodes() {
			if !yield(ls.index(node, prev)) {
				return
			}
			prev = node
		}
	}
}

// All returns an iterator over the elements of the list. Each call
// walks the list as it is at the time that the walk begins.
func (ls *List[T]) All() iter.Seq[T] {
	return ls.chain.All()
}

// Get returns the element at i.
func (ls *List[T]) Get(i Index[T]) (v T, err error) {
	node, _, err := i.resolve(ls)
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
func (ls *List[T]) Set(i Index[T], v T) error {
	node, _, err := i.resolve(ls)
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
func (ls *List[T]) Insert(v T, i Index[T]) (Index[T], error) {
	node, prev, err := i.resolve(ls)
	if err != nil {
		return Index[T]{}, err
	}

	var r list.Ends[T, *list.SingleNode[T]]
	r.Append(v)
	ls.chain.Splice(prev, r, node)
	return ls.index(r.Head, prev), nil
}

// Remove removes the element at i and returns it.
func (ls *List[T]) Remove(i Index[T]) (v T, err error) {
	node, prev, err := i.resolve(ls)
	if err != nil {
		return v, err
	}
	if node == nil {
		return v, fmt.Errorf("%w: cannot remove the end index", ErrInvalidIndex)
	}

	ls.chain.Splice(prev, list.Ends[T, *list.SingleNode[T]]{}, node.Next())
	return node.Val, nil
}

// bounds resolves a range of the list to its first node along with
// the nodes on either side of it. It returns [ErrOutOfBounds] if end
// does not come at or after start.
func (ls *List[T]) bounds(start, end Index[T]) (first, prefix, suffix *list.SingleNode[T], err error) {
	first, prefix, err = start.resolve(ls)
	if err != nil {
		return nil, nil, nil, err
	}
	suffix, _, err = end.resolve(ls)
	if err != nil {
		return nil, nil, nil, err
	}
	if _, ok := list.Distance[T](first, suffix); !ok {
		return nil, nil, nil, fmt.Errorf("%w: range ends before it starts", ErrOutOfBounds)
	}
	return first, prefix, suffix, nil
}

// Distance returns the number of elements from start up to but not
// including end. The distance from [List.Start] to an index is that
// index's position in the list.
func (ls *List[T]) Distance(start, end Index[T]) (int, error) {
	first, _, suffix, err := ls.bounds(start, end)
	if err != nil {
		return 0, err
	}
	n, _ := list.Distance[T](first, suffix)
	return n, nil
}

// RemoveRange removes the elements from start up to but not including
// end.
func (ls *List[T]) RemoveRange(start, end Index[T]) error {
	return ls.ReplaceRange(start, end)
}

// ReplaceRange replaces the elements from start up to but not
// including end with vals. If vals is empty, this is the same as
// [List.RemoveRange].
func (ls *List[T]) ReplaceRange(start, end Index[T], vals ...T) error {
	_, prefix, suffix, err := ls.bounds(start, end)
	if err != nil {
		return err
	}

	r := list.Collect[T, *list.SingleNode[T]](slices.Values(vals))
	ls.chain.Splice(prefix, r, suffix)
	return nil
}

// Splice inserts vals before the element at i, or at the end if i is
// the end index.
func (ls *List[T]) Splice(i Index[T], vals ...T) error {
	return ls.ReplaceRange(i, i, vals...)
}

// Slice returns a new list containing copies of the elements from
// start up to but not including end. Later changes to either list do
// not affect the other.
func (ls *List[T]) Slice(start, end Index[T]) (*List[T], error) {
	first, _, suffix, err := ls.bounds(start, end)
	if err != nil {
		return nil, err
	}

	var s List[T]
	s.chain.Splice(nil, list.CloneUntil[T](first, suffix), nil)
	return &s, nil
}

// SetSlice replaces the elements from start up to but not including
// end with copies of the elements of src. src may be ls itself.
func (ls *List[T]) SetSlice(start, end Index[T], src *List[T]) error {
	_, prefix, suffix, err := ls.bounds(start, end)
	if err != nil {
		return err
	}

	var r list.Ends[T, *list.SingleNode[T]]
	if src != nil {
		r = list.CloneUntil[T](src.chain.Head(), nil)
	}
	ls.chain.Splice(prefix, r, suffix)
	return nil
}

// String formats the list as its elements in square brackets.
func (ls *List[T]) String() string {
	return format(ls.All())
}
