// Package list contains the node and chain machinery shared by the
// singly- and doubly-linked lists of the parent package.
package list

// Node is the capability shared by [SingleNode] and [DoubleNode]. N is
// always the pointer type implementing the constraint, so a nil N is a
// valid receiver for Link, InsertAfter and InsertBefore.
type Node[T, N any] interface {
	comparable

	// Value returns the value stored in the node.
	Value() T

	// Next returns the node that follows the receiver.
	Next() N

	// Link makes next the successor of the receiver. If the receiver
	// is nil, only the back-reference of next, if any, is updated.
	Link(next N)

	// InsertAfter allocates a node holding v between the receiver and
	// its successor and returns it. A nil receiver returns a new,
	// unlinked node.
	InsertAfter(v T) N

	// InsertBefore returns a node holding v whose successor is the
	// receiver.
	InsertBefore(v T) N

	// Detach clears the receiver's links and marks it as no longer
	// being part of any chain. It does not touch its neighbours.
	Detach()
}
