// Package xlist provides generic linked lists that support splicing
// at arbitrary positions through index values, independent slices and
// non-mutating higher-order transforms.
//
// Two lists are provided. [List] is singly-linked and only walks
// forwards. [Bidirectional] additionally keeps back-references so that
// it can be walked and indexed in both directions.
//
// Neither list is safe for concurrent use.
package xlist

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"
)

var (
	// ErrOutOfBounds is returned when an index would move past either
	// end of a list, or when the end of a range cannot be reached from
	// its start.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrInvalidIndex is returned when an operation requires an index
	// that refers to an element but was given the end index, or when
	// an element is removed from an empty list.
	ErrInvalidIndex = errors.New("index does not refer to an element")

	// ErrStaleIndex is returned when an index was created by a
	// different list or the elements that it refers to have since been
	// removed or separated.
	ErrStaleIndex = errors.New("stale index")
)

func stale(reason string) error {
	slog.Debug("rejected stale list index", "reason", reason)
	return fmt.Errorf("%w: %s", ErrStaleIndex, reason)
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

func format[T any](seq iter.Seq[T]) string {
	var buf strings.Builder
	buf.WriteByte('[')
	sep := ""
	for v := range seq {
		buf.WriteString(sep)
		fmt.Fprint(&buf, v)
		sep = " "
	}
	buf.WriteByte(']')
	return buf.String()
}

func mapped[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}

func filtered[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}
