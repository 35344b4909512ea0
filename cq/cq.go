// Package cq implements simple concurrent queues and stacks on top of
// [xlist.Bidirectional]. Each one owns its list from a single
// goroutine and every access to it is serialized through channels.
package cq

import (
	"sync"

	"deedles.dev/xlist"
)

// buffer is the machinery shared by Queue and Stack. The only
// difference between the two is which end of the list values are
// taken from.
type buffer[T any] struct {
	start sync.Once

	done  chan struct{}
	close sync.Once

	add chan T
	get chan T
}

func (b *buffer[T]) init(lifo bool) {
	b.start.Do(func() {
		b.done = make(chan struct{})
		b.add = make(chan T)
		b.get = make(chan T)

		go b.run(lifo)
	})
}

func (b *buffer[T]) stop() {
	b.close.Do(func() {
		close(b.done)
	})
}

func (b *buffer[T]) run(lifo bool) {
	defer close(b.get)

	var s xlist.Bidirectional[T]
	peek, take := s.First, s.RemoveFirst
	if lifo {
		peek, take = s.Last, s.RemoveLast
	}

	for {
		var get chan T
		next, ok := peek()
		if ok {
			get = b.get
		}

		select {
		case <-b.done:
			return

		case v := <-b.add:
			s.Append(v)

		case get <- next:
			// get is nil unless peek found next, so s is not empty and
			// take can't fail.
			_, _ = take()
		}
	}
}

// A Queue concurrently collects values and returns them in FIFO
// order. A zero value Queue is ready to use.
type Queue[T any] struct {
	buf buffer[T]
}

// Stop stops the queue. Values still in the queue are discarded.
func (q *Queue[T]) Stop() {
	q.buf.init(false)
	q.buf.stop()
}

// Add returns a channel that enqueues values sent to it. This channel
// must not be closed.
func (q *Queue[T]) Add() chan<- T {
	q.buf.init(false)
	return q.buf.add
}

// Get returns a channel that yields values from the queue when they
// are available. The channel will be closed when the Queue is
// stopped.
func (q *Queue[T]) Get() <-chan T {
	q.buf.init(false)
	return q.buf.get
}

// A Stack concurrently collects values and returns them in LIFO
// order, always yielding the most recently added value that has not
// been received yet. A zero value Stack is ready to use.
type Stack[T any] struct {
	buf buffer[T]
}

// Stop stops the stack. Values still on the stack are discarded.
func (s *Stack[T]) Stop() {
	s.buf.init(true)
	s.buf.stop()
}

// Push returns a channel that pushes values sent to it onto the
// stack. This channel must not be closed.
func (s *Stack[T]) Push() chan<- T {
	s.buf.init(true)
	return s.buf.add
}

// Pop returns a channel that yields the top of the stack whenever the
// stack is not empty. The channel will be closed when the Stack is
// stopped.
func (s *Stack[T]) Pop() <-chan T {
	s.buf.init(true)
	return s.buf.get
}
