package ctxiter

import (
	"context"
)

// Iterator is a generic interface for one-directional traversal through
// a collection or stream of items.
type Iterator[T any] interface {
	// Next traverses the iterator to the next element
	// Returns true if the iterator advanced, or false if there are no more
	// elements or if an error occured (see Error() below)
	Next(ctx context.Context) bool

	// Get returns current value referred to by the iterator
	Get(ctx context.Context) T

	// Error returns a non-nil value if an error occured processing Next()
	Error() error
}

// Size is an interface that can be implemented by an iterator that
// knows the number of elements in the collection when it is initialized
type Size[T any] interface {
	Size() uint
}

// ContextIterator is implemented by iterators that carry a read-only
// context value of type C alongside the elements they produce.
//
// WithCtx, MapCtx and FilterCtx all implement ContextIterator, as does any
// hand-written iterator exposing the same methods.  The pointer returned
// by Context refers to data owned by the iterator and must not be modified
// by the caller.
type ContextIterator[T any, C any] interface {
	Iterator[T]

	// Context returns the context value carried by the iterator
	Context() *C
}
