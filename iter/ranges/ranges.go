// Package ranges implements an iterator that counts through a half-open
// interval [begin, end) of integers.
//
// Ranges supports the Size hint interface.
package ranges

import (
	"context"

	"golang.org/x/exp/constraints"
)

// Iterator traverses the integers of type T in [begin, end), in
// ascending order.
type Iterator[T constraints.Integer] struct {
	begin T
	end   T
	pos   T
	err   error
}

// New returns an implementation of Iterator that counts from begin up to
// but not including end.  An interval with end <= begin is empty.  The
// iterator returned supports the Size interface.
func New[T constraints.Integer](begin, end T) Iterator[T] {
	return Iterator[T]{
		begin: begin,
		end:   end,
	}
}

// Size returns the number of integers in the interval, implementing the
// Size hint interface.
func (r *Iterator[T]) Size() uint {
	if r.end <= r.begin {
		return 0
	}
	return uint(r.end - r.begin)
}

// Next advances the iterator to the next integer of the interval.  It
// returns false when end is reached or the context is cancelled.
func (r *Iterator[T]) Next(ctx context.Context) bool {
	if r.begin+r.pos >= r.end {
		return false
	}

	select {
	case <-ctx.Done():
		r.err = ctx.Err()
		return false
	default:
	}

	r.pos++
	return true
}

// Get returns the integer the iterator refers to, or the zero value of
// type T if Next has not been called.
//
// The context is not used in this iterator implementation.
func (r *Iterator[T]) Get(ctx context.Context) T {
	if r.pos == 0 {
		var ret T
		return ret
	}

	return r.begin + r.pos - 1
}

// Error returns the context's error if the context is cancelled
// during a call to Next()
func (r *Iterator[T]) Error() error {
	return r.err
}
