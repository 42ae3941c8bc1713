package ctxiter

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/jake-scott/go-ctxiter/iter/channel"
	"github.com/jake-scott/go-ctxiter/iter/ranges"
	"github.com/jake-scott/go-ctxiter/iter/scanner"
	"github.com/jake-scott/go-ctxiter/iter/slice"
)

// WithCtx wraps an iterator of element type T together with a context
// value of type C.  Elements pass through unchanged;  the context is made
// available to downstream map and filter adaptors through the Context()
// method.
//
// The wrapper is generic over the concrete iterator type I so that the
// whole chain remains a single nameable type with no interface
// indirection.  Producing an element costs one delegated method call
// beyond the underlying iterator's own work.
type WithCtx[T, C any, I Iterator[T]] struct {
	iter    I
	context C
}

// WithContext attaches the provided context value to an iterator.
//
// The element type T cannot be derived from the iterator argument by the
// compiler, so it must be supplied explicitly;  the remaining type
// parameters are inferred:
//
//	it := slice.New([]string{"a", "b"})
//	wrapped := ctxiter.WithContext[string](&it, myConfig)
//
// The producer specific constructors (SliceWithContext and friends) do
// not have this limitation.
func WithContext[T, C any, I Iterator[T]](it I, context C) *WithCtx[T, C, I] {
	return &WithCtx[T, C, I]{
		iter:    it,
		context: context,
	}
}

// SliceWithContext instantiates a context carrying iterator backed by the
// provided slice.
func SliceWithContext[T, C any](s []T, context C) *WithCtx[T, C, *slice.Iterator[T]] {
	it := slice.New(s)
	return WithContext[T, C](&it, context)
}

// ChannelWithContext instantiates a context carrying iterator that reads
// elements from the provided channel until it is closed.
func ChannelWithContext[T, C any](ch chan T, context C) *WithCtx[T, C, *channel.Iterator[T]] {
	it := channel.New(ch)
	return WithContext[T, C](&it, context)
}

// ScannerWithContext instantiates a context carrying iterator that reads
// string tokens from the provided scanner.
func ScannerWithContext[C any](s scanner.Scanner, context C) *WithCtx[string, C, *scanner.Iterator] {
	it := scanner.New(s)
	return WithContext[string, C](&it, context)
}

// RangeWithContext instantiates a context carrying iterator over the
// half-open integer interval [begin, end).
func RangeWithContext[T constraints.Integer, C any](begin, end T, context C) *WithCtx[T, C, *ranges.Iterator[T]] {
	it := ranges.New(begin, end)
	return WithContext[T, C](&it, context)
}

// Next advances the underlying iterator.  It returns false when the
// underlying iterator is exhausted or reports an error.
func (w *WithCtx[T, C, I]) Next(ctx context.Context) bool {
	return w.iter.Next(ctx)
}

// Get returns the element the underlying iterator refers to.
func (w *WithCtx[T, C, I]) Get(ctx context.Context) T {
	return w.iter.Get(ctx)
}

// Error returns the underlying iterator's error, if any.
func (w *WithCtx[T, C, I]) Error() error {
	return w.iter.Error()
}

// Context returns the context value attached to the iterator.  The
// returned pointer refers to data owned by the wrapper and must not be
// used to modify it.
func (w *WithCtx[T, C, I]) Context() *C {
	return &w.context
}

// Size returns the size of the underlying iterator if it implements the
// Size interface, or zero if it cannot provide size information.
func (w *WithCtx[T, C, I]) Size() uint {
	if sh, ok := any(w.iter).(Size[T]); ok {
		return sh.Size()
	}
	return 0
}

// Map applies m to each element, keeping the element type.  A map to a
// different element type requires the non-OO MapWithContext() instead,
// due to limitations of Golang's generic syntax.
func (w *WithCtx[T, C, I]) Map(m MapFunc[T, C, T]) *MapCtx[T, C, T, *WithCtx[T, C, I]] {
	return MapWithContext[T, C, T](w, m)
}

// Filter produces the subset of elements for which f returns true.
func (w *WithCtx[T, C, I]) Filter(f FilterFunc[T, C]) *FilterCtx[T, C, *WithCtx[T, C, I]] {
	return FilterWithContext[T, C](w, f)
}
