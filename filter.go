package ctxiter

import (
	"context"
)

// FilterFunc is a generic function type that takes a single element and a
// read-only pointer to the iterator's context value, and returns true if
// the element is to be included or false if the element is to be excluded
// from the result set.
//
// If an error is returned, traversal stops and the error is reported by
// the iterator's Error() method.
//
// Example:
//
//	func findMultiples(i int, modulus *int) (bool, error) {
//	    return i%*modulus == 0, nil
//	}
type FilterFunc[T, C any] func(T, *C) (bool, error)

// FilterCtx produces the subset of a context carrying iterator's elements
// for which a predicate returns true.  The predicate receives each
// element and a read-only pointer to the context;  the context itself
// passes through unchanged.
//
// FilterCtx does not support the Size interface, as the number of
// elements it will produce is not known up front.
type FilterCtx[T, C any, I ContextIterator[T, C]] struct {
	iter I
	f    FilterFunc[T, C]
	err  error
}

// FilterWithContext attaches a filter predicate to a context carrying
// iterator.  It is the non-OO version of the Filter() methods.
func FilterWithContext[T, C any, I ContextIterator[T, C]](it I, f FilterFunc[T, C]) *FilterCtx[T, C, I] {
	return &FilterCtx[T, C, I]{
		iter: it,
		f:    f,
	}
}

// Next advances the underlying iterator until the predicate accepts an
// element.  It returns false when the underlying iterator is exhausted or
// when the predicate returns an error.
func (w *FilterCtx[T, C, I]) Next(ctx context.Context) bool {
	if w.err != nil {
		return false
	}

	for w.iter.Next(ctx) {
		ok, err := w.f(w.iter.Get(ctx), w.iter.Context())
		if err != nil {
			w.err = err
			return false
		}
		if ok {
			return true
		}
	}

	return false
}

// Get returns the element the underlying iterator refers to.
func (w *FilterCtx[T, C, I]) Get(ctx context.Context) T {
	return w.iter.Get(ctx)
}

// Error returns the first error returned by the predicate if there was
// one, otherwise the underlying iterator's error.
func (w *FilterCtx[T, C, I]) Error() error {
	if w.err != nil {
		return w.err
	}
	return w.iter.Error()
}

// Context returns the context value carried by the underlying iterator.
func (w *FilterCtx[T, C, I]) Context() *C {
	return w.iter.Context()
}

// Map applies m to each element that passes the filter, keeping the
// element type.  Use the non-OO MapWithContext() for a map to a different
// element type.
func (w *FilterCtx[T, C, I]) Map(m MapFunc[T, C, T]) *MapCtx[T, C, T, *FilterCtx[T, C, I]] {
	return MapWithContext[T, C, T](w, m)
}

// Filter applies a further predicate to the elements that pass this
// filter.
func (w *FilterCtx[T, C, I]) Filter(f FilterFunc[T, C]) *FilterCtx[T, C, *FilterCtx[T, C, I]] {
	return FilterWithContext[T, C](w, f)
}
