package ctxiter

import (
	"context"
)

// MapFunc is a generic function that transforms a single element of type
// T into an element of type M, using the read-only context value carried
// by the iterator it is attached to.
//
// If an error is returned, traversal stops and the error is reported by
// the iterator's Error() method.
//
// Example:
//
//	func addOffset(i int, offset *int) (int, error) {
//	    return i + *offset, nil
//	}
type MapFunc[T, C, M any] func(T, *C) (M, error)

// MapCtx applies a transformation to each element of a context carrying
// iterator.  The transformation receives the element and a read-only
// pointer to the context on every call;  the context itself passes
// through unchanged, so mapped iterators can be mapped and filtered
// again.
//
// MapCtx is one-to-one:  it produces exactly as many elements as the
// iterator it wraps, and forwards the underlying size hint unchanged.
type MapCtx[T, C, M any, I ContextIterator[T, C]] struct {
	iter I
	m    MapFunc[T, C, M]
	cur  M
	err  error
}

// MapWithContext attaches a transformation to a context carrying
// iterator.  It is the non-OO version of the Map() methods, and must be
// used when the transformation returns a different type than the input
// elements, due to limitations of Golang's generic syntax.
//
// The leading type parameters cannot be derived from the function
// argument alone and are normally supplied explicitly:
//
//	mapped := ctxiter.MapWithContext[int, int, string](wrapped, stringify)
func MapWithContext[T, C, M any, I ContextIterator[T, C]](it I, m MapFunc[T, C, M]) *MapCtx[T, C, M, I] {
	return &MapCtx[T, C, M, I]{
		iter: it,
		m:    m,
	}
}

// Next advances the underlying iterator and applies the transformation to
// the element it produced, retaining the result for Get().  It returns
// false when the underlying iterator is exhausted or when the
// transformation returns an error.
func (w *MapCtx[T, C, M, I]) Next(ctx context.Context) bool {
	if w.err != nil {
		return false
	}

	if !w.iter.Next(ctx) {
		return false
	}

	v, err := w.m(w.iter.Get(ctx), w.iter.Context())
	if err != nil {
		w.err = err
		return false
	}

	w.cur = v
	return true
}

// Get returns the transformed value stored by the last successful Next
// call, or the zero value of type M if Next has not been called.
func (w *MapCtx[T, C, M, I]) Get(ctx context.Context) M {
	return w.cur
}

// Error returns the first error returned by the transformation if there
// was one, otherwise the underlying iterator's error.
func (w *MapCtx[T, C, M, I]) Error() error {
	if w.err != nil {
		return w.err
	}
	return w.iter.Error()
}

// Context returns the context value carried by the underlying iterator.
func (w *MapCtx[T, C, M, I]) Context() *C {
	return w.iter.Context()
}

// Size returns the size of the underlying iterator if it implements the
// Size interface, or zero if it cannot provide size information.  The
// transformation is one-to-one so the hint applies unchanged.
func (w *MapCtx[T, C, M, I]) Size() uint {
	if sh, ok := any(w.iter).(Size[T]); ok {
		return sh.Size()
	}
	return 0
}

// Map applies a further transformation to each element, keeping the
// element type.  Use the non-OO MapWithContext() for a map to a different
// element type.
func (w *MapCtx[T, C, M, I]) Map(m MapFunc[M, C, M]) *MapCtx[M, C, M, *MapCtx[T, C, M, I]] {
	return MapWithContext[M, C, M](w, m)
}

// Filter produces the subset of transformed elements for which f returns
// true.
func (w *MapCtx[T, C, M, I]) Filter(f FilterFunc[M, C]) *FilterCtx[M, C, *MapCtx[T, C, M, I]] {
	return FilterWithContext[M, C](w, f)
}
