/*
Package ctxiter provides iterator adaptors that carry a piece of read-only
context data alongside every element they produce.

The problem the package solves is naming the type of a wrapped iterator.
A mapping closure that captures its environment has an unnameable type, so
an iterator built around it cannot be written down as a struct field or an
interface method's return type without boxing it behind an interface
value.  By moving the captured data into the iterator itself and handing
it to a plain function on every element, the whole chain stays a concrete,
nameable type:

	type addOffset = ctxiter.MapFunc[int, int, int]
	type offsetIterator = ctxiter.MapCtx[int, int, int,
		*ctxiter.WithCtx[int, int, *ranges.Iterator[int]]]

Adaptors delegate to whatever iterator they wrap;  they add no goroutines,
no channels and no allocation per element.  The context value is owned by
the wrapper and must not be modified through the pointer handed to map and
filter functions.
*/
package ctxiter
