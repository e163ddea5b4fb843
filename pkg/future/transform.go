package future

import (
	"github.com/msfrms/concurrent/pkg/try"
)

// Transform is the foundational combinator: it waits for f, applies fn to
// the completed Try regardless of variant, and forwards the resulting
// future's value to the returned one. Map, FlatMap, Filter and Rescue are
// all expressible through it.
func Transform[In, Out any](f *Future[In], fn func(try.Try[In]) *Future[Out]) *Future[Out] {
	out := pending[Out](f.q)
	f.Respond(func(t try.Try[In]) {
		fn(t).Respond(out.complete)
	})
	return out
}

// Map produces a future on the same queue whose value is f's result with
// fn applied through the try algebra. A failure short-circuits past fn.
func Map[In, Out any](f *Future[In], fn func(In) Out) *Future[Out] {
	out := pending[Out](f.q)
	f.Respond(func(t try.Try[In]) {
		out.complete(try.Map(t, fn))
	})
	return out
}

// FlatMap chains a dependent asynchronous step: on success the returned
// future delegates entirely to fn's future, on failure it short-circuits
// with the same error without invoking fn.
func FlatMap[In, Out any](f *Future[In], fn func(In) *Future[Out]) *Future[Out] {
	return Transform(f, func(t try.Try[In]) *Future[Out] {
		if t.IsFailure() {
			return FromTry(f.q, try.FailFrom[In, Out](t))
		}
		return fn(t.Result())
	})
}

// Filter rejects successes failing p with a try.NoSuchElementError.
func (f *Future[R]) Filter(p func(R) bool) *Future[R] {
	out := pending[R](f.q)
	f.Respond(func(t try.Try[R]) {
		out.complete(t.Filter(p))
	})
	return out
}

// Rescue recovers a failure with a function that can itself fail.
// A success passes through untouched.
func (f *Future[R]) Rescue(fn func(error) try.Try[R]) *Future[R] {
	out := pending[R](f.q)
	f.Respond(func(t try.Try[R]) {
		out.complete(t.Rescue(fn))
	})
	return out
}

// Handle converts any failure into a success by applying fn to the error.
func (f *Future[R]) Handle(fn func(error) R) *Future[R] {
	out := pending[R](f.q)
	f.Respond(func(t try.Try[R]) {
		out.complete(t.Handle(fn))
	})
	return out
}
