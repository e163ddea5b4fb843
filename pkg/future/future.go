package future

import (
	"context"
	"sync"

	"github.com/msfrms/concurrent/pkg/queue"
	"github.com/msfrms/concurrent/pkg/try"
)

// Future is a single-assignment container for an eventually available
// try.Try[R]. It is bound to one queue at construction; every observer
// callback is dispatched through that queue, in registration order.
type Future[R any] struct {
	q         queue.Queue
	mu        sync.Mutex
	value     *try.Try[R]
	callbacks []func(try.Try[R])
}

// New schedules producer on q immediately and returns the pending future.
// The producer receives a one-shot completion handle; calls after the
// first are ignored. Construction never blocks the caller.
func New[R any](q queue.Queue, producer func(complete func(try.Try[R]))) *Future[R] {
	f := pending[R](q)
	q.Async(func() {
		producer(f.complete)
	})
	return f
}

// FromTry wraps an already known result, dispatching completion through
// the queue rather than synchronously to preserve ordering relative to
// other queued work.
func FromTry[R any](q queue.Queue, t try.Try[R]) *Future[R] {
	return New(q, func(complete func(try.Try[R])) {
		complete(t)
	})
}

// Value is an immediately successful future.
func Value[R any](q queue.Queue, v R) *Future[R] {
	return FromTry(q, try.Success(v))
}

// Err is an immediately failed future.
func Err[R any](q queue.Queue, err error) *Future[R] {
	return FromTry(q, try.Fail[R](err))
}

// pending creates a future completed externally by combinators.
func pending[R any](q queue.Queue) *Future[R] {
	return &Future[R]{q: q}
}

// complete stores the terminal value exactly once and drains the callback
// list. The lock is never held while user callbacks run.
func (f *Future[R]) complete(t try.Try[R]) {
	f.mu.Lock()
	if f.value != nil {
		f.mu.Unlock()
		return
	}
	f.value = &t
	cbs := f.callbacks
	f.callbacks = nil
	f.mu.Unlock()

	for _, cb := range cbs {
		f.dispatch(cb, t)
	}
}

func (f *Future[R]) dispatch(cb func(try.Try[R]), t try.Try[R]) {
	f.q.Async(func() {
		cb(t)
	})
}

// Respond registers cb to run on the bound queue with the eventual result.
// Registration after completion dispatches cb with the stored value, still
// through the queue. Returns the receiver so independent observers chain.
// Every other combinator derives from Respond.
func (f *Future[R]) Respond(cb func(try.Try[R])) *Future[R] {
	f.mu.Lock()
	if f.value != nil {
		t := *f.value
		f.mu.Unlock()
		f.dispatch(cb, t)
		return f
	}
	f.callbacks = append(f.callbacks, cb)
	f.mu.Unlock()
	return f
}

// OnSuccess registers an observer for the success variant only.
func (f *Future[R]) OnSuccess(cb func(R)) *Future[R] {
	return f.Respond(func(t try.Try[R]) {
		t.OnSuccess(cb)
	})
}

// OnFailure registers an observer for the failure variant only.
func (f *Future[R]) OnFailure(cb func(error)) *Future[R] {
	return f.Respond(func(t try.Try[R]) {
		t.OnFailure(cb)
	})
}

// Foreach is OnSuccess without the chaining result.
func (f *Future[R]) Foreach(cb func(R)) {
	f.Respond(func(t try.Try[R]) {
		t.Foreach(cb)
	})
}

// Observe mirrors the future onto another queue: the returned future
// carries the same eventual value but dispatches its callbacks on q.
func (f *Future[R]) Observe(q queue.Queue) *Future[R] {
	out := pending[R](q)
	f.Respond(out.complete)
	return out
}

// Await blocks until completion or ctx expiry and unwraps the result.
// It is the boundary between callback composition and straight-line code.
func (f *Future[R]) Await(ctx context.Context) (R, error) {
	done := make(chan try.Try[R], 1)
	f.Respond(func(t try.Try[R]) {
		done <- t
	})
	select {
	case t := <-done:
		return t.Get()
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}
