package future

import (
	"github.com/msfrms/concurrent/internal/guard"
	"github.com/msfrms/concurrent/pkg/try"
)

// Pair carries the two results of a Join.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Either tags the winner of an Or race: left for the first future, right
// for the second.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

func (e Either[L, R]) IsLeft() bool {
	return e.isLeft
}

func (e Either[L, R]) IsRight() bool {
	return !e.isLeft
}

func (e Either[L, R]) Left() L {
	return e.left
}

func (e Either[L, R]) Right() R {
	return e.right
}

// Join waits for both futures to succeed and yields the pair. Either
// failure completes the joined future immediately with that error. The
// other branch keeps running; its result is discarded, not cancelled.
func Join[L, R any](a *Future[L], b *Future[R]) *Future[Pair[L, R]] {
	out := pending[Pair[L, R]](a.q)

	// Accumulator shared by the two completion paths, which may arrive
	// from different queues.
	left := guard.NewCell[*L](nil)
	right := guard.NewCell[*R](nil)
	arrived := &guard.Counter{}

	a.Respond(func(t try.Try[L]) {
		if t.IsFailure() {
			out.complete(try.FailFrom[L, Pair[L, R]](t))
			return
		}
		v := t.Result()
		left.Set(&v)
		if arrived.IncrementAndGet() == 2 {
			out.complete(try.Success(Pair[L, R]{Left: v, Right: *right.Get()}))
		}
	})
	b.Respond(func(t try.Try[R]) {
		if t.IsFailure() {
			out.complete(try.FailFrom[R, Pair[L, R]](t))
			return
		}
		v := t.Result()
		right.Set(&v)
		if arrived.IncrementAndGet() == 2 {
			out.complete(try.Success(Pair[L, R]{Left: *left.Get(), Right: v}))
		}
	})
	return out
}

// Or races two futures: the first terminal event wins, success or
// failure. The loser keeps running and its result is discarded; cleaning
// up whatever it holds is the caller's responsibility.
func Or[L, R any](a *Future[L], b *Future[R]) *Future[Either[L, R]] {
	out := pending[Either[L, R]](a.q)

	a.Respond(func(t try.Try[L]) {
		if t.IsFailure() {
			out.complete(try.FailFrom[L, Either[L, R]](t))
			return
		}
		out.complete(try.Success(Either[L, R]{left: t.Result(), isLeft: true}))
	})
	b.Respond(func(t try.Try[R]) {
		if t.IsFailure() {
			out.complete(try.FailFrom[R, Either[L, R]](t))
			return
		}
		out.complete(try.Success(Either[L, R]{right: t.Result()}))
	})
	return out
}
