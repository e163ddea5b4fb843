package future

import (
	"fmt"
	"time"

	"github.com/msfrms/concurrent/internal/guard"
	"github.com/msfrms/concurrent/pkg/queue"
	"github.com/msfrms/concurrent/pkg/try"
)

// TimeoutError marks a future that missed its deadline.
type TimeoutError struct {
	Deadline time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("future timed out after %s", e.Deadline)
}

// Timeout produces a future bound to q that completes with f's result if
// it arrives within d, or with a *TimeoutError once d elapses. A result
// arriving first cancels the pending timer; a timeout firing first
// detaches the forwarding path, so a late result is dropped. The original
// producer itself is never aborted.
func (f *Future[R]) Timeout(d time.Duration, q queue.Queue) *Future[R] {
	out := pending[R](q)
	detached := guard.NewCell(false)

	timer := q.AsyncAfter(d, func() {
		detached.Set(true)
		out.complete(try.Fail[R](&TimeoutError{Deadline: d}))
	})

	f.Respond(func(t try.Try[R]) {
		if detached.Get() {
			return
		}
		timer.Cancel()
		out.complete(t)
	})
	return out
}
