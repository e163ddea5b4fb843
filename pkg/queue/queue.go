package queue

import "time"

// Queue schedules units of work. Implementations decide ordering: Serial
// guarantees FIFO execution, Goroutines guarantees nothing beyond
// eventual execution.
type Queue interface {
	// Async schedules fn for execution without blocking the caller.
	Async(fn func())
	// AsyncAfter schedules fn for execution once delay elapses. The
	// returned Timer cancels the submission if it has not fired yet.
	AsyncAfter(delay time.Duration, fn func()) Timer
}

// Timer is a handle to a delayed submission.
type Timer interface {
	// Cancel drops the pending submission. It reports false when the work
	// already fired or was cancelled before.
	Cancel() bool
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Cancel() bool {
	return h.t.Stop()
}

// Goroutines returns a queue running every submission on its own
// goroutine. There is no ordering guarantee between submissions.
func Goroutines() Queue {
	return goroutineQueue{}
}

type goroutineQueue struct{}

func (goroutineQueue) Async(fn func()) {
	go fn()
}

func (goroutineQueue) AsyncAfter(delay time.Duration, fn func()) Timer {
	return timerHandle{t: time.AfterFunc(delay, fn)}
}
