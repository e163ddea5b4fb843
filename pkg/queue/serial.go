package queue

import (
	"sync"
	"time"

	ring "github.com/eapache/queue"
)

// SerialQueue executes submissions one at a time, in FIFO order, on a
// single drain goroutine. The backing ring buffer is not goroutine safe,
// so every access happens under the queue mutex.
type SerialQueue struct {
	name   string
	mu     sync.Mutex
	cond   *sync.Cond
	buf    *ring.Queue
	closed bool
}

// Serial creates a named FIFO queue and starts its drain goroutine.
// Close releases the goroutine once the backlog is empty.
func Serial(name string) *SerialQueue {
	q := &SerialQueue{
		name: name,
		buf:  ring.New(),
	}
	q.cond = sync.NewCond(&q.mu)
	go q.drain()
	return q
}

func (q *SerialQueue) Name() string {
	return q.name
}

func (q *SerialQueue) Async(fn func()) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.buf.Add(fn)
	q.mu.Unlock()
	q.cond.Signal()
}

func (q *SerialQueue) AsyncAfter(delay time.Duration, fn func()) Timer {
	return timerHandle{t: time.AfterFunc(delay, func() {
		q.Async(fn)
	})}
}

// Close stops accepting work. Already queued work still runs; the drain
// goroutine exits when the backlog empties.
func (q *SerialQueue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

func (q *SerialQueue) drain() {
	for {
		q.mu.Lock()
		for q.buf.Length() == 0 && !q.closed {
			q.cond.Wait()
		}
		if q.buf.Length() == 0 {
			q.mu.Unlock()
			return
		}
		fn := q.buf.Remove().(func())
		q.mu.Unlock()
		fn()
	}
}
