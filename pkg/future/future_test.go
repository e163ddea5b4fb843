package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msfrms/concurrent/pkg/queue"
	"github.com/msfrms/concurrent/pkg/try"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// deferred returns a pending future plus the completion handle captured
// from its producer.
func deferred[R any](t *testing.T, q queue.Queue) (*Future[R], func(try.Try[R])) {
	t.Helper()
	handle := make(chan func(try.Try[R]), 1)
	f := New(q, func(complete func(try.Try[R])) {
		handle <- complete
	})
	select {
	case complete := <-handle:
		return f, complete
	case <-time.After(2 * time.Second):
		t.Fatal("producer was never scheduled")
		return nil, nil
	}
}

func TestValue_RespondBeforeAndAfterCompletion(t *testing.T) {
	t.Parallel()

	q := queue.Serial("value")
	defer q.Close()

	f := Value(q, 42)

	before := make(chan try.Try[int], 1)
	f.Respond(func(res try.Try[int]) { before <- res })

	v, err := f.Await(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	after := make(chan try.Try[int], 1)
	f.Respond(func(res try.Try[int]) { after <- res })

	for _, ch := range []chan try.Try[int]{before, after} {
		select {
		case res := <-ch:
			require.True(t, res.IsSuccess())
			assert.Equal(t, 42, res.Result())
		case <-time.After(2 * time.Second):
			t.Fatal("observer never fired")
		}
	}
}

func TestRespond_RegistrationOrder(t *testing.T) {
	t.Parallel()

	q := queue.Serial("order")
	defer q.Close()

	f, complete := deferred[int](t, q)

	var order []int
	done := make(chan struct{})

	f.Respond(func(try.Try[int]) { order = append(order, 1) })
	f.Respond(func(try.Try[int]) { order = append(order, 2) })
	f.Respond(func(try.Try[int]) { order = append(order, 3) })
	f.Respond(func(try.Try[int]) { close(done) })

	complete(try.Success(7))

	select {
	case <-done:
		assert.Equal(t, []int{1, 2, 3}, order)
	case <-time.After(2 * time.Second):
		t.Fatal("observers never fired")
	}
}

func TestComplete_SecondCallIgnored(t *testing.T) {
	t.Parallel()

	q := queue.Serial("once")
	defer q.Close()

	f, complete := deferred[int](t, q)

	fired := make(chan try.Try[int], 4)
	f.Respond(func(res try.Try[int]) { fired <- res })

	complete(try.Success(1))
	complete(try.Success(2))
	complete(try.Fail[int](errors.New("late")))

	v, err := f.Await(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	res := <-fired
	assert.Equal(t, 1, res.Result())

	select {
	case extra := <-fired:
		t.Fatalf("observer fired twice, second value: %v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestErr_Constructor(t *testing.T) {
	t.Parallel()

	q := queue.Serial("err")
	defer q.Close()

	boom := errors.New("boom")
	_, err := Err[int](q, boom).Await(testContext(t))
	assert.Equal(t, boom, err)
}

func TestFromTry_DispatchesThroughQueue(t *testing.T) {
	t.Parallel()

	q := queue.Serial("fromtry")
	defer q.Close()

	// work queued before the future must run before its completion
	var order []string
	q.Async(func() { order = append(order, "earlier") })

	f := FromTry(q, try.Success("later"))
	done := make(chan struct{})
	f.OnSuccess(func(v string) {
		order = append(order, v)
		close(done)
	})

	select {
	case <-done:
		assert.Equal(t, []string{"earlier", "later"}, order)
	case <-time.After(2 * time.Second):
		t.Fatal("completion never dispatched")
	}
}

func TestOnSuccessOnFailure(t *testing.T) {
	t.Parallel()

	q := queue.Serial("filtered")
	defer q.Close()

	boom := errors.New("boom")
	succeeded := make(chan int, 1)
	failed := make(chan error, 1)

	Value(q, 3).
		OnFailure(func(err error) { t.Error("success future reported failure") }).
		OnSuccess(func(v int) { succeeded <- v })

	Err[int](q, boom).
		OnSuccess(func(v int) { t.Error("failed future reported success") }).
		OnFailure(func(err error) { failed <- err })

	assert.Equal(t, 3, <-succeeded)
	assert.Equal(t, boom, <-failed)
}

func TestForeach(t *testing.T) {
	t.Parallel()

	q := queue.Serial("foreach")
	defer q.Close()

	got := make(chan string, 1)
	Value(q, "v").Foreach(func(v string) { got <- v })

	assert.Equal(t, "v", <-got)
}

func TestObserve_MirrorsValueOnOtherQueue(t *testing.T) {
	t.Parallel()

	src := queue.Serial("observe-src")
	defer src.Close()
	dst := queue.Serial("observe-dst")
	defer dst.Close()

	v, err := Value(src, 11).Observe(dst).Await(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, 11, v)
}

func TestAwait_ContextExpiry(t *testing.T) {
	t.Parallel()

	q := queue.Serial("await")
	defer q.Close()

	f, _ := deferred[int](t, q)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConstruction_NeverBlocks(t *testing.T) {
	t.Parallel()

	q := queue.Serial("nonblocking")
	defer q.Close()

	start := time.Now()
	f := New(q, func(complete func(try.Try[int])) {
		time.Sleep(100 * time.Millisecond)
		complete(try.Success(1))
	})
	assert.Less(t, time.Since(start), 50*time.Millisecond)

	v, err := f.Await(testContext(t))
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
