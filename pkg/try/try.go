package try

import (
	"time"

	"github.com/google/uuid"
)

// Try is a closed sum over two variants: success with a value of T, or
// failure with an error. Exactly one variant is populated and the value is
// immutable after construction.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Try[T] {
	return Try[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Try[T] {
	return Try[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromCall lifts a (T, error) call into a Try.
func FromCall[T any](call func() (T, error)) Try[T] {
	v, err := call()
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// FailFrom carries a failure across a type boundary, preserving the
// original identity and creation time.
func FailFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (t Try[T]) Result() T {
	return t.value
}

func (t Try[T]) Err() error {
	return t.err
}

func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

func (t Try[T]) IsFailure() bool {
	return !t.isSuccess
}

func (t Try[T]) Id() uuid.UUID {
	return t.id
}

func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

// Get unwraps at a synchronous boundary: the held value, or the stored
// error if the Try is a failure.
func (t Try[T]) Get() (T, error) {
	if t.isSuccess {
		return t.value, nil
	}
	var zero T
	return zero, t.err
}

func (t Try[T]) GetOrElse(def T) T {
	if t.isSuccess {
		return t.value
	}
	return def
}
