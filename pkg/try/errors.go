package try

import "fmt"

// NoSuchElementError marks a success rejected by a Filter predicate.
type NoSuchElementError struct {
	msg string
}

func noSuchElement(value any) *NoSuchElementError {
	return &NoSuchElementError{msg: fmt.Sprintf("predicate rejected value: %v", value)}
}

func (e *NoSuchElementError) Error() string {
	return e.msg
}
