// Package queue defines the execution-queue abstraction consumed by
// package future, plus two ready-made implementations.
//
// Highlights:
// - Queue: Async plus cancellable AsyncAfter
// - Serial: FIFO queue drained by a single goroutine
// - Goroutines: unordered queue, one goroutine per submission
//
// Futures are bound to one queue at construction; combinators such as
// Observe and Timeout rebind downstream work to another queue.
package queue
