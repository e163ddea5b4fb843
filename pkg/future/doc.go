// Package future provides Future[R], a single-assignment completion
// primitive over try.Try[R], plus the combinators to compose deferred
// results without callback bookkeeping at call sites.
//
// Highlights:
// - New/Value/Err/FromTry: construct a future bound to a queue
// - Respond/OnSuccess/OnFailure/Foreach: register exactly-once observers
// - Map/FlatMap/Transform: chain dependent asynchronous steps
// - Filter/Rescue/Handle: lift the try operators over completion
// - Join/Or: wait for both, or race for the first terminal event
// - Timeout/Observe: deadline a future or move it to another queue
// - Await: blocking unwrap at a synchronous boundary
//
// A future holds at most one terminal result. Observers registered before
// completion fire after it, in registration order, on the bound queue;
// observers registered later are dispatched immediately through the same
// queue. No operation blocks except Await, and no lock is held while user
// callbacks run.
package future
