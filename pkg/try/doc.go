// Package try provides Try[T], a closed success-or-failure sum type with
// monadic transformation operators. It is the value algebra underneath
// package future and is purely synchronous.
//
// Highlights:
// - Success/Fail/FromCall: construct a Try[T]
// - Get/GetOrElse: unwrap at a boundary
// - OnSuccess/OnFailure/Foreach: side effects without altering the value
// - Map/Transform/FlatMap: move from Try[In] to Try[Out]
// - Filter: reject successes failing a predicate with NoSuchElementError
// - Handle/Rescue: the only operators turning a failure into a success
//
// A failure short-circuits every transformation except Handle and Rescue,
// carrying its identity and creation time across type boundaries.
package try
