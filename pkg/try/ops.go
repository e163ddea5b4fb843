package try

// OnSuccess invokes f iff the Try holds a success, returning the receiver
// unchanged so observers can be chained without altering the value.
func (t Try[T]) OnSuccess(f func(T)) Try[T] {
	if t.isSuccess {
		f(t.value)
	}
	return t
}

// OnFailure invokes f iff the Try holds a failure, returning the receiver
// unchanged.
func (t Try[T]) OnFailure(f func(error)) Try[T] {
	if !t.isSuccess {
		f(t.err)
	}
	return t
}

// Foreach is OnSuccess without the chaining result.
func (t Try[T]) Foreach(f func(T)) {
	if t.isSuccess {
		f(t.value)
	}
}

// Filter keeps a success whose value satisfies p; a rejected value becomes
// a *NoSuchElementError failure. Failures pass through untouched.
func (t Try[T]) Filter(p func(T) bool) Try[T] {
	if !t.isSuccess || p(t.value) {
		return t
	}
	return Fail[T](noSuchElement(t.value))
}

// Handle converts a failure into a success by applying f to the error.
// A success passes through untouched.
func (t Try[T]) Handle(f func(error) T) Try[T] {
	if t.isSuccess {
		return t
	}
	return Success(f(t.err))
}

// Rescue is Handle for recovery functions that can themselves fail.
func (t Try[T]) Rescue(f func(error) Try[T]) Try[T] {
	if t.isSuccess {
		return t
	}
	return f(t.err)
}

// Transform moves from Try[In] to Try[Out]: a success is fed to f, a
// failure short-circuits past f. Map and FlatMap are special cases.
func Transform[In, Out any](t Try[In], f func(In) Try[Out]) Try[Out] {
	if t.IsFailure() {
		return FailFrom[In, Out](t)
	}
	return f(t.Result())
}

// FlatMap is a named alias for Transform.
func FlatMap[In, Out any](t Try[In], f func(In) Try[Out]) Try[Out] {
	return Transform(t, f)
}

// Map transforms a successful value with a function that cannot fail.
// Use Transform when f can fail.
func Map[In, Out any](t Try[In], f func(In) Out) Try[Out] {
	return Transform(t, func(v In) Try[Out] {
		return Success(f(v))
	})
}
