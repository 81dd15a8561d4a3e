package dvec

// Unwrap consumes v and returns its slice without copying. Any later use of
// v panics with ErrMoved.
func (v *Vec[A]) Unwrap() []A {
	v.checkNotBorrowed("Unwrap")
	data := v.data
	v.data = nil
	v.state = stateMoved
	return data
}

// Move transfers ownership to a new handle and invalidates v. The new
// handle keeps v's name, recorder and copier.
func (v *Vec[A]) Move() *Vec[A] {
	v.checkNotBorrowed("Move")
	nv := &Vec[A]{
		data:      v.data,
		name:      v.name,
		recorder:  v.recorder,
		copier:    v.copier,
		checkouts: v.checkouts,
	}
	v.data = nil
	v.state = stateMoved
	return nv
}

// Send moves v onto ch, typically to hand it to another goroutine.
// It blocks until the receiver is ready.
func (v *Vec[A]) Send(ch chan<- *Vec[A]) {
	ch <- v.Move()
}
