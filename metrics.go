package dvec

// Recorder receives container events. Implementations must be safe for
// concurrent use, since many containers on many goroutines may share one.
type Recorder interface {
	CheckedOut(vec string)
	Faulted(vec string, kind Kind)
}

type nopRecorder struct{}

func (nopRecorder) CheckedOut(string)    {}
func (nopRecorder) Faulted(string, Kind) {}

// VecMetrics contains statistical information about a vector.
type VecMetrics struct {
	Len         int     // Number of elements
	Cap         int     // Capacity of the backing slice
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
	Checkouts   uint64  // Full checkouts performed so far
	State       string  // present, checked_out, poisoned or moved
}

// Checkouts returns the number of full checkouts performed on v.
func (v *Vec[A]) Checkouts() uint64 {
	return v.checkouts
}

// Poisoned reports whether a faulted transformation left v unusable.
func (v *Vec[A]) Poisoned() bool {
	return v.state == statePoisoned
}

// CheckedOut reports whether v's data is currently handed out.
func (v *Vec[A]) CheckedOut() bool {
	return v.state == stateCheckedOut
}

// Metrics returns a snapshot of v. It never panics; Len and Cap are zero
// while the data is not present.
func (v *Vec[A]) Metrics() VecMetrics {
	m := VecMetrics{
		Checkouts: v.checkouts,
		State:     v.state.String(),
	}
	if v.state == statePresent {
		m.Len = len(v.data)
		m.Cap = cap(v.data)
		if m.Cap > 0 {
			m.Utilization = float64(m.Len) / float64(m.Cap)
		}
	}
	return m
}

// rec returns v's recorder; the zero Vec has none.
func (v *Vec[A]) rec() Recorder {
	if v.recorder == nil {
		return nopRecorder{}
	}
	return v.recorder
}
