package dvec

import (
	"sync"
	"testing"
)

type countingRecorder struct {
	mu        sync.Mutex
	checkouts map[string]int
	faults    map[Kind]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		checkouts: make(map[string]int),
		faults:    make(map[Kind]int),
	}
}

func (r *countingRecorder) CheckedOut(vec string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkouts[vec]++
}

func (r *countingRecorder) Faulted(_ string, kind Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faults[kind]++
}

func TestVecMetrics(t *testing.T) {
	v := New[int](WithCapacity(4))

	// Test initial state
	m := v.Metrics()
	if m.Len != 0 || m.Cap != 4 || m.Utilization != 0 || m.Checkouts != 0 {
		t.Errorf("initial Metrics = %+v", m)
	}
	if m.State != "present" {
		t.Errorf("initial State = %q, want present", m.State)
	}

	v.Push(1)
	v.Push(2)
	m = v.Metrics()
	if m.Len != 2 || m.Utilization != 0.5 {
		t.Errorf("Metrics after two pushes = %+v", m)
	}

	v.Reverse()
	if v.Metrics().Checkouts != 1 {
		t.Errorf("Checkouts = %d, want 1", v.Metrics().Checkouts)
	}

	// Metrics is safe to read while checked out
	v.Swap(func(data []int) []int {
		m = v.Metrics()
		return data
	})
	if m.State != "checked_out" || m.Len != 0 || m.Cap != 0 {
		t.Errorf("Metrics while checked out = %+v", m)
	}
}

func TestVecMetricsZeroCapacity(t *testing.T) {
	v := FromSlice[int](nil)
	if u := v.Metrics().Utilization; u != 0 {
		t.Errorf("Utilization with zero capacity = %f, want 0", u)
	}
}

func TestVecMetricsAfterUnwrap(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	v.Unwrap()

	m := v.Metrics()
	if m.State != "moved" || m.Len != 0 || m.Cap != 0 {
		t.Errorf("Metrics after Unwrap = %+v", m)
	}
}

func TestRecorderEvents(t *testing.T) {
	r := newCountingRecorder()
	v := FromSlice([]int{1, 2}, WithName("jobs"), WithRecorder(r))

	v.Push(3)
	v.Pop()
	v.Shift()
	v.Pop()
	expectPanic(t, ErrEmptyContainer, func() { v.Pop() })
	expectPanic(t, ErrIndexOutOfRange, func() { v.GetElt(0) })

	if r.checkouts["jobs"] != 4 {
		t.Errorf("checkouts[jobs] = %d, want 4", r.checkouts["jobs"])
	}
	if r.faults[KindEmptyContainer] != 1 || r.faults[KindIndexOutOfRange] != 1 {
		t.Errorf("faults = %v", r.faults)
	}

	expectPanic(t, ErrReentrantAccess, func() {
		v.Swap(func(data []int) []int {
			v.Len()
			return data
		})
	})
	if r.faults[KindReentrantAccess] != 1 || r.faults[KindPoisoned] != 1 {
		t.Errorf("faults after reentrant Swap = %v", r.faults)
	}
}
