package dvec

// Cloner is implemented by element types that know how to duplicate
// themselves. See Cloning.
type Cloner[A any] interface {
	Clone() A
}

// UseCopier sets the function used to duplicate elements in Get, GetElt,
// At, First, Last, PushAll, PushSlice and GrowSetElt. A nil copier means
// plain assignment, which is a shallow copy.
func (v *Vec[A]) UseCopier(copier func(A) A) *Vec[A] {
	v.checkNotBorrowed("UseCopier")
	v.copier = copier
	return v
}

// Cloning makes v duplicate elements with their Clone method.
func Cloning[A Cloner[A]](v *Vec[A]) *Vec[A] {
	return v.UseCopier(func(a A) A { return a.Clone() })
}

func (v *Vec[A]) dup(a A) A {
	if v.copier == nil {
		return a
	}
	return v.copier(a)
}

// Get returns a copy of the current contents. Use Unwrap to take the
// contents without copying.
func (v *Vec[A]) Get() []A {
	var out []A
	v.inspect("Get", func(data []A) {
		out = make([]A, len(data))
		for i, e := range data {
			out[i] = v.dup(e)
		}
	})
	return out
}

// GetElt returns a copy of the element at idx.
func (v *Vec[A]) GetElt(idx int) A {
	v.checkNotBorrowed("GetElt")
	v.checkIndex("GetElt", idx)
	return v.dup(v.data[idx])
}

// At is shorthand for GetElt.
func (v *Vec[A]) At(idx int) A {
	return v.GetElt(idx)
}

// First returns a copy of the first element.
func (v *Vec[A]) First() A {
	v.checkNotBorrowed("First")
	if len(v.data) == 0 {
		panic(v.fail("First", ErrEmptyContainer, "first element of empty vector"))
	}
	return v.dup(v.data[0])
}

// Last returns a copy of the last element.
func (v *Vec[A]) Last() A {
	v.checkNotBorrowed("Last")
	n := len(v.data)
	if n == 0 {
		panic(v.fail("Last", ErrEmptyContainer, "last element of empty vector"))
	}
	return v.dup(v.data[n-1])
}

// PushAll appends copies of every element of ts.
func (v *Vec[A]) PushAll(ts []A) {
	v.pushSlice("PushAll", ts, 0, len(ts))
}

// PushSlice appends copies of ts[from:to].
func (v *Vec[A]) PushSlice(ts []A, from, to int) {
	v.pushSlice("PushSlice", ts, from, to)
}

func (v *Vec[A]) pushSlice(op string, ts []A, from, to int) {
	v.checkNotBorrowed(op)
	if from < 0 || from > to || to > len(ts) {
		panic(v.fail(op, ErrIndexOutOfRange, "range [%d,%d) invalid for length %d", from, to, len(ts)))
	}
	v.transform(op, func(data []A) []A {
		data = growTo(data, len(data)+to-from)
		for _, e := range ts[from:to] {
			data = append(data, v.dup(e))
		}
		return data
	})
}

// GrowSetElt sets the element at idx to val, first growing the vector to
// idx+1 elements if needed. New slots hold copies of initval.
func (v *Vec[A]) GrowSetElt(idx int, initval, val A) {
	v.checkNotBorrowed("GrowSetElt")
	if idx < 0 {
		panic(v.fail("GrowSetElt", ErrIndexOutOfRange, "negative index %d", idx))
	}
	v.transform("GrowSetElt", func(data []A) []A {
		if idx >= len(data) {
			data = growTo(data, idx+1)
			for len(data) <= idx {
				data = append(data, v.dup(initval))
			}
		}
		data[idx] = val
		return data
	})
}
