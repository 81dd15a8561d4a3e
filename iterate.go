package dvec

// Each calls f for every element from first to last, stopping early if f
// returns false. v is checked out for the whole traversal.
func (v *Vec[A]) Each(f func(e A) bool) {
	v.inspect("Each", func(data []A) {
		for _, e := range data {
			if !f(e) {
				return
			}
		}
	})
}

// EachI is Each with the element index.
func (v *Vec[A]) EachI(f func(i int, e A) bool) {
	v.inspect("EachI", func(data []A) {
		for i, e := range data {
			if !f(i, e) {
				return
			}
		}
	})
}

// RevEach calls f for every element from last to first, stopping early if
// f returns false.
func (v *Vec[A]) RevEach(f func(e A) bool) {
	v.inspect("RevEach", func(data []A) {
		for i := len(data) - 1; i >= 0; i-- {
			if !f(data[i]) {
				return
			}
		}
	})
}

// RevEachI is RevEach with the element index.
func (v *Vec[A]) RevEachI(f func(i int, e A) bool) {
	v.inspect("RevEachI", func(data []A) {
		for i := len(data) - 1; i >= 0; i-- {
			if !f(i, data[i]) {
				return
			}
		}
	})
}
