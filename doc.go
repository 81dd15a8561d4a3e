// Package dvec implements a growable, single-owner vector with a
// reentrancy guard.
//
// # Overview
//
// A Vec owns one slice. Operations that restructure the slice (Pop, Shift,
// Unshift, Reverse, Reserve, Swap, Borrow, traversal) first check the slice
// out of the container, leaving it in a checked-out state for the whole
// transformation, and give it back afterwards. Any use of the container
// while it is checked out panics with ErrReentrantAccess. Cheap operations
// (Len, Push, GetElt, SetElt) only test the state and touch the slice
// directly.
//
// # Basic Usage
//
//	v := dvec.FromSlice([]int{1, 2, 3})
//	v.Push(4)          // [1 2 3 4]
//	last := v.Pop()    // 4
//	v.Unshift(0)       // [0 1 2 3]
//	first := v.Shift() // 0
//	v.Reverse()        // [3 2 1]
//
//	// Arbitrary transformations go through Swap or BorrowMut
//	v.Swap(func(s []int) []int { return append(s, 10) })
//	sum := dvec.Borrow(v, func(s []int) int {
//		total := 0
//		for _, x := range s {
//			total += x
//		}
//		return total
//	})
//
// # Reentrancy and Poisoning
//
// Calling v from inside a callback that holds its slice panics:
//
//	v.Swap(func(s []int) []int {
//		v.Len() // panics: ErrReentrantAccess
//		return s
//	})
//
// If a callback panics while it holds the slice, the container cannot know
// what state the slice was left in. It is poisoned: the slice is dropped
// and every later operation panics with an error matching both ErrPoisoned
// and ErrReentrantAccess.
//
// # Copying Elements
//
// Get, GetElt, At, First, Last, PushAll, PushSlice and GrowSetElt duplicate
// elements. By default that is plain assignment. Install a deep copy with
// UseCopier, or with Cloning for element types that have a Clone method.
//
// # Ownership
//
// A Vec is not goroutine-safe. To hand it to another goroutine, use Move or
// Send; the old handle panics with ErrMoved afterwards. Unwrap consumes the
// container and returns its slice without copying.
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("len=%d cap=%d checkouts=%d state=%s\n", m.Len, m.Cap, m.Checkouts, m.State)
//
// Container events can also be exported to Prometheus with the dvecprom
// package and dvec.WithRecorder.
package dvec
