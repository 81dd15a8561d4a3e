package dvec

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
)

// Example demonstrates basic vector usage
func Example() {
	v := FromSlice([]int{1, 2, 3})

	v.Push(4)
	fmt.Printf("After push: %v\n", v.Get())

	fmt.Printf("Popped: %d\n", v.Pop())

	v.Unshift(0)
	fmt.Printf("After unshift: %v\n", v.Get())

	fmt.Printf("Shifted: %d\n", v.Shift())

	v.Reverse()
	fmt.Printf("Reversed: %v\n", v.Get())

	// Output:
	// After push: [1 2 3 4]
	// Popped: 4
	// After unshift: [0 1 2 3]
	// Shifted: 0
	// Reversed: [3 2 1]
}

// ExampleVec_Swap demonstrates replacing the contents through a transformation
func ExampleVec_Swap() {
	v := FromSlice([]int{5, 1, 4})

	v.Swap(func(data []int) []int {
		out := data[:0]
		for _, x := range data {
			if x > 1 {
				out = append(out, x*10)
			}
		}
		return out
	})
	fmt.Println(v.Get())

	// Output:
	// [50 40]
}

// ExampleBorrow demonstrates scoped read access
func ExampleBorrow() {
	v := FromSlice([]string{"a", "bb", "ccc"})

	total := Borrow(v, func(data []string) int {
		n := 0
		for _, s := range data {
			n += len(s)
		}
		return n
	})
	fmt.Printf("Total length: %d\n", total)

	// Output:
	// Total length: 6
}

// ExampleVec_Swap_reentrant shows what happens when a callback uses the
// vector it is transforming
func ExampleVec_Swap_reentrant() {
	v := FromSlice([]int{1, 2, 3})

	func() {
		defer func() {
			err := recover().(error)
			fmt.Printf("Reentrant: %v\n", errors.Is(err, ErrReentrantAccess))
		}()
		v.Swap(func(data []int) []int {
			v.Push(4)
			return data
		})
	}()
	fmt.Printf("Poisoned: %v\n", v.Poisoned())

	// Output:
	// Reentrant: true
	// Poisoned: true
}

// ExampleVec_GrowSetElt demonstrates growing the vector with a fill value
func ExampleVec_GrowSetElt() {
	v := FromSlice([]int{1, 2})
	v.GrowSetElt(5, 0, 9)
	fmt.Println(v.Get())

	// Output:
	// [1 2 0 0 0 9]
}

// ExampleVec_RevEachI demonstrates reverse traversal with early exit
func ExampleVec_RevEachI() {
	v := FromSlice([]string{"a", "b", "c", "d"})
	v.RevEachI(func(i int, s string) bool {
		fmt.Printf("%d=%s\n", i, s)
		return s != "c"
	})

	// Output:
	// 3=d
	// 2=c
}

// ExampleVec_Send demonstrates handing a vector to another goroutine
func ExampleVec_Send() {
	ch := make(chan *Vec[int])
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v := <-ch
		v.Push(4)
		fmt.Printf("Worker sees: %v\n", v.Get())
	}()

	v := FromSlice([]int{1, 2, 3})
	v.Send(ch)
	wg.Wait()

	// Output:
	// Worker sees: [1 2 3 4]
}

// ExampleVecMetrics demonstrates monitoring a vector
func ExampleVecMetrics() {
	v := New[int](WithCapacity(8))
	for i := 0; i < 6; i++ {
		v.Push(i)
	}
	v.Reverse()
	v.Pop()

	metrics := v.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Len: %d\n", metrics.Len)
	fmt.Printf("  Cap: %d\n", metrics.Cap)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)
	fmt.Printf("  Checkouts: %d\n", metrics.Checkouts)
	fmt.Printf("  State: %s\n", metrics.State)

	// Output:
	// Metrics:
	//   Len: 5
	//   Cap: 8
	//   Utilization: 62.5%
	//   Checkouts: 2
	//   State: present
}
