package dvec

import (
	"slices"

	"go.uber.org/zap"
)

// checkNotBorrowed panics unless the container currently owns its data.
func (v *Vec[A]) checkNotBorrowed(op string) {
	switch v.state {
	case statePresent:
		return
	case stateCheckedOut:
		panic(v.fail(op, ErrReentrantAccess, "vector is checked out"))
	case statePoisoned:
		panic(v.fail(op, poisonedError(), "a previous transformation faulted"))
	default:
		panic(v.fail(op, ErrMoved, "vector was consumed"))
	}
}

// checkOut moves the data out of the container and marks it checked out.
// The caller must hand the data back with giveBack.
func (v *Vec[A]) checkOut(op string) []A {
	v.checkNotBorrowed(op)
	data := v.data
	v.data = nil
	v.state = stateCheckedOut
	v.checkouts++
	v.rec().CheckedOut(v.name)
	return data
}

// giveBack installs data and clears the checked-out mark.
func (v *Vec[A]) giveBack(data []A) {
	v.data = data
	v.state = statePresent
}

// poison drops whatever the container held after a faulted transformation.
// Every later operation panics.
func (v *Vec[A]) poison(op string) {
	v.data = nil
	v.state = statePoisoned
	Logger().Warn("dvec: transformation faulted, vector poisoned",
		zap.String("vec", v.name),
		zap.String("op", op))
	v.rec().Faulted(v.name, KindPoisoned)
}

// transform checks the data out, replaces it with f's result and gives it
// back. If f does not return normally the container is poisoned.
func (v *Vec[A]) transform(op string, f func(data []A) []A) {
	data := v.checkOut(op)
	done := false
	defer func() {
		if !done {
			v.poison(op)
		}
	}()
	data = f(data)
	done = true
	v.giveBack(data)
}

// inspect is transform for callbacks that leave the data as it is.
func (v *Vec[A]) inspect(op string, f func(data []A)) {
	v.transform(op, func(data []A) []A {
		f(data)
		return data
	})
}

// Swap checks out the current slice and hands it to f. f may transform it
// however it likes; the slice it returns becomes the new contents.
// Touching v from inside f panics, and so does every use of v after f panics.
func (v *Vec[A]) Swap(f func(data []A) []A) {
	v.transform("Swap", f)
}

// Guard grants exclusive access to a checked-out slice until Release.
type Guard[A any] struct {
	v        *Vec[A]
	data     []A
	released bool
}

// Acquire checks out the data and returns a guard owning it. The vector
// stays unusable until the guard is released.
func (v *Vec[A]) Acquire() *Guard[A] {
	return v.acquire("Acquire")
}

func (v *Vec[A]) acquire(op string) *Guard[A] {
	return &Guard[A]{v: v, data: v.checkOut(op)}
}

// Slice returns the guarded slice.
func (g *Guard[A]) Slice() []A {
	g.check("Slice")
	return g.data
}

// Set replaces the guarded slice. It becomes the vector's contents on Release.
func (g *Guard[A]) Set(data []A) {
	g.check("Set")
	g.data = data
}

// Release gives the guarded slice back to the vector.
func (g *Guard[A]) Release() {
	g.check("Release")
	g.released = true
	g.v.giveBack(g.data)
	g.data = nil
}

// Released reports whether the guard has given its slice back.
func (g *Guard[A]) Released() bool {
	return g.released
}

func (g *Guard[A]) check(op string) {
	if g.released {
		panic(g.v.fail("Guard."+op, ErrGuardReleased, "guard no longer owns the data"))
	}
}

// CheckOut runs f with exclusive access to v's data and returns its result.
// A guard f leaves unreleased is released when f returns. If f panics while
// still holding the guard, v is poisoned.
func CheckOut[A, R any](v *Vec[A], f func(g *Guard[A]) R) R {
	return checkOutWith(v, "CheckOut", f)
}

func checkOutWith[A, R any](v *Vec[A], op string, f func(g *Guard[A]) R) R {
	g := v.acquire(op)
	done := false
	defer func() {
		if !done && !g.released {
			g.released = true
			g.data = nil
			v.poison(op)
		}
	}()
	r := f(g)
	done = true
	if !g.released {
		g.Release()
	}
	return r
}

// Borrow hands op the contents for reading and returns op's result.
// op must not modify the elements; use BorrowMut for that.
func Borrow[A, R any](v *Vec[A], op func(data []A) R) R {
	return checkOutWith(v, "Borrow", func(g *Guard[A]) R {
		return op(slices.Clip(g.Slice()))
	})
}

// BorrowMut hands op the contents for in-place mutation and returns op's
// result. The slice is clipped, so appending inside op does not change v.
func BorrowMut[A, R any](v *Vec[A], op func(data []A) R) R {
	return checkOutWith(v, "BorrowMut", func(g *Guard[A]) R {
		return op(slices.Clip(g.Slice()))
	})
}
