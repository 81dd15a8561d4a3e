package dvec

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Usage errors. None of them are returned; operations panic with a value
// wrapping one of these, and callers that recover test it with errors.Is.
var (
	ErrReentrantAccess = errors.New("dvec: recursive use of dvec")
	ErrEmptyContainer  = errors.New("dvec: empty container")
	ErrIndexOutOfRange = errors.New("dvec: index out of range")
	ErrPoisoned        = errors.New("dvec: poisoned by a faulted transformation")
	ErrMoved           = errors.New("dvec: use after Unwrap or Move")
	ErrGuardReleased   = errors.New("dvec: guard already released")
)

// Kind is a stable label for a usage error, used in logs and metrics.
type Kind string

const (
	KindReentrantAccess Kind = "reentrant_access"
	KindEmptyContainer  Kind = "empty_container"
	KindIndexOutOfRange Kind = "index_out_of_range"
	KindPoisoned        Kind = "poisoned"
	KindMoved           Kind = "moved"
	KindGuardReleased   Kind = "guard_released"
	KindUnknown         Kind = "unknown"
)

// KindOf classifies err. A poisoned error also matches ErrReentrantAccess,
// so it is tested first.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrPoisoned):
		return KindPoisoned
	case errors.Is(err, ErrReentrantAccess):
		return KindReentrantAccess
	case errors.Is(err, ErrEmptyContainer):
		return KindEmptyContainer
	case errors.Is(err, ErrIndexOutOfRange):
		return KindIndexOutOfRange
	case errors.Is(err, ErrMoved):
		return KindMoved
	case errors.Is(err, ErrGuardReleased):
		return KindGuardReleased
	default:
		return KindUnknown
	}
}

// poisonedError is what a poisoned container raises on every later use.
func poisonedError() error {
	return errors.Mark(ErrPoisoned, ErrReentrantAccess)
}

// fail wraps err with the operation name, logs it and reports it to the
// recorder. Callers panic with the result.
func (v *Vec[A]) fail(op string, err error, format string, args ...any) error {
	err = errors.Wrapf(err, "%s: "+format, append([]any{op}, args...)...)
	kind := KindOf(err)
	Logger().Debug("dvec: usage error",
		zap.String("vec", v.name),
		zap.String("op", op),
		zap.String("kind", string(kind)),
		zap.Error(err))
	v.rec().Faulted(v.name, kind)
	return err
}
