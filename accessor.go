package bleep

import "github.com/pkg/errors"

var (
	// ErrNotFound is returned by a unique-mode lookup when no attribute
	// is bound to the UUID.
	ErrNotFound = errors.New("no attribute with that uuid")

	// ErrAmbiguous is returned by a unique-mode lookup when more than
	// one attribute is bound to the UUID.
	ErrAmbiguous = errors.New("multiple attributes with that uuid")
)

// A UUIDAccessor is a read-only lookup over attributes keyed by UUID.
// Buckets are keyed by the canonical short form, so a 16-bit UUID and
// its 128-bit base-UUID expansion address the same bucket. The table
// is populated during discovery and only read afterwards.
type UUIDAccessor[T any] struct {
	buckets map[string][]T
}

func newUUIDAccessor[T any]() *UUIDAccessor[T] {
	return &UUIDAccessor[T]{buckets: make(map[string][]T)}
}

// add appends v to the bucket for u, preserving insertion order.
// Discovery-time use only.
func (a *UUIDAccessor[T]) add(u UUID, v T) {
	key := u.Shortest()
	a.buckets[key] = append(a.buckets[key], v)
}

// Unique returns the single attribute bound to u. It fails with
// ErrNotFound when no attribute has that UUID, and with ErrAmbiguous
// when more than one does.
func (a *UUIDAccessor[T]) Unique(u UUID) (T, error) {
	var zero T
	bucket := a.buckets[u.Shortest()]
	switch len(bucket) {
	case 0:
		return zero, errors.Wrap(ErrNotFound, u.Shortest())
	case 1:
		return bucket[0], nil
	default:
		return zero, errors.Wrap(ErrAmbiguous, u.Shortest())
	}
}

// All returns every attribute bound to u, in insertion order. The
// result is empty when the UUID is absent.
func (a *UUIDAccessor[T]) All(u UUID) []T {
	return a.buckets[u.Shortest()]
}
