package bank

import "sync/atomic"

// Sequence hands out monotonically increasing ids. Increments are atomic so
// a concurrent driver cannot mint duplicates; the model itself stays
// single-threaded.
type Sequence struct {
	last int64
}

// NewSequence returns a Sequence whose first Next() call yields first.
func NewSequence(first int64) *Sequence {
	return &Sequence{last: first - 1}
}

func (s *Sequence) Next() int64 {
	return atomic.AddInt64(&s.last, 1)
}
