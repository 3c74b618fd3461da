//go:build !linux

// File: pool/alloc_other.go
//
// Portable slab backing: one heap-allocated slice, zeroed by make.

package pool

type slab struct {
	data []float64
}

func allocSlab(n int) (*slab, error) {
	return &slab{data: make([]float64, n)}, nil
}

func (s *slab) floats() []float64 { return s.data }

func (s *slab) release() error {
	s.data = nil
	return nil
}
