//go:build linux

// File: pool/alloc_linux.go
//
// Linux slab backing: anonymous private mmap, released on pool Close.
// Page-backed slabs keep the block population out of the Go heap so GC
// never scans or moves it.

package pool

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// slab is the contiguous backing store for a pool's block population.
type slab struct {
	data []float64
	raw  []byte
}

// allocSlab maps n float64 of zeroed memory. Falls back to a heap slice
// when mmap is unavailable (resource limits, restricted sandboxes).
func allocSlab(n int) (*slab, error) {
	size := n * 8
	raw, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return &slab{data: make([]float64, n)}, nil
	}
	data := unsafe.Slice((*float64)(unsafe.Pointer(&raw[0])), n)
	return &slab{data: data, raw: raw}, nil
}

func (s *slab) floats() []float64 { return s.data }

func (s *slab) release() error {
	if s.raw == nil {
		s.data = nil
		return nil
	}
	raw := s.raw
	s.raw = nil
	s.data = nil
	return unix.Munmap(raw)
}
