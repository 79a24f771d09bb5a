// Package randutil provides an explicitly seeded random source. Each render
// owns its own Source; there is no package-level generator.
package randutil

import (
	"image/color"
	"math/rand/v2"
)

// Source is not safe for concurrent use.
type Source struct {
	r *rand.Rand
}

// New returns a deterministic source for seed.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Float32 returns a value in [0, 1).
func (s *Source) Float32() float32 { return s.r.Float32() }

// Color returns an opaque color with uniformly random channels.
func (s *Source) Color() color.NRGBA {
	v := s.r.Uint32()
	return color.NRGBA{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: 255}
}
