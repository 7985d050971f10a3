package dct

import (
	"math/rand/v2"
	"testing"
)

func BenchmarkBlock8_ForwardInverse(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 1))
	block := make([]float64, 64)
	for i := range block {
		block[i] = rng.Float64() * 255.0
	}
	coeffs := make([]float64, 64)
	out := make([]float64, 64)

	for b.Loop() {
		Block8.Forward(block, coeffs)
		Block8.Inverse(coeffs, out)
	}
}
