package dct

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForwardInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	block := make([]float64, 64)
	for i := range block {
		block[i] = rng.Float64() * 255
	}

	coeffs := make([]float64, 64)
	Block8.Forward(block, coeffs)

	recon := make([]float64, 64)
	Block8.Inverse(coeffs, recon)

	for i := range block {
		assert.InDeltaf(t, block[i], recon[i], 1e-9, "index %d", i)
	}
}

func TestDCOfConstantBlockIsEnergyTimesScale(t *testing.T) {
	// A constant block has zero energy in every AC coefficient; the DC
	// coefficient of an orthonormal DCT of a constant-value block is
	// value * sqrt(N), N = block area.
	block := make([]float64, 64)
	for i := range block {
		block[i] = 100
	}
	coeffs := make([]float64, 64)
	Block8.Forward(block, coeffs)

	assert.InDelta(t, 100*math.Sqrt(64), coeffs[0], 1e-9)
	for i := 1; i < 64; i++ {
		assert.InDeltaf(t, 0, coeffs[i], 1e-9, "AC coefficient %d", i)
	}
}
