package repetition

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yyyoichi/bitstream-go"
)

func toBitReader(bits []bool) *bitstream.BitReader[uint64] {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range bits {
		w.WriteBool(b)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	return r
}

func TestRoundTripClean(t *testing.T) {
	bits := []bool{true, false, false, true, true, false, true}
	encoded := Encode(toBitReader(bits))
	r := bitstream.NewBitReader(encoded.Data(), 0, 0)
	r.SetBits(encoded.Bits())
	got := Decode(r, len(bits))
	assert.Equal(t, bits, got)
}

func TestToleratesMinorityFlips(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	bits := make([]bool, 64)
	for i := range bits {
		bits[i] = rng.IntN(2) == 1
	}
	encoded := Encode(toBitReader(bits))
	data := append([]uint64{}, encoded.Data()...)

	// Flip floor(R/2)=3 of each bit's 7 repeated copies; majority vote must
	// still recover the original bit.
	w := bitstream.NewBitWriter[uint64](0, 0)
	r := bitstream.NewBitReader(data, 0, 0)
	r.SetBits(encoded.Bits())
	for i := 0; i < len(bits); i++ {
		for j := 0; j < R; j++ {
			bit, _ := r.ReadBitAt(i*R + j)
			if j < 3 {
				bit = !bit
			}
			w.WriteBool(bit)
		}
	}
	corrupted := bitstream.NewBitReader(w.Data(), 0, 0)
	corrupted.SetBits(w.Bits())

	got := Decode(corrupted, len(bits))
	assert.Equal(t, bits, got)
}

func TestIgnoresGroupsBeyondN(t *testing.T) {
	bits := []bool{true, false, true}
	encoded := Encode(toBitReader(bits))
	r := bitstream.NewBitReader(encoded.Data(), 0, 0)
	r.SetBits(encoded.Bits())
	got := Decode(r, 1)
	assert.Equal(t, []bool{true}, got)
}
