// Package repetition implements the fixed-rate bit-repetition inner code:
// each bit is transmitted R times and recovered by majority vote.
package repetition

import "github.com/yyyoichi/bitstream-go"

// R is the repetition factor. It is odd, so majority vote never ties.
const R = 7

// Encode emits every bit read from src R times, in order.
func Encode(src *bitstream.BitReader[uint64]) *bitstream.BitWriter[uint64] {
	w := bitstream.NewBitWriter[uint64](0, 0)
	n := src.Bits()
	for i := 0; i < n; i++ {
		bit, _ := src.ReadBitAt(i)
		for j := 0; j < R; j++ {
			w.WriteBool(bit)
		}
	}
	return w
}

// Decode partitions src into groups of R bits and majority-votes each of
// the first n groups; groups beyond n are ignored.
func Decode(src *bitstream.BitReader[uint64], n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		var ones int
		for j := 0; j < R; j++ {
			bit, _ := src.ReadBitAt(i*R + j)
			if bit {
				ones++
			}
		}
		out[i] = ones > R/2
	}
	return out
}
