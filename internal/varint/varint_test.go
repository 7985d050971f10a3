package varint

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZigzagBijection(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10000; i++ {
		n := int64(int32(rng.Uint32()))
		require.Equal(t, n, Unzigzag(Zigzag(n)), "seed round %d", i)
	}
}

func TestZigzagSmallMagnitude(t *testing.T) {
	cases := []struct {
		n    int64
		want uint64
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Zigzag(c.n))
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))
	for trial := 0; trial < 500; trial++ {
		n := rng.IntN(32)
		xs := make([]int64, n)
		for i := range xs {
			xs[i] = int64(int32(rng.Uint32()))
		}
		got, err := Unpack(Pack(xs))
		require.NoError(t, err)
		assert.Equal(t, xs, got)
	}
}

func TestUnpackEmpty(t *testing.T) {
	got, err := Unpack(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnpackTruncated(t *testing.T) {
	// A lone continuation-bit byte can never terminate.
	_, err := Unpack([]byte{0x80})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeVarintMultiByte(t *testing.T) {
	u, n, err := DecodeVarint([]byte{0xe5, 0x8e, 0x26})
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, uint64(624485), u)
}
