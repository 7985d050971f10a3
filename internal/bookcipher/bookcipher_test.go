package bookcipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		reference string
		message   string
	}{
		{"repeating reference", "abcabc", "bca"},
		{"prose reference", "at The old house where They lived", "The"},
		{"empty message", "anything", ""},
		{"single char", "xyzzy", "z"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			positions, err := Encode(c.message, c.reference)
			require.NoError(t, err)
			require.Len(t, positions, len([]rune(c.message)))

			got, err := Decode(positions, c.reference)
			require.NoError(t, err)
			assert.Equal(t, c.message, got)
		})
	}
}

func TestEncodeFirstCharacterIsFirstForwardOccurrence(t *testing.T) {
	positions, err := Encode("b", "abcabc")
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, int64(1), positions[0])
}

func TestTieBreakPrefersForwardIndex(t *testing.T) {
	// reference "a?a": 'a' occurs at 0 and 2. Anchor at 1, looking for the
	// next 'a', is equidistant from both; §4.3 mandates the forward (larger)
	// index wins.
	x := newIndex("a?a")
	got, ok := x.nearest('a', 1)
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestEncodeCharacterNotInReference(t *testing.T) {
	_, err := Encode("z", "abc")
	require.ErrorIs(t, err, ErrCharacterNotInReference)
}

func TestEncodeCharacterNotInReferenceReportsOffendingIndex(t *testing.T) {
	_, err := Encode("az", "abc")
	require.ErrorIs(t, err, ErrCharacterNotInReference)
	assert.Contains(t, err.Error(), "message index 1")
}

func TestDecodeInvalidPosition(t *testing.T) {
	_, err := Decode([]int64{-1}, "abc")
	require.ErrorIs(t, err, ErrInvalidPosition)

	_, err = Decode([]int64{3}, "abc")
	require.ErrorIs(t, err, ErrInvalidPosition)
}

func TestDecodeOutOfBoundsAfterDelta(t *testing.T) {
	// anchor 0 then a delta that walks past the end of the reference.
	_, err := Decode([]int64{0, 10}, "abc")
	require.ErrorIs(t, err, ErrInvalidPosition)
}
