// Package bookcipher implements the position-based book cipher: mapping
// message runes to signed relative positions in a shared reference text,
// and the inverse.
package bookcipher

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCharacterNotInReference is returned at encode time when a plaintext
// rune has no occurrence anywhere in the reference text.
var ErrCharacterNotInReference = errors.New("bookcipher: character not in reference text")

// ErrInvalidPosition is returned at decode time when a reconstructed
// absolute position falls outside the bounds of the reference text.
var ErrInvalidPosition = errors.New("bookcipher: invalid position")

// index maps each distinct rune in a reference text to its sorted list of
// occurrence offsets, enabling a binary search for the nearest occurrence to
// a given anchor instead of a linear scan.
type index struct {
	text      []rune
	positions map[rune][]int
}

func newIndex(reference string) *index {
	text := []rune(reference)
	positions := make(map[rune][]int)
	for i, r := range text {
		positions[r] = append(positions[r], i)
	}
	return &index{text: text, positions: positions}
}

// nearest returns the occurrence of r closest to anchor, breaking ties by
// preferring the larger (forward) index, matching §4.3's tie-break rule.
func (x *index) nearest(r rune, anchor int) (int, bool) {
	occ := x.positions[r]
	if len(occ) == 0 {
		return 0, false
	}
	// Find the insertion point of anchor within occ (sorted ascending).
	i := sort.SearchInts(occ, anchor)
	var best int
	switch {
	case i == 0:
		best = occ[0]
	case i == len(occ):
		best = occ[len(occ)-1]
	default:
		before, after := occ[i-1], occ[i]
		db, da := anchor-before, after-anchor
		if da <= db {
			// after is at least as close: forward wins ties.
			best = after
		} else {
			best = before
		}
	}
	return best, true
}

// Encode maps each rune of message to a position in reference: the first
// element is an absolute index, every subsequent element is a delta from
// the previous absolute position.
func Encode(message, reference string) ([]int64, error) {
	x := newIndex(reference)
	runes := []rune(message)
	positions := make([]int64, len(runes))
	anchor := 0
	for i, r := range runes {
		pos, ok := x.nearest(r, anchor)
		if !ok {
			return nil, fmt.Errorf("%w: rune %q at message index %d", ErrCharacterNotInReference, r, i)
		}
		if i == 0 {
			positions[0] = int64(pos)
		} else {
			positions[i] = int64(pos - anchor)
		}
		anchor = pos
	}
	return positions, nil
}

// Decode is the inverse of Encode: it walks the position list, accumulating
// deltas onto a running anchor, and emits the reference-text rune at each
// resulting absolute position.
func Decode(positions []int64, reference string) (string, error) {
	text := []rune(reference)
	runes := make([]rune, len(positions))
	var anchor int64
	for i, p := range positions {
		if i == 0 {
			anchor = p
		} else {
			anchor += p
		}
		if anchor < 0 || anchor >= int64(len(text)) {
			return "", fmt.Errorf("%w: position %d out of bounds for %d-rune reference", ErrInvalidPosition, anchor, len(text))
		}
		runes[i] = text[anchor]
	}
	return string(runes), nil
}
