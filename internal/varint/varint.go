package varint

import (
	"errors"
	"fmt"
)

// ErrTruncated is returned when a varint byte stream ends before a
// continuation-bit chain is resolved.
var ErrTruncated = errors.New("varint: truncated")

// ErrTrailingGarbage is returned when Unpack is asked to account for bytes
// that do not belong to any decoded integer. The greedy decode loop below
// consumes the buffer exactly to its end by construction, so this sentinel
// exists for the invariant check at the end of Unpack and for callers that
// want a named error to compare against with errors.Is.
var ErrTrailingGarbage = errors.New("varint: trailing garbage")

// AppendVarint appends the base-128 little-endian varint encoding of u to
// dst and returns the extended slice. Every byte but the last has its
// continuation bit (MSB) set.
func AppendVarint(dst []byte, u uint64) []byte {
	for u >= 0x80 {
		dst = append(dst, byte(u)|0x80)
		u >>= 7
	}
	return append(dst, byte(u))
}

// DecodeVarint reads a single varint starting at data[0], returning the
// decoded value and the number of bytes consumed.
func DecodeVarint(data []byte) (uint64, int, error) {
	var u uint64
	for i := 0; i < len(data); i++ {
		b := data[i]
		u |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return u, i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: need continuation byte past end of %d-byte buffer", ErrTruncated, len(data))
}

// Pack encodes a sequence of signed integers as the concatenation of
// varint(zigzag(n)) for each n.
func Pack(xs []int64) []byte {
	out := make([]byte, 0, len(xs)*2)
	for _, n := range xs {
		out = AppendVarint(out, Zigzag(n))
	}
	return out
}

// Unpack decodes the inverse of Pack: it greedily decodes varints until the
// buffer is exactly exhausted.
func Unpack(data []byte) ([]int64, error) {
	out := []int64{}
	offset := 0
	for offset < len(data) {
		u, n, err := DecodeVarint(data[offset:])
		if err != nil {
			return nil, err
		}
		out = append(out, Unzigzag(u))
		offset += n
	}
	if offset != len(data) {
		return nil, fmt.Errorf("%w: %d unconsumed byte(s)", ErrTrailingGarbage, len(data)-offset)
	}
	return out, nil
}
