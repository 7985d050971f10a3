// Package stegobook implements a book-cipher text codec layered over a
// DCT/QIM image watermark: a plaintext message is mapped to signed
// relative positions in a shared reference text, packed and compressed,
// protected by a Reed-Solomon outer code and a bit-repetition inner code,
// and embedded one bit per 8x8 luminance block of a carrier image.
package stegobook

import (
	"context"
	"image"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/stegobook/internal/bookcipher"
	"github.com/yyyoichi/stegobook/internal/compress"
	"github.com/yyyoichi/stegobook/internal/framing"
	"github.com/yyyoichi/stegobook/internal/repetition"
	"github.com/yyyoichi/stegobook/internal/rs"
	"github.com/yyyoichi/stegobook/internal/stegoimage"
	"github.com/yyyoichi/stegobook/internal/varint"
)

// Encode hides plaintext in src, using reference as the shared book-cipher
// text. It returns a new image; src is never modified.
//
// Process:
//  1. Maps plaintext to signed relative positions in reference.
//  2. Packs the positions as zigzag varints and deflates them.
//  3. Appends Reed-Solomon parity symbols to the compressed payload.
//  4. Expands the codeword to bits and repeats each bit R times.
//  5. Writes an unprotected 24-bit length header followed by the
//     repetition-coded codeword, one bit per 8x8 luminance block.
//
// Returns ErrCharacterNotInReference if plaintext contains a rune absent
// from reference, ErrPayloadTooLarge if the compressed payload does not
// fit a single Reed-Solomon codeword, or ErrImageTooSmall if src does not
// have enough blocks to carry the header and codeword.
func Encode(ctx context.Context, src image.Image, plaintext, reference string, opts ...Option) (image.Image, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	positions, err := bookcipher.Encode(plaintext, reference)
	if err != nil {
		return nil, err
	}
	payload := compress.Compress(varint.Pack(positions))
	codeword, err := rs.Encode(payload)
	if err != nil {
		return nil, err
	}

	codewordReader := framing.ExpandMSB(codeword)
	codewordBitLen := codewordReader.Bits()
	bodyBits := bitsOf(repetition.Encode(codewordReader))

	// The header carries the codeword's bit length before repetition, per
	// the on-wire layout; Decode multiplies it back out by R.
	header := framing.EncodeHeader(codewordBitLen)
	bits := append(header, bodyBits...)

	source := stegoimage.New(src)
	if err := stegoimage.Embed(ctx, source, bits, o.parallelism); err != nil {
		return nil, err
	}
	return source.Build(), nil
}

// Decode recovers the plaintext embedded in src by Encode, using the same
// reference text. src is never modified.
//
// Process is the inverse of Encode: it reads the 24-bit length header,
// then the repetition-coded codeword it names, majority-votes each group
// of R bits, corrects up to floor(P/2) Reed-Solomon symbol errors,
// inflates the recovered payload, unpacks the zigzag varint position
// list, and walks it against reference.
//
// Returns ErrInvalidHeader if the header names more bits than src has
// remaining blocks, ErrUncorrectableErrors if the Reed-Solomon decoder
// cannot correct the received codeword, ErrCompressionFailed if the
// recovered payload is not valid deflate data, ErrTruncatedVarint or
// ErrTrailingGarbage if the decompressed bytes are not a well-formed
// varint stream, or ErrInvalidPosition if a recovered position falls
// outside reference.
func Decode(ctx context.Context, src image.Image, reference string, opts ...Option) (string, error) {
	o, err := applyOptions(opts)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	source := stegoimage.New(src)

	headerBits, err := stegoimage.Extract(ctx, source, 0, framing.HeaderBits, o.parallelism)
	if err != nil {
		return "", err
	}
	codewordBitLen := framing.DecodeHeader(headerBits)
	bodyBitLen := codewordBitLen * repetition.R

	bodyBits, err := stegoimage.Extract(ctx, source, framing.HeaderBits, bodyBitLen, o.parallelism)
	if err != nil {
		return "", err
	}

	codeword := framing.PackMSB(repetition.Decode(readerOf(bodyBits), codewordBitLen))

	payload, err := rs.Decode(codeword)
	if err != nil {
		return "", err
	}
	raw, err := compress.Decompress(payload)
	if err != nil {
		return "", err
	}
	positions, err := varint.Unpack(raw)
	if err != nil {
		return "", err
	}
	plaintext, err := bookcipher.Decode(positions, reference)
	if err != nil {
		return "", err
	}
	return plaintext, nil
}

// bitsOf drains a bitstream-go bit writer into a []bool, in write order.
func bitsOf(w *bitstream.BitWriter[uint64]) []bool {
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	n := w.Bits()
	bits := make([]bool, n)
	for i := range bits {
		bits[i], _ = r.ReadBitAt(i)
	}
	return bits
}

// readerOf wraps a []bool as a bitstream-go bit reader so it can feed
// repetition.Decode the same way a freshly embedded codeword would.
func readerOf(bits []bool) *bitstream.BitReader[uint64] {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range bits {
		w.WriteBool(b)
	}
	r := bitstream.NewBitReader(w.Data(), 0, 0)
	r.SetBits(w.Bits())
	return r
}
