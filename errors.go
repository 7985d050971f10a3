package stegobook

import (
	"github.com/yyyoichi/stegobook/internal/bookcipher"
	"github.com/yyyoichi/stegobook/internal/compress"
	"github.com/yyyoichi/stegobook/internal/rs"
	"github.com/yyyoichi/stegobook/internal/stegoimage"
	"github.com/yyyoichi/stegobook/internal/varint"
)

// Sentinel errors surfaced by Encode and Decode. Compare with errors.Is;
// apart from ctx.Err() returned as-is for an already-done context, every
// returned error wraps exactly one of these.
var (
	// ErrCharacterNotInReference is returned by Encode when a plaintext
	// character has no occurrence in the reference text.
	ErrCharacterNotInReference = bookcipher.ErrCharacterNotInReference
	// ErrImageTooSmall is returned by Encode when the carrier does not
	// have enough 8x8 blocks for the header and encoded payload.
	ErrImageTooSmall = stegoimage.ErrImageTooSmall
	// ErrPayloadTooLarge is returned by Encode when the compressed
	// payload does not fit in a single Reed-Solomon codeword.
	ErrPayloadTooLarge = rs.ErrPayloadTooLarge
	// ErrUncorrectableErrors is returned by Decode when the Reed-Solomon
	// decoder cannot correct the received codeword.
	ErrUncorrectableErrors = rs.ErrUncorrectableErrors
	// ErrCompressionFailed is returned by Decode when the decompressor
	// rejects the recovered payload bytes.
	ErrCompressionFailed = compress.ErrCompressionFailed
	// ErrTruncatedVarint is returned by Decode when a varint byte stream
	// ends mid-integer.
	ErrTruncatedVarint = varint.ErrTruncated
	// ErrTrailingGarbage is returned by Decode when bytes remain after
	// the position list has been fully decoded.
	ErrTrailingGarbage = varint.ErrTrailingGarbage
	// ErrInvalidPosition is returned by Decode when a reconstructed
	// absolute position falls outside the reference text.
	ErrInvalidPosition = bookcipher.ErrInvalidPosition
	// ErrInvalidHeader is returned by Decode when the length header names
	// more bits than the carrier has remaining blocks to hold.
	ErrInvalidHeader = stegoimage.ErrInvalidHeader
)
