package stegoimage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/yyyoichi/stegobook/internal/dct"
)

const (
	// Strength (q) is the QIM lattice spacing. Fixed by design to
	// interoperate with existing encoded images; never parameterize.
	Strength = 150.0
	// Alpha is the fraction of Strength the embedded coefficient is
	// displaced from the lattice point.
	Alpha = 0.3
	// coeffRow, coeffCol select C[4,3] in the zero-indexed 8x8 DCT
	// coefficient matrix, (0,0) being DC.
	coeffRow, coeffCol = 4, 3
	coeffIndex         = coeffRow*BlockSize + coeffCol
)

// ErrImageTooSmall is returned at encode time when the carrier does not
// have enough 8x8 blocks to hold the header plus repetition-coded
// codeword.
var ErrImageTooSmall = errors.New("stegoimage: image too small for payload")

// ErrInvalidHeader is returned at decode time when the length header names
// more bits than the carrier has remaining blocks to hold.
var ErrInvalidHeader = errors.New("stegoimage: invalid length header")

// RequiredBlocks returns the number of blocks needed to carry a
// headerBits-bit header followed by bodyBits payload bits.
func RequiredBlocks(headerBits, bodyBits int) int {
	return headerBits + bodyBits
}

// quantize rounds c to the nearest multiple of Strength.
func quantize(c float64) float64 {
	return math.Round(c/Strength) * Strength
}

// embedCoefficient returns the QIM-modulated value of coefficient c (the
// coeffIndex coefficient of an already-forward-DCT'd block) so that
// extraction recovers bit.
func embedCoefficient(c float64, bit bool) float64 {
	qc := quantize(c)
	if bit {
		return qc + Alpha*Strength
	}
	return qc - Alpha*Strength
}

// extractCoefficient is the QIM slicer: it is consistent with
// embedCoefficient because the embedder always places c at qc±Alpha*Strength.
func extractCoefficient(c float64) bool {
	return c >= quantize(c)
}

// blockScratch holds the per-goroutine buffers a worker needs so that
// parallel block transforms never share mutable state.
type blockScratch struct {
	pixels [BlockSize * BlockSize]float64
	coeffs [BlockSize * BlockSize]float64
}

func embedOneBlock(src Source, row, col int, bit bool, s *blockScratch) {
	src.BlockPixels(row, col, s.pixels[:])
	dct.Block8.Forward(s.pixels[:], s.coeffs[:])
	s.coeffs[coeffIndex] = embedCoefficient(s.coeffs[coeffIndex], bit)
	dct.Block8.Inverse(s.coeffs[:], s.pixels[:])
	src.SetBlockPixels(row, col, s.pixels[:])
}

func extractOneBlock(src Source, row, col int, s *blockScratch) bool {
	src.BlockPixels(row, col, s.pixels[:])
	dct.Block8.Forward(s.pixels[:], s.coeffs[:])
	return extractCoefficient(s.coeffs[coeffIndex])
}

// workerCount returns how many goroutines to fan a block range across,
// respecting an explicit override (0 means "use GOMAXPROCS").
func workerCount(parallelism, total int) int {
	n := parallelism
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > total {
		n = total
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Embed writes bits (header ++ repetition-coded codeword) into src's Y
// plane, one bit per block in row-major block order. The bit-to-block
// assignment is fixed before any goroutine is dispatched, so the result is
// identical regardless of worker count or scheduling.
func Embed(ctx context.Context, src Source, bits []bool, parallelism int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	grid := NewGrid(src.Width, src.Height)
	if len(bits) > grid.Total() {
		return fmt.Errorf("%w: need %d blocks, have %d", ErrImageTooSmall, len(bits), grid.Total())
	}

	workers := workerCount(parallelism, len(bits))
	runRanges(len(bits), workers, func(lo, hi int) {
		var scratch blockScratch
		for at := lo; at < hi; at++ {
			row, col := grid.At(at)
			embedOneBlock(src, row, col, bits[at], &scratch)
		}
	})
	return nil
}

// Extract reads n bits back out of src's Y plane starting at block index
// start, in the same row-major block order Embed used.
func Extract(ctx context.Context, src Source, start, n int, parallelism int) ([]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	grid := NewGrid(src.Width, src.Height)
	if start+n > grid.Total() {
		return nil, fmt.Errorf("%w: need blocks [%d,%d), have %d", ErrInvalidHeader, start, start+n, grid.Total())
	}

	bits := make([]bool, n)
	workers := workerCount(parallelism, n)
	runRanges(n, workers, func(lo, hi int) {
		var scratch blockScratch
		for i := lo; i < hi; i++ {
			row, col := grid.At(start + i)
			bits[i] = extractOneBlock(src, row, col, &scratch)
		}
	})
	return bits, nil
}

// runRanges partitions [0, total) into up to workers contiguous ranges and
// runs fn over each in its own goroutine.
func runRanges(total, workers int, fn func(lo, hi int)) {
	if total == 0 {
		return
	}
	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < total; lo += chunk {
		hi := lo + chunk
		if hi > total {
			hi = total
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
