// Package stegoimage holds the carrier image in a form the DCT watermark
// layer can embed into and extract from: a cloned Y/U/V plane set plus the
// block-grid geometry and QIM bit codec that operate on the Y plane.
package stegoimage

import (
	"image"
	"image/color"

	"github.com/yyyoichi/stegobook/internal/yuv"
)

// Source is a cloned, color-space-converted view of a carrier image. Only
// Y ever changes; U, V, and the alpha channel pass through untouched.
type Source struct {
	Bounds        image.Rectangle
	Width, Height int
	area          int

	alpha []uint16
	Y, U, V []float64
}

// New decodes src into a Source ready for block-wise Y-plane embedding or
// extraction.
func New(src image.Image) Source {
	var s Source
	s.Bounds = src.Bounds()
	s.Width, s.Height = s.Bounds.Dx(), s.Bounds.Dy()
	s.area = s.Width * s.Height

	s.Y = make([]float64, s.area)
	s.U = make([]float64, s.area)
	s.V = make([]float64, s.area)
	s.alpha = make([]uint16, s.area)

	pixels := make([]color.Color, s.area)
	idx := 0
	minX, minY := s.Bounds.Min.X, s.Bounds.Min.Y
	for y := range s.Height {
		for x := range s.Width {
			pixels[idx] = src.At(minX+x, minY+y)
			idx++
		}
	}
	yuv.ToYUV(pixels, s.Y, s.U, s.V, s.alpha)
	return s
}

// Build reconstructs an image.Image from the (possibly Y-modified) planes.
func (s Source) Build() image.Image {
	dist := image.NewRGBA64(image.Rect(0, 0, s.Width, s.Height))
	pixels := make([]color.RGBA64, s.area)
	yuv.FromYUV(s.Y, s.U, s.V, s.alpha, pixels)
	idx := 0
	for y := range s.Height {
		for x := range s.Width {
			dist.SetRGBA64(x, y, pixels[idx])
			idx++
		}
	}
	return dist
}

// BlockPixels copies the 8x8 Y-plane block at (blockRow, blockCol) into dst
// (row-major, len(dst)==64).
func (s Source) BlockPixels(blockRow, blockCol int, dst []float64) {
	baseY, baseX := blockRow*BlockSize, blockCol*BlockSize
	for r := range BlockSize {
		rowStart := (baseY+r)*s.Width + baseX
		copy(dst[r*BlockSize:(r+1)*BlockSize], s.Y[rowStart:rowStart+BlockSize])
	}
}

// SetBlockPixels writes src (row-major, len(src)==64) back into the Y plane
// at (blockRow, blockCol).
func (s Source) SetBlockPixels(blockRow, blockCol int, src []float64) {
	baseY, baseX := blockRow*BlockSize, blockCol*BlockSize
	for r := range BlockSize {
		rowStart := (baseY+r)*s.Width + baseX
		copy(s.Y[rowStart:rowStart+BlockSize], src[r*BlockSize:(r+1)*BlockSize])
	}
}
