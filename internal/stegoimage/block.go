package stegoimage

// BlockSize is the fixed edge length of a watermark block, in pixels.
const BlockSize = 8

// Grid describes the row-major grid of non-overlapping BlockSize×BlockSize
// blocks that fit inside a width×height image, top-left aligned. Trailing
// rows or columns narrower than BlockSize are left untouched.
type Grid struct {
	Rows, Cols int
}

// NewGrid computes the block grid for a width×height image.
func NewGrid(width, height int) Grid {
	return Grid{Rows: height / BlockSize, Cols: width / BlockSize}
}

// Total returns the number of blocks in the grid.
func (g Grid) Total() int {
	return g.Rows * g.Cols
}

// At returns the (row, col) of the at-th block in row-major order.
func (g Grid) At(at int) (row, col int) {
	return at / g.Cols, at % g.Cols
}
