package generator

import (
	"fmt"

	"dungeoncrawler/pkg/engine/world"
)

// Rect is an axis-aligned rectangle on the grid. It is a value type; every
// operation returns new rectangles instead of mutating the receiver.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Center returns the centre cell, using truncating division
func (r Rect) Center() world.Position {
	return world.Position{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area returns the number of cells covered by the rectangle
func (r Rect) Area() int {
	return r.Width * r.Height
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p world.Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ContainsRect reports whether o lies fully inside the rectangle
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width &&
		o.Y+o.Height <= r.Y+r.Height
}

// Cells returns every cell of the rectangle in row-major order
func (r Rect) Cells() []world.Position {
	if r.Width <= 0 || r.Height <= 0 {
		return nil
	}
	cells := make([]world.Position, 0, r.Area())
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			cells = append(cells, world.Position{X: x, Y: y})
		}
	}
	return cells
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.Width, r.Height)
}

// Subdivide splits the rectangle in two along one axis. It returns false when
// the rectangle is a terminal leaf.
//
// Eligibility uses a strict 2*MinSize bound while the offset draw needs
// MinSize < dim-MinSize; the second check can still abandon an eligible axis.
func (r Rect) Subdivide(src Source) (Rect, Rect, bool) {
	canSplitH := r.Height > MinSize*2
	canSplitV := r.Width > MinSize*2

	if !canSplitH && !canSplitV {
		return Rect{}, Rect{}, false
	}

	splitHorizontal := canSplitH
	if canSplitH && canSplitV {
		splitHorizontal = src.Intn(2) == 0
	}

	if splitHorizontal {
		split, ok := splitOffset(r.Height, src)
		if !ok {
			return Rect{}, Rect{}, false
		}
		return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: split},
			Rect{X: r.X, Y: r.Y + split, Width: r.Width, Height: r.Height - split},
			true
	}

	split, ok := splitOffset(r.Width, src)
	if !ok {
		return Rect{}, Rect{}, false
	}
	return Rect{X: r.X, Y: r.Y, Width: split, Height: r.Height},
		Rect{X: r.X + split, Y: r.Y, Width: r.Width - split, Height: r.Height},
		true
}

// splitOffset draws a split point uniformly from [MinSize, dim-MinSize)
func splitOffset(dim int, src Source) (int, bool) {
	minSplit := MinSize
	maxSplit := dim - MinSize
	if minSplit >= maxSplit {
		return 0, false
	}
	return minSplit + src.Intn(maxSplit-minSplit), true
}
