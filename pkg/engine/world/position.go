// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import "fmt"

// Position is a cell on the integer grid. Grid coordinates are distinct from
// pixel coordinates; converting between them is a presentation concern.
type Position struct {
	X int
	Y int
}

// Add returns the position offset by dx, dy
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the adjacent position in the given direction
func (p Position) Step(dir Direction) Position {
	dx, dy := dir.Delta()
	return p.Add(dx, dy)
}

// Neighbors4 returns the orthogonal neighbours in North, East, South, West order
func (p Position) Neighbors4() [4]Position {
	return [4]Position{
		p.Add(0, -1),
		p.Add(1, 0),
		p.Add(0, 1),
		p.Add(-1, 0),
	}
}

// Neighbors8 returns every position at Chebyshev distance 1, row by row
func (p Position) Neighbors8() [8]Position {
	var out [8]Position
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out[i] = p.Add(dx, dy)
			i++
		}
	}
	return out
}

// Chebyshev returns the king-move distance between two positions
func (p Position) Chebyshev(o Position) int {
	return max(abs(p.X-o.X), abs(p.Y-o.Y))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
