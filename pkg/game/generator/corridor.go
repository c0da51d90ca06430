package generator

import (
	"dungeoncrawler/pkg/engine/world"
)

// Corridor is an L-shaped path joining two room centres
type Corridor struct {
	From            world.Position
	To              world.Position
	HorizontalFirst bool
	Cells           []world.Position
}

// LCorridor returns the cells of an L-shaped corridor between two points.
// Horizontal-first runs along from.Y then down column to.X; vertical-first runs
// along column from.X then across row to.Y. Both legs include their endpoints,
// so the corner cell appears twice.
func LCorridor(from, to world.Position, horizontalFirst bool) []world.Position {
	cells := make([]world.Position, 0, abs(from.X-to.X)+abs(from.Y-to.Y)+2)
	if horizontalFirst {
		cells = appendHorizontal(cells, from.Y, from.X, to.X)
		cells = appendVertical(cells, to.X, from.Y, to.Y)
	} else {
		cells = appendVertical(cells, from.X, from.Y, to.Y)
		cells = appendHorizontal(cells, to.Y, from.X, to.X)
	}
	return cells
}

// Route connects every room to the previous one in generation order.
// One coin flip per connection picks the L orientation.
func Route(rooms []Room, src Source) []Corridor {
	if len(rooms) < 2 {
		return nil
	}
	corridors := make([]Corridor, 0, len(rooms)-1)
	for i := 1; i < len(rooms); i++ {
		from := rooms[i-1].Inner.Center()
		to := rooms[i].Inner.Center()
		horizontalFirst := src.Intn(2) == 0
		corridors = append(corridors, Corridor{
			From:            from,
			To:              to,
			HorizontalFirst: horizontalFirst,
			Cells:           LCorridor(from, to, horizontalFirst),
		})
	}
	return corridors
}

// appendHorizontal adds row y for every x between startX and endX inclusive
func appendHorizontal(cells []world.Position, y, startX, endX int) []world.Position {
	if startX > endX {
		startX, endX = endX, startX
	}
	for x := startX; x <= endX; x++ {
		cells = append(cells, world.Position{X: x, Y: y})
	}
	return cells
}

// appendVertical adds column x for every y between startY and endY inclusive
func appendVertical(cells []world.Position, x, startY, endY int) []world.Position {
	if startY > endY {
		startY, endY = endY, startY
	}
	for y := startY; y <= endY; y++ {
		cells = append(cells, world.Position{X: x, Y: y})
	}
	return cells
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
