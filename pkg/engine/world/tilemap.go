package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Tile is the kind of a single grid cell
type Tile uint8

// Tile kinds
const (
	TileVoid Tile = iota
	TileFloor
	TileWall
)

// String returns the name of the tile kind
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	default:
		return "void"
	}
}

// TileMap is a dense view over a floor/wall cell set, covering their bounding box.
// Walls may lie outside the generator's root rectangle, so the map keeps an origin.
type TileMap struct {
	tiles  []Tile // row-major, width*height
	origin Position
	width  int
	height int
}

// NewTileMap builds the dense view. Floor wins if a position appears in both sets.
func NewTileMap(floor, walls mapset.Set[Position]) *TileMap {
	m := &TileMap{}

	first := true
	var minX, minY, maxX, maxY int
	grow := func(p Position) {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			return
		}
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	floor.Each(grow)
	walls.Each(grow)

	if first {
		return m
	}

	m.origin = Position{X: minX, Y: minY}
	m.width = maxX - minX + 1
	m.height = maxY - minY + 1
	m.tiles = make([]Tile, m.width*m.height)

	walls.Each(func(p Position) {
		m.tiles[m.index(p)] = TileWall
	})
	floor.Each(func(p Position) {
		m.tiles[m.index(p)] = TileFloor
	})

	return m
}

// index maps a position inside the bounding box to its slot in tiles
func (m *TileMap) index(p Position) int {
	return (p.Y-m.origin.Y)*m.width + (p.X - m.origin.X)
}

// Width returns the number of columns covered by the map
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the number of rows covered by the map
func (m *TileMap) Height() int {
	return m.height
}

// Origin returns the grid position of the map's top-left cell
func (m *TileMap) Origin() Position {
	return m.origin
}

// IsValidPosition checks if a position is inside the map's bounding box
func (m *TileMap) IsValidPosition(p Position) bool {
	x, y := p.X-m.origin.X, p.Y-m.origin.Y
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Tile returns the tile at the given position, or TileVoid if out of bounds
func (m *TileMap) Tile(p Position) Tile {
	if !m.IsValidPosition(p) {
		return TileVoid
	}
	return m.tiles[m.index(p)]
}

// IsWalkable returns true if the position is a floor tile
func (m *TileMap) IsWalkable(p Position) bool {
	return m.Tile(p) == TileFloor
}

// ForEachTile iterates over every cell of the bounding box in row-major order
func (m *TileMap) ForEachTile(fn func(p Position, t Tile)) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			fn(Position{X: x + m.origin.X, Y: y + m.origin.Y}, m.tiles[y*m.width+x])
		}
	}
}
