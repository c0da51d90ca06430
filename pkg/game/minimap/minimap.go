// Package minimap lays out the room overview drawn in the corner of the screen.
// Only room interiors appear; corridors belong to no room and are left out.
package minimap

import (
	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/generator"
)

// Screen offset of the minimap's top-left corner, in pixels
const (
	OriginX = 10
	OriginY = 10
)

// DefaultScale is the pixel size of one minimap tile
const DefaultScale = 4

// NoRoom marks the player standing outside every room interior
const NoRoom = -1

// Shade is the colour class of a minimap tile
type Shade int

const (
	ShadeDim Shade = iota
	ShadeCurrent
)

// Tile is one room-interior cell placed on screen
type Tile struct {
	X, Y   int // Pixel position of the top-left corner
	Size   int
	RoomID int
	Cell   world.Position
}

// Minimap holds the tile layout for one dungeon
type Minimap struct {
	Tiles  []Tile
	Width  int // Pixel extent of the whole map area
	Height int
	Scale  int

	root generator.Rect
}

// New lays out one tile per room-interior cell at scale pixels per cell
func New(d *generator.Dungeon, scale int) *Minimap {
	if scale <= 0 {
		scale = DefaultScale
	}
	m := &Minimap{
		Width:  d.Root.Width * scale,
		Height: d.Root.Height * scale,
		Scale:  scale,
		root:   d.Root,
	}
	for _, room := range d.Rooms {
		for _, c := range room.Inner.Cells() {
			m.Tiles = append(m.Tiles, Tile{
				X:      OriginX + (c.X-d.Root.X)*scale,
				Y:      OriginY + (c.Y-d.Root.Y)*scale,
				Size:   scale,
				RoomID: room.ID,
				Cell:   c,
			})
		}
	}
	return m
}

// CurrentRoom returns the id of the room whose interior contains p, or NoRoom
func CurrentRoom(d *generator.Dungeon, p world.Position) int {
	if room, ok := d.RoomAt(p); ok {
		return room.ID
	}
	return NoRoom
}

// ShadeOf returns how a tile is drawn while the player is in currentRoom
func ShadeOf(t Tile, currentRoom int) Shade {
	if currentRoom != NoRoom && t.RoomID == currentRoom {
		return ShadeCurrent
	}
	return ShadeDim
}

// Downsample squeezes the room layout into a cols x rows character grid.
// The result is indexed [row][col]; each entry holds a room id, or NoRoom
// where no interior lands.
func (m *Minimap) Downsample(cols, rows int) [][]int {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	grid := make([][]int, rows)
	for y := range grid {
		grid[y] = make([]int, cols)
		for x := range grid[y] {
			grid[y][x] = NoRoom
		}
	}
	if m.root.Width <= 0 || m.root.Height <= 0 {
		return grid
	}
	for _, t := range m.Tiles {
		gx := (t.Cell.X - m.root.X) * cols / m.root.Width
		gy := (t.Cell.Y - m.root.Y) * rows / m.root.Height
		grid[gy][gx] = t.RoomID
	}
	return grid
}
