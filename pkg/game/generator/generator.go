// Package generator builds dungeons: BSP room partitioning, room carving,
// L-shaped corridors and wall derivation. It knows nothing about rendering.
package generator

import (
	"github.com/zyedidia/generic/mapset"

	"dungeoncrawler/pkg/engine/world"
)

// DungeonGenerator is an interface for dungeon generation algorithms
type DungeonGenerator interface {
	Generate(opts Options, src Source) (*Dungeon, error)
	Name() string
}

// Available generators
var (
	BSP = &BSPGenerator{}
)

// DefaultGenerator is the default dungeon generator
var DefaultGenerator DungeonGenerator = BSP

// Options describe one generation run
type Options struct {
	Root  Rect
	Depth int
	// Carver overrides the generator's carver when set
	Carver Carver
}

// Dungeon is the read-only output of one generation run
type Dungeon struct {
	Root      Rect
	Rooms     []Room
	Corridors []Corridor
	Floor     mapset.Set[world.Position]
	Walls     mapset.Set[world.Position]
}

// Generate splits the root into rooms, routes corridors with the same stream,
// then derives floor and wall sets.
func (g *BSPGenerator) Generate(opts Options, src Source) (*Dungeon, error) {
	splitter := g
	if opts.Carver != nil {
		splitter = &BSPGenerator{Carver: opts.Carver}
	}

	rooms, err := splitter.Split(opts.Root, opts.Depth, src)
	if err != nil {
		return nil, err
	}

	corridors := Route(rooms, src)
	floor := FloorCells(rooms, corridors)

	return &Dungeon{
		Root:      opts.Root,
		Rooms:     rooms,
		Corridors: corridors,
		Floor:     floor,
		Walls:     WallSet(floor),
	}, nil
}

// Generate runs the default generator
func Generate(opts Options, src Source) (*Dungeon, error) {
	return DefaultGenerator.Generate(opts, src)
}

// IsFloor reports whether p is walkable
func (d *Dungeon) IsFloor(p world.Position) bool {
	return d.Floor.Has(p)
}

// IsWall reports whether p is a wall cell
func (d *Dungeon) IsWall(p world.Position) bool {
	return d.Walls.Has(p)
}

// RoomAt returns the room whose interior contains p. Corridor cells outside
// every interior belong to no room.
func (d *Dungeon) RoomAt(p world.Position) (Room, bool) {
	for _, room := range d.Rooms {
		if room.Inner.Contains(p) {
			return room, true
		}
	}
	return Room{}, false
}

// RoomCenters returns the interior centre of every room in id order
func (d *Dungeon) RoomCenters() []world.Position {
	centers := make([]world.Position, len(d.Rooms))
	for i, room := range d.Rooms {
		centers[i] = room.Inner.Center()
	}
	return centers
}

// TileMap returns a dense grid view of the dungeon
func (d *Dungeon) TileMap() *world.TileMap {
	return world.NewTileMap(d.Floor, d.Walls)
}
