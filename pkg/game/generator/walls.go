package generator

import (
	"github.com/zyedidia/generic/mapset"

	"dungeoncrawler/pkg/engine/world"
)

// FloorCells unions every room interior with every corridor path
func FloorCells(rooms []Room, corridors []Corridor) mapset.Set[world.Position] {
	floor := mapset.New[world.Position]()
	for _, room := range rooms {
		for _, p := range room.Inner.Cells() {
			floor.Put(p)
		}
	}
	for _, c := range corridors {
		for _, p := range c.Cells {
			floor.Put(p)
		}
	}
	return floor
}

// DeriveWalls yields every 8-neighbour of a floor cell that is not floor itself.
// A wall touching several floor cells is yielded once per floor cell.
func DeriveWalls(floor mapset.Set[world.Position]) []world.Position {
	var walls []world.Position
	floor.Each(func(p world.Position) {
		for _, n := range p.Neighbors8() {
			if !floor.Has(n) {
				walls = append(walls, n)
			}
		}
	})
	return walls
}

// WallSet is the deduplicated form of DeriveWalls
func WallSet(floor mapset.Set[world.Position]) mapset.Set[world.Position] {
	walls := mapset.New[world.Position]()
	for _, p := range DeriveWalls(floor) {
		walls.Put(p)
	}
	return walls
}
