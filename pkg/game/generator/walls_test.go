package generator

import (
	"testing"

	"github.com/zyedidia/generic/mapset"

	"dungeoncrawler/pkg/engine/world"
)

func TestDeriveWalls_SingleCell(t *testing.T) {
	floor := mapset.New[world.Position]()
	floor.Put(world.Position{X: 0, Y: 0})

	walls := DeriveWalls(floor)
	if len(walls) != 8 {
		t.Errorf("len(DeriveWalls) = %d, want 8", len(walls))
	}
}

func TestDeriveWalls_KeepsDuplicates(t *testing.T) {
	floor := mapset.New[world.Position]()
	floor.Put(world.Position{X: 0, Y: 0})
	floor.Put(world.Position{X: 1, Y: 0})

	if got := len(DeriveWalls(floor)); got != 14 {
		t.Errorf("len(DeriveWalls) = %d, want 14 (7 per floor cell)", got)
	}
	if got := WallSet(floor).Size(); got != 10 {
		t.Errorf("WallSet size = %d, want 10", got)
	}
}

func TestFloorCells_UnionsRoomsAndCorridors(t *testing.T) {
	rooms := []Room{
		{ID: 0, Inner: Rect{0, 0, 2, 2}},
		{ID: 1, Inner: Rect{5, 0, 2, 2}},
	}
	corridors := []Corridor{{Cells: LCorridor(world.Position{X: 1, Y: 1}, world.Position{X: 6, Y: 1}, true)}}

	floor := FloorCells(rooms, corridors)
	// 4 + 4 room cells, plus corridor cells (2..4,1) not already in a room
	if floor.Size() != 11 {
		t.Errorf("floor size = %d, want 11", floor.Size())
	}
	if !floor.Has(world.Position{X: 3, Y: 1}) {
		t.Error("corridor cell (3,1) missing from floor")
	}
}
