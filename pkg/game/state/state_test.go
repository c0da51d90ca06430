package state

import (
	"math/rand"
	"testing"

	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/generator"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	d, err := generator.Generate(generator.Options{Root: generator.Rect{X: 0, Y: 0, Width: 24, Height: 24}, Depth: 2}, rng)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return NewGame(d, 1, rng)
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	g := newTestGame(t)
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		g.AddMessage(m)
	}
	if len(g.Messages) != 5 {
		t.Fatalf("len(Messages) = %d, want 5", len(g.Messages))
	}
	if g.Messages[0] != "c" || g.Messages[4] != "g" {
		t.Errorf("Messages = %v, want [c d e f g]", g.Messages)
	}

	g.ClearMessages()
	if len(g.Messages) != 0 {
		t.Errorf("len(Messages) after clear = %d", len(g.Messages))
	}
}

func TestRemoveDead(t *testing.T) {
	g := newTestGame(t)
	g.Enemies = []*entities.Enemy{
		{ID: 1, Health: 10},
		{ID: 2, Health: 0},
		{ID: 3, Health: -3},
		{ID: 4, Health: 1},
	}

	if removed := g.RemoveDead(); removed != 2 {
		t.Errorf("RemoveDead() = %d, want 2", removed)
	}
	if len(g.Enemies) != 2 || g.Enemies[0].ID != 1 || g.Enemies[1].ID != 4 {
		t.Errorf("survivors = %v", g.Enemies)
	}
}

func TestIsOccupied(t *testing.T) {
	g := newTestGame(t)
	g.Player = &entities.Player{Pos: world.Position{X: 2, Y: 2}}
	g.Enemies = []*entities.Enemy{{Pos: world.Position{X: 3, Y: 2}, Health: 1}}

	if !g.IsOccupied(world.Position{X: 2, Y: 2}) {
		t.Error("player cell not occupied")
	}
	if !g.IsOccupied(world.Position{X: 3, Y: 2}) {
		t.Error("enemy cell not occupied")
	}
	if g.IsOccupied(world.Position{X: 4, Y: 2}) {
		t.Error("empty cell occupied")
	}
}

func TestNewGame_StartsOutsideRooms(t *testing.T) {
	g := newTestGame(t)
	if g.CurrentRoom != NoRoom {
		t.Errorf("CurrentRoom = %d, want NoRoom", g.CurrentRoom)
	}
	if g.Tiles == nil {
		t.Error("Tiles not built")
	}
}
