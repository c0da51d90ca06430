package setup

import (
	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/state"
)

// PlacePlayer puts the player at the centre of the first room, facing east
func PlacePlayer(g *state.Game, class entities.PlayerClass) {
	start := g.Dungeon.Rooms[0].Inner.Center()
	g.Player = &entities.Player{
		Class:  class,
		Pos:    start,
		Facing: world.East,
	}
	g.CurrentRoom = g.Dungeon.Rooms[0].ID
}

// SpawnEnemies gives every room except the first an enemy at its centre with
// probability chance. Rooms are visited in id order so the draws are reproducible.
func SpawnEnemies(g *state.Game, chance float64, health int) {
	g.Enemies = g.Enemies[:0]
	for _, room := range g.Dungeon.Rooms[1:] {
		if g.Rng.Float64() >= chance {
			continue
		}
		g.Enemies = append(g.Enemies, &entities.Enemy{
			ID:     len(g.Enemies) + 1,
			Pos:    room.Inner.Center(),
			Health: health,
			RoomID: room.ID,
		})
	}
}
