package gameplay

import (
	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/minimap"
	"dungeoncrawler/pkg/game/state"
)

// Move turns the player towards dir and steps one cell.
// Stepping into an enemy attacks it instead; anything but floor blocks the move.
// Returns true if the player changed cell.
func Move(g *state.Game, dir world.Direction) bool {
	p := g.Player
	p.Facing = dir
	target := p.Pos.Step(dir)

	if enemy := g.EnemyAt(target); enemy != nil {
		Melee(g, enemy)
		return false
	}

	if !g.IsWalkable(target) {
		logMessage(g, "BLOCKED")
		return false
	}

	p.Pos = target
	UpdateRoom(g)
	return true
}

// UpdateRoom records which room interior the player stands in and announces new rooms
func UpdateRoom(g *state.Game) {
	current := minimap.CurrentRoom(g.Dungeon, g.Player.Pos)
	if current == g.CurrentRoom {
		return
	}
	g.CurrentRoom = current
	if current != state.NoRoom {
		logMessage(g, "ENTER_ROOM", current)
	}
}
