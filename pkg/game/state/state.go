package state

import (
	"math/rand"
	"time"

	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/generator"
)

// NoRoom is CurrentRoom's value while the player stands in a corridor
const NoRoom = -1

// Game represents one descent into a generated dungeon. It is created by
// setup.NewGame and discarded when the player quits to the menu.
type Game struct {
	Dungeon *generator.Dungeon
	Tiles   *world.TileMap

	Seed int64
	// Rng continues the stream that generated the dungeon
	Rng *rand.Rand

	Player   *entities.Player
	Enemies  []*entities.Enemy
	LastShot *entities.Projectile

	Messages []string

	CurrentRoom int

	EnemyStepInterval time.Duration
	LastEnemyStep     time.Time

	QuitToMenu bool
	Exit       bool
}

// NewGame creates a game around an already generated dungeon
func NewGame(d *generator.Dungeon, seed int64, rng *rand.Rand) *Game {
	return &Game{
		Dungeon:     d,
		Tiles:       d.TileMap(),
		Seed:        seed,
		Rng:         rng,
		Messages:    make([]string, 0),
		CurrentRoom: NoRoom,
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// EnemyAt returns the living enemy standing on p, if any
func (g *Game) EnemyAt(p world.Position) *entities.Enemy {
	for _, e := range g.Enemies {
		if e.Pos == p {
			return e
		}
	}
	return nil
}

// RemoveDead drops every enemy with no health left and returns how many were removed
func (g *Game) RemoveDead() int {
	alive := g.Enemies[:0]
	removed := 0
	for _, e := range g.Enemies {
		if e.IsDead() {
			removed++
			continue
		}
		alive = append(alive, e)
	}
	g.Enemies = alive
	return removed
}

// IsOccupied reports whether the player or an enemy stands on p
func (g *Game) IsOccupied(p world.Position) bool {
	if g.Player != nil && g.Player.Pos == p {
		return true
	}
	return g.EnemyAt(p) != nil
}

// IsWalkable reports whether p is a floor cell of the dungeon
func (g *Game) IsWalkable(p world.Position) bool {
	return g.Dungeon.IsFloor(p)
}
