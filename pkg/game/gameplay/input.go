// Package gameplay provides core game logic for player movement, combat and enemy behaviour.
package gameplay

import (
	"time"

	"github.com/leonelquinteros/gotext"

	engineinput "dungeoncrawler/pkg/engine/input"
	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/state"
)

// dynamicGet looks up translation keys chosen at runtime
var dynamicGet = gotext.Get

// ProcessIntent applies one player intent to the game.
// Ticks carry no player action; they only give timed systems a chance to run.
func ProcessIntent(g *state.Game, intent engineinput.Intent, now time.Time) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		g.QuitToMenu = true
		return

	case engineinput.ActionExit:
		g.QuitToMenu = true
		g.Exit = true
		return

	case engineinput.ActionTick:
		Advance(g, now)
		return

	case engineinput.ActionFire:
		g.LastShot = nil
		Fire(g)

	case engineinput.ActionMoveNorth:
		g.LastShot = nil
		Move(g, world.North)

	case engineinput.ActionMoveSouth:
		g.LastShot = nil
		Move(g, world.South)

	case engineinput.ActionMoveWest:
		g.LastShot = nil
		Move(g, world.West)

	case engineinput.ActionMoveEast:
		g.LastShot = nil
		Move(g, world.East)
	}

	Advance(g, now)
}

// logMessage adds a translated message to the game's log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(dynamicGet(key, a...))
}
