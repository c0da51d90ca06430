package ebiten

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/minimap"
	"dungeoncrawler/pkg/game/renderer"
	"dungeoncrawler/pkg/game/state"
)

// dynamicGet looks up translation keys chosen at runtime
var dynamicGet = gotext.Get

// RenderFrame captures the parts of g that Draw needs.
// Drawing itself happens on Ebiten's goroutine in Draw.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if g == nil || g.Dungeon == nil || g.Player == nil {
		e.snapshot.valid = false
		return
	}

	snap := &e.snapshot
	if snap.dungeon != g.Dungeon {
		snap.dungeon = g.Dungeon
		snap.tiles = g.Tiles
		snap.mini = minimap.New(g.Dungeon, e.minimapScale)
	}

	snap.valid = true
	snap.player = g.Player.Pos
	snap.currentRoom = g.CurrentRoom

	snap.enemies = snap.enemies[:0]
	for _, en := range g.Enemies {
		snap.enemies = append(snap.enemies, en.Pos)
	}

	snap.shot = snap.shot[:0]
	if g.LastShot != nil {
		snap.shot = append(snap.shot, g.LastShot.Path...)
	}

	room := gotext.Get("CORRIDOR")
	if g.CurrentRoom != state.NoRoom {
		room = fmt.Sprintf("%d", g.CurrentRoom)
	}
	snap.status = dynamicGet("STATUS", dynamicGet(g.Player.Class.Info().NameKey), room, len(g.Enemies))

	snap.messages = snap.messages[:0]
	for _, msg := range g.Messages {
		snap.messages = append(snap.messages, renderer.StripMarkup(msg))
	}
}

// hasEnemy reports whether the snapshot has an enemy on p
func (s *renderSnapshot) hasEnemy(p world.Position) bool {
	for _, en := range s.enemies {
		if en == p {
			return true
		}
	}
	return false
}

// onShotPath reports whether the last shot crossed p
func (s *renderSnapshot) onShotPath(p world.Position) bool {
	for _, c := range s.shot {
		if c == p {
			return true
		}
	}
	return false
}
