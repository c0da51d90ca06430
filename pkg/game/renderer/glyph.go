package renderer

import (
	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/state"
)

// Icon constants shared by the text backends
const (
	PlayerIcon   = "@"
	IconEnemy    = "Ω"
	IconShot     = "*"
	IconWall     = "▒"
	IconFloor    = "·"
	IconCorridor = "░"
	IconVoid     = " "
)

// Glyph is what a backend draws in one map cell
type Glyph struct {
	Icon  string
	Style TextStyle
}

// GlyphAt classifies p for drawing. Actors win over the last shot, which wins over terrain.
func GlyphAt(g *state.Game, p world.Position) Glyph {
	if g.Player != nil && g.Player.Pos == p {
		return Glyph{PlayerIcon, StylePlayer}
	}
	if g.EnemyAt(p) != nil {
		return Glyph{IconEnemy, StyleEnemy}
	}
	if g.LastShot != nil {
		for _, c := range g.LastShot.Path {
			if c == p {
				return Glyph{IconShot, StyleShot}
			}
		}
	}

	switch g.Tiles.Tile(p) {
	case world.TileFloor:
		if _, inRoom := g.Dungeon.RoomAt(p); inRoom {
			return Glyph{IconFloor, StyleFloor}
		}
		return Glyph{IconCorridor, StyleCorridor}
	case world.TileWall:
		return Glyph{IconWall, StyleWall}
	}
	return Glyph{IconVoid, StyleNormal}
}
