package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/minimap"
	"dungeoncrawler/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	snap := &e.snapshot

	if !snap.valid || e.menuActive() {
		screen.Fill(colorBackground)
	} else {
		screen.Fill(colorMapBackground)
		screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
		e.drawMap(screen, snap, screenWidth, screenHeight)
		e.drawMinimap(screen, snap)
		e.drawStatusBar(screen, snap, screenWidth)
		e.drawMessages(screen, snap, screenHeight)
	}

	e.drawMenuOverlay(screen)
}

// drawMap draws the tiles around the player with the camera centred on them
func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap *renderSnapshot, screenWidth, screenHeight int) {
	ts := e.tileSize
	cols := screenWidth/ts + 2
	rows := screenHeight/ts + 2
	origin := renderer.CameraOrigin(snap.player, cols, rows)

	// Offset so the player's tile sits exactly at the screen centre
	px, py := renderer.ScreenPixel(snap.player, origin, ts)
	offX := screenWidth/2 - ts/2 - px
	offY := screenHeight/2 - ts/2 - py

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := world.Position{X: origin.X + x, Y: origin.Y + y}
			sx, sy := renderer.ScreenPixel(p, origin, ts)
			sx += offX
			sy += offY

			switch snap.tiles.Tile(p) {
			case world.TileWall:
				fillTile(screen, sx, sy, ts, 0, colorWall)
			case world.TileFloor:
				c := colorCorridor
				if _, inRoom := snap.dungeon.RoomAt(p); inRoom {
					c = colorFloor
				}
				fillTile(screen, sx, sy, ts, 1, c)
			}

			switch {
			case p == snap.player:
				fillTile(screen, sx, sy, ts, ts/5, colorPlayer)
			case snap.hasEnemy(p):
				fillTile(screen, sx, sy, ts, ts/5, colorEnemy)
			case snap.onShotPath(p):
				fillTile(screen, sx, sy, ts, ts*2/5, colorShot)
			}
		}
	}
}

// fillTile draws a tile-sized square at (x, y) shrunk by inset on every side
func fillTile(screen *ebiten.Image, x, y, size, inset int, c color.Color) {
	vector.DrawFilledRect(screen, float32(x+inset), float32(y+inset),
		float32(size-inset*2), float32(size-inset*2), c, false)
}

// drawMinimap draws one small square per room-interior cell;
// the room holding the player is highlighted.
func (e *EbitenRenderer) drawMinimap(screen *ebiten.Image, snap *renderSnapshot) {
	m := snap.mini
	vector.DrawFilledRect(screen, minimap.OriginX-2, minimap.OriginY-2,
		float32(m.Width+4), float32(m.Height+4), colorPanelBackground, false)

	for _, t := range m.Tiles {
		c := colorMinimapDim
		if minimap.ShadeOf(t, snap.currentRoom) == minimap.ShadeCurrent {
			c = colorMinimapCurrent
		}
		vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(t.Size), float32(t.Size), c, false)
	}
}

// drawStatusBar draws class, room and enemy count along the top right
func (e *EbitenRenderer) drawStatusBar(screen *ebiten.Image, snap *renderSnapshot, screenWidth int) {
	w := len(snap.status)*debugCharWidth + panelPadding*2
	x := screenWidth - w - panelPadding
	vector.DrawFilledRect(screen, float32(x), panelPadding, float32(w), debugLineHeight+panelPadding, colorPanelBackground, false)
	ebitenutil.DebugPrintAt(screen, snap.status, x+panelPadding, panelPadding+panelPadding/2)
}

// drawMessages draws the latest messages as a bottom-aligned panel
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, snap *renderSnapshot, screenHeight int) {
	msgs := snap.messages
	if len(msgs) > messagesShown {
		msgs = msgs[len(msgs)-messagesShown:]
	}
	if len(msgs) == 0 {
		return
	}

	widest := 0
	for _, m := range msgs {
		widest = max(widest, len(m))
	}
	h := len(msgs)*debugLineHeight + panelPadding*2
	y := screenHeight - h - panelPadding
	vector.DrawFilledRect(screen, panelPadding, float32(y),
		float32(widest*debugCharWidth+panelPadding*2), float32(h), colorPanelBackground, false)

	for i, m := range msgs {
		ebitenutil.DebugPrintAt(screen, m, panelPadding*2, y+panelPadding+i*debugLineHeight)
	}
}
