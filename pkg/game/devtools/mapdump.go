// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/generator"
	"dungeoncrawler/pkg/game/state"
)

// Map dump symbols
const (
	SymbolWall   = '#'
	SymbolFloor  = '.'
	SymbolVoid   = ' '
	SymbolPlayer = '@'
	SymbolEnemy  = 'e'
)

// Overlay draws actors over the terrain, keyed by position
type Overlay map[world.Position]rune

// GameOverlay marks the player and every enemy of g
func GameOverlay(g *state.Game) Overlay {
	o := Overlay{}
	for _, e := range g.Enemies {
		o[e.Pos] = SymbolEnemy
	}
	if g.Player != nil {
		o[g.Player.Pos] = SymbolPlayer
	}
	return o
}

// WriteASCII writes one line per row of the dungeon's bounding box,
// walls included. overlay may be nil.
func WriteASCII(w io.Writer, d *generator.Dungeon, overlay Overlay) error {
	tiles := d.TileMap()
	origin := tiles.Origin()

	bw := bufio.NewWriter(w)
	for y := 0; y < tiles.Height(); y++ {
		for x := 0; x < tiles.Width(); x++ {
			p := world.Position{X: origin.X + x, Y: origin.Y + y}
			if r, ok := overlay[p]; ok {
				bw.WriteRune(r)
				continue
			}
			bw.WriteRune(tileSymbol(tiles.Tile(p)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func tileSymbol(t world.Tile) rune {
	switch t {
	case world.TileWall:
		return SymbolWall
	case world.TileFloor:
		return SymbolFloor
	default:
		return SymbolVoid
	}
}

// Dump writes <path>.txt and <path>.yaml for d
func Dump(path string, d *generator.Dungeon, seed int64, overlay Overlay) error {
	if err := writeFile(path+".txt", func(w io.Writer) error {
		return WriteASCII(w, d, overlay)
	}); err != nil {
		return err
	}
	return writeFile(path+".yaml", func(w io.Writer) error {
		return WriteYAML(w, d, seed)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
