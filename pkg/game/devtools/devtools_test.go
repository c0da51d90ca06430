package devtools

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/generator"
	"dungeoncrawler/pkg/game/state"
)

// singleRoom is one 3x2 interior at (1,1) with its wall ring
func singleRoom() *generator.Dungeon {
	rooms := []generator.Room{{
		ID:     0,
		Bounds: generator.Rect{X: 0, Y: 0, Width: 5, Height: 4},
		Inner:  generator.Rect{X: 1, Y: 1, Width: 3, Height: 2},
	}}
	floor := generator.FloorCells(rooms, nil)
	return &generator.Dungeon{
		Root:  generator.Rect{X: 0, Y: 0, Width: 5, Height: 4},
		Rooms: rooms,
		Floor: floor,
		Walls: generator.WallSet(floor),
	}
}

func TestWriteASCII(t *testing.T) {
	tests := []struct {
		name    string
		overlay Overlay
		want    string
	}{
		{
			name: "terrain only",
			want: "#####\n#...#\n#...#\n#####\n",
		},
		{
			name:    "with actors",
			overlay: Overlay{{X: 2, Y: 1}: SymbolPlayer, {X: 3, Y: 2}: SymbolEnemy},
			want:    "#####\n#.@.#\n#..e#\n#####\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteASCII(&buf, singleRoom(), tt.overlay); err != nil {
				t.Fatalf("WriteASCII() error = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("WriteASCII() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestWriteASCII_CountsMatchDungeon(t *testing.T) {
	d, err := generator.Generate(generator.Options{
		Root:  generator.Rect{X: 0, Y: 0, Width: 40, Height: 30},
		Depth: 3,
	}, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteASCII(&buf, d, nil); err != nil {
		t.Fatalf("WriteASCII() error = %v", err)
	}

	floor := strings.Count(buf.String(), string(SymbolFloor))
	if floor != d.Floor.Size() {
		t.Errorf("dump has %d floor cells, want %d", floor, d.Floor.Size())
	}
	walls := strings.Count(buf.String(), string(SymbolWall))
	if walls != d.Walls.Size() {
		t.Errorf("dump has %d wall cells, want %d", walls, d.Walls.Size())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, singleRoom(), 99); err != nil {
		t.Fatalf("WriteYAML() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "# Dungeon 5x4\n# Generated with seed: 99\n") {
		t.Errorf("missing header comment:\n%s", buf.String())
	}

	var got DungeonYAML
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if got.Seed != 99 {
		t.Errorf("seed = %d, want 99", got.Seed)
	}
	if got.FloorCells != 6 || got.WallCells != 14 {
		t.Errorf("floor/wall = %d/%d, want 6/14", got.FloorCells, got.WallCells)
	}
	if len(got.Rooms) != 1 || got.Rooms[0].Center != (PointYAML{X: 2, Y: 2}) {
		t.Errorf("rooms = %+v, want one room centred at (2,2)", got.Rooms)
	}
}

func TestDump(t *testing.T) {
	base := filepath.Join(t.TempDir(), "dungeon")
	if err := Dump(base, singleRoom(), 1, Overlay{{X: 1, Y: 1}: SymbolPlayer}); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	txt, err := os.ReadFile(base + ".txt")
	if err != nil {
		t.Fatalf("read .txt: %v", err)
	}
	if !strings.Contains(string(txt), "#@..#") {
		t.Errorf("ascii dump = %q, want player overlay", txt)
	}
	if _, err := os.Stat(base + ".yaml"); err != nil {
		t.Errorf("yaml dump missing: %v", err)
	}
}

func TestGameOverlay(t *testing.T) {
	p := world.Position{X: 1, Y: 1}
	q := world.Position{X: 3, Y: 2}
	g := &state.Game{
		Player:  &entities.Player{Pos: p},
		Enemies: []*entities.Enemy{{Pos: p}, {Pos: q}},
	}

	o := GameOverlay(g)
	if o[p] != SymbolPlayer {
		t.Errorf("overlay at player = %c, want %c", o[p], SymbolPlayer)
	}
	if o[q] != SymbolEnemy {
		t.Errorf("overlay at enemy = %c, want %c", o[q], SymbolEnemy)
	}
}
