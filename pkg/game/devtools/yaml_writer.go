package devtools

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/generator"
)

// DungeonYAML is the YAML form of a generated dungeon
type DungeonYAML struct {
	Seed       int64          `yaml:"seed"`
	Root       RectYAML       `yaml:"root"`
	FloorCells int            `yaml:"floor_cells"`
	WallCells  int            `yaml:"wall_cells"`
	Rooms      []RoomYAML     `yaml:"rooms"`
	Corridors  []CorridorYAML `yaml:"corridors"`
}

// RectYAML is a rectangle as x, y, width, height
type RectYAML struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PointYAML is a grid position
type PointYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RoomYAML represents a room in YAML format
type RoomYAML struct {
	ID     int       `yaml:"id"`
	Bounds RectYAML  `yaml:"bounds"`
	Inner  RectYAML  `yaml:"inner"`
	Center PointYAML `yaml:"center"`
}

// CorridorYAML represents a corridor in YAML format
type CorridorYAML struct {
	From            PointYAML `yaml:"from"`
	To              PointYAML `yaml:"to"`
	HorizontalFirst bool      `yaml:"horizontal_first"`
	Length          int       `yaml:"length"`
}

// NewDungeonYAML converts d for serialization. Rooms and corridors keep generation order.
func NewDungeonYAML(d *generator.Dungeon, seed int64) *DungeonYAML {
	out := &DungeonYAML{
		Seed:       seed,
		Root:       rectYAML(d.Root),
		FloorCells: d.Floor.Size(),
		WallCells:  d.Walls.Size(),
		Rooms:      make([]RoomYAML, 0, len(d.Rooms)),
		Corridors:  make([]CorridorYAML, 0, len(d.Corridors)),
	}
	for _, r := range d.Rooms {
		out.Rooms = append(out.Rooms, RoomYAML{
			ID:     r.ID,
			Bounds: rectYAML(r.Bounds),
			Inner:  rectYAML(r.Inner),
			Center: pointYAML(r.Inner.Center()),
		})
	}
	for _, c := range d.Corridors {
		out.Corridors = append(out.Corridors, CorridorYAML{
			From:            pointYAML(c.From),
			To:              pointYAML(c.To),
			HorizontalFirst: c.HorizontalFirst,
			Length:          len(c.Cells),
		})
	}
	return out
}

// WriteYAML writes a header comment followed by the dungeon as YAML
func WriteYAML(w io.Writer, d *generator.Dungeon, seed int64) error {
	fmt.Fprintf(w, "# Dungeon %dx%d\n", d.Root.Width, d.Root.Height)
	fmt.Fprintf(w, "# Generated with seed: %d\n", seed)
	fmt.Fprintf(w, "# Room count: %d\n\n", len(d.Rooms))

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewDungeonYAML(d, seed)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}

func rectYAML(r generator.Rect) RectYAML {
	return RectYAML{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func pointYAML(p world.Position) PointYAML {
	return PointYAML{X: p.X, Y: p.Y}
}
