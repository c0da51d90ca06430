package tui

import (
	"os"
	"testing"
	"time"

	"dungeoncrawler/locales"
	"dungeoncrawler/pkg/engine/input"
	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/config"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/minimap"
	"dungeoncrawler/pkg/game/renderer"
	"dungeoncrawler/pkg/game/setup"
	"dungeoncrawler/pkg/game/state"
)

func TestMain(m *testing.M) {
	if _, err := locales.Load(locales.DefaultLocale); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestGame(t *testing.T) *state.Game {
	t.Helper()
	g, err := setup.NewGame(config.DefaultConfig(), entities.ClassWarrior, 7)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return g
}

func TestComposeMap_CentredOnPlayer(t *testing.T) {
	g := newTestGame(t)
	r := New(0)

	grid := r.composeMap(g, 80, 40)
	if len(grid) != 40 || len(grid[0]) != 80 {
		t.Fatalf("grid is %dx%d, want 80x40", len(grid[0]), len(grid))
	}
	if got := grid[20][40]; got.Icon != renderer.PlayerIcon {
		t.Errorf("centre glyph = %q, want player", got.Icon)
	}

	overlay := 0
	for y := 0; y < MinimapRows; y++ {
		for x := 80 - MinimapCols; x < 80; x++ {
			if icon := grid[y][x].Icon; icon == IconMinimapRoom || icon == IconMinimapCurrent {
				overlay++
			}
		}
	}
	if overlay == 0 {
		t.Error("minimap overlay is empty")
	}
}

func TestComposeMap_SmallViewportHasNoMinimap(t *testing.T) {
	g := newTestGame(t)
	r := New(0)

	cols, rows := 21, 9
	grid := r.composeMap(g, cols, rows)
	origin := renderer.CameraOrigin(g.Player.Pos, cols, rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			want := renderer.GlyphAt(g, world.Position{X: origin.X + x, Y: origin.Y + y})
			if grid[y][x] != want {
				t.Fatalf("glyph at (%d,%d) = %+v, want %+v", x, y, grid[y][x], want)
			}
		}
	}
}

func TestMinimapGlyph(t *testing.T) {
	tests := []struct {
		roomID, current int
		want            string
	}{
		{minimap.NoRoom, 0, renderer.IconVoid},
		{0, 0, IconMinimapCurrent},
		{1, 0, IconMinimapRoom},
		{1, minimap.NoRoom, IconMinimapRoom},
	}

	for _, tt := range tests {
		if got := minimapGlyph(tt.roomID, tt.current); got.Icon != tt.want {
			t.Errorf("minimapGlyph(%d, %d) = %q, want %q", tt.roomID, tt.current, got.Icon, tt.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	g := newTestGame(t)
	g.Enemies = g.Enemies[:0]

	if got, want := statusLine(g), "Warrior | Room 0 | Enemies 0"; got != want {
		t.Errorf("statusLine() = %q, want %q", got, want)
	}

	g.CurrentRoom = state.NoRoom
	if got, want := statusLine(g), "Warrior | Room corridor | Enemies 0"; got != want {
		t.Errorf("statusLine() in corridor = %q, want %q", got, want)
	}
}

func TestGetInput_DebouncesRepeats(t *testing.T) {
	r := New(0)
	r.keys = make(chan input.RawInput, 3)
	now := time.Now()
	r.keys <- input.RawInput{Device: input.DeviceTerminal, Code: "w", Timestamp: now}
	r.keys <- input.RawInput{Device: input.DeviceTerminal, Code: "w", Timestamp: now.Add(time.Millisecond)}
	r.keys <- input.RawInput{Device: input.DeviceTerminal, Code: "d", Timestamp: now.Add(2 * time.Millisecond)}

	if got := r.GetInput().Action; got != input.ActionMoveNorth {
		t.Errorf("first GetInput() = %v, want MoveNorth", got)
	}
	if got := r.GetInput().Action; got != input.ActionMoveEast {
		t.Errorf("second GetInput() = %v, want MoveEast (repeat dropped)", got)
	}
}

func TestGetInput_Heartbeat(t *testing.T) {
	r := New(5 * time.Millisecond)
	r.keys = make(chan input.RawInput)

	if got := r.GetInput().Action; got != input.ActionTick {
		t.Errorf("GetInput() with no keys = %v, want Tick", got)
	}
}

func TestFormatText_Uninitialised(t *testing.T) {
	r := New(0)
	if got := r.FormatText("You hit for DMG{%d}.", 5); got != "You hit for 5." {
		t.Errorf("FormatText() = %q", got)
	}
}
