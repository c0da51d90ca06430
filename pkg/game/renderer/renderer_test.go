package renderer

import (
	"math/rand"
	"strings"
	"testing"

	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/entities"
	"dungeoncrawler/pkg/game/generator"
	"dungeoncrawler/pkg/game/state"
)

func bracketStyle(text string, style TextStyle) string {
	switch style {
	case StyleDamage:
		return "<" + text + ">"
	case StyleRoom:
		return "[" + text + "]"
	}
	return text
}

func TestApplyMarkup(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		args []any
		want string
	}{
		{"plain", "nothing to see", nil, "nothing to see"},
		{"damage", "hit for DMG{%d}", []any{5}, "hit for <5>"},
		{"room", "you enter ROOM{room 3}", nil, "you enter [room 3]"},
		{"unknown function keeps operand", "FOO{bar}", nil, "bar"},
		{"percent without args", "100% sure", nil, "100% sure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyMarkup(bracketStyle, tt.msg, tt.args...); got != tt.want {
				t.Errorf("ApplyMarkup(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}

func TestStripMarkup(t *testing.T) {
	got := StripMarkup("The ENEMY{enemy} takes DMG{3}")
	if strings.ContainsAny(got, "{}") {
		t.Errorf("StripMarkup left markup behind: %q", got)
	}
	if got != "The enemy takes 3" {
		t.Errorf("StripMarkup = %q", got)
	}
}

func TestToPixel(t *testing.T) {
	x, y := ToPixel(world.Position{X: 3, Y: -2}, 32)
	if x != 96 || y != -64 {
		t.Errorf("ToPixel(3,-2) = %d,%d, want 96,-64", x, y)
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	focus := world.Position{X: 20, Y: 10}
	origin := CameraOrigin(focus, 11, 7)
	if origin != (world.Position{X: 15, Y: 7}) {
		t.Errorf("CameraOrigin = %v, want (15,7)", origin)
	}
	x, y := ScreenPixel(focus, origin, 32)
	if x != 5*32 || y != 3*32 {
		t.Errorf("focus drawn at %d,%d, want centre cell %d,%d", x, y, 5*32, 3*32)
	}
}

func TestGlyphAt(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	d, err := generator.Generate(generator.Options{Root: generator.Rect{Width: 40, Height: 40}, Depth: 3}, rng)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	g := state.NewGame(d, 3, rng)
	start := d.Rooms[0].Inner.Center()
	g.Player = &entities.Player{Pos: start}

	if got := GlyphAt(g, start); got.Icon != PlayerIcon {
		t.Errorf("GlyphAt(player) = %q", got.Icon)
	}

	corner := world.Position{X: d.Rooms[0].Inner.X, Y: d.Rooms[0].Inner.Y}
	if corner != start {
		if got := GlyphAt(g, corner); got.Icon != IconFloor {
			t.Errorf("GlyphAt(room corner) = %q, want floor", got.Icon)
		}
	}

	wall := world.Position{X: d.Rooms[0].Inner.X - 1, Y: d.Rooms[0].Inner.Y - 1}
	if got := GlyphAt(g, wall); got.Icon != IconWall {
		t.Errorf("GlyphAt(%v) = %q, want wall", wall, got.Icon)
	}

	if got := GlyphAt(g, world.Position{X: -50, Y: -50}); got.Icon != IconVoid {
		t.Errorf("GlyphAt(far away) = %q, want void", got.Icon)
	}

	g.Enemies = []*entities.Enemy{{Pos: corner, Health: 1}}
	if corner != start {
		if got := GlyphAt(g, corner); got.Icon != IconEnemy {
			t.Errorf("GlyphAt(enemy) = %q", got.Icon)
		}
	}
}
