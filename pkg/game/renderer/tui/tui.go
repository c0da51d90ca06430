// Package tui draws the dungeon as coloured text on a raw-mode terminal.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"dungeoncrawler/pkg/engine/input"
	"dungeoncrawler/pkg/engine/logger"
	"dungeoncrawler/pkg/engine/terminal"
	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/generator"
	"dungeoncrawler/pkg/game/menu"
	"dungeoncrawler/pkg/game/minimap"
	"dungeoncrawler/pkg/game/renderer"
	"dungeoncrawler/pkg/game/state"
)

// Minimap overlay size in characters, drawn in the map's top-right corner
const (
	MinimapCols = 24
	MinimapRows = 8
)

// Minimap overlay icons
const (
	IconMinimapRoom    = "▪"
	IconMinimapCurrent = "█"
)

// KeyRepeatWindow is how long a held key is ignored before it repeats
const KeyRepeatWindow = 60 * time.Millisecond

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	styles map[renderer.TextStyle]color.Style

	tick      time.Duration
	keys      chan input.RawInput
	debouncer input.Debouncer
	restore   func() error

	mini    *minimap.Minimap
	miniFor *generator.Dungeon
}

// New creates a new TUI renderer. A positive tick adds clock heartbeats
// to the input stream so enemies move while the player waits.
func New(tick time.Duration) *TUIRenderer {
	return &TUIRenderer{
		tick:      tick,
		debouncer: input.Debouncer{Window: KeyRepeatWindow},
	}
}

// Init initializes colours and starts the key reader
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleWall:           {color.FgGray},
		renderer.StyleFloor:          {color.FgDarkGray},
		renderer.StyleCorridor:       {color.FgDarkGray},
		renderer.StylePlayer:         {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StyleEnemy:          {color.FgRed, color.OpBold},
		renderer.StyleShot:           {color.FgCyan, color.OpBold},
		renderer.StyleRoom:           {color.FgBlue},
		renderer.StyleDamage:         {color.FgRed},
		renderer.StyleAction:         {color.FgMagenta},
		renderer.StyleActionShort:    {color.FgMagenta, color.OpBold},
		renderer.StyleSubtle:         {color.FgGray, color.OpBold},
		renderer.StyleTitle:          {color.FgYellow, color.OpBold},
		renderer.StyleMinimap:        {color.FgDarkGray},
		renderer.StyleMinimapCurrent: {color.FgYellow},
	}

	if t.keys != nil {
		return
	}
	t.keys = make(chan input.RawInput)

	restore, err := input.MakeRaw()
	if err != nil {
		logger.Error("terminal raw mode unavailable", "err", err)
	} else {
		t.restore = restore
	}
	go t.readKeys()
}

// Close returns the terminal to the mode it was in before Init
func (t *TUIRenderer) Close() error {
	if t.restore == nil {
		return nil
	}
	err := t.restore()
	t.restore = nil
	return err
}

// readKeys feeds key presses to GetInput. A read error ends the session.
func (t *TUIRenderer) readKeys() {
	for {
		raw, err := input.ReadKey()
		if err != nil {
			logger.Warning("terminal input closed", "err", err)
			t.keys <- input.RawInput{Device: input.DeviceTerminal, Code: "ctrl_c", Timestamp: time.Now()}
			return
		}
		if raw.Code == "" {
			continue
		}
		t.keys <- raw
	}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// GetInput waits for a key press or a clock tick and returns its Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	var heartbeat <-chan time.Time
	if t.tick > 0 {
		timer := time.NewTimer(t.tick)
		defer timer.Stop()
		heartbeat = timer.C
	}

	for {
		var raw input.RawInput
		select {
		case raw = <-t.keys:
		case now := <-heartbeat:
			raw = input.RawInput{Device: input.DeviceClock, Code: "tick", Timestamp: now}
		}

		ev, ok := t.debouncer.Accept(raw)
		if !ok {
			continue
		}
		return input.MapToIntent(ev)
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if s, ok := t.styles[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(t.StyleText, msg, args...)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Print(t.FormatText("%s", msg) + "\r\n")
}

// GetViewportSize returns how many map cells fit on the terminal
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	cols, rows = terminal.MapViewport()
	return rows, cols
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	rows, cols := t.GetViewportSize()

	var b strings.Builder
	b.WriteString("\033[H\033[2J")

	for _, row := range t.composeMap(g, cols, rows) {
		for _, glyph := range row {
			b.WriteString(t.StyleText(glyph.Icon, glyph.Style))
		}
		b.WriteString("\r\n")
	}

	t.writeStatusBar(&b, g)
	t.writeMessagesPane(&b, g, cols)

	fmt.Print(b.String())
}

// composeMap lays out a cols x rows window of glyphs centred on the player
// with the minimap drawn over its top-right corner.
func (t *TUIRenderer) composeMap(g *state.Game, cols, rows int) [][]renderer.Glyph {
	origin := renderer.CameraOrigin(g.Player.Pos, cols, rows)

	grid := make([][]renderer.Glyph, rows)
	for y := range grid {
		grid[y] = make([]renderer.Glyph, cols)
		for x := range grid[y] {
			grid[y][x] = renderer.GlyphAt(g, world.Position{X: origin.X + x, Y: origin.Y + y})
		}
	}

	if cols < MinimapCols*2 || rows < MinimapRows*2 {
		return grid
	}

	mm := t.minimapFor(g.Dungeon).Downsample(MinimapCols, MinimapRows)
	left := cols - MinimapCols
	for y := 0; y < MinimapRows; y++ {
		for x := 0; x < MinimapCols; x++ {
			grid[y][left+x] = minimapGlyph(mm[y][x], g.CurrentRoom)
		}
	}
	return grid
}

func minimapGlyph(roomID, currentRoom int) renderer.Glyph {
	switch {
	case roomID == minimap.NoRoom:
		return renderer.Glyph{Icon: renderer.IconVoid, Style: renderer.StyleNormal}
	case minimap.ShadeOf(minimap.Tile{RoomID: roomID}, currentRoom) == minimap.ShadeCurrent:
		return renderer.Glyph{Icon: IconMinimapCurrent, Style: renderer.StyleMinimapCurrent}
	default:
		return renderer.Glyph{Icon: IconMinimapRoom, Style: renderer.StyleMinimap}
	}
}

// minimapFor caches the minimap layout for the current dungeon
func (t *TUIRenderer) minimapFor(d *generator.Dungeon) *minimap.Minimap {
	if t.miniFor != d {
		t.mini = minimap.New(d, 1)
		t.miniFor = d
	}
	return t.mini
}

// writeStatusBar renders class, room and enemy count
func (t *TUIRenderer) writeStatusBar(b *strings.Builder, g *state.Game) {
	b.WriteString(t.StyleText(statusLine(g), renderer.StyleSubtle))
	b.WriteString("\r\n")
}

func statusLine(g *state.Game) string {
	room := gotext.Get("CORRIDOR")
	if g.CurrentRoom != state.NoRoom {
		room = fmt.Sprintf("%d", g.CurrentRoom)
	}
	class := dynamicGet(g.Player.Class.Info().NameKey)
	return dynamicGet("STATUS", class, room, len(g.Enemies))
}

// dynamicGet looks up translation keys chosen at runtime
var dynamicGet = gotext.Get

// writeMessagesPane renders the messages log pane
func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, g *state.Game, width int) {
	label := " Messages "
	sideLen := (width - len(label)) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - len(label)
	if rightLen < 1 {
		rightLen = 1
	}

	b.WriteString(t.StyleText(strings.Repeat("─", sideLen)+label+strings.Repeat("─", rightLen), renderer.StyleSubtle))
	b.WriteString("\r\n")

	for _, msg := range g.Messages {
		b.WriteString("  " + t.FormatText("%s", msg) + "\r\n")
	}
}

// RenderMenu draws a full-screen menu
func (t *TUIRenderer) RenderMenu(items []menu.MenuItem, selected int, helpText string, title string) {
	var b strings.Builder
	b.WriteString("\033[H\033[2J")
	b.WriteString("\r\n  " + t.StyleText(title, renderer.StyleTitle) + "\r\n\r\n")

	for i, item := range items {
		prefix := "    "
		label := item.GetLabel()
		switch {
		case i == selected:
			prefix = "  > "
			label = t.StyleText(label, renderer.StylePlayer)
		case !item.IsSelectable():
			label = t.StyleText(label, renderer.StyleSubtle)
		}
		b.WriteString(prefix + label + "\r\n")
	}

	if helpText != "" {
		b.WriteString("\r\n")
		for _, line := range strings.Split(helpText, "\n") {
			b.WriteString("  " + t.StyleText(line, renderer.StyleSubtle) + "\r\n")
		}
	}

	fmt.Print(b.String())
}

// ClearMenu hides the menu
func (t *TUIRenderer) ClearMenu() {
	t.Clear()
}
