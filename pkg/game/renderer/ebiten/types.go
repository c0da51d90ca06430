// Package ebiten provides an Ebiten-based 2D graphical renderer for the dungeon.
package ebiten

import (
	"sync"
	"time"

	engineinput "dungeoncrawler/pkg/engine/input"
	"dungeoncrawler/pkg/engine/world"
	"dungeoncrawler/pkg/game/generator"
	"dungeoncrawler/pkg/game/minimap"
)

// renderSnapshot holds a consistent copy of game state for drawing.
// The game loop mutates state on its own goroutine while Draw runs on Ebiten's.
type renderSnapshot struct {
	valid bool

	dungeon     *generator.Dungeon // read-only after generation
	tiles       *world.TileMap
	mini        *minimap.Minimap
	player      world.Position
	enemies     []world.Position
	shot        []world.Position
	currentRoom int
	status      string
	messages    []string
}

// menuState is the menu overlay captured by RenderMenu
type menuState struct {
	active     bool
	title      string
	labels     []string
	selectable []bool
	selected   int
	helpLines  []string
}

// Options configures the window and timing
type Options struct {
	WindowWidth  int
	WindowHeight int
	TileSize     int
	MinimapScale int
	// Tick is the heartbeat interval sent to the game loop; zero disables it
	Tick time.Duration
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	// Layout runs on Ebiten's goroutine and GetViewportSize on the game loop's
	windowWidth  int
	windowHeight int
	sizeMutex    sync.RWMutex

	tileSize     int
	minimapScale int

	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	menu      menuState
	menuMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	tick     time.Duration
	lastTick time.Time

	// done is closed when the game loop returns, closed when the window goes away
	done   chan struct{}
	closed chan struct{}
}
