package renderer

import (
	"dungeoncrawler/pkg/engine/input"
	"dungeoncrawler/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StyleCorridor
	StylePlayer
	StyleEnemy
	StyleShot
	StyleRoom
	StyleDamage
	StyleAction
	StyleActionShort
	StyleSubtle
	StyleTitle
	StyleMinimap
	StyleMinimapCurrent
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame: map, minimap, status bar and messages
	RenderFrame(g *state.Game)

	// GetInput blocks until the player (or the clock) produces an intent
	GetInput() input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols) in cells
	GetViewportSize() (rows, cols int)
}

// Runner is implemented by renderers that must own the main goroutine.
// Run executes loop on another goroutine and returns once it finishes or the window closes.
type Runner interface {
	Run(loop func()) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// GetInput gets the next intent from the current renderer
func GetInput() input.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionNone}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return ApplyMarkup(PlainStyle, msg, args...)
}

// ShowMessage displays a message with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 15, 30
}

// Run hands loop to the current renderer when it needs the main goroutine,
// otherwise runs it directly.
func Run(loop func()) error {
	if runner, ok := Current.(Runner); ok {
		return runner.Run(loop)
	}
	loop()
	return nil
}
