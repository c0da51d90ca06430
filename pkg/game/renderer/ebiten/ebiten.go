package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	engineinput "dungeoncrawler/pkg/engine/input"
	"dungeoncrawler/pkg/engine/logger"
	"dungeoncrawler/pkg/game/renderer"
)

// New creates a new Ebiten renderer
func New(opts Options) *EbitenRenderer {
	if opts.WindowWidth <= 0 {
		opts.WindowWidth = DefaultWindowWidth
	}
	if opts.WindowHeight <= 0 {
		opts.WindowHeight = DefaultWindowHeight
	}
	if opts.TileSize <= 0 {
		opts.TileSize = DefaultTileSize
	}
	return &EbitenRenderer{
		windowWidth:  opts.WindowWidth,
		windowHeight: opts.WindowHeight,
		tileSize:     opts.TileSize,
		minimapScale: opts.MinimapScale,
		tick:         opts.Tick,
		inputChan:    make(chan engineinput.Intent, 16),
		done:         make(chan struct{}),
		closed:       make(chan struct{}),
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowSize())
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// Clear drops the current frame; Draw shows only the background until the next RenderFrame
func (e *EbitenRenderer) Clear() {
	e.snapshotMutex.Lock()
	e.snapshot.valid = false
	e.snapshotMutex.Unlock()
}

// GetInput blocks until Update produces an intent. Once the window has
// closed every call reports ActionExit.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.closed:
		return engineinput.Intent{Action: engineinput.ActionExit}
	}
}

// StyleText returns text unchanged; the debug font draws in one colour
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText formats a message with the markup system
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(renderer.PlainStyle, msg, args...)
}

// ShowMessage writes msg to the log; the window has no free-standing text area
func (e *EbitenRenderer) ShowMessage(msg string) {
	logger.Info(renderer.StripMarkup(msg))
}

// GetViewportSize returns how many tiles fit in the window
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	w, h := e.windowSize()
	return h / e.tileSize, w / e.tileSize
}

// windowSize reads the logical screen size last reported by Layout
func (e *EbitenRenderer) windowSize() (int, int) {
	e.sizeMutex.RLock()
	defer e.sizeMutex.RUnlock()
	return e.windowWidth, e.windowHeight
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.sizeMutex.Lock()
	defer e.sizeMutex.Unlock()
	if outsideWidth > 0 && outsideHeight > 0 {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
	}
	return e.windowWidth, e.windowHeight
}

// Run starts loop on its own goroutine and runs Ebiten on the calling one,
// which must be the main goroutine. Closing the window makes GetInput report
// ActionExit; Run returns once the loop has seen it and finished.
func (e *EbitenRenderer) Run(loop func()) error {
	e.start(loop)
	return e.finish(ebiten.RunGame(e))
}

// start runs the game loop on its own goroutine
func (e *EbitenRenderer) start(loop func()) {
	go func() {
		defer close(e.done)
		loop()
	}()
}

// finish tells the loop the window is gone and waits for it to return
func (e *EbitenRenderer) finish(err error) error {
	close(e.closed)
	<-e.done
	if err == ebiten.Termination {
		return nil
	}
	return err
}
