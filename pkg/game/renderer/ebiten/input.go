package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "dungeoncrawler/pkg/engine/input"
)

// keyCodes maps Ebiten keys to binding codes
var keyCodes = []struct {
	key    ebiten.Key
	code   string
	repeat bool
}{
	{ebiten.KeyArrowUp, "arrow_up", true},
	{ebiten.KeyArrowDown, "arrow_down", true},
	{ebiten.KeyArrowLeft, "arrow_left", true},
	{ebiten.KeyArrowRight, "arrow_right", true},
	{ebiten.KeyW, "w", true},
	{ebiten.KeyS, "s", true},
	{ebiten.KeyA, "a", true},
	{ebiten.KeyD, "d", true},
	{ebiten.KeyK, "k", true},
	{ebiten.KeyJ, "j", true},
	{ebiten.KeyH, "h", true},
	{ebiten.KeyL, "l", true},
	{ebiten.KeyF, "f", false},
	{ebiten.KeySpace, "space", false},
	{ebiten.KeyEnter, "enter", false},
	{ebiten.KeyNumpadEnter, "enter", false},
	{ebiten.KeyQ, "q", false},
	{ebiten.KeyEscape, "escape", false},
}

// Update polls input and forwards intents to the game loop (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	select {
	case <-e.done:
		return ebiten.Termination
	default:
	}

	if intent := e.checkInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
		return nil
	}

	e.heartbeat(time.Now())
	return nil
}

// send forwards intent without blocking Ebiten's loop; a full channel drops it
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
	}
}

// heartbeat queues a tick every e.tick so enemies move while no key is pressed.
// Ticks are only queued onto an empty channel so they never crowd out keys.
func (e *EbitenRenderer) heartbeat(now time.Time) {
	if e.tick <= 0 || now.Sub(e.lastTick) < e.tick {
		return
	}
	e.lastTick = now
	if len(e.inputChan) > 0 {
		return
	}
	e.send(engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceClock,
		Code:      "tick",
		Timestamp: now,
	})))
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return keyIntent("ctrl_c")
	}

	for _, k := range keyCodes {
		if shouldTrigger(inpututil.KeyPressDuration(k.key), k.repeat) {
			return keyIntent(k.code)
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

// shouldTrigger reports whether a key held for d ticks fires this tick:
// on the first tick, then every keyRepeatInterval after keyRepeatInitialDelay.
func shouldTrigger(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	if !repeat || d < keyRepeatInitialDelay {
		return false
	}
	return (d-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

func keyIntent(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceKeyboard,
		Code:      code,
		Timestamp: time.Now(),
	}))
}
