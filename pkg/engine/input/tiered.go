package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	// DeviceClock produces heartbeat ticks so timed systems advance without key presses
	DeviceClock
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Combat
	ActionFire

	// Meta / UI
	ActionConfirm // Enter / Space in menus
	ActionQuit    // Leave the dungeon, back to the class menu
	ActionExit    // Leave the program
	ActionTick    // Heartbeat, no player input
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// IsMove reports whether the intent is one of the four movement actions
func (i Intent) IsMove() bool {
	switch i.Action {
	case ActionMoveNorth, ActionMoveSouth, ActionMoveWest, ActionMoveEast:
		return true
	}
	return false
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "tick").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// Debouncer drops repeats of the same code arriving within Window.
// Terminal key repeat otherwise floods the move queue.
type Debouncer struct {
	Window time.Duration

	lastCode string
	lastAt   time.Time
}

// Accept returns the debounced form of raw and whether it should be processed
func (d *Debouncer) Accept(raw RawInput) (DebouncedInput, bool) {
	ev := DebouncedInput{Device: raw.Device, Code: raw.Code}
	if raw.Device == DeviceClock {
		return ev, true
	}
	if raw.Code == d.lastCode && raw.Timestamp.Sub(d.lastAt) < d.Window {
		return ev, false
	}
	d.lastCode = raw.Code
	d.lastAt = raw.Timestamp
	return ev, true
}

// NewDebouncedInput converts a raw event without any suppression
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveNorth,
	"w":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"s":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"a":           ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"d":           ActionMoveEast,
	"l":           ActionMoveEast,

	"f":     ActionFire,
	"space": ActionFire,

	"enter": ActionConfirm,

	"q":      ActionQuit,
	"escape": ActionQuit,

	"ctrl_c": ActionExit,

	"tick": ActionTick,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit to Menu"
	case ActionExit:
		return "Exit"
	case ActionTick:
		return "Tick"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
