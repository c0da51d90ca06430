// Package menu provides a generic menu system for the game.
package menu

import (
	engineinput "dungeoncrawler/pkg/engine/input"
	"dungeoncrawler/pkg/game/renderer"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)
	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is left without activating an item.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// MenuRenderer is implemented by renderers that can draw a full-screen menu.
type MenuRenderer interface {
	// RenderMenu draws the menu with the given items, selected index, help text, and title.
	RenderMenu(items []MenuItem, selected int, helpText string, title string)
	// ClearMenu hides the menu.
	ClearMenu()
}

// RunMenu runs a generic menu with the given items and handler.
// Returns true if an item closed the menu, false if the player backed out.
func RunMenu(items []MenuItem, handler MenuHandler) bool {
	selected := firstSelectable(items)
	helpText := ""

	for {
		if mr, ok := renderer.Current.(MenuRenderer); ok {
			instructions := handler.GetInstructions(itemAt(items, selected))
			text := helpText
			if text == "" {
				text = instructions
			}
			mr.RenderMenu(items, selected, text, handler.GetTitle())
		}

		intent := renderer.GetInput()

		switch intent.Action {
		case engineinput.ActionMoveNorth:
			if i := previousSelectable(items, selected); i != selected {
				selected = i
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionMoveSouth:
			if i := nextSelectable(items, selected); i != selected {
				selected = i
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionConfirm, engineinput.ActionFire:
			item := itemAt(items, selected)
			if item == nil || !item.IsSelectable() {
				continue
			}
			shouldClose, newHelpText := handler.OnActivate(item, selected)
			helpText = newHelpText
			if shouldClose {
				clearMenu()
				return true
			}
		case engineinput.ActionQuit, engineinput.ActionExit:
			clearMenu()
			handler.OnExit()
			return false
		default:
			// Ticks and unbound keys are ignored while in a menu
		}
	}
}

func clearMenu() {
	if mr, ok := renderer.Current.(MenuRenderer); ok {
		mr.ClearMenu()
	}
}

func itemAt(items []MenuItem, i int) MenuItem {
	if i < 0 || i >= len(items) {
		return nil
	}
	return items[i]
}

func firstSelectable(items []MenuItem) int {
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return 0
}

// previousSelectable moves up to the previous selectable item, wrapping around
func previousSelectable(items []MenuItem, selected int) int {
	for step := 1; step < len(items); step++ {
		i := (selected - step + len(items)) % len(items)
		if items[i].IsSelectable() {
			return i
		}
	}
	return selected
}

// nextSelectable moves down to the next selectable item, wrapping around
func nextSelectable(items []MenuItem, selected int) int {
	for step := 1; step < len(items); step++ {
		i := (selected + step) % len(items)
		if items[i].IsSelectable() {
			return i
		}
	}
	return selected
}
