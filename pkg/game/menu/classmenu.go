package menu

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "dungeoncrawler/pkg/engine/input"
	"dungeoncrawler/pkg/game/entities"
)

// dynamicGet looks up translation keys chosen at runtime
var dynamicGet = gotext.Get

// ClassMenuItem offers one player class.
type ClassMenuItem struct {
	Class entities.PlayerClass
}

// GetLabel returns the class icon and translated name.
func (c *ClassMenuItem) GetLabel() string {
	info := c.Class.Info()
	return fmt.Sprintf("%s  %s", info.Icon, dynamicGet(info.NameKey))
}

// IsSelectable returns whether this item can be selected.
func (c *ClassMenuItem) IsSelectable() bool {
	return c.Class.IsValid()
}

// GetHelpText returns the class description.
func (c *ClassMenuItem) GetHelpText() string {
	return dynamicGet(c.Class.Info().DescriptionKey)
}

// ControlsMenuItem shows the key bindings when activated.
type ControlsMenuItem struct{}

// GetLabel returns the display label for this menu item.
func (c *ControlsMenuItem) GetLabel() string {
	return gotext.Get("MENU_CONTROLS")
}

// IsSelectable returns whether this item can be selected.
func (c *ControlsMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (c *ControlsMenuItem) GetHelpText() string {
	return gotext.Get("MENU_CONTROLS_DESC")
}

// ClassMenuHandler handles the class select menu.
type ClassMenuHandler struct {
	chosen entities.PlayerClass
}

// NewClassMenuHandler creates a new class menu handler.
func NewClassMenuHandler() *ClassMenuHandler {
	return &ClassMenuHandler{}
}

// GetTitle returns the menu title.
func (h *ClassMenuHandler) GetTitle() string {
	return gotext.Get("MENU_TITLE")
}

// GetInstructions shows the selected item's help under the menu hint.
func (h *ClassMenuHandler) GetInstructions(selected MenuItem) string {
	hint := gotext.Get("MENU_HINT")
	if selected == nil {
		return hint
	}
	return selected.GetHelpText() + "\n" + hint
}

// OnSelect is called when an item is selected.
func (h *ClassMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate picks a class, or lists the controls without closing.
func (h *ClassMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	switch it := item.(type) {
	case *ClassMenuItem:
		h.chosen = it.Class
		return true, ""
	case *ControlsMenuItem:
		return false, ControlsText()
	}
	return false, ""
}

// OnExit clears any choice made before backing out.
func (h *ClassMenuHandler) OnExit() {
	h.chosen = entities.ClassNone
}

// Chosen returns the class picked, or ClassNone.
func (h *ClassMenuHandler) Chosen() entities.PlayerClass {
	return h.chosen
}

// GetMenuItems returns one item per class followed by the controls entry.
func (h *ClassMenuHandler) GetMenuItems() []MenuItem {
	items := make([]MenuItem, 0, len(entities.Classes)+1)
	for _, class := range entities.Classes {
		items = append(items, &ClassMenuItem{Class: class})
	}
	return append(items, &ControlsMenuItem{})
}

// RunClassMenu shows the class menu until a class is chosen.
// ok is false if the player left the menu instead.
func RunClassMenu() (class entities.PlayerClass, ok bool) {
	handler := NewClassMenuHandler()
	if !RunMenu(handler.GetMenuItems(), handler) {
		return entities.ClassNone, false
	}
	return handler.Chosen(), handler.Chosen().IsValid()
}

var controlActions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionFire,
	engineinput.ActionConfirm,
	engineinput.ActionQuit,
	engineinput.ActionExit,
}

// ControlsText lists every player action with its bound keys, one per line.
func ControlsText() string {
	byAction := engineinput.GetBindingsByAction()
	lines := make([]string, 0, len(controlActions))
	for _, act := range controlActions {
		codes := strings.Join(byAction[act], ", ")
		if codes == "" {
			codes = "(unbound)"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", engineinput.ActionName(act), codes))
	}
	return strings.Join(lines, "\n")
}
