package ebiten

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	gamemenu "dungeoncrawler/pkg/game/menu"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
// Uses clockwise arcs so the path winds correctly for fill.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawRoundedRectWithShadow draws a rounded rectangle with drop shadow, fill, and border.
// Used by menus and tooltips. alpha scales shadow opacity (1.0 = full, used for callout fade).
// Shadow color is derived from borderColor (darkened to ~15% brightness).
func drawRoundedRectWithShadow(screen *ebiten.Image, x, y, w, h, cornerRadius, borderWidth float32, bgColor, borderColor color.Color, alpha float32) {
	const shadowSpread = 8
	// Derive shadow from border color (darkened)
	bor, bog, bob, _ := borderColor.RGBA()
	shadowR := uint8((bor >> 8) * 15 / 255)
	shadowG := uint8((bog >> 8) * 15 / 255)
	shadowB := uint8((bob >> 8) * 15 / 255)
	if shadowR < 8 {
		shadowR = 8
	}
	if shadowG < 8 {
		shadowG = 8
	}
	if shadowB < 8 {
		shadowB = 8
	}

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		ringAlpha := uint8(12 + i*8)
		if ringAlpha > 55 {
			ringAlpha = 55
		}
		ringAlpha = uint8(float32(ringAlpha) * alpha)
		path.Reset()
		appendRoundedRect(&path,
			x-float32(i), y-float32(i),
			w+float32(i*2), h+float32(i*2),
			cornerRadius+float32(i))
		appendRoundedRectDir(&path,
			x-float32(i-1), y-float32(i-1),
			w+float32((i-1)*2), h+float32((i-1)*2),
			cornerRadius+float32(i-1), vector.CounterClockwise)
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(color.RGBA{shadowR, shadowG, shadowB, ringAlpha})
		vector.FillPath(screen, &path, nil, drawOpts)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(bgColor)
	vector.FillPath(screen, &path, nil, drawOpts)

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// RenderMenu implements gamemenu.MenuRenderer for Ebiten.
// Labels are captured here so Draw never calls into menu items.
func (e *EbitenRenderer) RenderMenu(items []gamemenu.MenuItem, selected int, helpText string, title string) {
	labels := make([]string, len(items))
	selectable := make([]bool, len(items))
	for i, item := range items {
		labels[i] = item.GetLabel()
		selectable[i] = item.IsSelectable()
	}

	e.menuMutex.Lock()
	defer e.menuMutex.Unlock()
	e.menu = menuState{
		active:     true,
		title:      title,
		labels:     labels,
		selectable: selectable,
		selected:   selected,
		helpLines:  strings.Split(helpText, "\n"),
	}
}

// ClearMenu hides the menu overlay.
func (e *EbitenRenderer) ClearMenu() {
	e.menuMutex.Lock()
	defer e.menuMutex.Unlock()
	e.menu = menuState{}
}

// drawMenuOverlay draws the menu panel centred on the screen
// with a highlight bar behind the selected entry.
func (e *EbitenRenderer) drawMenuOverlay(screen *ebiten.Image) {
	e.menuMutex.RLock()
	m := e.menu
	e.menuMutex.RUnlock()
	if !m.active {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	widest := len(m.title)
	for _, l := range m.labels {
		widest = max(widest, len(l)+4)
	}
	for _, l := range m.helpLines {
		widest = max(widest, len(l))
	}

	lines := 2 + len(m.labels) + 1 + len(m.helpLines)
	w := float32(widest*debugCharWidth + menuPadding*2)
	h := float32(lines*debugLineHeight + menuPadding*2)
	x := (float32(screenWidth) - w) / 2
	y := (float32(screenHeight) - h) / 2

	drawRoundedRectWithShadow(screen, x, y, w, h, 8, 2, colorPanelBackground, colorSubtle, 1)

	tx := int(x) + menuPadding
	ty := int(y) + menuPadding
	ebitenutil.DebugPrintAt(screen, m.title, tx, ty)
	ty += debugLineHeight * 2

	for i, label := range m.labels {
		prefix := "  "
		switch {
		case i == m.selected:
			vector.DrawFilledRect(screen, float32(tx-4), float32(ty),
				float32((len(label)+4)*debugCharWidth+8), float32(debugLineHeight), colorHighlight, false)
			prefix = "> "
		case !m.selectable[i]:
			label = "(" + label + ")"
		}
		ebitenutil.DebugPrintAt(screen, prefix+label, tx, ty)
		ty += debugLineHeight
	}

	ty += debugLineHeight
	for _, line := range m.helpLines {
		ebitenutil.DebugPrintAt(screen, line, tx, ty)
		ty += debugLineHeight
	}
}

// menuActive reports whether a menu is currently shown
func (e *EbitenRenderer) menuActive() bool {
	e.menuMutex.RLock()
	defer e.menuMutex.RUnlock()
	return e.menu.active
}
