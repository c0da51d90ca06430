package generator

// Carver produces a room's playable interior from its BSP leaf.
// The result must lie inside bounds and have positive width and height.
type Carver interface {
	Carve(bounds Rect, src Source) Rect
}

// FixedMargin insets every side by the same margin
type FixedMargin struct {
	Margin int
}

// Carve applies the margin, shrinking it on axes too small to keep a positive extent
func (c FixedMargin) Carve(bounds Rect, _ Source) Rect {
	mx := clampMargin(c.Margin, bounds.Width, 1)
	my := clampMargin(c.Margin, bounds.Height, 1)
	return inset(bounds, mx, my)
}

// RandomMargin insets each axis by an independent 1-2 cell margin, keeping
// interiors at least MinInner wide where the bounds allow it.
type RandomMargin struct{}

// MinInner is the smallest interior extent RandomMargin aims for
const MinInner = 3

// Carve draws the x margin, then the y margin
func (c RandomMargin) Carve(bounds Rect, src Source) Rect {
	mx := clampMargin(1+src.Intn(2), bounds.Width, MinInner)
	my := clampMargin(1+src.Intn(2), bounds.Height, MinInner)
	return inset(bounds, mx, my)
}

// DefaultCarver is the fixed one-cell margin
var DefaultCarver Carver = FixedMargin{Margin: 1}

// clampMargin reduces margin until extent-2*margin reaches minInner, or zero.
// An extent smaller than minInner keeps at least one cell.
func clampMargin(margin, extent, minInner int) int {
	if margin < 0 {
		margin = 0
	}
	floor := min(minInner, extent)
	if floor < 1 {
		floor = 1
	}
	for margin > 0 && extent-2*margin < floor {
		margin--
	}
	return margin
}

func inset(r Rect, mx, my int) Rect {
	return Rect{
		X:      r.X + mx,
		Y:      r.Y + my,
		Width:  r.Width - 2*mx,
		Height: r.Height - 2*my,
	}
}
