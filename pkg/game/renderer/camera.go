package renderer

import "dungeoncrawler/pkg/engine/world"

// ToPixel maps a grid cell to the pixel position of its top-left corner
func ToPixel(p world.Position, tileSize int) (x, y int) {
	return p.X * tileSize, p.Y * tileSize
}

// CameraOrigin returns the top-left cell of a cols x rows viewport centred on focus
func CameraOrigin(focus world.Position, cols, rows int) world.Position {
	return world.Position{X: focus.X - cols/2, Y: focus.Y - rows/2}
}

// ScreenPixel maps a grid cell to pixels relative to a camera origin
func ScreenPixel(p, origin world.Position, tileSize int) (x, y int) {
	return ToPixel(world.Position{X: p.X - origin.X, Y: p.Y - origin.Y}, tileSize)
}
