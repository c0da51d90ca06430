package ebiten

import "image/color"

// Color palette for the game
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorEnemy           = color.RGBA{255, 80, 80, 255}   // Bright red
	colorShot            = color.RGBA{120, 220, 255, 255} // Pale cyan
	colorWall            = color.RGBA{60, 60, 80, 255}    // Slate
	colorFloor           = color.RGBA{100, 100, 120, 255} // Medium gray
	colorCorridor        = color.RGBA{80, 80, 96, 255}    // Slightly darker than rooms
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorHighlight       = color.RGBA{70, 90, 140, 255}   // Selected menu entry
	colorMinimapCurrent  = color.RGBA{255, 255, 0, 255}   // Yellow
	colorMinimapDim      = color.RGBA{64, 64, 64, 255}    // Dark grey
)

// Window defaults
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultTileSize     = 32
	WindowTitle         = "Dungeon Crawler"
)

// ebitenutil's debug font cell size
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

const (
	menuPadding   = 16
	panelPadding  = 8
	messagesShown = 5
)

// Key repeat timing in ticks (Ebiten runs Update 60 times a second)
const (
	keyRepeatInitialDelay = 18
	keyRepeatInterval     = 6
)
