package ui

// Rect is an axis-aligned rectangle in terminal cells, used for pointer
// hit-testing against panel regions.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Fixed panel geometry. The panel is anchored at the terminal origin and
// laid out top to bottom; only the settings button is interactive.
const (
	// PanelWidth is the full panel width in cells.
	PanelWidth = 36

	// PanelMargin is the left inset of panel content.
	PanelMargin = 2

	// CardTextWidth is the label area inside a status card, between the
	// accent bar and the right border.
	CardTextWidth = 24

	// CardContentHeight is the label area height inside a status card.
	CardContentHeight = 3

	// BatteryBarWidth is the maximum battery fill width in cells; the
	// drawn fill is floor(BatteryBarWidth * percent / 100).
	BatteryBarWidth = 16
)

// SettingsButtonRect is the only interactive region on the panel. It
// matches where renderSettingsButton draws: a bordered button at the top
// left, three rows tall.
var SettingsButtonRect = Rect{X: PanelMargin, Y: 0, W: 14, H: 3}
