package ui

// Keybinding represents a keyboard shortcut with its display name.
type Keybinding struct {
	Key  string // actual key(s) to match
	Desc string // description for help display
}

// Global keybindings (always available)
var (
	KeyQuit     = Keybinding{Key: "q", Desc: "Quit"}
	KeyQuitAlt  = Keybinding{Key: "ctrl+c", Desc: "Quit"}
	KeySettings = Keybinding{Key: "S", Desc: "Settings"}
)

// Settings modal keybindings
var (
	KeyUp      = Keybinding{Key: "up", Desc: "Move up"}
	KeyUpAlt   = Keybinding{Key: "k", Desc: "Move up"}
	KeyDown    = Keybinding{Key: "down", Desc: "Move down"}
	KeyDownAlt = Keybinding{Key: "j", Desc: "Move down"}
	KeyToggle  = Keybinding{Key: " ", Desc: "Toggle"}
	KeyEsc     = Keybinding{Key: "esc", Desc: "Close"}
)

// matchKey checks if the input matches the keybinding.
func matchKey(input string, keys ...Keybinding) bool {
	for _, k := range keys {
		if input == k.Key {
			return true
		}
	}
	return false
}
