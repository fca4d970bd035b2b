package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Color represents a hex color string.
type Color string

// PanelStyle defines ambient colors for the panel surface. Severity
// colors are not here: they are a fixed table in the ui package, not a
// theme concern.
type PanelStyle struct {
	FgColor       Color `yaml:"fgColor"`       // Primary text
	BgColor       Color `yaml:"bgColor"`       // Panel background
	MutedFgColor  Color `yaml:"mutedFgColor"`  // Secondary text, empty signal dots
	AccentFgColor Color `yaml:"accentFgColor"` // Title, live indicator
	WarnFgColor   Color `yaml:"warnFgColor"`   // Header error text
}

// FooterStyle defines colors for the footer section.
type FooterStyle struct {
	FgColor     Color `yaml:"fgColor"`
	KeyFgColor  Color `yaml:"keyFgColor"`
	DescFgColor Color `yaml:"descFgColor"`
}

// BorderStyle defines colors for borders.
type BorderStyle struct {
	FgColor Color `yaml:"fgColor"` // Card outlines, frame borders
}

// ModalStyle defines colors for modal dialogs.
type ModalStyle struct {
	DimmedFgColor Color `yaml:"dimmedFgColor"` // Dimmed background when modal visible
	BorderFgColor Color `yaml:"borderFgColor"` // Modal border
	AccentFgColor Color `yaml:"accentFgColor"` // Accent color for modal
}

// Styles holds all the theme colors.
type Styles struct {
	Panel  PanelStyle  `yaml:"panel"`
	Footer FooterStyle `yaml:"footer"`
	Border BorderStyle `yaml:"border"`
	Modal  ModalStyle  `yaml:"modal"`
}

// Theme is the top-level theme configuration.
type Theme struct {
	Name   string `yaml:"name"`
	Styles Styles `yaml:"styles"`
}

// DefaultTheme returns the built-in theme, tuned to the dark gray panel
// of the device UI.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "device",
		Styles: Styles{
			Panel: PanelStyle{
				FgColor:       "#ffffff",
				BgColor:       "#393939",
				MutedFgColor:  "#545454",
				AccentFgColor: "#58a6ff",
				WarnFgColor:   "#d29922",
			},
			Footer: FooterStyle{
				FgColor:     "#e6edf3",
				KeyFgColor:  "#58a6ff",
				DescFgColor: "#7d8590",
			},
			Border: BorderStyle{
				FgColor: "#6e6e6e",
			},
			Modal: ModalStyle{
				DimmedFgColor: "#7d8590",
				BorderFgColor: "#30363d",
				AccentFgColor: "#58a6ff",
			},
		},
	}
}

// LoadTheme loads a theme from the user's config directory or returns the
// default.
func LoadTheme() (*Theme, error) {
	configDir, err := os.UserConfigDir()
	if err == nil {
		userSkinPath := filepath.Join(configDir, "drivemon", "skin.yaml")
		// #nosec G304 - userSkinPath is constructed from trusted sources
		if data, err := os.ReadFile(userSkinPath); err == nil {
			var theme Theme
			if err := yaml.Unmarshal(data, &theme); err == nil {
				return &theme, nil
			}
		}
	}

	return DefaultTheme(), nil
}

// CurrentTheme holds the loaded theme (singleton).
var CurrentTheme *Theme

// InitTheme initializes the global theme.
func InitTheme() error {
	theme, err := LoadTheme()
	if err != nil {
		return err
	}
	CurrentTheme = theme
	return nil
}

func init() {
	// Initialize with default theme on package load
	CurrentTheme = DefaultTheme()
}
