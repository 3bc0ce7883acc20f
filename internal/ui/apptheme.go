package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/homeboard/homeboard/internal/model"
)

// BoardTheme pins the Fyne variant to the theme stored in the app state,
// ignoring the system preference, and adds the dashboard's green accent.
type BoardTheme struct {
	mode model.Theme
}

// NewBoardTheme creates a theme for the given stored mode.
func NewBoardTheme(mode model.Theme) fyne.Theme {
	return &BoardTheme{mode: mode}
}

// Color returns theme colors for the stored variant.
func (t *BoardTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	variant := theme.VariantLight
	if t.mode == model.ThemeDark {
		variant = theme.VariantDark
	}

	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 16, G: 185, B: 129, A: 255} // Emerald accent
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 24, B: 27, A: 255} // Zinc
		}
		return color.RGBA{R: 247, G: 254, B: 250, A: 255} // Faint green tint
	case theme.ColorNameError:
		return color.RGBA{R: 220, G: 38, B: 38, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *BoardTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BoardTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with slightly tightened paddings for the dense
// sidebar and grid.
func (t *BoardTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 14
	}
	return theme.DefaultTheme().Size(name)
}
