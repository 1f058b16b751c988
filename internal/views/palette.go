package views

import (
	"image/color"

	"cat-encyclopedia/internal/theme"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// paletteTheme narrows the default fyne theme to one background/foreground
// pair so a ThemeOverride can restyle a single element.
type paletteTheme struct {
	fyne.Theme
	style theme.Style
}

func newPaletteTheme(style theme.Style) fyne.Theme {
	return &paletteTheme{Theme: fynetheme.DefaultTheme(), style: style}
}

func (p *paletteTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground,
		fynetheme.ColorNameButton,
		fynetheme.ColorNameInputBackground,
		fynetheme.ColorNameMenuBackground,
		fynetheme.ColorNameOverlayBackground:
		return p.style.Background
	case fynetheme.ColorNameForeground:
		return p.style.Foreground
	default:
		return p.Theme.Color(name, variant)
	}
}
