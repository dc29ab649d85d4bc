package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// OpticsBenchTheme provides a custom theme for the application.
type OpticsBenchTheme struct{}

var _ fyne.Theme = (*OpticsBenchTheme)(nil)

func (t *OpticsBenchTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x6E, G: 0xB4, B: 0xEB, A: 0xFF} // Lens blue
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x10, G: 0x12, B: 0x1A, A: 0xFF} // Matches the canvas
	case theme.ColorNameScrollBar:
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	default:
		return theme.DefaultTheme().Color(name, variant)
	}
}

func (t *OpticsBenchTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *OpticsBenchTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *OpticsBenchTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameScrollBar:
		return 16
	case theme.SizeNameScrollBarSmall:
		return 12
	default:
		return theme.DefaultTheme().Size(name)
	}
}
