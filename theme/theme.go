package theme

import (
	"image/color"

	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// AlphaPalette is the set of alpha values to be applied for certain
// material design states like hover, selected, etc...
type AlphaPalette struct {
	Hover, Selected uint8
}

var DefaultAlphaPalette = AlphaPalette{
	Hover:    48,
	Selected: 96,
}

// MenuPalette styles popup menus.
type MenuPalette struct {
	// Background of the menu surface.
	MenuBg color.NRGBA
	// MenuRadius is the corner radius of the menu surface.
	MenuRadius unit.Dp
}

type Theme struct {
	*material.Theme
	AlphaPalette
	MenuPalette
	// Bg2 is a secondary background. Menus fall back to it when MenuBg is
	// unset.
	Bg2 color.NRGBA
}

// NewTheme instantiates a theme, extending material theme.
func NewTheme(fontDir string, embeddedFonts [][]byte, noSystemFonts bool) *Theme {
	th := material.NewTheme()

	var options = []text.ShaperOption{
		text.WithCollection(LoadBuiltin(fontDir, embeddedFonts)),
	}

	if noSystemFonts {
		options = append(options, text.NoSystemFonts())
	}

	th.Shaper = text.NewShaper(options...)

	theme := &Theme{
		Theme:        th,
		AlphaPalette: DefaultAlphaPalette,
		MenuPalette: MenuPalette{
			MenuBg:     color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
			MenuRadius: unit.Dp(4),
		},
		Bg2: color.NRGBA{R: 0xe1, G: 0xe1, B: 0xe1, A: 0xff},
	}

	return theme
}
