package menu

import (
	"image/color"
	"testing"

	"github.com/oligo/ctxmenu/theme"

	"gioui.org/widget/material"
)

func TestSurfaceFill(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	menuBg := color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	bg2 := color.NRGBA{R: 0xe1, G: 0xe1, B: 0xe1, A: 0xff}

	cases := []struct {
		name       string
		background color.NRGBA
		menuBg     color.NRGBA
		want       color.NRGBA
	}{
		{"explicit background wins", red, menuBg, red},
		{"theme menu palette", color.NRGBA{}, menuBg, menuBg},
		{"secondary background fallback", color.NRGBA{}, color.NRGBA{}, bg2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th := &theme.Theme{
				Theme:       material.NewTheme(),
				MenuPalette: theme.MenuPalette{MenuBg: tc.menuBg},
				Bg2:         bg2,
			}
			m := newMenu(nil)
			m.Background = tc.background
			if got := m.surfaceFill(th); got != tc.want {
				t.Errorf("surfaceFill() = %v, want %v", got, tc.want)
			}
		})
	}
}
