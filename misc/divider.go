package misc

import (
	"image"
	"image/color"

	"github.com/oligo/ctxmenu/theme"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

type DividerStyle struct {
	Axis      layout.Axis
	Thickness unit.Dp
	// Color of the line. If unset, the theme's foreground at a quarter
	// opacity is used.
	Color color.NRGBA
}

func Divider(axis layout.Axis, thickness unit.Dp) DividerStyle {
	return DividerStyle{Axis: axis, Thickness: thickness}
}

// Layout draws a line spanning the maximum constraint along the axis.
func (d DividerStyle) Layout(gtx layout.Context, th *theme.Theme) layout.Dimensions {
	thickness := gtx.Dp(d.Thickness)
	if thickness <= 0 {
		thickness = 1
	}

	size := image.Point{X: gtx.Constraints.Max.X, Y: thickness}
	if d.Axis == layout.Vertical {
		size = image.Point{X: thickness, Y: gtx.Constraints.Max.Y}
	}

	c := d.Color
	if c == (color.NRGBA{}) {
		c = WithAlpha(th.Fg, 0x40)
	}
	paint.FillShape(gtx.Ops, c, clip.Rect{Max: size}.Op())

	return layout.Dimensions{Size: size}
}
