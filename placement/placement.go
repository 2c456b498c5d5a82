// Package placement computes where a popup menu goes so that it stays
// inside the viewport.
package placement

import (
	"image"
	"math"

	"gioui.org/f32"
)

// Size is the width and height of a rectangle in pixels.
type Size struct {
	Width, Height float32
}

// SizeOf converts integer dimensions, as reported by layout.Dimensions.
func SizeOf(p image.Point) Size {
	return Size{Width: float32(p.X), Height: float32(p.Y)}
}

// Placement is the top-left corner of a placed menu, relative to the
// viewport origin.
type Placement struct {
	Top, Left float32
}

// Offset rounds the placement to whole pixels, suitable for op.Offset.
func (p Placement) Offset() image.Point {
	return image.Point{
		X: int(math.Round(float64(p.Left))),
		Y: int(math.Round(float64(p.Top))),
	}
}

// Rect returns the area covered by a menu of the given size.
func (p Placement) Rect(size image.Point) image.Rectangle {
	off := p.Offset()
	return image.Rectangle{Min: off, Max: off.Add(size)}
}

// Compute places a menu of size rect at anchor. In right-to-left mode the
// menu opens towards the left of the anchor.
func Compute(rect Size, anchor f32.Point, viewport Size, rtl bool) Placement {
	if rtl {
		return RTL(rect, anchor, viewport)
	}
	return LTR(rect, anchor, viewport)
}

// LTR opens the menu below and to the right of the anchor, flipping each
// axis that overflows the viewport.
func LTR(rect Size, anchor f32.Point, viewport Size) Placement {
	p := Placement{Top: anchor.Y, Left: anchor.X}

	if p.Top+rect.Height > viewport.Height {
		p.Top -= rect.Height
	}
	if p.Left+rect.Width > viewport.Width {
		p.Left -= rect.Width
	}

	if p.Top < 0 {
		p.Top = fallback(rect.Height, viewport.Height)
	}
	if p.Left < 0 {
		p.Left = fallback(rect.Width, viewport.Width)
	}

	return p
}

// RTL mirrors LTR horizontally: the menu's right edge sits on the anchor
// unless that pushes it past the left edge of the viewport.
func RTL(rect Size, anchor f32.Point, viewport Size) Placement {
	p := Placement{Top: anchor.Y, Left: anchor.X - rect.Width}

	if p.Top+rect.Height > viewport.Height {
		p.Top -= rect.Height
	}
	if p.Left < 0 {
		p.Left += rect.Width
	}

	if p.Top < 0 {
		p.Top = fallback(rect.Height, viewport.Height)
	}
	if p.Left+rect.Width > viewport.Width {
		p.Left = fallback(rect.Width, viewport.Width)
	}

	return p
}

// fallback centers a menu that fits in the viewport dimension and pins one
// that does not.
func fallback(length, bound float32) float32 {
	if length < bound {
		return (bound - length) / 2
	}
	return 0
}
