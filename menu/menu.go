// Package menu renders context and dropdown menus with Gio. A Controller
// tracks visibility, payload and keyboard selection; ContextMenu places the
// menu at the pointer and TriggerArea turns pointer input on any widget
// into show requests.
package menu

import (
	"image"
	"image/color"
	"log"

	"github.com/oligo/ctxmenu/misc"
	"github.com/oligo/ctxmenu/theme"

	"gioui.org/io/semantic"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	defaultOptionInset = layout.Inset{
		Left:   unit.Dp(20),
		Right:  unit.Dp(20),
		Top:    unit.Dp(4),
		Bottom: unit.Dp(4),
	}
)

type MenuOption struct {
	Layout func(gtx C, th *theme.Theme) D
	// OnClicked receives the payload collected by the trigger that opened
	// the menu.
	OnClicked func(data any) error
}

// optionItem is the Selectable for one option.
type optionItem struct {
	menu      *Menu
	opt       *MenuOption
	state     *widget.Clickable
	listIndex int
}

func (o *optionItem) Click() {
	o.menu.activate(o)
}

// Menu lays out grouped options and registers them with a Controller for
// keyboard selection.
type Menu struct {
	optionList widget.List
	options    [][]MenuOption
	items      []*optionItem
	menuItems  []layout.Widget
	ctrl       *Controller

	// Background color of the menu. If unset, MenuBg of theme will be used,
	// or Bg2 when the theme has no menu palette.
	Background color.NRGBA
	// Inset applied around the rendered contents of the state's Options field.
	OptionInset layout.Inset
}

func newMenu(options [][]MenuOption) Menu {
	return Menu{
		optionList: widget.List{
			List: layout.List{
				Axis: layout.Vertical,
			},
		},
		options: options,
	}
}

// SetOptions replaces the options. The menu is rebuilt on the next layout.
func (m *Menu) SetOptions(options [][]MenuOption) {
	m.options = options
	m.menuItems = nil
	m.items = nil
	if m.ctrl != nil {
		m.ctrl.ResetSelectables()
	}
}

func (m *Menu) buildMenus(th *theme.Theme) []layout.Widget {
	if len(m.options) <= 0 {
		return nil
	}

	menuItems := make([]layout.Widget, 0)
	m.items = m.items[:0]
	if m.ctrl != nil {
		m.ctrl.ResetSelectables()
	}

	for i, group := range m.options {
		if i != 0 {
			menuItems = append(menuItems, func(gtx C) D {
				return layout.Inset{
					Left:   unit.Dp(10),
					Bottom: unit.Dp(4),
				}.Layout(gtx, func(gtx C) D {
					return misc.Divider(layout.Horizontal, unit.Dp(1)).Layout(gtx, th)
				})
			})
		}

		for j := range group {
			item := &optionItem{
				menu:      m,
				opt:       &group[j],
				state:     &widget.Clickable{},
				listIndex: len(menuItems),
			}
			m.items = append(m.items, item)
			if m.ctrl != nil {
				m.ctrl.Register(item)
			}

			index := len(m.items) - 1
			menuItems = append(menuItems, func(gtx C) D {
				return m.layoutOption(gtx, th, index, item)
			})
		}
	}

	return menuItems
}

// surfaceFill picks the menu background: Background, then the theme's
// MenuBg, then Bg2.
func (m *Menu) surfaceFill(th *theme.Theme) color.NRGBA {
	switch {
	case m.Background != (color.NRGBA{}):
		return m.Background
	case th.MenuBg != (color.NRGBA{}):
		return th.MenuBg
	}
	return th.Bg2
}

// layoutOptions renders the menu option list.
func (m *Menu) layoutOptions(gtx C, th *theme.Theme) D {
	if len(m.menuItems) <= 0 {
		m.menuItems = m.buildMenus(th)
	}

	// measure the widest option with throwaway ops.
	var fakeOps op.Ops
	originalOps := gtx.Ops
	gtx.Ops = &fakeOps
	maxWidth := 0
	for _, w := range m.menuItems {
		dims := w(gtx)
		if dims.Size.X > maxWidth {
			maxWidth = dims.Size.X
		}
	}
	gtx.Ops = originalOps

	surface := component.Surface(th.Theme)
	surface.CornerRadius = th.MenuRadius
	surface.Fill = m.surfaceFill(th)

	return surface.Layout(gtx, func(gtx C) D {
		semantic.DescriptionOp("menu").Add(gtx.Ops)
		return layout.Inset{
			Top:    unit.Dp(8),
			Bottom: unit.Dp(8),
		}.Layout(gtx, func(gtx C) D {
			return material.List(th.Theme, &m.optionList).Layout(gtx, len(m.menuItems), func(gtx C, index int) D {
				gtx.Constraints.Min.X = maxWidth
				gtx.Constraints.Max.X = maxWidth
				return m.menuItems[index](gtx)
			})
		})
	})
}

func (m *Menu) layoutOption(gtx C, th *theme.Theme, index int, item *optionItem) D {
	if item.state.Clicked(gtx) {
		m.activate(item)
	}

	if m.OptionInset == (layout.Inset{}) {
		m.OptionInset = defaultOptionInset
	}

	return layout.Inset{
		Left:   unit.Dp(10),
		Bottom: unit.Dp(4),
	}.Layout(gtx, func(gtx C) D {
		return material.Clickable(gtx, item.state, func(gtx C) D {
			macro := op.Record(gtx.Ops)
			dims := m.OptionInset.Layout(gtx, func(gtx C) D {
				return item.opt.Layout(gtx, th)
			})
			callOp := macro.Stop()

			defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
			selected := m.ctrl != nil && m.ctrl.Selected() == index
			semantic.DescriptionOp("menuitem").Add(gtx.Ops)
			semantic.SelectedOp(selected).Add(gtx.Ops)
			if selected {
				paint.ColorOp{Color: misc.WithAlpha(th.Fg, th.Hover)}.Add(gtx.Ops)
				paint.PaintOp{}.Add(gtx.Ops)
			}

			callOp.Add(gtx.Ops)
			return dims
		})
	})
}

// activate runs the option's handler with the current payload and closes
// the menu.
func (m *Menu) activate(item *optionItem) {
	var data any
	if m.ctrl != nil {
		data = m.ctrl.Data()
	}
	if item.opt.OnClicked != nil {
		if err := item.opt.OnClicked(data); err != nil {
			log.Printf("menu option failed: %v", err)
		}
	}
	if m.ctrl != nil {
		m.ctrl.Hide()
	}
}

// scrollTo brings the selectable at index into view.
func (m *Menu) scrollTo(index int) {
	if index < 0 || index >= len(m.items) {
		return
	}
	m.optionList.List.ScrollTo(m.items[index].listIndex)
}

func (m *Menu) onDismissed() {
	m.optionList.List.ScrollTo(0)
}
