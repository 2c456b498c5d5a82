package menu

import (
	"image"
	"time"

	"github.com/oligo/ctxmenu/theme"
	"github.com/oligo/ctxmenu/widget"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/op"
	"gioui.org/widget/material"
	"gioui.org/x/component"
)

// DropdownMenu shows the menu in a modal layer at the origin of its
// layout, typically right below a button.
type DropdownMenu struct {
	Menu
	modalLayer *widget.ModalLayer
	handler    DocumentHandler
}

func NewDropdownMenu(options [][]MenuOption) *DropdownMenu {
	m := &DropdownMenu{
		modalLayer: widget.NewModal(),
		Menu:       newMenu(options),
	}
	m.modalLayer.Duration = time.Millisecond * 100
	m.ctrl = NewController(m, func(index int, _ Selectable) {
		m.scrollTo(index)
	})
	return m
}

// Controller exposes the visibility state and its setters.
func (m *DropdownMenu) Controller() *Controller {
	return m.ctrl
}

// Subscribe implements EventSource.
func (m *DropdownMenu) Subscribe(h DocumentHandler) func() {
	m.handler = h
	return func() {
		if m.handler == h {
			m.handler = nil
		}
	}
}

func (m *DropdownMenu) Layout(gtx C, th *theme.Theme) D {
	m.Update(gtx)

	m.modalLayer.Widget = func(gtx C, _ *material.Theme, anim *component.VisibilityAnimation) D {
		gtx.Constraints.Min = image.Point{}
		dims := m.layoutOptions(gtx, th)
		event.Op(gtx.Ops, m)
		return dims
	}
	return m.modalLayer.Layout(gtx, th.Theme)
}

// Update states and report whether the dropdown menu has just dismissed.
func (m *DropdownMenu) Update(gtx C) bool {
	if m.modalLayer.Update(gtx) && m.handler != nil {
		m.handler.HandleOutsidePress()
	}
	processKeys(gtx, m, &m.handler)

	visible := m.ctrl.Visible()
	switch {
	case visible && !m.modalLayer.Visible():
		m.modalLayer.Appear(gtx.Now)
		gtx.Execute(key.FocusCmd{Tag: m})
	case visible && !gtx.Focused(m):
		gtx.Execute(key.FocusCmd{Tag: m})
	case !visible && m.modalLayer.Visible() && m.modalLayer.State != component.Disappearing:
		m.modalLayer.Disappear(gtx.Now)
		gtx.Execute(op.InvalidateCmd{})
	}

	dismissed := m.modalLayer.Dismissed()
	if dismissed {
		m.onDismissed()
	}
	return dismissed
}

// ToggleVisibility toggles the visibility state and report the changed state.
func (m *DropdownMenu) ToggleVisibility(gtx C) bool {
	if m.ctrl.Visible() {
		m.ctrl.Hide()
	} else {
		m.ctrl.Show(m.ctrl.Anchor(), m.ctrl.Data())
	}
	gtx.Execute(op.InvalidateCmd{})
	return m.ctrl.Visible()
}

// processKeys forwards navigation keys focused on tag to the subscribed
// handler, if any.
func processKeys(gtx C, tag event.Tag, handler *DocumentHandler) {
	for {
		ev, ok := gtx.Event(
			key.FocusFilter{Target: tag},
			key.Filter{Focus: tag, Name: key.NameUpArrow},
			key.Filter{Focus: tag, Name: key.NameDownArrow},
			key.Filter{Focus: tag, Name: key.NameEnter},
			key.Filter{Focus: tag, Name: key.NameReturn},
			key.Filter{Focus: tag, Name: key.NameEscape},
		)
		if !ok {
			break
		}
		e, ok := ev.(key.Event)
		if !ok || e.State != key.Press || *handler == nil {
			continue
		}
		if k, ok := navKey(e.Name); ok {
			(*handler).HandleKey(k)
		}
	}
}

func navKey(name key.Name) (NavKey, bool) {
	switch name {
	case key.NameUpArrow:
		return KeyPrev, true
	case key.NameDownArrow:
		return KeyNext, true
	case key.NameEnter, key.NameReturn:
		return KeyConfirm, true
	case key.NameEscape:
		return KeyCancel, true
	}
	return 0, false
}
