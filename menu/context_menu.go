package menu

import (
	"image"
	"slices"

	"github.com/oligo/ctxmenu/placement"
	"github.com/oligo/ctxmenu/theme"
	"github.com/oligo/ctxmenu/trigger"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

var scrollBounds = image.Rect(-1<<20, -1<<20, 1<<20, 1<<20)

// ContextMenu is a menu that opens at the pointer. Lay it out once, at the
// root of the window, wrapping the content that holds its triggers:
//
//	cm.Layout(gtx, th, func(gtx C) D {
//		return list.Layout(gtx, ..., func(gtx C, i int) D {
//			return rows[i].trigger.Layout(gtx, rows[i].Layout)
//		})
//	})
//
// Triggers created with Trigger open the menu with their collected payload.
type ContextMenu struct {
	Menu

	// RTL opens the menu towards the left of the anchor.
	RTL bool
	// Viewport overrides the area the menu is kept inside. If unset the
	// maximum constraints passed to Layout are used.
	Viewport image.Point
	// OnSelect is called when keyboard navigation moves the selection.
	OnSelect SelectFunc

	sched    *trigger.FrameScheduler
	builder  *trigger.Builder
	triggers []*TriggerArea
	handler  DocumentHandler

	// last pointer position in the coordinates of Layout.
	lastPos    f32.Point
	tracking   bool
	placement  placement.Placement
	menuSize   image.Point
	wasVisible bool
}

func NewContextMenu(options [][]MenuOption) *ContextMenu {
	m := &ContextMenu{
		Menu:  newMenu(options),
		sched: trigger.NewFrameScheduler(),
	}
	m.ctrl = NewController(m, m.onSelect)
	m.builder = trigger.NewBuilder(m.ctrl.Show, m.sched)
	return m
}

// Trigger returns a widget wrapper that opens this menu.
func (m *ContextMenu) Trigger(cfg trigger.Config) *TriggerArea {
	t := &TriggerArea{menu: m, trig: m.builder.Trigger(cfg)}
	m.triggers = append(m.triggers, t)
	return t
}

// Remove stops t and detaches it from the menu.
func (m *ContextMenu) Remove(t *TriggerArea) {
	t.Stop()
	m.triggers = slices.DeleteFunc(m.triggers, func(o *TriggerArea) bool {
		return o == t
	})
}

// Controller exposes the visibility state and its setters.
func (m *ContextMenu) Controller() *Controller {
	return m.ctrl
}

func (m *ContextMenu) State() State {
	return m.ctrl.State()
}

// Show opens the menu at anchor without a trigger.
func (m *ContextMenu) Show(anchor f32.Point, data any) {
	m.ctrl.Show(anchor, data)
}

func (m *ContextMenu) Hide() {
	m.ctrl.Hide()
}

// Placement returns where the menu was drawn in the last frame.
func (m *ContextMenu) Placement() placement.Placement {
	return m.placement
}

// Close hides the menu and stops every pending hold gesture of its
// triggers.
func (m *ContextMenu) Close() {
	for _, t := range m.triggers {
		t.Stop()
	}
	m.triggers = nil
	m.ctrl.Close()
}

// Subscribe implements EventSource. The menu forwards window-wide pointer
// and key events only while a handler is subscribed.
func (m *ContextMenu) Subscribe(h DocumentHandler) func() {
	m.handler = h
	return func() {
		if m.handler == h {
			m.handler = nil
		}
	}
}

func (m *ContextMenu) Layout(gtx C, th *theme.Theme, content layout.Widget) D {
	m.Update(gtx)

	dims := content(gtx)

	m.layoutTracker(gtx)
	if m.ctrl.Visible() {
		m.layoutMenu(gtx, th)
	}
	m.syncFocus(gtx)

	if deadline, ok := m.sched.Deadline(); ok {
		gtx.Execute(op.InvalidateCmd{At: deadline})
	}

	return dims
}

// Update runs due hold timers and processes window-wide events.
func (m *ContextMenu) Update(gtx C) {
	m.sched.Advance(gtx.Now)
	m.updatePointer(gtx)
	processKeys(gtx, m, &m.handler)
}

func (m *ContextMenu) updatePointer(gtx C) {
	filter := pointer.Filter{
		Target: &m.lastPos,
		Kinds:  pointer.Press | pointer.Release | pointer.Move | pointer.Drag,
	}
	if m.handler != nil {
		filter.Kinds |= pointer.Scroll
		filter.ScrollBounds = scrollBounds
	}

	for {
		ev, ok := gtx.Event(filter)
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		if e.Kind != pointer.Scroll {
			m.lastPos = e.Position
			m.tracking = true
		}
		if m.handler == nil {
			continue
		}

		switch e.Kind {
		case pointer.Scroll:
			m.handler.HandleScroll()
		case pointer.Press:
			if e.Position.Round().In(m.menuRect()) {
				continue
			}
			if e.Buttons.Contain(pointer.ButtonSecondary) {
				m.handler.HandleContextMenu()
			} else {
				m.handler.HandleOutsidePress()
			}
		}
	}
}

// layoutTracker lays out a pass-through area over everything so presses
// are seen in root coordinates regardless of which widget receives them.
func (m *ContextMenu) layoutTracker(gtx C) {
	macro := op.Record(gtx.Ops)
	pass := pointer.PassOp{}.Push(gtx.Ops)
	area := clip.Rect(image.Rectangle{Min: image.Pt(-1e6, -1e6), Max: image.Pt(1e6, 1e6)}).Push(gtx.Ops)
	event.Op(gtx.Ops, &m.lastPos)
	area.Pop()
	pass.Pop()
	op.Defer(gtx.Ops, macro.Stop())
}

func (m *ContextMenu) layoutMenu(gtx C, th *theme.Theme) {
	viewport := m.Viewport
	if viewport == (image.Point{}) {
		viewport = gtx.Constraints.Max
	}

	macro := op.Record(gtx.Ops)
	mgtx := gtx
	mgtx.Constraints = layout.Constraints{Max: viewport}
	dims := m.layoutOptions(mgtx, th)
	call := macro.Stop()

	// an option may have been clicked while laying out.
	if !m.ctrl.Visible() {
		return
	}

	m.menuSize = dims.Size
	m.placement = placement.Compute(
		placement.SizeOf(dims.Size),
		m.ctrl.Anchor(),
		placement.SizeOf(viewport),
		m.RTL,
	)

	macro = op.Record(gtx.Ops)
	off := op.Offset(m.placement.Offset()).Push(gtx.Ops)
	area := clip.Rect{Max: dims.Size}.Push(gtx.Ops)
	event.Op(gtx.Ops, m)
	call.Add(gtx.Ops)
	area.Pop()
	off.Pop()
	op.Defer(gtx.Ops, macro.Stop())
}

// syncFocus moves key focus to the menu while it is open and gives it back
// once the menu closes.
func (m *ContextMenu) syncFocus(gtx C) {
	visible := m.ctrl.Visible()
	if visible && !gtx.Focused(m) {
		gtx.Execute(key.FocusCmd{Tag: m})
	}
	if !visible && m.wasVisible {
		if gtx.Focused(m) {
			gtx.Execute(key.FocusCmd{})
		}
		m.menuSize = image.Point{}
		m.onDismissed()
	}
	if visible != m.wasVisible {
		gtx.Execute(op.InvalidateCmd{})
	}
	m.wasVisible = visible
}

func (m *ContextMenu) menuRect() image.Rectangle {
	if m.menuSize == (image.Point{}) {
		return image.Rectangle{}
	}
	return m.placement.Rect(m.menuSize)
}

// pointerPosition maps a position local to a trigger to the coordinates of
// Layout, using the tracker when it has seen the pointer.
func (m *ContextMenu) pointerPosition(local f32.Point) f32.Point {
	if m.tracking {
		return m.lastPos
	}
	return local
}

func (m *ContextMenu) onSelect(index int, item Selectable) {
	m.scrollTo(index)
	if m.OnSelect != nil {
		m.OnSelect(index, item)
	}
}
