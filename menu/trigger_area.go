package menu

import (
	"image"

	"github.com/oligo/ctxmenu/trigger"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
)

// TriggerArea makes a widget open its ContextMenu. It feeds Gio pointer
// events into a trigger.Trigger:
//
//   - mouse press: MouseDown, plus ContextMenu for the secondary button
//   - mouse release: MouseUp, plus Click for the primary button
//   - mouse leave or cancel: MouseOut
//   - touch press: TouchStart
//   - touch release: TouchEnd, then Click unless the hold already opened
//     the menu
type TriggerArea struct {
	menu    *ContextMenu
	trig    *trigger.Trigger
	pressed pointer.Buttons
}

func (t *TriggerArea) Layout(gtx C, w layout.Widget) D {
	t.Update(gtx)

	dims := w(gtx)
	defer clip.Rect(image.Rectangle{Max: dims.Size}).Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, t)

	return dims
}

func (t *TriggerArea) Update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: t,
			Kinds:  pointer.Press | pointer.Release | pointer.Leave | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		t.dispatch(e)
	}
}

// Trigger returns the underlying gesture state.
func (t *TriggerArea) Trigger() *trigger.Trigger {
	return t.trig
}

// Stop cancels pending hold gestures.
func (t *TriggerArea) Stop() {
	t.trig.Stop()
	t.pressed = 0
}

func (t *TriggerArea) dispatch(e pointer.Event) {
	pos := t.menu.pointerPosition(e.Position)
	newEvent := func(kind trigger.Kind, btn pointer.Buttons) *trigger.Event {
		te := &trigger.Event{
			Kind:      kind,
			Source:    e.Source,
			Button:    btn,
			Position:  pos,
			Modifiers: e.Modifiers,
		}
		if e.Source == pointer.Touch {
			te.Touches = []f32.Point{pos}
		}
		return te
	}

	switch e.Kind {
	case pointer.Press:
		if e.Source == pointer.Touch {
			t.pressed = pointer.ButtonPrimary
			t.trig.TouchStart(newEvent(trigger.TouchStart, pointer.ButtonPrimary))
			return
		}
		btn := pressedButton(e.Buttons)
		t.pressed = btn
		t.trig.MouseDown(newEvent(trigger.MouseDown, btn))
		if btn == pointer.ButtonSecondary {
			t.trig.ContextMenu(newEvent(trigger.ContextMenu, btn))
		}

	case pointer.Release:
		btn := t.pressed
		t.pressed = 0
		if e.Source == pointer.Touch {
			end := newEvent(trigger.TouchEnd, pointer.ButtonPrimary)
			t.trig.TouchEnd(end)
			if !end.DefaultPrevented() {
				t.trig.Click(newEvent(trigger.Click, pointer.ButtonPrimary))
			}
			return
		}
		if btn == 0 {
			return
		}
		t.trig.MouseUp(newEvent(trigger.MouseUp, btn))
		if btn == pointer.ButtonPrimary {
			t.trig.Click(newEvent(trigger.Click, btn))
		}

	case pointer.Leave, pointer.Cancel:
		if e.Source == pointer.Touch {
			t.pressed = 0
			t.trig.TouchEnd(newEvent(trigger.TouchEnd, pointer.ButtonPrimary))
			return
		}
		btn := t.pressed
		if btn == 0 {
			btn = pointer.ButtonPrimary
		}
		t.trig.MouseOut(newEvent(trigger.MouseOut, btn))
	}
}

// pressedButton picks the button a press refers to.
func pressedButton(b pointer.Buttons) pointer.Buttons {
	switch {
	case b.Contain(pointer.ButtonPrimary):
		return pointer.ButtonPrimary
	case b.Contain(pointer.ButtonSecondary):
		return pointer.ButtonSecondary
	case b.Contain(pointer.ButtonTertiary):
		return pointer.ButtonTertiary
	}
	return pointer.ButtonPrimary
}
