package menu

import (
	"image"
	"testing"
	"time"

	"github.com/oligo/ctxmenu/placement"
	"github.com/oligo/ctxmenu/theme"
	"github.com/oligo/ctxmenu/trigger"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/widget/material"
)

type frameHarness struct {
	t      *testing.T
	router input.Router
	ops    op.Ops
	now    time.Time
	th     *theme.Theme
	menu   *ContextMenu
	area   *TriggerArea
	// indexes of the options clicked, in order.
	clicked []int
}

func newFrameHarness(t *testing.T, cfg trigger.Config) *frameHarness {
	h := &frameHarness{
		t:   t,
		now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		th:  &theme.Theme{Theme: material.NewTheme(), AlphaPalette: theme.DefaultAlphaPalette},
	}
	record := func(index int) func(data any) error {
		return func(data any) error {
			h.clicked = append(h.clicked, index)
			return nil
		}
	}
	h.menu = NewContextMenu([][]MenuOption{
		{
			{Layout: fixedOption, OnClicked: record(0)},
			{Layout: fixedOption, OnClicked: record(1)},
		},
	})
	h.area = h.menu.Trigger(cfg)
	return h
}

func fixedOption(gtx C, th *theme.Theme) D {
	return D{Size: image.Pt(100, 30)}
}

func (h *frameHarness) frame(events ...event.Event) {
	h.router.Queue(events...)
	h.ops.Reset()
	gtx := layout.Context{
		Ops:         &h.ops,
		Constraints: layout.Exact(image.Pt(800, 600)),
		Source:      h.router.Source(),
		Now:         h.now,
	}
	h.menu.Layout(gtx, h.th, func(gtx C) D {
		return h.area.Layout(gtx, func(gtx C) D {
			return D{Size: gtx.Constraints.Max}
		})
	})
	h.router.Frame(&h.ops)
}

func press(btn pointer.Buttons, pos f32.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Source: pointer.Mouse, Buttons: btn, Position: pos}
}

func release(pos f32.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Source: pointer.Mouse, Position: pos}
}

func TestContextMenuOpensAtPointer(t *testing.T) {
	h := newFrameHarness(t, trigger.DefaultConfig())
	h.frame()

	anchor := f32.Pt(790, 580)
	h.frame(press(pointer.ButtonSecondary, anchor), release(anchor))

	st := h.menu.State()
	if !st.Visible {
		t.Fatal("secondary press did not open the menu")
	}
	if st.Anchor != anchor {
		t.Fatalf("anchor = %v, want %v", st.Anchor, anchor)
	}

	size := h.menu.menuSize
	if size.X <= 0 || size.Y <= 0 {
		t.Fatalf("menu was not measured: %v", size)
	}
	want := placement.Compute(placement.SizeOf(size), anchor, placement.Size{Width: 800, Height: 600}, false)
	if h.menu.Placement() != want {
		t.Fatalf("placement = %+v, want %+v", h.menu.Placement(), want)
	}
	if !h.menu.menuRect().In(image.Rect(0, 0, 800, 600)) {
		t.Fatalf("menu rect %v outside the viewport", h.menu.menuRect())
	}
	if h.menu.Controller().Len() != 2 {
		t.Fatalf("registered %d selectables, want 2", h.menu.Controller().Len())
	}
}

func TestContextMenuDismissAndHold(t *testing.T) {
	h := newFrameHarness(t, trigger.DefaultConfig())
	h.frame()
	h.frame(press(pointer.ButtonSecondary, f32.Pt(790, 580)), release(f32.Pt(790, 580)))
	if !h.menu.State().Visible {
		t.Fatal("menu did not open")
	}

	// a primary press outside the menu closes it and arms the hold timer.
	h.frame(press(pointer.ButtonPrimary, f32.Pt(10, 10)))
	if h.menu.State().Visible {
		t.Fatal("outside press did not close the menu")
	}
	if !h.area.Trigger().Pending() {
		t.Fatal("primary press did not arm the hold timer")
	}

	h.now = h.now.Add(trigger.DefaultHoldDuration)
	h.frame()
	st := h.menu.State()
	if !st.Visible || st.Anchor != f32.Pt(10, 10) {
		t.Fatalf("hold did not open the menu at the press: %+v", st)
	}
}

func TestContextMenuRemoveTrigger(t *testing.T) {
	h := newFrameHarness(t, trigger.DefaultConfig())
	h.frame()
	h.frame(press(pointer.ButtonPrimary, f32.Pt(10, 10)))
	h.menu.Remove(h.area)
	if len(h.menu.triggers) != 0 {
		t.Fatalf("%d triggers left after Remove", len(h.menu.triggers))
	}
	if h.area.Trigger().Pending() {
		t.Fatal("Remove left the hold timer armed")
	}
}

func TestContextMenuCloseStopsTriggers(t *testing.T) {
	h := newFrameHarness(t, trigger.DefaultConfig())
	h.frame()
	h.frame(press(pointer.ButtonPrimary, f32.Pt(10, 10)))
	h.menu.Close()

	h.now = h.now.Add(time.Hour)
	h.frame()
	if h.menu.State().Visible {
		t.Fatal("hold fired after Close")
	}
}

func touch(kind pointer.Kind, pos f32.Point) pointer.Event {
	return pointer.Event{Kind: kind, Source: pointer.Touch, Position: pos}
}

func TestContextMenuKeyboard(t *testing.T) {
	h := newFrameHarness(t, trigger.DefaultConfig())
	h.frame()
	h.frame(press(pointer.ButtonSecondary, f32.Pt(100, 100)), release(f32.Pt(100, 100)))
	h.frame()
	if !h.menu.State().Visible {
		t.Fatal("menu did not open")
	}

	h.frame(keyPress(key.NameDownArrow), keyPress(key.NameDownArrow))
	if got := h.menu.Controller().Selected(); got != 1 {
		t.Fatalf("selected = %d, want 1", got)
	}
	h.frame(keyPress(key.NameUpArrow))
	if got := h.menu.Controller().Selected(); got != 0 {
		t.Fatalf("selected = %d after up, want 0", got)
	}
	h.frame(keyPress(key.NameDownArrow))

	h.frame(keyPress(key.NameReturn))
	if len(h.clicked) != 1 || h.clicked[0] != 1 {
		t.Fatalf("clicked = %v, want [1]", h.clicked)
	}
	if h.menu.State().Visible {
		t.Fatal("return did not close the menu")
	}

	h.frame(press(pointer.ButtonSecondary, f32.Pt(100, 100)), release(f32.Pt(100, 100)))
	h.frame()
	h.frame(keyPress(key.NameEscape))
	if h.menu.State().Visible {
		t.Fatal("escape did not close the menu")
	}
	if len(h.clicked) != 1 {
		t.Fatalf("escape clicked an option: %v", h.clicked)
	}
}

func TestContextMenuHidesOnScroll(t *testing.T) {
	h := newFrameHarness(t, trigger.DefaultConfig())
	h.frame()
	h.frame(press(pointer.ButtonSecondary, f32.Pt(100, 100)), release(f32.Pt(100, 100)))
	// the scroll filter is registered once the menu is open.
	h.frame()
	if !h.menu.State().Visible {
		t.Fatal("menu did not open")
	}

	h.frame(pointer.Event{
		Kind:     pointer.Scroll,
		Source:   pointer.Mouse,
		Position: f32.Pt(10, 10),
		Scroll:   f32.Pt(0, 5),
	})
	if h.menu.State().Visible {
		t.Fatal("scroll did not close the menu")
	}
	if h.menu.handler != nil {
		t.Fatal("handler still subscribed after scroll")
	}
}

func TestContextMenuTouchHold(t *testing.T) {
	collects := 0
	cfg := trigger.DefaultConfig()
	cfg.Button = pointer.ButtonPrimary
	cfg.Collector = trigger.CollectorFunc(func() any {
		collects++
		return "row"
	})

	h := newFrameHarness(t, cfg)
	h.frame()

	pos := f32.Pt(50, 60)
	h.frame(touch(pointer.Press, pos))
	if h.menu.State().Visible {
		t.Fatal("menu opened before the hold elapsed")
	}

	h.now = h.now.Add(trigger.DefaultHoldDuration)
	h.frame()
	st := h.menu.State()
	if !st.Visible || st.Anchor != pos || st.Data != "row" {
		t.Fatalf("touch hold state = %+v", st)
	}
	if !h.area.Trigger().TouchHandled() {
		t.Fatal("touch hold not recorded as handled")
	}

	// the release must not produce the trailing click.
	h.frame(touch(pointer.Release, pos))
	if collects != 1 {
		t.Fatalf("menu activated %d times, want 1", collects)
	}
	if !h.menu.State().Visible {
		t.Fatal("release closed the menu")
	}
}
