package menu

import (
	"image"
	"testing"
	"time"

	"github.com/oligo/ctxmenu/theme"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/input"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/widget/material"
)

type dropdownHarness struct {
	router input.Router
	ops    op.Ops
	now    time.Time
	th     *theme.Theme
	menu   *DropdownMenu
	clicks int
}

func newDropdownHarness() *dropdownHarness {
	h := &dropdownHarness{
		now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		th:  &theme.Theme{Theme: material.NewTheme(), AlphaPalette: theme.DefaultAlphaPalette},
	}
	opt := MenuOption{
		Layout: fixedOption,
		OnClicked: func(data any) error {
			h.clicks++
			return nil
		},
	}
	h.menu = NewDropdownMenu([][]MenuOption{{opt, opt}})
	return h
}

func (h *dropdownHarness) frame(events ...event.Event) {
	h.router.Queue(events...)
	h.ops.Reset()
	gtx := layout.Context{
		Ops:         &h.ops,
		Constraints: layout.Exact(image.Pt(800, 600)),
		Source:      h.router.Source(),
		Now:         h.now,
	}
	h.menu.Layout(gtx, h.th)
	h.router.Frame(&h.ops)
	h.now = h.now.Add(time.Second)
}

func keyPress(name key.Name) key.Event {
	return key.Event{Name: name, State: key.Press}
}

func TestDropdownKeyboardConfirm(t *testing.T) {
	h := newDropdownHarness()
	h.frame()

	h.menu.Controller().Show(f32.Point{}, nil)
	h.frame()
	h.frame()
	if !h.menu.modalLayer.Visible() {
		t.Fatal("modal layer did not appear")
	}
	if h.menu.Controller().Len() != 2 {
		t.Fatalf("registered %d selectables, want 2", h.menu.Controller().Len())
	}

	h.frame(keyPress(key.NameDownArrow), keyPress(key.NameDownArrow))
	if got := h.menu.Controller().Selected(); got != 1 {
		t.Fatalf("selected = %d, want 1", got)
	}

	h.frame(keyPress(key.NameReturn))
	if h.clicks != 1 {
		t.Fatalf("clicks = %d, want 1", h.clicks)
	}
	if h.menu.Controller().Visible() {
		t.Fatal("confirm did not close the dropdown")
	}
	if h.menu.handler != nil {
		t.Fatal("handler still subscribed after close")
	}
}

func TestDropdownEscape(t *testing.T) {
	h := newDropdownHarness()
	h.frame()
	h.menu.Controller().Show(f32.Point{}, nil)
	h.frame()
	h.frame()

	h.frame(keyPress(key.NameEscape))
	if h.menu.Controller().Visible() {
		t.Fatal("escape did not close the dropdown")
	}
	if h.clicks != 0 {
		t.Fatalf("escape clicked %d options", h.clicks)
	}
}
