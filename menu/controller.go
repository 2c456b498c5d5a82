package menu

import (
	"gioui.org/f32"
)

// NavKey is a keyboard action understood by a Controller.
type NavKey uint8

const (
	KeyPrev NavKey = iota
	KeyNext
	KeyConfirm
	KeyCancel
)

// Selectable is a menu item that can be picked with the keyboard.
type Selectable interface {
	Click()
}

// SelectFunc is called when keyboard navigation moves the selection.
type SelectFunc func(index int, item Selectable)

// State is what a host needs to render menu content.
type State struct {
	Data    any
	Visible bool
	Anchor  f32.Point
}

// DocumentHandler receives the window-wide events that may close an open
// menu.
type DocumentHandler interface {
	HandleOutsidePress()
	HandleScroll()
	HandleContextMenu()
	// HandleKey reports whether the host should suppress its own handling
	// of the key.
	HandleKey(k NavKey) bool
}

// EventSource delivers window-wide events to a handler until the returned
// function is called.
type EventSource interface {
	Subscribe(h DocumentHandler) (unsubscribe func())
}

// Controller holds the visibility, anchor, payload and keyboard selection of
// one menu. It subscribes to its EventSource while the menu is visible.
type Controller struct {
	source      EventSource
	unsubscribe func()
	onSelect    SelectFunc

	visible     bool
	anchor      f32.Point
	data        any
	selected    int
	selectables []Selectable
}

func NewController(source EventSource, onSelect SelectFunc) *Controller {
	return &Controller{
		source:   source,
		onSelect: onSelect,
		selected: -1,
	}
}

// Show opens the menu at anchor with the collected payload.
func (c *Controller) Show(anchor f32.Point, data any) {
	c.anchor = anchor
	c.data = data
	c.selected = -1
	c.SetVisible(true)
}

func (c *Controller) Hide() {
	c.SetVisible(false)
}

func (c *Controller) SetVisible(visible bool) {
	c.visible = visible
	if visible {
		c.subscribe()
	} else {
		c.release()
	}
}

func (c *Controller) SetAnchor(anchor f32.Point) {
	c.anchor = anchor
}

func (c *Controller) SetData(data any) {
	c.data = data
}

func (c *Controller) Visible() bool {
	return c.visible
}

func (c *Controller) Anchor() f32.Point {
	return c.anchor
}

func (c *Controller) Data() any {
	return c.data
}

func (c *Controller) State() State {
	return State{Data: c.data, Visible: c.visible, Anchor: c.anchor}
}

// Selected returns the index of the keyboard selection, or -1.
func (c *Controller) Selected() int {
	return c.selected
}

// Len returns the number of registered selectables.
func (c *Controller) Len() int {
	return len(c.selectables)
}

// Register appends a selectable item. Items are selected in registration
// order.
func (c *Controller) Register(item Selectable) {
	c.selectables = append(c.selectables, item)
}

// ResetSelectables drops all registered items and the selection.
func (c *Controller) ResetSelectables() {
	c.selectables = nil
	c.selected = -1
}

// Close tears the controller down. It is safe to call more than once.
func (c *Controller) Close() {
	c.visible = false
	c.release()
	c.ResetSelectables()
}

func (c *Controller) HandleOutsidePress() {
	c.selected = -1
	c.Hide()
}

func (c *Controller) HandleScroll() {
	c.Hide()
}

func (c *Controller) HandleContextMenu() {
	c.Hide()
}

func (c *Controller) HandleKey(k NavKey) bool {
	switch k {
	case KeyCancel:
		c.Hide()
		return true
	case KeyPrev:
		if c.selected > 0 {
			c.selected--
			c.notifySelect()
		}
		return true
	case KeyNext:
		if c.selected+1 < len(c.selectables) {
			c.selected++
			c.notifySelect()
		}
		return true
	case KeyConfirm:
		if c.selected >= 0 && c.selected < len(c.selectables) {
			c.selectables[c.selected].Click()
		}
		c.Hide()
		return false
	}
	return false
}

func (c *Controller) notifySelect() {
	if c.onSelect != nil {
		c.onSelect(c.selected, c.selectables[c.selected])
	}
}

func (c *Controller) subscribe() {
	if c.unsubscribe != nil || c.source == nil {
		return
	}
	c.unsubscribe = c.source.Subscribe(c)
}

func (c *Controller) release() {
	if c.unsubscribe == nil {
		return
	}
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	unsubscribe()
}
