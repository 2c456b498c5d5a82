package trigger

import (
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
)

// Kind identifies which handler of a Trigger an Event is meant for.
type Kind uint8

const (
	ContextMenu Kind = iota
	Click
	MouseDown
	MouseUp
	MouseOut
	TouchStart
	TouchEnd
)

func (k Kind) String() string {
	switch k {
	case ContextMenu:
		return "ContextMenu"
	case Click:
		return "Click"
	case MouseDown:
		return "MouseDown"
	case MouseUp:
		return "MouseUp"
	case MouseOut:
		return "MouseOut"
	case TouchStart:
		return "TouchStart"
	case TouchEnd:
		return "TouchEnd"
	default:
		return "Unknown"
	}
}

// Event is the input a host feeds into a Trigger. Hosts inspect
// DefaultPrevented and PropagationStopped after a handler returns to decide
// whether to run their own default behaviour.
type Event struct {
	Kind   Kind
	Source pointer.Source
	// Button is the single button the event refers to.
	Button pointer.Buttons
	// Position of a mouse event.
	Position f32.Point
	// Touch points of a touch event, first one is used as the anchor.
	Touches   []f32.Point
	Modifiers key.Modifiers

	defaultPrevented   bool
	propagationStopped bool
}

func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// Coords extracts the anchor point of e: the pointer position for mouse
// events, the first touch point for touch events, minus offset.
func Coords(e *Event, offset f32.Point) f32.Point {
	pos := e.Position
	if e.Source == pointer.Touch && len(e.Touches) > 0 {
		pos = e.Touches[0]
	}
	return pos.Sub(offset)
}
