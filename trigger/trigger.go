// Package trigger turns raw pointer and touch input into "show the context
// menu here" requests. It distinguishes a click with the configured button,
// the host's context-menu gesture, and press-and-hold on mouse and touch.
//
// The package does not depend on a window: hosts translate their events into
// Event values and call the matching Trigger handler.
package trigger

import (
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
)

// ShowFunc receives the anchor point and the collected payload.
type ShowFunc func(anchor f32.Point, data any)

// Builder creates triggers that all report to the same ShowFunc.
type Builder struct {
	OnShow    ShowFunc
	Scheduler Scheduler
}

// NewBuilder returns a Builder. A nil scheduler is replaced by a
// FrameScheduler, reachable through the Scheduler field.
func NewBuilder(onShow ShowFunc, sched Scheduler) *Builder {
	if sched == nil {
		sched = NewFrameScheduler()
	}
	return &Builder{OnShow: onShow, Scheduler: sched}
}

// Trigger creates the handlers for one triggering element.
func (b *Builder) Trigger(cfg Config) *Trigger {
	return &Trigger{
		config: cfg.withDefaults(),
		onShow: b.OnShow,
		sched:  b.Scheduler,
	}
}

// Trigger holds the gesture state of one triggering element. It is not
// safe for concurrent use; the scheduler is expected to run callbacks on the
// goroutine that calls the handlers.
type Trigger struct {
	config Config
	onShow ShowFunc
	sched  Scheduler

	touchHandled bool
	mouseTimer   Timer
	touchTimer   Timer
}

// Config returns the effective configuration.
func (t *Trigger) Config() Config {
	return t.config
}

// TouchHandled reports whether the last touch hold opened the menu.
func (t *Trigger) TouchHandled() bool {
	return t.touchHandled
}

// Handle dispatches e to the handler named by e.Kind.
func (t *Trigger) Handle(e *Event) {
	switch e.Kind {
	case ContextMenu:
		t.ContextMenu(e)
	case Click:
		t.Click(e)
	case MouseDown:
		t.MouseDown(e)
	case MouseUp:
		t.MouseUp(e)
	case MouseOut:
		t.MouseOut(e)
	case TouchStart:
		t.TouchStart(e)
	case TouchEnd:
		t.TouchEnd(e)
	}
}

func (t *Trigger) ContextMenu(e *Event) {
	if e.Button == t.config.Button {
		t.activate(e)
	}
}

func (t *Trigger) Click(e *Event) {
	if e.Button == t.config.Button {
		t.activate(e)
	}
}

// MouseDown arms the hold timer for a primary press. A pending hold timer
// from an earlier press is stopped first.
func (t *Trigger) MouseDown(e *Event) {
	if t.config.HoldDuration < 0 || e.Button != pointer.ButtonPrimary {
		return
	}
	captured := *e
	t.stopMouseTimer()
	t.mouseTimer = t.sched.AfterFunc(t.config.HoldDuration, func() {
		t.mouseTimer = nil
		t.activate(&captured)
	})
}

func (t *Trigger) MouseUp(e *Event) {
	if e.Button == pointer.ButtonPrimary {
		t.stopMouseTimer()
	}
}

func (t *Trigger) MouseOut(e *Event) {
	if e.Button == pointer.ButtonPrimary {
		t.stopMouseTimer()
	}
}

func (t *Trigger) TouchStart(e *Event) {
	t.touchHandled = false
	if t.config.HoldDuration < 0 {
		return
	}
	e.StopPropagation()
	captured := *e
	t.stopTouchTimer()
	t.touchTimer = t.sched.AfterFunc(t.config.HoldDuration, func() {
		t.touchTimer = nil
		t.activate(&captured)
		t.touchHandled = true
	})
}

// TouchEnd cancels a pending touch hold. After a hold opened the menu, the
// default action is prevented so the trailing click does not fire again.
func (t *Trigger) TouchEnd(e *Event) {
	if t.touchHandled {
		e.PreventDefault()
	}
	t.stopTouchTimer()
}

// Stop cancels any pending hold timer. Call it when the triggering element
// goes away.
func (t *Trigger) Stop() {
	t.stopMouseTimer()
	t.stopTouchTimer()
}

// Pending reports whether a hold timer is armed.
func (t *Trigger) Pending() bool {
	return t.mouseTimer != nil || t.touchTimer != nil
}

func (t *Trigger) activate(e *Event) {
	if t.config.Disabled {
		return
	}
	if t.config.DisableIfShift && e.Modifiers.Contain(key.ModShift) {
		return
	}

	e.PreventDefault()
	e.StopPropagation()

	if t.onShow != nil {
		t.onShow(Coords(e, t.config.Offset), t.config.Collector.Collect())
	}
}

func (t *Trigger) stopMouseTimer() {
	if t.mouseTimer != nil {
		t.mouseTimer.Stop()
		t.mouseTimer = nil
	}
}

func (t *Trigger) stopTouchTimer() {
	if t.touchTimer != nil {
		t.touchTimer.Stop()
		t.touchTimer = nil
	}
}
