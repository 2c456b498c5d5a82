package trigger

import (
	"time"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

// DefaultHoldDuration is how long a primary press or a touch must be held
// before the menu shows.
const DefaultHoldDuration = time.Second

// Collector supplies the payload handed to the menu when a trigger fires.
type Collector interface {
	Collect() any
}

// CollectorFunc adapts a plain function to Collector.
type CollectorFunc func() any

func (f CollectorFunc) Collect() any {
	return f()
}

// NopCollector collects nothing.
type NopCollector struct{}

func (NopCollector) Collect() any {
	return nil
}

// Config controls a single Trigger. Start from DefaultConfig and override
// the fields you need.
type Config struct {
	// Disabled turns every handler into a no-op.
	Disabled bool
	// HoldDuration is the press-and-hold delay. Negative disables
	// press-and-hold for both mouse and touch. Zero is kept as is: every
	// primary press opens the menu on the next scheduler tick. Use
	// DefaultConfig for DefaultHoldDuration.
	HoldDuration time.Duration
	// Offset is subtracted from the event position to get the anchor.
	Offset f32.Point
	// Button is the mouse button that shows the menu on click.
	Button pointer.Buttons
	// DisableIfShift ignores activations while shift is held.
	DisableIfShift bool
	Collector      Collector
}

func DefaultConfig() Config {
	return Config{
		HoldDuration: DefaultHoldDuration,
		Button:       pointer.ButtonSecondary,
		Collector:    NopCollector{},
	}
}

// withDefaults fills fields whose zero value is not usable. HoldDuration
// is left alone since zero is a valid delay.
func (c Config) withDefaults() Config {
	if c.Button == 0 {
		c.Button = pointer.ButtonSecondary
	}
	if c.Collector == nil {
		c.Collector = NopCollector{}
	}
	return c
}
