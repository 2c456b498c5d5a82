// Package settings loads context menu behaviour from a TOML file.
//
//	[trigger]
//	hold_millis = 800
//	button = "right"
//	offset_x = 0
//	offset_y = 0
//	disable_if_shift = true
//
//	[menu]
//	locale = "ar-EG"
//	background = "#fafafa"
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oligo/ctxmenu/menu"
	"github.com/oligo/ctxmenu/misc"
	"github.com/oligo/ctxmenu/trigger"

	"gioui.org/f32"
	"gioui.org/io/pointer"
	"github.com/BurntSushi/toml"
)

const configFile = "ctxmenu.toml"

type Trigger struct {
	Disabled bool `toml:"disabled"`
	// HoldMillis is the press-and-hold delay, negative to disable it.
	HoldMillis     int64   `toml:"hold_millis"`
	OffsetX        float32 `toml:"offset_x"`
	OffsetY        float32 `toml:"offset_y"`
	Button         string  `toml:"button"`
	DisableIfShift bool    `toml:"disable_if_shift"`
}

type Menu struct {
	// Locale decides the layout direction when RTL is unset.
	Locale string `toml:"locale"`
	RTL    *bool  `toml:"rtl"`

	// Background is a "#RRGGBB" or "#RRGGBBAA" menu color. Empty keeps the
	// theme's.
	Background string `toml:"background,omitempty"`
}

type Settings struct {
	Trigger Trigger `toml:"trigger"`
	Menu    Menu    `toml:"menu"`
}

func Default() Settings {
	return Settings{
		Trigger: Trigger{
			HoldMillis: trigger.DefaultHoldDuration.Milliseconds(),
			Button:     "right",
		},
		Menu: Menu{Locale: "en"},
	}
}

// Decode reads settings from r on top of the defaults.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Default(), fmt.Errorf("decoding settings: %w", err)
	}
	if _, err := parseButton(s.Trigger.Button); err != nil {
		return Default(), err
	}
	return s, nil
}

// Load reads the settings file at path. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("no settings at %s, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("opening settings: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func Write(w io.Writer, s Settings) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Path returns the default settings location under the user's config dir.
func Path() string {
	return filepath.Join(Dir(), configFile)
}

// Dir resolves $XDG_CONFIG_HOME, falling back to ~/.config.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "ctxmenu")
}

// TriggerConfig converts the trigger section.
func (s Settings) TriggerConfig() trigger.Config {
	cfg := trigger.DefaultConfig()
	cfg.Disabled = s.Trigger.Disabled
	cfg.HoldDuration = time.Duration(s.Trigger.HoldMillis) * time.Millisecond
	cfg.Offset = f32.Pt(s.Trigger.OffsetX, s.Trigger.OffsetY)
	cfg.DisableIfShift = s.Trigger.DisableIfShift
	if btn, err := parseButton(s.Trigger.Button); err == nil {
		cfg.Button = btn
	}
	return cfg
}

// RTL reports the layout direction: the explicit flag if set, else the
// direction of the locale's script.
func (s Settings) RTL() bool {
	if s.Menu.RTL != nil {
		return *s.Menu.RTL
	}
	return menu.IsRTLLocale(s.Menu.Locale)
}

// Background returns the configured menu color, or the zero color when
// unset.
func (s Settings) Background() color.NRGBA {
	if s.Menu.Background == "" {
		return color.NRGBA{}
	}
	return misc.HexColor(s.Menu.Background)
}

func parseButton(name string) (pointer.Buttons, error) {
	switch strings.ToLower(name) {
	case "", "right", "secondary":
		return pointer.ButtonSecondary, nil
	case "left", "primary":
		return pointer.ButtonPrimary, nil
	}
	return 0, fmt.Errorf("unknown trigger button %q", name)
}
