package main

import (
	"flag"
	"log"
	"os"

	"github.com/oligo/ctxmenu/settings"
	"github.com/oligo/ctxmenu/theme"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

type UI struct {
	window   *app.Window
	theme    *theme.Theme
	contacts *ContactsView
}

func (ui *UI) Loop() error {
	var ops op.Ops
	for {
		switch e := ui.window.Event().(type) {
		case app.DestroyEvent:
			ui.contacts.Close()
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.contacts.Layout(gtx, ui.theme)
			e.Frame(gtx.Ops)
		}
	}
}

func main() {
	configPath := flag.String("config", settings.Path(), "path of the settings file")
	dumpConfig := flag.Bool("dump-config", false, "print the effective settings and exit")
	flag.Parse()

	s, err := settings.Load(*configPath)
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}
	if *dumpConfig {
		if err := settings.Write(os.Stdout, s); err != nil {
			log.Fatal(err)
		}
		return
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Contacts"), app.Size(unit.Dp(480), unit.Dp(640)))
		th := theme.NewTheme(".", nil, false)
		th.TextSize = unit.Sp(14)

		ui := &UI{theme: th, window: w, contacts: NewContactsView(s)}
		if err := ui.Loop(); err != nil {
			log.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
}
