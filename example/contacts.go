package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"slices"
	"strings"

	"github.com/oligo/ctxmenu/menu"
	"github.com/oligo/ctxmenu/misc"
	"github.com/oligo/ctxmenu/settings"
	"github.com/oligo/ctxmenu/theme"
	"github.com/oligo/ctxmenu/trigger"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/o1egl/govatar"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

var (
	pinIcon, _     = widget.NewIcon(icons.ActionBookmark)
	refreshIcon, _ = widget.NewIcon(icons.NavigationRefresh)
	deleteIcon, _  = widget.NewIcon(icons.ActionDelete)
	sortIcon, _    = widget.NewIcon(icons.ContentSort)
)

var errNoContact = errors.New("menu opened without a contact")

type contact struct {
	name   string
	gender govatar.Gender
	avatar *avatar
	pinned bool
	area   *menu.TriggerArea
}

// ContactsView lists contacts. Each row opens a shared context menu by
// right click, long press or touch hold.
type ContactsView struct {
	settings settings.Settings
	contacts []*contact
	list     widget.List
	ctxMenu  *menu.ContextMenu
	sortMenu *menu.DropdownMenu
	sortBtn  widget.Clickable
	status   string
}

func NewContactsView(s settings.Settings) *ContactsView {
	v := &ContactsView{
		settings: s,
		list:     widget.List{List: layout.List{Axis: layout.Vertical}},
	}
	v.ctxMenu = menu.NewContextMenu(v.rowOptions())
	v.ctxMenu.RTL = s.RTL()
	v.ctxMenu.Background = s.Background()
	v.sortMenu = menu.NewDropdownMenu(v.sortOptions())

	names := []string{"Ada", "Brian", "Chidi", "Dalia", "Emeka", "Farah", "Goran", "Hana", "Ivo", "Jun"}
	for i, name := range names {
		gender := govatar.MALE
		if i%2 == 1 {
			gender = govatar.FEMALE
		}
		v.addContact(name, gender)
	}
	return v
}

func (v *ContactsView) addContact(name string, gender govatar.Gender) {
	c := &contact{
		name:   name,
		gender: gender,
		avatar: newAvatar(name, gender),
	}
	cfg := v.settings.TriggerConfig()
	cfg.Collector = trigger.CollectorFunc(func() any { return c })
	c.area = v.ctxMenu.Trigger(cfg)
	v.contacts = append(v.contacts, c)
}

func (v *ContactsView) removeContact(c *contact) {
	v.ctxMenu.Remove(c.area)
	v.contacts = slices.DeleteFunc(v.contacts, func(o *contact) bool { return o == c })
}

func (v *ContactsView) rowOptions() [][]menu.MenuOption {
	withContact := func(fn func(c *contact) error) func(data any) error {
		return func(data any) error {
			c, ok := data.(*contact)
			if !ok {
				return errNoContact
			}
			return fn(c)
		}
	}

	return [][]menu.MenuOption{
		{
			{
				Layout: iconOption(pinIcon, "Pin / Unpin"),
				OnClicked: withContact(func(c *contact) error {
					c.pinned = !c.pinned
					v.status = fmt.Sprintf("%s pinned: %v", c.name, c.pinned)
					return nil
				}),
			},
			{
				Layout: iconOption(refreshIcon, "New avatar"),
				OnClicked: withContact(func(c *contact) error {
					if err := c.avatar.regenerate(c.gender); err != nil {
						return fmt.Errorf("regenerate avatar of %s: %w", c.name, err)
					}
					v.status = "new avatar for " + c.name
					return nil
				}),
			},
		},
		{
			{
				Layout: iconOption(deleteIcon, "Remove"),
				OnClicked: withContact(func(c *contact) error {
					v.removeContact(c)
					v.status = c.name + " removed"
					return nil
				}),
			},
		},
	}
}

func (v *ContactsView) sortOptions() [][]menu.MenuOption {
	return [][]menu.MenuOption{
		{
			{
				Layout: textOption("By name"),
				OnClicked: func(_ any) error {
					slices.SortStableFunc(v.contacts, func(a, b *contact) int {
						return strings.Compare(a.name, b.name)
					})
					return nil
				},
			},
			{
				Layout: textOption("Pinned first"),
				OnClicked: func(_ any) error {
					slices.SortStableFunc(v.contacts, func(a, b *contact) int {
						switch {
						case a.pinned == b.pinned:
							return 0
						case a.pinned:
							return -1
						}
						return 1
					})
					return nil
				},
			},
		},
	}
}

func iconOption(icon *widget.Icon, label string) func(gtx C, th *theme.Theme) D {
	return func(gtx C, th *theme.Theme) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(18))
				return icon.Layout(gtx, th.ContrastBg)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(material.Label(th.Theme, th.TextSize, label).Layout),
		)
	}
}

func textOption(label string) func(gtx C, th *theme.Theme) D {
	return func(gtx C, th *theme.Theme) D {
		return material.Label(th.Theme, th.TextSize, label).Layout(gtx)
	}
}

// Close stops every pending hold gesture.
func (v *ContactsView) Close() {
	v.ctxMenu.Close()
	log.Printf("closed with %d contacts", len(v.contacts))
}

func (v *ContactsView) Layout(gtx C, th *theme.Theme) D {
	if v.sortBtn.Clicked(gtx) {
		v.sortMenu.ToggleVisibility(gtx)
	}

	return v.ctxMenu.Layout(gtx, th, func(gtx C) D {
		gtx.Constraints.Min = gtx.Constraints.Max
		paint.FillShape(gtx.Ops, th.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return v.layoutHeader(gtx, th)
			}),
			layout.Rigid(func(gtx C) D {
				return misc.Divider(layout.Horizontal, unit.Dp(1)).Layout(gtx, th)
			}),
			layout.Flexed(1, func(gtx C) D {
				return material.List(th.Theme, &v.list).Layout(gtx, len(v.contacts), func(gtx C, i int) D {
					c := v.contacts[i]
					return c.area.Layout(gtx, func(gtx C) D {
						return v.layoutRow(gtx, th, c)
					})
				})
			}),
		)
	})
}

func (v *ContactsView) layoutHeader(gtx C, th *theme.Theme) D {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				dims := material.IconButton(th.Theme, &v.sortBtn, sortIcon, "Sort").Layout(gtx)
				off := op.Offset(image.Pt(0, dims.Size.Y)).Push(gtx.Ops)
				v.sortMenu.Layout(gtx, th)
				off.Pop()
				return dims
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				lb := material.Label(th.Theme, th.TextSize, v.status)
				lb.Color = misc.WithAlpha(th.Fg, 0xa0)
				return lb.Layout(gtx)
			}),
		)
	})
}

func (v *ContactsView) layoutRow(gtx C, th *theme.Theme, c *contact) D {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Inset{
		Left:   unit.Dp(12),
		Right:  unit.Dp(12),
		Top:    unit.Dp(6),
		Bottom: unit.Dp(6),
	}.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return c.avatar.Layout(gtx, gtx.Dp(unit.Dp(40)))
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Flexed(1, material.Body1(th.Theme, c.name).Layout),
			layout.Rigid(func(gtx C) D {
				if !c.pinned {
					return D{}
				}
				gtx.Constraints.Min.X = gtx.Dp(unit.Dp(18))
				return pinIcon.Layout(gtx, th.ContrastBg)
			}),
		)
	})
}
