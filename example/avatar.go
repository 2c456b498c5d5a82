package main

import (
	"image"
	"log"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/o1egl/govatar"
	"golang.org/x/image/draw"
)

// avatar is a generated face, scaled on demand and cached for the last size.
type avatar struct {
	src   image.Image
	cache *paint.ImageOp
}

func newAvatar(name string, gender govatar.Gender) *avatar {
	img, err := govatar.GenerateForUsername(gender, name)
	if err != nil {
		log.Printf("generate avatar for %s: %v", name, err)
		img = image.NewGray(image.Rect(0, 0, 1, 1))
	}
	return &avatar{src: img}
}

// regenerate replaces the face with a random one.
func (a *avatar) regenerate(gender govatar.Gender) error {
	img, err := govatar.Generate(gender)
	if err != nil {
		return err
	}
	a.src = img
	a.cache = nil
	return nil
}

func (a *avatar) imageOp(size image.Point) paint.ImageOp {
	if a.cache != nil && a.cache.Size() == size {
		return *a.cache
	}

	dest := image.NewRGBA(image.Rectangle{Max: size})
	draw.CatmullRom.Scale(dest, dest.Bounds(), a.src, a.src.Bounds(), draw.Src, nil)
	op := paint.NewImageOp(dest)
	a.cache = &op
	return op
}

func (a *avatar) Layout(gtx C, size int) D {
	sz := image.Pt(size, size)
	defer clip.Ellipse{Max: sz}.Push(gtx.Ops).Pop()
	img := a.imageOp(sz)
	img.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
	return layout.Dimensions{Size: sz}
}
