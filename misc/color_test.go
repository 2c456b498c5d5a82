package misc

import (
	"image/color"
	"testing"
)

func TestHex2RGBA(t *testing.T) {
	cases := []struct {
		hex  string
		want color.NRGBA
	}{
		{hex: "#4B0082", want: color.NRGBA{R: 75, G: 0, B: 130, A: 255}},
		{hex: "4B008280", want: color.NRGBA{R: 75, G: 0, B: 130, A: 128}},
		{hex: "#fff", want: color.NRGBA{A: 255}},
		{hex: "#zzzzzz", want: color.NRGBA{A: 255}},
	}

	for _, tc := range cases {
		t.Run(tc.hex, func(t *testing.T) {
			c := HexColor(tc.hex)
			if c != tc.want {
				t.Logf("actual: %v, wanted: %v", c, tc.want)
				t.Fail()
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(color.NRGBA{R: 1, G: 2, B: 3, A: 4}, 48)
	if c != (color.NRGBA{R: 1, G: 2, B: 3, A: 48}) {
		t.Fail()
	}
}
