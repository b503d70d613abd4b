package render

import (
	"image/color"
	"strconv"
)

// DefaultColorList is the per-series color rotation applied to series
// with no explicit color.
var DefaultColorList = []string{"blue", "green", "red", "purple", "brown", "yellow", "aqua", "grey", "magenta", "pink", "gold", "rose"}

var colors = map[string]color.RGBA{
	"black":     {0x00, 0x00, 0x00, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"blue":      {0x64, 0x64, 0xff, 0xff},
	"green":     {0x00, 0xc8, 0x00, 0xff},
	"red":       {0xc8, 0x00, 0x32, 0xff},
	"purple":    {0xc8, 0x64, 0xff, 0xff},
	"brown":     {0x96, 0x64, 0x32, 0xff},
	"yellow":    {0xc8, 0xc8, 0x00, 0xff},
	"aqua":      {0x00, 0x96, 0x96, 0xff},
	"grey":      {0xaf, 0xaf, 0xaf, 0xff},
	"gray":      {0xaf, 0xaf, 0xaf, 0xff},
	"darkgrey":  {0x6f, 0x6f, 0x6f, 0xff},
	"darkgray":  {0x6f, 0x6f, 0x6f, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
	"pink":      {0xff, 0x64, 0x64, 0xff},
	"gold":      {0xc8, 0xc8, 0x00, 0xff},
	"rose":      {0xc8, 0x96, 0xc8, 0xff},
	"orange":    {0xff, 0xa5, 0x00, 0xff},
	"darkblue":  {0x00, 0x21, 0x73, 0xff},
	"darkgreen": {0x00, 0x64, 0x00, 0xff},
	"darkred":   {0x80, 0x00, 0x00, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"silver":    {0xc0, 0xc0, 0xc0, 0xff},
}

// ParseColor resolves a color name or hex string to RGBA. Unknown
// names come back black.
func ParseColor(clr string) color.RGBA {
	return string2RGBA(clr)
}

func string2RGBA(clr string) color.RGBA {
	if c, ok := colors[clr]; ok {
		return c
	}
	return hexToRGBA(clr)
}

// hexToRGBA converts a hex string to an RGBA color. Three-digit
// shorthand and an eight-digit alpha form are accepted.
func hexToRGBA(h string) color.RGBA {
	var r, g, b uint8
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}

	if len(h) == 3 {
		h = h[:1] + h[:1] + h[1:2] + h[1:2] + h[2:] + h[2:]
	}

	alpha := byte(255)

	if len(h) == 6 {
		if rgb, err := strconv.ParseUint(h, 16, 32); err == nil {
			r = uint8(rgb >> 16)
			g = uint8(rgb >> 8)
			b = uint8(rgb)
		}
	}

	if len(h) == 8 {
		if rgb, err := strconv.ParseUint(h, 16, 32); err == nil {
			r = uint8(rgb >> 24)
			g = uint8(rgb >> 16)
			b = uint8(rgb >> 8)
			alpha = uint8(rgb)
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: alpha}
}
