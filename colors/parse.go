// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides color parsing and conversion for rich text styles.
package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// FromString returns a color value from the given string, which
// can be a hex value (#rgb, #rgba, #rrggbb, #rrggbbaa, with the # optional),
// a standard CSS color name, or "transparent". Names take precedence over
// bare hex values.
func FromString(str string) (color.RGBA, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return color.RGBA{}, fmt.Errorf("colors.FromString: empty color")
	}
	if str[0] == '#' {
		return FromHex(str)
	}
	low := strings.ToLower(str)
	if low == "transparent" {
		return color.RGBA{}, nil
	}
	nc, ok := colornames.Map[low]
	if ok {
		return nc, nil
	}
	if isHex(str) {
		return FromHex(str)
	}
	return color.RGBA{}, fmt.Errorf("colors.FromString: name not found: %q", str)
}

// isHex returns whether str is a hex color without the leading #.
func isHex(str string) bool {
	switch len(str) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range str {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// FromHex parses the given non-alpha-premultiplied hex color string
// and returns the resulting alpha-premultiplied color.
// The leading # is optional.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a uint64
	a = 255
	var err error
	switch len(hex) {
	case 3, 4:
		var v [4]uint64
		for i := range len(hex) {
			v[i], err = strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid hex color %q: %w", hex, err)
			}
			v[i] |= v[i] << 4
		}
		r, g, b = v[0], v[1], v[2]
		if len(hex) == 4 {
			a = v[3]
		}
	case 6, 8:
		var v uint64
		v, err = strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromHex: invalid hex color %q: %w", hex, err)
		}
		if len(hex) == 8 {
			a = v & 0xFF
			v >>= 8
		}
		r, g, b = v>>16&0xFF, v>>8&0xFF, v&0xFF
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	return color.RGBAModel.Convert(color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}).(color.RGBA), nil
}

// AsHex returns the non-alpha-premultiplied hex representation
// of the given color: #rrggbb, or #rrggbbaa when not fully opaque.
func AsHex(c color.RGBA) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// WithAlpha returns the given color with its non-premultiplied alpha
// channel replaced by the given value, keeping its hue.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return color.RGBAModel.Convert(n).(color.RGBA)
}
