// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rich

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/richtext/colors"
	"cogentcore.org/richtext/math32"
)

// Style contains the styling properties applied to a span of rich text.
// It is a plain value: copies never share state, so a [Stack] of styles
// restores exactly the prior values when popped.
type Style struct {

	// Font is the font used to render and measure the text.
	Font FontRef

	// Color is the fill color of the glyphs.
	Color color.RGBA

	// ShadowColor is the color of the drop shadow; no shadow is drawn
	// when it is fully transparent.
	ShadowColor color.RGBA

	// ShadowOffset is the offset of the drop shadow from the glyphs.
	ShadowOffset math32.Vector2
}

// FontRef identifies a concrete font: a family at a given size and variant.
// It is comparable and used as a key by font providers.
type FontRef struct {

	// Family is the font family name, such as "sans", "serif" or "mono".
	Family string

	// Size is the font size in pixels (dots).
	Size float32

	// Weight is the font weight.
	Weight Weights

	// Slant is the font slant.
	Slant Slants
}

// Weights are the font weights supported by rich text tags.
type Weights int32

const (
	// Normal is the regular font weight.
	Normal Weights = iota

	// Bold is the bold font weight.
	Bold
)

func (w Weights) String() string {
	if w == Bold {
		return "bold"
	}
	return "normal"
}

// Slants are the font slants supported by rich text tags.
type Slants int32

const (
	// SlantNormal is the upright font slant.
	SlantNormal Slants = iota

	// Italic is the italic font slant.
	Italic
)

func (s Slants) String() string {
	if s == Italic {
		return "italic"
	}
	return "normal"
}

// DefaultFamily is the font family of [NewStyle].
var DefaultFamily = "sans"

// DefaultSize is the font size of [NewStyle].
var DefaultSize float32 = 16

// NewStyle returns a new [Style] with default values:
// the default family and size, and opaque white text.
func NewStyle() *Style {
	s := &Style{}
	s.Defaults()
	return s
}

// Defaults sets default values for the style.
func (s *Style) Defaults() {
	s.Font = FontRef{Family: DefaultFamily, Size: DefaultSize}
	s.Color = color.RGBA{255, 255, 255, 255}
	s.ShadowColor = color.RGBA{}
	s.ShadowOffset = math32.Vector2{}
}

// HasShadow returns whether the style draws a drop shadow.
func (s *Style) HasShadow() bool {
	return s.ShadowColor.A > 0
}

// String returns a compact description of the style,
// listing the font and then any non-default colors.
func (s Style) String() string {
	var sb strings.Builder
	sb.WriteString(s.Font.String())
	if s.Color != (color.RGBA{255, 255, 255, 255}) {
		sb.WriteString(" " + colors.AsHex(s.Color))
	}
	if s.HasShadow() {
		sb.WriteString(fmt.Sprintf(" shadow %s %v", colors.AsHex(s.ShadowColor), s.ShadowOffset))
	}
	return sb.String()
}

func (f FontRef) String() string {
	str := fmt.Sprintf("%s %gpx", f.Family, f.Size)
	if f.Weight != Normal {
		str += " " + f.Weight.String()
	}
	if f.Slant != SlantNormal {
		str += " " + f.Slant.String()
	}
	return str
}
