// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaped defines the font metrics contract used by rich text
// layout: a [FontProvider] resolves a [rich.FontRef] into a [Font], which
// measures a range of text and splits it into physical [Line]s.
// Implementations live in sub-packages (shapedgt, shapedcell).
package shaped

import (
	"fmt"

	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/textpos"
)

// FontProvider resolves fonts for text styles.
type FontProvider interface {

	// Font returns the font for the given reference, or nil if it is not
	// available. Providers may cache fonts, and may return nil at any time.
	Font(ref rich.FontRef) Font
}

// FontProviderFunc is a function that implements [FontProvider].
type FontProviderFunc func(ref rich.FontRef) Font

// Font calls the function.
func (f FontProviderFunc) Font(ref rich.FontRef) Font {
	return f(ref)
}

// Font is a concrete font at a given size, able to measure text.
type Font interface {

	// Metrics returns the vertical metrics of the font.
	Metrics() Metrics

	// ProcessText measures the given range of txt and splits it into
	// physical lines, at newlines and, depending on opts, at wrap points.
	// Line ranges are absolute indexes into txt. It returns nil
	// if the text cannot be measured.
	ProcessText(txt []rune, rng textpos.Range, opts *Options) []Line
}

// Metrics are the vertical metrics of a font, in pixels.
type Metrics struct {

	// Ascender is the distance from the baseline to the top of the tallest glyphs.
	Ascender float32

	// Descender is the distance from the baseline down to the bottom
	// of the lowest glyphs, as a positive value.
	Descender float32

	// Height is the distance between consecutive baselines.
	Height float32
}

// WrapModes are the ways lines are wrapped when they exceed the layout width.
type WrapModes int32

const (
	// WrapNone only breaks lines at newlines.
	WrapNone WrapModes = iota

	// WrapWords breaks lines at word boundaries, and within a word
	// only when it does not fit on a line by itself.
	WrapWords

	// WrapChars breaks lines between any two characters.
	WrapChars
)

// WrapModesValues returns all the wrap modes, in order.
func WrapModesValues() []WrapModes {
	return []WrapModes{WrapNone, WrapWords, WrapChars}
}

func (w WrapModes) String() string {
	switch w {
	case WrapWords:
		return "words"
	case WrapChars:
		return "chars"
	}
	return "none"
}

// SetString sets the wrap mode from its string name.
func (w *WrapModes) SetString(s string) error {
	for _, m := range WrapModesValues() {
		if m.String() == s {
			*w = m
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type WrapModes", s)
}

// MarshalText implements [encoding.TextMarshaler].
func (w WrapModes) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (w *WrapModes) UnmarshalText(text []byte) error {
	return w.SetString(string(text))
}

// Options are the layout options passed to [Font.ProcessText].
type Options struct {

	// Width is the width available for each line. Lines are not wrapped
	// when it is zero or when Wrap is [WrapNone].
	Width float32

	// Wrap is the line wrapping mode.
	Wrap WrapModes

	// Indent is the position at which the first line starts, as when
	// the text continues a line started by previous text: the first line
	// only has Width - Indent available.
	Indent float32
}
