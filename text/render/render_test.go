// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"cogentcore.org/richtext/base/iox/imagex"
	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/richtext"
	"cogentcore.org/richtext/text/shaped"
	"cogentcore.org/richtext/text/shaped/shapedcell"
	"cogentcore.org/richtext/text/shaped/shapedgt"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTerminalPlain(t *testing.T) {
	tests := []struct {
		src  string
		opts shaped.Options
		want string
	}{
		{"ab<b>cd</b>", shaped.Options{}, "abcd\n"},
		{"ab\ncd<br>ef", shaped.Options{}, "ab\ncd\nef\n"},
		{"<br>x", shaped.Options{}, "\nx\n"},
		{"one two three", shaped.Options{Width: 8, Wrap: shaped.WrapWords}, "one two \nthree\n"},
		{"", shaped.Options{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tb := richtext.NewTextBox(tt.src, shapedcell.NewProvider(false))
			tb.Options = tt.opts
			tb.Layout()
			var buf bytes.Buffer
			require.NoError(t, WriteTerminal(&buf, tb, termenv.Ascii))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteTerminalStyled(t *testing.T) {
	tb := richtext.NewTextBox("a<b>b</b><color=red>c</color>", shapedcell.NewProvider(false))
	tb.Layout()
	var buf bytes.Buffer
	require.NoError(t, WriteTerminal(&buf, tb, termenv.TrueColor))
	out := buf.String()
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "\x1b[1mb")
	assert.Contains(t, out, "38;2;255;0;0")
}

type noFonts struct{}

func (noFonts) FontData(ref rich.FontRef) ([]byte, bool) { return nil, false }

type badFonts struct{}

func (badFonts) FontData(ref rich.FontRef) ([]byte, bool) { return []byte("nope"), true }

func countColor(img *image.RGBA, r image.Rectangle, pred func(c color.RGBA) bool) int {
	n := 0
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if pred(img.RGBAAt(x, y)) {
				n++
			}
		}
	}
	return n
}

func TestImage(t *testing.T) {
	fonts := shapedgt.NewProvider()
	tb := richtext.NewTextBox("<color=red>Hello</color> <b>world</b>", fonts)
	tb.Layout()
	require.Len(t, tb.Blocks, 3)

	black := color.RGBA{0, 0, 0, 255}
	img, err := Image(tb, fonts, 4, black)
	require.NoError(t, err)
	sz := tb.Size().ToPointCeil()
	assert.Equal(t, image.Rect(0, 0, sz.X+8, sz.Y+8), img.Bounds())
	assert.True(t, imagex.CompareColors(black, img.RGBAAt(0, 0), 0))

	red := tb.Blocks[0].Bounds.ToRect().Add(image.Pt(4, 4))
	assert.Greater(t, countColor(img, red, func(c color.RGBA) bool { return c.R > 128 && c.G < 64 }), 0)
	white := tb.Blocks[2].Bounds.ToRect().Add(image.Pt(4, 4))
	assert.Greater(t, countColor(img, white, func(c color.RGBA) bool { return c.R > 128 && c.G > 128 }), 0)
	assert.Zero(t, countColor(img, white, func(c color.RGBA) bool { return c.R > 128 && c.G < 64 }))
}

func TestImageShadow(t *testing.T) {
	fonts := shapedgt.NewProvider()
	tb := richtext.NewTextBox("Shadow", fonts)
	tb.Style.ShadowColor = color.RGBA{0, 0, 255, 255}
	tb.Style.ShadowOffset.Set(2, 2)
	tb.Layout()
	img, err := Image(tb, fonts, 4, color.Black)
	require.NoError(t, err)
	assert.Greater(t, countColor(img, img.Bounds(), func(c color.RGBA) bool { return c.B > 128 && c.R < 64 }), 0)
}

func TestImageMissingFonts(t *testing.T) {
	tb := richtext.NewTextBox("text", shapedcell.NewProvider(false))
	tb.Layout()
	img, err := Image(tb, noFonts{}, 0, color.Black)
	require.NoError(t, err)
	assert.Zero(t, countColor(img, img.Bounds(), func(c color.RGBA) bool { return c.R > 0 }))

	_, err = Image(tb, badFonts{}, 0, color.Black)
	assert.Error(t, err)
}
