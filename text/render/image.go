// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws laid out rich text: to images with real fonts,
// and to terminals as styled character cells.
package render

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/richtext/base/errors"
	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/richtext"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// FontDataSource provides the font file data for font references,
// as [shapedgt.Provider] does.
type FontDataSource interface {
	FontData(ref rich.FontRef) ([]byte, bool)
}

// Image renders the text box into a new image sized to fit its text,
// with the given padding on all sides and background color.
func Image(tb *richtext.TextBox, fonts FontDataSource, pad int, bg color.Color) (*image.RGBA, error) {
	sz := tb.Size().ToPointCeil()
	img := image.NewRGBA(image.Rect(0, 0, sz.X+2*pad, sz.Y+2*pad))
	FillBackground(img, bg)
	err := DrawImage(img, tb, fonts, image.Pt(pad, pad))
	return img, err
}

// FillBackground fills the whole image with the given color.
func FillBackground(dst draw.Image, bg color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// DrawImage draws the blocks of the text box onto dst, offset by origin.
// Each block is drawn on its baseline, at the ascent of its font below the
// top of its bounds, with its shadow first. Blocks whose font data is not
// available are skipped, and the errors of fonts that fail to load are
// returned together after drawing everything else.
func DrawImage(dst draw.Image, tb *richtext.TextBox, fonts FontDataSource, origin image.Point) error {
	faces := map[rich.FontRef]font.Face{}
	defer func() {
		for _, face := range faces {
			if face != nil {
				face.Close()
			}
		}
	}()
	var errs []error
	org := math32.Vector2FromPoint(origin)
	for i := range tb.Blocks {
		blk := &tb.Blocks[i]
		face, seen := faces[blk.Style.Font]
		if !seen {
			var err error
			face, err = openFace(fonts, blk.Style.Font)
			if err != nil {
				errs = append(errs, err)
			}
			faces[blk.Style.Font] = face
		}
		if face == nil {
			continue
		}
		txt := tb.BlockText(i)
		base := org.Add(blk.Bounds.Min).Add(math32.Vec2(0, math32.FromFixed(face.Metrics().Ascent)))
		if blk.Style.HasShadow() {
			drawString(dst, face, blk.Style.ShadowColor, base.Add(blk.Style.ShadowOffset), txt)
		}
		drawString(dst, face, blk.Style.Color, base, txt)
	}
	return errors.Join(errs...)
}

func drawString(dst draw.Image, face font.Face, c color.Color, pos math32.Vector2, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  pos.ToFixed(),
	}
	d.DrawString(s)
}

// openFace returns the face for ref, or nil if there is no font data for it.
func openFace(fonts FontDataSource, ref rich.FontRef) (font.Face, error) {
	data, ok := fonts.FontData(ref)
	if !ok {
		return nil, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("render: font %v: %w", ref, err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(ref.Size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("render: font %v: %w", ref, err)
	}
	return face, nil
}
