// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	tests := map[string]Formats{".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".tif": TIFF, "bmp": BMP, "gif": GIF}
	for ext, want := range tests {
		f, err := ExtToFormat(ext)
		assert.NoError(t, err, ext)
		assert.Equal(t, want, f, ext)
	}
	_, err := ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
}

func testImage() *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, 4, 3))
	im.Set(1, 1, color.RGBA{200, 10, 10, 255})
	return im
}

func TestWriteRead(t *testing.T) {
	for _, f := range []Formats{PNG, TIFF, BMP} {
		var buf bytes.Buffer
		require.NoError(t, Write(testImage(), &buf, f), f.String())
		im, rf, err := Read(&buf)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, rf)
		c := color.RGBAModel.Convert(im.At(1, 1)).(color.RGBA)
		assert.True(t, CompareColors(color.RGBA{200, 10, 10, 255}, c, 0), f.String())
	}
	assert.Error(t, Write(testImage(), &bytes.Buffer{}, None))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Save(testImage(), fn))
	im, f, err := Open(fn)
	require.NoError(t, err)
	assert.Equal(t, PNG, f)
	assert.Equal(t, image.Rect(0, 0, 4, 3), im.Bounds())

	assert.Error(t, Save(testImage(), filepath.Join(t.TempDir(), "out.xyz")))
}

func TestCompareColors(t *testing.T) {
	assert.True(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{12, 8, 10, 255}, 2))
	assert.False(t, CompareColors(color.RGBA{10, 10, 10, 255}, color.RGBA{13, 10, 10, 255}, 2))
}
