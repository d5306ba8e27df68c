// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bufio"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/richtext"
	"github.com/muesli/termenv"
)

// WriteTerminal writes the blocks of the text box as terminal text,
// styled for the given color profile. The layout must use cell metrics,
// as from [shapedcell.Provider]: block positions are taken as cell
// columns and rows. Default white text is written without a color.
func WriteTerminal(w io.Writer, tb *richtext.TextBox, profile termenv.Profile) error {
	bw := bufio.NewWriter(w)
	row, col := 0, 0
	for i := range tb.Blocks {
		blk := &tb.Blocks[i]
		pt := blk.Bounds.Min.ToPointFloor()
		for ; row < pt.Y; row++ {
			bw.WriteString("\n")
			col = 0
		}
		if pt.X > col {
			bw.WriteString(strings.Repeat(" ", pt.X-col))
			col = pt.X
		}
		txt := tb.BlockText(i)
		if txt == "" {
			continue
		}
		bw.WriteString(styled(profile, blk.Style, txt))
		col += int(math32.Round(blk.Bounds.Size().X))
	}
	if len(tb.Blocks) > 0 {
		bw.WriteString("\n")
	}
	return bw.Flush()
}

var white = color.RGBA{255, 255, 255, 255}

func styled(profile termenv.Profile, s rich.Style, txt string) string {
	st := profile.String(txt)
	if s.Color != white {
		st = st.Foreground(profile.FromColor(s.Color))
	}
	if s.Font.Weight == rich.Bold {
		st = st.Bold()
	}
	if s.Font.Slant == rich.Italic {
		st = st.Italic()
	}
	return st.String()
}
