// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"fmt"

	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/textpos"
)

// Line is one physical line of measured text, as produced by
// [Font.ProcessText]. Newline characters are not part of any line range.
type Line struct {

	// Range is the range of runes in the source text on this line.
	Range textpos.Range

	// Size is the size of the line: its advance width and line height.
	// Trailing whitespace of a wrapped line is not included in the width.
	Size math32.Vector2

	// Offset is the position of the line relative to the layout position
	// where it starts (its upper left corner).
	Offset math32.Vector2

	// Ascender is the ascender of the font used for the line.
	Ascender float32
}

func (ln Line) String() string {
	return fmt.Sprintf("%v size: %v offset: %v", ln.Range, ln.Size, ln.Offset)
}
