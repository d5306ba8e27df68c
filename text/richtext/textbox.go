// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package richtext lays out text marked up with a small set of
// HTML-like tags into positioned, styled [TextBlock]s.
//
// Tags change the style of the text that follows them until the
// matching closing tag:
//
//	Plain <b>bold</b> <color=#f80>orange</color> <size=150%>big</size><br>
//
// Layout runs in a single synchronous pass: text between tags is
// measured and wrapped by a [shaped.FontProvider], and each completed
// line is aligned to a common baseline.
package richtext

import (
	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/markup"
	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/shaped"
	"cogentcore.org/richtext/text/textpos"
)

// TextBlock is a contiguous run of text sharing one style,
// positioned as a rectangle for rendering.
type TextBlock struct {

	// Style is the style of the text.
	Style rich.Style

	// Range is the range of runes in [TextBox.Text] covered by the block.
	Range textpos.Range

	// Bounds is the position and size of the block.
	Bounds math32.Box2
}

// TextBox holds marked up text and the text blocks of its layout.
// A TextBox must not be laid out from multiple goroutines at once.
type TextBox struct {

	// Text is the source text, including tags.
	Text []rune

	// Style is the default style, at the base of the style stack.
	Style rich.Style

	// Styles are named styles for the style tag, as in <style=title>.
	Styles map[string]rich.Style

	// Fonts resolves the fonts used to measure text. Text is skipped
	// when its font cannot be resolved.
	Fonts shaped.FontProvider

	// Options are the line wrapping options.
	Options shaped.Options

	// PostProcessBlock, if set, is called for each text block before it
	// is added, and may modify the block style and bounds.
	PostProcessBlock func(ctx *ParsingContext, blk *TextBlock)

	// ParseOverride, if set, replaces the tag parsing and layout entirely:
	// it is given the text and the cleared block list to fill.
	ParseOverride func(text []rune, blocks *[]TextBlock)

	// Blocks are the text blocks from the last [TextBox.Layout].
	Blocks []TextBlock

	// Caret is the layout position at the end of the text after the last
	// [TextBox.Layout], before its final line was closed.
	Caret math32.Vector2

	parser markup.Parser
	stack  rich.Stack
}

// NewTextBox returns a new text box with the given text, a default
// style, and fonts from the given provider.
func NewTextBox(text string, fonts shaped.FontProvider) *TextBox {
	tb := &TextBox{Style: *rich.NewStyle(), Fonts: fonts}
	tb.SetText(text)
	return tb
}

// SetText sets the source text. Call [TextBox.Layout] to update the blocks.
func (tb *TextBox) SetText(text string) *TextBox {
	tb.Text = []rune(text)
	return tb
}

// font returns the font for the given reference, or nil.
func (tb *TextBox) font(ref rich.FontRef) shaped.Font {
	if tb.Fonts == nil {
		return nil
	}
	return tb.Fonts.Font(ref)
}

// BlockText returns the text of the block at the given index.
func (tb *TextBox) BlockText(i int) string {
	rng := tb.Blocks[i].Range
	return string(tb.Text[rng.Start:rng.End])
}

// Size returns the size of the laid out text: the bottom right corner
// of the union of all block bounds, measured from the origin.
func (tb *TextBox) Size() math32.Vector2 {
	var sz math32.Vector2
	for _, blk := range tb.Blocks {
		sz.SetMax(blk.Bounds.Max)
	}
	return sz
}

// BlockAt returns the index of the first block containing the given
// point, or -1 if there is none.
func (tb *TextBox) BlockAt(pt math32.Vector2) int {
	for i, blk := range tb.Blocks {
		if blk.Bounds.ContainsPoint(pt) {
			return i
		}
	}
	return -1
}
