// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"log/slog"

	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/markup"
	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/shaped"
	"cogentcore.org/richtext/text/textpos"
)

// ParsingContext is the state of one layout pass. Tag processors
// modify it, and [TextBox.PostProcessBlock] can inspect it.
type ParsingContext struct {

	// Box is the text box being laid out.
	Box *TextBox

	// Parser is the tag parser.
	Parser *markup.Parser

	// Caret is the position of the next text block.
	Caret math32.Vector2

	// LineStartCharacterIndex is the index of the first rune of the current line.
	LineStartCharacterIndex int

	// LineStartTextBlockIndex is the index of the first block of the current line.
	LineStartTextBlockIndex int

	// StyleStack holds the styles pushed by tags, over the box style.
	StyleStack *rich.Stack
}

// Layout parses the text and lays it out into [TextBox.Blocks],
// replacing any previous blocks.
func (tb *TextBox) Layout() {
	tb.Blocks = tb.Blocks[:0]
	tb.Caret = math32.Vector2{}
	if tb.ParseOverride != nil {
		tb.ParseOverride(tb.Text, &tb.Blocks)
		return
	}
	tb.parser.Reset(tb.Text)
	tb.stack.Reset(tb.Style)
	ctx := &ParsingContext{Box: tb, Parser: &tb.parser, StyleStack: &tb.stack}

	start := 0
	for {
		tag, ok := tb.parser.ParseNext()
		if !ok {
			break
		}
		ctx.AddTextBlock(textpos.Range{Start: start, End: tag.StartPosition})
		start = tag.EndPosition
		ctx.processTag(&tag)
	}
	ctx.AddTextBlock(textpos.Range{Start: start, End: len(tb.Text)})

	tb.Caret = ctx.Caret
	if ctx.LineStartTextBlockIndex < len(tb.Blocks) {
		ctx.EndLine(len(tb.Text))
	}
}

// AddTextBlock adds the text blocks for the given range of text in the
// current style, continuing the current line at the caret. The text is
// skipped if the range is empty, its font cannot be resolved, or it
// cannot be measured. Each wrapped line after the first closes the
// previous line with [ParsingContext.EndLine].
func (ctx *ParsingContext) AddTextBlock(rng textpos.Range) {
	if rng.Start >= rng.End {
		return
	}
	tb := ctx.Box
	sty := ctx.StyleStack.Peek()
	f := tb.font(sty.Font)
	if f == nil {
		slog.Debug("richtext: skipping text without a font", "range", rng, "font", sty.Font)
		return
	}
	opts := tb.Options
	opts.Indent = ctx.Caret.X
	lines := f.ProcessText(tb.Text, rng, &opts)
	if len(lines) == 0 {
		return
	}
	for i, ln := range lines {
		if i > 0 {
			ctx.Caret.X = 0
			ctx.EndLine(ln.Range.Start - 1)
		}
		if pushedDown(lines, i) {
			continue
		}
		blk := TextBlock{
			Style:  sty,
			Range:  ln.Range,
			Bounds: math32.B2FromPosSize(ctx.Caret.Add(ln.Offset), ln.Size),
		}
		if tb.PostProcessBlock != nil {
			tb.PostProcessBlock(ctx, &blk)
		}
		tb.Blocks = append(tb.Blocks, blk)
	}
	last := lines[len(lines)-1]
	if len(lines) == 1 {
		ctx.Caret.X += last.Size.X
	} else {
		ctx.Caret.X = last.Size.X
	}
}

// pushedDown reports whether line i is the empty first line that
// [shaped.WrapLines] returns when the indent leaves no room for the
// first word. It only closes the current line and has no block.
func pushedDown(lines []shaped.Line, i int) bool {
	return i == 0 && len(lines) > 1 && lines[0].Range.Len() == 0 && lines[1].Range.Start == lines[0].Range.Start
}

// EndLine closes the current line, which ends at the rune index lineEnd.
// The blocks of the line are moved down so that their baselines align
// at the largest ascender in the line. Blocks whose font cannot be
// resolved are aligned to the bottom of the line instead. The caret
// moves down by the line height: the height of the current font for
// a line without blocks.
func (ctx *ParsingContext) EndLine(lineEnd int) {
	tb := ctx.Box
	blocks := tb.Blocks[ctx.LineStartTextBlockIndex:]
	var size math32.Vector2
	if len(blocks) == 0 {
		if f := tb.font(ctx.StyleStack.Peek().Font); f != nil {
			size.Y = f.Metrics().Height
		}
	} else {
		origin := blocks[0].Bounds.Min
		var asc float32
		for _, blk := range blocks {
			size.SetMax(blk.Bounds.Max.Sub(origin))
			if f := tb.font(blk.Style.Font); f != nil {
				asc = max(asc, f.Metrics().Ascender)
			}
		}
		for i := range blocks {
			blk := &blocks[i]
			off := size.Y - blk.Bounds.Size().Y
			if f := tb.font(blk.Style.Font); f != nil {
				off = asc - f.Metrics().Ascender
			}
			blk.Bounds = blk.Bounds.Translate(math32.Vec2(0, off))
		}
	}
	ctx.LineStartCharacterIndex = lineEnd + 1
	ctx.LineStartTextBlockIndex = len(tb.Blocks)
	ctx.Caret.Y += size.Y
}
