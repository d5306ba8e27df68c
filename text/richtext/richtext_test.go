// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"image/color"
	"strings"
	"testing"

	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/markup"
	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/shaped"
	"cogentcore.org/richtext/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testFonts resolves every family except "missing" to a font where every
// rune is one unit wide, the ascender is the font size and the line
// height is 1.5 times the font size.
var testFonts = shaped.FontProviderFunc(func(ref rich.FontRef) shaped.Font {
	if ref.Family == "missing" || ref.Size <= 0 {
		return nil
	}
	return &testFont{shaped.Metrics{Ascender: ref.Size, Descender: ref.Size / 2, Height: ref.Size * 1.5}}
})

type testFont struct {
	m shaped.Metrics
}

func (f *testFont) Metrics() shaped.Metrics { return f.m }

func (f *testFont) ProcessText(txt []rune, rng textpos.Range, opts *shaped.Options) []shaped.Line {
	adv := make([]float32, rng.Len())
	for i := range adv {
		if txt[rng.Start+i] != '\n' {
			adv[i] = 1
		}
	}
	return shaped.WrapLines(txt, rng, adv, f.m, opts)
}

func layout(text string) *TextBox {
	tb := NewTextBox(text, testFonts)
	tb.Layout()
	return tb
}

func blockTexts(tb *TextBox) []string {
	var s []string
	for i := range tb.Blocks {
		s = append(s, tb.BlockText(i))
	}
	return s
}

func rng(s, e int) textpos.Range {
	return textpos.Range{Start: s, End: e}
}

func TestLayoutBold(t *testing.T) {
	tb := layout("A<b>BC</b>D")
	require.Len(t, tb.Blocks, 3)
	assert.Equal(t, []string{"A", "BC", "D"}, blockTexts(tb))
	assert.Equal(t, rng(0, 1), tb.Blocks[0].Range)
	assert.Equal(t, rng(4, 6), tb.Blocks[1].Range)
	assert.Equal(t, rng(10, 11), tb.Blocks[2].Range)

	base := *rich.NewStyle()
	bold := base
	bold.Font.Weight = rich.Bold
	assert.Equal(t, base, tb.Blocks[0].Style)
	assert.Equal(t, bold, tb.Blocks[1].Style)
	assert.Equal(t, base, tb.Blocks[2].Style)

	assert.Equal(t, math32.B2(0, 0, 1, 24), tb.Blocks[0].Bounds)
	assert.Equal(t, math32.B2(1, 0, 3, 24), tb.Blocks[1].Bounds)
	assert.Equal(t, math32.B2(3, 0, 4, 24), tb.Blocks[2].Bounds)
	assert.Equal(t, math32.Vec2(4, 0), tb.Caret)
}

func TestLayoutUnknownTag(t *testing.T) {
	tb := layout("X<foo>Y")
	require.Len(t, tb.Blocks, 2)
	assert.Equal(t, []string{"X", "Y"}, blockTexts(tb))
	assert.Equal(t, tb.Blocks[0].Style, tb.Blocks[1].Style)
	assert.Equal(t, tb.Blocks[0].Bounds.Max.X, tb.Blocks[1].Bounds.Min.X)
}

func TestLayoutEmpty(t *testing.T) {
	tb := layout("")
	assert.Empty(t, tb.Blocks)
	tb = layout("<b></b><i>")
	assert.Empty(t, tb.Blocks)
	assert.Zero(t, tb.Caret)
}

func TestCaretSingleLine(t *testing.T) {
	tb := layout("abcde<b>xyz</b>")
	require.Len(t, tb.Blocks, 2)
	assert.Equal(t, float32(5), tb.Blocks[1].Bounds.Min.X)
	assert.Equal(t, float32(5+3), tb.Caret.X)
}

func TestCaretWrapped(t *testing.T) {
	tb := NewTextBox("abcde<b>xy zzzzzzz</b>", testFonts)
	tb.Options = shaped.Options{Width: 10, Wrap: shaped.WrapWords}
	tb.Layout()
	require.Len(t, tb.Blocks, 3)
	assert.Equal(t, []string{"abcde", "xy ", "zzzzzzz"}, blockTexts(tb))
	assert.Equal(t, math32.B2(5, 0, 7, 24), tb.Blocks[1].Bounds)
	assert.Equal(t, math32.B2(0, 24, 7, 48), tb.Blocks[2].Bounds)
	// the last sub-line width, not 5+2+7
	assert.Equal(t, math32.Vec2(7, 24), tb.Caret)
}

func TestIndentPushesWordDown(t *testing.T) {
	tb := NewTextBox("abcd<b>efgh</b>", testFonts)
	tb.Options = shaped.Options{Width: 5, Wrap: shaped.WrapWords}
	tb.Layout()
	require.Len(t, tb.Blocks, 2)
	assert.Equal(t, []string{"abcd", "efgh"}, blockTexts(tb))
	assert.Equal(t, math32.B2(0, 0, 4, 24), tb.Blocks[0].Bounds)
	assert.Equal(t, math32.B2(0, 24, 4, 48), tb.Blocks[1].Bounds)
	assert.Equal(t, math32.Vec2(4, 24), tb.Caret)
}

func TestBaselineAlignment(t *testing.T) {
	tb := layout("<size=10>a</size><size=20>b</size>")
	require.Len(t, tb.Blocks, 2)
	a, b := tb.Blocks[0].Bounds, tb.Blocks[1].Bounds
	assert.Equal(t, float32(10), a.Min.Y-b.Min.Y)
	assert.Equal(t, float32(10), a.Min.Y)
	assert.Equal(t, float32(0), b.Min.Y)
	assert.Equal(t, math32.Vec2(2, 30), tb.Size())
}

func TestBaselineNextLine(t *testing.T) {
	tb := layout("<size=20>a</size>b<br>c")
	require.Len(t, tb.Blocks, 3)
	// line height is that of the 20px block
	assert.Equal(t, float32(30), tb.Blocks[2].Bounds.Min.Y)
	assert.Equal(t, float32(4), tb.Blocks[1].Bounds.Min.Y)
}

func TestUnresolvedFontBottomAligned(t *testing.T) {
	tb := NewTextBox("<size=10>x</size><size=20>y</size>", testFonts)
	tb.PostProcessBlock = func(ctx *ParsingContext, blk *TextBlock) {
		if ctx.Box.Text[blk.Range.Start] == 'x' {
			blk.Style.Font.Family = "missing"
		}
	}
	tb.Layout()
	require.Len(t, tb.Blocks, 2)
	assert.Equal(t, float32(30), tb.Blocks[0].Bounds.Max.Y)
	assert.Equal(t, float32(30), tb.Blocks[1].Bounds.Max.Y)
	assert.Equal(t, float32(0), tb.Blocks[1].Bounds.Min.Y)
}

func TestSkipMissingFont(t *testing.T) {
	tb := layout("a<font=missing>bc</font>d")
	require.Len(t, tb.Blocks, 2)
	assert.Equal(t, []string{"a", "d"}, blockTexts(tb))
	assert.Equal(t, float32(1), tb.Blocks[1].Bounds.Min.X)

	tb = NewTextBox("abc", nil)
	tb.Layout()
	assert.Empty(t, tb.Blocks)
}

func TestParseOverride(t *testing.T) {
	tb := NewTextBox("a<b>b</b>", testFonts)
	tb.Blocks = []TextBlock{{Range: rng(0, 1)}, {Range: rng(1, 2)}}
	var got []rune
	tb.ParseOverride = func(text []rune, blocks *[]TextBlock) {
		got = text
		assert.Empty(t, *blocks)
		*blocks = append(*blocks, TextBlock{Range: rng(0, 9)})
	}
	tb.Layout()
	assert.Equal(t, tb.Text, got)
	require.Len(t, tb.Blocks, 1)
	assert.Equal(t, rng(0, 9), tb.Blocks[0].Range)
}

func TestPostProcessBlock(t *testing.T) {
	tb := NewTextBox("ab<b>cd</b>", testFonts)
	var carets []float32
	tb.PostProcessBlock = func(ctx *ParsingContext, blk *TextBlock) {
		carets = append(carets, ctx.Caret.X)
		blk.Style.Color = color.RGBA{255, 0, 0, 255}
		blk.Bounds = blk.Bounds.Translate(math32.Vec2(0.5, 0))
	}
	tb.Layout()
	require.Len(t, tb.Blocks, 2)
	assert.Equal(t, []float32{0, 2}, carets)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, tb.Blocks[1].Style.Color)
	assert.Equal(t, float32(2.5), tb.Blocks[1].Bounds.Min.X)
}

func TestRelayout(t *testing.T) {
	tb := layout("a<b>b</b>")
	first := append([]TextBlock(nil), tb.Blocks...)
	tb.Layout()
	assert.Equal(t, first, tb.Blocks)
	tb.SetText("xyz").Layout()
	assert.Equal(t, []string{"xyz"}, blockTexts(tb))
}

// registerTestTag registers fn for the duration of the test.
func registerTestTag(t *testing.T, name string, fn TagProcessor) {
	t.Helper()
	tagProcessorsMu.RLock()
	prev, had := tagProcessors[name]
	tagProcessorsMu.RUnlock()
	RegisterTagProcessor(name, fn)
	t.Cleanup(func() {
		tagProcessorsMu.Lock()
		defer tagProcessorsMu.Unlock()
		if had {
			tagProcessors[name] = prev
		} else {
			delete(tagProcessors, name)
		}
	})
}

func TestCaseInsensitiveTags(t *testing.T) {
	tb := layout("<B>x</B><I>y</i>")
	require.Len(t, tb.Blocks, 2)
	assert.Equal(t, rich.Bold, tb.Blocks[0].Style.Font.Weight)
	assert.Equal(t, rich.Italic, tb.Blocks[1].Style.Font.Slant)

	var exact, lower int
	registerTestTag(t, "Mark", func(ctx *ParsingContext, tag *markup.Tag) { exact++ })
	registerTestTag(t, "mark", func(ctx *ParsingContext, tag *markup.Tag) { lower++ })
	layout("<Mark>a<MARK>b<mark>")
	assert.Equal(t, 1, exact)
	assert.Equal(t, 2, lower)

	_, ok := LookupTagProcessor("nonesuch")
	assert.False(t, ok)
}

func TestRegisterTestTagCleanup(t *testing.T) {
	t.Run("register", func(t *testing.T) {
		registerTestTag(t, "scratch", func(ctx *ParsingContext, tag *markup.Tag) {})
		_, ok := LookupTagProcessor("scratch")
		assert.True(t, ok)
	})
	_, ok := LookupTagProcessor("scratch")
	assert.False(t, ok)
}

func TestStyleStackRestore(t *testing.T) {
	tb := NewTextBox("<b><i><color=red><size=150%>x</size></color></i></b>y</b></b></i>z<color=#0f0>w", testFonts)
	var depths []int
	tb.PostProcessBlock = func(ctx *ParsingContext, blk *TextBlock) {
		depths = append(depths, ctx.StyleStack.Len())
	}
	tb.Layout()
	require.Len(t, tb.Blocks, 4)
	base := tb.Style
	x := tb.Blocks[0].Style
	assert.Equal(t, rich.Bold, x.Font.Weight)
	assert.Equal(t, rich.Italic, x.Font.Slant)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, x.Color)
	assert.Equal(t, float32(24), x.Font.Size)
	assert.Equal(t, base, tb.Blocks[1].Style)
	assert.Equal(t, base, tb.Blocks[2].Style)
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, tb.Blocks[3].Style.Color)
	assert.Equal(t, []int{5, 1, 1, 2}, depths)
}

func TestStyleTags(t *testing.T) {
	title := *rich.NewStyle()
	title.Font.Size = 40
	title.Color = color.RGBA{255, 215, 0, 255}

	tests := []struct {
		src   string
		check func(t *testing.T, s rich.Style)
	}{
		{"<color=#ff0000>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, color.RGBA{255, 0, 0, 255}, s.Color)
		}},
		{"<color=\"navy\">x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, color.RGBA{0, 0, 128, 255}, s.Color)
		}},
		{"<color=bogus>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, *rich.NewStyle(), s)
		}},
		{"<alpha=50%>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, uint8(128), s.Color.A)
		}},
		{"<alpha=#40>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, uint8(0x40), s.Color.A)
		}},
		{"<size=150%>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, float32(24), s.Font.Size)
		}},
		{"<size=-3>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, rich.DefaultSize, s.Font.Size)
		}},
		{"<font=serif size=20>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, "serif", s.Font.Family)
			assert.Equal(t, float32(20), s.Font.Size)
		}},
		{"<style=title>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, title, s)
		}},
		{"<style=unknown>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, *rich.NewStyle(), s)
		}},
		{"<b/>x", func(t *testing.T, s rich.Style) {
			assert.Equal(t, rich.Normal, s.Font.Weight)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tb := NewTextBox(tt.src, testFonts)
			tb.Styles = map[string]rich.Style{"title": title}
			tb.Layout()
			require.Len(t, tb.Blocks, 1)
			tt.check(t, tb.Blocks[0].Style)
		})
	}
}

func TestLineBreaks(t *testing.T) {
	tests := []struct {
		src string
		pos []math32.Vector2
	}{
		{"a<br>b", []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(0, 24)}},
		{"a<br/>b", []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(0, 24)}},
		{"a<br><br>b", []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(0, 48)}},
		{"<br>b", []math32.Vector2{math32.Vec2(0, 24)}},
		{"a</br>b", []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(1, 0)}},
		{"a\nb", []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(0, 24)}},
		{"ab\n", []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(0, 24)}},
		{"<size=32>a</size><br>b", []math32.Vector2{math32.Vec2(0, 0), math32.Vec2(0, 48)}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tb := layout(tt.src)
			var pos []math32.Vector2
			for _, blk := range tb.Blocks {
				pos = append(pos, blk.Bounds.Min)
			}
			assert.Equal(t, tt.pos, pos)
		})
	}
}

func TestLineStartIndexes(t *testing.T) {
	tb := NewTextBox("ab<br>cd\nef", testFonts)
	type start struct{ char, block int }
	var starts []start
	tb.PostProcessBlock = func(ctx *ParsingContext, blk *TextBlock) {
		starts = append(starts, start{ctx.LineStartCharacterIndex, ctx.LineStartTextBlockIndex})
	}
	tb.Layout()
	assert.Equal(t, []start{{0, 0}, {6, 1}, {9, 2}}, starts)
}

// stripTags removes everything between '<' and '>' inclusive.
func stripTags(s string) string {
	var sb strings.Builder
	in := false
	for _, r := range s {
		switch {
		case r == '<':
			in = true
		case r == '>':
			in = false
		case !in:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func TestBlocksCoverText(t *testing.T) {
	srcs := []string{
		"plain text",
		"A<b>BC</b>D",
		"<i>start</i> middle <color=blue>end</color>",
		"<b><i>x</i></b><size=20>yy</size>zzz<foo bar=1>w",
		"héllo <b>wörld</b> ✓",
	}
	for _, width := range []float32{0, 3, 5} {
		for _, src := range srcs {
			tb := NewTextBox(src, testFonts)
			tb.Options = shaped.Options{Width: width, Wrap: shaped.WrapWords}
			tb.Layout()
			assert.Equal(t, stripTags(src), strings.Join(blockTexts(tb), ""), src)
			for i := 1; i < len(tb.Blocks); i++ {
				prev, cur := tb.Blocks[i-1].Range, tb.Blocks[i].Range
				assert.LessOrEqual(t, prev.End, cur.Start, src)
				assert.Less(t, prev.Start, cur.Start, src)
			}
		}
	}
}

func TestBlockAt(t *testing.T) {
	tb := layout("ab<b>cd</b>")
	assert.Equal(t, 0, tb.BlockAt(math32.Vec2(1, 5)))
	assert.Equal(t, 1, tb.BlockAt(math32.Vec2(3, 5)))
	assert.Equal(t, -1, tb.BlockAt(math32.Vec2(9, 5)))
}

func TestParseAlpha(t *testing.T) {
	tests := []struct {
		in string
		a  uint8
		ok bool
	}{
		{"1", 255, true},
		{"0", 0, true},
		{"0.5", 128, true},
		{"2", 255, true},
		{"25%", 64, true},
		{"#ff", 255, true},
		{"#1g", 0, false},
		{"half", 0, false},
	}
	for _, tt := range tests {
		a, ok := ParseAlpha(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.a, a, tt.in)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in string
		sz float32
		ok bool
	}{
		{"24", 24, true},
		{"24px", 24, true},
		{"50%", 8, true},
		{"0", 0, false},
		{"big", 0, false},
	}
	for _, tt := range tests {
		sz, ok := ParseSize(tt.in, 16)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.sz, sz, tt.in)
	}
}
