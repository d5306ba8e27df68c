// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"cogentcore.org/richtext/colors"
	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/markup"
	"cogentcore.org/richtext/text/rich"
)

// TagProcessor handles a tag during layout by modifying the parsing
// context, typically its style stack or caret. Processors must not
// keep state of their own, as they are shared by all text boxes.
type TagProcessor func(ctx *ParsingContext, tag *markup.Tag)

var (
	tagProcessorsMu sync.RWMutex
	tagProcessors   = map[string]TagProcessor{}
)

// RegisterTagProcessor registers the processor for tags with the given
// name, replacing any existing one. Names should be lower case, as they
// are matched exactly and then against the lower cased tag name.
func RegisterTagProcessor(name string, fn TagProcessor) {
	tagProcessorsMu.Lock()
	defer tagProcessorsMu.Unlock()
	tagProcessors[name] = fn
}

// LookupTagProcessor returns the processor for the given tag name,
// trying an exact match first and then the lower cased name.
func LookupTagProcessor(name string) (TagProcessor, bool) {
	tagProcessorsMu.RLock()
	defer tagProcessorsMu.RUnlock()
	if fn, ok := tagProcessors[name]; ok {
		return fn, true
	}
	fn, ok := tagProcessors[strings.ToLower(name)]
	return fn, ok
}

// processTag dispatches the tag to its processor. Unknown tags are ignored.
func (ctx *ParsingContext) processTag(tag *markup.Tag) {
	fn, ok := LookupTagProcessor(tag.Name)
	if !ok {
		slog.Debug("richtext: ignoring unknown tag", "tag", tag.Name, "pos", tag.StartPosition)
		return
	}
	fn(ctx, tag)
}

func init() {
	RegisterTagProcessor("br", ProcessBreak)
	RegisterTagProcessor("color", StyleTag(setColor))
	RegisterTagProcessor("alpha", StyleTag(setAlpha))
	RegisterTagProcessor("style", StyleTag(setNamedStyle))
	RegisterTagProcessor("font", StyleTag(setFont))
	RegisterTagProcessor("b", StyleTag(func(ctx *ParsingContext, tag *markup.Tag, s *rich.Style) {
		s.Font.Weight = rich.Bold
	}))
	RegisterTagProcessor("i", StyleTag(func(ctx *ParsingContext, tag *markup.Tag, s *rich.Style) {
		s.Font.Slant = rich.Italic
	}))
	RegisterTagProcessor("size", StyleTag(setSize))
}

// ProcessBreak handles the line break tag <br>, closing the current line.
func ProcessBreak(ctx *ParsingContext, tag *markup.Tag) {
	if tag.IsSlash {
		return
	}
	ctx.Caret.X = 0
	ctx.EndLine(tag.EndPosition - 1)
}

// StyleTag returns a processor for a style tag: an opening tag pushes a
// copy of the current style modified by set, and a closing tag pops it.
// A closing tag never pops the box style at the base of the stack.
// Self-closing style tags have no effect.
func StyleTag(set func(ctx *ParsingContext, tag *markup.Tag, s *rich.Style)) TagProcessor {
	return func(ctx *ParsingContext, tag *markup.Tag) {
		if tag.IsSlash {
			if !ctx.StyleStack.Pop() {
				slog.Debug("richtext: unmatched closing tag", "tag", tag.Name, "pos", tag.StartPosition)
			}
			return
		}
		if tag.IsSelfClosing {
			return
		}
		s := ctx.StyleStack.Peek()
		set(ctx, tag, &s)
		ctx.StyleStack.Push(s)
	}
}

func setColor(ctx *ParsingContext, tag *markup.Tag, s *rich.Style) {
	v, _ := tag.Value()
	c, err := colors.FromString(v)
	if err != nil {
		slog.Debug("richtext: invalid color", "value", v, "err", err)
		return
	}
	s.Color = c
}

func setAlpha(ctx *ParsingContext, tag *markup.Tag, s *rich.Style) {
	v, _ := tag.Value()
	a, ok := ParseAlpha(v)
	if !ok {
		slog.Debug("richtext: invalid alpha", "value", v)
		return
	}
	s.Color = colors.WithAlpha(s.Color, a)
}

// ParseAlpha parses an alpha value given as a fraction (0.5),
// a percentage (50%) or a hex byte (#80).
func ParseAlpha(v string) (uint8, bool) {
	v = strings.TrimSpace(v)
	switch {
	case strings.HasPrefix(v, "#"):
		a, err := strconv.ParseUint(v[1:], 16, 8)
		if err != nil {
			return 0, false
		}
		return uint8(a), true
	case strings.HasSuffix(v, "%"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 32)
		if err != nil {
			return 0, false
		}
		return alphaByte(float32(f) / 100), true
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, false
	}
	return alphaByte(float32(f)), true
}

func alphaByte(f float32) uint8 {
	return uint8(math32.Round(math32.Min(math32.Max(f, 0), 1) * 255))
}

func setNamedStyle(ctx *ParsingContext, tag *markup.Tag, s *rich.Style) {
	v, _ := tag.Value()
	if ns, ok := ctx.Box.Styles[v]; ok {
		*s = ns
		return
	}
	slog.Debug("richtext: unknown style", "name", v)
}

// setFont sets the font family from the tag value, and the size from
// an optional size attribute, as in <font=serif size=20>.
func setFont(ctx *ParsingContext, tag *markup.Tag, s *rich.Style) {
	if v, ok := tag.Value(); ok && v != "" {
		s.Font.Family = v
	}
	if v, ok := tag.Attr("size"); ok {
		if sz, ok := ParseSize(v, s.Font.Size); ok {
			s.Font.Size = sz
		}
	}
}

func setSize(ctx *ParsingContext, tag *markup.Tag, s *rich.Style) {
	v, _ := tag.Value()
	sz, ok := ParseSize(v, s.Font.Size)
	if !ok {
		slog.Debug("richtext: invalid size", "value", v)
		return
	}
	s.Font.Size = sz
}

// ParseSize parses a font size given in pixels (24, 24px) or as a
// percentage of the current size (150%). The size must be positive.
func ParseSize(v string, cur float32) (float32, bool) {
	v = strings.TrimSpace(v)
	pct := strings.HasSuffix(v, "%")
	v = strings.TrimSuffix(strings.TrimSuffix(v, "%"), "px")
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		return 0, false
	}
	sz := float32(f)
	if pct {
		sz = cur * sz / 100
	}
	if sz <= 0 {
		return 0, false
	}
	return sz, true
}
