// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaped

import (
	"unicode"

	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/textpos"
	"github.com/go-text/typesetting/segmenter"
)

// WrapLines splits the given range of txt into lines, using the given
// per-rune advances (indexed relative to rng.Start) and font metrics.
// Lines always break at newlines, which are excluded from the line ranges,
// so text ending in a newline yields a final empty line. Within paragraphs,
// lines are wrapped greedily according to opts: a word that does not fit
// on a line by itself is split between runes, and when the indent leaves
// no room for the first word, the first line is empty.
func WrapLines(txt []rune, rng textpos.Range, advances []float32, m Metrics, opts *Options) []Line {
	var o Options
	if opts != nil {
		o = *opts
	}
	w := &wrapper{txt: txt, start: rng.Start, adv: advances, m: m, opts: o}
	indent := o.Indent
	ps := rng.Start
	for {
		pe := ps
		for pe < rng.End && txt[pe] != '\n' {
			pe++
		}
		w.paragraph(ps, pe, indent)
		if pe >= rng.End {
			break
		}
		ps = pe + 1
		indent = 0
	}
	return w.lines
}

// Breaks returns the rune indexes within txt[start:end] where a new line
// may begin, according to the wrap mode: word boundaries from the
// Unicode line breaking algorithm for [WrapWords], and every rune for
// [WrapChars]. The start index itself is not included.
func Breaks(txt []rune, start, end int, mode WrapModes) []int {
	var brks []int
	switch mode {
	case WrapChars:
		for i := start + 1; i < end; i++ {
			brks = append(brks, i)
		}
	case WrapWords:
		if end <= start {
			return nil
		}
		var seg segmenter.Segmenter
		seg.Init(txt[start:end])
		it := seg.LineIterator()
		for it.Next() {
			ln := it.Line()
			if ln.Offset > 0 {
				brks = append(brks, start+ln.Offset)
			}
		}
	}
	return brks
}

// wrapper holds the state for WrapLines.
type wrapper struct {
	txt   []rune
	start int
	adv   []float32
	m     Metrics
	opts  Options
	lines []Line
}

func (w *wrapper) advance(i int) float32 {
	if ri := i - w.start; ri >= 0 && ri < len(w.adv) {
		return w.adv[ri]
	}
	return 0
}

func (w *wrapper) width(s, e int) float32 {
	var wd float32
	for i := s; i < e; i++ {
		wd += w.advance(i)
	}
	return wd
}

// visibleEnd returns the end of [s, e) without trailing whitespace.
func (w *wrapper) visibleEnd(s, e int) int {
	for e > s && unicode.IsSpace(w.txt[e-1]) {
		e--
	}
	return e
}

func (w *wrapper) addLine(s, e int, width float32) {
	w.lines = append(w.lines, Line{
		Range:    textpos.Range{Start: s, End: e},
		Size:     math32.Vec2(width, w.m.Height),
		Ascender: w.m.Ascender,
	})
}

// addWrapped adds a line that ends at a wrap point, excluding its
// trailing whitespace from the width.
func (w *wrapper) addWrapped(s, e int) {
	w.addLine(s, e, w.width(s, w.visibleEnd(s, e)))
}

// paragraph lays out the newline-free range [ps, pe).
func (w *wrapper) paragraph(ps, pe int, indent float32) {
	o := &w.opts
	if o.Wrap == WrapNone || o.Width <= 0 || ps == pe {
		w.addLine(ps, pe, w.width(ps, pe))
		return
	}
	bounds := append([]int{ps}, Breaks(w.txt, ps, pe, o.Wrap)...)
	bounds = append(bounds, pe)
	avail := o.Width - indent
	lineStart := ps
	var lineW float32
	for si := 0; si < len(bounds)-1; {
		s, e := bounds[si], bounds[si+1]
		segW := w.width(s, e)
		visW := w.width(s, w.visibleEnd(s, e))
		if lineW+visW <= avail {
			lineW += segW
			si++
			continue
		}
		if lineStart < s {
			w.addWrapped(lineStart, s)
			lineStart, lineW, avail = s, 0, o.Width
			continue
		}
		if avail < o.Width {
			// only the indent is in the way: start over on a fresh line
			w.addLine(s, s, 0)
			avail = o.Width
			continue
		}
		for i := s; i < e; i++ {
			ra := w.advance(i)
			if lineStart < i && lineW+ra > avail && !unicode.IsSpace(w.txt[i]) {
				w.addWrapped(lineStart, i)
				lineStart, lineW = i, 0
			}
			lineW += ra
		}
		si++
	}
	w.addLine(lineStart, pe, lineW)
}
