// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedcell provides a [shaped.FontProvider] for terminal
// output, where every rune occupies a whole number of character cells
// and every line is one cell high.
package shapedcell

import (
	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/shaped"
	"cogentcore.org/richtext/text/textpos"
	"github.com/mattn/go-runewidth"
)

// Provider returns the same cell font for every reference,
// regardless of family, weight, slant or size.
type Provider struct {
	cond *runewidth.Condition
}

// NewProvider returns a new cell provider. If eastAsian is true,
// ambiguous-width runes take two cells.
func NewProvider(eastAsian bool) *Provider {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &Provider{cond: cond}
}

// Font returns the cell font.
func (p *Provider) Font(ref rich.FontRef) shaped.Font {
	return &Font{cond: p.cond}
}

// Metrics are the cell metrics: the baseline sits at the bottom of the cell.
var Metrics = shaped.Metrics{Ascender: 1, Descender: 0, Height: 1}

// Font measures runes in terminal cells.
type Font struct {
	cond *runewidth.Condition
}

// Metrics returns [Metrics].
func (f *Font) Metrics() shaped.Metrics {
	return Metrics
}

// ProcessText measures the range of txt in cells and wraps it into lines.
func (f *Font) ProcessText(txt []rune, rng textpos.Range, opts *shaped.Options) []shaped.Line {
	if rng.Start < 0 || rng.End > len(txt) || rng.Start > rng.End {
		return nil
	}
	adv := make([]float32, rng.Len())
	for i := range adv {
		r := txt[rng.Start+i]
		if r == '\n' {
			continue
		}
		adv[i] = float32(f.cond.RuneWidth(r))
	}
	return shaped.WrapLines(txt, rng, adv, Metrics, opts)
}
