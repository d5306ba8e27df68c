// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapedgt provides a [shaped.FontProvider] that measures text
// with go-text HarfBuzz shaping, using embedded Latin Modern fonts by default.
package shapedgt

import (
	"bytes"
	"fmt"
	"sync"

	"cogentcore.org/richtext/base/errors"
	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/shaped"
	"cogentcore.org/richtext/text/textpos"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// Provider is a [shaped.FontProvider] backed by go-text shaping.
// It is safe for concurrent use.
type Provider struct {
	mu       sync.Mutex
	shaper   shaping.HarfbuzzShaper
	families map[string]*FamilyData
	faces    map[faceKey]*font.Face
	fonts    map[rich.FontRef]*Font
}

// FamilyData holds the font file data of the faces of a family.
// Missing variants fall back to Regular.
type FamilyData struct {
	Regular, Bold, Italic, BoldItalic []byte
}

// data returns the font data for the given weight and slant.
func (fd *FamilyData) data(wt rich.Weights, sl rich.Slants) []byte {
	bold, italic := wt == rich.Bold, sl == rich.Italic
	switch {
	case bold && italic && fd.BoldItalic != nil:
		return fd.BoldItalic
	case bold && fd.Bold != nil:
		return fd.Bold
	case italic && fd.Italic != nil:
		return fd.Italic
	}
	return fd.Regular
}

type faceKey struct {
	family string
	weight rich.Weights
	slant  rich.Slants
}

// NewProvider returns a new provider with the default font families
// (serif, sans and mono) registered.
func NewProvider() *Provider {
	p := &Provider{
		families: map[string]*FamilyData{},
		faces:    map[faceKey]*font.Face{},
		fonts:    map[rich.FontRef]*Font{},
	}
	for name, fd := range defaultFamilies() {
		p.AddFamily(name, fd)
	}
	p.shaper.SetFontCacheSize(32)
	return p
}

// AddFamily registers font data for the given family name,
// replacing any existing family of that name.
func (p *Provider) AddFamily(name string, fd FamilyData) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.families[name] = &fd
	for k := range p.faces {
		if k.family == name {
			delete(p.faces, k)
		}
	}
	for k := range p.fonts {
		if k.Family == name {
			delete(p.fonts, k)
		}
	}
}

// Families returns the number of registered font families.
func (p *Provider) Families() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.families)
}

// FontData returns the font file data used for the given reference,
// and whether the family is known.
func (p *Provider) FontData(ref rich.FontRef) ([]byte, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fd, ok := p.families[ref.Family]
	if !ok {
		return nil, false
	}
	return fd.data(ref.Weight, ref.Slant), true
}

// Font returns the font for the given reference, or nil if the family
// is unknown, its data cannot be parsed, or the size is not positive.
func (p *Provider) Font(ref rich.FontRef) shaped.Font {
	if ref.Size <= 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if f, ok := p.fonts[ref]; ok {
		return f
	}
	face := p.face(ref)
	if face == nil {
		return nil
	}
	f := &Font{provider: p, face: face, size: ref.Size}
	f.metrics = f.measureMetrics()
	p.fonts[ref] = f
	return f
}

// face returns the parsed face for ref. p.mu must be locked.
func (p *Provider) face(ref rich.FontRef) *font.Face {
	key := faceKey{ref.Family, ref.Weight, ref.Slant}
	if face, ok := p.faces[key]; ok {
		return face
	}
	fd, ok := p.families[ref.Family]
	if !ok {
		return nil
	}
	faces, err := font.ParseTTC(bytes.NewReader(fd.data(ref.Weight, ref.Slant)))
	if errors.Log(err) != nil {
		return nil
	}
	if len(faces) == 0 {
		errors.Log(fmt.Errorf("shapedgt: no faces in font data for family %q", ref.Family))
		return nil
	}
	p.faces[key] = faces[0]
	return faces[0]
}

// Font is a [shaped.Font] for one face at one size.
type Font struct {
	provider *Provider
	face     *font.Face
	size     float32
	metrics  shaped.Metrics
}

// Metrics returns the vertical metrics of the font.
func (f *Font) Metrics() shaped.Metrics {
	return f.metrics
}

// measureMetrics shapes a sample to obtain the line bounds at this size.
// The provider mutex must be locked.
func (f *Font) measureMetrics() shaped.Metrics {
	sample := []rune("Mg")
	out := f.provider.shaper.Shape(f.input(sample, 0, len(sample)))
	lb := out.LineBounds
	asc := math32.FromFixed(lb.Ascent)
	desc := -math32.FromFixed(lb.Descent)
	return shaped.Metrics{
		Ascender:  asc,
		Descender: desc,
		Height:    asc + desc + math32.FromFixed(lb.Gap),
	}
}

func (f *Font) input(txt []rune, start, end int) shaping.Input {
	return shaping.Input{
		Text:      txt,
		RunStart:  start,
		RunEnd:    end,
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      math32.ToFixed(f.size),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}
}

// Advances returns the horizontal advance of each rune in the range,
// indexed relative to rng.Start. Newlines have no advance, and runes
// sharing a cluster with a preceding rune are given zero advance.
func (f *Font) Advances(txt []rune, rng textpos.Range) []float32 {
	adv := make([]float32, rng.Len())
	if rng.Len() == 0 {
		return adv
	}
	f.provider.mu.Lock()
	out := f.provider.shaper.Shape(f.input(txt, rng.Start, rng.End))
	f.provider.mu.Unlock()
	for _, g := range out.Glyphs {
		i := g.ClusterIndex - rng.Start
		if i < 0 || i >= len(adv) || txt[g.ClusterIndex] == '\n' {
			continue
		}
		adv[i] += math32.FromFixed(g.XAdvance)
	}
	return adv
}

// ProcessText measures the range of txt and wraps it into lines.
func (f *Font) ProcessText(txt []rune, rng textpos.Range, opts *shaped.Options) []shaped.Line {
	if rng.Start < 0 || rng.End > len(txt) || rng.Start > rng.End {
		return nil
	}
	return shaped.WrapLines(txt, rng, f.Advances(txt, rng), f.metrics, opts)
}
