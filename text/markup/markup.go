// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markup provides a tokenizer for the small HTML-like tag
// language used in rich text boxes, such as
//
//	Hello <b>bold</b> <color=#ff0000>red</color> <size=150%>big</size><br>
//
// It only finds tags: text between tags is left to the caller, which
// uses the tag positions to slice it out of the source.
package markup

import (
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
)

// Tag is one tag found in the source text.
type Tag struct {

	// Name is the tag name, without any leading slash.
	Name string

	// StartPosition is the rune index of the opening '<'.
	StartPosition int

	// EndPosition is the rune index just past the closing '>'.
	EndPosition int

	// IsSlash is whether this is a closing tag, as in </b>.
	IsSlash bool

	// IsSelfClosing is whether the tag ends with "/>", as in <br/>.
	IsSelfClosing bool

	// Attributes are the tag attributes. The value given directly
	// after the name, as in <size=20>, is stored under the empty key.
	// Attributes without a value, as in <b flag>, map to "".
	Attributes map[string]string
}

// Value returns the value given directly after the tag name,
// as in <color=red>, and whether there is one.
func (t *Tag) Value() (string, bool) {
	v, ok := t.Attributes[""]
	return v, ok
}

// Attr returns the value of the given attribute and whether it is present.
func (t *Tag) Attr(key string) (string, bool) {
	v, ok := t.Attributes[key]
	return v, ok
}

func (t *Tag) setAttr(key, value string) {
	if t.Attributes == nil {
		t.Attributes = make(map[string]string)
	}
	t.Attributes[key] = value
}

// Parser finds successive tags in a rune buffer. Tags are returned in
// strictly increasing, non-overlapping position order. A '<' that does
// not start a well-formed tag is treated as plain text.
type Parser struct {
	buf []byte
	z   *parse.Input

	// byte and rune offsets of the last converted position
	bytePos int
	runePos int
}

// Reset sets the text to scan and rewinds to its start.
func (p *Parser) Reset(text []rune) {
	p.buf = []byte(string(text))
	p.z = parse.NewInputBytes(p.buf)
	p.bytePos = 0
	p.runePos = 0
}

// ParseNext scans for the next tag, returning false when the text is exhausted.
func (p *Parser) ParseNext() (Tag, bool) {
	if p.z == nil {
		return Tag{}, false
	}
	z := p.z
	for z.Err() == nil {
		if z.Peek(0) != '<' {
			z.Move(1)
			continue
		}
		start := z.Pos()
		tag, ok := p.scanTag()
		if ok {
			tag.StartPosition = p.runeIndex(start)
			tag.EndPosition = p.runeIndex(z.Pos())
			return tag, true
		}
		z.Rewind(start)
		z.Move(1)
	}
	return Tag{}, false
}

// runeIndex converts a byte offset into a rune index.
// Offsets must be requested in non-decreasing order.
func (p *Parser) runeIndex(pos int) int {
	p.runePos += utf8.RuneCount(p.buf[p.bytePos:pos])
	p.bytePos = pos
	return p.runePos
}

// scanTag scans a tag starting at the current '<'.
func (p *Parser) scanTag() (Tag, bool) {
	z := p.z
	tag := Tag{}
	z.Move(1)
	if z.Peek(0) == '/' {
		tag.IsSlash = true
		z.Move(1)
	}
	tag.Name = p.scanName()
	if tag.Name == "" {
		return tag, false
	}
	if z.Peek(0) == '=' {
		z.Move(1)
		v, ok := p.scanValue()
		if !ok {
			return tag, false
		}
		tag.setAttr("", v)
	}
	for {
		p.skipWhitespace()
		c := z.Peek(0)
		switch {
		case c == '>':
			z.Move(1)
			return tag, true
		case c == '/' && z.Peek(1) == '>':
			z.Move(2)
			tag.IsSelfClosing = true
			return tag, true
		case c == '<' || z.Err() != nil:
			return tag, false
		}
		key := p.scanName()
		if key == "" {
			return tag, false
		}
		value := ""
		if z.Peek(0) == '=' {
			z.Move(1)
			v, ok := p.scanValue()
			if !ok {
				return tag, false
			}
			value = v
		}
		tag.setAttr(key, value)
	}
}

// scanName scans a tag or attribute name, which must start with a letter.
func (p *Parser) scanName() string {
	z := p.z
	start := z.Pos()
	if !isLetter(z.Peek(0)) {
		return ""
	}
	z.Move(1)
	for isNameByte(z.Peek(0)) {
		z.Move(1)
	}
	return string(p.buf[start:z.Pos()])
}

// scanValue scans a quoted or unquoted attribute value.
func (p *Parser) scanValue() (string, bool) {
	z := p.z
	if q := z.Peek(0); q == '"' || q == '\'' {
		z.Move(1)
		start := z.Pos()
		for z.Peek(0) != q {
			if z.Err() != nil {
				return "", false
			}
			z.Move(1)
		}
		v := string(p.buf[start:z.Pos()])
		z.Move(1)
		return v, true
	}
	start := z.Pos()
	for {
		c := z.Peek(0)
		if c == '>' || c == '<' || parse.IsWhitespace(c) || z.Err() != nil ||
			c == '/' && z.Peek(1) == '>' {
			break
		}
		z.Move(1)
	}
	return string(p.buf[start:z.Pos()]), true
}

func (p *Parser) skipWhitespace() {
	for parse.IsWhitespace(p.z.Peek(0)) {
		p.z.Move(1)
	}
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isNameByte(c byte) bool {
	return isLetter(c) || '0' <= c && c <= '9' || c == '-' || c == '_' || c == ':' || c == '.'
}
