// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package richtext

import (
	"bytes"
	"fmt"
	"os"

	"cogentcore.org/richtext/colors"
	"cogentcore.org/richtext/math32"
	"cogentcore.org/richtext/text/rich"
	"cogentcore.org/richtext/text/shaped"
	"github.com/pelletier/go-toml/v2"
)

// Config is the text box configuration, typically loaded from a TOML file:
//
//	width = 320
//	wrap = "words"
//
//	[style]
//	family = "serif"
//	size = 18
//
//	[styles.title]
//	size = 32
//	bold = true
//	color = "gold"
type Config struct {

	// Width is the line width for wrapping; zero disables wrapping.
	Width float32 `toml:"width"`

	// Wrap is the wrap mode: none, words or chars.
	Wrap shaped.WrapModes `toml:"wrap"`

	// Style is the default style, applied over [rich.NewStyle].
	Style StyleConfig `toml:"style"`

	// Styles are the named styles for the style tag,
	// each applied over the default style.
	Styles map[string]StyleConfig `toml:"styles"`
}

// StyleConfig describes a [rich.Style]. Zero fields keep the value
// of the style it is applied to.
type StyleConfig struct {
	Family       string     `toml:"family"`
	Size         float32    `toml:"size"`
	Bold         bool       `toml:"bold"`
	Italic       bool       `toml:"italic"`
	Color        string     `toml:"color"`
	ShadowColor  string     `toml:"shadow_color"`
	ShadowOffset [2]float32 `toml:"shadow_offset"`
}

// Apply returns the given style with the configured values set.
func (sc *StyleConfig) Apply(s rich.Style) (rich.Style, error) {
	if sc.Family != "" {
		s.Font.Family = sc.Family
	}
	if sc.Size < 0 {
		return s, fmt.Errorf("invalid font size %g", sc.Size)
	}
	if sc.Size > 0 {
		s.Font.Size = sc.Size
	}
	if sc.Bold {
		s.Font.Weight = rich.Bold
	}
	if sc.Italic {
		s.Font.Slant = rich.Italic
	}
	if sc.Color != "" {
		c, err := colors.FromString(sc.Color)
		if err != nil {
			return s, fmt.Errorf("color: %w", err)
		}
		s.Color = c
	}
	if sc.ShadowColor != "" {
		c, err := colors.FromString(sc.ShadowColor)
		if err != nil {
			return s, fmt.Errorf("shadow_color: %w", err)
		}
		s.ShadowColor = c
	}
	if sc.ShadowOffset != [2]float32{} {
		s.ShadowOffset = math32.Vec2(sc.ShadowOffset[0], sc.ShadowOffset[1])
	}
	return s, nil
}

// ParseConfig parses a TOML configuration. Unknown keys are an error.
func ParseConfig(data []byte) (*Config, error) {
	c := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("richtext: parsing config: %w", err)
	}
	return c, nil
}

// LoadConfig loads a TOML configuration file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return c, nil
}

// Apply sets the style, named styles and wrapping options of the text box.
// The text box is unchanged if the configuration is invalid.
func (c *Config) Apply(tb *TextBox) error {
	if c.Width < 0 {
		return fmt.Errorf("richtext: invalid width %g", c.Width)
	}
	base, err := c.Style.Apply(*rich.NewStyle())
	if err != nil {
		return fmt.Errorf("richtext: style: %w", err)
	}
	styles := make(map[string]rich.Style, len(c.Styles))
	for name, sc := range c.Styles {
		s, err := sc.Apply(base)
		if err != nil {
			return fmt.Errorf("richtext: style %q: %w", name, err)
		}
		styles[name] = s
	}
	tb.Style = base
	tb.Styles = styles
	tb.Options.Width = c.Width
	tb.Options.Wrap = c.Wrap
	return nil
}

// Save writes the configuration as TOML.
func (c *Config) Save(filename string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0666)
}
