// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the command definitions for the richtext tool.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/richtext/base/logx"
	"cogentcore.org/richtext/text/richtext"
	"cogentcore.org/richtext/text/shaped"
	"github.com/spf13/cobra"
)

// App holds the flags shared by all commands.
type App struct {

	// Config is the TOML configuration file.
	Config string

	// Width overrides the configured wrap width when positive.
	Width float32

	// Wrap overrides the configured wrap mode when set.
	Wrap string

	// Verbose and Debug raise the log level.
	Verbose, Debug bool
}

// NewRoot returns the root command with all subcommands.
func NewRoot() *cobra.Command {
	app := &App{}
	root := &cobra.Command{
		Use:           "richtext",
		Short:         "Lay out and render rich text markup",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(app.Debug, app.Verbose, false)
			logx.InitLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&app.Config, "config", "c", "", "TOML configuration file")
	pf.Float32VarP(&app.Width, "width", "w", 0, "wrap width, overriding the configuration")
	pf.StringVar(&app.Wrap, "wrap", "", "wrap mode (none, words, chars), overriding the configuration")
	pf.BoolVarP(&app.Verbose, "verbose", "v", false, "log info messages")
	pf.BoolVar(&app.Debug, "debug", false, "log debug messages")

	root.AddCommand(app.layoutCmd(), app.renderCmd(), app.termCmd(), app.watchCmd())
	return root
}

// TextBox reads the markup file and returns a text box configured from
// the flags, using the given fonts. It does not lay it out.
func (app *App) TextBox(filename string, fonts shaped.FontProvider) (*richtext.TextBox, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	tb := richtext.NewTextBox(string(src), fonts)
	if app.Config != "" {
		c, err := richtext.LoadConfig(app.Config)
		if err != nil {
			return nil, err
		}
		if err := c.Apply(tb); err != nil {
			return nil, fmt.Errorf("%s: %w", app.Config, err)
		}
	}
	if app.Width > 0 {
		tb.Options.Width = app.Width
		if tb.Options.Wrap == shaped.WrapNone {
			tb.Options.Wrap = shaped.WrapWords
		}
	}
	if app.Wrap != "" {
		if err := tb.Options.Wrap.SetString(app.Wrap); err != nil {
			return nil, err
		}
	}
	slog.Debug("richtext: loaded", "file", filename, "runes", len(tb.Text), "options", tb.Options)
	return tb, nil
}
