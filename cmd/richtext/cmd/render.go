// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"log/slog"
	"os"

	"cogentcore.org/richtext/base/iox/imagex"
	"cogentcore.org/richtext/colors"
	"cogentcore.org/richtext/text/render"
	"cogentcore.org/richtext/text/shaped/shapedcell"
	"cogentcore.org/richtext/text/shaped/shapedgt"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func (app *App) renderCmd() *cobra.Command {
	var out, bg string
	var pad int
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render the text to an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bgc, err := colors.FromString(bg)
			if err != nil {
				return err
			}
			fonts := shapedgt.NewProvider()
			tb, err := app.TextBox(args[0], fonts)
			if err != nil {
				return err
			}
			tb.Layout()
			img, err := render.Image(tb, fonts, pad, bgc)
			if err != nil {
				slog.Warn("richtext: some text could not be drawn", "err", err)
			}
			if err := imagex.Save(img, out); err != nil {
				return err
			}
			slog.Info("richtext: rendered", "file", out, "size", img.Bounds().Size())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "richtext.png", "output image file (png, jpeg, gif, tiff or bmp)")
	cmd.Flags().StringVar(&bg, "bg", "black", "background color")
	cmd.Flags().IntVar(&pad, "pad", 8, "padding around the text in pixels")
	return cmd
}

func (app *App) termCmd() *cobra.Command {
	var eastAsian bool
	cmd := &cobra.Command{
		Use:   "term FILE",
		Short: "Preview the text in the terminal, in character cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tb, err := app.TextBox(args[0], shapedcell.NewProvider(eastAsian))
			if err != nil {
				return err
			}
			tb.Layout()
			return render.WriteTerminal(cmd.OutOrStdout(), tb, termProfile(cmd))
		},
	}
	cmd.Flags().BoolVar(&eastAsian, "east-asian", false, "treat ambiguous width characters as two cells wide")
	return cmd
}

// termProfile returns the color profile of standard output,
// or plain text when output is redirected.
func termProfile(cmd *cobra.Command) termenv.Profile {
	if cmd.OutOrStdout() != os.Stdout || !isatty.IsTerminal(os.Stdout.Fd()) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}
