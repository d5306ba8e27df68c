// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/richtext/base/errors"
	"cogentcore.org/richtext/text/shaped/shapedgt"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func (app *App) watchCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the text blocks again each time the file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fonts := shapedgt.NewProvider()
			run := func() {
				tb, err := app.TextBox(args[0], fonts)
				if errors.Log(err) != nil {
					return
				}
				tb.Layout()
				errors.Log(WriteBlocks(cmd.OutOrStdout(), tb, format))
			}
			return Watch(cmd.Context(), cmd.OutOrStdout(), args[0], run)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or yaml")
	return cmd
}

// Watch calls run once and then each time the given file is written or
// replaced, until the context is done. The directory of the file is
// watched, so that editors that save by renaming are handled.
func Watch(ctx context.Context, w io.Writer, filename string, run func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	run()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("richtext: file changed", "file", event.Name, "op", event.Op)
			fmt.Fprintln(w, "---")
			run()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
