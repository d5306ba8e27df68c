// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"cogentcore.org/richtext/text/richtext"
	"cogentcore.org/richtext/text/shaped/shapedgt"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// BlockRecord is the printed form of a text block.
type BlockRecord struct {
	Index  int        `yaml:"index"`
	Range  [2]int     `yaml:"range,flow"`
	Bounds [4]float32 `yaml:"bounds,flow"`
	Style  string     `yaml:"style"`
	Text   string     `yaml:"text"`
}

// Records returns the printed form of the blocks of the text box.
func Records(tb *richtext.TextBox) []BlockRecord {
	recs := make([]BlockRecord, len(tb.Blocks))
	for i, blk := range tb.Blocks {
		b := blk.Bounds
		recs[i] = BlockRecord{
			Index:  i,
			Range:  [2]int{blk.Range.Start, blk.Range.End},
			Bounds: [4]float32{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y},
			Style:  blk.Style.String(),
			Text:   tb.BlockText(i),
		}
	}
	return recs
}

// WriteBlocks writes the blocks of the text box in the given format,
// "table" or "yaml".
func WriteBlocks(w io.Writer, tb *richtext.TextBox, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Records(tb)); err != nil {
			return err
		}
		return enc.Close()
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "#\trange\tbounds\tstyle\ttext")
		for _, r := range Records(tb) {
			fmt.Fprintf(tw, "%d\t[%d,%d)\t(%g, %g)-(%g, %g)\t%s\t%q\n", r.Index, r.Range[0], r.Range[1],
				r.Bounds[0], r.Bounds[1], r.Bounds[2], r.Bounds[3], r.Style, r.Text)
		}
		size := tb.Size()
		fmt.Fprintf(tw, "size: (%g, %g)\tcaret: %v\n", size.X, size.Y, tb.Caret)
		return tw.Flush()
	}
	return fmt.Errorf("unknown format %q", format)
}

func (app *App) layoutCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Print the laid out text blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tb, err := app.TextBox(args[0], shapedgt.NewProvider())
			if err != nil {
				return err
			}
			tb.Layout()
			return WriteBlocks(cmd.OutOrStdout(), tb, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or yaml")
	return cmd
}
