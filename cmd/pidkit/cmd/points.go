// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pidkit/pidkit/symbol"
)

var pointsCmd = &cobra.Command{
	Use:   "points <svg-file>...",
	Short: "Extract connection points from symbol SVG files",
	Long: `Parse each symbol SVG file, locate its connection markers, and print
the extracted connection points as JSON.

Examples:
  pidkit points valve.svg
  pidkit points --precise --options cfg.toml symbols/*.svg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPoints,
}

func init() {
	rootCmd.AddCommand(pointsCmd)
}

// pointJSON is the output form of one connection point.
type pointJSON struct {
	X         float32 `json:"x"`
	Y         float32 `json:"y"`
	Color     string  `json:"color"`
	Direction string  `json:"direction"`
	Type      string  `json:"type"`
	Key       string  `json:"key"`
}

// symbolJSON is the output form of one symbol file.
type symbolJSON struct {
	File        string      `json:"file"`
	ViewBox     [4]float32  `json:"viewBox"`
	StrokeWidth float32     `json:"strokeWidth,omitempty"`
	Points      []pointJSON `json:"points"`
}

func runPoints(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}
	out := make([]symbolJSON, 0, len(args))
	for _, fname := range args {
		dir, base := filepath.Split(fname)
		if dir == "" {
			dir = "."
		}
		doc, err := symbol.Open(os.DirFS(dir), base)
		if doc == nil {
			return err
		}
		if err != nil {
			slog.Warn("partial parse", "file", fname, "err", err)
		}
		sym := doc.Symbol(opts, nil)
		sj := symbolJSON{
			File: fname,
			ViewBox: [4]float32{
				sym.ViewBox.Min.X, sym.ViewBox.Min.Y,
				sym.ViewBox.Size.X, sym.ViewBox.Size.Y,
			},
			StrokeWidth: sym.StrokeWidth,
			Points:      make([]pointJSON, len(sym.Points)),
		}
		for i, pt := range sym.Points {
			sj.Points[i] = pointJSON{
				X:         pt.Pos.X,
				Y:         pt.Pos.Y,
				Color:     pt.Color.String(),
				Direction: pt.Direction.String(),
				Type:      pt.Type.String(),
				Key:       pt.Key(),
			}
		}
		out = append(out, sj)
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
