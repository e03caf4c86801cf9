// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Options are the marker classification and grouping parameters.
// They are explicit and injectable so the heuristics can be tested
// against synthetic inputs and adjusted per symbol library; the zero
// value is not usable, start from [DefaultOptions]. Options round-trip
// through TOML for external configuration.
type Options struct {
	// RedColors are the stroke color encodings recognized as the red
	// process-line marker color.
	RedColors []string `toml:"red-colors"`

	// GrayColors are the stroke color encodings recognized as the
	// gray signal-line marker color.
	GrayColors []string `toml:"gray-colors"`

	// MaxMarkerStrokeWidth is the largest stroke width a non-colored
	// element may have and still classify as a marker by size.
	MaxMarkerStrokeWidth float32 `toml:"max-marker-stroke-width"`

	// PathExtent is the bound that every numeric token in a path's
	// data must stay within for the path to classify as a small
	// geometric marker.
	PathExtent float32 `toml:"path-extent"`

	// GroupThreshold is the distance in viewBox units within which
	// near-duplicate marker positions merge into one point.
	GroupThreshold float32 `toml:"group-threshold"`

	// EdgeThreshold is the distance in viewBox units within which a
	// point counts as sitting on a viewBox edge for direction
	// classification.
	EdgeThreshold float32 `toml:"edge-threshold"`

	// Precise restricts candidate selection to exact marker stroke
	// colors, skipping the size heuristic entirely.
	Precise bool `toml:"precise"`
}

// DefaultOptions returns the classification parameters for the
// standard ISO/PIP symbol libraries.
func DefaultOptions() *Options {
	return &Options{
		RedColors:            []string{"red", "#ff0000", "#f00", "rgb(255,0,0)"},
		GrayColors:           []string{"gray", "grey", "#808080"},
		MaxMarkerStrokeWidth: 1,
		PathExtent:           10,
		GroupThreshold:       5,
		EdgeThreshold:        8,
	}
}

// OpenOptions reads Options from the given TOML file.
func OpenOptions(fname string) (*Options, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	opts := DefaultOptions()
	if err := toml.Unmarshal(b, opts); err != nil {
		return nil, err
	}
	return opts, nil
}

// SaveOptions writes Options to the given TOML file.
func SaveOptions(opts *Options, fname string) error {
	b, err := toml.Marshal(opts)
	if err != nil {
		return err
	}
	return os.WriteFile(fname, b, 0666)
}

// Key returns a canonical string form of the options, used as part of
// cache keys so that extractions under different options never
// collide.
func (opts *Options) Key() string {
	return fmt.Sprintf("%s|%s|%g|%g|%g|%g|%v",
		strings.Join(opts.RedColors, ","), strings.Join(opts.GrayColors, ","),
		opts.MaxMarkerStrokeWidth, opts.PathExtent,
		opts.GroupThreshold, opts.EdgeThreshold, opts.Precise)
}

// normColor canonicalizes a color string for exact matching:
// lowercased with all spaces removed, so "RGB(255, 0, 0)" matches
// "rgb(255,0,0)".
func normColor(clr string) string {
	return strings.ReplaceAll(strings.ToLower(clr), " ", "")
}

// ColorClass classifies a stroke color string against the recognized
// marker colors, returning [ColorNone] for everything else.
func (opts *Options) ColorClass(stroke string) ColorClass {
	nc := normColor(stroke)
	if nc == "" || nc == "none" {
		return ColorNone
	}
	for _, c := range opts.RedColors {
		if nc == normColor(c) {
			return ColorRed
		}
	}
	for _, c := range opts.GrayColors {
		if nc == normColor(c) {
			return ColorGray
		}
	}
	return ColorNone
}
