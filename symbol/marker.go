// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import "cogentcore.org/core/math32"

// ColorClass is the marker color classification of an element or
// connection point.
type ColorClass int32

const (
	// ColorNone is not a recognized marker color.
	ColorNone ColorClass = iota

	// ColorRed is the red process-line marker color.
	ColorRed

	// ColorGray is the gray signal-line marker color.
	ColorGray
)

func (cc ColorClass) String() string {
	switch cc {
	case ColorRed:
		return "red"
	case ColorGray:
		return "gray"
	}
	return "none"
}

// IsMarker reports whether the element is judged to be a connection
// marker: its stroke color is one of the recognized marker colors, or
// it is small unstroked geometry (stroke width within
// MaxMarkerStrokeWidth and, for paths, every numeric token of the
// path data within PathExtent). The size rule is a heuristic; a
// misclassification degrades point quality but is never an error.
// Group and container elements never classify as markers.
func (opts *Options) IsMarker(el *Element) bool {
	if el.IsGroup() || el.Tag == "defs" || el.Tag == "style" || el.Tag == "metadata" {
		return false
	}
	if opts.ColorClass(el.Stroke) != ColorNone {
		return true
	}
	if opts.Precise {
		return false
	}
	if el.StrokeWidth > opts.MaxMarkerStrokeWidth {
		return false
	}
	if el.Tag == "path" {
		nums := PathNumbers(el.Data)
		if len(nums) == 0 {
			return false
		}
		for _, n := range nums {
			if n > opts.PathExtent || n < -opts.PathExtent {
				return false
			}
		}
		return true
	}
	return false
}

// PathNumbers parses every numeric token out of SVG path data,
// skipping command letters and separators. Exponents and leading
// signs are handled; anything unparsable simply ends the current
// token. The full path grammar is not enforced; this only needs the
// magnitudes of the coordinates.
func PathNumbers(data string) []float32 {
	var nums []float32
	n := len(data)
	i := 0
	for i < n {
		c := data[i]
		if !numStart(c) {
			i++
			continue
		}
		start := i
		seenDot := c == '.'
		seenExp := false
		i++
	token:
		for i < n {
			c = data[i]
			switch {
			case c >= '0' && c <= '9':
			case c == '.' && !seenDot && !seenExp:
				// a second dot starts a new number, per SVG shorthand
				seenDot = true
			case (c == 'e' || c == 'E') && !seenExp:
				seenExp = true
			case (c == '-' || c == '+') && (data[i-1] == 'e' || data[i-1] == 'E'):
			default:
				break token
			}
			i++
		}
		f, err := math32.ParseFloat32(data[start:i])
		if err == nil {
			nums = append(nums, f)
		}
	}
	return nums
}

func numStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}
