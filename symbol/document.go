// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbol parses P&ID symbol SVG sources and extracts their
// connection points: the designated locations where a pipe or signal
// line may attach. Symbol authors encode connection points as small
// marker elements, by stroke color (red, or a specific gray for
// signal-line symbols) or by small near-unstroked geometry; this
// package locates those markers, resolves their positions through any
// nested group transforms, and classifies each resulting point with a
// direction and flow type.
package symbol

import (
	"cogentcore.org/core/math32"
)

// DefaultViewBoxSize is the fallback viewBox dimension used when a
// symbol SVG does not declare a parseable viewBox. The standard symbol
// libraries are authored in a 64x64 unit space, so this is a library
// convention, not an arbitrary default.
const DefaultViewBoxSize = 64

// ViewBox defines the local coordinate system that a symbol's
// geometry is expressed in.
type ViewBox struct {
	// Min is the offset or starting point of the viewBox.
	Min math32.Vector2

	// Size is the size of the viewBox.
	Size math32.Vector2
}

// Defaults sets the viewBox to the standard 0 0 64 64 symbol space.
func (vb *ViewBox) Defaults() {
	vb.Min.Set(0, 0)
	vb.Size.Set(DefaultViewBoxSize, DefaultViewBoxSize)
}

// SetString sets the viewBox from an SVG viewBox attribute value.
// Anything that does not parse as 4 numbers leaves the defaults in
// place and returns false.
func (vb *ViewBox) SetString(s string) bool {
	pts := math32.ReadPoints(s)
	if len(pts) != 4 || pts[2] <= 0 || pts[3] <= 0 {
		return false
	}
	vb.Min.Set(pts[0], pts[1])
	vb.Size.Set(pts[2], pts[3])
	return true
}

// Box2 returns the viewBox as a [math32.Box2].
func (vb *ViewBox) Box2() math32.Box2 {
	return math32.Box2{Min: vb.Min, Max: vb.Min.Add(vb.Size)}
}

// Element is one element within a parsed symbol document. Only the
// attributes relevant to marker detection and position resolution are
// retained; presentation attributes that play no role in connection
// geometry are dropped during decoding.
type Element struct {
	// Tag is the local XML tag name (g, path, circle, etc).
	Tag string

	// ID is the id attribute, if any.
	ID string

	// Stroke is the stroke color as written in the source, either
	// from the stroke attribute or a style declaration.
	Stroke string

	// StrokeWidth is the explicit stroke width; 0 when not specified
	// (the SVG rendering default of 1 then applies).
	StrokeWidth float32

	// Fill is the fill color as written in the source.
	Fill string

	// Transform is the raw transform attribute value, if any.
	Transform string

	// Data is the raw path data (d attribute) for path elements.
	Data string

	// Pos is the element position: x,y for rect, cx,cy for
	// circle/ellipse, x1,y1 for line.
	Pos math32.Vector2

	// End is the x2,y2 endpoint for line elements.
	End math32.Vector2

	// Size is the width,height for rect elements.
	Size math32.Vector2

	// Radii is the r or rx,ry radius for circle/ellipse elements.
	Radii math32.Vector2

	// Points is the parsed points list for polyline/polygon elements.
	Points []math32.Vector2

	// Parent is the enclosing element; nil at the root.
	Parent *Element

	// Children are the contained elements, in document order.
	Children []*Element
}

// IsGroup returns true for container elements whose transforms
// accumulate onto their descendants during position resolution.
func (el *Element) IsGroup() bool {
	return el.Tag == "g" || el.Tag == "svg"
}

// Anchor returns the element's intrinsic local position before any
// transforms are applied: the center for circles, ellipses and rects,
// the midpoint for lines, the centroid for polylines and polygons,
// and the center of the coordinate bounding box for path data.
// Elements without intrinsic geometry anchor at the local origin.
func (el *Element) Anchor() math32.Vector2 {
	switch el.Tag {
	case "circle", "ellipse":
		return el.Pos
	case "rect":
		return el.Pos.Add(el.Size.MulScalar(0.5))
	case "line":
		return el.Pos.Add(el.End).MulScalar(0.5)
	case "polyline", "polygon":
		if len(el.Points) == 0 {
			return math32.Vector2{}
		}
		var sum math32.Vector2
		for _, p := range el.Points {
			sum.SetAdd(p)
		}
		return sum.MulScalar(1 / float32(len(el.Points)))
	case "path":
		nums := PathNumbers(el.Data)
		if len(nums) < 2 {
			return math32.Vector2{}
		}
		bb := math32.B2Empty()
		for i := 0; i+1 < len(nums); i += 2 {
			bb.ExpandByPoint(math32.Vec2(nums[i], nums[i+1]))
		}
		return bb.Min.Add(bb.Max).MulScalar(0.5)
	}
	return math32.Vector2{}
}

// Document is the parsed representation of one symbol's SVG source.
// It is immutable once decoded and owned by the extraction pass; it is
// not a general-purpose SVG scenegraph.
type Document struct {
	// Name is the name of the symbol, e.g., the filename it was
	// loaded from.
	Name string

	// ViewBox defines the symbol's local coordinate system.
	// Defaults to 0 0 64 64 when the source does not declare one.
	ViewBox ViewBox

	// Root is the root svg element.
	Root *Element

	// StrokeWidth is the representative stroke width of the symbol's
	// drawn (non-marker) geometry, used for edge styling.
	// 0 when no drawn element declares one.
	StrokeWidth float32

	// elements is every decoded element in document order.
	elements []*Element
}

// WalkDown calls fun on every element in document order, recursing
// into children. It returns immediately if fun returns false.
func (doc *Document) WalkDown(fun func(el *Element) bool) {
	for _, el := range doc.elements {
		if !fun(el) {
			return
		}
	}
}

// NumElements returns the number of decoded elements.
func (doc *Document) NumElements() int {
	return len(doc.elements)
}
