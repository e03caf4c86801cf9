// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Direction is the side of the symbol a connection point sits on.
type Direction int32

const (
	// Center is anywhere not within the edge threshold of a side.
	Center Direction = iota

	// Top is within threshold of the top viewBox edge.
	Top

	// Bottom is within threshold of the bottom viewBox edge.
	Bottom

	// Left is within threshold of the left viewBox edge.
	Left

	// Right is within threshold of the right viewBox edge.
	Right
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "center"
}

// Type is the inferred flow type of a connection point.
type Type int32

const (
	// Bidirectional points accept flow in either direction.
	Bidirectional Type = iota

	// Input points receive flow.
	Input

	// Output points emit flow.
	Output
)

func (t Type) String() string {
	switch t {
	case Input:
		return "input"
	case Output:
		return "output"
	}
	return "bidirectional"
}

// FlowPolicy maps a connection point's direction to its inferred flow
// type. It is a swappable policy because any such mapping encodes a
// drawing convention, not a universal truth.
type FlowPolicy func(d Direction) Type

// ProcessFlow is the default [FlowPolicy], encoding the left-to-right
// process-flow convention of the standard symbol libraries: feeds
// enter on the left, products leave on the right, top and bottom
// nozzles are treated as outlets, and interior points are
// bidirectional.
func ProcessFlow(d Direction) Type {
	switch d {
	case Left:
		return Input
	case Top, Bottom, Right:
		return Output
	}
	return Bidirectional
}

// Point is one extracted connection point, in the symbol's local
// viewBox coordinate space.
type Point struct {
	// Pos is the position in viewBox units.
	Pos math32.Vector2

	// Color is the marker color class that produced the point.
	Color ColorClass

	// Direction is the side of the symbol the point sits on.
	Direction Direction

	// Type is the inferred flow type, per the extraction policy.
	Type Type
}

// Key returns a canonical identity for the point: its position
// rounded to the nearest viewBox unit. Connections address points by
// positional index within one extraction pass; the key is the stable
// identity to persist when extraction order may change across symbol
// library revisions.
func (pt *Point) Key() string {
	return fmt.Sprintf("%g,%g", math32.Round(pt.Pos.X), math32.Round(pt.Pos.Y))
}

// pointGroup accumulates near-duplicate marker positions; symbols
// commonly draw two overlapping path segments per physical connection
// point.
type pointGroup struct {
	sum   math32.Vector2
	n     int
	color ColorClass
}

func (pg *pointGroup) centroid() math32.Vector2 {
	return pg.sum.MulScalar(1 / float32(pg.n))
}

// ConnectionPoints scans the document for marker elements and returns
// the symbol's connection points, in insertion order of first
// appearance. nil opts uses [DefaultOptions]; nil policy uses
// [ProcessFlow]. A document with no markers yields an empty list;
// there is no error path.
func (doc *Document) ConnectionPoints(opts *Options, policy FlowPolicy) []Point {
	if opts == nil {
		opts = DefaultOptions()
	}
	if policy == nil {
		policy = ProcessFlow
	}
	var groups []*pointGroup
	doc.WalkDown(func(el *Element) bool {
		if !opts.IsMarker(el) {
			return true
		}
		pos := AbsolutePosition(el)
		color := opts.ColorClass(el.Stroke)
		for _, pg := range groups {
			if pos.DistanceTo(pg.centroid()) <= opts.GroupThreshold {
				pg.sum.SetAdd(pos)
				pg.n++
				if pg.color == ColorNone {
					pg.color = color
				}
				return true
			}
		}
		groups = append(groups, &pointGroup{sum: pos, n: 1, color: color})
		return true
	})
	pts := make([]Point, len(groups))
	for i, pg := range groups {
		pos := pg.centroid()
		dir := doc.direction(pos, opts.EdgeThreshold)
		pts[i] = Point{Pos: pos, Color: pg.color, Direction: dir, Type: policy(dir)}
	}
	return pts
}

// direction classifies a position against the viewBox bounds: the
// nearest edge within the threshold wins, otherwise Center. Ties go
// left, right, top, bottom, deterministically.
func (doc *Document) direction(pos math32.Vector2, threshold float32) Direction {
	bb := doc.ViewBox.Box2()
	dists := [4]float32{
		pos.X - bb.Min.X, // Left
		bb.Max.X - pos.X, // Right
		pos.Y - bb.Min.Y, // Top
		bb.Max.Y - pos.Y, // Bottom
	}
	dirs := [4]Direction{Left, Right, Top, Bottom}
	best := Center
	bestDist := threshold
	for i, d := range dists {
		if d <= threshold && (best == Center || d < bestDist) {
			best = dirs[i]
			bestDist = d
		}
	}
	return best
}
