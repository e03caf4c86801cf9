// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"fmt"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/pidkit/pidkit/symbol"
)

// DefaultEndpointWidth is the stroke width assumed for a symbol that
// does not declare one, when averaging endpoint widths.
const DefaultEndpointWidth = 0.5

// smartStub is the distance a Smart route extends outward from each
// endpoint before turning.
const smartStub = 12

// DepthKey addresses one connection point of one symbol in a
// [DepthTable].
type DepthKey struct {
	// Symbol is the symbol path, as in [symbol.Symbol.Path].
	Symbol string

	// Point is the connection-point index.
	Point int
}

// DepthTable carries per-point T-intersection depths, in viewBox
// units. Some pipe and signal-line symbols draw a connection marker
// as a T-shaped junction; the depth nudges the edge endpoint inward
// along the point's direction so the line terminates at the T's stem
// instead of overlapping its cross-bar. This is symbol-specific
// auxiliary data curated alongside the symbol library.
type DepthTable map[DepthKey]float32

// Edge is the routed geometry for one connection, ready for the
// rendering layer.
type Edge struct {
	// Connection is the id of the connection this edge renders.
	Connection string

	// Points are the route waypoints in canvas space. For Curved
	// routing they are start, two cubic control points, end.
	Points []math32.Vector2

	// Path is the route as an SVG path string.
	Path string

	// Width is the effective stroke width.
	Width float32

	// Color is the stroke color, empty for the renderer default.
	Color string

	// Routing is the mode the path was computed with.
	Routing RoutingMode
}

// inward returns the unit vector pointing from a connection point
// toward the symbol interior, zero for center points.
func inward(d symbol.Direction) math32.Vector2 {
	switch d {
	case symbol.Top:
		return math32.Vec2(0, 1)
	case symbol.Bottom:
		return math32.Vec2(0, -1)
	case symbol.Left:
		return math32.Vec2(1, 0)
	case symbol.Right:
		return math32.Vec2(-1, 0)
	}
	return math32.Vector2{}
}

// endpointPos resolves the canvas position for a connection endpoint
// on the given instance, applying any T-intersection depth for that
// (symbol, point), scaled to the instance's display size.
func (dg *Diagram) endpointPos(inst *Instance, idx int) (math32.Vector2, symbol.Direction) {
	pos := inst.CanvasPoint(idx)
	pt, ok := inst.Point(idx)
	if !ok {
		return pos, symbol.Center
	}
	if depth := dg.Depths[DepthKey{inst.Symbol.Path, idx}]; depth != 0 {
		in := inward(pt.Direction)
		sc := inst.scale()
		pos.X += in.X * depth * sc.X
		pos.Y += in.Y * depth * sc.Y
	}
	return pos, pt.Direction
}

// EdgeWidth returns the effective stroke width for an edge between
// the two symbols: the arithmetic mean of their representative stroke
// widths, each defaulting to [DefaultEndpointWidth] when unset, so
// neither endpoint's style visually dominates.
func EdgeWidth(src, tgt *symbol.Symbol) float32 {
	sw := src.StrokeWidth
	if sw <= 0 {
		sw = DefaultEndpointWidth
	}
	tw := tgt.StrokeWidth
	if tw <= 0 {
		tw = DefaultEndpointWidth
	}
	return (sw + tw) / 2
}

// Edge computes the routed geometry for one connection. ok is false
// when either endpoint instance no longer exists; such connections
// produce no edge rather than a dangling one.
func (dg *Diagram) Edge(c *Connection) (Edge, bool) {
	src := dg.instances[c.Source.Instance]
	tgt := dg.instances[c.Target.Instance]
	if src == nil || tgt == nil || c.Source.Instance == c.Target.Instance {
		return Edge{}, false
	}
	spos, sdir := dg.endpointPos(src, c.Source.Point)
	tpos, tdir := dg.endpointPos(tgt, c.Target.Point)

	eg := Edge{Connection: c.ID, Color: c.Color, Routing: c.Routing}
	eg.Width = c.Width
	if eg.Width <= 0 {
		eg.Width = EdgeWidth(src.Symbol, tgt.Symbol)
	}
	switch c.Routing {
	case Orthogonal:
		eg.Points = routeOrthogonal(spos, tpos, sdir)
	case Curved:
		eg.Points = routeCurved(spos, tpos, sdir, tdir)
	case Smart:
		eg.Points = routeSmart(spos, tpos, sdir, tdir)
	default:
		eg.Points = []math32.Vector2{spos, tpos}
	}
	eg.Path = pathString(eg.Points, c.Routing == Curved)
	return eg, true
}

// horizontalFirst decides the leading axis of a step route from the
// source point's direction; center points follow the dominant delta.
func horizontalFirst(s, t math32.Vector2, sdir symbol.Direction) bool {
	switch sdir {
	case symbol.Left, symbol.Right:
		return true
	case symbol.Top, symbol.Bottom:
		return false
	}
	return math32.Abs(t.X-s.X) >= math32.Abs(t.Y-s.Y)
}

// routeOrthogonal computes an axis-aligned step route with a single
// midline elbow.
func routeOrthogonal(s, t math32.Vector2, sdir symbol.Direction) []math32.Vector2 {
	if horizontalFirst(s, t, sdir) {
		mx := (s.X + t.X) / 2
		return dedupe(s, math32.Vec2(mx, s.Y), math32.Vec2(mx, t.Y), t)
	}
	my := (s.Y + t.Y) / 2
	return dedupe(s, math32.Vec2(s.X, my), math32.Vec2(t.X, my), t)
}

// routeSmart extends a stub outward from each endpoint along its
// direction, then steps orthogonally between the stub ends.
func routeSmart(s, t math32.Vector2, sdir, tdir symbol.Direction) []math32.Vector2 {
	a := s.Sub(inward(sdir).MulScalar(smartStub))
	b := t.Sub(inward(tdir).MulScalar(smartStub))
	mid := routeOrthogonal(a, b, sdir)
	pts := make([]math32.Vector2, 0, len(mid)+2)
	pts = append(pts, s)
	pts = append(pts, mid...)
	pts = append(pts, t)
	return dedupe(pts...)
}

// routeCurved computes a cubic whose control points extend outward
// from the endpoints; center points curve toward each other.
func routeCurved(s, t math32.Vector2, sdir, tdir symbol.Direction) []math32.Vector2 {
	ext := math32.Max(40, s.DistanceTo(t)/3)
	c1 := s.Sub(inward(sdir).MulScalar(ext))
	c2 := t.Sub(inward(tdir).MulScalar(ext))
	if sdir == symbol.Center {
		c1 = s.Add(t.Sub(s).MulScalar(1.0 / 3))
	}
	if tdir == symbol.Center {
		c2 = t.Add(s.Sub(t).MulScalar(1.0 / 3))
	}
	return []math32.Vector2{s, c1, c2, t}
}

// dedupe drops consecutive duplicate waypoints.
func dedupe(pts ...math32.Vector2) []math32.Vector2 {
	out := pts[:1]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// pathString renders waypoints as an SVG path string: a polyline, or
// a single cubic when curved.
func pathString(pts []math32.Vector2, curved bool) string {
	if len(pts) == 0 {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "M %g %g", pts[0].X, pts[0].Y)
	if curved && len(pts) == 4 {
		fmt.Fprintf(&sb, " C %g %g, %g %g, %g %g",
			pts[1].X, pts[1].Y, pts[2].X, pts[2].Y, pts[3].X, pts[3].Y)
		return sb.String()
	}
	for _, p := range pts[1:] {
		fmt.Fprintf(&sb, " L %g %g", p.X, p.Y)
	}
	return sb.String()
}
