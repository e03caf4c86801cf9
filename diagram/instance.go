// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram models the canvas of a P&ID editor at the geometry
// level: symbol instances placed at a position and size, connections
// between their connection points, and the routed edge paths that a
// renderer draws. It consumes extraction results from
// [github.com/pidkit/pidkit/symbol] and produces path data; rendering
// itself and diagram persistence belong to the consuming application.
package diagram

import (
	"cogentcore.org/core/math32"
	"github.com/google/uuid"

	"github.com/pidkit/pidkit/symbol"
)

// Instance is one placed copy of a symbol on the diagram canvas.
//
// Pos is always the top-left corner of the placed bounds. This is the
// one canonical origin convention throughout this package; anything
// that thinks in centers (drop targets, property panels) converts at
// the boundary via [Instance.Center] and [Instance.SetCenter].
type Instance struct {
	// ID uniquely identifies the instance on the canvas.
	ID string

	// Symbol is the placed symbol's extraction results.
	Symbol *symbol.Symbol

	// Pos is the top-left placement origin on the canvas.
	Pos math32.Vector2

	// Size is the display size on the canvas.
	Size math32.Vector2

	// Rotation is the display rotation in degrees. It does not
	// affect connection-point mapping; rotation is applied by the
	// renderer on top of the mapped geometry.
	Rotation float32

	// FlipX, FlipY are the display mirror flags; render-time only,
	// like Rotation.
	FlipX, FlipY bool

	// canvas is the cached canvas-space connection points,
	// recomputed lazily after any geometry change.
	canvas []math32.Vector2
}

// NewInstance places a symbol at the given top-left position and
// display size, assigning a fresh unique id.
func NewInstance(sym *symbol.Symbol, pos, size math32.Vector2) *Instance {
	return &Instance{ID: uuid.NewString(), Symbol: sym, Pos: pos, Size: size}
}

// Center returns the center of the placed bounds.
func (inst *Instance) Center() math32.Vector2 {
	return inst.Pos.Add(inst.Size.MulScalar(0.5))
}

// SetCenter positions the instance so its bounds center at the given
// canvas point.
func (inst *Instance) SetCenter(c math32.Vector2) {
	inst.SetPos(c.Sub(inst.Size.MulScalar(0.5)))
}

// SetPos moves the instance, invalidating cached canvas points.
func (inst *Instance) SetPos(pos math32.Vector2) {
	inst.Pos = pos
	inst.canvas = nil
}

// SetSize resizes the instance, invalidating cached canvas points.
func (inst *Instance) SetSize(sz math32.Vector2) {
	inst.Size = sz
	inst.canvas = nil
}

// SetRotation rotates the instance, invalidating cached canvas
// points.
func (inst *Instance) SetRotation(deg float32) {
	inst.Rotation = deg
	inst.canvas = nil
}

// scale returns the viewBox-to-display scale factors.
func (inst *Instance) scale() math32.Vector2 {
	vb := inst.Symbol.ViewBox.Size
	if vb.X <= 0 || vb.Y <= 0 {
		vb.Set(symbol.DefaultViewBoxSize, symbol.DefaultViewBoxSize)
	}
	return inst.Size.Div(vb)
}

// CanvasPoints returns the instance's connection points mapped to
// canvas space, computing and caching them on first use after any
// geometry change. Rotation and flips are not applied; they are a
// rendering concern layered on top.
func (inst *Instance) CanvasPoints() []math32.Vector2 {
	if inst.canvas != nil {
		return inst.canvas
	}
	sc := inst.scale()
	vb := &inst.Symbol.ViewBox
	pts := make([]math32.Vector2, len(inst.Symbol.Points))
	for i, pt := range inst.Symbol.Points {
		pts[i] = inst.Pos.Add(pt.Pos.Sub(vb.Min).Mul(sc))
	}
	inst.canvas = pts
	return pts
}

// CanvasPoint returns the canvas position of the connection point at
// the given index. An out-of-range index falls back to point 0, per
// the connection contract; an instance whose symbol has no points at
// all yields the bounds center.
func (inst *Instance) CanvasPoint(i int) math32.Vector2 {
	pts := inst.CanvasPoints()
	if len(pts) == 0 {
		return inst.Center()
	}
	if i < 0 || i >= len(pts) {
		i = 0
	}
	return pts[i]
}

// Point returns the local connection point metadata at the given
// index, with the same out-of-range fallback as [Instance.CanvasPoint].
func (inst *Instance) Point(i int) (symbol.Point, bool) {
	pts := inst.Symbol.Points
	if len(pts) == 0 {
		return symbol.Point{}, false
	}
	if i < 0 || i >= len(pts) {
		i = 0
	}
	return pts[i], true
}

// LocalFromCanvas maps a canvas point back into the symbol's local
// viewBox space, the inverse of the [Instance.CanvasPoints] mapping.
func (inst *Instance) LocalFromCanvas(pt math32.Vector2) math32.Vector2 {
	sc := inst.scale()
	return pt.Sub(inst.Pos).Div(sc).Add(inst.Symbol.ViewBox.Min)
}
