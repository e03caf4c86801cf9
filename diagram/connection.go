// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"github.com/google/uuid"
)

// RoutingMode selects how an edge path is computed between two
// connection points.
type RoutingMode int32

const (
	// Direct is a straight line between the endpoints.
	Direct RoutingMode = iota

	// Orthogonal is an axis-aligned step route.
	Orthogonal

	// Curved is a cubic curve whose control points extend along the
	// endpoint directions.
	Curved

	// Smart is an orthogonal route with stubs extending outward from
	// each endpoint before turning.
	Smart
)

func (rm RoutingMode) String() string {
	switch rm {
	case Orthogonal:
		return "orthogonal"
	case Curved:
		return "curved"
	case Smart:
		return "smart"
	}
	return "direct"
}

// RoutingModeFromString parses a routing mode name, defaulting to
// Direct for anything unrecognized.
func RoutingModeFromString(s string) RoutingMode {
	switch s {
	case "orthogonal", "step":
		return Orthogonal
	case "curved":
		return Curved
	case "smart":
		return Smart
	}
	return Direct
}

// Endpoint addresses one end of a connection: an instance and a
// connection-point index on its symbol. Indices that no longer exist
// on the symbol resolve to point 0 rather than failing.
type Endpoint struct {
	// Instance is the instance id.
	Instance string

	// Point is the connection-point index.
	Point int
}

// Connection links two placed instances' connection points. It is
// directed source-to-target for flow semantics but rendered
// bidirectionally.
type Connection struct {
	// ID uniquely identifies the connection.
	ID string

	// Source, Target are the two endpoints. Their instance ids are
	// always distinct; self-loops are rejected at creation.
	Source, Target Endpoint

	// Width is an explicit stroke width override; 0 derives the
	// width from the endpoint symbols.
	Width float32

	// Color is the stroke color for rendering, as a CSS color
	// string; empty uses the renderer default.
	Color string

	// Routing selects the path computation mode.
	Routing RoutingMode
}

// NewConnection creates a connection between the given endpoints with
// a fresh unique id and Direct routing.
func NewConnection(src, tgt Endpoint) *Connection {
	return &Connection{ID: uuid.NewString(), Source: src, Target: tgt}
}
