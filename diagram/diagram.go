// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"errors"
	"fmt"
)

// ErrSelfConnection is returned when a connection's endpoints name
// the same instance.
var ErrSelfConnection = errors.New("diagram: connection endpoints must be distinct instances")

// Diagram is the canvas model: placed instances and the connections
// between them. It is single-goroutine like the editor that owns it.
type Diagram struct {
	// Depths is the T-intersection depth table applied during edge
	// routing; may be nil.
	Depths DepthTable

	instances   map[string]*Instance
	connections []*Connection
}

// NewDiagram returns an empty diagram.
func NewDiagram() *Diagram {
	return &Diagram{instances: make(map[string]*Instance)}
}

// AddInstance places the instance on the canvas. An instance with a
// duplicate id replaces the previous one.
func (dg *Diagram) AddInstance(inst *Instance) {
	dg.instances[inst.ID] = inst
}

// Instance returns the placed instance with the given id, or nil.
func (dg *Diagram) Instance(id string) *Instance {
	return dg.instances[id]
}

// NumInstances returns the number of placed instances.
func (dg *Diagram) NumInstances() int {
	return len(dg.instances)
}

// DeleteInstance removes the instance and every connection touching
// it. Deleting an unknown id is a no-op.
func (dg *Diagram) DeleteInstance(id string) {
	if _, ok := dg.instances[id]; !ok {
		return
	}
	delete(dg.instances, id)
	kept := dg.connections[:0]
	for _, c := range dg.connections {
		if c.Source.Instance == id || c.Target.Instance == id {
			continue
		}
		kept = append(kept, c)
	}
	dg.connections = kept
}

// Connect creates and registers a connection between two instances'
// connection points. The endpoints must name distinct, existing
// instances; out-of-range point indices are accepted and resolve to
// point 0.
func (dg *Diagram) Connect(srcID string, srcPt int, tgtID string, tgtPt int) (*Connection, error) {
	if srcID == tgtID {
		return nil, ErrSelfConnection
	}
	if dg.instances[srcID] == nil {
		return nil, fmt.Errorf("diagram: unknown source instance %q", srcID)
	}
	if dg.instances[tgtID] == nil {
		return nil, fmt.Errorf("diagram: unknown target instance %q", tgtID)
	}
	c := NewConnection(Endpoint{srcID, srcPt}, Endpoint{tgtID, tgtPt})
	dg.connections = append(dg.connections, c)
	return c, nil
}

// DeleteConnection removes the connection with the given id.
func (dg *Diagram) DeleteConnection(id string) {
	kept := dg.connections[:0]
	for _, c := range dg.connections {
		if c.ID == id {
			continue
		}
		kept = append(kept, c)
	}
	dg.connections = kept
}

// Connections returns the registered connections in creation order.
func (dg *Diagram) Connections() []*Connection {
	return dg.connections
}

// Edges computes the routed edge geometry for every connection whose
// endpoints still resolve, in creation order. Connections referencing
// an instance deleted since creation are silently omitted; a dangling
// edge is never produced.
func (dg *Diagram) Edges() []Edge {
	edges := make([]Edge, 0, len(dg.connections))
	for _, c := range dg.connections {
		if eg, ok := dg.Edge(c); ok {
			edges = append(edges, eg)
		}
	}
	return edges
}
