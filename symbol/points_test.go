// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectionPointsEmpty(t *testing.T) {
	doc, err := DecodeString(`<svg viewBox="0 0 64 64">
		<rect x="10" y="10" width="44" height="44" stroke="black" stroke-width="2"/>
		<line x1="10" y1="32" x2="54" y2="32" stroke="#000000" stroke-width="2"/>
	</svg>`)
	assert.NoError(t, err)
	pts := doc.ConnectionPoints(nil, nil)
	assert.Empty(t, pts)
}

func TestConnectionPointsDirections(t *testing.T) {
	// one red marker per side plus one interior, in a 64x64 box with
	// the default edge threshold of 8
	doc, err := DecodeString(`<svg viewBox="0 0 64 64">
		<circle cx="0" cy="32" r="1" stroke="red"/>
		<circle cx="32" cy="0" r="1" stroke="red"/>
		<circle cx="32" cy="32" r="1" stroke="red"/>
		<circle cx="64" cy="10" r="1" stroke="red"/>
	</svg>`)
	assert.NoError(t, err)
	pts := doc.ConnectionPoints(nil, nil)
	assert.Len(t, pts, 4)

	// insertion order of first appearance is the index space
	assert.Equal(t, Left, pts[0].Direction)
	assert.Equal(t, Top, pts[1].Direction)
	assert.Equal(t, Center, pts[2].Direction)
	assert.Equal(t, Right, pts[3].Direction)

	// default process-flow policy
	assert.Equal(t, Input, pts[0].Type)
	assert.Equal(t, Output, pts[1].Type)
	assert.Equal(t, Bidirectional, pts[2].Type)
	assert.Equal(t, Output, pts[3].Type)

	for _, pt := range pts {
		assert.Equal(t, ColorRed, pt.Color)
	}
}

func TestConnectionPointsGrouping(t *testing.T) {
	// two overlapping path segments within the 5-unit threshold merge
	// into one point at the average position
	doc, err := DecodeString(`<svg viewBox="0 0 64 64">
		<path d="M 9.5 9.5 L 10.5 10.5" stroke="red"/>
		<path d="M 10 10 L 11 11" stroke="red"/>
	</svg>`)
	assert.NoError(t, err)
	pts := doc.ConnectionPoints(nil, nil)
	assert.Len(t, pts, 1)
	assert.InDelta(t, 10.25, pts[0].Pos.X, 1.0e-4)
	assert.InDelta(t, 10.25, pts[0].Pos.Y, 1.0e-4)
}

func TestConnectionPointsGroupingIdempotent(t *testing.T) {
	doc, err := DecodeString(`<svg viewBox="0 0 64 64">
		<circle cx="10" cy="10" r="1" stroke="red"/>
		<circle cx="12" cy="10" r="1" stroke="red"/>
		<circle cx="40" cy="40" r="1" stroke="red"/>
		<circle cx="41" cy="41" r="1" stroke="red"/>
	</svg>`)
	assert.NoError(t, err)
	pts := doc.ConnectionPoints(nil, nil)
	assert.Len(t, pts, 2)

	// re-extracting a document whose markers sit exactly at the
	// already-merged centroids changes nothing
	src := `<svg viewBox="0 0 64 64">`
	for _, pt := range pts {
		src += fmt.Sprintf(`<circle cx="%g" cy="%g" r="1" stroke="red"/>`, pt.Pos.X, pt.Pos.Y)
	}
	src += `</svg>`
	doc2, err := DecodeString(src)
	assert.NoError(t, err)
	pts2 := doc2.ConnectionPoints(nil, nil)
	assert.Len(t, pts2, len(pts))
	for i := range pts {
		assert.Equal(t, pts[i].Pos, pts2[i].Pos)
	}
}

func TestConnectionPointsGrayClass(t *testing.T) {
	doc, err := DecodeString(`<svg viewBox="0 0 64 64">
		<circle cx="0" cy="32" r="1" stroke="#808080"/>
	</svg>`)
	assert.NoError(t, err)
	pts := doc.ConnectionPoints(nil, nil)
	assert.Len(t, pts, 1)
	assert.Equal(t, ColorGray, pts[0].Color)
}

func TestConnectionPointsCustomPolicy(t *testing.T) {
	doc, err := DecodeString(`<svg viewBox="0 0 64 64">
		<circle cx="0" cy="32" r="1" stroke="red"/>
		<circle cx="64" cy="32" r="1" stroke="red"/>
	</svg>`)
	assert.NoError(t, err)
	everythingIn := func(d Direction) Type { return Input }
	pts := doc.ConnectionPoints(nil, everythingIn)
	assert.Len(t, pts, 2)
	assert.Equal(t, Input, pts[0].Type)
	assert.Equal(t, Input, pts[1].Type)
}

func TestPointKey(t *testing.T) {
	pt := Point{}
	pt.Pos.Set(10.4, 9.6)
	assert.Equal(t, "10,10", pt.Key())
}

func TestViewBoxFallback(t *testing.T) {
	doc, err := DecodeString(`<svg><circle cx="0" cy="32" r="1" stroke="red"/></svg>`)
	assert.NoError(t, err)
	assert.Equal(t, float32(64), doc.ViewBox.Size.X)
	assert.Equal(t, float32(64), doc.ViewBox.Size.Y)

	// direction classification runs against the fallback box
	pts := doc.ConnectionPoints(nil, nil)
	assert.Len(t, pts, 1)
	assert.Equal(t, Left, pts[0].Direction)
}
