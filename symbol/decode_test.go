// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	doc, err := DecodeString(`<svg viewBox="0 0 100 50">
		<g id="body" transform="translate(10,10)">
			<rect x="0" y="0" width="30" height="30" stroke="black" stroke-width="2"/>
			<circle cx="5" cy="5" r="2" stroke="red"/>
		</g>
		<path d="M 0 0 L 10 10" style="stroke:#808080;stroke-width:0.5"/>
	</svg>`)
	assert.NoError(t, err)
	assert.Equal(t, math32.Vec2(100, 50), doc.ViewBox.Size)

	g := findTag(doc, "g")
	assert.NotNil(t, g)
	assert.Equal(t, "body", g.ID)
	assert.Equal(t, "translate(10,10)", g.Transform)
	assert.Len(t, g.Children, 2)

	rect := findTag(doc, "rect")
	assert.NotNil(t, rect)
	assert.Equal(t, math32.Vec2(30, 30), rect.Size)
	assert.Equal(t, float32(2), rect.StrokeWidth)
	assert.Equal(t, g, rect.Parent)

	// style declarations feed stroke classification like attributes
	path := findTag(doc, "path")
	assert.NotNil(t, path)
	assert.Equal(t, "#808080", path.Stroke)
	assert.Equal(t, float32(0.5), path.StrokeWidth)

	// representative drawn stroke width skips marker-colored elements
	assert.Equal(t, float32(2), doc.StrokeWidth)
}

func TestDecodeMalformed(t *testing.T) {
	// unclosed elements and unknown tags parse best-effort
	doc, err := DecodeString(`<svg viewBox="garbage">
		<whatever><circle cx="1" cy="2" r="1" stroke="red">
	</svg>`)
	assert.NoError(t, err)
	assert.Equal(t, math32.Vec2(64, 64), doc.ViewBox.Size)
	circle := findTag(doc, "circle")
	assert.NotNil(t, circle)
	assert.Equal(t, math32.Vec2(1, 2), circle.Pos)
}

func TestDecodeNotXML(t *testing.T) {
	doc, err := DecodeString(`this is not svg at all`)
	assert.NotNil(t, doc)
	assert.NoError(t, err) // plain char data simply yields no elements
	assert.Empty(t, doc.ConnectionPoints(nil, nil))
}

func TestElementAnchor(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want math32.Vector2
	}{
		{
			name: "circle center",
			el:   Element{Tag: "circle", Pos: math32.Vec2(3, 4)},
			want: math32.Vec2(3, 4),
		},
		{
			name: "rect center",
			el:   Element{Tag: "rect", Pos: math32.Vec2(10, 10), Size: math32.Vec2(4, 6)},
			want: math32.Vec2(12, 13),
		},
		{
			name: "line midpoint",
			el:   Element{Tag: "line", Pos: math32.Vec2(0, 0), End: math32.Vec2(10, 20)},
			want: math32.Vec2(5, 10),
		},
		{
			name: "polyline centroid",
			el: Element{Tag: "polyline", Points: []math32.Vector2{
				math32.Vec2(0, 0), math32.Vec2(6, 0), math32.Vec2(3, 3),
			}},
			want: math32.Vec2(3, 1),
		},
		{
			name: "path bbox center",
			el:   Element{Tag: "path", Data: "M 0 0 L 20 10"},
			want: math32.Vec2(10, 5),
		},
		{
			name: "group origin",
			el:   Element{Tag: "g"},
			want: math32.Vector2{},
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.el.Anchor(), tt.name)
	}
}
