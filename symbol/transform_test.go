// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestParseTransform(t *testing.T) {
	tests := []struct {
		str  string
		want Transform
	}{
		{
			str:  "",
			want: Transform{},
		},
		{
			str:  "translate(3,4)",
			want: Transform{Translate: math32.Vec2(3, 4)},
		},
		{
			str:  "translate(3 4)",
			want: Transform{Translate: math32.Vec2(3, 4)},
		},
		{
			str:  "translate(5)",
			want: Transform{Translate: math32.Vec2(5, 0)},
		},
		{
			str:  "translate(1,2) translate(3,4)",
			want: Transform{Translate: math32.Vec2(4, 6)},
		},
		{
			str:  "rotate(90)",
			want: Transform{Rotate: 90},
		},
		{
			str: "rotate(45, 7, 9)",
			want: Transform{
				Rotate:          45,
				RotateCenter:    math32.Vec2(7, 9),
				HasRotateCenter: true,
			},
		},
		{
			str:  "scale(2) matrix(1,0,0,1,5,5)",
			want: Transform{},
		},
		{
			str:  "translate(garbage) rotate()",
			want: Transform{},
		},
		{
			str:  "not a transform at all",
			want: Transform{},
		},
	}
	for _, tt := range tests {
		got := ParseTransform(tt.str)
		assert.Equal(t, tt.want, got, tt.str)
	}
}

func TestAccumulatedTranslation(t *testing.T) {
	doc, err := DecodeString(`<svg viewBox="0 0 64 64">
		<g transform="translate(5,5)">
			<g transform="translate(3,-2)">
				<circle cx="0" cy="0" r="1" stroke="red" transform="translate(2,2)"/>
			</g>
		</g>
	</svg>`)
	assert.NoError(t, err)
	circle := findTag(doc, "circle")
	assert.NotNil(t, circle)
	assert.Equal(t, math32.Vec2(10, 5), AccumulatedTranslation(circle))
	assert.Equal(t, math32.Vec2(10, 5), AbsolutePosition(circle))
}

func TestAbsolutePositionRotateCenter(t *testing.T) {
	// a 3-argument rotate pivot supersedes the translate-derived
	// position for the element itself
	doc, err := DecodeString(`<svg viewBox="0 0 64 64">
		<g transform="translate(10,10)">
			<circle cx="1" cy="1" r="1" stroke="red" transform="translate(50,50) rotate(45,7,9)"/>
		</g>
	</svg>`)
	assert.NoError(t, err)
	circle := findTag(doc, "circle")
	assert.NotNil(t, circle)
	assert.Equal(t, math32.Vec2(17, 19), AbsolutePosition(circle))
}

func TestAbsolutePositionStopsAtNonGroup(t *testing.T) {
	// translations on non-group ancestors do not accumulate
	doc, err := DecodeString(`<svg viewBox="0 0 64 64">
		<clipPath transform="translate(100,100)">
			<circle cx="2" cy="3" r="1" stroke="red"/>
		</clipPath>
	</svg>`)
	assert.NoError(t, err)
	circle := findTag(doc, "circle")
	assert.NotNil(t, circle)
	assert.Equal(t, math32.Vec2(2, 3), AbsolutePosition(circle))
}

func findTag(doc *Document, tag string) *Element {
	var found *Element
	doc.WalkDown(func(el *Element) bool {
		if el.Tag == tag {
			found = el
			return false
		}
		return true
	})
	return found
}
