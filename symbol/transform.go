// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"strings"

	"cogentcore.org/core/math32"
)

// Transform is the decoded content of one SVG transform attribute,
// reduced to the terms that matter for connection-point resolution.
// Scale and matrix terms are tolerated in the source but contribute
// nothing here: symbol markers are positioned by translation, and in
// some symbols by a rotation pivot.
type Transform struct {
	// Translate is the vector sum of every translate term.
	Translate math32.Vector2

	// Rotate is the rotation angle in degrees of the last rotate
	// term, if any.
	Rotate float32

	// RotateCenter is the cx,cy pivot of a 3-argument rotate term.
	// Some symbol authors encode the true connection point as the
	// rotation pivot, so when present it supersedes the
	// translate-derived position.
	RotateCenter math32.Vector2

	// HasRotateCenter reports whether a 3-argument rotate was seen.
	HasRotateCenter bool
}

// ParseTransform parses an SVG transform attribute value.
// Malformed or unrecognized terms are ignored and contribute zero;
// an empty string yields the zero Transform.
func ParseTransform(attr string) Transform {
	var xf Transform
	for _, term := range strings.Split(attr, ")") {
		name, args, ok := strings.Cut(term, "(")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		pts := math32.ReadPoints(args)
		switch name {
		case "translate":
			switch len(pts) {
			case 1:
				xf.Translate.X += pts[0]
			case 2:
				xf.Translate.X += pts[0]
				xf.Translate.Y += pts[1]
			}
		case "rotate":
			switch len(pts) {
			case 1:
				xf.Rotate = pts[0]
			case 3:
				xf.Rotate = pts[0]
				xf.RotateCenter.Set(pts[1], pts[2])
				xf.HasRotateCenter = true
			}
		}
	}
	return xf
}

// AccumulatedTranslation returns the total translation applying to
// the element: the vector sum of the translate terms of its own
// transform and of every enclosing group, walking outward until a
// non-group ancestor is reached. Elements without transforms
// contribute zero.
func AccumulatedTranslation(el *Element) math32.Vector2 {
	tr := ParseTransform(el.Transform).Translate
	for par := el.Parent; par != nil && par.IsGroup(); par = par.Parent {
		tr.SetAdd(ParseTransform(par.Transform).Translate)
	}
	return tr
}

// AbsolutePosition resolves the element's position in the symbol's
// local coordinate space: its intrinsic [Element.Anchor] offset by
// its own translation, or the rotation pivot when its transform
// carries one, plus the accumulated translation of its enclosing
// groups.
func AbsolutePosition(el *Element) math32.Vector2 {
	xf := ParseTransform(el.Transform)
	var pos math32.Vector2
	if xf.HasRotateCenter {
		pos = xf.RotateCenter
	} else {
		pos = el.Anchor().Add(xf.Translate)
	}
	for par := el.Parent; par != nil && par.IsGroup(); par = par.Parent {
		pos.SetAdd(ParseTransform(par.Transform).Translate)
	}
	return pos
}
