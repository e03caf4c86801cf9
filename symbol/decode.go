// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"bufio"
	"encoding/xml"
	"io"
	"io/fs"
	"log"
	"strings"

	"cogentcore.org/core/math32"
	"golang.org/x/net/html/charset"
)

// Open decodes the symbol SVG file at the given path in the given
// filesystem.
func Open(fsys fs.FS, fname string) (*Document, error) {
	fp, err := fsys.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	doc, err := Decode(bufio.NewReader(fp))
	if doc != nil {
		doc.Name = fname
	}
	return doc, err
}

// DecodeString decodes symbol SVG source from a string.
func DecodeString(src string) (*Document, error) {
	return Decode(strings.NewReader(src))
}

// Decode reads XML-formatted symbol SVG source from the reader and
// returns the parsed [Document]. Parsing is deliberately tolerant:
// unknown elements are retained as plain elements, malformed numbers
// parse as zero, and a missing or unparsable viewBox falls back to the
// standard 0 0 64 64 symbol space. An error is returned only when the
// input is not usable XML at all; a partially decoded document is
// still returned alongside it.
func Decode(reader io.Reader) (*Document, error) {
	doc := &Document{}
	doc.ViewBox.Defaults()
	doc.Root = &Element{Tag: "svg"}

	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	curPar := doc.Root
	depth := 0
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			log.Printf("symbol: SVG parsing error: %v\n", err)
			doc.setStrokeWidth()
			return doc, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			nm := se.Name.Local
			if depth == 0 {
				if nm != "svg" {
					continue
				}
				depth++
				for _, attr := range se.Attr {
					if attr.Name.Local == "viewBox" {
						doc.ViewBox.SetString(attr.Value)
					}
				}
				doc.elements = append(doc.elements, doc.Root)
				continue
			}
			depth++
			el := &Element{Tag: nm, Parent: curPar}
			decodeAttrs(el, se.Attr)
			curPar.Children = append(curPar.Children, el)
			doc.elements = append(doc.elements, el)
			curPar = el
		case xml.EndElement:
			if depth == 0 {
				continue
			}
			depth--
			if curPar.Parent != nil {
				curPar = curPar.Parent
			}
		}
	}
	doc.setStrokeWidth()
	return doc, nil
}

// decodeAttrs sets the geometry and style attributes on the element,
// ignoring anything it does not understand.
func decodeAttrs(el *Element, attrs []xml.Attr) {
	for _, attr := range attrs {
		val := attr.Value
		switch attr.Name.Local {
		case "id":
			el.ID = val
		case "stroke":
			el.Stroke = val
		case "stroke-width":
			el.StrokeWidth = parseFloat(val, 0)
		case "fill":
			el.Fill = val
		case "transform":
			el.Transform = val
		case "style":
			decodeStyle(el, val)
		case "d":
			el.Data = val
		case "x", "cx", "x1":
			el.Pos.X = parseFloat(val, 0)
		case "y", "cy", "y1":
			el.Pos.Y = parseFloat(val, 0)
		case "x2":
			el.End.X = parseFloat(val, 0)
		case "y2":
			el.End.Y = parseFloat(val, 0)
		case "width":
			if el.Tag != "svg" {
				el.Size.X = parseFloat(val, 0)
			}
		case "height":
			if el.Tag != "svg" {
				el.Size.Y = parseFloat(val, 0)
			}
		case "r":
			r := parseFloat(val, 0)
			el.Radii.Set(r, r)
		case "rx":
			el.Radii.X = parseFloat(val, 0)
		case "ry":
			el.Radii.Y = parseFloat(val, 0)
		case "points":
			pts := math32.ReadPoints(val)
			sz := len(pts)
			if sz%2 != 0 {
				sz-- // tolerate a trailing stray number
			}
			pvec := make([]math32.Vector2, sz/2)
			for ci := 0; ci < sz/2; ci++ {
				pvec[ci].Set(pts[ci*2], pts[ci*2+1])
			}
			el.Points = pvec
		}
	}
}

// decodeStyle pulls stroke, stroke-width and fill out of an inline
// style declaration; other properties are irrelevant here.
func decodeStyle(el *Element, style string) {
	for _, decl := range strings.Split(style, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "stroke":
			el.Stroke = val
		case "stroke-width":
			el.StrokeWidth = parseFloat(val, 0)
		case "fill":
			el.Fill = val
		}
	}
}

// parseFloat parses a single float attribute value, stripping any
// trailing unit suffix, returning def when it does not parse.
func parseFloat(val string, def float32) float32 {
	val = strings.TrimSpace(val)
	val = strings.TrimSuffix(val, "px")
	f, err := math32.ParseFloat32(val)
	if err != nil {
		return def
	}
	return f
}

// setStrokeWidth records the representative stroke width of the
// symbol's drawn geometry: the first explicit positive stroke-width on
// an element that is not itself a connection marker candidate by
// color. Used by edge styling; 0 means unset.
func (doc *Document) setStrokeWidth() {
	opts := DefaultOptions()
	for _, el := range doc.elements {
		if el.IsGroup() || el.Stroke == "" || el.Stroke == "none" {
			continue
		}
		if opts.ColorClass(el.Stroke) != ColorNone {
			continue
		}
		if el.StrokeWidth > 0 {
			doc.StrokeWidth = el.StrokeWidth
			return
		}
	}
}
