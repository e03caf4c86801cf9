// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"io/fs"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Symbol is the extraction result for one symbol source: everything a
// diagram needs to place instances and route edges, without keeping
// the parsed document alive.
type Symbol struct {
	// Path identifies the symbol source, e.g., its library path.
	Path string

	// ViewBox is the symbol's native local coordinate system.
	ViewBox ViewBox

	// StrokeWidth is the representative drawn stroke width;
	// 0 when unset.
	StrokeWidth float32

	// Points are the extracted connection points, index-addressable.
	Points []Point
}

// Symbol bundles the document's extraction results into a [Symbol].
func (doc *Document) Symbol(opts *Options, policy FlowPolicy) *Symbol {
	return &Symbol{
		Path:        doc.Name,
		ViewBox:     doc.ViewBox,
		StrokeWidth: doc.StrokeWidth,
		Points:      doc.ConnectionPoints(opts, policy),
	}
}

// DefaultCacheSize is the default capacity of a [Loader]'s symbol
// cache.
const DefaultCacheSize = 256

// Loader reads symbol SVG sources from a filesystem and memoizes
// extraction results in a bounded LRU cache keyed by symbol path plus
// extraction options, so that repeated placements of the same symbol
// do not re-parse its source. Loader is not safe for concurrent use;
// the editor runs extraction on a single UI goroutine.
type Loader struct {
	// FS is the filesystem containing the symbol library.
	FS fs.FS

	// Options are the extraction options; changing fields is fine,
	// cached entries under the old options simply age out.
	Options *Options

	// Policy is the flow policy; nil uses [ProcessFlow].
	Policy FlowPolicy

	cache *lru.Cache[string, *Symbol]
}

// NewLoader returns a Loader on the given filesystem with the given
// cache capacity; capacity <= 0 uses [DefaultCacheSize].
func NewLoader(fsys fs.FS, capacity int) *Loader {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	cache, _ := lru.New[string, *Symbol](capacity) // errs only on capacity <= 0
	return &Loader{FS: fsys, Options: DefaultOptions(), cache: cache}
}

// Symbol returns the extraction results for the symbol at the given
// path, from cache when available. A source that parses only
// partially still yields its points, per the best-effort contract;
// only an unreadable or entirely unusable source returns an error.
func (ld *Loader) Symbol(path string) (*Symbol, error) {
	key := path + "|" + ld.Options.Key()
	if sym, ok := ld.cache.Get(key); ok {
		return sym, nil
	}
	doc, err := Open(ld.FS, path)
	if doc == nil || (err != nil && doc.NumElements() == 0) {
		return nil, err
	}
	sym := doc.Symbol(ld.Options, ld.Policy)
	ld.cache.Add(key, sym)
	return sym, nil
}

// Points returns just the connection points for the symbol at the
// given path.
func (ld *Loader) Points(path string) ([]Point, error) {
	sym, err := ld.Symbol(path)
	if err != nil {
		return nil, err
	}
	return sym.Points, nil
}

// Clear drops all cached extraction results.
func (ld *Loader) Clear() {
	ld.cache.Purge()
}

// Len returns the number of cached symbols.
func (ld *Loader) Len() int {
	return ld.cache.Len()
}
