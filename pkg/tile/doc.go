// Package tile models a single 18xx tile: an immutable, typed graph of
// track segments, towns ("dits"), cities with token spaces, and labels,
// together with the connectivity that rotation preserves. Tiles are built
// once and never mutated; rotation is applied on the fly by every query,
// never by producing a rotated copy (see pkg/hexgeo.RotateCW).
package tile
