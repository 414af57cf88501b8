// Package tilemap places tiles at hex addresses and derives the map-wide
// connectivity graph that pkg/route walks. It owns per-hex state
// (placed tile, rotation, tokens, labels, barriers) and mutates it only
// through its documented operations; every mutation returns a new Map
// value rather than changing the receiver in place, mirroring pkg/tile's
// immutable builder style.
package tilemap
