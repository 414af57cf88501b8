// Package catalogue is a named-tile registry: it maps a tile's stable
// name to the tile value itself and to how many copies a player may still
// place. Catalogues are built once per game and shared read-only
// thereafter; pkg/tilemap holds a reference to one rather than owning
// tiles directly.
package catalogue
