// Package render draws a placed Map, and optionally a highlighted Route
// across it, as an SVG image. This is the external rendering collaborator
// spec.md §1 explicitly contracts out of the core ("Tile rendering ... is
// out of scope"); pkg/render is this module's own implementation of that
// documented §6 interface, not part of the route-finding core itself.
package render
