// Package flow implements maximum-flow over small bipartite graphs, used by
// pkg/tilemap to decide how to redistribute placed tokens when a tile is
// replaced by another at the same address.
package flow
