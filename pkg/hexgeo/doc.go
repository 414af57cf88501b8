// Package hexgeo provides the hex-face algebra, rotation, and coordinate
// conventions that every other package in this module builds on: faces,
// rotations, hex addresses, and the face-to-face adjacency that a map uses
// to decide which hex lies across any given edge.
package hexgeo
