// Package game defines the polymorphic contract a specific 18xx-style
// title implements: map geometry, companies, trains, tile catalogue,
// bonus options, conflict rules, and phase transitions. pkg/game/boxcars
// is a worked example implementation.
package game
