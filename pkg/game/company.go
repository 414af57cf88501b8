package game

import "github.com/robmoss/rusty-train-sub002/pkg/tilemap"

// Company is one of a game's operating companies: its display name, the
// token it places on the map, and the hex addresses (by coordinate
// string) where it may start a token.
type Company struct {
	Name      string
	Token     tilemap.Token
	HomeHexes []string
}

// BonusOption describes a selectable private-company or special-event
// bonus a player may switch on or off before a search, surfaced to a host
// UI as a checkbox.
type BonusOption struct {
	Key         string
	Description string
}
