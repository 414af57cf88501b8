package tilemap

import "fmt"

// RefusalReason names why place_tile declined to mutate the map.
type RefusalReason int

const (
	OutOfMap RefusalReason = iota
	NoStock
	WouldDropTokens
	IncompatibleForUpgrade
)

func (r RefusalReason) String() string {
	switch r {
	case OutOfMap:
		return "OutOfMap"
	case NoStock:
		return "NoStock"
	case WouldDropTokens:
		return "WouldDropTokens"
	case IncompatibleForUpgrade:
		return "IncompatibleForUpgrade"
	default:
		return fmt.Sprintf("RefusalReason(%d)", int(r))
	}
}

// PlacementRefused is returned by PlaceTile when a tile cannot legally be
// placed at the requested address.
type PlacementRefused struct {
	Reason RefusalReason
}

func (e PlacementRefused) Error() string {
	return fmt.Sprintf("placement refused: %s", e.Reason)
}
