package route

import "fmt"

// TrainType governs which of a path's visits a train must, or may, skip.
type TrainType int

const (
	// MustStop trains stop at every visit on the path they run.
	MustStop TrainType = iota
	// SkipTowns trains stop at every city but may skip any dit.
	SkipTowns
	// SkipAny trains must stop at the path's first and last visit, and
	// may skip any subset of the interior visits.
	SkipAny
)

func (t TrainType) String() string {
	switch t {
	case MustStop:
		return "MustStop"
	case SkipTowns:
		return "SkipTowns"
	case SkipAny:
		return "SkipAny"
	default:
		return "TrainType(?)"
	}
}

// ParseTrainType parses the canonical name of a TrainType, as used in
// saved route reports, back into its value.
func ParseTrainType(name string) (TrainType, error) {
	switch name {
	case "MustStop":
		return MustStop, nil
	case "SkipTowns":
		return SkipTowns, nil
	case "SkipAny":
		return SkipAny, nil
	default:
		return 0, fmt.Errorf("unknown train type %q", name)
	}
}

// Train is one of a company's owned trains: its display name, how it
// selects stops, the maximum number of stops it may make (nil means
// unlimited), and its revenue multiplier.
type Train struct {
	Name       string
	Type       TrainType
	MaxStops   *int
	Multiplier int
}
