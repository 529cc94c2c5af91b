// README: Common trip value objects used across modules.
package types

import "fmt"

// TripType selects which rate table applies to a quote.
type TripType string

const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "roundtrip"
)

// ParseTripType validates a raw trip type string from a request.
func ParseTripType(s string) (TripType, error) {
	switch TripType(s) {
	case TripOneWay, TripRoundTrip:
		return TripType(s), nil
	default:
		return "", fmt.Errorf("invalid trip type %q", s)
	}
}

func (t TripType) Label() string {
	if t == TripRoundTrip {
		return "Round Trip"
	}
	return "One Way"
}
