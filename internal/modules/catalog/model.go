// README: Vehicle reference data definitions.
package catalog

import "dropcab/internal/types"

// Vehicle is immutable reference data; instances are looked up by ID and
// never mutated.
type Vehicle struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category"`
	ImageLink       string  `json:"imageLink,omitempty"`
	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	Passengers      int     `json:"passengers"`
	Transmission    string  `json:"transmission"`
	AirConditioning bool    `json:"airConditioning"`
	Doors           int     `json:"doors"`

	OnewayRatePerKm    float64 `json:"onewayRatePerKm"`
	RoundtripRatePerKm float64 `json:"roundtripRatePerKm"`
}

// RateFor returns the per-km rate for the given trip type.
func (v Vehicle) RateFor(trip types.TripType) float64 {
	if trip == types.TripRoundTrip {
		return v.RoundtripRatePerKm
	}
	return v.OnewayRatePerKm
}
