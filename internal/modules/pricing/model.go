// README: Pricing rate tables and the fare breakdown value object.
package pricing

import "dropcab/internal/types"

// TripRate holds the tiered-pricing parameters for one trip type.
type TripRate struct {
	// ThresholdKm is the distance included in the base fare. The base fare is
	// always charged at this distance, even when the trip is shorter.
	ThresholdKm float64
	// ExtraKmRate is charged per km beyond ThresholdKm.
	ExtraKmRate float64
}

// Config is the process-wide, read-only rate table. DriverBata is a flat
// driver allowance applied regardless of trip type.
type Config struct {
	OneWay     TripRate
	RoundTrip  TripRate
	DriverBata float64
}

// DefaultConfig returns the production rate table (INR).
func DefaultConfig() Config {
	return Config{
		OneWay:     TripRate{ThresholdKm: 130, ExtraKmRate: 14},
		RoundTrip:  TripRate{ThresholdKm: 250, ExtraKmRate: 13},
		DriverBata: 400,
	}
}

// RateFor returns the rate table entry for the given trip type.
func (c Config) RateFor(trip types.TripType) TripRate {
	if trip == types.TripRoundTrip {
		return c.RoundTrip
	}
	return c.OneWay
}

// Breakdown is the fare decomposition for a single quote. Computed fresh per
// request; never persisted. All currency figures are rounded to 2 decimal
// places.
type Breakdown struct {
	BaseFare           float64 `json:"baseFare"`
	BaseKm             float64 `json:"baseKm"`
	ExtraKm            float64 `json:"extraKm"`
	ExtraFee           float64 `json:"extraFee"`
	DriverBata         float64 `json:"driverBata"`
	Total              float64 `json:"totalFare"`
	ActualDistance     float64 `json:"actualDistance"`
	ChargeableDistance float64 `json:"chargeableDistance"`
	Threshold          float64 `json:"threshold"`
	RatePerKm          float64 `json:"ratePerKm"`
	ExtraKmRate        float64 `json:"extraKmRate"`
}
