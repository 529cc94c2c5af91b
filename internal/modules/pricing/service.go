// README: Pricing service computes tiered distance-based fare breakdowns.
package pricing

import (
	"errors"
	"math"

	"dropcab/internal/modules/catalog"
	"dropcab/internal/types"
)

var (
	ErrInvalidDistance = errors.New("distance must be a positive number")
	ErrInvalidTripType = errors.New("invalid trip type")
)

// Service is a pure calculator over an immutable rate table. Safe for
// concurrent use.
type Service struct {
	cfg Config
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Calculate produces the fare breakdown for a vehicle, a one-way distance in
// km as entered by the user, and a trip type. Round trips are modeled as
// doubled one-way distance; there is no separate return-leg computation.
func (s *Service) Calculate(vehicle catalog.Vehicle, distanceKm float64, trip types.TripType) (Breakdown, error) {
	if distanceKm <= 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return Breakdown{}, ErrInvalidDistance
	}
	if trip != types.TripOneWay && trip != types.TripRoundTrip {
		return Breakdown{}, ErrInvalidTripType
	}

	actual := distanceKm
	if trip == types.TripRoundTrip {
		actual = distanceKm * 2
	}

	rate := s.cfg.RateFor(trip)
	ratePerKm := vehicle.RateFor(trip)

	// Minimum-distance floor: the threshold distance is billed in full even
	// when the trip is shorter.
	chargeable := math.Max(actual, rate.ThresholdKm)
	baseFare := rate.ThresholdKm * ratePerKm

	extraKm := math.Max(0, actual-rate.ThresholdKm)
	extraFee := extraKm * rate.ExtraKmRate

	total := baseFare + extraFee + s.cfg.DriverBata

	return Breakdown{
		BaseFare:           round2(baseFare),
		BaseKm:             round2(rate.ThresholdKm),
		ExtraKm:            round2(extraKm),
		ExtraFee:           round2(extraFee),
		DriverBata:         round2(s.cfg.DriverBata),
		Total:              round2(total),
		ActualDistance:     round2(actual),
		ChargeableDistance: round2(chargeable),
		Threshold:          rate.ThresholdKm,
		RatePerKm:          ratePerKm,
		ExtraKmRate:        rate.ExtraKmRate,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
