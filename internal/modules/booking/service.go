// README: Booking service recomputes fares server-side and reconciles client prices.
package booking

import (
	"context"
	"math"

	"github.com/google/uuid"

	"dropcab/internal/modules/catalog"
	"dropcab/internal/modules/pricing"
	"dropcab/internal/types"
)

// Service composes the catalog and the fare calculator. The client-supplied
// price is never an input to computation; it is only compared against the
// server total.
type Service struct {
	catalog *catalog.Service
	pricing *pricing.Service
	// tolerance is the allowed client/server gap in currency units before a
	// verification is rejected.
	tolerance float64
}

func NewService(catalogSvc *catalog.Service, pricingSvc *pricing.Service, tolerance float64) *Service {
	return &Service{catalog: catalogSvc, pricing: pricingSvc, tolerance: tolerance}
}

// Quote computes a fare quotation from server-held vehicle and rate data.
func (s *Service) Quote(ctx context.Context, vehicleID int, distanceKm float64, trip types.TripType) (Quotation, error) {
	vehicle, err := s.catalog.Get(ctx, vehicleID)
	if err != nil {
		return Quotation{}, err
	}
	breakdown, err := s.pricing.Calculate(vehicle, distanceKm, trip)
	if err != nil {
		return Quotation{}, err
	}
	return Quotation{
		VehicleID:   vehicle.ID,
		VehicleName: vehicle.Name,
		TripType:    trip,
		Breakdown:   breakdown,
		Lines:       chargeLines(breakdown, false),
	}, nil
}

type VerifyCommand struct {
	VehicleID  int
	DistanceKm float64
	TripType   types.TripType
	// ClientPrice is the total the client computed, if it sent one. Zero is
	// treated the same as absent.
	ClientPrice *float64
}

// Verify recomputes the full breakdown and, when a client price was
// submitted, rejects totals that disagree beyond the tolerance with a
// *PriceMismatchError. Stateless: nothing is persisted.
func (s *Service) Verify(ctx context.Context, cmd VerifyCommand) (VerifiedBooking, error) {
	q, err := s.Quote(ctx, cmd.VehicleID, cmd.DistanceKm, cmd.TripType)
	if err != nil {
		return VerifiedBooking{}, err
	}

	if cmd.ClientPrice != nil && *cmd.ClientPrice != 0 {
		diff := math.Abs(*cmd.ClientPrice - q.Total)
		if diff > s.tolerance {
			return VerifiedBooking{}, &PriceMismatchError{
				ServerPrice: q.Total,
				ClientPrice: *cmd.ClientPrice,
				Difference:  diff,
			}
		}
	}

	q.Lines = chargeLines(q.Breakdown, true)
	return VerifiedBooking{
		Quotation: q,
		Verified:  true,
		Reference: uuid.NewString(),
	}, nil
}
