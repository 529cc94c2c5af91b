// README: Quotation and verified-booking value objects.
package booking

import (
	"fmt"
	"strconv"

	"dropcab/internal/modules/pricing"
	"dropcab/internal/types"
)

// ChargeLines is the human-readable fare decomposition included in
// responses and share messages.
type ChargeLines struct {
	BaseCharge  string `json:"baseCharge"`
	ExtraCharge string `json:"extraCharge"`
	DriverBata  string `json:"driverBata,omitempty"`
	Total       string `json:"total"`
}

// Quotation is a server-computed fare for one vehicle and trip.
type Quotation struct {
	VehicleID   int            `json:"vehicleId"`
	VehicleName string         `json:"vehicleName"`
	TripType    types.TripType `json:"tripType"`
	pricing.Breakdown
	Lines ChargeLines `json:"breakdown"`
}

// VerifiedBooking is a quotation that passed price reconciliation.
type VerifiedBooking struct {
	Quotation
	Verified  bool   `json:"verified"`
	Reference string `json:"reference"`
}

// PriceMismatchError reports a client/server price disagreement beyond the
// configured tolerance. Both values are surfaced so the caller can re-prompt
// the user with the authoritative total.
type PriceMismatchError struct {
	ServerPrice float64
	ClientPrice float64
	Difference  float64
}

func (e *PriceMismatchError) Error() string {
	return fmt.Sprintf("price mismatch: server %s, client %s (difference %s)",
		fmtAmount(e.ServerPrice), fmtAmount(e.ClientPrice), fmtAmount(e.Difference))
}

// fmtAmount renders a currency amount without trailing zeros (1820, 4.66).
func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func chargeLines(b pricing.Breakdown, withBata bool) ChargeLines {
	lines := ChargeLines{
		BaseCharge: fmt.Sprintf("%skm × ₹%s/km = ₹%s",
			fmtAmount(b.Threshold), fmtAmount(b.RatePerKm), fmtAmount(b.BaseFare)),
		ExtraCharge: "No extra charge",
		Total:       "₹" + fmtAmount(b.Total),
	}
	if b.ExtraKm > 0 {
		lines.ExtraCharge = fmt.Sprintf("%skm × ₹%s/km = ₹%s",
			fmtAmount(b.ExtraKm), fmtAmount(b.ExtraKmRate), fmtAmount(b.ExtraFee))
	}
	if withBata {
		lines.DriverBata = "Driver allowance = ₹" + fmtAmount(b.DriverBata)
	}
	return lines
}
