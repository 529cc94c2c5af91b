// README: Trip detail validation for the share-message flow.
package booking

import (
	"errors"
	"time"

	"dropcab/internal/types"
)

// TripDetails is what the client collected before asking for a share
// message: resolved locations plus travel times.
type TripDetails struct {
	TripType types.TripType  `json:"tripType"`
	Pickup   *types.Location `json:"pickup"`
	Dropoff  *types.Location `json:"dropoff"`
	PickupAt string          `json:"pickupDateAndTime"`
	ReturnAt string          `json:"returnDateAndTime,omitempty"`
}

var (
	ErrMissingPickup   = errors.New("please select a pickup location")
	ErrMissingDropoff  = errors.New("please select a dropoff location")
	ErrMissingPickupAt = errors.New("please select pickup date & time")
	ErrInvalidPickupAt = errors.New("invalid pickup date/time")
	ErrMissingReturnAt = errors.New("please select return date & time")
	ErrInvalidReturnAt = errors.New("invalid return date/time")
	ErrReturnNotAfter  = errors.New("return time must be after pickup time")
)

// dateTimeLayouts accepted from clients; the first is what the HTML
// datetime-local input produces.
var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02 15:04",
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Validate checks the trip details for completeness. Round trips
// additionally need a return time after the pickup time.
func (d TripDetails) Validate() error {
	if d.Pickup == nil {
		return ErrMissingPickup
	}
	if d.Dropoff == nil {
		return ErrMissingDropoff
	}
	if d.PickupAt == "" {
		return ErrMissingPickupAt
	}
	pickupAt, ok := parseDateTime(d.PickupAt)
	if !ok {
		return ErrInvalidPickupAt
	}

	if d.TripType == types.TripRoundTrip {
		if d.ReturnAt == "" {
			return ErrMissingReturnAt
		}
		returnAt, ok := parseDateTime(d.ReturnAt)
		if !ok {
			return ErrInvalidReturnAt
		}
		if !returnAt.After(pickupAt) {
			return ErrReturnNotAfter
		}
	}
	return nil
}
