// README: Service-area validation against the allowed-states list.
package servicearea

import (
	"fmt"
	"strings"

	"dropcab/internal/types"
)

// InvalidLocation names which end of the trip failed validation.
type InvalidLocation string

const (
	InvalidPickup  InvalidLocation = "pickup"
	InvalidDropoff InvalidLocation = "dropoff"
	InvalidBoth    InvalidLocation = "both"
)

// Result is the validation outcome. Message is user-facing.
type Result struct {
	OK              bool            `json:"ok"`
	Message         string          `json:"message,omitempty"`
	InvalidLocation InvalidLocation `json:"invalidLocation,omitempty"`
}

// Validator checks resolved locations against an allow-list of regions.
// Pure decision logic: region data must already be resolved upstream by the
// geocoder.
type Validator struct {
	allowed []string
	// normalized lookup set built once at construction.
	allowedSet map[string]struct{}
}

func NewValidator(allowedStates []string) *Validator {
	set := make(map[string]struct{}, len(allowedStates))
	for _, s := range allowedStates {
		set[normalize(s)] = struct{}{}
	}
	return &Validator{allowed: allowedStates, allowedSet: set}
}

func normalize(state string) string {
	return strings.ToLower(strings.TrimSpace(state))
}

// StateAllowed reports whether a state name is in the allow list,
// ignoring case and surrounding whitespace.
func (v *Validator) StateAllowed(state string) bool {
	if state == "" {
		return false
	}
	_, ok := v.allowedSet[normalize(state)]
	return ok
}

// LocationAllowed reports whether a location resolves to an allowed state.
// A missing location or unresolved state counts as not allowed.
func (v *Validator) LocationAllowed(l *types.Location) bool {
	if l == nil {
		return false
	}
	return v.StateAllowed(l.State())
}

// ValidateLocations checks both ends of a trip and reports which one (or
// both) falls outside the service area.
func (v *Validator) ValidateLocations(pickup, dropoff *types.Location) Result {
	if pickup == nil || dropoff == nil {
		return Result{OK: false, Message: "Please select both pickup and dropoff locations."}
	}

	pickupState := pickup.State()
	dropoffState := dropoff.State()
	pickupOK := v.StateAllowed(pickupState)
	dropoffOK := v.StateAllowed(dropoffState)

	switch {
	case !pickupOK && !dropoffOK:
		return Result{
			OK: false,
			Message: fmt.Sprintf(
				"Service is only available in %s. Both your pickup (%s) and dropoff (%s) locations are outside our service area.",
				v.servedRegions(), orUnknown(pickupState), orUnknown(dropoffState)),
			InvalidLocation: InvalidBoth,
		}
	case !pickupOK:
		return Result{
			OK: false,
			Message: fmt.Sprintf(
				"Service is only available in %s. Your pickup location (%s) is outside our service area.",
				v.servedRegions(), orUnknown(pickupState)),
			InvalidLocation: InvalidPickup,
		}
	case !dropoffOK:
		return Result{
			OK: false,
			Message: fmt.Sprintf(
				"Service is only available in %s. Your dropoff location (%s) is outside our service area.",
				v.servedRegions(), orUnknown(dropoffState)),
			InvalidLocation: InvalidDropoff,
		}
	}
	return Result{OK: true}
}

// AllowedStates returns a copy of the configured allow list.
func (v *Validator) AllowedStates() []string {
	out := make([]string, len(v.allowed))
	copy(out, v.allowed)
	return out
}

func (v *Validator) servedRegions() string {
	return strings.Join(v.allowed, ", ")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
