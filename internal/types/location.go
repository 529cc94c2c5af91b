// README: Resolved location value object produced by the geocoding adapter.
package types

// Location is a geocoded place. Address holds the resolved address
// components keyed by component type ("state", "city", "country", ...).
type Location struct {
	DisplayName string            `json:"display_name"`
	Lat         float64           `json:"lat"`
	Lon         float64           `json:"lon"`
	Address     map[string]string `json:"address,omitempty"`
}

// State returns the resolved state/province component, or "" when the
// geocoder did not resolve one.
func (l Location) State() string {
	if l.Address == nil {
		return ""
	}
	return l.Address["state"]
}
