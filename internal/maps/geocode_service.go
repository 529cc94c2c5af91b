package maps

import (
	"context"
	"fmt"
	"sync"
	"time"

	"googlemaps.github.io/maps"

	"dropcab/internal/types"
)

// GeocodeService handles forward geocoding against the Google Maps API.
type GeocodeService struct {
	client *maps.Client

	// Client-side request spacing. The geocoding quota is shared across the
	// process, so consecutive lookups are kept at least minInterval apart.
	mu          sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
}

// NewGeocodeService creates a GeocodeService with the given API key.
// minInterval is the minimum spacing between outgoing requests.
func NewGeocodeService(apiKey string, minInterval time.Duration) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client, minInterval: minInterval}, nil
}

// Search forward-geocodes a free-form query, restricted to India, and
// returns up to limit resolved locations in API relevance order.
func (s *GeocodeService) Search(ctx context.Context, query string, limit int) ([]types.Location, error) {
	if err := s.throttle(ctx); err != nil {
		return nil, err
	}

	r := &maps.GeocodingRequest{
		Address:  query,
		Language: "en",
		Region:   "in",
		Components: map[maps.Component]string{
			maps.ComponentCountry: "IN",
		},
	}

	results, err := s.client.Geocode(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("maps api error: %w", err)
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	locations := make([]types.Location, 0, len(results))
	for _, res := range results {
		locations = append(locations, types.Location{
			DisplayName: res.FormattedAddress,
			Lat:         res.Geometry.Location.Lat,
			Lon:         res.Geometry.Location.Lng,
			Address:     parseAddress(res),
		})
	}
	return locations, nil
}

func (s *GeocodeService) throttle(ctx context.Context) error {
	s.mu.Lock()
	now := time.Now()
	next := s.lastRequest.Add(s.minInterval)
	var wait time.Duration
	if next.After(now) {
		// Reserve the next slot so concurrent callers queue up.
		wait = next.Sub(now)
		s.lastRequest = next
	} else {
		s.lastRequest = now
	}
	s.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	select {
	case <-time.After(wait):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// parseAddress flattens Google address components into the component map
// consumed by the service-area validator.
func parseAddress(res maps.GeocodingResult) map[string]string {
	address := make(map[string]string)
	for _, comp := range res.AddressComponents {
		for _, t := range comp.Types {
			switch t {
			case "administrative_area_level_1":
				address["state"] = comp.LongName
			case "administrative_area_level_2", "administrative_area_level_3":
				address["district"] = comp.LongName
			case "locality":
				address["city"] = comp.LongName
			case "sublocality", "neighborhood":
				address["neighborhood"] = comp.LongName
			case "postal_code":
				address["postcode"] = comp.LongName
			case "country":
				address["country"] = comp.LongName
				address["country_code"] = comp.ShortName
			}
		}
	}
	if len(res.Types) > 0 {
		address["place_type"] = res.Types[0]
	}
	return address
}
