// README: Built-in vehicle fleet used when no database is configured.
package catalog

import "context"

// defaultFleet mirrors the production fleet. Rates are INR per km.
var defaultFleet = []Vehicle{
	{
		ID:                 1,
		Name:               "Hatchback",
		Description:        "Compact and economical",
		Category:           "Sedan",
		Rating:             4.5,
		Reviews:            3456,
		Passengers:         4,
		Transmission:       "Manual",
		AirConditioning:    true,
		Doors:              4,
		OnewayRatePerKm:    14,
		RoundtripRatePerKm: 13,
	},
	{
		ID:                 2,
		Name:               "Sedan (Etios)",
		Description:        "Comfortable sedan",
		Category:           "MUV",
		Rating:             4.7,
		Reviews:            2890,
		Passengers:         5,
		Transmission:       "Auto",
		AirConditioning:    true,
		Doors:              4,
		OnewayRatePerKm:    14,
		RoundtripRatePerKm: 13,
	},
	{
		ID:                 3,
		Name:               "SUV",
		Description:        "Spacious SUV",
		Category:           "Sedan",
		Rating:             4.6,
		Reviews:            2234,
		Passengers:         5,
		Transmission:       "Auto",
		AirConditioning:    true,
		Doors:              4,
		OnewayRatePerKm:    19,
		RoundtripRatePerKm: 17,
	},
	{
		ID:                 4,
		Name:               "Innova",
		Description:        "Premium MPV",
		Category:           "SUV",
		Rating:             4.4,
		Reviews:            1987,
		Passengers:         7,
		Transmission:       "Manual",
		AirConditioning:    true,
		Doors:              4,
		OnewayRatePerKm:    20,
		RoundtripRatePerKm: 18,
	},
}

// StaticSource serves the built-in fleet from memory.
type StaticSource struct {
	vehicles []Vehicle
}

func NewStaticSource() *StaticSource {
	return &StaticSource{vehicles: defaultFleet}
}

func (s *StaticSource) GetByID(_ context.Context, id int) (Vehicle, error) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return Vehicle{}, ErrNotFound
}

func (s *StaticSource) List(_ context.Context) ([]Vehicle, error) {
	out := make([]Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}
