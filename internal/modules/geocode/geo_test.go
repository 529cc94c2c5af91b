package geocode

import (
	"math"
	"testing"

	"dropcab/internal/types"
)

func TestDistanceKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		from, to  types.Location
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			from:      types.Location{Lat: 13.0827, Lon: 80.2707},
			to:        types.Location{Lat: 13.0827, Lon: 80.2707},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "Chennai to Bengaluru (~290km)",
			from:      types.Location{Lat: 13.0827, Lon: 80.2707},
			to:        types.Location{Lat: 12.9716, Lon: 77.5946},
			wantKm:    290,
			tolerance: 10,
		},
		{
			name:      "Chennai to Kochi (~550km)",
			from:      types.Location{Lat: 13.0827, Lon: 80.2707},
			to:        types.Location{Lat: 9.9312, Lon: 76.2673},
			wantKm:    550,
			tolerance: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.from, tt.to)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("DistanceKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	a := types.Location{Lat: 13.0827, Lon: 80.2707}
	b := types.Location{Lat: 9.9312, Lon: 76.2673}
	d1 := DistanceKm(a, b)
	d2 := DistanceKm(b, a)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("distance is not symmetric: %f vs %f", d1, d2)
	}
}
