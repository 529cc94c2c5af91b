package catalog

import (
	"context"
	"errors"
	"testing"

	"dropcab/internal/types"
)

func TestStaticSource_GetByID(t *testing.T) {
	s := NewService(NewStaticSource())

	v, err := s.Get(context.Background(), 4)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if v.Name != "Innova" || v.OnewayRatePerKm != 20 || v.RoundtripRatePerKm != 18 {
		t.Errorf("unexpected vehicle: %+v", v)
	}
}

func TestStaticSource_UnknownID(t *testing.T) {
	s := NewService(NewStaticSource())

	for _, id := range []int{0, -1, 5, 999} {
		if _, err := s.Get(context.Background(), id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%d) error = %v, want ErrNotFound", id, err)
		}
	}
}

func TestStaticSource_List(t *testing.T) {
	s := NewService(NewStaticSource())

	vehicles, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(vehicles) != 4 {
		t.Fatalf("expected 4 vehicles, got %d", len(vehicles))
	}

	// The returned slice is a copy; mutating it must not leak into the fleet.
	vehicles[0].Name = "Rickshaw"
	again, _ := s.List(context.Background())
	if again[0].Name != "Hatchback" {
		t.Error("List() must return a copy of the fleet")
	}
}

func TestVehicle_RateFor(t *testing.T) {
	v := Vehicle{OnewayRatePerKm: 19, RoundtripRatePerKm: 17}
	if got := v.RateFor(types.TripOneWay); got != 19 {
		t.Errorf("RateFor(oneway) = %v, want 19", got)
	}
	if got := v.RateFor(types.TripRoundTrip); got != 17 {
		t.Errorf("RateFor(roundtrip) = %v, want 17", got)
	}
}
