package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"dropcab/internal/modules/catalog"
	"dropcab/internal/modules/pricing"
	"dropcab/internal/types"
)

func newTestService(tolerance float64) *Service {
	catalogSvc := catalog.NewService(catalog.NewStaticSource())
	pricingSvc := pricing.NewService(pricing.DefaultConfig())
	return NewService(catalogSvc, pricingSvc, tolerance)
}

func ptr(v float64) *float64 { return &v }

func TestQuote(t *testing.T) {
	s := newTestService(1.0)

	q, err := s.Quote(context.Background(), 1, 150, types.TripOneWay)
	assert.NoError(t, err)
	assert.Equal(t, 1, q.VehicleID)
	assert.Equal(t, "Hatchback", q.VehicleName)
	assert.Equal(t, 2500.0, q.Total)
	assert.Equal(t, "130km × ₹14/km = ₹1820", q.Lines.BaseCharge)
	assert.Equal(t, "20km × ₹14/km = ₹280", q.Lines.ExtraCharge)
	assert.Equal(t, "₹2500", q.Lines.Total)
	// The driver bata line only appears on verified bookings.
	assert.Empty(t, q.Lines.DriverBata)
}

func TestQuote_NoExtraCharge(t *testing.T) {
	s := newTestService(1.0)

	q, err := s.Quote(context.Background(), 1, 50, types.TripOneWay)
	assert.NoError(t, err)
	assert.Equal(t, "No extra charge", q.Lines.ExtraCharge)
}

func TestQuote_UnknownVehicle(t *testing.T) {
	s := newTestService(1.0)

	_, err := s.Quote(context.Background(), 999, 150, types.TripOneWay)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestVerify_NoClientPrice(t *testing.T) {
	s := newTestService(1.0)

	v, err := s.Verify(context.Background(), VerifyCommand{
		VehicleID: 1, DistanceKm: 150, TripType: types.TripOneWay,
	})
	assert.NoError(t, err)
	assert.True(t, v.Verified)
	assert.NotEmpty(t, v.Reference)
	assert.Equal(t, 2500.0, v.Total)
	assert.Equal(t, "Driver allowance = ₹400", v.Lines.DriverBata)
}

func TestVerify_MatchingClientPrice(t *testing.T) {
	s := newTestService(1.0)

	v, err := s.Verify(context.Background(), VerifyCommand{
		VehicleID: 1, DistanceKm: 150, TripType: types.TripOneWay,
		ClientPrice: ptr(2500),
	})
	assert.NoError(t, err)
	assert.True(t, v.Verified)
}

func TestVerify_WithinTolerance(t *testing.T) {
	s := newTestService(1.0)

	v, err := s.Verify(context.Background(), VerifyCommand{
		VehicleID: 1, DistanceKm: 150, TripType: types.TripOneWay,
		ClientPrice: ptr(2500.5),
	})
	assert.NoError(t, err)
	assert.True(t, v.Verified)
}

func TestVerify_Mismatch(t *testing.T) {
	s := newTestService(1.0)

	_, err := s.Verify(context.Background(), VerifyCommand{
		VehicleID: 1, DistanceKm: 150, TripType: types.TripOneWay,
		ClientPrice: ptr(2502),
	})

	var mismatch *PriceMismatchError
	if assert.True(t, errors.As(err, &mismatch)) {
		assert.Equal(t, 2500.0, mismatch.ServerPrice)
		assert.Equal(t, 2502.0, mismatch.ClientPrice)
		assert.InDelta(t, 2.0, mismatch.Difference, 0.001)
	}
}

func TestVerify_ToleranceIsConfigurable(t *testing.T) {
	// A 5-unit gap passes with tolerance 10 and fails with tolerance 1.
	cmd := VerifyCommand{
		VehicleID: 1, DistanceKm: 150, TripType: types.TripOneWay,
		ClientPrice: ptr(2505),
	}

	_, err := newTestService(10.0).Verify(context.Background(), cmd)
	assert.NoError(t, err)

	_, err = newTestService(1.0).Verify(context.Background(), cmd)
	var mismatch *PriceMismatchError
	assert.True(t, errors.As(err, &mismatch))
}

func TestVerify_ZeroClientPriceTreatedAsAbsent(t *testing.T) {
	s := newTestService(1.0)

	v, err := s.Verify(context.Background(), VerifyCommand{
		VehicleID: 1, DistanceKm: 150, TripType: types.TripOneWay,
		ClientPrice: ptr(0),
	})
	assert.NoError(t, err)
	assert.True(t, v.Verified)
}

func TestVerify_UnknownVehicleComputesNoFare(t *testing.T) {
	s := newTestService(1.0)

	v, err := s.Verify(context.Background(), VerifyCommand{
		VehicleID: 42, DistanceKm: 150, TripType: types.TripOneWay,
	})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Zero(t, v.Total)
}

func TestVerify_InvalidInput(t *testing.T) {
	s := newTestService(1.0)

	_, err := s.Verify(context.Background(), VerifyCommand{
		VehicleID: 1, DistanceKm: -5, TripType: types.TripOneWay,
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidDistance)

	_, err = s.Verify(context.Background(), VerifyCommand{
		VehicleID: 1, DistanceKm: 100, TripType: types.TripType("hover"),
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidTripType)
}
