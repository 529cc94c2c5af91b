// README: Vehicle store backed by PostgreSQL.
package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const vehicleColumns = `
	id, name, description, category, image_link, rating, reviews,
	passengers, transmission, air_conditioning, doors,
	oneway_rate_per_km, roundtrip_rate_per_km`

func (s *Store) GetByID(ctx context.Context, id int) (Vehicle, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+vehicleColumns+`
		FROM vehicles
		WHERE id = $1`, id,
	)
	v, err := scanVehicle(row.Scan)
	if err != nil {
		return Vehicle{}, mapScanErr(err)
	}
	return v, nil
}

// mapScanErr translates the driver's no-rows sentinel into ErrNotFound.
// pgx returns pgx.ErrNoRows from QueryRow, which does not match
// sql.ErrNoRows under errors.Is, so both are checked.
func mapScanErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *Store) List(ctx context.Context) ([]Vehicle, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+vehicleColumns+`
		FROM vehicles
		ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows.Scan)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func scanVehicle(scan func(dest ...any) error) (Vehicle, error) {
	var v Vehicle
	var description, imageLink sql.NullString
	err := scan(
		&v.ID, &v.Name, &description, &v.Category, &imageLink,
		&v.Rating, &v.Reviews,
		&v.Passengers, &v.Transmission, &v.AirConditioning, &v.Doors,
		&v.OnewayRatePerKm, &v.RoundtripRatePerKm,
	)
	if err != nil {
		return Vehicle{}, err
	}
	v.Description = description.String
	v.ImageLink = imageLink.String
	return v, nil
}
