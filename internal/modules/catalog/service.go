// README: Catalog service resolves vehicles from the configured source.
package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("vehicle not found")

// Source abstracts where vehicle reference data lives; the Postgres store
// and the static fleet both satisfy it.
type Source interface {
	GetByID(ctx context.Context, id int) (Vehicle, error)
	List(ctx context.Context) ([]Vehicle, error)
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

func (s *Service) Get(ctx context.Context, id int) (Vehicle, error) {
	if id <= 0 {
		return Vehicle{}, ErrNotFound
	}
	return s.source.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Vehicle, error) {
	return s.source.List(ctx)
}
