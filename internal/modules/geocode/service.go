// README: Geocode search service with a pluggable result cache.
package geocode

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"dropcab/internal/types"
)

// Source is the upstream geocoder (the Google Maps adapter in production).
type Source interface {
	Search(ctx context.Context, query string, limit int) ([]types.Location, error)
}

// Cache stores geocode results keyed by normalized query text. Lookups are
// idempotent, so cached results never go stale within their TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]types.Location, bool, error)
	Set(ctx context.Context, key string, locations []types.Location) error
}

type Service struct {
	source Source
	cache  Cache
	log    *zap.Logger
}

// NewService builds a geocode service. cache may be nil, in which case every
// search hits the upstream source.
func NewService(source Source, cache Cache, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{source: source, cache: cache, log: log}
}

const defaultLimit = 5

// Search resolves a free-form place query. Queries shorter than 2 characters
// return no results without touching the upstream API.
func (s *Service) Search(ctx context.Context, query string) ([]types.Location, error) {
	key := NormalizeQuery(query)
	if len(key) < 2 {
		return nil, nil
	}

	if s.cache != nil {
		locations, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			// A broken cache degrades to upstream lookups.
			s.log.Warn("geocode cache read failed", zap.Error(err))
		} else if ok {
			return locations, nil
		}
	}

	locations, err := s.source.Search(ctx, query, defaultLimit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, locations); err != nil {
			s.log.Warn("geocode cache write failed", zap.Error(err))
		}
	}
	return locations, nil
}

// NormalizeQuery produces the cache key for a query: trimmed and lowercased.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
