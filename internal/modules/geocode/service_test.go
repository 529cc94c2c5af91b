package geocode

import (
	"context"
	"errors"
	"testing"

	"dropcab/internal/types"
)

// stubSource counts upstream calls and returns a fixed result set.
type stubSource struct {
	calls   int
	results []types.Location
	err     error
}

func (s *stubSource) Search(_ context.Context, _ string, _ int) ([]types.Location, error) {
	s.calls++
	return s.results, s.err
}

var chennai = types.Location{
	DisplayName: "Chennai, Tamil Nadu, India",
	Lat:         13.0827,
	Lon:         80.2707,
	Address:     map[string]string{"state": "Tamil Nadu", "country_code": "IN"},
}

func TestSearch_CachesByNormalizedQuery(t *testing.T) {
	src := &stubSource{results: []types.Location{chennai}}
	s := NewService(src, NewMemoryCache(), nil)

	first, err := s.Search(context.Background(), "Chennai")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(first) != 1 || first[0].DisplayName != chennai.DisplayName {
		t.Fatalf("unexpected results: %+v", first)
	}

	// Same query with different case and padding must hit the cache.
	second, err := s.Search(context.Background(), "  CHENNAI ")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("unexpected results: %+v", second)
	}
	if src.calls != 1 {
		t.Errorf("upstream called %d times, want 1", src.calls)
	}
}

func TestSearch_ShortQuerySkipsUpstream(t *testing.T) {
	src := &stubSource{results: []types.Location{chennai}}
	s := NewService(src, NewMemoryCache(), nil)

	for _, q := range []string{"", " ", "a", "  a  "} {
		got, err := s.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", q, err)
		}
		if got != nil {
			t.Errorf("Search(%q) = %v, want nil", q, got)
		}
	}
	if src.calls != 0 {
		t.Errorf("upstream called %d times, want 0", src.calls)
	}
}

func TestSearch_NoCache(t *testing.T) {
	src := &stubSource{results: []types.Location{chennai}}
	s := NewService(src, nil, nil)

	for i := 0; i < 3; i++ {
		if _, err := s.Search(context.Background(), "Chennai"); err != nil {
			t.Fatalf("Search() error = %v", err)
		}
	}
	if src.calls != 3 {
		t.Errorf("upstream called %d times, want 3", src.calls)
	}
}

func TestSearch_UpstreamError(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	s := NewService(&stubSource{err: wantErr}, NewMemoryCache(), nil)

	_, err := s.Search(context.Background(), "Chennai")
	if !errors.Is(err, wantErr) {
		t.Errorf("Search() error = %v, want %v", err, wantErr)
	}
}

func TestNormalizeQuery(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Chennai", "chennai"},
		{"  Chennai Central  ", "chennai central"},
		{"KOCHI", "kochi"},
	}
	for _, tt := range tests {
		if got := NormalizeQuery(tt.in); got != tt.want {
			t.Errorf("NormalizeQuery(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
