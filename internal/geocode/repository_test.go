package geocode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"

	"weatherboard/internal/model"
)

type stubClient struct {
	calls      int
	candidates []model.GeocodeCandidate
	err        error
}

func (s *stubClient) Search(ctx context.Context, query string) ([]model.GeocodeCandidate, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

func newTestRepository(t *testing.T, stub *stubClient) (*cachedRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	return &cachedRepository{
		redisClient: client,
		client:      stub,
		expiration:  time.Minute,
	}, mr
}

func TestRepositoryCachesProviderResults(t *testing.T) {
	stub := &stubClient{candidates: []model.GeocodeCandidate{{Name: "Pokhara", Latitude: 28.2, Longitude: 83.98}}}
	repo, _ := newTestRepository(t, stub)
	ctx := context.Background()

	first, err := repo.Search(ctx, "Pokhara")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Search(ctx, "pokhara")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("expected 1 provider call (second lookup cached, case-insensitive), got %d", stub.calls)
	}
	if len(first) != 1 || len(second) != 1 || second[0].Name != "Pokhara" {
		t.Errorf("cache round trip lost data: %+v", second)
	}
}

func TestRepositoryEmptyQueryRejectedBeforeCache(t *testing.T) {
	stub := &stubClient{}
	repo, _ := newTestRepository(t, stub)

	_, err := repo.Search(context.Background(), "   ")
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
	if stub.calls != 0 {
		t.Errorf("expected no provider calls, got %d", stub.calls)
	}
}

func TestRepositoryProviderErrorNotCached(t *testing.T) {
	stub := &stubClient{err: model.ErrNetwork}
	repo, mr := newTestRepository(t, stub)

	_, err := repo.Search(context.Background(), "Kathmandu")
	if !errors.Is(err, model.ErrNetwork) {
		t.Fatalf("error = %v, want ErrNetwork", err)
	}
	if mr.Exists("geocode:kathmandu") {
		t.Error("failed lookups must not be cached")
	}
}

func TestRepositoryCacheExpires(t *testing.T) {
	stub := &stubClient{candidates: []model.GeocodeCandidate{{Name: "Lima"}}}
	repo, mr := newTestRepository(t, stub)
	ctx := context.Background()

	if _, err := repo.Search(ctx, "Lima"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := repo.Search(ctx, "Lima"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 2 {
		t.Errorf("expected expired entry to re-hit the provider, calls = %d", stub.calls)
	}
}
