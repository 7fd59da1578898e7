package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// memCache is an in-memory Cache test double.
type memCache struct {
	mu   sync.Mutex
	data map[string]Coordinate
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: map[string]Coordinate{}}
}

func (m *memCache) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	coord, ok := m.data[key]
	if !ok {
		return false, nil
	}
	*(dst.(*Coordinate)) = coord
	return true, nil
}

func (m *memCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = *(v.(*Coordinate))
	m.sets++
	return nil
}

// newTestResolver wires a Resolver to a fake Amap endpoint and counts the
// requests it receives.
func newTestResolver(t *testing.T, cache Cache, handler http.HandlerFunc) (*Resolver, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c, err := NewAmapClient("test-key", 100)
	if err != nil {
		t.Fatalf("NewAmapClient: %v", err)
	}
	c.baseURL = srv.URL
	c.hc = srv.Client()

	return NewResolver(c, nil, cache, time.Hour, zerolog.Nop()), &calls
}

func okPlace(location string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"1","info":"OK","pois":[{"location":"` + location + `"}]}`))
	}
}

func TestResolvePOINonPlacePhraseSkipsNetwork(t *testing.T) {
	r, calls := newTestResolver(t, nil, okPlace("116.39,39.92"))

	for _, query := range []string{"准备返程", "收拾行李", "离开酒店"} {
		if coord := r.ResolvePOI(context.Background(), query, "北京"); coord != nil {
			t.Errorf("%s: expected nil, got %+v", query, coord)
		}
	}
	if *calls != 0 {
		t.Errorf("expected zero network calls, got %d", *calls)
	}
}

func TestResolveAddressNonPlacePhraseSkipsNetwork(t *testing.T) {
	r, calls := newTestResolver(t, nil, okPlace("116.39,39.92"))

	if coord := r.ResolveAddress(context.Background(), "准备返程", ""); coord != nil {
		t.Errorf("expected nil, got %+v", coord)
	}
	if *calls != 0 {
		t.Errorf("expected zero network calls, got %d", *calls)
	}
}

func TestResolvePOIStripsNonEssentialSuffix(t *testing.T) {
	var gotKeywords string
	r, _ := newTestResolver(t, nil, func(w http.ResponseWriter, req *http.Request) {
		gotKeywords = req.URL.Query().Get("keywords")
		okPlace("118.79,32.05")(w, req)
	})

	coord := r.ResolvePOI(context.Background(), "秦淮河夜游", "南京")
	if coord == nil {
		t.Fatal("expected a coordinate")
	}
	if gotKeywords != "秦淮河" {
		t.Errorf("expected stripped keywords 秦淮河, got %q", gotKeywords)
	}
}

func TestResolvePOICityScopedQuery(t *testing.T) {
	var gotCity string
	r, _ := newTestResolver(t, nil, func(w http.ResponseWriter, req *http.Request) {
		gotCity = req.URL.Query().Get("city")
		okPlace("120.62,31.32")(w, req)
	})

	coord := r.ResolvePOI(context.Background(), "狮子林", "苏州")
	if coord == nil {
		t.Fatal("expected a coordinate")
	}
	if coord.Lat != 31.32 || coord.Lng != 120.62 {
		t.Errorf("unexpected coordinate: %+v", coord)
	}
	if gotCity != "苏州" {
		t.Errorf("expected city-scoped search, got city=%q", gotCity)
	}
}

func TestResolvePOIUpstreamFailureReturnsNil(t *testing.T) {
	r, _ := newTestResolver(t, nil, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if coord := r.ResolvePOI(context.Background(), "狮子林", "苏州"); coord != nil {
		t.Errorf("expected nil on upstream failure, got %+v", coord)
	}
}

func TestResolvePOICacheHitSkipsNetwork(t *testing.T) {
	cache := newMemCache()
	r, calls := newTestResolver(t, cache, okPlace("116.39,39.92"))

	first := r.ResolvePOI(context.Background(), "故宫", "北京")
	if first == nil {
		t.Fatal("expected a coordinate")
	}
	if *calls != 1 {
		t.Fatalf("expected one network call, got %d", *calls)
	}

	second := r.ResolvePOI(context.Background(), "故宫", "北京")
	if second == nil || *second != *first {
		t.Fatalf("cache returned %+v, want %+v", second, first)
	}
	if *calls != 1 {
		t.Errorf("cache hit should not touch the network, got %d calls", *calls)
	}
	if cache.sets != 1 {
		t.Errorf("expected one cache write, got %d", cache.sets)
	}
}

func TestResolveAddressUsesAddressOverName(t *testing.T) {
	var gotAddress string
	r, _ := newTestResolver(t, nil, func(w http.ResponseWriter, req *http.Request) {
		gotAddress = req.URL.Query().Get("address")
		_, _ = w.Write([]byte(`{"status":"1","info":"OK","geocodes":[{"location":"121.48,31.23","formatted_address":"上海市黄浦区","province":"上海市","city":"上海市"}]}`))
	})

	coord := r.ResolveAddress(context.Background(), "外滩茂悦大酒店", "上海市黄浦路199号")
	if coord == nil {
		t.Fatal("expected a coordinate")
	}
	if gotAddress != "上海市黄浦路199号" {
		t.Errorf("expected address text in query, got %q", gotAddress)
	}
}
