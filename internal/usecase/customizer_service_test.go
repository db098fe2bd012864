package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cafevirtuel/backend/internal/domain"
	"github.com/cafevirtuel/backend/internal/infrastructure/cache"
	"github.com/cafevirtuel/backend/internal/infrastructure/catalog"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	mu        sync.Mutex
	data      map[string]interface{}
	ttls      map[string]time.Duration
	getError  error
	setError  error
	setCalled int
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string]interface{}),
		ttls: make(map[string]time.Duration),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalled++
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok, nil
}

func newTestService(t *testing.T, repo domain.CacheRepository) *CustomizerService {
	t.Helper()
	cat, err := catalog.NewDefault()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return NewCustomizerService(cat, repo, nil, CustomizerServiceConfig{SceneSeed: 1})
}

func TestNewCustomizerService(t *testing.T) {
	cat, err := catalog.NewDefault()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	repo := NewMockCacheRepository()

	t.Run("creates service with default values", func(t *testing.T) {
		svc := NewCustomizerService(cat, repo, nil, CustomizerServiceConfig{})
		if svc == nil {
			t.Fatal("expected service to be created")
		}
		if svc.sessionTTL != 30*time.Minute {
			t.Errorf("sessionTTL = %v, want 30m", svc.sessionTTL)
		}
		if svc.Currency() != "USD" {
			t.Errorf("currency = %q, want USD", svc.Currency())
		}
		if svc.logger == nil {
			t.Error("expected a no-op logger")
		}
	})

	t.Run("creates service with custom values", func(t *testing.T) {
		svc := NewCustomizerService(cat, repo, nil, CustomizerServiceConfig{
			SessionTTL: 5 * time.Minute,
			Currency:   "EUR",
		})
		if svc.sessionTTL != 5*time.Minute {
			t.Errorf("sessionTTL = %v, want 5m", svc.sessionTTL)
		}
		if svc.Currency() != "EUR" {
			t.Errorf("currency = %q, want EUR", svc.Currency())
		}
	})
}

func TestOpenSession(t *testing.T) {
	ctx := context.Background()

	t.Run("opens with defaults and stores the session", func(t *testing.T) {
		repo := NewMockCacheRepository()
		svc := newTestService(t, repo)

		view, err := svc.OpenSession(ctx, catalog.FamilyCoffee)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.ID == "" {
			t.Error("expected a session id")
		}
		if view.Total != "3.00" {
			t.Errorf("total = %s, want 3.00", view.Total)
		}
		if view.Display != "$3.00" {
			t.Errorf("display = %s, want $3.00", view.Display)
		}
		if got := view.Selection["size"]; len(got) != 1 || got[0] != "medium" {
			t.Errorf("size = %v, want [medium]", got)
		}
		if ttl := repo.ttls[sessionKeyPrefix+view.ID]; ttl != 30*time.Minute {
			t.Errorf("stored ttl = %v, want 30m", ttl)
		}
	})

	t.Run("unknown family is not found", func(t *testing.T) {
		svc := newTestService(t, NewMockCacheRepository())

		_, err := svc.OpenSession(ctx, "pizza")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("store failure is returned", func(t *testing.T) {
		repo := NewMockCacheRepository()
		repo.setError = errors.New("cache down")
		svc := newTestService(t, repo)

		_, err := svc.OpenSession(ctx, catalog.FamilyCake)
		if err == nil {
			t.Error("expected error")
		}
	})
}

func TestSessionEvents(t *testing.T) {
	ctx := context.Background()

	// run against both the mock and the JSON round-tripping memory cache
	repos := map[string]func(t *testing.T) domain.CacheRepository{
		"mock": func(t *testing.T) domain.CacheRepository { return NewMockCacheRepository() },
		"memory": func(t *testing.T) domain.CacheRepository {
			mc := cache.NewMemoryCache(time.Minute)
			t.Cleanup(mc.Close)
			return mc
		},
	}

	for name, newRepo := range repos {
		t.Run(name, func(t *testing.T) {
			svc := newTestService(t, newRepo(t))

			view, err := svc.OpenSession(ctx, catalog.FamilyCoffee)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			id := view.ID

			if _, err := svc.SelectSingle(ctx, id, "type", "americano"); err != nil {
				t.Fatalf("select type: %v", err)
			}
			if _, err := svc.ToggleMultiple(ctx, id, "toppings", "caramel", true); err != nil {
				t.Fatalf("toggle caramel: %v", err)
			}
			view, err = svc.ToggleMultiple(ctx, id, "toppings", "cream", true)
			if err != nil {
				t.Fatalf("toggle cream: %v", err)
			}
			if view.Total != "4.75" {
				t.Errorf("total = %s, want 4.75", view.Total)
			}

			// rejected event leaves the stored session alone
			if _, err := svc.SelectSingle(ctx, id, "size", "venti"); !errors.Is(err, domain.ErrInvalidOption) {
				t.Errorf("error = %v, want ErrInvalidOption", err)
			}

			view, err = svc.GetSession(ctx, id)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if view.Total != "4.75" {
				t.Errorf("total after rejected event = %s, want 4.75", view.Total)
			}
			if got := view.Selection["toppings"]; len(got) != 2 || got[0] != "cream" || got[1] != "caramel" {
				t.Errorf("toppings = %v, want [cream caramel]", got)
			}

			quote, err := svc.Price(ctx, id)
			if err != nil {
				t.Fatalf("price: %v", err)
			}
			if len(quote.Lines) != 4 {
				t.Errorf("lines = %d, want 4", len(quote.Lines))
			}
			if quote.Display != "$4.75" {
				t.Errorf("display = %s, want $4.75", quote.Display)
			}

			scene, err := svc.Scene(ctx, id)
			if err != nil {
				t.Fatalf("scene: %v", err)
			}
			if scene.Family != catalog.FamilyCoffee {
				t.Errorf("scene family = %s, want coffee", scene.Family)
			}

			if err := svc.CloseSession(ctx, id); err != nil {
				t.Fatalf("close: %v", err)
			}
			if _, err := svc.GetSession(ctx, id); !errors.Is(err, domain.ErrSessionNotFound) {
				t.Errorf("error after close = %v, want ErrSessionNotFound", err)
			}
		})
	}
}

func TestSessionNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, NewMockCacheRepository())

	if _, err := svc.GetSession(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("get: error = %v, want ErrSessionNotFound", err)
	}
	if _, err := svc.SelectSingle(ctx, "missing", "type", "latte"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("select: error = %v, want ErrSessionNotFound", err)
	}
	if err := svc.CloseSession(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("close: error = %v, want ErrSessionNotFound", err)
	}
}

func TestLoad_StaleSessionKeepsWhatResolves(t *testing.T) {
	ctx := context.Background()
	repo := NewMockCacheRepository()
	svc := newTestService(t, repo)

	repo.data[sessionKeyPrefix+"old"] = map[string]interface{}{
		"family": "cake",
		"selection": map[string]interface{}{
			"type":     []interface{}{"tiramisu"},
			"toppings": []interface{}{"nuts", "gold_leaf"},
			"size":     []interface{}{"large"},
		},
	}

	view, err := svc.GetSession(ctx, "old")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := view.Selection["type"]; len(got) != 1 || got[0] != "chocolate" {
		t.Errorf("type = %v, want [chocolate]", got)
	}
	if got := view.Selection["toppings"]; len(got) != 1 || got[0] != "nuts" {
		t.Errorf("toppings = %v, want [nuts]", got)
	}
	// chocolate 4.50 + buttercream 0.50 + nuts 0.75 + large 4.00
	if view.Total != "9.75" {
		t.Errorf("total = %s, want 9.75", view.Total)
	}
}

func TestLoad_CorruptRecord(t *testing.T) {
	repo := NewMockCacheRepository()
	repo.data[sessionKeyPrefix+"bad"] = 42
	svc := newTestService(t, repo)

	if _, err := svc.GetSession(context.Background(), "bad"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionEvents_Concurrent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, NewMockCacheRepository())

	view, err := svc.OpenSession(ctx, catalog.FamilyCake)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	toppings := []string{"sprinkles", "chocolate_chips", "fruits", "nuts", "caramel"}
	var wg sync.WaitGroup
	for _, topping := range toppings {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := svc.ToggleMultiple(ctx, view.ID, "toppings", id, true); err != nil {
				t.Errorf("toggle %s: %v", id, err)
			}
		}(topping)
	}
	wg.Wait()

	view, err = svc.GetSession(ctx, view.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := len(view.Selection["toppings"]); got != len(toppings) {
		t.Errorf("toppings = %d, want %d (no lost updates)", got, len(toppings))
	}
}

func TestLoad_StaleSizeFallsBackToFirstSize(t *testing.T) {
	repo := NewMockCacheRepository()
	repo.data[sessionKeyPrefix+"old"] = sessionRecord{
		Family:    "coffee",
		Selection: domain.SelectionSnapshot{"type": {"espresso"}, "toppings": {}, "size": {"venti"}},
	}
	svc := newTestService(t, repo)

	view, err := svc.GetSession(context.Background(), "old")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := view.Selection["size"]; len(got) != 1 || got[0] != "small" {
		t.Errorf("size = %v, want [small]", got)
	}
	if view.Total != "2.50" {
		t.Errorf("total = %s, want 2.50", view.Total)
	}
}

func TestGroupOptions(t *testing.T) {
	svc := newTestService(t, NewMockCacheRepository())

	options, err := svc.GroupOptions("coffee", "toppings")
	if err != nil {
		t.Fatalf("GroupOptions() error = %v", err)
	}
	if len(options) != 4 || options[0].ID != "cream" {
		t.Errorf("GroupOptions() = %v, want 4 toppings starting with cream", options)
	}

	if _, err := svc.GroupOptions("coffee", "frosting"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown group: error = %v, want ErrNotFound", err)
	}
}

func TestOption(t *testing.T) {
	svc := newTestService(t, NewMockCacheRepository())

	opt, err := svc.Option("coffee", "type", "latte")
	if err != nil {
		t.Fatalf("Option() error = %v", err)
	}
	if opt.DisplayName != "Latte" || opt.UnitPrice.StringFixed(2) != "3.50" {
		t.Errorf("Option() = %+v, want Latte at 3.50", opt)
	}

	if _, err := svc.Option("coffee", "type", "frappe"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown option: error = %v, want ErrNotFound", err)
	}
}
