package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cafevirtuel/backend/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

// CustomizerServiceConfig holds configuration for the customizer service
type CustomizerServiceConfig struct {
	SessionTTL time.Duration
	Currency   string
	SceneSeed  int64
}

// SessionView is what a screen renders after every event
type SessionView struct {
	ID        string                   `json:"id"`
	Family    string                   `json:"family"`
	Selection domain.SelectionSnapshot `json:"selection"`
	Total     string                   `json:"total"`
	Display   string                   `json:"display"`
	Currency  string                   `json:"currency"`
}

// PriceQuote is a priced breakdown ready for display
type PriceQuote struct {
	domain.PriceBreakdown
	Currency string `json:"currency"`
	Display  string `json:"display"`
}

// sessionRecord is the cached form of an open customizer screen
type sessionRecord struct {
	Family    string                   `json:"family"`
	Selection domain.SelectionSnapshot `json:"selection"`
}

// CustomizerService manages customizer screens: one selection per session,
// mutated by user events and recomputed after each one
type CustomizerService struct {
	catalog    domain.Catalog
	cache      domain.CacheRepository
	scenes     *SceneBuilder
	logger     *zap.Logger
	sessionTTL time.Duration
	currency   string

	// serialises load/mutate/store cycles so events apply in arrival order
	mu sync.Mutex
}

// NewCustomizerService creates a new customizer service with dependencies
func NewCustomizerService(
	catalog domain.Catalog,
	cache domain.CacheRepository,
	logger *zap.Logger,
	config CustomizerServiceConfig,
) *CustomizerService {
	if logger == nil {
		logger = zap.NewNop()
	}

	sessionTTL := config.SessionTTL
	if sessionTTL == 0 {
		sessionTTL = 30 * time.Minute
	}

	currency := config.Currency
	if currency == "" {
		currency = "USD"
	}

	return &CustomizerService{
		catalog:    catalog,
		cache:      cache,
		scenes:     NewSceneBuilder(config.SceneSeed),
		logger:     logger,
		sessionTTL: sessionTTL,
		currency:   currency,
	}
}

// Products lists the configurable product families
func (s *CustomizerService) Products() []domain.Product {
	return s.catalog.Products()
}

// Product returns one product family's option tables
func (s *CustomizerService) Product(family string) (*domain.Product, error) {
	return s.catalog.Product(family)
}

// GroupOptions returns one group's options in display order
func (s *CustomizerService) GroupOptions(family, group string) ([]domain.Option, error) {
	return s.catalog.OptionsInGroup(family, group)
}

// Option returns one option of a group
func (s *CustomizerService) Option(family, group, id string) (domain.Option, error) {
	return s.catalog.OptionByID(family, group, id)
}

// Currency returns the currency prices are quoted in
func (s *CustomizerService) Currency() string {
	return s.currency
}

// OpenSession opens a customizer screen with every group on its default
func (s *CustomizerService) OpenSession(ctx context.Context, family string) (*SessionView, error) {
	product, err := s.catalog.Product(family)
	if err != nil {
		return nil, err
	}

	sel := NewSelection(product)
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store(ctx, id, sel); err != nil {
		return nil, err
	}

	s.logger.Info("customizer session opened",
		zap.String("session_id", id),
		zap.String("family", family))

	return s.view(id, sel), nil
}

// GetSession returns the current state of a screen
func (s *CustomizerService) GetSession(ctx context.Context, id string) (*SessionView, error) {
	sel, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(id, sel), nil
}

// SelectSingle applies a single-choice event to a screen
func (s *CustomizerService) SelectSingle(ctx context.Context, id, group, optionID string) (*SessionView, error) {
	return s.mutate(ctx, id, func(sel *Selection) error {
		return sel.SelectSingle(group, optionID)
	})
}

// ToggleMultiple applies a multi-choice event to a screen
func (s *CustomizerService) ToggleMultiple(ctx context.Context, id, group, optionID string, include bool) (*SessionView, error) {
	return s.mutate(ctx, id, func(sel *Selection) error {
		return sel.ToggleMultiple(group, optionID, include)
	})
}

// Price returns the itemised price of a screen's configuration
func (s *CustomizerService) Price(ctx context.Context, id string) (*PriceQuote, error) {
	sel, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	breakdown := BreakdownPrice(sel.Product(), sel.Snapshot())
	return &PriceQuote{
		PriceBreakdown: breakdown,
		Currency:       s.currency,
		Display:        FormatMoney(s.currency, breakdown.Total),
	}, nil
}

// Scene returns the render-ready description of a screen's configuration
func (s *CustomizerService) Scene(ctx context.Context, id string) (*domain.Scene, error) {
	sel, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	scene := s.scenes.BuildScene(sel.Product(), sel.Snapshot())
	return &scene, nil
}

// CloseSession discards a screen's selection
func (s *CustomizerService) CloseSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	sel.Discard()

	if err := s.cache.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	s.logger.Info("customizer session closed", zap.String("session_id", id))
	return nil
}

// mutate runs one event: load, apply, recompute, store. A rejected event
// leaves the stored selection untouched.
func (s *CustomizerService) mutate(ctx context.Context, id string, apply func(*Selection) error) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(sel); err != nil {
		s.logger.Debug("customizer event rejected",
			zap.String("session_id", id),
			zap.Error(err))
		return nil, err
	}

	if err := s.store(ctx, id, sel); err != nil {
		return nil, err
	}

	view := s.view(id, sel)
	s.logger.Debug("customizer event applied",
		zap.String("session_id", id),
		zap.String("total", view.Total))

	return view, nil
}

func (s *CustomizerService) view(id string, sel *Selection) *SessionView {
	total := sel.Total()
	return &SessionView{
		ID:        id,
		Family:    sel.Product().Family,
		Selection: sel.Snapshot(),
		Total:     FormatPrice(total),
		Display:   FormatMoney(s.currency, total),
		Currency:  s.currency,
	}
}

func (s *CustomizerService) store(ctx context.Context, id string, sel *Selection) error {
	record := sessionRecord{
		Family:    sel.Product().Family,
		Selection: sel.Snapshot(),
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+id, record, s.sessionTTL); err != nil {
		return fmt.Errorf("storing session: %w", err)
	}
	return nil
}

// load rebuilds a session's selection from the cache
func (s *CustomizerService) load(ctx context.Context, id string) (*Selection, error) {
	value, err := s.cache.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}

	record, ok := toSessionRecord(value)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	product, err := s.catalog.Product(record.Family)
	if err != nil {
		return nil, err
	}

	sel, err := RestoreSelection(product, record.Selection)
	if err != nil {
		// the catalog changed under the session: keep what still resolves
		s.logger.Warn("restoring stale session selection",
			zap.String("session_id", id),
			zap.Error(err))
		sel, err = RestoreSelection(product, Resolve(product, record.Selection).Snapshot())
		if err != nil {
			return nil, err
		}
	}

	return sel, nil
}

// toSessionRecord accepts both the stored struct and its JSON-decoded map form
func toSessionRecord(value interface{}) (sessionRecord, bool) {
	switch v := value.(type) {
	case sessionRecord:
		return v, true
	case *sessionRecord:
		return *v, v != nil
	case map[string]interface{}:
		family, ok := v["family"].(string)
		if !ok {
			return sessionRecord{}, false
		}
		record := sessionRecord{Family: family, Selection: make(domain.SelectionSnapshot)}
		groups, _ := v["selection"].(map[string]interface{})
		for group, raw := range groups {
			ids, _ := raw.([]interface{})
			list := make([]string, 0, len(ids))
			for _, id := range ids {
				if str, ok := id.(string); ok {
					list = append(list, str)
				}
			}
			record.Selection[group] = list
		}
		return record, true
	default:
		return sessionRecord{}, false
	}
}
