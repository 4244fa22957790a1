package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/parokitomang/content-service/internal/config"
	"github.com/parokitomang/content-service/internal/domain"
	"github.com/parokitomang/content-service/internal/events"
	"github.com/parokitomang/content-service/internal/persistence"
	"github.com/parokitomang/content-service/internal/repository"
)

const (
	cacheKeySliders = "cache:sliders:active"
	cacheKeyMenus   = "cache:menus:active"
)

// ContentService owns slider and menu items: authenticated writes,
// public cached reads.
type ContentService struct {
	sliders    repository.SliderRepository
	menus      repository.MenuRepository
	cache      *persistence.Redis
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ContentDependencies bundles collaborators for the content service.
type ContentDependencies struct {
	SliderRepo repository.SliderRepository
	MenuRepo   repository.MenuRepository
	Cache      *persistence.Redis
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewContentService builds the service.
func NewContentService(cfg config.Config, deps ContentDependencies) *ContentService {
	return &ContentService{
		sliders:    deps.SliderRepo,
		menus:      deps.MenuRepo,
		cache:      deps.Cache,
		cacheTTL:   cfg.Redis.CacheTTL(),
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// CreateSliderInput carries caller-provided slider fields.
type CreateSliderInput struct {
	ImageBase64 string
	Link        *string
	Order       int
	Active      *bool
}

// CreateMenuInput carries caller-provided menu fields.
type CreateMenuInput struct {
	Title  string
	Icon   string
	Route  *string
	Link   *string
	Order  int
	Active *bool
}

// CreateSlider persists a new slider item on behalf of actor and emits
// a slider_created event. ID and timestamp are assigned here.
func (s *ContentService) CreateSlider(ctx context.Context, input CreateSliderInput, actor domain.Identity) (*domain.SliderItem, error) {
	item := &domain.SliderItem{
		ID:          uuid.NewString(),
		ImageBase64: input.ImageBase64,
		Link:        input.Link,
		Order:       input.Order,
		Active:      activeOrDefault(input.Active),
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.sliders.Create(ctx, item); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cacheKeySliders)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventSliderCreated,
		ContentID: item.ID,
		Actor:     events.Actor{Email: actor.Email, Role: actor.Role},
		Timestamp: time.Now().UTC(),
		Payload: events.SliderCreatedPayload{
			Link:   item.Link,
			Order:  item.Order,
			Active: item.Active,
		},
	})
	return item, nil
}

// ListSliders returns active sliders ordered by position, serving from
// the cache when a fresh copy exists.
func (s *ContentService) ListSliders(ctx context.Context) ([]domain.SliderItem, error) {
	if payload, ok := s.cache.GetCached(ctx, cacheKeySliders); ok {
		var items []domain.SliderItem
		if err := json.Unmarshal(payload, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.sliders.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	s.storeInCache(ctx, cacheKeySliders, items)
	return items, nil
}

// CreateMenu persists a new menu item on behalf of actor and emits a
// menu_created event.
func (s *ContentService) CreateMenu(ctx context.Context, input CreateMenuInput, actor domain.Identity) (*domain.MenuItem, error) {
	item := &domain.MenuItem{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Icon:      input.Icon,
		Route:     input.Route,
		Link:      input.Link,
		Order:     input.Order,
		Active:    activeOrDefault(input.Active),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.menus.Create(ctx, item); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cacheKeyMenus)
	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventMenuCreated,
		ContentID: item.ID,
		Actor:     events.Actor{Email: actor.Email, Role: actor.Role},
		Timestamp: time.Now().UTC(),
		Payload: events.MenuCreatedPayload{
			Title:  item.Title,
			Route:  item.Route,
			Link:   item.Link,
			Order:  item.Order,
			Active: item.Active,
		},
	})
	return item, nil
}

// ListMenus returns active menus ordered by position.
func (s *ContentService) ListMenus(ctx context.Context) ([]domain.MenuItem, error) {
	if payload, ok := s.cache.GetCached(ctx, cacheKeyMenus); ok {
		var items []domain.MenuItem
		if err := json.Unmarshal(payload, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.menus.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	s.storeInCache(ctx, cacheKeyMenus, items)
	return items, nil
}

func (s *ContentService) storeInCache(ctx context.Context, key string, items any) {
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	s.cache.SetCached(ctx, key, payload, s.cacheTTL)
}

func (s *ContentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.Warn("publish event", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

func activeOrDefault(active *bool) bool {
	if active == nil {
		return true
	}
	return *active
}
