package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"photobooking/internal/domain"
)

const photographersKey = "photographers"

type Service struct {
	repo     PhotographerRepository
	services []domain.ServiceOffering
	cache    Cache
	cacheTTL time.Duration
	log      *zap.Logger
}

// NewService builds the read side of the catalog. cache may be nil.
func NewService(repo PhotographerRepository, services []domain.ServiceOffering, cache Cache, cacheTTL time.Duration, log *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		services: services,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log.With(zap.String("component", "catalog")),
	}
}

// Photographers lists the roster, through the cache when one is configured.
// Cache failures fall through to the store.
func (s *Service) Photographers(ctx context.Context) ([]domain.Photographer, error) {
	if s.cache != nil {
		if cached, ok := s.fromCache(ctx); ok {
			return cached, nil
		}
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if b, err := json.Marshal(list); err == nil {
			if err := s.cache.Set(ctx, photographersKey, b, s.cacheTTL); err != nil {
				s.log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}
	return list, nil
}

func (s *Service) fromCache(ctx context.Context) ([]domain.Photographer, bool) {
	b, err := s.cache.Get(ctx, photographersKey)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			s.log.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var list []domain.Photographer
	if err := json.Unmarshal(b, &list); err != nil {
		s.log.Warn("catalog cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return list, true
}

// Services returns the static list of offerings.
func (s *Service) Services() []domain.ServiceOffering {
	return s.services
}
