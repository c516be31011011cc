package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/domain/repository"
	"github.com/foodspot-microservice/internal/pkg/errors"
)

const statsCacheKey = "stats:search"

// StatsUseCase - агрегированная статистика истории поиска с кешем
type StatsUseCase struct {
	historyRepo repository.HistoryRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewStatsUseCase - создание нового StatsUseCase
func NewStatsUseCase(
	historyRepo repository.HistoryRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		historyRepo: historyRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetStatistics возвращает статистику из кеша или пересчитывает из БД
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.SearchStatistics, error) {
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, statsCacheKey); err == nil && data != nil {
			var stats domain.SearchStatistics
			if err := json.Unmarshal(data, &stats); err == nil {
				return &stats, nil
			}
			uc.logger.Warn("Failed to unmarshal cached stats", zap.Error(err))
		}
	}

	stats, err := uc.historyRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to get search statistics", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := uc.cacheRepo.Set(ctx, statsCacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}
