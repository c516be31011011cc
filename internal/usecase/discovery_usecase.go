package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foodspot-microservice/internal/config"
	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/domain/repository"
	"github.com/foodspot-microservice/internal/pkg/errors"
	"github.com/foodspot-microservice/internal/pkg/utils"
	"github.com/foodspot-microservice/internal/usecase/dto"
)

// DiscoveryUseCase - поиск заведений: источник -> нормализация ->
// фильтрация/ранжирование. Состояния между вызовами нет, каждый поиск
// независим.
type DiscoveryUseCase struct {
	structured repository.VenueSource
	generative repository.VenueSource
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
	cacheTTL   time.Duration
	maxResults int
	defaultLat float64
	defaultLon float64
}

// NewDiscoveryUseCase - создание нового DiscoveryUseCase. Генеративный
// источник и стрим событий опциональны (nil допустим).
func NewDiscoveryUseCase(
	structured repository.VenueSource,
	generative repository.VenueSource,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	searchCfg config.SearchConfig,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		structured: structured,
		generative: generative,
		cacheRepo:  cacheRepo,
		streamRepo: streamRepo,
		logger:     logger,
		cacheTTL:   cacheTTL,
		maxResults: searchCfg.MaxResults,
		defaultLat: searchCfg.DefaultLat,
		defaultLon: searchCfg.DefaultLon,
	}
}

// Search - единственная входная точка пайплайна. Пустой результат - не
// ошибка; наружу как отказ выходят только транспортные сбои источника.
func (uc *DiscoveryUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	started := time.Now()

	// Дефолтная точка из конфигурации, когда вызов пришёл без координат
	lat, lon := uc.defaultLat, uc.defaultLon
	if req.Lat != nil && req.Lng != nil {
		lat, lon = *req.Lat, *req.Lng
	}
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	filters := req.ToFilters()
	source := uc.selectSource(filters)

	cacheKey := searchCacheKey(source.Name(), lat, lon, filters)
	if cached := uc.lookupCache(ctx, cacheKey); cached != nil {
		uc.publishEvent(ctx, lat, lon, filters, source.Name(), cached.Total, true, started)
		return cached, nil
	}

	rawVenues, err := source.FetchRawCandidates(ctx, lat, lon, filters)
	if err != nil {
		uc.logger.Error("Venue source request failed",
			zap.String("source", source.Name()),
			zap.Error(err))
		return nil, errors.ErrSourceUnavailable
	}

	venues := NormalizeVenues(rawVenues, lat, lon)
	venues = ApplyFilters(venues, filters, uc.maxResults)

	resp := &dto.SearchResponse{
		Venues: venues,
		Total:  len(venues),
		Source: source.Name(),
	}

	uc.storeCache(ctx, cacheKey, resp)
	uc.publishEvent(ctx, lat, lon, filters, source.Name(), resp.Total, false, started)

	uc.logger.Info("Search completed",
		zap.String("source", source.Name()),
		zap.Int("raw", len(rawVenues)),
		zap.Int("returned", resp.Total),
		zap.Duration("elapsed", time.Since(started)))

	return resp, nil
}

// selectSource: trending/rating уходят в генеративный источник, когда он
// сконфигурирован; остальное - структурный
func (uc *DiscoveryUseCase) selectSource(filters domain.SearchFilters) repository.VenueSource {
	if filters.WantsPopularity() && uc.generative != nil {
		return uc.generative
	}
	return uc.structured
}

func searchCacheKey(source string, lat, lon float64, f domain.SearchFilters) string {
	return fmt.Sprintf("search:%s:%.4f:%.4f:%s:%s:%s:%s:%t",
		source, lat, lon, f.Query, f.Category, f.PriceRange, f.SortBy, f.OpenNow)
}

// lookupCache возвращает закешированный ответ или nil; любые проблемы
// кеша деградируют до свежего запроса
func (uc *DiscoveryUseCase) lookupCache(ctx context.Context, key string) *dto.SearchResponse {
	if uc.cacheRepo == nil {
		return nil
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || data == nil {
		return nil
	}

	var cached dto.SearchResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		uc.logger.Warn("Failed to unmarshal cached search result", zap.Error(err))
		return nil
	}

	cached.CacheHit = true
	return &cached
}

func (uc *DiscoveryUseCase) storeCache(ctx context.Context, key string, resp *dto.SearchResponse) {
	if uc.cacheRepo == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal search result for cache", zap.Error(err))
		return
	}

	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache search result", zap.Error(err))
	}
}

// publishEvent отправляет событие поиска в стрим для истории и
// статистики, best-effort
func (uc *DiscoveryUseCase) publishEvent(
	ctx context.Context,
	lat, lon float64,
	filters domain.SearchFilters,
	source string,
	resultCount int,
	cacheHit bool,
	started time.Time,
) {
	if uc.streamRepo == nil {
		return
	}

	event := domain.SearchEvent{
		RequestID:   uuid.NewString(),
		Lat:         lat,
		Lon:         lon,
		Filters:     filters,
		Source:      source,
		ResultCount: resultCount,
		CacheHit:    cacheHit,
		DurationMs:  float64(time.Since(started).Microseconds()) / 1000.0,
		CreatedAt:   time.Now().UTC(),
	}

	if err := uc.streamRepo.PublishSearchEvent(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish search event", zap.Error(err))
	}
}
