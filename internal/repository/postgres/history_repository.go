package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/domain/repository"
)

const topQueriesLimit = 10

type historyRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewHistoryRepository создает новый экземпляр history repository
func NewHistoryRepository(db *DB, logger *zap.Logger) repository.HistoryRepository {
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// SaveSearchEvent сохраняет одно событие поиска в историю
func (r *historyRepository) SaveSearchEvent(ctx context.Context, event domain.SearchEvent) error {
	query := `
		INSERT INTO search_events (
			request_id, lat, lon, search_query, category, price_range,
			open_now, sort_by, source, result_count, cache_hit,
			duration_ms, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (request_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		event.RequestID,
		event.Lat,
		event.Lon,
		event.Filters.Query,
		event.Filters.Category,
		event.Filters.PriceRange,
		event.Filters.OpenNow,
		event.Filters.SortBy,
		event.Source,
		event.ResultCount,
		event.CacheHit,
		event.DurationMs,
		event.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save search event",
			zap.String("request_id", event.RequestID),
			zap.Error(err))
		return fmt.Errorf("save search event: %w", err)
	}

	return nil
}

// GetStatistics возвращает агрегированную статистику по истории поиска
func (r *historyRepository) GetStatistics(ctx context.Context) (*domain.SearchStatistics, error) {
	stats := &domain.SearchStatistics{
		BySource:    make(map[string]int),
		ByCategory:  make(map[string]int),
		LastUpdated: time.Now().UTC(),
	}

	if err := r.db.GetContext(ctx, &stats.TotalSearches,
		`SELECT COUNT(*) FROM search_events`); err != nil {
		return nil, fmt.Errorf("query total searches: %w", err)
	}

	if err := r.db.GetContext(ctx, &stats.EmptySearches,
		`SELECT COUNT(*) FROM search_events WHERE result_count = 0`); err != nil {
		return nil, fmt.Errorf("query empty searches: %w", err)
	}

	bySource, err := r.countBy(ctx, "source")
	if err != nil {
		return nil, fmt.Errorf("query searches by source: %w", err)
	}
	stats.BySource = bySource

	byCategory, err := r.countByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("query searches by category: %w", err)
	}
	stats.ByCategory = byCategory

	topQueries, err := r.topQueries(ctx)
	if err != nil {
		return nil, fmt.Errorf("query top queries: %w", err)
	}
	stats.TopQueries = topQueries

	return stats, nil
}

// countBy группирует события по одной из колонок-измерений
func (r *historyRepository) countBy(ctx context.Context, column string) (map[string]int, error) {
	// column приходит только из собственного кода, не из запроса
	query := fmt.Sprintf(`
		SELECT %s AS dim, COUNT(*) AS cnt
		FROM search_events
		GROUP BY %s
		ORDER BY cnt DESC
	`, column, column)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var dim string
		var cnt int
		if err := rows.Scan(&dim, &cnt); err != nil {
			return nil, err
		}
		result[dim] = cnt
	}

	return result, rows.Err()
}

// countByCategory считает поиски по известным категориям фильтра,
// значения вне справочника в статистику не попадают
func (r *historyRepository) countByCategory(ctx context.Context) (map[string]int, error) {
	categories := []string{
		domain.FilterCategoryAll,
		domain.FilterCategoryStreetFood,
		domain.FilterCategoryCafe,
		domain.FilterCategoryDessert,
		domain.FilterCategoryFineDining,
	}

	query := `
		SELECT category, COUNT(*) AS cnt
		FROM search_events
		WHERE category = ANY($1)
		GROUP BY category
		ORDER BY cnt DESC
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(categories))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int)
	for rows.Next() {
		var category string
		var cnt int
		if err := rows.Scan(&category, &cnt); err != nil {
			return nil, err
		}
		result[category] = cnt
	}

	return result, rows.Err()
}

func (r *historyRepository) topQueries(ctx context.Context) ([]domain.QueryCount, error) {
	query := `
		SELECT search_query, COUNT(*) AS cnt
		FROM search_events
		WHERE search_query <> ''
		GROUP BY search_query
		ORDER BY cnt DESC, search_query
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, topQueriesLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.QueryCount
	for rows.Next() {
		var qc domain.QueryCount
		if err := rows.Scan(&qc.Query, &qc.Count); err != nil {
			return nil, err
		}
		result = append(result, qc)
	}

	return result, rows.Err()
}
