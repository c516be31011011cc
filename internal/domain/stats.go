package domain

import "time"

// SearchStatistics - агрегированная статистика по истории поиска
type SearchStatistics struct {
	TotalSearches int64          `json:"total_searches"`
	BySource      map[string]int `json:"by_source"`
	ByCategory    map[string]int `json:"by_category"`
	TopQueries    []QueryCount   `json:"top_queries"`
	EmptySearches int64          `json:"empty_searches"`
	LastUpdated   time.Time      `json:"last_updated"`
}

// QueryCount - частота текстового запроса
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}
