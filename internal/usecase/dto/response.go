package dto

import (
	"github.com/foodspot-microservice/internal/domain"
)

// SearchResponse - результат одного поиска заведений
type SearchResponse struct {
	Venues   []domain.Venue `json:"venues"`
	Total    int            `json:"total"`
	Source   string         `json:"source"`
	CacheHit bool           `json:"cache_hit,omitempty"`
}

// CategoryInfo - элемент справочника категорий фильтра
type CategoryInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// StatsResponse - агрегированная статистика поиска
type StatsResponse struct {
	Stats *domain.SearchStatistics `json:"stats"`
}
