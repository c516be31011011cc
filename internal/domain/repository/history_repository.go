package repository

import (
	"context"

	"github.com/foodspot-microservice/internal/domain"
)

// HistoryRepository - хранение истории поиска и агрегированной статистики
type HistoryRepository interface {
	// SaveSearchEvent сохраняет одно событие поиска
	SaveSearchEvent(ctx context.Context, event domain.SearchEvent) error

	// GetStatistics возвращает агрегированную статистику по истории
	GetStatistics(ctx context.Context) (*domain.SearchStatistics, error)
}
