package repository

import (
	"context"

	"github.com/foodspot-microservice/internal/domain"
)

// VenueSource - контракт источника сырых кандидатов. Структурный (Overpass)
// и генеративный (LLM) адаптеры взаимозаменяемы за этим интерфейсом.
type VenueSource interface {
	// FetchRawCandidates выполняет один запрос к внешнему источнику и
	// возвращает сырые записи вокруг точки. Транспортные сбои - ошибка,
	// неразбираемый ответ генеративного источника - пустой срез без ошибки.
	FetchRawCandidates(ctx context.Context, lat, lon float64, filters domain.SearchFilters) ([]domain.RawVenue, error)

	// Name возвращает идентификатор источника для логов и статистики
	Name() string
}
