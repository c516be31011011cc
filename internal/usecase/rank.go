package usecase

import (
	"sort"
	"strings"

	"github.com/foodspot-microservice/internal/domain"
)

// ApplyFilters применяет предикаты фильтров, сортирует по выбранному
// критерию и обрезает до maxResults. Вход не мутируется, результат -
// новый срез; при одинаковом входе порядок всегда одинаковый.
func ApplyFilters(venues []domain.Venue, filters domain.SearchFilters, maxResults int) []domain.Venue {
	query := strings.ToLower(strings.TrimSpace(filters.Query))
	allowed := allowedCategories(filters.Category)

	filtered := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if query != "" && !matchesQuery(v, query) {
			continue
		}
		// Категорийный фильтр уже применён на уровне структурного
		// источника; здесь повторяется защитно
		if allowed != nil && !allowed[v.Category] {
			continue
		}
		if !matchesPrice(v, filters.PriceRange) {
			continue
		}
		filtered = append(filtered, v)
	}

	// Стабильная сортировка: при равенстве сохраняется порядок батча
	if filters.WantsPopularity() {
		sort.SliceStable(filtered, func(i, j int) bool {
			return popularityOf(filtered[i]) > popularityOf(filtered[j])
		})
	} else {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DistanceKm < filtered[j].DistanceKm
		})
	}

	// Обрезка строго после сортировки: ранжирование должно видеть весь
	// отфильтрованный набор
	if maxResults > 0 && len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}

	return filtered
}

// matchesQuery - регистронезависимое вхождение подстроки в имя, кухню
// или адрес
func matchesQuery(v domain.Venue, query string) bool {
	return strings.Contains(strings.ToLower(v.Name), query) ||
		strings.Contains(strings.ToLower(v.Cuisine), query) ||
		strings.Contains(strings.ToLower(v.Address), query)
}

// matchesPrice пропускает заведения без уровня цен: его отдаёт только
// генеративный источник
func matchesPrice(v domain.Venue, priceRange string) bool {
	if priceRange == "" || priceRange == domain.PriceAny || v.PriceLevel == "" {
		return true
	}
	return strings.EqualFold(v.PriceLevel, priceRange)
}

// allowedCategories возвращает множество канонических категорий для
// категории фильтра; nil означает отсутствие ограничения
func allowedCategories(filterCategory string) map[string]bool {
	if filterCategory == "" || filterCategory == domain.FilterCategoryAll {
		return nil
	}

	allowed := make(map[string]bool)
	for _, amenity := range domain.CategoryAmenities(filterCategory) {
		allowed[domain.NormalizeCategory(amenity)] = true
	}
	return allowed
}

func popularityOf(v domain.Venue) float64 {
	if v.PopularityScore == nil {
		return 0
	}
	return *v.PopularityScore
}
