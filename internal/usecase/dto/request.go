package dto

import (
	"github.com/foodspot-microservice/internal/domain"
)

// SearchRequest - параметры поиска заведений. Координаты опциональны:
// при их отсутствии use case подставляет дефолтную точку из конфигурации.
type SearchRequest struct {
	Lat        *float64 `query:"lat" json:"lat" validate:"omitempty,min=-90,max=90"`
	Lng        *float64 `query:"lng" json:"lng" validate:"omitempty,min=-180,max=180"`
	Query      string   `query:"q" json:"q" validate:"omitempty,max=200"`
	Category   string   `query:"category" json:"category" validate:"omitempty,oneof=all street_food cafe dessert fine_dining"`
	PriceRange string   `query:"price_range" json:"price_range" validate:"omitempty,oneof=any cheap moderate expensive luxury"`
	OpenNow    bool     `query:"open_now" json:"open_now"`
	SortBy     string   `query:"sort_by" json:"sort_by" validate:"omitempty,oneof=distance trending rating"`
}

// ToFilters преобразует запрос в доменный набор фильтров с дефолтами
func (r SearchRequest) ToFilters() domain.SearchFilters {
	category := r.Category
	if category == "" {
		category = domain.FilterCategoryAll
	}
	priceRange := r.PriceRange
	if priceRange == "" {
		priceRange = domain.PriceAny
	}
	sortBy := r.SortBy
	if sortBy == "" {
		sortBy = domain.SortByDistance
	}

	return domain.SearchFilters{
		Query:      r.Query,
		Category:   category,
		PriceRange: priceRange,
		OpenNow:    r.OpenNow,
		SortBy:     sortBy,
	}
}
