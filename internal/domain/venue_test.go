package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodspot-microservice/internal/domain"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{"", domain.CategoryRestaurant},
		{"restaurant", domain.CategoryRestaurant},
		{"fine_dining", domain.CategoryRestaurant},
		{"cafe", domain.CategoryCafe},
		{"coffee_shop", domain.CategoryCafe},
		{"fast_food", domain.CategoryFastFood},
		{"street_food", domain.CategoryFastFood},
		{"food_court", domain.CategoryFoodCourt},
		{"ice_cream", domain.CategoryDessert},
		{"dessert", domain.CategoryDessert},
		{"biergarten", domain.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run("source "+tt.source, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.NormalizeCategory(tt.source))
		})
	}
}

func TestCategoryAmenities(t *testing.T) {
	t.Run("street food maps to fast food and food court", func(t *testing.T) {
		assert.Equal(t, []string{"fast_food", "food_court"}, domain.CategoryAmenities(domain.FilterCategoryStreetFood))
	})

	t.Run("dessert includes cafes", func(t *testing.T) {
		assert.Equal(t, []string{"ice_cream", "cafe"}, domain.CategoryAmenities(domain.FilterCategoryDessert))
	})

	t.Run("fine dining is restaurants only", func(t *testing.T) {
		assert.Equal(t, []string{"restaurant"}, domain.CategoryAmenities(domain.FilterCategoryFineDining))
	})

	t.Run("all and unknown give full set", func(t *testing.T) {
		full := []string{"restaurant", "cafe", "fast_food", "food_court"}
		assert.Equal(t, full, domain.CategoryAmenities(domain.FilterCategoryAll))
		assert.Equal(t, full, domain.CategoryAmenities("whatever"))
	})
}

func TestSearchFiltersWantsPopularity(t *testing.T) {
	assert.False(t, domain.SearchFilters{SortBy: domain.SortByDistance}.WantsPopularity())
	assert.True(t, domain.SearchFilters{SortBy: domain.SortByTrending}.WantsPopularity())
	assert.True(t, domain.SearchFilters{SortBy: domain.SortByRating}.WantsPopularity())
	assert.False(t, domain.SearchFilters{}.WantsPopularity())
}
