package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/pkg/utils"
)

func TestPlaceholderImageURL(t *testing.T) {
	t.Run("deterministic for same input", func(t *testing.T) {
		first := utils.PlaceholderImageURL(domain.CategoryCafe, "osm-42")
		second := utils.PlaceholderImageURL(domain.CategoryCafe, "osm-42")
		assert.Equal(t, first, second)
	})

	t.Run("uses category keywords", func(t *testing.T) {
		url := utils.PlaceholderImageURL(domain.CategoryDessert, "osm-1")
		assert.Contains(t, url, "icecream,dessert,sweet")
		assert.Contains(t, url, "sig=osm-1")
	})

	t.Run("unknown category falls back to generic keywords", func(t *testing.T) {
		url := utils.PlaceholderImageURL("something_else", "x")
		assert.Contains(t, url, "food,restaurant")
	})

	t.Run("id keeps urls distinct", func(t *testing.T) {
		a := utils.PlaceholderImageURL(domain.CategoryCafe, "osm-1")
		b := utils.PlaceholderImageURL(domain.CategoryCafe, "osm-2")
		assert.NotEqual(t, a, b)
	})
}
