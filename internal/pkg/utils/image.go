package utils

import (
	"fmt"

	"github.com/foodspot-microservice/internal/domain"
)

// Ключевые слова для placeholder-картинок по каноническим категориям
var categoryImageKeywords = map[string]string{
	domain.CategoryRestaurant: "restaurant,food,dining",
	domain.CategoryCafe:       "coffee,cafe,latte",
	domain.CategoryFastFood:   "burger,fries,fastfood",
	domain.CategoryFoodCourt:  "food,meal,dining",
	domain.CategoryDessert:    "icecream,dessert,sweet",
}

// PlaceholderImageURL строит детерминированный URL заглушки по категории
// и идентификатору записи. Чистая функция: повторная нормализация той же
// записи всегда даёт тот же URL.
func PlaceholderImageURL(category, id string) string {
	keywords, ok := categoryImageKeywords[category]
	if !ok {
		keywords = "food,restaurant"
	}
	return fmt.Sprintf("https://source.unsplash.com/400x300/?%s&sig=%s", keywords, id)
}
