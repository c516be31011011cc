package domain

// Канонические категории заведений
const (
	CategoryRestaurant = "restaurant"
	CategoryCafe       = "cafe"
	CategoryFastFood   = "fast_food"
	CategoryFoodCourt  = "food_court"
	CategoryDessert    = "dessert"
	CategoryUnknown    = "unknown"
)

// Категории фильтра (значения, которые присылает клиент)
const (
	FilterCategoryAll        = "all"
	FilterCategoryStreetFood = "street_food"
	FilterCategoryCafe       = "cafe"
	FilterCategoryDessert    = "dessert"
	FilterCategoryFineDining = "fine_dining"
)

// Уровни цен (генеративный источник)
const (
	PriceCheap     = "Cheap"
	PriceModerate  = "Moderate"
	PriceExpensive = "Expensive"
	PriceLuxury    = "Luxury"
	PriceAny       = "any"
)

// Режимы сортировки
const (
	SortByDistance = "distance"
	SortByTrending = "trending"
	SortByRating   = "rating"
)

// Venue - каноническая запись заведения, собранная из сырых данных источника.
// Создаётся заново на каждый поиск и после этого не мутируется.
type Venue struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Address      string  `json:"address"`
	Cuisine      string  `json:"cuisine"`
	Phone        string  `json:"phone"`
	Website      string  `json:"website"`
	OpeningHours string  `json:"opening_hours"`
	DistanceKm   float64 `json:"distance_km"`
	ImageURL     string  `json:"image_url"`

	// Расширенные атрибуты генеративного источника
	Description     string   `json:"description,omitempty"`
	PopularityScore *float64 `json:"popularity_score,omitempty"`
	ReviewCount     *int     `json:"review_count,omitempty"`
	PriceLevel      string   `json:"price_level,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	MustTryItem     string   `json:"must_try_item,omitempty"`
	IsOpen          *bool    `json:"is_open,omitempty"`
}

// RawVenue - сырая запись кандидата до нормализации. Адаптеры источников
// маппят свои payload'ы в эту структуру, остальной пайплайн от источника
// не зависит.
type RawVenue struct {
	// NativeID уже с namespace источника (например "osm-4721"); пустая
	// строка означает, что нормализатор должен синтезировать id по индексу.
	NativeID string
	Name     string
	Lat      *float64
	Lon      *float64

	// Таксономия источника: OSM amenity или категория из ответа модели
	Category string

	// Готовый адрес, если источник его отдаёт; иначе собирается из Tags
	Address string
	// Сырые теги источника (addr:*, contact:* и т.д.)
	Tags map[string]string

	Cuisine      string
	Phone        string
	Website      string
	OpeningHours string
	ImageURL     string

	// Поля генеративного источника
	Description  string
	GoogleRating float64
	WebRating    float64
	ReviewCount  int
	PriceLevel   string
	Labels       []string
	MustTryItem  string
	IsOpen       *bool
}

// SearchFilters - неизменяемый набор фильтров одного поискового вызова
type SearchFilters struct {
	Query      string `json:"query"`
	Category   string `json:"category"`
	PriceRange string `json:"price_range"`
	OpenNow    bool   `json:"open_now"`
	SortBy     string `json:"sort_by"`
}

// WantsPopularity сообщает, запрошена ли сортировка по популярности
func (f SearchFilters) WantsPopularity() bool {
	return f.SortBy == SortByTrending || f.SortBy == SortByRating
}

// CategoryAmenities возвращает OSM amenity-теги для категории фильтра
func CategoryAmenities(category string) []string {
	switch category {
	case FilterCategoryStreetFood:
		return []string{"fast_food", "food_court"}
	case FilterCategoryCafe:
		return []string{"cafe"}
	case FilterCategoryDessert:
		return []string{"ice_cream", "cafe"}
	case FilterCategoryFineDining:
		return []string{"restaurant"}
	default:
		return []string{"restaurant", "cafe", "fast_food", "food_court"}
	}
}

// NormalizeCategory маппит таксономию источника в каноническую категорию.
// Пустое значение источника считается рестораном, незнакомое - unknown.
func NormalizeCategory(sourceCategory string) string {
	switch sourceCategory {
	case "":
		return CategoryRestaurant
	case "restaurant", "fine_dining":
		return CategoryRestaurant
	case "cafe", "coffee_shop":
		return CategoryCafe
	case "fast_food", "street_food":
		return CategoryFastFood
	case "food_court":
		return CategoryFoodCourt
	case "ice_cream", "dessert":
		return CategoryDessert
	default:
		return CategoryUnknown
	}
}
