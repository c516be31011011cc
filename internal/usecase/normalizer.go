package usecase

import (
	"fmt"
	"strings"

	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/pkg/utils"
)

// NormalizeVenues преобразует сырые записи источника в канонические Venue.
// Записи без имени или валидной позиции молча отбрасываются: одна битая
// запись никогда не валит весь батч. Функция чистая и детерминированная.
func NormalizeVenues(raw []domain.RawVenue, originLat, originLon float64) []domain.Venue {
	venues := make([]domain.Venue, 0, len(raw))

	for i, rv := range raw {
		if rv.Name == "" || rv.Lat == nil || rv.Lon == nil {
			continue
		}
		if !utils.ValidateCoordinates(*rv.Lat, *rv.Lon) {
			continue
		}

		id := rv.NativeID
		if id == "" {
			// Fallback на позиционный идентификатор внутри батча
			id = fmt.Sprintf("place-%d", i)
		}

		category := domain.NormalizeCategory(rv.Category)

		imageURL := rv.ImageURL
		if imageURL == "" {
			imageURL = utils.PlaceholderImageURL(category, id)
		}

		v := domain.Venue{
			ID:           id,
			Name:         rv.Name,
			Category:     category,
			Lat:          *rv.Lat,
			Lon:          *rv.Lon,
			Address:      buildAddress(rv),
			Cuisine:      rv.Cuisine,
			Phone:        rv.Phone,
			Website:      rv.Website,
			OpeningHours: rv.OpeningHours,
			DistanceKm:   utils.DistanceKm(originLat, originLon, *rv.Lat, *rv.Lon),
			ImageURL:     imageURL,
			Description:  rv.Description,
			PriceLevel:   rv.PriceLevel,
			Tags:         rv.Labels,
			MustTryItem:  rv.MustTryItem,
			IsOpen:       rv.IsOpen,
		}

		if score, ok := popularityScore(rv); ok {
			v.PopularityScore = &score
		}
		if rv.ReviewCount > 0 {
			count := rv.ReviewCount
			v.ReviewCount = &count
		}

		venues = append(venues, v)
	}

	return venues
}

// popularityScore - среднее двух независимых рейтингов; при одном
// доступном рейтинге используется он
func popularityScore(rv domain.RawVenue) (float64, bool) {
	switch {
	case rv.GoogleRating > 0 && rv.WebRating > 0:
		return (rv.GoogleRating + rv.WebRating) / 2, true
	case rv.GoogleRating > 0:
		return rv.GoogleRating, true
	case rv.WebRating > 0:
		return rv.WebRating, true
	default:
		return 0, false
	}
}

// buildAddress собирает адрес по цепочке приоритетов: готовый адрес
// источника, addr:full, компоненты addr:*, затем operator/brand fallback
func buildAddress(rv domain.RawVenue) string {
	if rv.Address != "" {
		return rv.Address
	}
	if len(rv.Tags) == 0 {
		return ""
	}

	if full := rv.Tags["addr:full"]; full != "" {
		return full
	}

	var parts []string
	for _, key := range []string{"addr:unit", "addr:housenumber", "addr:street", "addr:city", "addr:postcode"} {
		if v := rv.Tags[key]; v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	if addr := rv.Tags["address"]; addr != "" {
		return addr
	}
	if place := rv.Tags["addr:place"]; place != "" {
		return place
	}
	if operator := rv.Tags["operator"]; operator != "" {
		return "At " + operator
	}
	if brand := rv.Tags["brand"]; brand != "" {
		return brand + " location"
	}

	return ""
}
