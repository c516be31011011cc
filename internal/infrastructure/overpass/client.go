package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/foodspot-microservice/internal/config"
	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/domain/repository"
)

type client struct {
	httpClient     *http.Client
	baseURL        string
	radiusMeters   int
	maxElements    int
	requestTimeout int
	logger         *zap.Logger
}

// NewClient создает новый клиент для Overpass API (структурный источник)
func NewClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.VenueSource {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:        cfg.BaseURL,
		radiusMeters:   cfg.RadiusMeters,
		maxElements:    cfg.MaxElements,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

func (c *client) Name() string {
	return domain.SourceOverpass
}

// overpassElement - элемент ответа Overpass: node с прямыми координатами
// или way с вычисленным центром
type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *overpassCenter   `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// FetchRawCandidates выполняет один POST-запрос ограниченного радиусного
// поиска по amenity-тегам вокруг точки
func (c *client) FetchRawCandidates(
	ctx context.Context,
	lat, lon float64,
	filters domain.SearchFilters,
) ([]domain.RawVenue, error) {
	query := c.buildQuery(lat, lon, filters)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c.logger.Debug("Calling Overpass API",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.String("category", filters.Category))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("overpass API error: status %d", resp.StatusCode)
	}

	var overpassResp overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&overpassResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	raw := make([]domain.RawVenue, 0, len(overpassResp.Elements))
	for _, el := range overpassResp.Elements {
		rv, ok := c.toRawVenue(el)
		if !ok {
			continue
		}
		raw = append(raw, rv)
	}

	c.logger.Debug("Overpass API call successful",
		zap.Int("elements", len(overpassResp.Elements)),
		zap.Int("candidates", len(raw)))

	return raw, nil
}

// buildQuery собирает Overpass QL запрос: node и way по каждому amenity
// в радиусе вокруг точки, с центрами для way-геометрий
func (c *client) buildQuery(lat, lon float64, filters domain.SearchFilters) string {
	amenities := domain.CategoryAmenities(filters.Category)

	var sb strings.Builder
	fmt.Fprintf(&sb, "[out:json][timeout:%d];\n(\n", c.requestTimeout)
	for _, amenity := range amenities {
		fmt.Fprintf(&sb, "  node[\"amenity\"=\"%s\"](around:%d,%f,%f);\n",
			amenity, c.radiusMeters, lat, lon)
		fmt.Fprintf(&sb, "  way[\"amenity\"=\"%s\"](around:%d,%f,%f);\n",
			amenity, c.radiusMeters, lat, lon)
	}
	fmt.Fprintf(&sb, ");\nout center %d;", c.maxElements)

	return sb.String()
}

// toRawVenue маппит элемент Overpass в сырую запись. Элементы без имени
// или без разрешимой точки отбрасываются до нормализации.
func (c *client) toRawVenue(el overpassElement) (domain.RawVenue, bool) {
	if el.Tags["name"] == "" {
		return domain.RawVenue{}, false
	}

	lat, lon := el.Lat, el.Lon
	if lat == nil || lon == nil {
		// Для way используем центр полигона
		if el.Center == nil {
			return domain.RawVenue{}, false
		}
		lat, lon = &el.Center.Lat, &el.Center.Lon
	}

	return domain.RawVenue{
		NativeID:     fmt.Sprintf("osm-%d", el.ID),
		Name:         el.Tags["name"],
		Lat:          lat,
		Lon:          lon,
		Category:     el.Tags["amenity"],
		Tags:         el.Tags,
		Cuisine:      el.Tags["cuisine"],
		Phone:        firstNonEmpty(el.Tags["phone"], el.Tags["contact:phone"]),
		Website:      firstNonEmpty(el.Tags["website"], el.Tags["contact:website"]),
		OpeningHours: el.Tags["opening_hours"],
	}, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
